// Package graphql exposes the loaded network and its centrality measures
// over a GraphQL query surface.
package graphql

import (
	"encoding/json"
	"fmt"

	"github.com/graphql-go/graphql"

	"github.com/dd0wney/cluso-netmetrics/pkg/centrality"
	gr "github.com/dd0wney/cluso-netmetrics/pkg/graph"
)

// GenerateSchema builds the query schema over a graph snapshot.
func GenerateSchema(g *gr.Graph) (graphql.Schema, error) {
	nodeType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Node",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					node, _ := p.Source.(gr.Node)
					return node.ID, nil
				},
			},
			"attrs": &graphql.Field{
				Type:        graphql.String,
				Description: "Node attributes as a JSON object",
				Resolve: func(p graphql.ResolveParams) (any, error) {
					node, _ := p.Source.(gr.Node)
					if node.Attrs == nil {
						return "{}", nil
					}
					data, err := json.Marshal(node.Attrs)
					if err != nil {
						return nil, err
					}
					return string(data), nil
				},
			},
			"neighbors": &graphql.Field{
				Type: graphql.NewList(graphql.String),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					node, _ := p.Source.(gr.Node)
					return g.Neighbors(node.ID), nil
				},
			},
		},
	})

	edgeType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Edge",
		Fields: graphql.Fields{
			"from": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return p.Source.(gr.Edge).From, nil
				},
			},
			"to": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return p.Source.(gr.Edge).To, nil
				},
			},
			"weight": &graphql.Field{
				Type: graphql.Float,
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return p.Source.(gr.Edge).Weight, nil
				},
			},
		},
	})

	scoreType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Score",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return p.Source.(centrality.RankedNode).ID, nil
				},
			},
			"score": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Float),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return p.Source.(centrality.RankedNode).Score, nil
				},
			},
		},
	})

	summaryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Summary",
		Fields: graphql.Fields{
			"nodes":      &graphql.Field{Type: graphql.Int},
			"edges":      &graphql.Field{Type: graphql.Int},
			"directed":   &graphql.Field{Type: graphql.Boolean},
			"components": &graphql.Field{Type: graphql.Int},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"health": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return "ok", nil
				},
			},
			"summary": &graphql.Field{
				Type: summaryType,
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return map[string]any{
						"nodes":      g.NodeCount(),
						"edges":      g.EdgeCount(),
						"directed":   g.Directed(),
						"components": len(g.Components()),
					}, nil
				},
			},
			"node": &graphql.Field{
				Type: nodeType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					id, _ := p.Args["id"].(string)
					node, ok := g.Node(id)
					if !ok {
						return nil, nil
					}
					return node, nil
				},
			},
			"nodes": &graphql.Field{
				Type: graphql.NewList(nodeType),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					nodes := make([]gr.Node, 0, g.NodeCount())
					for _, id := range g.NodeIDs() {
						node, _ := g.Node(id)
						nodes = append(nodes, node)
					}
					return nodes, nil
				},
			},
			"edges": &graphql.Field{
				Type: graphql.NewList(edgeType),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return g.Edges(), nil
				},
			},
			"components": &graphql.Field{
				Type: graphql.NewList(graphql.NewList(graphql.String)),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return g.Components(), nil
				},
			},
			"centrality": &graphql.Field{
				Type:        graphql.NewList(scoreType),
				Description: "Centrality scores for every node, ranked descending",
				Args: graphql.FieldConfigArgument{
					"measure": &graphql.ArgumentConfig{
						Type:        graphql.NewNonNull(graphql.String),
						Description: "degree, betweenness, closeness or eigenvector",
					},
					"normalized":           &graphql.ArgumentConfig{Type: graphql.Boolean, DefaultValue: false},
					"weighted":             &graphql.ArgumentConfig{Type: graphql.Boolean, DefaultValue: false},
					"largestComponentOnly": &graphql.ArgumentConfig{Type: graphql.Boolean, DefaultValue: false},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return resolveCentrality(g, p)
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: queryType})
}

// resolveCentrality dispatches the centrality query to the requested
// measure. Results come back as a full descending ranking.
func resolveCentrality(g *gr.Graph, p graphql.ResolveParams) (any, error) {
	measure, _ := p.Args["measure"].(string)
	normalized, _ := p.Args["normalized"].(bool)
	weighted, _ := p.Args["weighted"].(bool)
	largestOnly, _ := p.Args["largestComponentOnly"].(bool)

	var scores map[string]float64
	switch measure {
	case "degree":
		scores = centrality.Degree(g, centrality.DegreeOptions{Normalized: normalized})
	case "betweenness":
		scores = centrality.Betweenness(g, centrality.BetweennessOptions{
			Weighted:   weighted,
			Normalized: normalized,
		})
	case "closeness":
		var err error
		scores, err = centrality.Closeness(g, centrality.ClosenessOptions{
			LargestComponentOnly: largestOnly,
		})
		if err != nil && scores == nil {
			return nil, err
		}
		// A DisconnectedGraphWarning still carries usable scores.
	case "eigenvector":
		result, err := centrality.Eigenvector(g, centrality.DefaultEigenvectorOptions())
		if err != nil {
			return nil, err
		}
		scores = result.Scores
	default:
		return nil, fmt.Errorf("unknown measure %q (supported: degree, betweenness, closeness, eigenvector)", measure)
	}

	return centrality.TopNodes(scores, len(scores)), nil
}

// ExecuteQuery runs a GraphQL query against the schema.
func ExecuteQuery(query string, schema graphql.Schema) *graphql.Result {
	return graphql.Do(graphql.Params{
		Schema:        schema,
		RequestString: query,
	})
}

// ExecuteQueryWithVariables runs a GraphQL query with variables.
func ExecuteQueryWithVariables(query string, schema graphql.Schema, variables map[string]any) *graphql.Result {
	return graphql.Do(graphql.Params{
		Schema:         schema,
		RequestString:  query,
		VariableValues: variables,
	})
}
