// Package records defines the tabular handoff format the analysis core
// accepts: plain node and edge records as an external loader (spreadsheet,
// database, serialized-object reader) would produce them. Parsing those
// sources is out of scope here; this package only validates records and
// turns them into a graph.
package records

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/dd0wney/cluso-netmetrics/pkg/graph"
)

// validate is a singleton validator instance
var validate = validator.New()

// Dataset size limits to keep a single analysis request bounded
const (
	MaxNodes = 1_000_000
	MaxEdges = 5_000_000
)

var (
	ErrTooManyNodes = errors.New("dataset exceeds node limit")
	ErrTooManyEdges = errors.New("dataset exceeds edge limit")
)

// NodeRecord is one row of the node table.
type NodeRecord struct {
	ID    string         `json:"id" yaml:"id" validate:"required,max=256"`
	Attrs map[string]any `json:"attrs,omitempty" yaml:"attrs,omitempty" validate:"omitempty,max=64"`
}

// EdgeRecord is one row of the edge table. Weight 0 means unweighted and is
// normalised to 1 at graph construction.
type EdgeRecord struct {
	From   string         `json:"from" yaml:"from" validate:"required,max=256"`
	To     string         `json:"to" yaml:"to" validate:"required,max=256"`
	Weight float64        `json:"weight,omitempty" yaml:"weight,omitempty" validate:"gte=0"`
	Attrs  map[string]any `json:"attrs,omitempty" yaml:"attrs,omitempty" validate:"omitempty,max=64"`
}

// Dataset is a complete network description: the two tables plus the
// directedness flag. This is also the YAML document shape the CLI and
// server load from disk.
type Dataset struct {
	Name     string       `json:"name,omitempty" yaml:"name,omitempty" validate:"omitempty,max=256"`
	Directed bool         `json:"directed" yaml:"directed"`
	Nodes    []NodeRecord `json:"nodes" yaml:"nodes" validate:"dive"`
	Edges    []EdgeRecord `json:"edges" yaml:"edges" validate:"dive"`
}

// Validate checks the dataset's records against their constraints without
// building a graph. Endpoint existence is the graph constructor's job.
func (d *Dataset) Validate() error {
	if len(d.Nodes) > MaxNodes {
		return fmt.Errorf("%w: %d > %d", ErrTooManyNodes, len(d.Nodes), MaxNodes)
	}
	if len(d.Edges) > MaxEdges {
		return fmt.Errorf("%w: %d > %d", ErrTooManyEdges, len(d.Edges), MaxEdges)
	}
	if err := validate.Struct(d); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// ToGraph validates the dataset and builds the immutable graph snapshot.
// When the node table is empty the node set is implied by the edge list.
func (d *Dataset) ToGraph() (*graph.Graph, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	edges := make([]graph.Edge, len(d.Edges))
	for i, e := range d.Edges {
		edges[i] = graph.Edge{From: e.From, To: e.To, Weight: e.Weight, Attrs: e.Attrs}
	}

	if len(d.Nodes) == 0 {
		return graph.NewFromEdges(d.Directed, edges)
	}

	nodes := make([]graph.Node, len(d.Nodes))
	for i, n := range d.Nodes {
		nodes[i] = graph.Node{ID: n.ID, Attrs: n.Attrs}
	}
	return graph.New(d.Directed, nodes, edges)
}

// Load reads and validates a YAML dataset document from disk.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return &ds, nil
}

// formatValidationError rewrites validator's struct-path messages into
// something a dataset author can act on.
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	for _, fe := range verrs {
		return fmt.Errorf("dataset field %s: failed %q constraint", fe.Namespace(), fe.Tag())
	}
	return err
}
