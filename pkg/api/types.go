package api

import (
	"time"

	"github.com/dd0wney/cluso-netmetrics/pkg/centrality"
)

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
	Uptime    string    `json:"uptime"`
}

// GraphSummaryResponse is returned by GET /graph.
type GraphSummaryResponse struct {
	Dataset    string `json:"dataset,omitempty"`
	Nodes      int    `json:"nodes"`
	Edges      int    `json:"edges"`
	Directed   bool   `json:"directed"`
	Components int    `json:"components"`
}

// ComponentsResponse is returned by GET /components.
type ComponentsResponse struct {
	Count      int        `json:"count"`
	Components [][]string `json:"components"`
	Largest    []string   `json:"largest"`
}

// CentralityRequest is the body of POST /centrality.
type CentralityRequest struct {
	// Measure selects degree, betweenness, closeness, eigenvector or all.
	Measure    string         `json:"measure"`
	Parameters map[string]any `json:"parameters,omitempty"`
	// Archive stores the result as a snapshot when a store is configured.
	Archive bool `json:"archive,omitempty"`
}

// CentralityResponse is the reply to POST /centrality.
type CentralityResponse struct {
	AnalysisID string                 `json:"analysis_id"`
	Measure    string                 `json:"measure"`
	Scores     map[string]float64     `json:"scores,omitempty"`
	Top        []centrality.RankedNode `json:"top,omitempty"`
	All        *centrality.Result     `json:"all,omitempty"`
	Warning    string                 `json:"warning,omitempty"`
	SnapshotID string                 `json:"snapshot_id,omitempty"`
	Time       string                 `json:"time"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error string `json:"error"`
}
