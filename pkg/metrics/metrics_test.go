package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

// findFamily gathers the registry and returns whether a family is present.
func findFamily(t *testing.T, r *Registry, name string) bool {
	t.Helper()

	families, err := r.Gather()
	if err != nil {
		t.Fatalf("Gather failed: %v", err)
	}
	for _, mf := range families {
		if mf.GetName() == name {
			return true
		}
	}
	return false
}

// TestRecordAnalysis tests the computation counter and histogram
func TestRecordAnalysis(t *testing.T) {
	r := NewRegistry()

	r.RecordAnalysis("degree", "success", 5*time.Millisecond)
	r.RecordAnalysis("eigenvector", "error", time.Millisecond)

	if !findFamily(t, r, "netmetrics_analyses_total") {
		t.Error("Expected netmetrics_analyses_total after recording")
	}
	if !findFamily(t, r, "netmetrics_analysis_duration_seconds") {
		t.Error("Expected netmetrics_analysis_duration_seconds after recording")
	}
}

// TestSetGraphSize tests the gauges
func TestSetGraphSize(t *testing.T) {
	r := NewRegistry()

	r.SetGraphSize(42, 99)

	families, err := r.Gather()
	if err != nil {
		t.Fatalf("Gather failed: %v", err)
	}

	got := map[string]float64{}
	for _, mf := range families {
		switch mf.GetName() {
		case "netmetrics_graph_nodes", "netmetrics_graph_edges":
			got[mf.GetName()] = mf.GetMetric()[0].GetGauge().GetValue()
		}
	}
	if got["netmetrics_graph_nodes"] != 42 {
		t.Errorf("Expected 42 nodes, got %f", got["netmetrics_graph_nodes"])
	}
	if got["netmetrics_graph_edges"] != 99 {
		t.Errorf("Expected 99 edges, got %f", got["netmetrics_graph_edges"])
	}
}

// TestHandler_Exposition tests the scrape endpoint output
func TestHandler_Exposition(t *testing.T) {
	r := NewRegistry()
	r.RecordHTTPRequest("GET", "/health", "200", time.Millisecond)
	r.NonConvergence.Inc()

	req := httptest.NewRequest("GET", "/metrics", nil)
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)

	if rec.Code != 200 {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "netmetrics_http_requests_total") {
		t.Error("Expected HTTP counter in exposition output")
	}
	if !strings.Contains(body, "netmetrics_eigenvector_nonconvergence_total 1") {
		t.Error("Expected non-convergence counter at 1")
	}
}

// TestRegistry_Isolation tests that registries do not share state
func TestRegistry_Isolation(t *testing.T) {
	a := NewRegistry()
	b := NewRegistry()

	a.RecordAnalysis("degree", "success", time.Millisecond)

	if findFamily(t, b, "netmetrics_analyses_total") {
		t.Error("Fresh registry should not carry another registry's samples")
	}
}
