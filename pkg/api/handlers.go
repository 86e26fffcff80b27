package api

import (
	"net/http"
	"time"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	s.respondJSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   version,
		Uptime:    time.Since(s.startTime).String(),
	})
}

func (s *Server) handleGraphSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	s.respondJSON(w, http.StatusOK, GraphSummaryResponse{
		Dataset:    s.dataset,
		Nodes:      s.graph.NodeCount(),
		Edges:      s.graph.EdgeCount(),
		Directed:   s.graph.Directed(),
		Components: len(s.graph.Components()),
	})
}

func (s *Server) handleComponents(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	components := s.graph.Components()
	var largest []string
	for _, members := range components {
		if len(members) > len(largest) {
			largest = members
		}
	}

	s.respondJSON(w, http.StatusOK, ComponentsResponse{
		Count:      len(components),
		Components: components,
		Largest:    largest,
	})
}
