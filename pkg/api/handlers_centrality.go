package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/dd0wney/cluso-netmetrics/pkg/centrality"
	"github.com/dd0wney/cluso-netmetrics/pkg/logging"
)

func (s *Server) handleCentrality(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req CentralityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	analysisID := uuid.New().String()
	start := time.Now()

	resp := &CentralityResponse{
		AnalysisID: analysisID,
		Measure:    req.Measure,
	}

	var err error
	switch req.Measure {
	case "degree":
		resp.Scores = centrality.Degree(s.graph, centrality.DegreeOptions{
			Normalized: boolParam(req.Parameters, "normalized", false),
		})

	case "betweenness":
		resp.Scores = centrality.Betweenness(s.graph, centrality.BetweennessOptions{
			Weighted:   boolParam(req.Parameters, "weighted", false),
			Normalized: boolParam(req.Parameters, "normalized", false),
		})

	case "closeness":
		resp.Scores, err = centrality.Closeness(s.graph, centrality.ClosenessOptions{
			LargestComponentOnly: boolParam(req.Parameters, "largest_component", false),
		})
		if err != nil {
			if !errors.Is(err, centrality.ErrDisconnected) {
				s.recordAnalysis(req.Measure, "error", start)
				s.respondError(w, http.StatusInternalServerError, err.Error())
				return
			}
			// Advisory only; scores remain valid.
			resp.Warning = err.Error()
		}

	case "eigenvector":
		opts, optErr := eigenvectorOptions(req.Parameters)
		if optErr != nil {
			s.respondError(w, http.StatusBadRequest, optErr.Error())
			return
		}
		var result *centrality.EigenvectorResult
		result, err = centrality.Eigenvector(s.graph, opts)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, centrality.ErrNonConvergence) {
				status = http.StatusUnprocessableEntity
				if s.metrics != nil {
					s.metrics.NonConvergence.Inc()
				}
			}
			s.recordAnalysis(req.Measure, "error", start)
			s.respondError(w, status, err.Error())
			return
		}
		resp.Scores = result.Scores

	case "all":
		var result *centrality.Result
		result, err = centrality.ComputeAll(s.graph, centrality.Options{
			Degree: centrality.DegreeOptions{
				Normalized: boolParam(req.Parameters, "normalized", false),
			},
			Betweenness: centrality.BetweennessOptions{
				Weighted:   boolParam(req.Parameters, "weighted", false),
				Normalized: boolParam(req.Parameters, "normalized", false),
			},
			Closeness: centrality.ClosenessOptions{
				LargestComponentOnly: boolParam(req.Parameters, "largest_component", false),
			},
			Eigenvector: centrality.DefaultEigenvectorOptions(),
		})
		if err != nil {
			if errors.Is(err, centrality.ErrNonConvergence) && s.metrics != nil {
				s.metrics.NonConvergence.Inc()
			}
			s.recordAnalysis(req.Measure, "error", start)
			s.respondError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		resp.All = result
		if req.Archive && s.store != nil {
			snap, archiveErr := s.store.Save(s.dataset, s.graph.NodeCount(), s.graph.EdgeCount(), result)
			if archiveErr != nil {
				s.logger.Error("archive snapshot", logging.Error(archiveErr), logging.AnalysisID(analysisID))
			} else {
				resp.SnapshotID = snap.ID
			}
		}

	default:
		s.respondError(w, http.StatusBadRequest,
			"Unknown measure (supported: degree, betweenness, closeness, eigenvector, all)")
		return
	}

	if resp.Scores != nil {
		n := topNParam(req.Parameters)
		resp.Top = centrality.TopNodes(resp.Scores, n)
	}

	s.recordAnalysis(req.Measure, "ok", start)
	resp.Time = time.Since(start).String()
	s.logger.Info("centrality computed",
		logging.AnalysisID(analysisID),
		logging.Measure(req.Measure),
		logging.Latency(time.Since(start)),
	)
	s.respondJSON(w, http.StatusOK, resp)
}

func (s *Server) recordAnalysis(measure, status string, start time.Time) {
	if s.metrics != nil {
		s.metrics.RecordAnalysis(measure, status, time.Since(start))
	}
}

// boolParam reads an optional boolean parameter.
func boolParam(params map[string]any, key string, def bool) bool {
	if v, ok := params[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return def
}

// topNParam reads and clamps the top-N parameter.
func topNParam(params map[string]any) int {
	n := DefaultTopN
	if v, ok := params["top"]; ok {
		if f, ok := v.(float64); ok {
			n = int(f)
		}
	}
	if n < 1 {
		n = DefaultTopN
	}
	if n > MaxTopN {
		n = MaxTopN
	}
	return n
}

// eigenvectorOptions validates the eigenvector parameters.
func eigenvectorOptions(params map[string]any) (centrality.EigenvectorOptions, error) {
	opts := centrality.DefaultEigenvectorOptions()

	if v, ok := params["max_iterations"]; ok {
		f, ok := v.(float64)
		if !ok {
			return opts, fmt.Errorf("max_iterations must be a number")
		}
		iterations := int(f)
		if iterations < MinEigenvectorIterations || iterations > MaxEigenvectorIterations {
			return opts, fmt.Errorf("max_iterations must be between %d and %d",
				MinEigenvectorIterations, MaxEigenvectorIterations)
		}
		opts.MaxIterations = iterations
	}

	if v, ok := params["tolerance"]; ok {
		f, ok := v.(float64)
		if !ok {
			return opts, fmt.Errorf("tolerance must be a number")
		}
		if f < MinTolerance || f > MaxTolerance {
			return opts, fmt.Errorf("tolerance must be between %g and %g", MinTolerance, MaxTolerance)
		}
		opts.Tolerance = f
	}

	return opts, nil
}
