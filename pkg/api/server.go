// Package api serves the loaded network and its centrality measures over
// HTTP: JSON endpoints, a GraphQL query surface and Prometheus metrics.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/dd0wney/cluso-netmetrics/pkg/archive"
	gr "github.com/dd0wney/cluso-netmetrics/pkg/graph"
	gql "github.com/dd0wney/cluso-netmetrics/pkg/graphql"
	"github.com/dd0wney/cluso-netmetrics/pkg/logging"
	"github.com/dd0wney/cluso-netmetrics/pkg/metrics"
)

const version = "1.0.0"

// Server serves analysis results for one immutable graph snapshot.
type Server struct {
	graph      *gr.Graph
	dataset    string
	gqlHandler *gql.Handler
	store      *archive.Store // optional snapshot archive
	metrics    *metrics.Registry
	logger     logging.Logger
	startTime  time.Time
	httpServer *http.Server
	port       int
}

// Config carries the server's collaborators. Graph is required; the rest
// default sensibly.
type Config struct {
	Graph   *gr.Graph
	Dataset string
	Port    int
	Store   *archive.Store
	Metrics *metrics.Registry
	Logger  logging.Logger
}

// NewServer creates an API server over a graph snapshot.
func NewServer(cfg Config) (*Server, error) {
	if cfg.Graph == nil {
		return nil, fmt.Errorf("api: graph is required")
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.NewNopLogger()
	}

	schema, err := gql.GenerateSchema(cfg.Graph)
	if err != nil {
		return nil, fmt.Errorf("api: generate GraphQL schema: %w", err)
	}

	s := &Server{
		graph:      cfg.Graph,
		dataset:    cfg.Dataset,
		gqlHandler: gql.NewHandler(schema),
		store:      cfg.Store,
		metrics:    cfg.Metrics,
		logger:     cfg.Logger.With(logging.Component("api")),
		startTime:  time.Now(),
		port:       cfg.Port,
	}
	if s.metrics != nil {
		s.metrics.SetGraphSize(cfg.Graph.NodeCount(), cfg.Graph.EdgeCount())
	}
	return s, nil
}

// Start blocks serving HTTP until Shutdown is called or the listener fails.
func (s *Server) Start() error {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/graph", s.handleGraphSummary)
	mux.HandleFunc("/components", s.handleComponents)
	mux.HandleFunc("/centrality", s.handleCentrality)
	mux.Handle("/graphql", s.gqlHandler)
	if s.metrics != nil {
		mux.Handle("/metrics", s.metrics.Handler())
	}

	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("API server starting",
		logging.String("addr", addr),
		logging.Nodes(s.graph.NodeCount()),
		logging.Edges(s.graph.EdgeCount()),
	)

	handler := s.panicRecoveryMiddleware(
		s.loggingMiddleware(
			s.corsMiddleware(
				s.bodySizeLimitMiddleware(mux, MaxRequestBody))))

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 2 * DefaultAnalysisTimeout,
		IdleTimeout:  60 * time.Second,
	}
	err := s.httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// respondJSON writes a JSON response with the given status.
func (s *Server) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("encode response", logging.Error(err))
	}
}

// respondError writes a uniform JSON error body.
func (s *Server) respondError(w http.ResponseWriter, status int, msg string) {
	s.respondJSON(w, status, ErrorResponse{Error: msg})
}
