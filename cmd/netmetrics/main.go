// Command netmetrics runs a one-shot analysis over a YAML network dataset:
// build the graph, compute the requested centrality measures and emit the
// scores as JSON, optionally archiving the run as a compressed snapshot.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/dd0wney/cluso-netmetrics/pkg/archive"
	"github.com/dd0wney/cluso-netmetrics/pkg/centrality"
	"github.com/dd0wney/cluso-netmetrics/pkg/records"
)

func main() {
	datasetPath := flag.String("dataset", "dataset.yaml", "YAML network dataset to analyse")
	measure := flag.String("measure", "all", "Measure: degree, betweenness, closeness, eigenvector or all")
	weighted := flag.Bool("weighted", false, "Use edge weights as traversal costs for betweenness")
	normalized := flag.Bool("normalized", false, "Normalize degree and betweenness scores")
	largestComponent := flag.Bool("largest-component", false, "Restrict closeness to the largest connected component")
	archiveDir := flag.String("archive", "", "Archive the result as a snapshot under this directory")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	ds, err := records.Load(*datasetPath)
	if err != nil {
		logger.Error("failed to load dataset", "error", err)
		os.Exit(1)
	}
	g, err := ds.ToGraph()
	if err != nil {
		logger.Error("failed to build graph", "error", err)
		os.Exit(1)
	}
	logger.Info("graph loaded", "nodes", g.NodeCount(), "edges", g.EdgeCount(), "directed", g.Directed())

	opts := centrality.Options{
		Degree:      centrality.DegreeOptions{Normalized: *normalized},
		Betweenness: centrality.BetweennessOptions{Weighted: *weighted, Normalized: *normalized},
		Closeness:   centrality.ClosenessOptions{LargestComponentOnly: *largestComponent},
		Eigenvector: centrality.DefaultEigenvectorOptions(),
	}

	var output any
	switch *measure {
	case "degree":
		output = centrality.Degree(g, opts.Degree)

	case "betweenness":
		output = centrality.Betweenness(g, opts.Betweenness)

	case "closeness":
		scores, err := centrality.Closeness(g, opts.Closeness)
		if err != nil {
			if !errors.Is(err, centrality.ErrDisconnected) {
				logger.Error("closeness failed", "error", err)
				os.Exit(1)
			}
			logger.Warn("disconnected graph", "advisory", err.Error())
		}
		output = scores

	case "eigenvector":
		result, err := centrality.Eigenvector(g, opts.Eigenvector)
		if err != nil {
			logger.Error("eigenvector failed", "error", err)
			os.Exit(1)
		}
		logger.Info("power iteration converged", "iterations", result.Iterations)
		output = result.Scores

	case "all":
		result, err := centrality.ComputeAll(g, opts)
		if err != nil {
			logger.Error("analysis failed", "error", err)
			os.Exit(1)
		}
		if result.Disconnected {
			logger.Warn("disconnected graph; closeness covers per-node reachable sets")
		}
		if *archiveDir != "" {
			store, err := archive.NewStore(*archiveDir)
			if err != nil {
				logger.Error("failed to open archive", "error", err)
				os.Exit(1)
			}
			snap, err := store.Save(ds.Name, g.NodeCount(), g.EdgeCount(), result)
			if err != nil {
				logger.Error("failed to archive result", "error", err)
				os.Exit(1)
			}
			logger.Info("snapshot archived", "id", snap.ID)
		}
		output = result

	default:
		fmt.Fprintf(os.Stderr, "unknown measure %q (supported: degree, betweenness, closeness, eigenvector, all)\n", *measure)
		os.Exit(2)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(output); err != nil {
		logger.Error("failed to encode output", "error", err)
		os.Exit(1)
	}
}
