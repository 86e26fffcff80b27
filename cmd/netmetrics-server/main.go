package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/dd0wney/cluso-netmetrics/pkg/api"
	"github.com/dd0wney/cluso-netmetrics/pkg/archive"
	"github.com/dd0wney/cluso-netmetrics/pkg/logging"
	"github.com/dd0wney/cluso-netmetrics/pkg/metrics"
	"github.com/dd0wney/cluso-netmetrics/pkg/records"
)

func main() {
	port := flag.Int("port", 0, "HTTP server port (default 8080, or set PORT)")
	datasetPath := flag.String("dataset", "dataset.yaml", "YAML network dataset to serve")
	archiveDir := flag.String("archive", "", "Directory for result snapshots (disabled when empty)")
	flag.Parse()

	if *port == 0 {
		if envPort := os.Getenv("PORT"); envPort != "" {
			if p, err := strconv.Atoi(envPort); err == nil {
				*port = p
			} else {
				*port = 8080
			}
		} else {
			*port = 8080
		}
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	logger.Info("netmetrics server starting", "dataset", *datasetPath)

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
	logger.Info("graph loaded",
		"name", ds.Name,
		"nodes", g.NodeCount(),
		"edges", g.EdgeCount(),
		"directed", g.Directed(),
	)

	var store *archive.Store
	if *archiveDir != "" {
		store, err = archive.NewStore(*archiveDir)
		if err != nil {
			logger.Error("failed to open archive", "error", err)
			os.Exit(1)
		}
		logger.Info("snapshot archive enabled", "dir", *archiveDir)
	}

	server, err := api.NewServer(api.Config{
		Graph:   g,
		Dataset: ds.Name,
		Port:    *port,
		Store:   store,
		Metrics: metrics.NewRegistry(),
		Logger:  logging.NewDefaultLogger(),
	})
	if err != nil {
		logger.Error("failed to create server", "error", err)
		os.Exit(1)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Info("shutting down server")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("shutdown error", "error", err)
		}
	}()

	logger.Info("server starting", "port", *port)
	if err := server.Start(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
	logger.Info("server exited")
}
