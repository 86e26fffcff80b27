package api

import "time"

// Parameter limits to keep a single request bounded
const (
	MinEigenvectorIterations     = 1
	MaxEigenvectorIterations     = 10000
	DefaultEigenvectorIterations = 100

	MinTolerance     = 1e-12
	MaxTolerance     = 1.0
	DefaultTolerance = 1e-6

	MaxTopN     = 1000
	DefaultTopN = 10

	// Request body cap; datasets are loaded at startup, requests only carry
	// parameters.
	MaxRequestBody = 1 << 20

	DefaultAnalysisTimeout = 60 * time.Second
)
