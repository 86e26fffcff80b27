package centrality

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	ErrNonConvergence = errors.New("power iteration did not converge")
	ErrDisconnected   = errors.New("graph is disconnected")
)

// NonConvergenceError reports that eigenvector power iteration exhausted its
// iteration cap without the score vector settling below the tolerance. No
// partial result is returned alongside it.
type NonConvergenceError struct {
	Iterations int     // iterations performed (the cap)
	Tolerance  float64 // convergence threshold requested
	Delta      float64 // last observed max component change
}

// Error implements the error interface.
func (e *NonConvergenceError) Error() string {
	return fmt.Sprintf("eigenvector: %v after %d iterations (delta %.3g, tolerance %.3g)",
		ErrNonConvergence, e.Iterations, e.Delta, e.Tolerance)
}

// Unwrap returns ErrNonConvergence for error chain support.
func (e *NonConvergenceError) Unwrap() error {
	return ErrNonConvergence
}

// DisconnectedGraphWarning is a non-fatal advisory returned by Closeness when
// the graph is disconnected and the caller did not opt into the
// largest-component policy. The scores returned alongside it are valid: each
// node is measured against its own reachable set.
type DisconnectedGraphWarning struct {
	Components int // number of connected components observed
}

// Error implements the error interface.
func (e *DisconnectedGraphWarning) Error() string {
	return fmt.Sprintf("closeness: %v (%d components); scores cover each node's reachable set, "+
		"set LargestComponentOnly to restrict to the largest component", ErrDisconnected, e.Components)
}

// Unwrap returns ErrDisconnected for error chain support.
func (e *DisconnectedGraphWarning) Unwrap() error {
	return ErrDisconnected
}
