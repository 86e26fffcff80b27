package graph

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	ErrEmptyNodeID   = errors.New("node ID is empty")
	ErrDuplicateNode = errors.New("duplicate node ID")
	ErrUnknownNode   = errors.New("unknown node ID")
	ErrBadWeight     = errors.New("edge weight is negative")
)

// InvalidEdgeError reports an edge whose endpoint does not reference an
// existing node. It is surfaced immediately at construction and never
// recovered.
type InvalidEdgeError struct {
	From    string // edge source as supplied
	To      string // edge target as supplied
	Missing string // the endpoint that failed the lookup
}

// Error implements the error interface.
func (e *InvalidEdgeError) Error() string {
	return fmt.Sprintf("edge (%s, %s): endpoint %q: %v", e.From, e.To, e.Missing, ErrUnknownNode)
}

// Unwrap returns ErrUnknownNode for error chain support.
func (e *InvalidEdgeError) Unwrap() error {
	return ErrUnknownNode
}

// NodeError reports a problem with a node definition at construction.
type NodeError struct {
	ID    string
	Cause error
}

// Error implements the error interface.
func (e *NodeError) Error() string {
	return fmt.Sprintf("node %q: %v", e.ID, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *NodeError) Unwrap() error {
	return e.Cause
}

// EdgeError reports a problem with an edge definition other than an unknown
// endpoint (see InvalidEdgeError for that case).
type EdgeError struct {
	From  string
	To    string
	Cause error
}

// Error implements the error interface.
func (e *EdgeError) Error() string {
	return fmt.Sprintf("edge (%s, %s): %v", e.From, e.To, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *EdgeError) Unwrap() error {
	return e.Cause
}
