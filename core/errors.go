package core

import (
	"context"
	"errors"
	"fmt"
)

// Error kinds. Every sentinel returned by a graphty package wraps exactly one
// of these, so errors.Is(err, core.ErrNumeric) works regardless of which
// algorithm produced err.
var (
	// ErrStructural indicates the graph lacks a property the operation requires
	// (no bipartition supplied, directed graph where undirected is needed, …).
	ErrStructural = errors.New("structural error")

	// ErrNotFound indicates a missing vertex, edge or algorithm identifier.
	ErrNotFound = errors.New("not found")

	// ErrNumeric indicates a forbidden numeric input (negative weight) or an
	// iteration that failed to converge within its documented cap.
	ErrNumeric = errors.New("numeric error")

	// ErrCycle indicates a negative cycle reachable by a shortest-path search.
	ErrCycle = errors.New("cycle error")

	// ErrCancelled indicates the run was stopped at a step boundary because its
	// context was cancelled or a step hook asked it to stop.
	ErrCancelled = errors.New("cancelled")
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = fmt.Errorf("core: vertex ID is empty: %w", ErrStructural)

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = fmt.Errorf("core: vertex %w", ErrNotFound)

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = fmt.Errorf("core: edge %w", ErrNotFound)

	// ErrBadWeight indicates a non-default weight given to an unweighted graph.
	ErrBadWeight = fmt.Errorf("core: bad weight for unweighted graph: %w", ErrNumeric)

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = fmt.Errorf("core: self-loop not allowed: %w", ErrStructural)

	// ErrBadResultPath indicates a result path without a namespace or field part.
	ErrBadResultPath = errors.New("core: result path must be <namespace>.<field>")
)

// Cancelled wraps cause as a distinguished cancellation error.
// errors.Is(err, ErrCancelled) and errors.Is(err, context.Canceled) both hold
// when cause is a context error.
func Cancelled(cause error) error {
	if cause == nil {
		cause = context.Canceled
	}

	return fmt.Errorf("%w: %w", ErrCancelled, cause)
}
