package algorithm

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/katalvlaran/graphty/core"
	"github.com/katalvlaran/graphty/style"
)

// Algorithm is one graph algorithm exposed through the registry.
type Algorithm interface {
	// ID returns the "<namespace>:<name>" identifier.
	ID() string
	// Run computes results for g. It must not mutate g's topology.
	Run(ctx context.Context, g *core.Graph, opts Options) (*ResultSet, error)
}

// StyleSuggester is implemented by algorithms that ship suggested styles.
type StyleSuggester interface {
	SuggestedStyles() []style.Descriptor
}

// Describer is implemented by algorithms with a one-line description.
type Describer interface {
	Description() string
}

var (
	// ErrBadID is returned for identifiers not of the form "<namespace>:<name>".
	ErrBadID = fmt.Errorf("algorithm: malformed id: %w", core.ErrStructural)

	// ErrDuplicate is returned when an ID is registered twice.
	ErrDuplicate = fmt.Errorf("algorithm: duplicate id: %w", core.ErrStructural)

	// ErrUnknownAlgorithm is returned by New for an unregistered ID.
	ErrUnknownAlgorithm = fmt.Errorf("algorithm: unknown id: %w", core.ErrNotFound)

	// ErrMissingOption is returned when a required option is absent.
	ErrMissingOption = fmt.Errorf("algorithm: missing option: %w", core.ErrStructural)

	// ErrBadOption is returned when an option cannot be coerced to its type.
	ErrBadOption = fmt.Errorf("algorithm: bad option: %w", core.ErrStructural)
)

var idPattern = regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z0-9]+)*:[a-z][a-z0-9]*(-[a-z0-9]+)*$`)

// ValidateID reports whether id is a well-formed algorithm identifier.
func ValidateID(id string) error {
	if !idPattern.MatchString(id) {
		return fmt.Errorf("%w: %q", ErrBadID, id)
	}

	return nil
}

// Namespace returns the result namespace of id: "graphty:degree" → "graphty.degree".
func Namespace(id string) string {
	return strings.Replace(id, ":", ".", 1)
}

type stepHookKey struct{}

// ContextWithStepHook attaches a step hook that adapters forward to the
// underlying algorithm packages.
func ContextWithStepHook(ctx context.Context, hook core.StepHook) context.Context {
	return context.WithValue(ctx, stepHookKey{}, hook)
}

// StepHookFromContext returns the hook attached by ContextWithStepHook, or nil.
func StepHookFromContext(ctx context.Context) core.StepHook {
	if ctx == nil {
		return nil
	}
	h, _ := ctx.Value(stepHookKey{}).(core.StepHook)

	return h
}
