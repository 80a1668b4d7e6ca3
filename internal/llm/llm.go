package llm

import (
	"context"
	"errors"
)

// ErrUnavailable marks a generator that stayed unreachable or kept erroring
// after the adapter's own bounded retries. Callers propagate it; they do not
// retry.
var ErrUnavailable = errors.New("llm: service unavailable")

type Client interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
	Close() error
}
