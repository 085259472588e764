package wrap

import (
	"context"
)

// Error wraps an error with the current LogCtx from the context.
// Re-wrapping an already wrapped error keeps the chain and captures the newer context.
func Error(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	return &errorWithLogCtx{
		err:    err,
		logCtx: fromCtx(ctx),
	}
}
