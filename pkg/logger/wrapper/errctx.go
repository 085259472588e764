package wrap

import (
	"context"
	"errors"
)

// errorWithLogCtx carries the LogCtx (action, request, query, session) seen where the error happened
type errorWithLogCtx struct {
	err    error
	logCtx LogCtx
}

func (e *errorWithLogCtx) Error() string {
	return e.err.Error()
}

func (e *errorWithLogCtx) Unwrap() error {
	return e.err
}

// LogCtxOf returns the LogCtx captured by the outermost wrap.Error in the chain.
func LogCtxOf(err error) (LogCtx, bool) {
	var e *errorWithLogCtx
	if errors.As(err, &e) && e != nil {
		return e.logCtx, true
	}
	return LogCtx{}, false
}

// ErrorCtx merges the LogCtx captured by err over the one in ctx. Fields the error
// did not capture, such as the request id of a boundary context, are kept.
func ErrorCtx(ctx context.Context, err error) context.Context {
	lc, ok := LogCtxOf(err)
	if !ok {
		return ctx
	}
	return WithLogCtx(ctx, lc)
}
