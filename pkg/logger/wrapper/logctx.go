package wrap

import (
	"context"
)

type (
	// LogCtx holds contextual information for logging
	LogCtx struct {
		Action    string
		RequestID string
		Query     string
		SessionID string
	}

	logCtxKeyStruct struct{}
)

// LogCtxKey is the key for log context values
var LogCtxKey = &logCtxKeyStruct{}

func fromCtx(ctx context.Context) LogCtx {
	if lc, ok := ctx.Value(LogCtxKey).(LogCtx); ok {
		return lc
	}
	return LogCtx{}
}

// WithLogCtx returns a new context with the provided LogCtx merged over the existing one
func WithLogCtx(ctx context.Context, newLc LogCtx) context.Context {
	lc := fromCtx(ctx)
	if newLc.Action == "" {
		newLc.Action = lc.Action
	}
	if newLc.RequestID == "" {
		newLc.RequestID = lc.RequestID
	}
	if newLc.Query == "" {
		newLc.Query = lc.Query
	}
	if newLc.SessionID == "" {
		newLc.SessionID = lc.SessionID
	}
	return context.WithValue(ctx, LogCtxKey, newLc)
}

// WithRequestID adds or updates the RequestID in the LogCtx within the context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	lc := fromCtx(ctx)
	lc.RequestID = requestID
	return context.WithValue(ctx, LogCtxKey, lc)
}

// WithAction adds or updates the Action in the LogCtx within the context
func WithAction(ctx context.Context, action string) context.Context {
	lc := fromCtx(ctx)
	lc.Action = action
	return context.WithValue(ctx, LogCtxKey, lc)
}

// WithQuery adds or updates the analytics query name in the LogCtx within the context
func WithQuery(ctx context.Context, query string) context.Context {
	lc := fromCtx(ctx)
	lc.Query = query
	return context.WithValue(ctx, LogCtxKey, lc)
}

// WithSessionID adds or updates the websocket session id in the LogCtx within the context
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	lc := fromCtx(ctx)
	lc.SessionID = sessionID
	return context.WithValue(ctx, LogCtxKey, lc)
}

// GetRequestID returns request id stored in the context, empty when missing
func GetRequestID(ctx context.Context) string {
	return fromCtx(ctx).RequestID
}
