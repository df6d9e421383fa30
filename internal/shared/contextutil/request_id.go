package contextutil

import "context"

// Unexported key type keeps the context key collision-safe.
type contextKey string

const requestIDKey contextKey = "request_id"

// GetRequestID reads the request ID from the context, or "" when the
// middleware has not run.
func GetRequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey).(string); ok {
		return rid
	}
	return ""
}

// WithRequestID injects a request ID, mainly for unit tests.
func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey, rid)
}

// GetKey exposes the raw key for middleware that stores it in gin's context.
func GetKey() string {
	return string(requestIDKey)
}
