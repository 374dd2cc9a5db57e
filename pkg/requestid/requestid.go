// ABOUTME: Request ID propagation through context.Context
// ABOUTME: Lets outbound calls and core services log the ID assigned by the HTTP middleware

package requestid

import "context"

// Header is the HTTP header carrying the request ID
const Header = "X-Request-ID"

type contextKey struct{}

// WithID returns a copy of ctx carrying id
func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext returns the request ID stored in ctx, or ""
func FromContext(ctx context.Context) string {
	if id, ok := ctx.Value(contextKey{}).(string); ok {
		return id
	}
	return ""
}
