package cookie

import "context"

type contextKey struct{}

// WithContext stores a decoded Cookie in ctx.
func WithContext(ctx context.Context, c *Cookie) context.Context {
	return context.WithValue(ctx, contextKey{}, c)
}

// FromContext returns the Cookie stored by Middleware, or nil.
func FromContext(ctx context.Context) *Cookie {
	if ctx == nil {
		return nil
	}
	c, _ := ctx.Value(contextKey{}).(*Cookie)
	return c
}
