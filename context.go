package clubadmin

import "context"

type requestIDContextKey struct{}

// WithRequestID attaches a correlation ID to ctx. The gateway sends it as
// X-Request-ID instead of generating one, which lets embedders thread their
// own correlation IDs through to the API.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDContextKey{}, id)
}

func requestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	id, _ := ctx.Value(requestIDContextKey{}).(string)
	return id
}
