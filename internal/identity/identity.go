// Package identity verifies bearer tokens against the configured OIDC
// provider and exposes the authenticated principal to request handlers.
// Task records are scoped to the principal's subject identifier.
package identity

import "context"

// Principal is the authenticated caller extracted from a verified token.
type Principal struct {
	ID    string `json:"id"`
	Email string `json:"email,omitempty"`
}

type contextKey struct{}

// WithPrincipal returns a context carrying the principal.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, contextKey{}, p)
}

// FromContext extracts the principal placed by the Require middleware.
func FromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(contextKey{}).(Principal)
	return p, ok
}
