// Package net holds request-context helpers shared by transports and logging
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// WithRequest stores reqID where chi's RequestID middleware keeps it, so code
// running outside the middleware stack (tests, the CLI) sees the same id
func WithRequest(ctx context.Context, reqID string) context.Context {
	if reqID == "" {
		return ctx
	}
	return context.WithValue(ctx, chimw.RequestIDKey, reqID)
}

// RequestID returns the request id on the context, or ""
func RequestID(ctx context.Context) string { return chimw.GetReqID(ctx) }
