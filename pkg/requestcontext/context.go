// Package requestcontext provides HTTP-independent accessors for
// request-scoped values. Middleware sets them, services read them, and tests
// inject them without running the HTTP stack.
package requestcontext

import (
	"context"
	"time"
)

// Context key types (unexported for encapsulation).
type (
	requestIDKey     struct{}
	transactionIDKey struct{}
	requestTimeKey   struct{}
)

// Exported context keys for tests that need context.WithValue directly.
var (
	ContextKeyRequestID     = requestIDKey{}
	ContextKeyTransactionID = transactionIDKey{}
	ContextKeyRequestTime   = requestTimeKey{}
)

// RequestID retrieves the request ID from the context, or "" if unset.
func RequestID(ctx context.Context) string {
	if id, ok := ctx.Value(ContextKeyRequestID).(string); ok {
		return id
	}
	return ""
}

// WithRequestID injects a request ID into a context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, id)
}

// TransactionID retrieves the caller-supplied Laa-Transaction-Id from the
// context, or "" if unset. It is forwarded on all outbound collaborator
// calls so a case update can be traced across services.
func TransactionID(ctx context.Context) string {
	if id, ok := ctx.Value(ContextKeyTransactionID).(string); ok {
		return id
	}
	return ""
}

// WithTransactionID injects a transaction ID into a context.
func WithTransactionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ContextKeyTransactionID, id)
}

// Now returns the request time from the context, falling back to the wall
// clock. The evidence date rules compare against "today", so services must
// use this rather than time.Now to stay deterministic under test.
func Now(ctx context.Context) time.Time {
	if t, ok := ctx.Value(ContextKeyRequestTime).(time.Time); ok {
		return t
	}
	return time.Now()
}

// WithTime injects a specific time into a context. Useful for service unit
// tests that don't run the full middleware chain.
func WithTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, ContextKeyRequestTime, t)
}
