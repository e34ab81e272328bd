package requestcontext

import (
	"context"
)

// ContextKey type for context keys to avoid collisions
type ContextKey string

const (
	// RequestIDKey is the context key for request ID
	RequestIDKey ContextKey = "request_id"
	// OrgIDKey is the context key for the caller's organization
	OrgIDKey ContextKey = "org_id"
	// UserIDKey is the context key for user ID
	UserIDKey ContextKey = "user_id"
)

// RequestContext holds request-specific information
type RequestContext struct {
	RequestID string
	OrgID     string
	UserID    string
}

// WithRequestID stores the request id in ctx
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// WithCaller stores the authenticated organization and user in ctx
func WithCaller(ctx context.Context, orgID, userID string) context.Context {
	ctx = context.WithValue(ctx, OrgIDKey, orgID)
	return context.WithValue(ctx, UserIDKey, userID)
}

// FromContext collects whatever request values ctx carries
func FromContext(ctx context.Context) RequestContext {
	return RequestContext{
		RequestID: GetRequestID(ctx),
		OrgID:     value(ctx, OrgIDKey),
		UserID:    GetUserID(ctx),
	}
}

// GetRequestID extracts request ID from context
func GetRequestID(ctx context.Context) string {
	return value(ctx, RequestIDKey)
}

// GetUserID extracts user ID from context
func GetUserID(ctx context.Context) string {
	return value(ctx, UserIDKey)
}

func value(ctx context.Context, key ContextKey) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(key).(string); ok {
		return v
	}
	return ""
}
