package requestcontext

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromContext(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-1")
	ctx = WithCaller(ctx, "org-1", "user-1")

	rc := FromContext(ctx)

	assert.Equal(t, RequestContext{RequestID: "req-1", OrgID: "org-1", UserID: "user-1"}, rc)
	assert.Equal(t, "req-1", GetRequestID(ctx))
	assert.Equal(t, "user-1", GetUserID(ctx))
}

func TestFromContext_Empty(t *testing.T) {
	assert.Equal(t, RequestContext{}, FromContext(context.Background()))
	assert.Equal(t, "", GetRequestID(nil))
}
