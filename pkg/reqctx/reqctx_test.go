package reqctx

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type claims struct {
	uid  uuid.UUID
	role string
	exp  time.Time
}

func (c claims) GetUserID() uuid.UUID     { return c.uid }
func (c claims) GetSessionID() *uuid.UUID { return nil }
func (c claims) GetTokenType() string     { return "access" }
func (c claims) GetRole() string          { return c.role }
func (c claims) IsExpired() bool          { return time.Now().After(c.exp) }

func TestClaims(t *testing.T) {
	ctx := context.Background()
	_, ok := UserIDFromContext(ctx)
	assert.False(t, ok)
	assert.False(t, IsAuthenticated(ctx))
	assert.Empty(t, RoleFromContext(ctx))

	uid := uuid.New()
	ctx = WithClaims(ctx, claims{uid: uid, role: "admin", exp: time.Now().Add(time.Hour)})
	got, ok := UserIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, uid, got)
	assert.Equal(t, "admin", RoleFromContext(ctx))
	assert.True(t, IsAuthenticated(ctx))
}

func TestLogAttrs(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, LogAttrs(ctx))

	ctx = WithRequestMeta(ctx, &RequestMeta{RequestID: "req-1"})
	ctx = WithClaims(ctx, claims{uid: uuid.New(), exp: time.Now().Add(time.Hour)})
	assert.Len(t, LogAttrs(ctx), 2)
	assert.Equal(t, "req-1", RequestIDFromContext(ctx))
	assert.Empty(t, TraceIDFromContext(ctx))
}
