package authorize

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alijeyrad/psyassist_backend/pkg/reqctx"
)

func seeded(t *testing.T) IAuthorization {
	t.Helper()
	e, cleanup, err := NewMemoryEnforcer("")
	require.NoError(t, err)
	t.Cleanup(func() { cleanup(context.Background()) })

	auth, err := NewAuthorization(e)
	require.NoError(t, err)
	require.NoError(t, SeedDefaultPolicies(context.Background(), auth))
	return auth
}

func TestNewAuthorizationRejectsNil(t *testing.T) {
	_, err := NewAuthorization(nil)
	assert.ErrorIs(t, err, ErrInvalidArgs)
}

func TestDefaultPolicies(t *testing.T) {
	auth := seeded(t)
	ctx := context.Background()

	tests := []struct {
		role   Role
		object Resource
		action Action
		want   bool
	}{
		{RoleSupervisor, ResourceChild, ActionRead, true},
		{RoleSupervisor, ResourceReport, ActionList, true},
		{RoleSupervisor, ResourceChild, ActionCreate, false},
		{RoleSupervisor, ResourceAssessment, ActionExecute, false},
		{RoleSupervisor, ResourceReport, ActionShare, false},

		{RolePsychologist, ResourceChild, ActionDelete, true},
		{RolePsychologist, ResourceAssessment, ActionExecute, true},
		{RolePsychologist, ResourceReport, ActionShare, true},
		{RolePsychologist, ResourceDashboard, ActionRead, true}, // inherited
		{RolePsychologist, ResourceReport, ActionDelete, false},

		{RoleAdmin, ResourceReport, ActionDelete, true},
		{RoleAdmin, ResourceCatalog, ActionUpdate, true},
	}
	for _, tt := range tests {
		got, err := auth.Enforce(ctx, tt.role, tt.object, tt.action)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%s %s %s", tt.role, tt.action, tt.object)
	}
}

func TestEnforceRejectsUnknownInputs(t *testing.T) {
	auth := seeded(t)
	ctx := context.Background()

	_, err := auth.Enforce(ctx, "therapist", ResourceChild, ActionRead)
	assert.ErrorIs(t, err, ErrInvalidArgs)
	_, err = auth.Enforce(ctx, RoleAdmin, "wallet", ActionRead)
	assert.ErrorIs(t, err, ErrInvalidArgs)
	_, err = auth.Enforce(ctx, RoleAdmin, ResourceChild, "approve")
	assert.ErrorIs(t, err, ErrInvalidArgs)
}

func TestMustEnforceAndDeny(t *testing.T) {
	auth := seeded(t)
	ctx := context.Background()

	assert.ErrorIs(t, auth.MustEnforce(ctx, RoleSupervisor, ResourceChild, ActionUpdate), ErrForbidden)

	added, err := auth.AddPermission(ctx, PermissionPolicy{RolePsychologist, ResourceChild, ActionDelete, EffectDeny})
	require.NoError(t, err)
	assert.True(t, added)
	assert.ErrorIs(t, auth.MustEnforce(ctx, RolePsychologist, ResourceChild, ActionDelete), ErrForbidden)

	removed, err := auth.RemovePermission(ctx, PermissionPolicy{RolePsychologist, ResourceChild, ActionDelete, EffectDeny})
	require.NoError(t, err)
	assert.True(t, removed)
	assert.NoError(t, auth.MustEnforce(ctx, RolePsychologist, ResourceChild, ActionDelete))
}

func TestSeedIsIdempotent(t *testing.T) {
	auth := seeded(t)
	require.NoError(t, SeedDefaultPolicies(context.Background(), auth))
	assert.Len(t, auth.Raw().GetPolicy(), len(DefaultPolicies()))
}

func TestInheritance(t *testing.T) {
	auth := seeded(t)
	ctx := context.Background()

	roles, err := auth.ImplicitRoles(ctx, RolePsychologist)
	require.NoError(t, err)
	assert.Equal(t, []Role{RoleSupervisor}, roles)

	_, err = auth.AddInheritance(ctx, Inheritance{Role: RoleAdmin, Parent: RoleAdmin})
	assert.ErrorIs(t, err, ErrInvalidArgs)
}

func TestAuditedAuthorizationLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	auth := NewAuditedAuthorization(seeded(t), logger)

	require.ErrorIs(t, auth.MustEnforce(context.Background(), RoleSupervisor, ResourceReport, ActionShare), ErrForbidden)
	assert.Contains(t, buf.String(), "level=WARN msg=authz_decision role=supervisor resource=report action=share allowed=false")
}

func TestLoadModelFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.conf")
	require.NoError(t, os.WriteFile(path, []byte(DefaultModel), 0o644))

	e, _, err := NewMemoryEnforcer(path)
	require.NoError(t, err)
	auth, err := NewAuthorization(e)
	require.NoError(t, err)
	require.NoError(t, SeedDefaultPolicies(context.Background(), auth))

	_, _, err = NewMemoryEnforcer(filepath.Join(t.TempDir(), "missing.conf"))
	assert.Error(t, err)
}

type testClaims struct{ role string }

func (c testClaims) GetUserID() uuid.UUID     { return uuid.New() }
func (c testClaims) GetSessionID() *uuid.UUID { return nil }
func (c testClaims) GetTokenType() string     { return "access" }
func (c testClaims) GetRole() string          { return c.role }
func (c testClaims) IsExpired() bool          { return false }

func TestEnforceContext(t *testing.T) {
	auth := seeded(t)

	err := EnforceContext(context.Background(), auth, ResourceChild, ActionRead)
	assert.ErrorIs(t, err, ErrNoSubjectInContext)

	ctx := reqctx.WithClaims(context.Background(), testClaims{role: "supervisor"})
	assert.NoError(t, EnforceContext(ctx, auth, ResourceChild, ActionRead))
	assert.ErrorIs(t, EnforceContext(ctx, auth, ResourceChild, ActionDelete), ErrForbidden)
}
