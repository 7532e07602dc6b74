package authorize

import (
	"context"
	"errors"

	"github.com/Alijeyrad/psyassist_backend/pkg/reqctx"
)

var ErrNoSubjectInContext = errors.New("no subject found in context")

// RoleFromContext returns the role of the authenticated caller.
func RoleFromContext(ctx context.Context) (Role, error) {
	role := reqctx.RoleFromContext(ctx)
	if role == "" {
		return "", ErrNoSubjectInContext
	}
	return Role(role), nil
}

// EnforceContext checks the caller's role in ctx.
func EnforceContext(ctx context.Context, auth IAuthorization, object Resource, action Action) error {
	role, err := RoleFromContext(ctx)
	if err != nil {
		return err
	}
	return auth.MustEnforce(ctx, role, object, action)
}
