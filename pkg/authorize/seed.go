package authorize

import (
	"context"
	"log/slog"
)

// DefaultPolicies grants supervisors read access, psychologists everything
// on their caseload, and admins every action.
func DefaultPolicies() []PermissionPolicy {
	return []PermissionPolicy{
		{RoleAdmin, WildcardResource, WildcardAction, EffectAllow},

		{RoleSupervisor, ResourceChild, ActionRead, EffectAllow},
		{RoleSupervisor, ResourceChild, ActionList, EffectAllow},
		{RoleSupervisor, ResourceAssessment, ActionRead, EffectAllow},
		{RoleSupervisor, ResourceAssessment, ActionList, EffectAllow},
		{RoleSupervisor, ResourceReport, ActionRead, EffectAllow},
		{RoleSupervisor, ResourceReport, ActionList, EffectAllow},
		{RoleSupervisor, ResourceCatalog, ActionRead, EffectAllow},
		{RoleSupervisor, ResourceDashboard, ActionRead, EffectAllow},

		{RolePsychologist, ResourceChild, ActionCreate, EffectAllow},
		{RolePsychologist, ResourceChild, ActionUpdate, EffectAllow},
		{RolePsychologist, ResourceChild, ActionDelete, EffectAllow},
		{RolePsychologist, ResourceAssessment, ActionCreate, EffectAllow},
		{RolePsychologist, ResourceAssessment, ActionUpdate, EffectAllow},
		{RolePsychologist, ResourceAssessment, ActionExecute, EffectAllow},
		{RolePsychologist, ResourceReport, ActionCreate, EffectAllow},
		{RolePsychologist, ResourceReport, ActionShare, EffectAllow},
	}
}

// DefaultInheritance makes every psychologist a supervisor as well.
func DefaultInheritance() []Inheritance {
	return []Inheritance{
		{Role: RolePsychologist, Parent: RoleSupervisor},
	}
}

// SeedDefaultPolicies adds the default rows. Existing rows are left alone.
func SeedDefaultPolicies(ctx context.Context, auth IAuthorization) error {
	logger := slog.Default()

	added := 0
	for _, p := range DefaultPolicies() {
		ok, err := auth.AddPermission(ctx, p)
		if err != nil {
			logger.ErrorContext(ctx, "failed to add policy", "policy", p, "error", err)
			return err
		}
		if ok {
			added++
		}
	}
	for _, in := range DefaultInheritance() {
		ok, err := auth.AddInheritance(ctx, in)
		if err != nil {
			logger.ErrorContext(ctx, "failed to add role inheritance", "role", in.Role, "parent", in.Parent, "error", err)
			return err
		}
		if ok {
			added++
		}
	}

	logger.InfoContext(ctx, "seeded default RBAC policies", "added", added)
	return nil
}
