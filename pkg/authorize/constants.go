package authorize

type Action string
type Resource string
type Role string

const (
	ActionCreate  Action = "create"
	ActionRead    Action = "read"
	ActionUpdate  Action = "update"
	ActionDelete  Action = "delete"
	ActionList    Action = "list"
	ActionExecute Action = "execute" // complete an assessment, generate a report
	ActionShare   Action = "share"

	WildcardAction Action = "*"
)

var KnownActions = map[Action]struct{}{
	ActionCreate: {}, ActionRead: {}, ActionUpdate: {}, ActionDelete: {}, ActionList: {},
	ActionExecute: {}, ActionShare: {},
}

const (
	ResourceChild      Resource = "child"
	ResourceAssessment Resource = "assessment"
	ResourceReport     Resource = "report"
	ResourceCatalog    Resource = "catalog"
	ResourceDashboard  Resource = "dashboard"

	WildcardResource Resource = "*"
)

var KnownResources = map[Resource]struct{}{
	ResourceChild: {}, ResourceAssessment: {}, ResourceReport: {},
	ResourceCatalog: {}, ResourceDashboard: {},
}

// Roles arrive in the token's role claim.
const (
	RolePsychologist Role = "psychologist"
	RoleSupervisor   Role = "supervisor" // read-only
	RoleAdmin        Role = "admin"
)

var KnownRoles = map[Role]struct{}{
	RolePsychologist: {},
	RoleSupervisor:   {},
	RoleAdmin:        {},
}

// RoleDisplayNamesHE holds the Hebrew role labels.
var RoleDisplayNamesHE = map[Role]string{
	RolePsychologist: "פסיכולוג/ית",
	RoleSupervisor:   "מדריך/ה",
	RoleAdmin:        "מנהל/ת מערכת",
}

type PolicyEffect string

const (
	EffectAllow PolicyEffect = "allow"
	EffectDeny  PolicyEffect = "deny"
)

// PermissionPolicy is one p row: role, resource, action, effect.
type PermissionPolicy struct {
	Subject Role
	Object  Resource
	Action  Action
	Effect  PolicyEffect
}

// Inheritance is one g row: Role gets every permission of Parent.
type Inheritance struct {
	Role   Role
	Parent Role
}

// DefaultModel is the RBAC model used when no model file is configured.
const DefaultModel = `[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act, eft

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow)) && !some(where (p.eft == deny))

[matchers]
m = g(r.sub, p.sub) && (p.obj == "*" || r.obj == p.obj) && (p.act == "*" || r.act == p.act)
`
