package session

// Role classifies a user into exactly one of the four screen sets. The
// numeric values are part of the identity service wire contract.
type Role int

const (
	// RolePendingStudent is a registered student awaiting approval
	RolePendingStudent Role = iota
	// RoleStudent is an active student
	RoleStudent
	// RoleInstructor teaches courses and grades evaluations
	RoleInstructor
	// RoleSysAdmin administers the whole platform
	RoleSysAdmin
)

// DefaultLandingPath is where unmapped roles (and anonymous visitors) land.
const DefaultLandingPath = "/"

// DefaultLoginPath is the anonymous login screen.
const DefaultLoginPath = "/login"

var homePathByRole = map[Role]string{
	RolePendingStudent: "/pending",
	RoleStudent:        "/student",
	RoleInstructor:     "/instructor",
	RoleSysAdmin:       "/admin",
}

var roleNames = map[Role]string{
	RolePendingStudent: "pending_student",
	RoleStudent:        "student",
	RoleInstructor:     "instructor",
	RoleSysAdmin:       "sysadmin",
}

// IsValid checks if the role is one of the predefined valid roles
func (r Role) IsValid() bool {
	switch r {
	case RolePendingStudent, RoleStudent, RoleInstructor, RoleSysAdmin:
		return true
	default:
		return false
	}
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "unknown"
}

// ParseRole safely converts a numeric wire value into a Role
func ParseRole(v int) (Role, bool) {
	role := Role(v)
	return role, role.IsValid()
}

// GetAllRoles returns all predefined roles in wire order
func GetAllRoles() []Role {
	return []Role{
		RolePendingStudent,
		RoleStudent,
		RoleInstructor,
		RoleSysAdmin,
	}
}

// HomePathFor resolves the home screen for a role. Unmapped roles fall back
// to DefaultLandingPath so a bad wire value never strands the user on a
// guarded screen.
func HomePathFor(role Role) string {
	if path, ok := homePathByRole[role]; ok {
		return path
	}
	return DefaultLandingPath
}

// HomePaths returns a copy of the role to home path table.
func HomePaths() map[Role]string {
	paths := make(map[Role]string, len(homePathByRole))
	for role, path := range homePathByRole {
		paths[role] = path
	}
	return paths
}

// RoleSet is the allow-list consumed by the authenticated-area gate.
type RoleSet map[Role]struct{}

// Roles builds a RoleSet from the given roles
func Roles(roles ...Role) RoleSet {
	set := make(RoleSet, len(roles))
	for _, r := range roles {
		set[r] = struct{}{}
	}
	return set
}

// Contains reports whether the role is in the set
func (rs RoleSet) Contains(role Role) bool {
	_, ok := rs[role]
	return ok
}
