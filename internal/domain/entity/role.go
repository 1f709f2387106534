package entity

// Role ID constants
const (
	RoleIDAdmin  = 1
	RoleIDDoctor = 2
	RoleIDNurse  = 3
)

// RoleNames constants
const (
	RoleAdmin  = "admin"
	RoleDoctor = "doctor"
	RoleNurse  = "nurse"
)

var roleNames = map[int]string{
	RoleIDAdmin:  RoleAdmin,
	RoleIDDoctor: RoleDoctor,
	RoleIDNurse:  RoleNurse,
}

// RoleName returns the name of a role ID, or "" when unknown.
func RoleName(id int) string {
	return roleNames[id]
}

// RoleIDByName returns the ID of a role name.
func RoleIDByName(name string) (int, bool) {
	for id, n := range roleNames {
		if n == name {
			return id, true
		}
	}
	return 0, false
}
