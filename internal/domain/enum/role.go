package enum

// Role represents a user's role in the back office.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleReception Role = "reception"
	RoleKitchen   Role = "kitchen"
	RoleStaff     Role = "staff"
)

// Valid reports whether r is one of the declared roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleReception, RoleKitchen, RoleStaff:
		return true
	}
	return false
}
