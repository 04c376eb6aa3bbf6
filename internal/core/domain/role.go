package domain

// The role enumeration is closed: the catalog may describe these roles but
// cannot introduce new names.
const (
	RoleAdmin    = "Admin"
	RoleEmployee = "Employee"
)

// Role is a describable catalog entry. Accounts reference role names by
// value, not by ID, so renaming a Role does not cascade into accounts.
type Role struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// BaseRoleNames returns the closed role enumeration in a fixed order.
func BaseRoleNames() []string {
	return []string{RoleAdmin, RoleEmployee}
}

// ValidRoleName reports whether name belongs to the closed enumeration.
func ValidRoleName(name string) bool {
	return name == RoleAdmin || name == RoleEmployee
}
