package domain

import "fmt"

// SuperPermission short-circuits every permission check.
const SuperPermission = "*:*"

// PermissionSet is the flat capability set carried by an authenticated caller:
// "module:action" strings plus the optional super capability.
type PermissionSet []string

// Allows reports whether the set grants the given module/action pair.
// It is a pure function; absence of the exact string (and of the super
// capability) means denial.
func (p PermissionSet) Allows(module, action string) bool {
	required := fmt.Sprintf("%s:%s", module, action)
	for _, perm := range p {
		if perm == SuperPermission || perm == required {
			return true
		}
	}
	return false
}

// AuthUser is the caller identity assembled by the auth middleware from the
// verified token claims. Services receive it as a plain parameter; they never
// fetch identity themselves.
type AuthUser struct {
	UserID      string        `json:"userID"`
	Username    string        `json:"username"`
	CompanyID   string        `json:"companyID"` // currently selected company
	RoleID      string        `json:"roleID"`
	Permissions PermissionSet `json:"permissions"`
}

// IsZero reports whether no caller identity is present.
func (u AuthUser) IsZero() bool {
	return u.UserID == ""
}
