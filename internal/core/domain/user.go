package domain

import "time"

// User is an application user. PasswordHash is a bcrypt hash and never leaves
// the service layer.
type User struct {
	UserID       string  `json:"userID"` // Primary key (UUID)
	Username     string  `json:"username"`
	Email        string  `json:"email"`
	PasswordHash string  `json:"-"`
	FirstName    string  `json:"firstName"`
	LastName     string  `json:"lastName"`
	Phone        *string `json:"phone,omitempty"`

	IsActive            bool       `json:"isActive"`
	IsBlocked           bool       `json:"isBlocked"`
	Is2FAEnabled        bool       `json:"is2FAEnabled"`
	MustChangePassword  bool       `json:"mustChangePassword"`
	LastLoginAt         *time.Time `json:"lastLoginAt,omitempty"`
	FailedLoginAttempts int        `json:"failedLoginAttempts"`

	AuditFields
}
