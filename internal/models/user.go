package models

import "time"

// User is the persistence model for users rows.
type User struct {
	UserID       string  `json:"userID"`
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
