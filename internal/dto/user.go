package dto

import (
	"time"

	"github.com/jgbarallobre/Contable/internal/core/domain"
)

// LoginRequest defines the credentials for password login. Username accepts
// either the username or the registered email.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is the successful login payload.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
	CompanyID string       `json:"companyID"`
	RoleID    string       `json:"roleID"`
}

// CreateUserRequest defines the data needed to register a user.
type CreateUserRequest struct {
	Username  string  `json:"username" binding:"required,min=3"`
	Email     string  `json:"email" binding:"required,email"`
	Password  string  `json:"password" binding:"required,min=8"`
	FirstName string  `json:"firstName" binding:"required"`
	LastName  string  `json:"lastName" binding:"required"`
	Phone     *string `json:"phone"`
}

// UpdateUserRequest defines the fields a user update may patch.
type UpdateUserRequest struct {
	Email              *string `json:"email" binding:"omitempty,email"`
	FirstName          *string `json:"firstName"`
	LastName           *string `json:"lastName"`
	Phone              *string `json:"phone"`
	IsActive           *bool   `json:"isActive"`
	IsBlocked          *bool   `json:"isBlocked"`
	MustChangePassword *bool   `json:"mustChangePassword"`
}

// ChangePasswordRequest carries a password change for the calling user.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
}

// ListUsersParams defines query parameters for listing users.
type ListUsersParams struct {
	Page     int     `form:"page,default=1"`
	PageSize int     `form:"pageSize,default=20"`
	Search   *string `form:"search"`
}

// UserResponse defines the data returned for a user. The password hash is
// never included.
type UserResponse struct {
	UserID             string     `json:"userID"`
	Username           string     `json:"username"`
	Email              string     `json:"email"`
	FirstName          string     `json:"firstName"`
	LastName           string     `json:"lastName"`
	Phone              *string    `json:"phone,omitempty"`
	IsActive           bool       `json:"isActive"`
	IsBlocked          bool       `json:"isBlocked"`
	MustChangePassword bool       `json:"mustChangePassword"`
	LastLoginAt        *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
}

// ToUserResponse converts a domain.User to UserResponse.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:             u.UserID,
		Username:           u.Username,
		Email:              u.Email,
		FirstName:          u.FirstName,
		LastName:           u.LastName,
		Phone:              u.Phone,
		IsActive:           u.IsActive,
		IsBlocked:          u.IsBlocked,
		MustChangePassword: u.MustChangePassword,
		LastLoginAt:        u.LastLoginAt,
		CreatedAt:          u.CreatedAt,
	}
}

// ToListUserResponse converts a slice of domain.User to DTOs.
func ToListUserResponse(users []domain.User) []UserResponse {
	res := make([]UserResponse, len(users))
	for i, u := range users {
		res[i] = ToUserResponse(&u)
	}
	return res
}
