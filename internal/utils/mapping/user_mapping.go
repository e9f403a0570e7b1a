package mapping

import (
	"github.com/jgbarallobre/Contable/internal/core/domain"
	"github.com/jgbarallobre/Contable/internal/models"
)

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:              d.UserID,
		Username:            d.Username,
		Email:               d.Email,
		PasswordHash:        d.PasswordHash,
		FirstName:           d.FirstName,
		LastName:            d.LastName,
		Phone:               d.Phone,
		IsActive:            d.IsActive,
		IsBlocked:           d.IsBlocked,
		Is2FAEnabled:        d.Is2FAEnabled,
		MustChangePassword:  d.MustChangePassword,
		LastLoginAt:         d.LastLoginAt,
		FailedLoginAttempts: d.FailedLoginAttempts,
		AuditFields:         ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:              m.UserID,
		Username:            m.Username,
		Email:               m.Email,
		PasswordHash:        m.PasswordHash,
		FirstName:           m.FirstName,
		LastName:            m.LastName,
		Phone:               m.Phone,
		IsActive:            m.IsActive,
		IsBlocked:           m.IsBlocked,
		Is2FAEnabled:        m.Is2FAEnabled,
		MustChangePassword:  m.MustChangePassword,
		LastLoginAt:         m.LastLoginAt,
		FailedLoginAttempts: m.FailedLoginAttempts,
		AuditFields:         ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainUserSlice converts a slice of model Users to domain Users
func ToDomainUserSlice(ms []models.User) []domain.User {
	ds := make([]domain.User, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainUser(m)
	}
	return ds
}
