package domain

import "github.com/shopspring/decimal"

// Company is one accounting entity. Users are linked to companies through
// memberships that carry the role whose permissions apply within that company.
type Company struct {
	CompanyID      string  `json:"companyID"` // Primary key (UUID)
	Code           string  `json:"code"`      // Short unique code
	LegalName      string  `json:"legalName"`
	CommercialName *string `json:"commercialName,omitempty"`
	RIF            string  `json:"rif"` // Venezuelan tax id, e.g. J-12345678-9
	FiscalAddress  string  `json:"fiscalAddress"`
	Phone          *string `json:"phone,omitempty"`
	Email          *string `json:"email,omitempty"`
	Activity       *string `json:"activity,omitempty"`

	FunctionalCurrency string  `json:"functionalCurrency"` // Default VES
	SecondaryCurrency  *string `json:"secondaryCurrency,omitempty"`

	// Fiscal aliquots applied when building tax lines.
	IVAAliquot              decimal.Decimal `json:"ivaAliquot"`
	ReducedIVAAliquot       decimal.Decimal `json:"reducedIVAAliquot"`
	AdditionalIVAAliquot    decimal.Decimal `json:"additionalIVAAliquot"`
	IGTFAliquot             decimal.Decimal `json:"igtfAliquot"`
	RetentionPercentage     decimal.Decimal `json:"retentionPercentage"`
	ISLRRetentionPercentage decimal.Decimal `json:"islrRetentionPercentage"`

	IsActive bool `json:"isActive"`
	AuditFields
}

// UserCompany links a user to a company with a role. IsDefault marks the
// company selected at login when none is requested.
type UserCompany struct {
	UserCompanyID string `json:"userCompanyID"`
	UserID        string `json:"userID"`
	CompanyID     string `json:"companyID"`
	RoleID        string `json:"roleID"`
	IsDefault     bool   `json:"isDefault"`
	IsActive      bool   `json:"isActive"`
}

// Role groups permissions. System roles are shared; others belong to a company.
type Role struct {
	RoleID      string  `json:"roleID"`
	CompanyID   *string `json:"companyID,omitempty"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	IsSystem    bool    `json:"isSystem"`
	IsActive    bool    `json:"isActive"`
}
