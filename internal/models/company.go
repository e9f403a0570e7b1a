package models

import "github.com/shopspring/decimal"

// Company is the persistence model for companies rows.
type Company struct {
	CompanyID      string  `json:"companyID"`
	Code           string  `json:"code"`
	LegalName      string  `json:"legalName"`
	CommercialName *string `json:"commercialName,omitempty"`
	RIF            string  `json:"rif"`
	FiscalAddress  string  `json:"fiscalAddress"`
	Phone          *string `json:"phone,omitempty"`
	Email          *string `json:"email,omitempty"`
	Activity       *string `json:"activity,omitempty"`

	FunctionalCurrency string  `json:"functionalCurrency"`
	SecondaryCurrency  *string `json:"secondaryCurrency,omitempty"`

	IVAAliquot              decimal.Decimal `json:"ivaAliquot"`
	ReducedIVAAliquot       decimal.Decimal `json:"reducedIVAAliquot"`
	AdditionalIVAAliquot    decimal.Decimal `json:"additionalIVAAliquot"`
	IGTFAliquot             decimal.Decimal `json:"igtfAliquot"`
	RetentionPercentage     decimal.Decimal `json:"retentionPercentage"`
	ISLRRetentionPercentage decimal.Decimal `json:"islrRetentionPercentage"`

	IsActive bool `json:"isActive"`
	AuditFields
}

// UserCompany is the persistence model for user_companies membership rows.
type UserCompany struct {
	UserCompanyID string `json:"userCompanyID"`
	UserID        string `json:"userID"`
	CompanyID     string `json:"companyID"`
	RoleID        string `json:"roleID"`
	IsDefault     bool   `json:"isDefault"`
	IsActive      bool   `json:"isActive"`
}
