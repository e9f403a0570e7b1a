package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jgbarallobre/Contable/internal/core/domain"
)

// CreateCompanyRequest defines the data needed to create a company. Creation
// also bootstraps the creator's membership and the current year's periods.
type CreateCompanyRequest struct {
	Code           string  `json:"code" binding:"required"`
	LegalName      string  `json:"legalName" binding:"required"`
	CommercialName *string `json:"commercialName"`
	RIF            string  `json:"rif" binding:"required,rif"`
	FiscalAddress  string  `json:"fiscalAddress" binding:"required"`
	Phone          *string `json:"phone"`
	Email          *string `json:"email" binding:"omitempty,email"`
	Activity       *string `json:"activity"`

	FunctionalCurrency string  `json:"functionalCurrency"`
	SecondaryCurrency  *string `json:"secondaryCurrency"`

	IVAAliquot              decimal.Decimal `json:"ivaAliquot"`
	ReducedIVAAliquot       decimal.Decimal `json:"reducedIVAAliquot"`
	AdditionalIVAAliquot    decimal.Decimal `json:"additionalIVAAliquot"`
	IGTFAliquot             decimal.Decimal `json:"igtfAliquot"`
	RetentionPercentage     decimal.Decimal `json:"retentionPercentage"`
	ISLRRetentionPercentage decimal.Decimal `json:"islrRetentionPercentage"`
}

// UpdateCompanyRequest defines the fields a company update may patch.
type UpdateCompanyRequest struct {
	LegalName               *string          `json:"legalName"`
	CommercialName          *string          `json:"commercialName"`
	FiscalAddress           *string          `json:"fiscalAddress"`
	Phone                   *string          `json:"phone"`
	Email                   *string          `json:"email" binding:"omitempty,email"`
	Activity                *string          `json:"activity"`
	SecondaryCurrency       *string          `json:"secondaryCurrency"`
	IVAAliquot              *decimal.Decimal `json:"ivaAliquot"`
	ReducedIVAAliquot       *decimal.Decimal `json:"reducedIVAAliquot"`
	AdditionalIVAAliquot    *decimal.Decimal `json:"additionalIVAAliquot"`
	IGTFAliquot             *decimal.Decimal `json:"igtfAliquot"`
	RetentionPercentage     *decimal.Decimal `json:"retentionPercentage"`
	ISLRRetentionPercentage *decimal.Decimal `json:"islrRetentionPercentage"`
	IsActive                *bool            `json:"isActive"`
}

// CompanyResponse defines the data returned for a company.
type CompanyResponse struct {
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

	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `json:"createdBy"`
}

// ToCompanyResponse converts a domain.Company to CompanyResponse.
func ToCompanyResponse(c *domain.Company) CompanyResponse {
	return CompanyResponse{
		CompanyID:               c.CompanyID,
		Code:                    c.Code,
		LegalName:               c.LegalName,
		CommercialName:          c.CommercialName,
		RIF:                     c.RIF,
		FiscalAddress:           c.FiscalAddress,
		Phone:                   c.Phone,
		Email:                   c.Email,
		Activity:                c.Activity,
		FunctionalCurrency:      c.FunctionalCurrency,
		SecondaryCurrency:       c.SecondaryCurrency,
		IVAAliquot:              c.IVAAliquot,
		ReducedIVAAliquot:       c.ReducedIVAAliquot,
		AdditionalIVAAliquot:    c.AdditionalIVAAliquot,
		IGTFAliquot:             c.IGTFAliquot,
		RetentionPercentage:     c.RetentionPercentage,
		ISLRRetentionPercentage: c.ISLRRetentionPercentage,
		IsActive:                c.IsActive,
		CreatedAt:               c.CreatedAt,
		CreatedBy:               c.CreatedBy,
	}
}

// ToListCompanyResponse converts a slice of domain.Company to DTOs.
func ToListCompanyResponse(companies []domain.Company) []CompanyResponse {
	res := make([]CompanyResponse, len(companies))
	for i, c := range companies {
		res[i] = ToCompanyResponse(&c)
	}
	return res
}
