package dto

import (
	"time"

	"github.com/jgbarallobre/Contable/internal/core/domain"
)

// CreateThirdPartyRequest defines the data needed to register a counterparty.
type CreateThirdPartyRequest struct {
	ThirdPartyType domain.ThirdPartyType `json:"thirdPartyType" binding:"required,oneof=CUSTOMER SUPPLIER EMPLOYEE OTHER"`
	RIF            string                `json:"rif" binding:"required,rif"`
	LegalName      string                `json:"legalName" binding:"required"`
	CommercialName *string               `json:"commercialName"`
	FiscalAddress  *string               `json:"fiscalAddress"`
	Phone          *string               `json:"phone"`
	Email          *string               `json:"email" binding:"omitempty,email"`
	ContactPerson  *string               `json:"contactPerson"`

	TaxCategory        *domain.TaxCategory `json:"taxCategory" binding:"omitempty,oneof=ORDINARY SPECIAL EXENT"`
	IsWithholdingAgent bool                `json:"isWithholdingAgent"`
	IVAApplicable      bool                `json:"ivaApplicable"`
	ISLRApplicable     bool                `json:"islrApplicable"`
}

// UpdateThirdPartyRequest defines the fields a third party update may patch.
type UpdateThirdPartyRequest struct {
	LegalName          *string             `json:"legalName"`
	CommercialName     *string             `json:"commercialName"`
	FiscalAddress      *string             `json:"fiscalAddress"`
	Phone              *string             `json:"phone"`
	Email              *string             `json:"email" binding:"omitempty,email"`
	ContactPerson      *string             `json:"contactPerson"`
	TaxCategory        *domain.TaxCategory `json:"taxCategory" binding:"omitempty,oneof=ORDINARY SPECIAL EXENT"`
	IsWithholdingAgent *bool               `json:"isWithholdingAgent"`
	IVAApplicable      *bool               `json:"ivaApplicable"`
	ISLRApplicable     *bool               `json:"islrApplicable"`
	IsActive           *bool               `json:"isActive"`
}

// ListThirdPartiesParams defines query parameters for listing third parties.
type ListThirdPartiesParams struct {
	Page           int     `form:"page,default=1"`
	PageSize       int     `form:"pageSize,default=20"`
	ThirdPartyType *string `form:"thirdPartyType" binding:"omitempty,oneof=CUSTOMER SUPPLIER EMPLOYEE OTHER"`
	Search         *string `form:"search"`
	ActiveOnly     bool    `form:"activeOnly,default=false"`
}

// ThirdPartyResponse defines the data returned for a third party.
type ThirdPartyResponse struct {
	ThirdPartyID   string                `json:"thirdPartyID"`
	CompanyID      string                `json:"companyID"`
	ThirdPartyType domain.ThirdPartyType `json:"thirdPartyType"`
	RIF            string                `json:"rif"`
	LegalName      string                `json:"legalName"`
	CommercialName *string               `json:"commercialName,omitempty"`
	FiscalAddress  *string               `json:"fiscalAddress,omitempty"`
	Phone          *string               `json:"phone,omitempty"`
	Email          *string               `json:"email,omitempty"`
	ContactPerson  *string               `json:"contactPerson,omitempty"`

	TaxCategory        *domain.TaxCategory `json:"taxCategory,omitempty"`
	IsWithholdingAgent bool                `json:"isWithholdingAgent"`
	IVAApplicable      bool                `json:"ivaApplicable"`
	ISLRApplicable     bool                `json:"islrApplicable"`

	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `json:"createdBy"`
}

// ToThirdPartyResponse converts a domain.ThirdParty to ThirdPartyResponse.
func ToThirdPartyResponse(tp *domain.ThirdParty) ThirdPartyResponse {
	return ThirdPartyResponse{
		ThirdPartyID:       tp.ThirdPartyID,
		CompanyID:          tp.CompanyID,
		ThirdPartyType:     tp.ThirdPartyType,
		RIF:                tp.RIF,
		LegalName:          tp.LegalName,
		CommercialName:     tp.CommercialName,
		FiscalAddress:      tp.FiscalAddress,
		Phone:              tp.Phone,
		Email:              tp.Email,
		ContactPerson:      tp.ContactPerson,
		TaxCategory:        tp.TaxCategory,
		IsWithholdingAgent: tp.IsWithholdingAgent,
		IVAApplicable:      tp.IVAApplicable,
		ISLRApplicable:     tp.ISLRApplicable,
		IsActive:           tp.IsActive,
		CreatedAt:          tp.CreatedAt,
		CreatedBy:          tp.CreatedBy,
	}
}

// ToListThirdPartyResponse converts a slice of domain.ThirdParty to DTOs.
func ToListThirdPartyResponse(parties []domain.ThirdParty) []ThirdPartyResponse {
	res := make([]ThirdPartyResponse, len(parties))
	for i, tp := range parties {
		res[i] = ToThirdPartyResponse(&tp)
	}
	return res
}
