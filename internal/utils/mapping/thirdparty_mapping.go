package mapping

import (
	"github.com/jgbarallobre/Contable/internal/core/domain"
	"github.com/jgbarallobre/Contable/internal/models"
)

// ToModelThirdParty converts a domain ThirdParty to a model ThirdParty
func ToModelThirdParty(d domain.ThirdParty) models.ThirdParty {
	var taxCategory *string
	if d.TaxCategory != nil {
		s := string(*d.TaxCategory)
		taxCategory = &s
	}
	return models.ThirdParty{
		ThirdPartyID:       d.ThirdPartyID,
		CompanyID:          d.CompanyID,
		ThirdPartyType:     string(d.ThirdPartyType),
		RIF:                d.RIF,
		LegalName:          d.LegalName,
		CommercialName:     d.CommercialName,
		FiscalAddress:      d.FiscalAddress,
		Phone:              d.Phone,
		Email:              d.Email,
		ContactPerson:      d.ContactPerson,
		TaxCategory:        taxCategory,
		IsWithholdingAgent: d.IsWithholdingAgent,
		IVAApplicable:      d.IVAApplicable,
		ISLRApplicable:     d.ISLRApplicable,
		IsActive:           d.IsActive,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainThirdParty converts a model ThirdParty to a domain ThirdParty
func ToDomainThirdParty(m models.ThirdParty) domain.ThirdParty {
	var taxCategory *domain.TaxCategory
	if m.TaxCategory != nil {
		c := domain.TaxCategory(*m.TaxCategory)
		taxCategory = &c
	}
	return domain.ThirdParty{
		ThirdPartyID:       m.ThirdPartyID,
		CompanyID:          m.CompanyID,
		ThirdPartyType:     domain.ThirdPartyType(m.ThirdPartyType),
		RIF:                m.RIF,
		LegalName:          m.LegalName,
		CommercialName:     m.CommercialName,
		FiscalAddress:      m.FiscalAddress,
		Phone:              m.Phone,
		Email:              m.Email,
		ContactPerson:      m.ContactPerson,
		TaxCategory:        taxCategory,
		IsWithholdingAgent: m.IsWithholdingAgent,
		IVAApplicable:      m.IVAApplicable,
		ISLRApplicable:     m.ISLRApplicable,
		IsActive:           m.IsActive,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainThirdPartySlice converts a slice of model ThirdParties to domain ThirdParties
func ToDomainThirdPartySlice(ms []models.ThirdParty) []domain.ThirdParty {
	ds := make([]domain.ThirdParty, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainThirdParty(m)
	}
	return ds
}
