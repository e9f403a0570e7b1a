package mapping

import (
	"github.com/jgbarallobre/Contable/internal/core/domain"
	"github.com/jgbarallobre/Contable/internal/models"
)

// ToModelCompany converts a domain Company to a model Company
func ToModelCompany(d domain.Company) models.Company {
	return models.Company{
		CompanyID:               d.CompanyID,
		Code:                    d.Code,
		LegalName:               d.LegalName,
		CommercialName:          d.CommercialName,
		RIF:                     d.RIF,
		FiscalAddress:           d.FiscalAddress,
		Phone:                   d.Phone,
		Email:                   d.Email,
		Activity:                d.Activity,
		FunctionalCurrency:      d.FunctionalCurrency,
		SecondaryCurrency:       d.SecondaryCurrency,
		IVAAliquot:              d.IVAAliquot,
		ReducedIVAAliquot:       d.ReducedIVAAliquot,
		AdditionalIVAAliquot:    d.AdditionalIVAAliquot,
		IGTFAliquot:             d.IGTFAliquot,
		RetentionPercentage:     d.RetentionPercentage,
		ISLRRetentionPercentage: d.ISLRRetentionPercentage,
		IsActive:                d.IsActive,
		AuditFields:             ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCompany converts a model Company to a domain Company
func ToDomainCompany(m models.Company) domain.Company {
	return domain.Company{
		CompanyID:               m.CompanyID,
		Code:                    m.Code,
		LegalName:               m.LegalName,
		CommercialName:          m.CommercialName,
		RIF:                     m.RIF,
		FiscalAddress:           m.FiscalAddress,
		Phone:                   m.Phone,
		Email:                   m.Email,
		Activity:                m.Activity,
		FunctionalCurrency:      m.FunctionalCurrency,
		SecondaryCurrency:       m.SecondaryCurrency,
		IVAAliquot:              m.IVAAliquot,
		ReducedIVAAliquot:       m.ReducedIVAAliquot,
		AdditionalIVAAliquot:    m.AdditionalIVAAliquot,
		IGTFAliquot:             m.IGTFAliquot,
		RetentionPercentage:     m.RetentionPercentage,
		ISLRRetentionPercentage: m.ISLRRetentionPercentage,
		IsActive:                m.IsActive,
		AuditFields:             ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCompanySlice converts a slice of model Companies to domain Companies
func ToDomainCompanySlice(ms []models.Company) []domain.Company {
	ds := make([]domain.Company, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCompany(m)
	}
	return ds
}

// ToModelUserCompany converts a domain UserCompany membership to its model.
func ToModelUserCompany(d domain.UserCompany) models.UserCompany {
	return models.UserCompany{
		UserCompanyID: d.UserCompanyID,
		UserID:        d.UserID,
		CompanyID:     d.CompanyID,
		RoleID:        d.RoleID,
		IsDefault:     d.IsDefault,
		IsActive:      d.IsActive,
	}
}

// ToDomainUserCompany converts a model UserCompany membership to its domain form.
func ToDomainUserCompany(m models.UserCompany) domain.UserCompany {
	return domain.UserCompany{
		UserCompanyID: m.UserCompanyID,
		UserID:        m.UserID,
		CompanyID:     m.CompanyID,
		RoleID:        m.RoleID,
		IsDefault:     m.IsDefault,
		IsActive:      m.IsActive,
	}
}
