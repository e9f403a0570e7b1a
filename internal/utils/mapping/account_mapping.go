package mapping

import (
	"github.com/jgbarallobre/Contable/internal/core/domain"
	"github.com/jgbarallobre/Contable/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:        d.AccountID,
		CompanyID:        d.CompanyID,
		AccountCode:      d.AccountCode,
		AccountName:      d.AccountName,
		ParentAccountID:  d.ParentAccountID,
		Level:            d.Level,
		Nature:           string(d.Nature),
		AccountType:      string(d.AccountType),
		RequiresMovement: d.RequiresMovement,
		RequiresThird:    d.RequiresThird,
		RequiresCostCtr:  d.RequiresCostCtr,
		AllowsManual:     d.AllowsManual,
		Currency:         d.Currency,
		IsCashFlowItem:   d.IsCashFlowItem,
		IsActive:         d.IsActive,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:        m.AccountID,
		CompanyID:        m.CompanyID,
		AccountCode:      m.AccountCode,
		AccountName:      m.AccountName,
		ParentAccountID:  m.ParentAccountID,
		Level:            m.Level,
		Nature:           domain.AccountNature(m.Nature),
		AccountType:      domain.AccountType(m.AccountType),
		RequiresMovement: m.RequiresMovement,
		RequiresThird:    m.RequiresThird,
		RequiresCostCtr:  m.RequiresCostCtr,
		AllowsManual:     m.AllowsManual,
		Currency:         m.Currency,
		IsCashFlowItem:   m.IsCashFlowItem,
		IsActive:         m.IsActive,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAccountSlice converts a slice of model Accounts to domain Accounts
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}
