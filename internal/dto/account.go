package dto

import (
	"time"

	"github.com/jgbarallobre/Contable/internal/core/domain"
)

// CreateAccountRequest defines the data needed to create a chart account.
// Level is never supplied by the caller; it is derived from the parent.
type CreateAccountRequest struct {
	AccountCode      string               `json:"accountCode" binding:"required"`
	AccountName      string               `json:"accountName" binding:"required"`
	ParentAccountID  *string              `json:"parentAccountID"`
	Nature           domain.AccountNature `json:"nature" binding:"required,oneof=DEBIT CREDIT"`
	AccountType      domain.AccountType   `json:"accountType" binding:"required,oneof=ASSET LIABILITY EQUITY INCOME EXPENSE OFFBALANCE"`
	RequiresMovement bool                 `json:"requiresMovement"`
	RequiresThird    bool                 `json:"requiresThirdParty"`
	RequiresCostCtr  bool                 `json:"requiresCostCenter"`
	AllowsManual     bool                 `json:"allowsManualEntry"`
	Currency         string               `json:"currency"`
	IsCashFlowItem   bool                 `json:"isCashFlowItem"`
}

// UpdateAccountRequest defines the fields an account update may patch.
// Pointers distinguish omitted fields from zero values; the field set is
// fixed here, callers never name columns.
type UpdateAccountRequest struct {
	AccountName      *string `json:"accountName"`
	RequiresMovement *bool   `json:"requiresMovement"`
	RequiresThird    *bool   `json:"requiresThirdParty"`
	RequiresCostCtr  *bool   `json:"requiresCostCenter"`
	AllowsManual     *bool   `json:"allowsManualEntry"`
	Currency         *string `json:"currency"`
	IsCashFlowItem   *bool   `json:"isCashFlowItem"`
	IsActive         *bool   `json:"isActive"`
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	ActiveOnly bool `form:"activeOnly,default=false"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID        string               `json:"accountID"`
	CompanyID        string               `json:"companyID"`
	AccountCode      string               `json:"accountCode"`
	AccountName      string               `json:"accountName"`
	ParentAccountID  *string              `json:"parentAccountID,omitempty"`
	Level            int                  `json:"level"`
	Nature           domain.AccountNature `json:"nature"`
	AccountType      domain.AccountType   `json:"accountType"`
	RequiresMovement bool                 `json:"requiresMovement"`
	RequiresThird    bool                 `json:"requiresThirdParty"`
	RequiresCostCtr  bool                 `json:"requiresCostCenter"`
	AllowsManual     bool                 `json:"allowsManualEntry"`
	Currency         string               `json:"currency"`
	IsCashFlowItem   bool                 `json:"isCashFlowItem"`
	IsActive         bool                 `json:"isActive"`
	CreatedAt        time.Time            `json:"createdAt"`
	CreatedBy        string               `json:"createdBy"`
	LastUpdatedAt    time.Time            `json:"lastUpdatedAt"`
	LastUpdatedBy    string               `json:"lastUpdatedBy"`
}

// ToAccountResponse converts a domain.Account to AccountResponse.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:        acc.AccountID,
		CompanyID:        acc.CompanyID,
		AccountCode:      acc.AccountCode,
		AccountName:      acc.AccountName,
		ParentAccountID:  acc.ParentAccountID,
		Level:            acc.Level,
		Nature:           acc.Nature,
		AccountType:      acc.AccountType,
		RequiresMovement: acc.RequiresMovement,
		RequiresThird:    acc.RequiresThird,
		RequiresCostCtr:  acc.RequiresCostCtr,
		AllowsManual:     acc.AllowsManual,
		Currency:         acc.Currency,
		IsCashFlowItem:   acc.IsCashFlowItem,
		IsActive:         acc.IsActive,
		CreatedAt:        acc.CreatedAt,
		CreatedBy:        acc.CreatedBy,
		LastUpdatedAt:    acc.LastUpdatedAt,
		LastUpdatedBy:    acc.LastUpdatedBy,
	}
}

// ToListAccountResponse converts a slice of domain.Account to DTOs.
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return res
}
