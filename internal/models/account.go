package models

// Account is the persistence model for chart_of_accounts rows.
type Account struct {
	AccountID        string  `json:"accountID"`
	CompanyID        string  `json:"companyID"`
	AccountCode      string  `json:"accountCode"`
	AccountName      string  `json:"accountName"`
	ParentAccountID  *string `json:"parentAccountID,omitempty"`
	Level            int     `json:"level"`
	Nature           string  `json:"nature"`
	AccountType      string  `json:"accountType"`
	RequiresMovement bool    `json:"requiresMovement"`
	RequiresThird    bool    `json:"requiresThirdParty"`
	RequiresCostCtr  bool    `json:"requiresCostCenter"`
	AllowsManual     bool    `json:"allowsManualEntry"`
	Currency         string  `json:"currency"`
	IsCashFlowItem   bool    `json:"isCashFlowItem"`
	IsActive         bool    `json:"isActive"`
	AuditFields
}
