package domain

// AccountNature defines the normal balance side of an account.
type AccountNature string

const (
	NatureDebit  AccountNature = "DEBIT"
	NatureCredit AccountNature = "CREDIT"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset      AccountType = "ASSET"
	Liability  AccountType = "LIABILITY"
	Equity     AccountType = "EQUITY"
	Income     AccountType = "INCOME"
	Expense    AccountType = "EXPENSE"
	OffBalance AccountType = "OFFBALANCE"
)

// Account is one node of a company's chart of accounts. The tree is kept as id
// references: ParentAccountID points at the parent row, never at the struct,
// and Level is computed once at creation time (parent.Level+1, or 1 for roots).
type Account struct {
	AccountID        string        `json:"accountID"`   // Primary key (UUID)
	CompanyID        string        `json:"companyID"`   // FK -> companies
	AccountCode      string        `json:"accountCode"` // Unique within the company
	AccountName      string        `json:"accountName"`
	ParentAccountID  *string       `json:"parentAccountID,omitempty"` // Nullable self reference
	Level            int           `json:"level"`
	Nature           AccountNature `json:"nature"`
	AccountType      AccountType   `json:"accountType"`
	RequiresMovement bool          `json:"requiresMovement"`
	RequiresThird    bool          `json:"requiresThirdParty"`
	RequiresCostCtr  bool          `json:"requiresCostCenter"`
	AllowsManual     bool          `json:"allowsManualEntry"`
	Currency         string        `json:"currency"`
	IsCashFlowItem   bool          `json:"isCashFlowItem"`
	IsActive         bool          `json:"isActive"`
	AuditFields
}
