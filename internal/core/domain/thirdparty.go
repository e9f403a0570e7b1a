package domain

// ThirdPartyType classifies a counterparty.
type ThirdPartyType string

const (
	ThirdPartyCustomer ThirdPartyType = "CUSTOMER"
	ThirdPartySupplier ThirdPartyType = "SUPPLIER"
	ThirdPartyEmployee ThirdPartyType = "EMPLOYEE"
	ThirdPartyOther    ThirdPartyType = "OTHER"
)

// TaxCategory is the counterparty's fiscal classification.
type TaxCategory string

const (
	TaxOrdinary TaxCategory = "ORDINARY"
	TaxSpecial  TaxCategory = "SPECIAL"
	TaxExent    TaxCategory = "EXENT"
)

// ThirdParty is a customer, supplier, employee or other counterparty that
// journal lines may reference for fiscal reporting.
type ThirdParty struct {
	ThirdPartyID   string         `json:"thirdPartyID"` // Primary key (UUID)
	CompanyID      string         `json:"companyID"`
	ThirdPartyType ThirdPartyType `json:"thirdPartyType"`
	RIF            string         `json:"rif"`
	LegalName      string         `json:"legalName"`
	CommercialName *string        `json:"commercialName,omitempty"`
	FiscalAddress  *string        `json:"fiscalAddress,omitempty"`
	Phone          *string        `json:"phone,omitempty"`
	Email          *string        `json:"email,omitempty"`
	ContactPerson  *string        `json:"contactPerson,omitempty"`

	TaxCategory       *TaxCategory `json:"taxCategory,omitempty"`
	IsWithholdingAgent bool        `json:"isWithholdingAgent"`
	IVAApplicable      bool        `json:"ivaApplicable"`
	ISLRApplicable     bool        `json:"islrApplicable"`

	IsActive bool `json:"isActive"`
	AuditFields
}
