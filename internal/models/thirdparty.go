package models

// ThirdParty is the persistence model for third_parties rows.
type ThirdParty struct {
	ThirdPartyID   string  `json:"thirdPartyID"`
	CompanyID      string  `json:"companyID"`
	ThirdPartyType string  `json:"thirdPartyType"`
	RIF            string  `json:"rif"`
	LegalName      string  `json:"legalName"`
	CommercialName *string `json:"commercialName,omitempty"`
	FiscalAddress  *string `json:"fiscalAddress,omitempty"`
	Phone          *string `json:"phone,omitempty"`
	Email          *string `json:"email,omitempty"`
	ContactPerson  *string `json:"contactPerson,omitempty"`

	TaxCategory        *string `json:"taxCategory,omitempty"`
	IsWithholdingAgent bool    `json:"isWithholdingAgent"`
	IVAApplicable      bool    `json:"ivaApplicable"`
	ISLRApplicable     bool    `json:"islrApplicable"`

	IsActive bool `json:"isActive"`
	AuditFields
}
