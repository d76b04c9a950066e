package domain

type DocumentParty string

const (
	DocumentPartyTenant   DocumentParty = "TENANT"
	DocumentPartyLandlord DocumentParty = "LANDLORD"
)

// DocRequirement is one document type the booking's tenant or landlord must
// upload before admin approval. The set is derived from property, unit type
// and party nationality by the document-requirement catalog.
type DocRequirement struct {
	TypeID   string        `json:"type_id"`
	NameEn   string        `json:"name_en"`
	NameAr   string        `json:"name_ar"`
	Party    DocumentParty `json:"party"`
	Required bool          `json:"required"`
}

// BankAccount is a directory entry used to prefill payee bank metadata on
// rent cheques.
type BankAccount struct {
	ID            int32  `json:"id"`
	BankName      string `json:"bank_name"`
	BankBranch    string `json:"bank_branch"`
	AccountNumber string `json:"account_number"`
	AccountName   string `json:"account_name"`
}
