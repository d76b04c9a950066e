package domain

import (
	"fmt"
	"time"
)

// Well-known check types. Property or unit-type specific types come from
// the check-requirement catalog on top of these.
const (
	CheckTypeRentCheque     = "RENT_CHEQUE"
	CheckTypeSecurityCheque = "SECURITY_CHEQUE"
)

// RequiredCheck is one slot in the generated payment schedule. It is not
// persisted by itself; the reconciler merges it with stored CheckRecords.
type RequiredCheck struct {
	TypeID  string `json:"type_id"`
	NameEn  string `json:"name_en"`
	NameAr  string `json:"name_ar"`
	Ordinal int    `json:"ordinal"` // 1-based within its type
	Amount  float64 `json:"amount"`
	DueDate string  `json:"due_date"` // always empty for security cheques
}

// SlotKey identifies a schedule slot stably across regenerations, so the
// reconciler merges by identity rather than by raw array position.
func (rc RequiredCheck) SlotKey() string {
	return fmt.Sprintf("%s#%d", rc.TypeID, rc.Ordinal)
}

// CheckRecord is the persisted counterpart of a RequiredCheck. Position
// mirrors generator order; SlotKey carries the stable identity.
type CheckRecord struct {
	ID         int32  `json:"id"`
	ContractID int32  `json:"contract_id"`
	Position   int32  `json:"position"`
	SlotKey    string `json:"slot_key"`
	TypeID     string `json:"type_id"`
	NameEn     string `json:"name_en"`
	NameAr     string `json:"name_ar"`

	CheckNumber   string  `json:"check_number"`
	Amount        float64 `json:"amount"`
	Date          string  `json:"date"` // empty for security cheques
	AccountNumber string  `json:"account_number"`
	AccountName   string  `json:"account_name"`
	ImageURL      string  `json:"image_url"`

	Approved   bool       `json:"approved"`
	ApprovedAt *time.Time `json:"approved_at,omitempty"`

	CreatedOn string `json:"created_on"`
	UpdatedOn string `json:"updated_on"`
}
