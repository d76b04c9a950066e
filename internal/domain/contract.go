package domain

import "time"

type ContractStatus string

const (
	ContractStatusDraft            ContractStatus = "DRAFT"
	ContractStatusAdminApproved    ContractStatus = "ADMIN_APPROVED"
	ContractStatusTenantApproved   ContractStatus = "TENANT_APPROVED"
	ContractStatusLandlordApproved ContractStatus = "LANDLORD_APPROVED"
	ContractStatusApproved         ContractStatus = "APPROVED"
	ContractStatusCancelled        ContractStatus = "CANCELLED"
)

type PaymentMethod string

const (
	PaymentMethodCash              PaymentMethod = "cash"
	PaymentMethodCheck             PaymentMethod = "check"
	PaymentMethodBankTransfer      PaymentMethod = "bank_transfer"
	PaymentMethodElectronicPayment PaymentMethod = "electronic_payment"
)

type PaymentFrequency string

const (
	PaymentFrequencyMonthly    PaymentFrequency = "monthly"
	PaymentFrequencyBimonthly  PaymentFrequency = "bimonthly"
	PaymentFrequencyQuarterly  PaymentFrequency = "quarterly"
	PaymentFrequencySemiannual PaymentFrequency = "semiannual"
	PaymentFrequencyAnnual     PaymentFrequency = "annual"
)

// PeriodMonths returns the number of months covered by one rent payment.
// Unknown frequencies fall back to monthly.
func (f PaymentFrequency) PeriodMonths() int {
	switch f {
	case PaymentFrequencyBimonthly:
		return 2
	case PaymentFrequencyQuarterly:
		return 3
	case PaymentFrequencySemiannual:
		return 6
	case PaymentFrequencyAnnual:
		return 12
	default:
		return 1
	}
}

type ChequeOwnerType string

const (
	ChequeOwnerTenant          ChequeOwnerType = "tenant"
	ChequeOwnerOtherIndividual ChequeOwnerType = "other_individual"
	ChequeOwnerCompany         ChequeOwnerType = "company"
)

// Party holds the identity fields of a contract party (tenant or landlord).
// NationalID applies to citizens; passport number and expiry apply otherwise.
type Party struct {
	Name           string `json:"name"`
	Nationality    string `json:"nationality"`
	Gender         string `json:"gender"`
	PhoneNumber    string `json:"phone_number"`
	Email          string `json:"email"`
	NationalID     string `json:"national_id"`
	PassportNumber string `json:"passport_number"`
	PassportExpiry string `json:"passport_expiry"`
	Workplace      string `json:"workplace"`
}

// PayeeInfo is the bank/account metadata applied uniformly to all rent
// cheques of a contract.
type PayeeInfo struct {
	OwnerType     ChequeOwnerType `json:"owner_type"`
	OwnerName     string          `json:"owner_name"`
	OwnerCivilID  string          `json:"owner_civil_id"`
	BankName      string          `json:"bank_name"`
	BankBranch    string          `json:"bank_branch"`
	AccountNumber string          `json:"account_number"`
	AccountName   string          `json:"account_name"`
}

type Contract struct {
	ID         int32          `json:"id"`
	BookingID  *int32         `json:"booking_id,omitempty"`
	PropertyID int32          `json:"property_id"`
	UnitType   string         `json:"unit_type"`
	Status     ContractStatus `json:"status"`

	AdminApprovedAt    *time.Time `json:"admin_approved_at,omitempty"`
	TenantApprovedAt   *time.Time `json:"tenant_approved_at,omitempty"`
	LandlordApprovedAt *time.Time `json:"landlord_approved_at,omitempty"`

	Tenant   Party `json:"tenant"`
	Landlord Party `json:"landlord"`

	// Commercial terms. Dates are yyyy-mm-dd strings; EndDate is derived
	// from StartDate + DurationMonths and never hand-edited.
	MonthlyRent          float64          `json:"monthly_rent"`
	DurationMonths       int              `json:"duration_months"`
	StartDate            string           `json:"start_date"`
	EndDate              string           `json:"end_date"`
	ActualRentalDate     string           `json:"actual_rental_date"`
	RentDueDay           int              `json:"rent_due_day"`
	RentPaymentMethod    PaymentMethod    `json:"rent_payment_method"`
	RentPaymentFrequency PaymentFrequency `json:"rent_payment_frequency"`
	CustomMonthlyRents   []float64        `json:"custom_monthly_rents,omitempty"`
	DiscountAmount       float64          `json:"discount_amount"`

	DepositAmount               float64 `json:"deposit_amount"`
	DepositCashAmount           float64 `json:"deposit_cash_amount"`
	DepositChequeRequired       bool    `json:"deposit_cheque_required"`
	DepositChequeDurationMonths int     `json:"deposit_cheque_duration_months"`

	// Derived fields, recomputed on every terms edit.
	MunicipalityFees      float64 `json:"municipality_fees"`
	GracePeriodDays       int     `json:"grace_period_days"`
	GracePeriodAmount     float64 `json:"grace_period_amount"`
	MonthlyVATAmount      float64 `json:"monthly_vat_amount"`
	TotalVATAmount        float64 `json:"total_vat_amount"`
	MonthlyOtherTaxAmount float64 `json:"monthly_other_tax_amount"`
	TotalOtherTaxAmount   float64 `json:"total_other_tax_amount"`

	Payee PayeeInfo `json:"payee"`

	CreatedOn string `json:"created_on"`
	UpdatedOn string `json:"updated_on"`
}

// TotalRent is the rent over the whole term: the sum of the custom monthly
// rents when set, otherwise uniform rent times duration.
func (c *Contract) TotalRent() float64 {
	if len(c.CustomMonthlyRents) > 0 {
		var total float64
		for _, r := range c.CustomMonthlyRents {
			total += r
		}
		return total
	}
	return c.MonthlyRent * float64(c.DurationMonths)
}

// EffectiveDurationMonths is the duration the schedule generator works
// against: the custom rent list overrides the stated duration when present.
func (c *Contract) EffectiveDurationMonths() int {
	if len(c.CustomMonthlyRents) > 0 {
		return len(c.CustomMonthlyRents)
	}
	return c.DurationMonths
}

// IsTerminal reports whether no further status transitions are possible.
func (s ContractStatus) IsTerminal() bool {
	return s == ContractStatusApproved || s == ContractStatusCancelled
}

// Editable reports whether commercial terms may be modified. Terms are
// editable in DRAFT, or in ADMIN_APPROVED when the caller holds the
// session-level edit-mode toggle.
func (c *Contract) Editable(editMode bool) bool {
	if c.Status == ContractStatusDraft {
		return true
	}
	return c.Status == ContractStatusAdminApproved && editMode
}
