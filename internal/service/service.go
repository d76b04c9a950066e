package service

import (
	"context"

	"propdesk-backend/internal/approval"
	"propdesk-backend/internal/domain"
)

// TermsUpdate carries the editable commercial terms of a contract. The
// service applies it in a single reconciliation pass: derived fee/tax/grace
// fields and the payment schedule are both recomputed before anything is
// persisted.
type TermsUpdate struct {
	MonthlyRent                 float64                `json:"monthly_rent"`
	DurationMonths              int                    `json:"duration_months"`
	StartDate                   string                 `json:"start_date"`
	ActualRentalDate            string                 `json:"actual_rental_date"`
	RentDueDay                  int                    `json:"rent_due_day"`
	RentPaymentMethod           domain.PaymentMethod   `json:"rent_payment_method"`
	RentPaymentFrequency        domain.PaymentFrequency `json:"rent_payment_frequency"`
	CustomMonthlyRents          []float64              `json:"custom_monthly_rents"`
	DiscountAmount              float64                `json:"discount_amount"`
	DepositAmount               float64                `json:"deposit_amount"`
	DepositChequeRequired       bool                   `json:"deposit_cheque_required"`
	DepositChequeDurationMonths int                    `json:"deposit_cheque_duration_months"`
	Payee                       domain.PayeeInfo       `json:"payee"`
	BankAccountID               *int32                 `json:"bank_account_id,omitempty"`
}

// CheckUpdate carries the user-editable fields of one stored check record.
type CheckUpdate struct {
	CheckNumber *string  `json:"check_number,omitempty"`
	Amount      *float64 `json:"amount,omitempty"`
	Date        *string  `json:"date,omitempty"`
	ImageURL    *string  `json:"image_url,omitempty"`
}

type ContractService interface {
	CreateContract(ctx context.Context, c *domain.Contract) (*domain.Contract, error)
	CreateFromBooking(ctx context.Context, bookingID int32) (*domain.Contract, error)
	GetContract(ctx context.Context, id int32) (*domain.Contract, []domain.CheckRecord, error)
	ListContracts(ctx context.Context, status domain.ContractStatus, page, pageSize int32) ([]domain.Contract, int32, error)

	UpdateTerms(ctx context.Context, id int32, terms TermsUpdate, editMode bool) (*domain.Contract, error)
	AutoCreateCheques(ctx context.Context, id int32, editMode bool) ([]domain.CheckRecord, error)
	UpdateCheckRecord(ctx context.Context, id, position int32, upd CheckUpdate, editMode bool) ([]domain.CheckRecord, error)

	Completeness(ctx context.Context, id int32) (approval.GateResult, error)
	ApproveByAdmin(ctx context.Context, id int32) (*domain.Contract, error)
	ApproveByTenant(ctx context.Context, id int32) (*domain.Contract, error)
	ApproveByLandlord(ctx context.Context, id int32) (*domain.Contract, error)
	FinalApprove(ctx context.Context, id int32) (*domain.Contract, error)
	RevertToDraft(ctx context.Context, id int32) (*domain.Contract, error)
	Cancel(ctx context.Context, id int32) (*domain.Contract, error)
}

// SyncService propagates party data from the external contact directory
// into the contract's stored party snapshot.
type SyncService interface {
	RefreshPartyFromDirectory(ctx context.Context, contractID int32, party domain.DocumentParty, identifier string) (*domain.Contract, error)
}

// NotificationService exposes the in-app notification feed per contract.
type NotificationService interface {
	GetNotifications(ctx context.Context, contractID int32, page, pageSize int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, notificationID int32) error
}

type EmailService interface {
	SendDocumentUploadLink(ctx context.Context, email, name, link string) error
	SendApprovalNotification(ctx context.Context, email, name string, contractID int32, status domain.ContractStatus) error
	SendChequeDueReminder(ctx context.Context, email, checkNumber, dueDate string, amount float64) error
	SendStaleDraftNotice(ctx context.Context, email string, contractID int32, ageDays int) error
}
