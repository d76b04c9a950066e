package repository

import (
	"context"

	"propdesk-backend/internal/domain"
)

type ContractRepository interface {
	Create(ctx context.Context, c *domain.Contract) error
	GetByID(ctx context.Context, id int32) (*domain.Contract, error)
	Update(ctx context.Context, c *domain.Contract) error
	ListByStatus(ctx context.Context, status domain.ContractStatus, page, pageSize int32) ([]domain.Contract, int32, error)
	ListDraftsOlderThan(ctx context.Context, days int) ([]domain.Contract, error)
}

type CheckRecordRepository interface {
	// ReplaceForContract persists the reconciled record list per contract;
	// the reconciler is the sole writer of this array.
	ReplaceForContract(ctx context.Context, contractID int32, records []domain.CheckRecord) error
	ListByContract(ctx context.Context, contractID int32) ([]domain.CheckRecord, error)
	UpdateImageURL(ctx context.Context, contractID, position int32, imageURL string) error
	ListDueWithin(ctx context.Context, days int) ([]domain.CheckRecord, error)
}

type BookingRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.Booking, error)
	Update(ctx context.Context, b *domain.Booking) error

	// Mirrored check records kept on the booking for tenant-facing
	// workflows; the check-approval aggregate reads these.
	SaveBookingChecks(ctx context.Context, bookingID int32, records []domain.CheckRecord) error
	AllChecksApproved(ctx context.Context, bookingID int32) (bool, error)
	AllRequiredDocumentsApproved(ctx context.Context, bookingID int32) (bool, error)
}

// ContactDirectory is the external address book. Read-only for this core;
// duplicate conflicts it raises surface as *domain.ConflictError.
type ContactDirectory interface {
	FindByIdentifier(ctx context.Context, phoneOrEmail string) (*domain.Contact, error)
}

type CatalogRepository interface {
	RequiredChecks(ctx context.Context, propertyID int32, unitType string) ([]domain.RequiredCheck, error)
	RequiredDocTypes(ctx context.Context, propertyID int32, unitType string, party domain.DocumentParty) ([]domain.DocRequirement, error)
}

type BankAccountRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.BankAccount, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	ListByContract(ctx context.Context, contractID int32, limit, offset int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, id int32) error
}
