package postgres

import (
	"database/sql"

	"propdesk-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.ContractRepository
	repository.CheckRecordRepository
	repository.BookingRepository
	repository.ContactDirectory
	repository.CatalogRepository
	repository.BankAccountRepository
	repository.NotificationRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		ContractRepository:     NewContractRepository(db),
		CheckRecordRepository:  NewCheckRecordRepository(db),
		BookingRepository:      NewBookingRepository(db),
		ContactDirectory:       NewContactDirectory(db),
		CatalogRepository:      NewCatalogRepository(db),
		BankAccountRepository:  NewBankAccountRepository(db),
		NotificationRepository: NewNotificationRepository(db),
	}
}
