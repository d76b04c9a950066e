package postgres

import (
	"context"
	"database/sql"
	"errors"

	"propdesk-backend/internal/domain"
	"propdesk-backend/internal/repository"
)

type bankAccountRepository struct {
	db *sql.DB
}

func NewBankAccountRepository(db *sql.DB) repository.BankAccountRepository {
	return &bankAccountRepository{db: db}
}

func (r *bankAccountRepository) GetByID(ctx context.Context, id int32) (*domain.BankAccount, error) {
	a := &domain.BankAccount{}
	query := `SELECT id, bank_name, bank_branch, account_number, account_name FROM bank_accounts WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&a.ID, &a.BankName, &a.BankBranch, &a.AccountNumber, &a.AccountName)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}
