package postgres

import (
	"context"
	"database/sql"
	"time"

	"propdesk-backend/internal/domain"
	"propdesk-backend/internal/repository"
)

type checkRecordRepository struct {
	db *sql.DB
}

func NewCheckRecordRepository(db *sql.DB) repository.CheckRecordRepository {
	return &checkRecordRepository{db: db}
}

const checkColumns = `id, contract_id, position, slot_key, type_id, name_en, name_ar,
	check_number, amount, date, account_number, account_name, image_url,
	approved, approved_at, created_on, updated_on`

func scanCheck(row rowScanner) (*domain.CheckRecord, error) {
	rec := &domain.CheckRecord{}
	err := row.Scan(
		&rec.ID, &rec.ContractID, &rec.Position, &rec.SlotKey, &rec.TypeID, &rec.NameEn, &rec.NameAr,
		&rec.CheckNumber, &rec.Amount, &rec.Date, &rec.AccountNumber, &rec.AccountName, &rec.ImageURL,
		&rec.Approved, &rec.ApprovedAt, &rec.CreatedOn, &rec.UpdatedOn,
	)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// ReplaceForContract rewrites the contract's record list inside one
// transaction so readers never observe a partially reconciled array.
func (r *checkRecordRepository) ReplaceForContract(ctx context.Context, contractID int32, records []domain.CheckRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM check_records WHERE contract_id = $1`, contractID); err != nil {
		return err
	}

	now := time.Now().Format("2006-01-02 15:04:05")
	query := `INSERT INTO check_records (contract_id, position, slot_key, type_id, name_en, name_ar,
		check_number, amount, date, account_number, account_name, image_url,
		approved, approved_at, created_on, updated_on)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16) RETURNING id`
	for i := range records {
		rec := &records[i]
		rec.ContractID = contractID
		err := tx.QueryRowContext(ctx, query,
			contractID, rec.Position, rec.SlotKey, rec.TypeID, rec.NameEn, rec.NameAr,
			rec.CheckNumber, rec.Amount, rec.Date, rec.AccountNumber, rec.AccountName, rec.ImageURL,
			rec.Approved, rec.ApprovedAt, now, now,
		).Scan(&rec.ID)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *checkRecordRepository) ListByContract(ctx context.Context, contractID int32) ([]domain.CheckRecord, error) {
	query := `SELECT ` + checkColumns + ` FROM check_records WHERE contract_id = $1 ORDER BY position`
	rows, err := r.db.QueryContext(ctx, query, contractID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.CheckRecord
	for rows.Next() {
		rec, err := scanCheck(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	return records, rows.Err()
}

func (r *checkRecordRepository) UpdateImageURL(ctx context.Context, contractID, position int32, imageURL string) error {
	query := `UPDATE check_records SET image_url=$1, updated_on=$2 WHERE contract_id=$3 AND position=$4`
	res, err := r.db.ExecContext(ctx, query, imageURL, time.Now().Format("2006-01-02 15:04:05"), contractID, position)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListDueWithin returns dated records of approved contracts falling due in
// the next N days. Undated security cheques never match.
func (r *checkRecordRepository) ListDueWithin(ctx context.Context, days int) ([]domain.CheckRecord, error) {
	query := `SELECT ` + checkColumns + ` FROM check_records
		WHERE date <> '' AND date::date BETWEEN current_date AND current_date + $1
		AND contract_id IN (SELECT id FROM contracts WHERE status = 'APPROVED')
		ORDER BY date`
	rows, err := r.db.QueryContext(ctx, query, days)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.CheckRecord
	for rows.Next() {
		rec, err := scanCheck(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	return records, rows.Err()
}
