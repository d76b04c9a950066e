package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"propdesk-backend/internal/domain"
	"propdesk-backend/internal/repository"
)

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) GetByID(ctx context.Context, id int32) (*domain.Booking, error) {
	b := &domain.Booking{}
	query := `SELECT id, property_id, unit_type, contract_id, tenant_name, tenant_phone, tenant_email, status, created_on, updated_on
		FROM bookings WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&b.ID, &b.PropertyID, &b.UnitType, &b.ContractID,
		&b.TenantName, &b.TenantPhone, &b.TenantEmail, &b.Status, &b.CreatedOn, &b.UpdatedOn,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *bookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	query := `UPDATE bookings SET contract_id=$1, status=$2, updated_on=$3 WHERE id=$4`
	_, err := r.db.ExecContext(ctx, query, b.ContractID, b.Status, time.Now().Format("2006-01-02 15:04:05"), b.ID)
	return err
}

// SaveBookingChecks rewrites the booking-side mirror of the contract's
// check records. The mirror keeps its own approval flags; those are owned
// by the tenant-facing workflow, so existing approvals for matching slots
// survive a re-mirror.
func (r *bookingRepository) SaveBookingChecks(ctx context.Context, bookingID int32, records []domain.CheckRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	approvals := map[string]bool{}
	rows, err := tx.QueryContext(ctx, `SELECT slot_key, approved FROM booking_checks WHERE booking_id = $1`, bookingID)
	if err != nil {
		return err
	}
	for rows.Next() {
		var key string
		var approved bool
		if err := rows.Scan(&key, &approved); err != nil {
			rows.Close()
			return err
		}
		approvals[key] = approved
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM booking_checks WHERE booking_id = $1`, bookingID); err != nil {
		return err
	}

	now := time.Now().Format("2006-01-02 15:04:05")
	query := `INSERT INTO booking_checks (booking_id, position, slot_key, type_id, name_en, name_ar,
		check_number, amount, date, account_number, account_name, image_url, approved, created_on)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	for _, rec := range records {
		_, err := tx.ExecContext(ctx, query,
			bookingID, rec.Position, rec.SlotKey, rec.TypeID, rec.NameEn, rec.NameAr,
			rec.CheckNumber, rec.Amount, rec.Date, rec.AccountNumber, rec.AccountName, rec.ImageURL,
			approvals[rec.SlotKey], now,
		)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *bookingRepository) AllChecksApproved(ctx context.Context, bookingID int32) (bool, error) {
	var unapproved int32
	query := `SELECT count(*) FROM booking_checks WHERE booking_id = $1 AND approved = false`
	if err := r.db.QueryRowContext(ctx, query, bookingID).Scan(&unapproved); err != nil {
		return false, err
	}
	return unapproved == 0, nil
}

func (r *bookingRepository) AllRequiredDocumentsApproved(ctx context.Context, bookingID int32) (bool, error) {
	// Uploaded but not yet approved counts as missing.
	var missing int32
	query := `SELECT count(*) FROM booking_documents WHERE booking_id = $1 AND required = true AND (uploaded = false OR approved = false)`
	if err := r.db.QueryRowContext(ctx, query, bookingID).Scan(&missing); err != nil {
		return false, err
	}
	return missing == 0, nil
}
