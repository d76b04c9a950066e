package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"propdesk-backend/internal/domain"
	"propdesk-backend/internal/repository"

	"github.com/lib/pq"
)

type contractRepository struct {
	db *sql.DB
}

func NewContractRepository(db *sql.DB) repository.ContractRepository {
	return &contractRepository{db: db}
}

const contractColumns = `id, booking_id, property_id, unit_type, status,
	admin_approved_at, tenant_approved_at, landlord_approved_at,
	tenant_name, tenant_nationality, tenant_gender, tenant_phone, tenant_email,
	tenant_national_id, tenant_passport_number, tenant_passport_expiry, tenant_workplace,
	landlord_name, landlord_nationality, landlord_gender, landlord_phone, landlord_email,
	landlord_national_id, landlord_passport_number, landlord_passport_expiry, landlord_workplace,
	monthly_rent, duration_months, start_date, end_date, actual_rental_date, rent_due_day,
	rent_payment_method, rent_payment_frequency, custom_monthly_rents, discount_amount,
	deposit_amount, deposit_cash_amount, deposit_cheque_required, deposit_cheque_duration_months,
	municipality_fees, grace_period_days, grace_period_amount,
	monthly_vat_amount, total_vat_amount, monthly_other_tax_amount, total_other_tax_amount,
	payee_owner_type, payee_owner_name, payee_owner_civil_id,
	payee_bank_name, payee_bank_branch, payee_account_number, payee_account_name,
	created_on, updated_on`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanContract(row rowScanner) (*domain.Contract, error) {
	c := &domain.Contract{}
	var customRents pq.Float64Array
	err := row.Scan(
		&c.ID, &c.BookingID, &c.PropertyID, &c.UnitType, &c.Status,
		&c.AdminApprovedAt, &c.TenantApprovedAt, &c.LandlordApprovedAt,
		&c.Tenant.Name, &c.Tenant.Nationality, &c.Tenant.Gender, &c.Tenant.PhoneNumber, &c.Tenant.Email,
		&c.Tenant.NationalID, &c.Tenant.PassportNumber, &c.Tenant.PassportExpiry, &c.Tenant.Workplace,
		&c.Landlord.Name, &c.Landlord.Nationality, &c.Landlord.Gender, &c.Landlord.PhoneNumber, &c.Landlord.Email,
		&c.Landlord.NationalID, &c.Landlord.PassportNumber, &c.Landlord.PassportExpiry, &c.Landlord.Workplace,
		&c.MonthlyRent, &c.DurationMonths, &c.StartDate, &c.EndDate, &c.ActualRentalDate, &c.RentDueDay,
		&c.RentPaymentMethod, &c.RentPaymentFrequency, &customRents, &c.DiscountAmount,
		&c.DepositAmount, &c.DepositCashAmount, &c.DepositChequeRequired, &c.DepositChequeDurationMonths,
		&c.MunicipalityFees, &c.GracePeriodDays, &c.GracePeriodAmount,
		&c.MonthlyVATAmount, &c.TotalVATAmount, &c.MonthlyOtherTaxAmount, &c.TotalOtherTaxAmount,
		&c.Payee.OwnerType, &c.Payee.OwnerName, &c.Payee.OwnerCivilID,
		&c.Payee.BankName, &c.Payee.BankBranch, &c.Payee.AccountNumber, &c.Payee.AccountName,
		&c.CreatedOn, &c.UpdatedOn,
	)
	if err != nil {
		return nil, err
	}
	c.CustomMonthlyRents = []float64(customRents)
	return c, nil
}

func contractArgs(c *domain.Contract) []interface{} {
	return []interface{}{
		c.BookingID, c.PropertyID, c.UnitType, c.Status,
		c.AdminApprovedAt, c.TenantApprovedAt, c.LandlordApprovedAt,
		c.Tenant.Name, c.Tenant.Nationality, c.Tenant.Gender, c.Tenant.PhoneNumber, c.Tenant.Email,
		c.Tenant.NationalID, c.Tenant.PassportNumber, c.Tenant.PassportExpiry, c.Tenant.Workplace,
		c.Landlord.Name, c.Landlord.Nationality, c.Landlord.Gender, c.Landlord.PhoneNumber, c.Landlord.Email,
		c.Landlord.NationalID, c.Landlord.PassportNumber, c.Landlord.PassportExpiry, c.Landlord.Workplace,
		c.MonthlyRent, c.DurationMonths, c.StartDate, c.EndDate, c.ActualRentalDate, c.RentDueDay,
		c.RentPaymentMethod, c.RentPaymentFrequency, pq.Float64Array(c.CustomMonthlyRents), c.DiscountAmount,
		c.DepositAmount, c.DepositCashAmount, c.DepositChequeRequired, c.DepositChequeDurationMonths,
		c.MunicipalityFees, c.GracePeriodDays, c.GracePeriodAmount,
		c.MonthlyVATAmount, c.TotalVATAmount, c.MonthlyOtherTaxAmount, c.TotalOtherTaxAmount,
		c.Payee.OwnerType, c.Payee.OwnerName, c.Payee.OwnerCivilID,
		c.Payee.BankName, c.Payee.BankBranch, c.Payee.AccountNumber, c.Payee.AccountName,
	}
}

func placeholders(n, from int) string {
	s := ""
	for i := 0; i < n; i++ {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("$%d", from+i)
	}
	return s
}

func (r *contractRepository) Create(ctx context.Context, c *domain.Contract) error {
	args := contractArgs(c)
	now := time.Now().Format("2006-01-02 15:04:05")
	args = append(args, now, now)
	query := `INSERT INTO contracts (booking_id, property_id, unit_type, status,
		admin_approved_at, tenant_approved_at, landlord_approved_at,
		tenant_name, tenant_nationality, tenant_gender, tenant_phone, tenant_email,
		tenant_national_id, tenant_passport_number, tenant_passport_expiry, tenant_workplace,
		landlord_name, landlord_nationality, landlord_gender, landlord_phone, landlord_email,
		landlord_national_id, landlord_passport_number, landlord_passport_expiry, landlord_workplace,
		monthly_rent, duration_months, start_date, end_date, actual_rental_date, rent_due_day,
		rent_payment_method, rent_payment_frequency, custom_monthly_rents, discount_amount,
		deposit_amount, deposit_cash_amount, deposit_cheque_required, deposit_cheque_duration_months,
		municipality_fees, grace_period_days, grace_period_amount,
		monthly_vat_amount, total_vat_amount, monthly_other_tax_amount, total_other_tax_amount,
		payee_owner_type, payee_owner_name, payee_owner_civil_id,
		payee_bank_name, payee_bank_branch, payee_account_number, payee_account_name,
		created_on, updated_on)
		VALUES (` + placeholders(len(args), 1) + `) RETURNING id`
	return r.db.QueryRowContext(ctx, query, args...).Scan(&c.ID)
}

func (r *contractRepository) GetByID(ctx context.Context, id int32) (*domain.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contracts WHERE id = $1`
	c, err := scanContract(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *contractRepository) Update(ctx context.Context, c *domain.Contract) error {
	args := contractArgs(c)
	args = append(args, time.Now().Format("2006-01-02 15:04:05"), c.ID)
	query := `UPDATE contracts SET booking_id=$1, property_id=$2, unit_type=$3, status=$4,
		admin_approved_at=$5, tenant_approved_at=$6, landlord_approved_at=$7,
		tenant_name=$8, tenant_nationality=$9, tenant_gender=$10, tenant_phone=$11, tenant_email=$12,
		tenant_national_id=$13, tenant_passport_number=$14, tenant_passport_expiry=$15, tenant_workplace=$16,
		landlord_name=$17, landlord_nationality=$18, landlord_gender=$19, landlord_phone=$20, landlord_email=$21,
		landlord_national_id=$22, landlord_passport_number=$23, landlord_passport_expiry=$24, landlord_workplace=$25,
		monthly_rent=$26, duration_months=$27, start_date=$28, end_date=$29, actual_rental_date=$30, rent_due_day=$31,
		rent_payment_method=$32, rent_payment_frequency=$33, custom_monthly_rents=$34, discount_amount=$35,
		deposit_amount=$36, deposit_cash_amount=$37, deposit_cheque_required=$38, deposit_cheque_duration_months=$39,
		municipality_fees=$40, grace_period_days=$41, grace_period_amount=$42,
		monthly_vat_amount=$43, total_vat_amount=$44, monthly_other_tax_amount=$45, total_other_tax_amount=$46,
		payee_owner_type=$47, payee_owner_name=$48, payee_owner_civil_id=$49,
		payee_bank_name=$50, payee_bank_branch=$51, payee_account_number=$52, payee_account_name=$53,
		updated_on=$54 WHERE id=$55`
	_, err := r.db.ExecContext(ctx, query, args...)
	return err
}

func (r *contractRepository) ListByStatus(ctx context.Context, status domain.ContractStatus, page, pageSize int32) ([]domain.Contract, int32, error) {
	offset := (page - 1) * pageSize

	var count int32
	countQuery := `SELECT count(*) FROM contracts WHERE status = $1`
	if err := r.db.QueryRowContext(ctx, countQuery, status).Scan(&count); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + contractColumns + ` FROM contracts WHERE status = $1
		ORDER BY created_on DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, status, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var contracts []domain.Contract
	for rows.Next() {
		c, err := scanContract(rows)
		if err != nil {
			return nil, 0, err
		}
		contracts = append(contracts, *c)
	}
	return contracts, count, rows.Err()
}

func (r *contractRepository) ListDraftsOlderThan(ctx context.Context, days int) ([]domain.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contracts
		WHERE status = $1 AND created_on < now() - make_interval(days => $2)`
	rows, err := r.db.QueryContext(ctx, query, domain.ContractStatusDraft, days)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contracts []domain.Contract
	for rows.Next() {
		c, err := scanContract(rows)
		if err != nil {
			return nil, err
		}
		contracts = append(contracts, *c)
	}
	return contracts, rows.Err()
}
