package postgres

import (
	"context"
	"database/sql"

	"propdesk-backend/internal/domain"
	"propdesk-backend/internal/repository"
)

type contactDirectory struct {
	db *sql.DB
}

func NewContactDirectory(db *sql.DB) repository.ContactDirectory {
	return &contactDirectory{db: db}
}

// FindByIdentifier resolves a single directory entry. More than one match
// means the directory holds duplicates for this identifier, which surfaces
// as a ConflictError rather than picking one arbitrarily.
func (r *contactDirectory) FindByIdentifier(ctx context.Context, phoneOrEmail string) (*domain.Contact, error) {
	query := `SELECT id, name, nationality, gender, phone_number, email, national_id,
		passport_number, passport_expiry, workplace, commercial_registration
		FROM contacts WHERE phone_number = $1 OR email = $1`
	rows, err := r.db.QueryContext(ctx, query, phoneOrEmail)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contacts []domain.Contact
	for rows.Next() {
		var c domain.Contact
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Nationality, &c.Gender, &c.PhoneNumber, &c.Email, &c.NationalID,
			&c.PassportNumber, &c.PassportExpiry, &c.Workplace, &c.CommercialRegistration,
		); err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	switch len(contacts) {
	case 0:
		return nil, domain.ErrNotFound
	case 1:
		return &contacts[0], nil
	default:
		return nil, &domain.ConflictError{Field: domain.ConflictPhone, Value: phoneOrEmail}
	}
}
