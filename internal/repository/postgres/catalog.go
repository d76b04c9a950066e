package postgres

import (
	"context"
	"database/sql"

	"propdesk-backend/internal/domain"
	"propdesk-backend/internal/repository"
)

type catalogRepository struct {
	db *sql.DB
}

func NewCatalogRepository(db *sql.DB) repository.CatalogRepository {
	return &catalogRepository{db: db}
}

// RequiredChecks returns the base non-rent check types configured for a
// property and unit type. Rent and security entries may still appear here
// from older catalog rows; the generator strips them.
func (r *catalogRepository) RequiredChecks(ctx context.Context, propertyID int32, unitType string) ([]domain.RequiredCheck, error) {
	query := `SELECT type_id, name_en, name_ar, ordinal FROM required_check_types
		WHERE property_id = $1 AND (unit_type = $2 OR unit_type = '')
		ORDER BY ordinal`
	rows, err := r.db.QueryContext(ctx, query, propertyID, unitType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var checks []domain.RequiredCheck
	for rows.Next() {
		var rc domain.RequiredCheck
		if err := rows.Scan(&rc.TypeID, &rc.NameEn, &rc.NameAr, &rc.Ordinal); err != nil {
			return nil, err
		}
		checks = append(checks, rc)
	}
	return checks, rows.Err()
}

func (r *catalogRepository) RequiredDocTypes(ctx context.Context, propertyID int32, unitType string, party domain.DocumentParty) ([]domain.DocRequirement, error) {
	query := `SELECT type_id, name_en, name_ar, party, required FROM required_doc_types
		WHERE property_id = $1 AND (unit_type = $2 OR unit_type = '') AND party = $3`
	rows, err := r.db.QueryContext(ctx, query, propertyID, unitType, party)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []domain.DocRequirement
	for rows.Next() {
		var d domain.DocRequirement
		if err := rows.Scan(&d.TypeID, &d.NameEn, &d.NameAr, &d.Party, &d.Required); err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}
