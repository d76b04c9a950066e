package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"propdesk-backend/internal/domain"
	"propdesk-backend/internal/repository"
)

type notificationRepository struct {
	db *sql.DB
}

func NewNotificationRepository(db *sql.DB) repository.NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, note *domain.Notification) error {
	attrs, err := json.Marshal(note.Attributes)
	if err != nil {
		return err
	}
	query := `INSERT INTO notifications (contract_id, recipient, title, message, is_read, attributes, created_on)
		VALUES ($1, $2, $3, $4, false, $5, $6) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		note.ContractID, note.Recipient, note.Title, note.Message, attrs,
		time.Now().Format("2006-01-02 15:04:05"),
	).Scan(&note.ID)
}

func (r *notificationRepository) ListByContract(ctx context.Context, contractID int32, limit, offset int32) ([]domain.Notification, int32, error) {
	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM notifications WHERE contract_id = $1`, contractID).Scan(&count); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, contract_id, recipient, title, message, is_read, attributes, created_on
		FROM notifications WHERE contract_id = $1 ORDER BY created_on DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, contractID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var notes []domain.Notification
	for rows.Next() {
		var n domain.Notification
		var attrs []byte
		if err := rows.Scan(&n.ID, &n.ContractID, &n.Recipient, &n.Title, &n.Message, &n.IsRead, &attrs, &n.CreatedOn); err != nil {
			return nil, 0, err
		}
		if len(attrs) > 0 {
			if err := json.Unmarshal(attrs, &n.Attributes); err != nil {
				return nil, 0, err
			}
		}
		notes = append(notes, n)
	}
	return notes, count, rows.Err()
}

func (r *notificationRepository) MarkAsRead(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `UPDATE notifications SET is_read = true WHERE id = $1`, id)
	return err
}
