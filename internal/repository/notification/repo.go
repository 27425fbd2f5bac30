package notification

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/estate-crm/internal/apperr"
	"github.com/aliskhannn/estate-crm/internal/model"
)

var ErrNotificationNotFound = errors.New("notification not found")

// Repository provides methods to interact with notifications table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new notification repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// HasUnread reports whether userID already has an unread notification of type typ about clientID.
func (r *Repository) HasUnread(ctx context.Context, userID, clientID uuid.UUID, typ string) (bool, error) {
	query := `
		SELECT EXISTS (
		    SELECT 1
		    FROM notifications
		    WHERE user_id = $1 AND client_id = $2 AND type = $3 AND NOT is_read
		);
    `

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, userID, clientID, typ).Scan(&exists); err != nil {
		return false, apperr.FromDB("check unread notification", err)
	}

	return exists, nil
}

// CreateIfAbsent inserts the notification unless an unread one with the same
// (user_id, client_id, type) exists. The partial unique index on those columns
// decides, so concurrent scanners cannot both insert.
func (r *Repository) CreateIfAbsent(ctx context.Context, n model.Notification) (model.Notification, bool, error) {
	query := `
		INSERT INTO notifications (user_id, title, message, type, client_id)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, client_id, type) WHERE NOT is_read DO NOTHING
		RETURNING id, created_at;
    `

	err := r.db.QueryRowContext(ctx, query, n.UserID, n.Title, n.Message, n.Type, n.ClientID).
		Scan(&n.ID, &n.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Notification{}, false, nil
		}

		return model.Notification{}, false, apperr.FromDB("create notification", err)
	}

	return n, true, nil
}

// ListByUser returns the notifications addressed to userID, newest first.
func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]model.Notification, error) {
	query := `
		SELECT id, user_id, title, message, type, client_id, is_read, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2;
    `

	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, apperr.FromDB("list notifications", err)
	}
	defer rows.Close()

	notifications := []model.Notification{}
	for rows.Next() {
		var n model.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Message, &n.Type, &n.ClientID, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, apperr.FromDB("list notifications", err)
		}

		notifications = append(notifications, n)
	}

	if err := rows.Err(); err != nil {
		return nil, apperr.FromDB("list notifications", err)
	}

	return notifications, nil
}

// CountUnread returns how many unread notifications userID has.
func (r *Repository) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM notifications
		WHERE user_id = $1 AND NOT is_read;
    `

	var n int
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&n); err != nil {
		return 0, apperr.FromDB("count unread notifications", err)
	}

	return n, nil
}

// MarkRead marks one of userID's notifications as read.
func (r *Repository) MarkRead(ctx context.Context, userID, id uuid.UUID) error {
	query := `
		UPDATE notifications
		SET is_read = TRUE
		WHERE id = $1 AND user_id = $2;
    `

	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return apperr.FromDB("mark notification read", err)
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		return apperr.New(apperr.KindNotFound, "mark notification read", ErrNotificationNotFound)
	}

	return nil
}

// Delete removes one of userID's notifications.
func (r *Repository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	query := `
		DELETE FROM notifications
		WHERE id = $1 AND user_id = $2;
    `

	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return apperr.FromDB("delete notification", err)
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		return apperr.New(apperr.KindNotFound, "delete notification", ErrNotificationNotFound)
	}

	return nil
}
