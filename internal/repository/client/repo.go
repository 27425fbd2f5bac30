package client

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/estate-crm/internal/apperr"
	"github.com/aliskhannn/estate-crm/internal/model"
)

var ErrClientNotFound = errors.New("client not found")

const columns = `id, name, phone, email, city, project, budget, sales_person, contact_method, facebook,
		campaign, status, rating, next_action_date, next_action_type, assigned_to, user_id, created_at, updated_at`

// Repository provides methods to interact with the clients and client_favorites tables.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new client repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanClient(row rowScanner) (model.Client, error) {
	var (
		c          model.Client
		status     string
		nextDate   sql.NullTime
		nextType   sql.NullString
		assignedTo uuid.NullUUID
	)

	err := row.Scan(
		&c.ID, &c.Name, &c.Phone, &c.Email, &c.City, &c.Project, &c.Budget, &c.SalesPerson, &c.ContactMethod,
		&c.Facebook, &c.Campaign, &status, &c.Rating, &nextDate, &nextType, &assignedTo, &c.UserID,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return model.Client{}, err
	}

	c.Status, err = model.ParseStatus(status)
	if err != nil {
		return model.Client{}, fmt.Errorf("client %s: %w", c.ID, err)
	}

	if nextDate.Valid {
		t := nextDate.Time
		c.NextActionDate = &t
	}
	c.NextActionType = nextType.String
	c.AssignedTo = assignedTo

	return c, nil
}

func (r *Repository) queryClients(ctx context.Context, op, query string, args ...any) ([]model.Client, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperr.FromDB(op, err)
	}
	defer rows.Close()

	var clients []model.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, apperr.FromDB(op, err)
		}

		clients = append(clients, c)
	}

	if err := rows.Err(); err != nil {
		return nil, apperr.FromDB(op, err)
	}

	return clients, nil
}

// List returns every client in creation order.
func (r *Repository) List(ctx context.Context) ([]model.Client, error) {
	query := `
		SELECT ` + columns + `
		FROM clients
		ORDER BY created_at ASC, id ASC;
    `

	return r.queryClients(ctx, "list clients", query)
}

// ListOverdue returns clients with a next action scheduled before now, earliest first.
func (r *Repository) ListOverdue(ctx context.Context, now time.Time) ([]model.Client, error) {
	query := `
		SELECT ` + columns + `
		FROM clients
		WHERE next_action_type IS NOT NULL
		  AND next_action_type <> ''
		  AND next_action_date IS NOT NULL
		  AND next_action_date < $1
		ORDER BY next_action_date ASC;
    `

	return r.queryClients(ctx, "list overdue clients", query, now)
}

// GetByID returns one client.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (model.Client, error) {
	query := `
		SELECT ` + columns + `
		FROM clients
		WHERE id = $1;
    `

	c, err := scanClient(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Client{}, apperr.New(apperr.KindNotFound, "get client", ErrClientNotFound)
		}

		return model.Client{}, apperr.FromDB("get client", err)
	}

	return c, nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}

	return sql.NullTime{Time: *t, Valid: true}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

const insertQuery = `
		INSERT INTO clients (
		    name, phone, email, city, project, budget, sales_person, contact_method, facebook,
		    campaign, status, rating, next_action_date, next_action_type, assigned_to, user_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id, created_at, updated_at;
    `

func insertArgs(c model.Client) []any {
	return []any{
		c.Name, c.Phone, c.Email, c.City, c.Project, c.Budget, c.SalesPerson, c.ContactMethod, c.Facebook,
		c.Campaign, string(c.Status), c.Rating, nullTime(c.NextActionDate), nullString(c.NextActionType),
		c.AssignedTo, c.UserID,
	}
}

// Create inserts a client and returns it with its generated id and timestamps.
func (r *Repository) Create(ctx context.Context, c model.Client) (model.Client, error) {
	err := r.db.QueryRowContext(ctx, insertQuery, insertArgs(c)...).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return model.Client{}, apperr.FromDB("create client", err)
	}

	return c, nil
}

// CreateMany inserts all clients in one transaction; either all rows land or none.
func (r *Repository) CreateMany(ctx context.Context, clients []model.Client) ([]model.Client, error) {
	tx, err := r.db.Master.BeginTx(ctx, nil)
	if err != nil {
		return nil, apperr.FromDB("import clients", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, insertQuery)
	if err != nil {
		return nil, apperr.FromDB("import clients", err)
	}
	defer stmt.Close()

	created := make([]model.Client, 0, len(clients))
	for i, c := range clients {
		if err := stmt.QueryRowContext(ctx, insertArgs(c)...).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, apperr.FromDB(fmt.Sprintf("import client row %d", i+1), err)
		}

		created = append(created, c)
	}

	if err := tx.Commit(); err != nil {
		return nil, apperr.FromDB("import clients", err)
	}

	return created, nil
}

// Update replaces every editable field of a client.
func (r *Repository) Update(ctx context.Context, c model.Client) (model.Client, error) {
	query := `
		UPDATE clients
		SET name = $1, phone = $2, email = $3, city = $4, project = $5, budget = $6, sales_person = $7,
		    contact_method = $8, facebook = $9, campaign = $10, status = $11, rating = $12,
		    next_action_date = $13, next_action_type = $14, assigned_to = $15, updated_at = NOW()
		WHERE id = $16
		RETURNING user_id, created_at, updated_at;
    `

	err := r.db.QueryRowContext(ctx, query,
		c.Name, c.Phone, c.Email, c.City, c.Project, c.Budget, c.SalesPerson, c.ContactMethod, c.Facebook,
		c.Campaign, string(c.Status), c.Rating, nullTime(c.NextActionDate), nullString(c.NextActionType),
		c.AssignedTo, c.ID,
	).Scan(&c.UserID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Client{}, apperr.New(apperr.KindNotFound, "update client", ErrClientNotFound)
		}

		return model.Client{}, apperr.FromDB("update client", err)
	}

	return c, nil
}

func idStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}

	return out
}

// DeleteMany removes the given clients in a single statement.
func (r *Repository) DeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error) {
	query := `
		DELETE FROM clients
		WHERE id = ANY($1::uuid[]);
    `

	res, err := r.db.ExecContext(ctx, query, pq.Array(idStrings(ids)))
	if err != nil {
		return 0, apperr.FromDB("delete clients", err)
	}

	n, _ := res.RowsAffected()

	return n, nil
}

// ListFavorites returns the ids of clients starred by userID.
func (r *Repository) ListFavorites(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	query := `
		SELECT client_id
		FROM client_favorites
		WHERE user_id = $1;
    `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, apperr.FromDB("list favorites", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, apperr.FromDB("list favorites", err)
		}

		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, apperr.FromDB("list favorites", err)
	}

	return ids, nil
}

// AddFavorite stars a client for a user. Starring twice is a no-op.
func (r *Repository) AddFavorite(ctx context.Context, userID, clientID uuid.UUID) error {
	query := `
		INSERT INTO client_favorites (user_id, client_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, client_id) DO NOTHING;
    `

	if _, err := r.db.ExecContext(ctx, query, userID, clientID); err != nil {
		return apperr.FromDB("add favorite", err)
	}

	return nil
}

// RemoveFavorite un-stars a client.
func (r *Repository) RemoveFavorite(ctx context.Context, userID, clientID uuid.UUID) error {
	query := `
		DELETE FROM client_favorites
		WHERE user_id = $1 AND client_id = $2;
    `

	if _, err := r.db.ExecContext(ctx, query, userID, clientID); err != nil {
		return apperr.FromDB("remove favorite", err)
	}

	return nil
}
