package profile

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/estate-crm/internal/apperr"
	"github.com/aliskhannn/estate-crm/internal/model"
)

var ErrProfileNotFound = errors.New("profile not found")

// Repository reads the profiles table.
type Repository struct {
	db *dbpg.DB
}

func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// GetByID returns one profile.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (model.Profile, error) {
	query := `
		SELECT id, full_name, email, telegram
		FROM profiles
		WHERE id = $1;
    `

	var p model.Profile
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.FullName, &p.Email, &p.Telegram)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Profile{}, apperr.New(apperr.KindNotFound, "get profile", ErrProfileNotFound)
		}

		return model.Profile{}, apperr.FromDB("get profile", err)
	}

	return p, nil
}
