package client

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/estate-crm/internal/apperr"
	"github.com/aliskhannn/estate-crm/internal/model"
)

var clientColumns = []string{
	"id", "name", "phone", "email", "city", "project", "budget", "sales_person", "contact_method", "facebook",
	"campaign", "status", "rating", "next_action_date", "next_action_type", "assigned_to", "user_id",
	"created_at", "updated_at",
}

func setupMockDB(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open mock db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	wrappedDB := &dbpg.DB{Master: db}
	repo := NewRepository(wrappedDB)

	return repo, mock
}

func TestListOverdue(t *testing.T) {
	repo, mock := setupMockDB(t)

	now := time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)
	due := now.Add(-time.Minute)
	id, owner, assignee := uuid.New(), uuid.New(), uuid.New()

	rows := sqlmock.NewRows(clientColumns).AddRow(
		id.String(), "Omar", "0500", "", "Riyadh", "", "", "", "", "", "",
		"scheduled", 3, due, "call", assignee.String(), owner.String(), now, now,
	)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM clients WHERE next_action_type IS NOT NULL`) + `.*` +
		regexp.QuoteMeta(`next_action_date < $1 ORDER BY next_action_date ASC`)).
		WithArgs(now).
		WillReturnRows(rows)

	list, err := repo.ListOverdue(context.Background(), now)
	require.NoError(t, err)
	require.Len(t, list, 1)

	c := list[0]
	assert.Equal(t, id, c.ID)
	assert.Equal(t, model.StatusScheduled, c.Status)
	require.NotNil(t, c.NextActionDate)
	assert.True(t, due.Equal(*c.NextActionDate))
	assert.Equal(t, "call", c.NextActionType)
	assert.Equal(t, uuid.NullUUID{UUID: assignee, Valid: true}, c.AssignedTo)
	assert.Equal(t, owner, c.UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList_RejectsUnknownStatus(t *testing.T) {
	repo, mock := setupMockDB(t)
	now := time.Now()

	rows := sqlmock.NewRows(clientColumns).AddRow(
		uuid.NewString(), "Omar", "0500", "", "", "", "", "", "", "", "",
		"archived", 0, nil, nil, nil, uuid.NewString(), now, now,
	)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM clients ORDER BY created_at ASC`)).WillReturnRows(rows)

	_, err := repo.List(context.Background())
	assert.ErrorIs(t, err, model.ErrInvalidStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList_NullableColumns(t *testing.T) {
	repo, mock := setupMockDB(t)
	now := time.Now()

	rows := sqlmock.NewRows(clientColumns).AddRow(
		uuid.NewString(), "Sara", "0511", "", "", "", "", "", "", "", "",
		"new", 0, nil, nil, nil, uuid.NewString(), now, now,
	)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM clients ORDER BY created_at ASC`)).WillReturnRows(rows)

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Nil(t, list[0].NextActionDate)
	assert.Empty(t, list[0].NextActionType)
	assert.False(t, list[0].AssignedTo.Valid)
}

func TestList_ConnectionErrorIsTagged(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM clients`)).WillReturnError(&pq.Error{Code: "08006"})

	_, err := repo.List(context.Background())
	assert.Equal(t, apperr.KindConnectivity, apperr.KindOf(err))
}

func TestCreate(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()
	now := time.Now()
	c := model.Client{Name: "Omar", Phone: "0500", Status: model.StatusNew, UserID: uuid.New()}

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO clients`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(id.String(), now, now))

	created, err := repo.Create(context.Background(), c)
	require.NoError(t, err)
	assert.Equal(t, id, created.ID)
	assert.Equal(t, "Omar", created.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateMany_RollsBackOnFailure(t *testing.T) {
	repo, mock := setupMockDB(t)
	now := time.Now()

	clients := []model.Client{
		{Name: "A", Phone: "1", Status: model.StatusNew, UserID: uuid.New()},
		{Name: "B", Phone: "2", Status: model.StatusNew, UserID: uuid.New()},
	}

	mock.ExpectBegin()
	prep := mock.ExpectPrepare(regexp.QuoteMeta(`INSERT INTO clients`))
	prep.ExpectQuery().
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(uuid.NewString(), now, now))
	prep.ExpectQuery().WillReturnError(errors.New("insert failed"))
	mock.ExpectRollback()

	_, err := repo.CreateMany(context.Background(), clients)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_NotFound(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE clients SET`)).WillReturnError(sql.ErrNoRows)

	_, err := repo.Update(context.Background(), model.Client{ID: uuid.New(), Status: model.StatusNew})
	assert.ErrorIs(t, err, ErrClientNotFound)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteMany(t *testing.T) {
	repo, mock := setupMockDB(t)

	ids := []uuid.UUID{uuid.New(), uuid.New()}

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM clients WHERE id = ANY($1::uuid[]);`)).
		WithArgs(pq.Array([]string{ids[0].String(), ids[1].String()})).
		WillReturnResult(sqlmock.NewResult(0, 2))

	n, err := repo.DeleteMany(context.Background(), ids)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFavorites(t *testing.T) {
	repo, mock := setupMockDB(t)

	user, fav := uuid.New(), uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO client_favorites`)).
		WithArgs(user, fav).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT client_id FROM client_favorites WHERE user_id = $1;`)).
		WithArgs(user).
		WillReturnRows(sqlmock.NewRows([]string{"client_id"}).AddRow(fav.String()))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM client_favorites`)).
		WithArgs(user, fav).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.AddFavorite(context.Background(), user, fav))

	ids, err := repo.ListFavorites(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{fav}, ids)

	require.NoError(t, repo.RemoveFavorite(context.Background(), user, fav))
	assert.NoError(t, mock.ExpectationsWereMet())
}
