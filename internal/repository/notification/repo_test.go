package notification

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/estate-crm/internal/model"
)

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

func TestHasUnread(t *testing.T) {
	repo, mock := setupMockDB(t)
	user, client := uuid.New(), uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE user_id = $1 AND client_id = $2 AND type = $3 AND NOT is_read`)).
		WithArgs(user, client, model.TypeDelayedClient).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.HasUnread(context.Background(), user, client, model.TypeDelayedClient)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func newNotification() model.Notification {
	return model.Notification{
		UserID:   uuid.New(),
		Title:    "title",
		Message:  "message",
		Type:     model.TypeDelayedClient,
		ClientID: uuid.NullUUID{UUID: uuid.New(), Valid: true},
	}
}

func TestCreateIfAbsent_Inserted(t *testing.T) {
	repo, mock := setupMockDB(t)
	n := newNotification()
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`ON CONFLICT (user_id, client_id, type) WHERE NOT is_read DO NOTHING`)).
		WithArgs(n.UserID, n.Title, n.Message, n.Type, n.ClientID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(id.String(), time.Now()))

	created, ok, err := repo.CreateIfAbsent(context.Background(), n)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, id, created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateIfAbsent_Conflict(t *testing.T) {
	repo, mock := setupMockDB(t)
	n := newNotification()

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO notifications`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}))

	_, ok, err := repo.CreateIfAbsent(context.Background(), n)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByUser(t *testing.T) {
	repo, mock := setupMockDB(t)
	user := uuid.New()

	rows := sqlmock.NewRows([]string{"id", "user_id", "title", "message", "type", "client_id", "is_read", "created_at"}).
		AddRow(uuid.NewString(), user.String(), "t1", "m1", model.TypeDelayedClient, uuid.NewString(), false, time.Now()).
		AddRow(uuid.NewString(), user.String(), "t2", "m2", "system", nil, true, time.Now())

	mock.ExpectQuery(regexp.QuoteMeta(`FROM notifications WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2;`)).
		WithArgs(user, 50).
		WillReturnRows(rows)

	list, err := repo.ListByUser(context.Background(), user, 50)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.True(t, list[0].ClientID.Valid)
	assert.False(t, list[1].ClientID.Valid)
	assert.True(t, list[1].IsRead)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkRead(t *testing.T) {
	repo, mock := setupMockDB(t)
	user, id := uuid.New(), uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE notifications SET is_read = TRUE WHERE id = $1 AND user_id = $2;`)).
		WithArgs(id, user).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.MarkRead(context.Background(), user, id))

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE notifications SET is_read = TRUE`)).
		WithArgs(id, user).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.MarkRead(context.Background(), user, id), ErrNotificationNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountUnread_Error(t *testing.T) {
	repo, mock := setupMockDB(t)
	user := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*)`)).WithArgs(user).WillReturnError(sql.ErrConnDone)

	_, err := repo.CountUnread(context.Background(), user)
	assert.ErrorIs(t, err, sql.ErrConnDone)
}
