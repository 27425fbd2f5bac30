package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/estate-crm/internal/apperr"
	"github.com/aliskhannn/estate-crm/internal/metrics"
	"github.com/aliskhannn/estate-crm/internal/model"
	"github.com/aliskhannn/estate-crm/internal/realtime"
	"github.com/aliskhannn/estate-crm/internal/roster"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/client/mock.go -package=mocks

type clientRepository interface {
	List(ctx context.Context) ([]model.Client, error)
	Create(ctx context.Context, c model.Client) (model.Client, error)
	CreateMany(ctx context.Context, clients []model.Client) ([]model.Client, error)
	Update(ctx context.Context, c model.Client) (model.Client, error)
	DeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error)
	ListFavorites(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	AddFavorite(ctx context.Context, userID, clientID uuid.UUID) error
	RemoveFavorite(ctx context.Context, userID, clientID uuid.UUID) error
}

type changePublisher interface {
	Publish(e realtime.Event) error
}

// ErrNoIDs is returned by BulkDelete when nothing was selected.
var ErrNoIDs = errors.New("no client ids given")

// DeletePolicy is the retry policy of BulkDelete: attempt n waits n*Step before the next one.
type DeletePolicy struct {
	Attempts int
	Step     time.Duration
}

// Service keeps the in-memory client roster in step with the database.
type Service struct {
	repo    clientRepository
	store   *roster.Store
	changes changePublisher
	policy  DeletePolicy

	wait func(ctx context.Context, d time.Duration) error
}

// NewService creates a client service over store.
func NewService(repo clientRepository, store *roster.Store, changes changePublisher, policy DeletePolicy) *Service {
	if policy.Attempts < 1 {
		policy.Attempts = 1
	}

	return &Service{
		repo:    repo,
		store:   store,
		changes: changes,
		policy:  policy,
		wait:    sleep,
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Load replaces the roster with the current database contents.
func (s *Service) Load(ctx context.Context) error {
	clients, err := s.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("load clients: %w", err)
	}

	s.store.Replace(clients)
	zlog.Logger.Debug().Int("count", len(clients)).Msg("client roster loaded")

	return nil
}

func (s *Service) ensureLoaded(ctx context.Context) error {
	if s.store.Loaded() {
		return nil
	}

	return s.Load(ctx)
}

// Filtered returns the roster as seen by userID through the view's filters, unpaginated.
func (s *Service) Filtered(ctx context.Context, userID uuid.UUID, view roster.View) ([]model.Client, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	favs, err := s.repo.ListFavorites(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}

	return view.Filter(roster.FavoriteSet(favs)).Apply(s.store.Snapshot()), nil
}

// List filters and paginates the roster as seen by userID.
func (s *Service) List(ctx context.Context, userID uuid.UUID, view roster.View) (roster.Page[model.Client], error) {
	filtered, err := s.Filtered(ctx, userID, view)
	if err != nil {
		return roster.Page[model.Client]{}, err
	}

	page, err := roster.Paginate(filtered, view.Page(), view.PageSize())
	if err != nil {
		return roster.Page[model.Client]{}, apperr.New(apperr.KindValidation, "paginate clients", err)
	}

	return page, nil
}

// Create stores a new client created by userID.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, c model.Client) (model.Client, error) {
	c.UserID = userID
	if c.Status == "" {
		c.Status = model.StatusNew
	}

	if err := c.Validate(); err != nil {
		return model.Client{}, apperr.New(apperr.KindValidation, "create client", err)
	}

	created, err := s.repo.Create(ctx, c)
	if err != nil {
		return model.Client{}, fmt.Errorf("create client: %w", err)
	}

	s.store.Upsert(created)
	s.publish(realtime.OpInsert, created.ID)

	return created, nil
}

// Update replaces a client record as a whole.
func (s *Service) Update(ctx context.Context, c model.Client) (model.Client, error) {
	if err := c.Validate(); err != nil {
		return model.Client{}, apperr.New(apperr.KindValidation, "update client", err)
	}

	updated, err := s.repo.Update(ctx, c)
	if err != nil {
		return model.Client{}, fmt.Errorf("update client: %w", err)
	}

	s.store.Upsert(updated)
	s.publish(realtime.OpUpdate, updated.ID)

	return updated, nil
}

// Import stores already-mapped clients for userID in one transaction.
func (s *Service) Import(ctx context.Context, userID uuid.UUID, clients []model.Client) ([]model.Client, error) {
	for i := range clients {
		clients[i].UserID = userID
		if clients[i].Status == "" {
			clients[i].Status = model.StatusNew
		}

		if err := clients[i].Validate(); err != nil {
			return nil, apperr.New(apperr.KindValidation, fmt.Sprintf("import client row %d", i+1), err)
		}
	}

	created, err := s.repo.CreateMany(ctx, clients)
	if err != nil {
		return nil, fmt.Errorf("import clients: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(created))
	for _, c := range created {
		s.store.Upsert(c)
		ids = append(ids, c.ID)
	}

	metrics.RecordClientsImported(len(created))
	s.publish(realtime.OpInsert, ids...)

	return created, nil
}

// BulkDelete removes the selected clients with a single batched delete, retried with
// linear backoff. On success exactly those ids leave the roster; on failure it is untouched.
func (s *Service) BulkDelete(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, apperr.New(apperr.KindValidation, "delete clients", ErrNoIDs)
	}

	var (
		n   int64
		err error
	)

	for attempt := 1; attempt <= s.policy.Attempts; attempt++ {
		n, err = s.repo.DeleteMany(ctx, ids)
		if err == nil {
			metrics.RecordBulkDeleteAttempt("success")
			break
		}

		metrics.RecordBulkDeleteAttempt("failure")
		zlog.Logger.Warn().Err(err).Int("attempt", attempt).Int("ids", len(ids)).Msg("bulk delete failed")

		if !apperr.Retryable(err) || attempt == s.policy.Attempts {
			break
		}

		if werr := s.wait(ctx, time.Duration(attempt)*s.policy.Step); werr != nil {
			return 0, fmt.Errorf("delete clients: %w", werr)
		}
	}

	if err != nil {
		return 0, fmt.Errorf("delete clients: %w", err)
	}

	s.store.Remove(ids...)
	s.publish(realtime.OpDelete, ids...)

	return n, nil
}

// AddFavorite stars a client for userID.
func (s *Service) AddFavorite(ctx context.Context, userID, clientID uuid.UUID) error {
	if err := s.repo.AddFavorite(ctx, userID, clientID); err != nil {
		return fmt.Errorf("add favorite: %w", err)
	}

	s.publishFavorite(realtime.OpInsert, userID, clientID)

	return nil
}

// RemoveFavorite un-stars a client for userID.
func (s *Service) RemoveFavorite(ctx context.Context, userID, clientID uuid.UUID) error {
	if err := s.repo.RemoveFavorite(ctx, userID, clientID); err != nil {
		return fmt.Errorf("remove favorite: %w", err)
	}

	s.publishFavorite(realtime.OpDelete, userID, clientID)

	return nil
}

// OnChange drops the roster when another instance changed clients.
// The next read reloads it; events are never merged into the store.
// Local events are skipped because the store was updated in place.
func (s *Service) OnChange(e realtime.Event) {
	if e.Table != realtime.TableClients || !e.Remote() {
		return
	}

	s.store.Reset()
}

func (s *Service) publish(op realtime.Op, ids ...uuid.UUID) {
	e := realtime.Event{Table: realtime.TableClients, Op: op, IDs: ids}
	if err := s.changes.Publish(e); err != nil {
		zlog.Logger.Error().Err(err).Str("op", string(op)).Msg("failed to publish client change")
	}
}

func (s *Service) publishFavorite(op realtime.Op, userID, clientID uuid.UUID) {
	e := realtime.Event{Table: realtime.TableClientFavorites, Op: op, IDs: []uuid.UUID{clientID}, UserID: userID}
	if err := s.changes.Publish(e); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to publish favorite change")
	}
}
