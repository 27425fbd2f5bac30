package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/estate-crm/internal/apperr"
	"github.com/aliskhannn/estate-crm/internal/locale"
	"github.com/aliskhannn/estate-crm/internal/metrics"
	"github.com/aliskhannn/estate-crm/internal/model"
	"github.com/aliskhannn/estate-crm/internal/realtime"
)

// MaxFetchAttempts caps the attempts of one overdue-client fetch.
const MaxFetchAttempts = 3

// Scanner periodically looks for clients whose next action is overdue and hands
// them to the notification deduplicator.
type Scanner struct {
	clients  overdueLister
	notifier delayedNotifier
	alerts   alertPublisher
	interval time.Duration
	strategy retry.Strategy
	lang     locale.Lang

	now  func() time.Time
	wait func(ctx context.Context, d time.Duration) error

	mu      sync.Mutex
	alerted bool // a blocked-connectivity alert is outstanding
}

func NewScanner(
	clients overdueLister,
	notifier delayedNotifier,
	alerts alertPublisher,
	interval time.Duration,
	strategy retry.Strategy,
	lang locale.Lang,
) *Scanner {
	return &Scanner{
		clients:  clients,
		notifier: notifier,
		alerts:   alerts,
		interval: interval,
		strategy: strategy,
		lang:     lang,
		now:      time.Now,
		wait:     sleep,
	}
}

// Run scans once right away and then on every tick until ctx is done.
// A failed cycle never stops the loop.
func (s *Scanner) Run(ctx context.Context) {
	zlog.Logger.Info().Dur("interval", s.interval).Msg("scanner started")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.scan(ctx)

	for {
		select {
		case <-ctx.Done():
			zlog.Logger.Info().Msg("scanner stopped")
			return
		case <-ticker.C:
			s.scan(ctx)
		}
	}
}

func (s *Scanner) scan(ctx context.Context) {
	created, err := s.Cycle(ctx)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("scan cycle failed")
		return
	}

	if created > 0 {
		zlog.Logger.Info().Int("created", created).Msg("delayed-client notifications created")
	}
}

// Cycle runs a single scan and returns how many notifications it created.
func (s *Scanner) Cycle(ctx context.Context) (int, error) {
	now := s.now()

	clients, err := s.fetch(ctx, now)
	if err != nil {
		metrics.RecordScanCycle("failed")

		if apperr.Is(err, apperr.KindBlocked) {
			s.alertBlocked(err)
		}

		return 0, err
	}

	s.clearAlert()

	created := 0
	for _, c := range clients {
		if err := ctx.Err(); err != nil {
			return created, err
		}

		ok, err := s.notifier.NotifyDelayed(ctx, c, now)
		if err != nil {
			zlog.Logger.Warn().Err(err).Str("client_id", c.ID.String()).Msg("failed to notify about delayed client")
			continue
		}

		if ok {
			created++
		}
	}

	metrics.RecordScanCycle("ok")

	return created, nil
}

// fetch lists overdue clients with exponential backoff. Errors that cannot
// heal on their own, blocked connectivity included, are returned at once.
func (s *Scanner) fetch(ctx context.Context, now time.Time) ([]model.Client, error) {
	attempts := s.strategy.Attempts
	if attempts < 1 {
		attempts = 1
	}

	if attempts > MaxFetchAttempts {
		attempts = MaxFetchAttempts
	}

	delay := s.strategy.Delay

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		clients, err := s.clients.ListOverdue(ctx, now)
		if err == nil {
			return clients, nil
		}

		lastErr = err
		if !apperr.Retryable(err) {
			return nil, err
		}

		if attempt == attempts {
			break
		}

		zlog.Logger.Warn().Err(err).Int("attempt", attempt).Dur("delay", delay).Msg("failed to list overdue clients, retrying")

		if err := s.wait(ctx, delay); err != nil {
			return nil, err
		}

		delay = time.Duration(float64(delay) * s.strategy.Backoff)
	}

	return nil, fmt.Errorf("list overdue clients after %d attempts: %w", attempts, lastErr)
}

func (s *Scanner) alertBlocked(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.alerted {
		return
	}

	e := realtime.Event{
		Table:   realtime.TableSystem,
		Op:      realtime.OpAlert,
		Message: locale.BlockedRemediation(s.lang),
	}

	if perr := s.alerts.Publish(e); perr != nil {
		zlog.Logger.Error().Err(perr).Msg("failed to publish blocked-connectivity alert")
		return
	}

	zlog.Logger.Error().Err(err).Msg("connection to the database is blocked, alert raised")
	s.alerted = true
}

func (s *Scanner) clearAlert() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.alerted = false
}
