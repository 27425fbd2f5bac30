package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	clienthandler "github.com/aliskhannn/estate-crm/internal/api/handlers/client"
	"github.com/aliskhannn/estate-crm/internal/api/handlers/events"
	"github.com/aliskhannn/estate-crm/internal/api/handlers/health"
	notifhandler "github.com/aliskhannn/estate-crm/internal/api/handlers/notification"
	"github.com/aliskhannn/estate-crm/internal/api/middleware"
	"github.com/aliskhannn/estate-crm/internal/api/router"
	"github.com/aliskhannn/estate-crm/internal/api/server"
	"github.com/aliskhannn/estate-crm/internal/cache"
	"github.com/aliskhannn/estate-crm/internal/config"
	"github.com/aliskhannn/estate-crm/internal/locale"
	"github.com/aliskhannn/estate-crm/internal/rabbitmq/handlers/forward"
	"github.com/aliskhannn/estate-crm/internal/rabbitmq/queue"
	"github.com/aliskhannn/estate-crm/internal/realtime"
	clientrepo "github.com/aliskhannn/estate-crm/internal/repository/client"
	notifrepo "github.com/aliskhannn/estate-crm/internal/repository/notification"
	profilerepo "github.com/aliskhannn/estate-crm/internal/repository/profile"
	"github.com/aliskhannn/estate-crm/internal/roster"
	clientsvc "github.com/aliskhannn/estate-crm/internal/service/client"
	notifsvc "github.com/aliskhannn/estate-crm/internal/service/notification"
	"github.com/aliskhannn/estate-crm/internal/worker"
	"github.com/aliskhannn/estate-crm/pkg/email"
	"github.com/aliskhannn/estate-crm/pkg/telegram"
)

// instanceName identifies this process on the change exchange.
func instanceName() string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		host = "crm"
	}

	return host + "-" + uuid.NewString()[:8]
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()
	val := validator.New()
	lang := locale.Parse(cfg.Roster.DefaultLanguage, locale.Arabic)

	conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL(), cfg.RabbitMQ.Retries, cfg.RabbitMQ.Pause)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to open channel")
	}

	instance := instanceName()

	changeQueue, err := queue.NewChangeQueue(ch, cfg.RabbitMQ.ChangesExchange, instance, cfg.Retry)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to create change queue")
	}

	forwardQueue, err := queue.NewForwardQueue(ch, cfg.RabbitMQ.ForwardExchange)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to create forward queue")
	}

	opts := &dbpg.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	slaveDSNs := make([]string, 0, len(cfg.Database.Slaves))
	for _, s := range cfg.Database.Slaves {
		slaveDSNs = append(slaveDSNs, s.DSN())
	}

	db, err := dbpg.New(cfg.Database.Master.DSN(), slaveDSNs, opts)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	dbNum, err := strconv.Atoi(cfg.Redis.Database)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to parse redis database")
	}

	rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, dbNum)
	if err = rdb.Ping(ctx).Err(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
	}

	hub := realtime.NewHub()
	changes := realtime.NewBroadcaster(hub, changeQueue)

	clients := clientrepo.NewRepository(db)
	notifications := notifrepo.NewRepository(db)
	profiles := profilerepo.NewRepository(db)

	notifiers := make(map[string]notifsvc.Notifier)

	if cfg.Telegram.Token != "" {
		notifiers[notifsvc.ChannelTelegram] = telegram.NewClient(cfg.Telegram.Token)
	}

	if cfg.Email.SMTPHost != "" {
		smtpPort, err := strconv.Atoi(cfg.Email.SMTPPort)
		if err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to parse email smtp port")
		}

		notifiers[notifsvc.ChannelEmail] = email.NewClient(
			cfg.Email.SMTPHost,
			smtpPort,
			cfg.Email.Username,
			cfg.Email.Password,
			cfg.Email.From,
		)
	}

	clientService := clientsvc.NewService(clients, roster.NewStore(), changes, clientsvc.DeletePolicy{
		Attempts: cfg.Roster.DeleteAttempts,
		Step:     cfg.Roster.DeleteBackoff,
	})

	notifService := notifsvc.NewService(notifsvc.Deps{
		Repo:      notifications,
		Profiles:  profiles,
		Changes:   changes,
		Forward:   forwardQueue,
		Notifiers: notifiers,
		Cache:     cache.NewUnreadCounts(rdb, cfg.Retry, cfg.Redis.TTL),
	}, notifsvc.Window{
		Length:      cfg.Scanner.Window,
		Granularity: cfg.Scanner.Granularity,
	}, lang, cfg.Retry)

	defer hub.Subscribe(realtime.TableClients, clientService.OnChange)()
	defer hub.Subscribe(realtime.TableNotifications, notifService.OnChange)()

	if err := clientService.Load(ctx); err != nil {
		// the roster loads lazily on the first request when the database is not ready yet
		zlog.Logger.Error().Err(err).Msg("failed to load clients")
	}

	scanner := worker.NewScanner(clients, notifService, changes, cfg.Scanner.Interval, cfg.Scanner.Retry, lang)
	relay := worker.NewRelay(changeQueue, hub)
	forwarder := worker.NewForwarder(forwardQueue, forward.NewHandler(notifService))

	go scanner.Run(ctx)
	go relay.Run(ctx, cfg.Workers.Count)
	go forwarder.Run(ctx, cfg.Retry, cfg.Workers.Count)

	r := router.New(router.Handlers{
		Clients:       clienthandler.NewHandler(clientService, val, cfg),
		Notifications: notifhandler.NewHandler(notifService, cfg),
		Events:        events.NewHandler(hub, events.DefaultHeartbeat),
		Health: health.NewHandler(map[string]health.Check{
			"postgres": db.Master.PingContext,
			"redis": func(ctx context.Context) error {
				return rdb.Ping(ctx).Err()
			},
		}, cfg.Server.ReadTimeout),
		Auth: middleware.Auth([]byte(cfg.Auth.JWTSecret), lang),
	})
	s := server.New(cfg.Server.HTTPPort, r, cfg.Server.ReadTimeout)

	go func() {
		zlog.Logger.Info().Str("addr", cfg.Server.HTTPPort).Str("instance", instance).Msg("server started")
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
		zlog.Logger.Info().Msg("timeout exceeded, forcing shutdown")
	}

	if err := db.Master.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close master DB")
	}

	for i, s := range db.Slaves {
		if err := s.Close(); err != nil {
			zlog.Logger.Error().Err(err).Int("slave", i).Msg("failed to close slave DB")
		}
	}

	if err := ch.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ channel")
	}

	if err := conn.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ connection")
	}
}
