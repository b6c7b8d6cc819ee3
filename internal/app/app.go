package app

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/go-redis/redis/v8"
	"github.com/pressly/goose/v3"
	"github.com/stpnv0/EsHomes/internal/config"
	"github.com/stpnv0/EsHomes/internal/domain"
	"github.com/stpnv0/EsHomes/internal/gateway"
	"github.com/stpnv0/EsHomes/internal/handler"
	"github.com/stpnv0/EsHomes/internal/locker"
	"github.com/stpnv0/EsHomes/internal/middleware"
	"github.com/stpnv0/EsHomes/internal/notification"
	"github.com/stpnv0/EsHomes/internal/repository"
	"github.com/stpnv0/EsHomes/internal/router"
	"github.com/stpnv0/EsHomes/internal/scheduler"
	"github.com/stpnv0/EsHomes/internal/service"
	"github.com/stpnv0/EsHomes/internal/service/ports"
	"github.com/stpnv0/EsHomes/migrations"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const appName = "EsHomes"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	redis      *redis.Client
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
	reconciler *service.Reconciler
}

func New(cfg *config.Config) (*App, error) {
	app, err := NewMigrator(cfg)
	if err != nil {
		return nil, err
	}

	if err = app.initServices(); err != nil {
		_ = app.Close()
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

// NewMigrator connects only the logger and the database; enough for Migrate
// and Close.
func NewMigrator(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		appName,
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}
	db.Master.SetConnMaxLifetime(a.cfg.Postgres.ConnMaxLifetime)

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initLocker() (ports.Locker, error) {
	if !a.cfg.Redis.Enabled() {
		a.log.Info("redis not configured, using in-process reconciliation lock")
		return locker.NewLocal(), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     a.cfg.Redis.Addr,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	a.redis = client
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "redis connected",
		logger.String("addr", a.cfg.Redis.Addr),
		logger.Duration("lock_ttl", a.cfg.Redis.LockTTL),
	)

	return locker.NewRedis(client, a.cfg.Redis.LockTTL), nil
}

func (a *App) initServices() error {
	apartmentRepo := repository.NewApartmentRepo(a.db)
	bookingRepo := repository.NewBookingRepo(a.db)
	txRepo := repository.NewTransactionRepo(a.db)
	reviewRepo := repository.NewReviewRepo(a.db)
	userRepo := repository.NewUserRepo(a.db)

	n, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.cfg.Booking.PendingTTL.String(), a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	lock, err := a.initLocker()
	if err != nil {
		return fmt.Errorf("init locker: %w", err)
	}

	gw := gateway.NewClient(gateway.Config{
		BaseURL:     a.cfg.Payment.BaseURL,
		SecretKey:   a.cfg.Payment.SecretKey,
		PublicKey:   a.cfg.Payment.PublicKey,
		Currency:    a.cfg.Payment.Currency,
		RedirectURL: a.cfg.Payment.CallbackURL,
		Timeout:     a.cfg.Payment.VerifyTimeout,
	})

	catalogService := service.NewCatalogService(apartmentRepo, a.log)
	userService := service.NewUserService(userRepo, a.log)
	reviewService := service.NewReviewService(reviewRepo, bookingRepo, apartmentRepo)
	bookingService := service.NewBookingService(
		bookingRepo, apartmentRepo, txRepo, userRepo, n,
		service.BookingOptions{
			TxRefPrefix: a.cfg.Payment.TxRefPrefix,
			PendingTTL:  a.cfg.Booking.PendingTTL,
		},
		a.log,
	)
	a.reconciler = service.NewReconciler(
		txRepo, apartmentRepo, userRepo, gw, lock, n,
		service.ReconcilerOptions{LockTimeout: a.cfg.Payment.LockTimeout},
		a.log,
	)

	a.scheduler = scheduler.New(
		bookingService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(catalogService, bookingService, a.reconciler, reviewService, userService, handler.Options{
		WebhookHash: a.cfg.Payment.WebhookHash,
		SuccessURL:  a.cfg.Payment.SuccessURL,
		FailureURL:  a.cfg.Payment.FailureURL,
	})
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		_ = a.Close()
		return err
	}

	return a.shutdown()
}

// Reverify re-checks one transaction with the gateway outside of the HTTP
// surface.
func (a *App) Reverify(ctx context.Context, txRef, gatewayTxID string) (*domain.ReconcileOutcome, error) {
	return a.reconciler.Reverify(ctx, txRef, gatewayTxID)
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if err := a.Close(); err != nil {
		return err
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

// Close releases the database and redis connections.
func (a *App) Close() error {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			return fmt.Errorf("close redis: %w", err)
		}
	}

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	return nil
}

// Migrate runs a goose command (up, down, status) against the embedded
// migrations.
func (a *App) Migrate(command string) error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	var err error
	switch command {
	case "up":
		err = goose.Up(a.db.Master, ".")
	case "down":
		err = goose.Down(a.db.Master, ".")
	case "status":
		err = goose.Status(a.db.Master, ".")
	default:
		return fmt.Errorf("unknown migrate command %q", command)
	}
	if err != nil {
		return fmt.Errorf("goose %s: %w", command, err)
	}

	a.log.Info("migrations applied successfully", logger.String("command", command))
	return nil
}
