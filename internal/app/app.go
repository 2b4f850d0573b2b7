package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/pressly/goose/v3"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"

	"github.com/boomghooom/BoomGhoomBackend-sub000/internal/cache"
	"github.com/boomghooom/BoomGhoomBackend-sub000/internal/config"
	"github.com/boomghooom/BoomGhoomBackend-sub000/internal/handler"
	"github.com/boomghooom/BoomGhoomBackend-sub000/internal/middleware"
	"github.com/boomghooom/BoomGhoomBackend-sub000/internal/notification"
	"github.com/boomghooom/BoomGhoomBackend-sub000/internal/repository"
	"github.com/boomghooom/BoomGhoomBackend-sub000/internal/router"
	"github.com/boomghooom/BoomGhoomBackend-sub000/internal/scheduler"
	"github.com/boomghooom/BoomGhoomBackend-sub000/internal/service"
	"github.com/boomghooom/BoomGhoomBackend-sub000/internal/worker"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	redis      *cache.Redis
	rabbit     *notification.Rabbit
	worker     *worker.Worker
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"BoomGhoom",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
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

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initServices() error {
	redisCache, err := cache.New(
		a.cfg.Redis.Addr,
		a.cfg.Redis.Password,
		a.cfg.Redis.DB,
		a.cfg.Redis.TTL,
		a.log,
	)
	if err != nil {
		return fmt.Errorf("init redis: %w", err)
	}
	a.redis = redisCache

	rabbit, err := notification.NewRabbit(a.cfg.Rabbit.URL, a.cfg.Rabbit.Queue, a.log)
	if err != nil {
		return fmt.Errorf("init rabbit: %w", err)
	}
	a.rabbit = rabbit

	sender, err := notification.NewTelegramSender(a.cfg.Telegram.BotToken, a.log)
	if err != nil {
		return fmt.Errorf("init telegram sender: %w", err)
	}
	a.worker = worker.New(rabbit, sender, a.log)

	notifier := notification.NewPublisher(rabbit, a.log)

	tx := repository.NewCoordinator(a.db)
	eventRepo := repository.NewEventRepo(a.db, tx)
	participantRepo := repository.NewParticipantRepo(a.db, tx)
	dueRepo := repository.NewDueRepo(a.db, tx)
	commissionRepo := repository.NewCommissionRepo(a.db, tx)
	userRepo := repository.NewUserRepo(a.db)

	commissionService := service.NewCommissionService(
		commissionRepo, userRepo, redisCache, notifier, a.log,
		a.cfg.Settlement.MinWithdrawal,
	)
	lifecycleService := service.NewLifecycleService(
		eventRepo, userRepo, redisCache, notifier, a.log,
		a.cfg.Settlement.CommissionPct,
	)
	participationService := service.NewParticipationService(
		participantRepo, eventRepo, userRepo, redisCache, notifier, a.log,
		a.cfg.Settlement.LeaveWindow,
	)
	duesService := service.NewDuesService(
		dueRepo, userRepo, eventRepo, commissionService, redisCache, a.log,
		a.cfg.Settlement.GatewayFeePct, a.cfg.Settlement.GSTPct,
	)
	userService := service.NewUserService(userRepo, a.log)

	a.scheduler = scheduler.New(
		lifecycleService,
		userService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(lifecycleService, participationService, duesService, commissionService, userService)
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

	if err := a.worker.Start(); err != nil {
		return fmt.Errorf("notification worker: %w", err)
	}

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
		return err
	}

	return a.shutdown()
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

	a.rabbit.Close()

	if err := a.redis.Close(); err != nil {
		return fmt.Errorf("close redis: %w", err)
	}

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
