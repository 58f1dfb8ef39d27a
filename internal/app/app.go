package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/GlebRadaev/coinkids/internal/cache"
	"github.com/GlebRadaev/coinkids/internal/config"
	"github.com/GlebRadaev/coinkids/internal/events"
	"github.com/GlebRadaev/coinkids/internal/handlers"
	"github.com/GlebRadaev/coinkids/internal/pg"
	"github.com/GlebRadaev/coinkids/internal/repo"
	"github.com/GlebRadaev/coinkids/internal/reward"
	"github.com/GlebRadaev/coinkids/internal/service"
	"github.com/GlebRadaev/coinkids/pkg/auth"
	"github.com/GlebRadaev/coinkids/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg  *config.Config
	api  *handlers.Handlers
	srv  *service.Services
	repo *repo.Repositories

	pool      *pgxpool.Pool
	workers   *reward.WorkerPool
	redis     *redis.Client
	publisher *events.Publisher

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := GetPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	conn := pg.New(pool)
	a.cfg = cfg
	a.pool = pool
	a.repo = repo.New(conn, txManager)
	a.workers = reward.NewWorkerPool(cfg.RewardWorkers, cfg.RewardQueue)

	jwtService := auth.NewJWTService(cfg.JWTSecret)
	deps := service.Deps{
		WorkerPool:    a.workers,
		RewardTimeout: cfg.RewardTimeout,
		JWTService:    jwtService,
		TokenTTL:      cfg.TokenTTL,
		HashCost:      cfg.HashCost,
	}
	if a.redis = ConnectRedis(ctx, cfg); a.redis != nil {
		deps.Catalog = cache.NewAchievementCatalog(a.repo.AchievementRepo, a.redis, cfg.CatalogTTL)
	}
	if a.publisher = a.connectPublisher(); a.publisher != nil {
		deps.Publisher = a.publisher
	}

	a.srv = service.New(a.repo, deps)
	a.api = handlers.New(a.srv, jwtService)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func GetPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

// ConnectRedis returns nil when no address is configured or the server is unreachable.
func ConnectRedis(ctx context.Context, cfg *config.Config) *redis.Client {
	if cfg.RedisAddress == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		zap.L().Warn("redis unavailable, achievement catalog cache disabled", zap.String("addr", cfg.RedisAddress), zap.Error(err))
		client.Close()
		return nil
	}
	zap.L().Info("achievement catalog cache enabled", zap.String("addr", cfg.RedisAddress))
	return client
}

func (a *Application) connectPublisher() *events.Publisher {
	if a.cfg.AMQPURL == "" {
		return nil
	}
	publisher, err := events.Dial(a.cfg.AMQPURL, a.cfg.AMQPExchange)
	if err != nil {
		zap.L().Warn("amqp unavailable, unlock events disabled", zap.Error(err))
		return nil
	}
	zap.L().Info("publishing unlock events", zap.String("exchange", a.cfg.AMQPExchange))
	return publisher
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
		a.close()
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

// close drains pending rewards before the database goes away.
func (a *Application) close() {
	if a.workers != nil {
		a.workers.Close()
	}
	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			zap.L().Warn("closing amqp publisher", zap.Error(err))
		}
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			zap.L().Warn("closing redis client", zap.Error(err))
		}
	}
	if a.pool != nil {
		a.pool.Close()
	}
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
