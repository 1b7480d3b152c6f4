package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"event-ticketing/config"
	"event-ticketing/internal/auth"
	"event-ticketing/internal/cache"
	"event-ticketing/internal/database"
	"event-ticketing/internal/handler"
	"event-ticketing/internal/middleware"
	"event-ticketing/internal/queue"
	"event-ticketing/internal/repository"
	"event-ticketing/internal/service"
	"event-ticketing/internal/worker"
	"event-ticketing/pkg/logger"

	"github.com/gin-gonic/gin"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	defer logger.Sync()
	log := logger.WithComponent("main")

	cfg := config.LoadConfig()

	addr := pflag.String("addr", cfg.Server.Addr, "HTTP listen address")
	migrateOnly := pflag.Bool("migrate", false, "apply database migrations and exit")
	pflag.Parse()
	cfg.Server.Addr = *addr

	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration", zap.Error(err))
	}

	if err := database.RunMigrations(&cfg.Database); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}
	if *migrateOnly {
		return
	}

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer pool.Close()

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		log.Fatal("Failed to initialize redis", zap.Error(err))
	}
	defer rdb.Close()

	activityQueue, closeQueue, err := newActivityQueue(cfg, rdb)
	if err != nil {
		log.Fatal("Failed to initialize activity queue", zap.Error(err), zap.String("driver", cfg.Queue.Driver))
	}
	defer closeQueue()

	// repositories
	txManager := repository.NewTxManager(pool)
	eventRepo := repository.NewEventRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	userRepo := repository.NewUserRepository(pool)
	activityRepo := repository.NewActivityRepository(pool)
	statusCache := cache.NewRedisEventStatusCache(rdb, cfg.Cache.StatusTTL)

	// services
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	userService := service.NewUserService(userRepo, bookingRepo, auth.NewBcryptHasher(cfg.Auth.BcryptCost), cfg.Auth.AllowAdminSignup)
	sideEffects := service.WithSideEffectTimeout(cfg.Queue.PublishTimeout)
	eventService := service.NewEventService(txManager, eventRepo, bookingRepo, activityRepo, statusCache, activityQueue, sideEffects)
	bookingService := service.NewBookingService(txManager, eventRepo, bookingRepo, userRepo, statusCache, activityQueue, sideEffects)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// worker 要在 HTTP 請求都結束後才停，最後一批 activity 才有人消化
	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()

	activityWorker := worker.NewActivityWorker(activityRepo, activityQueue)
	if err := activityWorker.Start(workerCtx); err != nil {
		log.Fatal("Failed to start activity worker", zap.Error(err))
	}

	gin.SetMode(cfg.Server.GinMode)
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger())

	authn := middleware.Authenticate(tokens, userService)
	handler.NewEventHandler(eventService).RegisterRoutes(router, authn)
	handler.NewBookingHandler(bookingService).RegisterRoutes(router, authn)
	handler.NewUserHandler(userService, tokens, cfg.Auth.CookieSecure).RegisterRoutes(router, authn)
	handler.NewHealthHandler(map[string]handler.HealthCheck{
		"postgres": pool.Ping,
		"redis":    func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
	}).RegisterRoutes(router)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", cfg.Server.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown", zap.Error(err))
	}
	stopWorker()

	select {
	case <-activityWorker.Done():
	case <-shutdownCtx.Done():
		log.Warn("Activity worker did not stop in time")
	}
}

// newActivityQueue 依 QUEUE_DRIVER 建立 activity 隊列
func newActivityQueue(cfg *config.Config, rdb *redis.Client) (queue.ActivityQueue, func(), error) {
	switch cfg.Queue.Driver {
	case "amqp":
		conn, err := database.InitAMQP(&cfg.Queue)
		if err != nil {
			return nil, nil, err
		}
		q, err := queue.NewAMQPActivityQueue(conn, cfg.Queue.AMQPQueue)
		if err != nil {
			_ = conn.Close()
			return nil, nil, err
		}
		return q, closeAMQP(q, conn), nil
	case "memory":
		q := queue.NewMemoryActivityQueue(cfg.Queue.BufferSize)
		return q, func() { _ = q.Close() }, nil
	default:
		q, err := queue.NewRedisStreamActivityQueue(rdb, cfg.Queue.ConsumerID, &queue.RedisStreamConfig{
			MaxLen: cfg.Queue.StreamMaxLen,
		})
		if err != nil {
			return nil, nil, err
		}
		return q, func() { _ = q.Close() }, nil
	}
}

func closeAMQP(q queue.ActivityQueue, conn *amqp.Connection) func() {
	return func() {
		_ = q.Close()
		_ = conn.Close()
	}
}
