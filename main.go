package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"orderalone/config"
	"orderalone/handlers"
	"orderalone/logger"
	"orderalone/middleware"
	"orderalone/models"
	"orderalone/monitoring"
	"orderalone/repository"
	"orderalone/routes"
	"orderalone/services"
	"orderalone/tracing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func main() {
	configDir := os.Getenv("CONFIG_DIR")
	if configDir == "" {
		configDir = "."
	}

	// Load configuration
	cfg, err := config.Load(configDir)
	if err != nil {
		panic(err)
	}

	logger.InitLogger(logger.Options{
		Mode:       cfg.Server.Mode,
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
	defer logger.Log.Sync()

	gin.SetMode(cfg.Server.Mode)
	monitoring.Init(prometheus.DefaultRegisterer)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("orderalone", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
			}
		}()
	}

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Auto-migrate database models
	if err := db.AutoMigrate(
		&models.User{},
		&models.Menu{},
		&models.Game{},
		&models.Order{},
	); err != nil {
		logger.Log.Fatal("Failed to migrate database", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize Redis
	redisClient := config.InitRedis(cfg)
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Log.Warn("Redis unreachable, cache and leaderboard will fall back to the database", zap.Error(err))
	}

	var events services.EventPublisher
	if writer := config.InitKafkaWriter(cfg); writer != nil {
		defer writer.Close()
		events = services.NewKafkaEventPublisher(writer)
	}

	var images services.ImageStore
	minioClient, err := config.InitMinio(ctx, cfg)
	if err != nil {
		logger.Log.Error("Image storage disabled", zap.Error(err))
	} else if minioClient != nil {
		images = services.NewMinioImageStore(minioClient, cfg.Storage.MinioBucket, cfg.Storage.PublicBaseURL)
	}

	// Initialize repositories and services
	store := repository.NewGormStore(db)
	tokens := services.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL)
	leaderboard := services.NewRedisLeaderboard(redisClient)

	menuService := services.NewMenuService(
		repository.NewMenuRepository(db),
		store,
		services.NewRedisMenuCache(redisClient, cfg.Cache.MenuTTL),
		images,
	)
	authService := services.NewAuthService(repository.NewUserRepository(db), tokens)

	// The hub needs game state and the game service broadcasts through the
	// hub, so the hub's provider is set once both exist.
	hub := services.NewHub(nil)
	orderService := services.NewOrderService(store, store, menuService, leaderboard, events, hub)
	gameService := services.NewGameService(store, store, menuService, orderService, leaderboard, events, hub,
		services.DefaultQRGenerator{BaseURL: cfg.Server.PublicURL})
	hub.SetGameStateProvider(gameService)
	go hub.Run()

	go func() {
		err := config.Watch(ctx, configDir, func(next *config.Config) {
			if logger.SetLevel(next.Log.Level) {
				logger.Log.Info("Config reloaded", zap.String("level", next.Log.Level))
			}
		})
		if err != nil {
			logger.Log.Warn("Config watcher stopped", zap.Error(err))
		}
	}()

	// Setup Gin router
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestLogger(),
		middleware.CORS(cfg.CORS.AllowedOrigins),
		tracing.GinMiddleware(),
		monitoring.MetricsMiddleware(),
		middleware.RateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst),
	)

	routes.SetupRoutes(router, routes.Handlers{
		Auth:  handlers.NewAuthHandler(authService),
		Menu:  handlers.NewMenuHandler(menuService),
		Game:  handlers.NewGameHandler(gameService, hub),
		Order: handlers.NewOrderHandler(orderService),
	}, hub, gameService, tokens, cfg.CORS.AllowedOrigins)

	srv := &http.Server{
		Addr:              cfg.Server.BindAddress + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Log.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}
}
