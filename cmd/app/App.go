package app

import (
	"context"
	"fmt"
	"socketBoard/configs"
	"socketBoard/internal/handlers"
	"socketBoard/internal/metrics"
	"socketBoard/internal/repositories"
	"socketBoard/internal/rooms"
	"socketBoard/internal/servers/database"
	"socketBoard/internal/servers/http"
	"socketBoard/internal/services"
	"socketBoard/internal/utils"
	"sync"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	app  *App
	once sync.Once
)

type App struct {
	ctx     context.Context
	configs *configs.Config
	logger  *zap.Logger
	db      *gorm.DB
	redis   *redis.Client
}

// roomHub is what the gateway and the health probe need from the room layer.
type roomHub interface {
	rooms.Broadcaster
	handlers.RoomCounter
}

func GetApp() *App {
	once.Do(func() {
		app = &App{}
	})
	return app
}

// LetsGo wires every component and serves until ctx is cancelled.
func (app *App) LetsGo(ctx context.Context, configPath string) error {
	if err := app.initialize(ctx, configPath); err != nil {
		return err
	}
	defer app.close()

	db, err := database.Connect(app.configs, app.logger)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	app.db = db

	hub, err := app.initializeRooms()
	if err != nil {
		return err
	}

	userRepo := repositories.NewUserRepository(db)
	whiteboardRepo := repositories.NewWhiteboardRepository(db)
	sessionRepo := repositories.NewSessionRepository(db)

	archiver, err := app.initializeArchiver()
	if err != nil {
		return err
	}

	appMetrics := metrics.NewMetrics()
	sessionService := services.NewSessionService(hub, userRepo, whiteboardRepo, sessionRepo, appMetrics, app.logger)
	relayService := services.NewRelayService(hub, appMetrics, app.logger)
	canvasService := services.NewCanvasService(hub, whiteboardRepo, archiver, appMetrics, app.logger)
	userService := services.NewUserService(userRepo)
	whiteboardService := services.NewWhiteboardService(whiteboardRepo, sessionRepo)

	handler := handlers.NewHandler(hub)
	restHandler := handlers.NewRestHandler(userService, whiteboardService, app.logger)
	socketWhiteboardHandler := handlers.NewSocketWhiteboardHandler(
		app.ctx,
		app.configs,
		hub,
		sessionService,
		relayService,
		canvasService,
		appMetrics,
		app.logger,
	)

	return http.NewHttpServer(
		app.configs,
		app.logger,
		handler,
		restHandler,
		socketWhiteboardHandler,
	).Run(app.ctx)
}

// Migrate creates or updates the schema and exits.
func (app *App) Migrate(ctx context.Context, configPath string) error {
	if err := app.initialize(ctx, configPath); err != nil {
		return err
	}
	defer app.close()

	// Connect migrates on its own when database.auto_migrate is set.
	app.configs.Viper.Set("database.auto_migrate", false)
	db, err := database.Connect(app.configs, app.logger)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	app.db = db
	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	app.logger.Info("Database migrated")
	return nil
}

func (app *App) initialize(ctx context.Context, configPath string) error {
	app.ctx = ctx
	if err := app.initializeConfigs(configPath); err != nil {
		return err
	}
	logger, err := utils.NewLogger(app.configs.Viper.GetString("log.level"))
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	app.logger = logger
	return nil
}

func (app *App) initializeConfigs(configPath string) error {
	if configPath == "" {
		app.configs = configs.GetConfig()
		return nil
	}
	cfg, err := configs.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	app.configs = cfg
	return nil
}

// initializeRooms returns the local registry, or a Redis backed broadcaster
// when several instances share rooms.
func (app *App) initializeRooms() (roomHub, error) {
	registry := rooms.NewRegistry(app.logger)
	if !app.configs.Viper.GetBool("redis.enabled") {
		return registry, nil
	}

	app.initializeRedis()
	broadcaster := rooms.NewRedisBroadcaster(
		registry,
		app.redis,
		app.configs.Viper.GetString("redis.channel"),
		app.logger,
	)
	if err := broadcaster.Start(app.ctx); err != nil {
		return nil, fmt.Errorf("subscribe to redis: %w", err)
	}
	return broadcaster, nil
}

func (app *App) initializeRedis() {
	app.redis = redis.NewClient(&redis.Options{
		Addr:     app.configs.Viper.GetString("redis.addr"),
		Password: app.configs.Viper.GetString("redis.password"),
		DB:       app.configs.Viper.GetInt("redis.db"),
	})
}

func (app *App) initializeArchiver() (services.CanvasArchiver, error) {
	if !app.configs.Viper.GetBool("minio.enabled") {
		return nil, nil
	}
	minioService, err := services.NewMinioService(app.ctx, app.configs, app.logger)
	if err != nil {
		return nil, fmt.Errorf("connect minio: %w", err)
	}
	return services.NewFileManagerService(minioService, app.configs.Viper.GetString("minio.bucket"), app.logger), nil
}

func (app *App) close() {
	if app.redis != nil {
		if err := app.redis.Close(); err != nil {
			app.logger.Warn("Error closing redis", zap.Error(err))
		}
	}
	if app.db != nil {
		if sqlDB, err := app.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	_ = app.logger.Sync()
}
