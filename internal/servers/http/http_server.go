package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"socketBoard/configs"
	"socketBoard/docs"
	"socketBoard/internal/handlers"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

type HttpServer struct {
	config                  *configs.Config
	logger                  *zap.Logger
	router                  *gin.Engine
	handler                 *handlers.Handler
	restHandler             *handlers.RestHandler
	socketWhiteboardHandler *handlers.SocketWhiteboardHandler
}

func NewHttpServer(
	config *configs.Config,
	logger *zap.Logger,
	handler *handlers.Handler,
	restHandler *handlers.RestHandler,
	socketWhiteboardHandler *handlers.SocketWhiteboardHandler,
) *HttpServer {
	hs := &HttpServer{
		config:                  config,
		logger:                  logger,
		handler:                 handler,
		restHandler:             restHandler,
		socketWhiteboardHandler: socketWhiteboardHandler,
	}
	hs.initializeGin()
	hs.setupRoutes()
	return hs
}

// Router exposes the configured engine, mainly for tests.
func (hs *HttpServer) Router() *gin.Engine {
	return hs.router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (hs *HttpServer) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", hs.config.Viper.GetInt("server.port")),
		Handler: hs.router,
	}

	serveErr := make(chan error, 1)
	go func() {
		hs.logger.Info("HTTP server started", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	hs.logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), hs.config.Viper.GetDuration("server.shutdown_timeout"))
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		hs.logger.Error("Server forced to shutdown", zap.Error(err))
	}

	// Hijacked websocket connections are not closed by Shutdown.
	hs.socketWhiteboardHandler.CloseAll()

	hs.logger.Info("Server exiting")
	return nil
}

func (hs *HttpServer) initializeGin() {
	gin.SetMode(hs.config.Viper.GetString("server.mode"))
	hs.router = gin.New()
	hs.router.Use(gin.Recovery())
	hs.router.Use(handlers.LoggerMiddleware(hs.logger))
	hs.router.Use(handlers.CorsMiddleware(hs.config.Viper.GetString("cors.origin")))
}

func (hs *HttpServer) setupRoutes() {
	docs.SwaggerInfo.BasePath = "/"

	hs.router.GET("/ws", hs.socketWhiteboardHandler.HandleSocketWhiteboardRoute)

	api := hs.router.Group("/api")
	{
		api.POST("/users", hs.restHandler.CreateUser)
		api.GET("/whiteboards", hs.restHandler.GetAllWhiteboards)
		api.GET("/whiteboards/:id", hs.restHandler.GetWhiteboard)
		api.GET("/whiteboards/:id/sessions", hs.restHandler.GetWhiteboardSessions)
	}

	hs.router.GET("/healthz", hs.handler.Health)
	hs.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	hs.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	hs.router.NoRoute(hs.handler.NotFound)
}
