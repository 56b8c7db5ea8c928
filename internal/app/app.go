package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"jobhub_admin/internal/config"
	"jobhub_admin/internal/handlers"
	"jobhub_admin/internal/logger"
	"jobhub_admin/internal/middleware"
	"jobhub_admin/internal/routes"
	"jobhub_admin/internal/services"
	"jobhub_admin/internal/upstream"
	"jobhub_admin/internal/validator"
	"jobhub_admin/internal/workers"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)
	logger.Info("Upstream platform API", "base_url", cfg.Upstream.BaseURL)

	ginRouter := SetupRouter(cfg)

	// Фоновый опрос входящих ответов живет, пока жив процесс
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	startWorkers(ctx, cfg)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("🚀 Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config) *gin.Engine {
	client := upstream.NewClient(cfg.Upstream.BaseURL, cfg.UpstreamTimeout())

	// 1. Инициализируем сервисы
	serviceContainer := services.NewServiceContainer(client)

	// 2. Инициализируем хэндлеры
	appHandlers := initializeHandlers(serviceContainer)

	// 3. Инициализируем Gin
	ginRouter := initializeGinRouter(cfg)

	// 4. Делегируем регистрацию маршрутов пакету 'routes'
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeHandlers(sc *services.ServiceContainer) *handlers.AppHandlers {
	base := handlers.NewBaseHandler(validator.New())

	return &handlers.AppHandlers{
		UserHandler:         handlers.NewUserHandler(base, sc.Users),
		JobHandler:          handlers.NewJobHandler(base, sc.Jobs),
		ApplicationHandler:  handlers.NewApplicationHandler(base, sc.Applications),
		CompanyHandler:      handlers.NewCompanyHandler(base, sc.Companies),
		GoogleHandler:       handlers.NewGoogleHandler(base, sc.Google),
		NotificationHandler: handlers.NewNotificationHandler(base, sc.Notifications),
		AIHandler:           handlers.NewAIHandler(base, sc.AI),
		SearchHandler:       handlers.NewSearchHandler(base, sc.Search),
	}
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ginRouter := gin.New()
	ginRouter.Use(gin.Recovery())
	ginRouter.Use(middleware.RequestIDMiddleware())
	ginRouter.Use(middleware.LoggingMiddleware())
	ginRouter.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))

	return ginRouter
}

func startWorkers(ctx context.Context, cfg *config.Config) {
	client := upstream.NewClient(cfg.Upstream.BaseURL, cfg.UpstreamTimeout())
	google := upstream.NewGoogleClient(client)

	interval := time.Duration(cfg.Workers.ResponsePollMinutes) * time.Minute
	worker := workers.NewResponseWorker(google, cfg.Upstream.ServiceToken, interval)
	worker.Start(ctx)
}
