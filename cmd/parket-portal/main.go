package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"parket-portal/internal/api"
	"parket-portal/internal/api/handlers"
	"parket-portal/internal/assistant"
	"parket-portal/internal/repository"
	"parket-portal/internal/service"
	"parket-portal/pkg/auth"
	"parket-portal/pkg/config"
	"parket-portal/pkg/logger"
	"parket-portal/pkg/postgres"
	"parket-portal/pkg/redis"

	"go.uber.org/zap"
)

// @title Parket Portal API
// @version 1.0
// @description Клиентский портал паркетной компании: чат-ассистент, база знаний, калькулятор и заказы
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@parket-portal.ru

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting Parket Portal service")

	// Initialize database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize Redis
	redisClient, err := redis.NewClient(ctx, &cfg.Redis, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db, appLogger)
	knowledgeRepo := repository.NewKnowledgeRepository(db, appLogger)
	chatRepo := repository.NewChatRepository(db, appLogger)
	settingsRepo := repository.NewSettingsRepository(db, appLogger)
	faqRepo := repository.NewFAQRepository(db, appLogger)
	videoRepo := repository.NewVideoRepository(db, appLogger)
	orderRepo := repository.NewOrderRepository(db, appLogger)
	legalRepo := repository.NewLegalEntityRepository(db, appLogger)
	snapshotCache := repository.NewSnapshotCache(redisClient, cfg.Redis.SnapshotTTL, appLogger)

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager, appLogger)

	llmService, err := service.NewLLMService(&cfg.GigaChat, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize LLM service", zap.Error(err))
	}
	defer llmService.Close()

	// Assemble the chat response cascade
	selector := assistant.NewSelector(llmService, appLogger)
	composer := assistant.NewComposer(llmService, cfg.Chat.DefaultSystem, cfg.Chat.HistoryTail, cfg.Chat.MaxAutoCards, appLogger)
	router := assistant.NewRouter(selector, composer, appLogger)

	chatService := service.NewChatService(chatRepo, knowledgeRepo, settingsRepo, userRepo, snapshotCache, router, cfg.Chat.DefaultSystem, appLogger)

	feedService := service.NewFeedService(appLogger)
	knowledgeService := service.NewKnowledgeService(knowledgeRepo, feedService, appLogger)
	extractService := service.NewExtractService(llmService, cfg.Server.UploadDir, appLogger)
	catalogService := service.NewCatalogService(faqRepo, videoRepo, settingsRepo, appLogger)
	calculatorService := service.NewCalculatorService(knowledgeService, appLogger)
	mailService := service.NewMailService(&cfg.SMTP, appLogger)
	orderService := service.NewOrderService(orderRepo, userRepo, legalRepo, mailService, appLogger)

	// Initialize handlers
	h := api.Handlers{
		Auth:       handlers.NewAuthHandler(authService, appLogger),
		Chat:       handlers.NewChatHandler(chatService, appLogger),
		Knowledge:  handlers.NewKnowledgeHandler(knowledgeService, extractService, appLogger),
		FAQ:        handlers.NewFAQHandler(catalogService, appLogger),
		Video:      handlers.NewVideoHandler(catalogService, appLogger),
		Order:      handlers.NewOrderHandler(orderService, appLogger),
		Calculator: handlers.NewCalculatorHandler(calculatorService, appLogger),
		Admin:      handlers.NewAdminHandler(authService, orderService, chatService, catalogService, cfg.Chat.DefaultSystem, appLogger),
	}

	// Setup router
	app := api.SetupRouter(h, jwtManager, cfg.Server.UploadDir, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
