package api

import (
	"parket-portal/docs"
	"parket-portal/internal/api/handlers"
	"parket-portal/pkg/auth"
	"parket-portal/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

type Handlers struct {
	Auth       *handlers.AuthHandler
	Chat       *handlers.ChatHandler
	Knowledge  *handlers.KnowledgeHandler
	FAQ        *handlers.FAQHandler
	Video      *handlers.VideoHandler
	Order      *handlers.OrderHandler
	Calculator *handlers.CalculatorHandler
	Admin      *handlers.AdminHandler
}

func SetupRouter(h Handlers, jwtManager *auth.JWTManager, uploadDir string, appLogger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	// Swagger - импорт docs пакета регистрирует документацию через init()
	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Static("/uploads", uploadDir)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api/v1")

	// Public routes
	authGroup := api.Group("/auth")
	authGroup.Post("/register", h.Auth.Register)
	authGroup.Post("/login", h.Auth.Login)
	authGroup.Post("/refresh", h.Auth.RefreshToken)

	api.Get("/faq/categories", h.FAQ.ListCategories)
	api.Get("/faq", h.FAQ.List)
	api.Get("/videos/categories", h.Video.ListCategories)
	api.Get("/videos", h.Video.List)

	// Authenticated routes
	protected := api.Group("", middleware.AuthMiddleware(jwtManager, appLogger))
	protected.Get("/auth/me", h.Auth.Me)
	protected.Put("/auth/me", h.Auth.UpdateProfile)

	chat := protected.Group("/chat")
	chat.Post("/session", h.Chat.InitSession)
	chat.Delete("/session", h.Chat.ClearSession)
	chat.Post("/messages", h.Chat.SendMessage)

	protected.Post("/calculator", h.Calculator.Calculate)

	protected.Post("/orders", h.Order.Create)
	protected.Get("/orders", h.Order.ListMy)
	protected.Get("/legal-entities", h.Order.ListLegalEntities)
	protected.Post("/legal-entities", h.Order.CreateLegalEntity)
	protected.Put("/legal-entities/:id", h.Order.UpdateLegalEntity)
	protected.Delete("/legal-entities/:id", h.Order.DeleteLegalEntity)

	// Admin routes
	admin := protected.Group("/admin", middleware.AdminOnly(appLogger))

	knowledge := admin.Group("/knowledge")
	knowledge.Get("", h.Knowledge.List)
	knowledge.Post("", h.Knowledge.Create)
	knowledge.Post("/upload", h.Knowledge.Upload)
	knowledge.Post("/extract", h.Knowledge.Extract)
	knowledge.Get("/:id", h.Knowledge.Get)
	knowledge.Put("/:id", h.Knowledge.Update)
	knowledge.Delete("/:id", h.Knowledge.Delete)
	knowledge.Post("/:id/sync", h.Knowledge.SyncFeed)

	admin.Post("/faq/categories", h.FAQ.CreateCategory)
	admin.Delete("/faq/categories/:id", h.FAQ.DeleteCategory)
	admin.Post("/faq", h.FAQ.Create)
	admin.Put("/faq/:id", h.FAQ.Update)
	admin.Delete("/faq/:id", h.FAQ.Delete)

	admin.Post("/videos/categories", h.Video.CreateCategory)
	admin.Delete("/videos/categories/:id", h.Video.DeleteCategory)
	admin.Post("/videos", h.Video.Create)
	admin.Put("/videos/:id", h.Video.Update)
	admin.Delete("/videos/:id", h.Video.Delete)

	admin.Get("/users", h.Admin.ListUsers)
	admin.Get("/orders", h.Admin.ListOrders)
	admin.Get("/chats", h.Admin.ListChatSessions)
	admin.Get("/settings", h.Admin.GetAISettings)
	admin.Put("/settings", h.Admin.UpdateAISettings)

	return app
}
