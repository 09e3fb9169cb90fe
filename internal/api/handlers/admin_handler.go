package handlers

import (
	"parket-portal/internal/dto"
	"parket-portal/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AdminHandler serves the admin panel views that do not belong to a single
// resource: users, all orders, chat history, assistant settings.
type AdminHandler struct {
	authService    *service.AuthService
	orderService   *service.OrderService
	chatService    *service.ChatService
	catalogService *service.CatalogService
	defaultPrompt  string
	logger         *zap.Logger
}

func NewAdminHandler(
	authService *service.AuthService,
	orderService *service.OrderService,
	chatService *service.ChatService,
	catalogService *service.CatalogService,
	defaultPrompt string,
	logger *zap.Logger,
) *AdminHandler {
	return &AdminHandler{
		authService:    authService,
		orderService:   orderService,
		chatService:    chatService,
		catalogService: catalogService,
		defaultPrompt:  defaultPrompt,
		logger:         logger,
	}
}

// ListUsers godoc
// @Summary List users
// @Tags admin
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Security Bearer
// @Success 200 {array} dto.UserResponse
// @Router /api/v1/admin/users [get]
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	limit, offset := pagination(c)

	users, err := h.authService.ListUsers(c.Context(), limit, offset)
	if err != nil {
		h.logger.Error("User list failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list users",
		})
	}
	return c.JSON(users)
}

// ListOrders godoc
// @Summary List all orders
// @Tags admin
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Security Bearer
// @Success 200 {array} dto.OrderResponse
// @Router /api/v1/admin/orders [get]
func (h *AdminHandler) ListOrders(c *fiber.Ctx) error {
	limit, offset := pagination(c)

	orders, err := h.orderService.ListOrders(c.Context(), limit, offset)
	if err != nil {
		h.logger.Error("Order list failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list orders",
		})
	}
	return c.JSON(orders)
}

// ListChatSessions godoc
// @Summary List chat sessions
// @Tags admin
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Security Bearer
// @Success 200 {array} dto.ChatSessionAdminResponse
// @Router /api/v1/admin/chats [get]
func (h *AdminHandler) ListChatSessions(c *fiber.Ctx) error {
	limit, offset := pagination(c)

	sessions, err := h.chatService.ListSessions(c.Context(), limit, offset)
	if err != nil {
		h.logger.Error("Chat session list failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list chat sessions",
		})
	}
	return c.JSON(sessions)
}

// GetAISettings godoc
// @Summary Get assistant settings
// @Tags admin
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.AISettingsResponse
// @Router /api/v1/admin/settings [get]
func (h *AdminHandler) GetAISettings(c *fiber.Ctx) error {
	settings, err := h.catalogService.GetAISettings(c.Context(), h.defaultPrompt)
	if err != nil {
		h.logger.Error("Settings load failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load settings",
		})
	}
	return c.JSON(settings)
}

// UpdateAISettings godoc
// @Summary Update assistant settings
// @Description New sessions pick up the prompt; running sessions keep their snapshot
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.AISettingsRequest true "Settings"
// @Security Bearer
// @Success 200 {object} dto.AISettingsResponse
// @Router /api/v1/admin/settings [put]
func (h *AdminHandler) UpdateAISettings(c *fiber.Ctx) error {
	var req dto.AISettingsRequest
	if err := c.BodyParser(&req); err != nil || req.SystemPrompt == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "system_prompt is required",
		})
	}

	settings, err := h.catalogService.UpdateAISettings(c.Context(), &req)
	if err != nil {
		h.logger.Error("Settings update failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update settings",
		})
	}
	return c.JSON(settings)
}

func pagination(c *fiber.Ctx) (limit, offset int) {
	limit = c.QueryInt("limit", 50)
	if limit < 1 || limit > 200 {
		limit = 50
	}
	offset = c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
