package handlers

import (
	"parket-portal/internal/dto"
	"parket-portal/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ChatHandler struct {
	chatService *service.ChatService
	logger      *zap.Logger
}

func NewChatHandler(chatService *service.ChatService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		logger:      logger,
	}
}

// InitSession godoc
// @Summary Open the chat session
// @Description Returns the stored history, minting a session id on first open
// @Tags chat
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.ChatSessionResponse
// @Failure 401 {object} map[string]string
// @Router /api/v1/chat/session [post]
func (h *ChatHandler) InitSession(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	resp, err := h.chatService.InitSession(c.Context(), userID)
	if err != nil {
		h.logger.Error("Session init failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to open chat session",
		})
	}

	return c.JSON(resp)
}

// SendMessage godoc
// @Summary Send a chat message
// @Description Appends the user message and returns the assistant response
// @Tags chat
// @Accept json
// @Produce json
// @Param request body dto.SendMessageRequest true "User message"
// @Security Bearer
// @Success 200 {object} dto.ChatMessageResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/v1/chat/messages [post]
func (h *ChatHandler) SendMessage(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req dto.SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Message is required",
		})
	}

	resp, err := h.chatService.SendMessage(c.Context(), userID, req.Message)
	if err != nil {
		h.logger.Error("Message processing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to process message",
		})
	}

	return c.JSON(resp)
}

// ClearSession godoc
// @Summary Clear the chat
// @Description Deactivates the current session and starts a fresh one
// @Tags chat
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.ChatSessionResponse
// @Failure 401 {object} map[string]string
// @Router /api/v1/chat/session [delete]
func (h *ChatHandler) ClearSession(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	resp, err := h.chatService.ClearSession(c.Context(), userID)
	if err != nil {
		h.logger.Error("Session clear failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to clear chat session",
		})
	}

	return c.JSON(resp)
}
