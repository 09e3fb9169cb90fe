package handlers

import (
	"errors"

	"parket-portal/internal/dto"
	"parket-portal/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderHandler struct {
	orderService *service.OrderService
	logger       *zap.Logger
}

func NewOrderHandler(orderService *service.OrderService, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		logger:       logger,
	}
}

// Create godoc
// @Summary Place an order
// @Description Creates the order and notifies the sales manager by mail
// @Tags orders
// @Accept json
// @Produce json
// @Param request body dto.CreateOrderRequest true "Order form"
// @Security Bearer
// @Success 201 {object} dto.OrderResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req dto.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.ArticleCode == "" || req.ProductName == "" || req.Quantity < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Article code, product name and quantity are required",
		})
	}

	resp, err := h.orderService.CreateOrder(c.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrLegalEntityNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Legal entity not found",
			})
		}
		h.logger.Error("Order create failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create order",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListMy godoc
// @Summary List own orders
// @Tags orders
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.OrderResponse
// @Router /api/v1/orders [get]
func (h *OrderHandler) ListMy(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	orders, err := h.orderService.ListMyOrders(c.Context(), userID)
	if err != nil {
		h.logger.Error("Order list failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list orders",
		})
	}
	return c.JSON(orders)
}

// ListLegalEntities godoc
// @Summary List own legal entities
// @Tags orders
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.LegalEntityResponse
// @Router /api/v1/legal-entities [get]
func (h *OrderHandler) ListLegalEntities(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	entities, err := h.orderService.ListLegalEntities(c.Context(), userID)
	if err != nil {
		h.logger.Error("Legal entity list failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list legal entities",
		})
	}
	return c.JSON(entities)
}

// CreateLegalEntity godoc
// @Summary Create a legal entity
// @Tags orders
// @Accept json
// @Produce json
// @Param request body dto.LegalEntityRequest true "Legal entity"
// @Security Bearer
// @Success 201 {object} dto.LegalEntityResponse
// @Router /api/v1/legal-entities [post]
func (h *OrderHandler) CreateLegalEntity(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req dto.LegalEntityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	entity, err := h.orderService.CreateLegalEntity(c.Context(), userID, &req)
	if err != nil {
		h.logger.Error("Legal entity create failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create legal entity",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(entity)
}

// UpdateLegalEntity godoc
// @Summary Update a legal entity
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Entity ID"
// @Param request body dto.LegalEntityRequest true "Legal entity"
// @Security Bearer
// @Success 200 {object} dto.LegalEntityResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/legal-entities/{id} [put]
func (h *OrderHandler) UpdateLegalEntity(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid entity id",
		})
	}

	var req dto.LegalEntityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	entity, err := h.orderService.UpdateLegalEntity(c.Context(), userID, id, &req)
	if err != nil {
		if errors.Is(err, service.ErrLegalEntityNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Legal entity not found",
			})
		}
		h.logger.Error("Legal entity update failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update legal entity",
		})
	}
	return c.JSON(entity)
}

// DeleteLegalEntity godoc
// @Summary Delete a legal entity
// @Tags orders
// @Param id path string true "Entity ID"
// @Security Bearer
// @Success 204
// @Router /api/v1/legal-entities/{id} [delete]
func (h *OrderHandler) DeleteLegalEntity(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid entity id",
		})
	}

	if err := h.orderService.DeleteLegalEntity(c.Context(), userID, id); err != nil {
		h.logger.Error("Legal entity delete failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete legal entity",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
