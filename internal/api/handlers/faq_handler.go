package handlers

import (
	"parket-portal/internal/dto"
	"parket-portal/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type FAQHandler struct {
	catalogService *service.CatalogService
	logger         *zap.Logger
}

func NewFAQHandler(catalogService *service.CatalogService, logger *zap.Logger) *FAQHandler {
	return &FAQHandler{
		catalogService: catalogService,
		logger:         logger,
	}
}

// ListCategories godoc
// @Summary List FAQ categories
// @Tags faq
// @Produce json
// @Success 200 {array} dto.FAQCategoryResponse
// @Router /api/v1/faq/categories [get]
func (h *FAQHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.catalogService.ListFAQCategories(c.Context())
	if err != nil {
		h.logger.Error("FAQ categories list failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list FAQ categories",
		})
	}
	return c.JSON(categories)
}

// List godoc
// @Summary List FAQs
// @Tags faq
// @Produce json
// @Param category_id query string false "Filter by category"
// @Success 200 {array} dto.FAQResponse
// @Router /api/v1/faq [get]
func (h *FAQHandler) List(c *fiber.Ctx) error {
	var categoryID *uuid.UUID
	if raw := c.Query("category_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid category id",
			})
		}
		categoryID = &id
	}

	faqs, err := h.catalogService.ListFAQs(c.Context(), categoryID)
	if err != nil {
		h.logger.Error("FAQ list failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list FAQs",
		})
	}
	return c.JSON(faqs)
}

// CreateCategory godoc
// @Summary Create an FAQ category
// @Tags faq
// @Accept json
// @Produce json
// @Param request body dto.FAQCategoryRequest true "Category"
// @Security Bearer
// @Success 201 {object} dto.FAQCategoryResponse
// @Router /api/v1/admin/faq/categories [post]
func (h *FAQHandler) CreateCategory(c *fiber.Ctx) error {
	var req dto.FAQCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	category, err := h.catalogService.CreateFAQCategory(c.Context(), &req)
	if err != nil {
		h.logger.Error("FAQ category create failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create FAQ category",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

// DeleteCategory godoc
// @Summary Delete an FAQ category
// @Tags faq
// @Param id path string true "Category ID"
// @Security Bearer
// @Success 204
// @Router /api/v1/admin/faq/categories/{id} [delete]
func (h *FAQHandler) DeleteCategory(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid category id",
		})
	}

	if err := h.catalogService.DeleteFAQCategory(c.Context(), id); err != nil {
		h.logger.Error("FAQ category delete failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete FAQ category",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Create godoc
// @Summary Create an FAQ
// @Tags faq
// @Accept json
// @Produce json
// @Param request body dto.FAQRequest true "FAQ"
// @Security Bearer
// @Success 201 {object} dto.FAQResponse
// @Router /api/v1/admin/faq [post]
func (h *FAQHandler) Create(c *fiber.Ctx) error {
	var req dto.FAQRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	faq, err := h.catalogService.CreateFAQ(c.Context(), &req)
	if err != nil {
		if err == service.ErrCategoryNotFound {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid category id",
			})
		}
		h.logger.Error("FAQ create failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create FAQ",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(faq)
}

// Update godoc
// @Summary Update an FAQ
// @Tags faq
// @Accept json
// @Produce json
// @Param id path string true "FAQ ID"
// @Param request body dto.FAQRequest true "FAQ"
// @Security Bearer
// @Success 200 {object} dto.FAQResponse
// @Router /api/v1/admin/faq/{id} [put]
func (h *FAQHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid FAQ id",
		})
	}

	var req dto.FAQRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	faq, err := h.catalogService.UpdateFAQ(c.Context(), id, &req)
	if err != nil {
		h.logger.Error("FAQ update failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update FAQ",
		})
	}
	return c.JSON(faq)
}

// Delete godoc
// @Summary Delete an FAQ
// @Tags faq
// @Param id path string true "FAQ ID"
// @Security Bearer
// @Success 204
// @Router /api/v1/admin/faq/{id} [delete]
func (h *FAQHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid FAQ id",
		})
	}

	if err := h.catalogService.DeleteFAQ(c.Context(), id); err != nil {
		h.logger.Error("FAQ delete failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete FAQ",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
