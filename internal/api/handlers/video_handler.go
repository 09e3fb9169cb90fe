package handlers

import (
	"parket-portal/internal/dto"
	"parket-portal/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type VideoHandler struct {
	catalogService *service.CatalogService
	logger         *zap.Logger
}

func NewVideoHandler(catalogService *service.CatalogService, logger *zap.Logger) *VideoHandler {
	return &VideoHandler{
		catalogService: catalogService,
		logger:         logger,
	}
}

// ListCategories godoc
// @Summary List video categories
// @Tags videos
// @Produce json
// @Success 200 {array} dto.VideoCategoryResponse
// @Router /api/v1/videos/categories [get]
func (h *VideoHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.catalogService.ListVideoCategories(c.Context())
	if err != nil {
		h.logger.Error("Video categories list failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list video categories",
		})
	}
	return c.JSON(categories)
}

// List godoc
// @Summary List videos
// @Tags videos
// @Produce json
// @Param category_id query string false "Filter by category"
// @Success 200 {array} dto.VideoResponse
// @Router /api/v1/videos [get]
func (h *VideoHandler) List(c *fiber.Ctx) error {
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

	videos, err := h.catalogService.ListVideos(c.Context(), categoryID)
	if err != nil {
		h.logger.Error("Video list failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list videos",
		})
	}
	return c.JSON(videos)
}

// CreateCategory godoc
// @Summary Create a video category
// @Tags videos
// @Accept json
// @Produce json
// @Param request body dto.VideoCategoryRequest true "Category"
// @Security Bearer
// @Success 201 {object} dto.VideoCategoryResponse
// @Router /api/v1/admin/videos/categories [post]
func (h *VideoHandler) CreateCategory(c *fiber.Ctx) error {
	var req dto.VideoCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	category, err := h.catalogService.CreateVideoCategory(c.Context(), &req)
	if err != nil {
		h.logger.Error("Video category create failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create video category",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

// DeleteCategory godoc
// @Summary Delete a video category
// @Tags videos
// @Param id path string true "Category ID"
// @Security Bearer
// @Success 204
// @Router /api/v1/admin/videos/categories/{id} [delete]
func (h *VideoHandler) DeleteCategory(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid category id",
		})
	}

	if err := h.catalogService.DeleteVideoCategory(c.Context(), id); err != nil {
		h.logger.Error("Video category delete failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete video category",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Create godoc
// @Summary Create a video
// @Tags videos
// @Accept json
// @Produce json
// @Param request body dto.VideoRequest true "Video"
// @Security Bearer
// @Success 201 {object} dto.VideoResponse
// @Router /api/v1/admin/videos [post]
func (h *VideoHandler) Create(c *fiber.Ctx) error {
	var req dto.VideoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	video, err := h.catalogService.CreateVideo(c.Context(), &req)
	if err != nil {
		if err == service.ErrCategoryNotFound {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid category id",
			})
		}
		h.logger.Error("Video create failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create video",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(video)
}

// Update godoc
// @Summary Update a video
// @Tags videos
// @Accept json
// @Produce json
// @Param id path string true "Video ID"
// @Param request body dto.VideoRequest true "Video"
// @Security Bearer
// @Success 200 {object} dto.VideoResponse
// @Router /api/v1/admin/videos/{id} [put]
func (h *VideoHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid video id",
		})
	}

	var req dto.VideoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	video, err := h.catalogService.UpdateVideo(c.Context(), id, &req)
	if err != nil {
		h.logger.Error("Video update failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update video",
		})
	}
	return c.JSON(video)
}

// Delete godoc
// @Summary Delete a video
// @Tags videos
// @Param id path string true "Video ID"
// @Security Bearer
// @Success 204
// @Router /api/v1/admin/videos/{id} [delete]
func (h *VideoHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid video id",
		})
	}

	if err := h.catalogService.DeleteVideo(c.Context(), id); err != nil {
		h.logger.Error("Video delete failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete video",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
