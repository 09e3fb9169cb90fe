package handlers

import (
	"errors"

	"parket-portal/internal/dto"
	"parket-portal/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type KnowledgeHandler struct {
	knowledgeService *service.KnowledgeService
	extractService   *service.ExtractService
	logger           *zap.Logger
}

func NewKnowledgeHandler(knowledgeService *service.KnowledgeService, extractService *service.ExtractService, logger *zap.Logger) *KnowledgeHandler {
	return &KnowledgeHandler{
		knowledgeService: knowledgeService,
		extractService:   extractService,
		logger:           logger,
	}
}

// List godoc
// @Summary List knowledge items
// @Tags knowledge
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.KnowledgeItemResponse
// @Router /api/v1/admin/knowledge [get]
func (h *KnowledgeHandler) List(c *fiber.Ctx) error {
	items, err := h.knowledgeService.List(c.Context())
	if err != nil {
		h.logger.Error("Knowledge list failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list knowledge items",
		})
	}
	return c.JSON(items)
}

// Get godoc
// @Summary Get a knowledge item
// @Tags knowledge
// @Produce json
// @Param id path string true "Item ID"
// @Security Bearer
// @Success 200 {object} dto.KnowledgeItemResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/admin/knowledge/{id} [get]
func (h *KnowledgeHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid item id",
		})
	}

	item, err := h.knowledgeService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrKnowledgeItemNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Knowledge item not found",
			})
		}
		h.logger.Error("Knowledge get failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get knowledge item",
		})
	}
	return c.JSON(item)
}

// Create godoc
// @Summary Create a knowledge item
// @Tags knowledge
// @Accept json
// @Produce json
// @Param request body dto.KnowledgeItemRequest true "Knowledge item"
// @Security Bearer
// @Success 201 {object} dto.KnowledgeItemResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/admin/knowledge [post]
func (h *KnowledgeHandler) Create(c *fiber.Ctx) error {
	var req dto.KnowledgeItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	item, err := h.knowledgeService.Create(c.Context(), &req)
	if err != nil {
		h.logger.Error("Knowledge create failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create knowledge item",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// Update godoc
// @Summary Update a knowledge item
// @Tags knowledge
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param request body dto.KnowledgeItemRequest true "Knowledge item"
// @Security Bearer
// @Success 200 {object} dto.KnowledgeItemResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/admin/knowledge/{id} [put]
func (h *KnowledgeHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid item id",
		})
	}

	var req dto.KnowledgeItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	item, err := h.knowledgeService.Update(c.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrKnowledgeItemNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Knowledge item not found",
			})
		}
		h.logger.Error("Knowledge update failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update knowledge item",
		})
	}
	return c.JSON(item)
}

// Delete godoc
// @Summary Delete a knowledge item
// @Tags knowledge
// @Param id path string true "Item ID"
// @Security Bearer
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /api/v1/admin/knowledge/{id} [delete]
func (h *KnowledgeHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid item id",
		})
	}

	if err := h.knowledgeService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, service.ErrKnowledgeItemNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Knowledge item not found",
			})
		}
		h.logger.Error("Knowledge delete failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete knowledge item",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SyncFeed godoc
// @Summary Sync an xml_feed item
// @Description Re-downloads the product feed and replaces the stored products
// @Tags knowledge
// @Produce json
// @Param id path string true "Item ID"
// @Security Bearer
// @Success 200 {object} dto.SyncFeedResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/admin/knowledge/{id}/sync [post]
func (h *KnowledgeHandler) SyncFeed(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid item id",
		})
	}

	resp, err := h.knowledgeService.SyncFeed(c.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrKnowledgeItemNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Knowledge item not found",
			})
		case errors.Is(err, service.ErrNotAFeed):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Item is not an xml_feed with a URL",
			})
		default:
			h.logger.Error("Feed sync failed", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Feed sync failed",
			})
		}
	}
	return c.JSON(resp)
}

// Upload godoc
// @Summary Upload a knowledge base file
// @Tags knowledge
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File"
// @Security Bearer
// @Success 201 {object} dto.UploadResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/admin/knowledge/upload [post]
func (h *KnowledgeHandler) Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "File is required",
		})
	}

	src, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to read file",
		})
	}
	defer src.Close()

	fileURL, err := h.extractService.SaveUpload(src, file.Filename)
	if err != nil {
		h.logger.Error("Upload failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Upload failed",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.UploadResponse{FileURL: fileURL})
}

// Extract godoc
// @Summary Extract document content
// @Description Pulls text out of an uploaded document and structures it for a knowledge item
// @Tags knowledge
// @Accept json
// @Produce json
// @Param request body object{file_url=string} true "Uploaded file URL"
// @Security Bearer
// @Success 200 {object} dto.ExtractResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/admin/knowledge/extract [post]
func (h *KnowledgeHandler) Extract(c *fiber.Ctx) error {
	var req struct {
		FileURL string `json:"file_url"`
	}
	if err := c.BodyParser(&req); err != nil || req.FileURL == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "file_url is required",
		})
	}

	output, err := h.extractService.ExtractStructured(c.Context(), req.FileURL)
	if err != nil {
		h.logger.Error("Extraction failed", zap.Error(err), zap.String("file_url", req.FileURL))
		return c.JSON(dto.ExtractResponse{
			Status: "error",
			Error:  err.Error(),
		})
	}

	return c.JSON(dto.ExtractResponse{
		Status: "success",
		Output: output,
	})
}
