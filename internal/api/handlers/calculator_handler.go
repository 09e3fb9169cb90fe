package handlers

import (
	"errors"

	"parket-portal/internal/dto"
	"parket-portal/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type CalculatorHandler struct {
	calculatorService *service.CalculatorService
	logger            *zap.Logger
}

func NewCalculatorHandler(calculatorService *service.CalculatorService, logger *zap.Logger) *CalculatorHandler {
	return &CalculatorHandler{
		calculatorService: calculatorService,
		logger:            logger,
	}
}

// Calculate godoc
// @Summary Calculate flooring cost
// @Description Works out package count and cost for the requested area, pattern and discount
// @Tags calculator
// @Accept json
// @Produce json
// @Param request body dto.CalculateRequest true "Calculation parameters"
// @Security Bearer
// @Success 200 {object} dto.CalculateResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/calculator [post]
func (h *CalculatorHandler) Calculate(c *fiber.Ctx) error {
	var req dto.CalculateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.VendorCode == "" || req.Area <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Vendor code and positive area are required",
		})
	}

	resp, err := h.calculatorService.Calculate(c.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Product not found",
			})
		case errors.Is(err, service.ErrProductNotCalculable):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Product has no price or package area",
			})
		default:
			h.logger.Error("Calculation failed", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Calculation failed",
			})
		}
	}
	return c.JSON(resp)
}
