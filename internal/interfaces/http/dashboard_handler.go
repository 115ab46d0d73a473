package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/tu-usuario/bodega-api/internal/application/analytics"
	"github.com/tu-usuario/bodega-api/internal/application/dto"
)

// DashboardHandler maneja los endpoints del módulo de Dashboard.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve los conteos agregados del almacén.
// GET /api/dashboard/summary
//
// Respuesta: DashboardSummaryDTO (totalProducts, totalStock, lowStockCount,
// nearExpiryCount, expiredCount). No recibe parámetros.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(summary)
}
