package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/restaurante-api/internal/application/alerts"
	"github.com/jhoicas/restaurante-api/internal/application/dto"
)

// AlertHandler expone la evaluación de alertas operativas (protegido).
type AlertHandler struct {
	uc *alerts.UseCase
}

// NewAlertHandler construye el handler.
func NewAlertHandler(uc *alerts.UseCase) *AlertHandler {
	return &AlertHandler{uc: uc}
}

// List godoc
// @Summary      Evaluar alertas activas
// @Description  Deriva las alertas del estado actual (stock bajo, vencimientos, entregas atrasadas) ordenadas por severidad.
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AlertListResponse
// @Router       /api/alerts [get]
func (h *AlertHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.Evaluate(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
