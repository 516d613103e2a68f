package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/application/usecase"
	"github.com/jhoicas/restaurante-api/internal/domain"
)

// SectorHandler maneja los setores de la cocina (protegido).
type SectorHandler struct {
	uc *usecase.SectorUseCase
}

// NewSectorHandler construye el handler.
func NewSectorHandler(uc *usecase.SectorUseCase) *SectorHandler {
	return &SectorHandler{uc: uc}
}

// Create godoc
// @Summary      Crear setor
// @Tags         sectors
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSectorRequest  true  "Nombre del setor"
// @Success      201   {object}  dto.SectorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sectors [post]
func (h *SectorHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSectorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre requerido"})
		}
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "setor ya existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar setores
// @Tags         sectors
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SectorResponse
// @Router       /api/sectors [get]
func (h *SectorHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
