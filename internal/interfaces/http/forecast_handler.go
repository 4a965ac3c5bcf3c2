package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Kardex-api/internal/application/dto"
	"github.com/jhoicas/Kardex-api/internal/application/forecast"
)

// ForecastHandler expone la predicción de demanda asistida por IA.
type ForecastHandler struct {
	uc *forecast.UseCase
}

// NewForecastHandler construye el handler.
func NewForecastHandler(uc *forecast.UseCase) *ForecastHandler {
	return &ForecastHandler{uc: uc}
}

// GetOrGenerate godoc
// @Summary      Predicción de demanda de un producto
// @Description  Sirve la predicción vigente (caché de 30 días) o genera una nueva. force=true salta la caché.
// @Tags         forecast
// @Security     Bearer
// @Produce      json
// @Param        id     path   string  true   "ID del producto"
// @Param        force  query  bool    false  "Forzar regeneración"
// @Success      200    {object}  dto.DemandForecastDTO
// @Failure      404    {object}  dto.ErrorResponse
// @Failure      502    {object}  dto.ErrorResponse
// @Router       /api/forecast/{id} [get]
func (h *ForecastHandler) GetOrGenerate(c *fiber.Ctx) error {
	productID := c.Params("id")
	if productID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	force := c.QueryBool("force", false)
	out, err := h.uc.GetOrGenerate(c.UserContext(), productID, force)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// History godoc
// @Summary      Historial de predicciones de un producto
// @Tags         forecast
// @Security     Bearer
// @Produce      json
// @Param        id     path   string  true   "ID del producto"
// @Param        limit  query  int     false  "Límite"  default(10)
// @Success      200    {array}  dto.DemandForecastDTO
// @Router       /api/forecast/{id}/history [get]
func (h *ForecastHandler) History(c *fiber.Ctx) error {
	productID := c.Params("id")
	if productID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	limit := c.QueryInt("limit", 10)
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	out, err := h.uc.History(c.UserContext(), productID, limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
