package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Kardex-api/internal/application/alerts"
	"github.com/jhoicas/Kardex-api/internal/application/dto"
	"github.com/jhoicas/Kardex-api/internal/domain/entity"
)

// Edad mínima por defecto de una orden pending antes de alertar.
const defaultPendingOrderAgeDays = 7

// AlertHandler maneja la consulta, evaluación y resolución de alertas.
type AlertHandler struct {
	uc *alerts.UseCase
}

// NewAlertHandler construye el handler.
func NewAlertHandler(uc *alerts.UseCase) *AlertHandler {
	return &AlertHandler{uc: uc}
}

// ListActive godoc
// @Summary      Listar alertas activas
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(50)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.AlertListResponse
// @Router       /api/alerts [get]
func (h *AlertHandler) ListActive(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	list, err := h.uc.ListActive(c.UserContext(), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	items := make([]dto.AlertResponse, len(list))
	for i, a := range list {
		items[i] = *toAlertResponse(a)
	}
	return c.JSON(dto.AlertListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	})
}

// GetByProduct godoc
// @Summary      Historial de alertas de un producto
// @Description  Incluye las alertas ya resueltas.
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.AlertListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/alerts/product/{id} [get]
func (h *AlertHandler) GetByProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	list, err := h.uc.ListByProduct(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	items := make([]dto.AlertResponse, len(list))
	for i, a := range list {
		items[i] = *toAlertResponse(a)
	}
	return c.JSON(dto.AlertListResponse{Items: items})
}

// Resolve godoc
// @Summary      Resolver una alerta
// @Description  La resolución siempre es explícita; resolver dos veces es conflicto.
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la alerta"
// @Success      200  {object}  dto.AlertResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/alerts/{id}/resolve [post]
func (h *AlertHandler) Resolve(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	alert, err := h.uc.Resolve(c.UserContext(), id, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toAlertResponse(alert))
}

// RecheckProduct godoc
// @Summary      Reevaluar alertas de un producto
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.RecheckResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/alerts/recheck/{id} [post]
func (h *AlertHandler) RecheckProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	created, err := h.uc.RecheckProduct(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.RecheckResponse{ProductsChecked: 1, AlertsCreated: created})
}

// RecheckAll godoc
// @Summary      Reevaluar alertas de todo el catálogo
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.RecheckResponse
// @Router       /api/alerts/recheck [post]
func (h *AlertHandler) RecheckAll(c *fiber.Ctx) error {
	checked, created, failed, err := h.uc.RecheckAll(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.RecheckResponse{ProductsChecked: checked, AlertsCreated: created, ProductsFailed: failed})
}

// CheckPendingOrders godoc
// @Summary      Alertar órdenes de compra estancadas en pending
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Param        max_age_days  query  int  false  "Edad mínima en días"  default(7)
// @Success      200  {object}  dto.RecheckResponse
// @Router       /api/alerts/check-pending-orders [post]
func (h *AlertHandler) CheckPendingOrders(c *fiber.Ctx) error {
	days := c.QueryInt("max_age_days", defaultPendingOrderAgeDays)
	if days <= 0 {
		days = defaultPendingOrderAgeDays
	}
	created, err := h.uc.CheckPendingOrders(c.UserContext(), time.Duration(days)*24*time.Hour)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.RecheckResponse{AlertsCreated: created})
}

func toAlertResponse(a *entity.Alert) *dto.AlertResponse {
	return &dto.AlertResponse{
		ID:         a.ID,
		ProductID:  a.ProductID,
		Type:       a.Type,
		Severity:   a.Severity,
		Message:    a.Message,
		IsResolved: a.IsResolved,
		ResolvedAt: a.ResolvedAt,
		ResolvedBy: a.ResolvedBy,
		CreatedAt:  a.CreatedAt,
	}
}
