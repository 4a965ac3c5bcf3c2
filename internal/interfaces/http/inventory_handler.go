package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Kardex-api/internal/application/dto"
	"github.com/jhoicas/Kardex-api/internal/application/inventory"
	"github.com/jhoicas/Kardex-api/internal/domain/entity"
	"github.com/jhoicas/Kardex-api/internal/domain/repository"
)

// InventoryHandler maneja el registro de movimientos y la consulta del kardex.
type InventoryHandler struct {
	uc *inventory.RegisterMovementUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.RegisterMovementUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// RegisterMovement godoc
// @Summary      Registrar movimiento de inventario
// @Description  Asienta un movimiento en el kardex y actualiza el stock en la misma transacción.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "Movimiento"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	mov, err := h.uc.RegisterFromRequest(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toMovementResponse(mov))
}

// GetKardex godoc
// @Summary      Kardex de un producto
// @Description  Movimientos del producto en orden cronológico descendente con saldos congelados.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID del producto"
// @Param        from    query  string  false  "Desde (RFC3339)"
// @Param        to      query  string  false  "Hasta (RFC3339)"
// @Param        limit   query  int     false  "Límite"   default(50)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {object}  dto.KardexResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/inventory/kardex/{id} [get]
func (h *InventoryHandler) GetKardex(c *fiber.Ctx) error {
	productID := c.Params("id")
	if productID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	from, to, err := parseDateRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "from/to deben ser RFC3339"})
	}
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	product, movements, err := h.uc.GetKardex(c.UserContext(), productID, from, to, limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	items := make([]dto.MovementResponse, len(movements))
	for i, mv := range movements {
		items[i] = *toMovementResponse(mv)
	}
	return c.JSON(dto.KardexResponse{
		ProductID:    product.ID,
		CurrentStock: product.Stock,
		Movements:    items,
		Page:         dto.PageResponse{Limit: limit, Offset: offset},
	})
}

// ListMovements godoc
// @Summary      Listar movimientos del inventario
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        product_id  query  string  false  "Filtrar por producto"
// @Param        user_id     query  string  false  "Filtrar por usuario"
// @Param        type        query  string  false  "Filtrar por tipo"
// @Param        from        query  string  false  "Desde (RFC3339)"
// @Param        to          query  string  false  "Hasta (RFC3339)"
// @Param        limit       query  int     false  "Límite"   default(50)
// @Param        offset      query  int     false  "Offset"   default(0)
// @Success      200         {array}  dto.MovementResponse
// @Router       /api/inventory/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	from, to, err := parseDateRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "from/to deben ser RFC3339"})
	}
	filter := repository.MovementFilter{
		ProductID: c.Query("product_id"),
		UserID:    c.Query("user_id"),
		Type:      c.Query("type"),
		From:      from,
		To:        to,
	}
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	movements, err := h.uc.ListMovements(c.UserContext(), filter, limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	items := make([]dto.MovementResponse, len(movements))
	for i, mv := range movements {
		items[i] = *toMovementResponse(mv)
	}
	return c.JSON(items)
}

// parseDateRange lee los query params from/to en RFC3339.
func parseDateRange(c *fiber.Ctx) (from, to *time.Time, err error) {
	if raw := c.Query("from"); raw != "" {
		t, perr := time.Parse(time.RFC3339, raw)
		if perr != nil {
			return nil, nil, perr
		}
		from = &t
	}
	if raw := c.Query("to"); raw != "" {
		t, perr := time.Parse(time.RFC3339, raw)
		if perr != nil {
			return nil, nil, perr
		}
		to = &t
	}
	return from, to, nil
}

func toMovementResponse(mv *entity.StockMovement) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:             mv.ID,
		ProductID:      mv.ProductID,
		UserID:         mv.UserID,
		Type:           mv.Type,
		Quantity:       mv.Quantity,
		PreviousStock:  mv.PreviousStock,
		ResultingStock: mv.ResultingStock,
		Reason:         mv.Reason,
		Reference:      mv.ReferenceNumber,
		CreatedAt:      mv.CreatedAt,
	}
}
