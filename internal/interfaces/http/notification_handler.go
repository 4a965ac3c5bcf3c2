package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Kardex-api/internal/application/dto"
	"github.com/jhoicas/Kardex-api/internal/application/notification"
	"github.com/jhoicas/Kardex-api/internal/domain/entity"
)

// NotificationHandler expone el log de notificaciones y el reintento de envíos.
type NotificationHandler struct {
	dispatcher *notification.Dispatcher
}

// NewNotificationHandler construye el handler.
func NewNotificationHandler(dispatcher *notification.Dispatcher) *NotificationHandler {
	return &NotificationHandler{dispatcher: dispatcher}
}

// List godoc
// @Summary      Listar registros de notificación
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "pending | sent | failed"
// @Param        limit   query  int     false  "Límite"   default(50)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {array}  dto.NotificationResponse
// @Router       /api/notifications [get]
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	list, err := h.dispatcher.List(c.UserContext(), c.Query("status"), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	items := make([]dto.NotificationResponse, len(list))
	for i, nl := range list {
		items[i] = *toNotificationResponse(nl)
	}
	return c.JSON(items)
}

// Retry godoc
// @Summary      Reintentar notificaciones pendientes y fallidas
// @Description  Reencola pending y failed con menos de 5 intentos; el desglose siempre cumple retried = sent + failed.
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Máximo de notificaciones a reintentar"  default(50)
// @Success      200    {object}  dto.RetryResultResponse
// @Router       /api/notifications/retry [post]
func (h *NotificationHandler) Retry(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	res, err := h.dispatcher.RetryPending(c.UserContext(), limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.RetryResultResponse{
		Retried: res.Retried,
		Sent:    res.Sent,
		Failed:  res.Failed,
	})
}

// ProcessAlerts godoc
// @Summary      Redespachar las alertas activas
// @Description  Toma una foto de las alertas sin resolver y envía cada una como notificación nueva; el desglose siempre cumple processed = sent + failed.
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Máximo de alertas a procesar"  default(100)
// @Success      200    {object}  dto.ProcessResultResponse
// @Router       /api/notifications/process-alerts [post]
func (h *NotificationHandler) ProcessAlerts(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 100)
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	res, err := h.dispatcher.ProcessActiveAlerts(c.UserContext(), limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ProcessResultResponse{
		Processed: res.Processed,
		Sent:      res.Sent,
		Failed:    res.Failed,
	})
}

func toNotificationResponse(nl *entity.NotificationLog) *dto.NotificationResponse {
	return &dto.NotificationResponse{
		ID:           nl.ID,
		AlertID:      nl.AlertID,
		ProductID:    nl.ProductID,
		Type:         nl.Type,
		Recipient:    nl.Recipient,
		Subject:      nl.Subject,
		Status:       nl.Status,
		ErrorMessage: nl.ErrorMessage,
		Attempts:     nl.Attempts,
		SentAt:       nl.SentAt,
		CreatedAt:    nl.CreatedAt,
	}
}
