package notification

import (
	"context"

	"github.com/jhoicas/Kardex-api/internal/domain/entity"
)

// Message es el contenido de una notificación saliente, ya resuelto.
type Message struct {
	Recipient string
	Subject   string
	Content   string
	// Type clasifica la notificación (tipo de alerta o "purchase_order")
	Type string
}

// Notifier define el puerto de salida hacia el canal de notificación
// (webhook, email, mock). El despachador solo conoce este contrato.
type Notifier interface {
	Send(ctx context.Context, msg Message) error
}

// AlertSource entrega la foto de alertas activas que el barrido de
// ProcessActiveAlerts redespacha. Lo satisface el repositorio de alertas.
type AlertSource interface {
	ListActive(limit, offset int) ([]*entity.Alert, error)
}
