package entity

import "time"

// Estados de un registro de notificación.
const (
	NotificationStatusPending = "pending"
	NotificationStatusSent    = "sent"
	NotificationStatusFailed  = "failed"
)

// Tipo de notificación para mensajes que no nacen de una alerta.
const NotificationTypeOrderSuggestion = "purchase_order_suggestion"

// NotificationLog registra cada intento de notificación saliente.
// Se crea en pending ANTES de intentar el envío, de modo que un crash a mitad
// de envío deja una fila auditable; luego transiciona a sent o failed.
// A diferencia del kardex no es append-only: el estado se actualiza in place.
type NotificationLog struct {
	ID           string
	AlertID      string // opcional: alerta que originó la notificación
	ProductID    string
	Type         string // tipo de alerta o "purchase_order"
	Recipient    string // email o identificador del canal destino
	Subject      string
	Content      string
	Status       string // pending, sent, failed
	ErrorMessage string
	Attempts     int // intentos de envío realizados (corte de reintentos)
	SentAt       *time.Time
	CreatedAt    time.Time
}
