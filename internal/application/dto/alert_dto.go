package dto

import "time"

// AlertResponse salida de una alerta.
type AlertResponse struct {
	ID         string     `json:"id"`
	ProductID  string     `json:"product_id"`
	Type       string     `json:"type"`
	Severity   string     `json:"severity"`
	Message    string     `json:"message"`
	IsResolved bool       `json:"is_resolved"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
	ResolvedBy string     `json:"resolved_by,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// AlertListResponse lista paginada de alertas activas.
type AlertListResponse struct {
	Items []AlertResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// RecheckResponse resultado de una evaluación de alertas.
type RecheckResponse struct {
	ProductsChecked int `json:"products_checked"`
	AlertsCreated   int `json:"alerts_created"`
	ProductsFailed  int `json:"products_failed"`
}

// NotificationResponse salida de un registro de notificación.
type NotificationResponse struct {
	ID           string     `json:"id"`
	AlertID      string     `json:"alert_id,omitempty"`
	ProductID    string     `json:"product_id,omitempty"`
	Type         string     `json:"type"`
	Recipient    string     `json:"recipient"`
	Subject      string     `json:"subject"`
	Status       string     `json:"status"`
	ErrorMessage string     `json:"error_message,omitempty"`
	Attempts     int        `json:"attempts"`
	SentAt       *time.Time `json:"sent_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// RetryResultResponse resultado de un lote de reintentos de notificaciones.
type RetryResultResponse struct {
	Retried int `json:"retried"`
	Sent    int `json:"sent"`
	Failed  int `json:"failed"`
}

// ProcessResultResponse resultado de un barrido de alertas activas.
type ProcessResultResponse struct {
	Processed int `json:"processed"`
	Sent      int `json:"sent"`
	Failed    int `json:"failed"`
}
