package repository

import "github.com/jhoicas/Kardex-api/internal/domain/entity"

// NotificationLogRepository define el puerto de persistencia para el registro
// de notificaciones (DIP).
type NotificationLogRepository interface {
	Create(log *entity.NotificationLog) error
	GetByID(id string) (*entity.NotificationLog, error)
	Update(log *entity.NotificationLog) error
	// ListRetryable devuelve las notificaciones pendientes y las fallidas con
	// menos de maxAttempts intentos, más antiguas primero.
	ListRetryable(maxAttempts, limit int) ([]*entity.NotificationLog, error)
	List(status string, limit, offset int) ([]*entity.NotificationLog, error)
}
