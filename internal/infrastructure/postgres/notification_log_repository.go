package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Kardex-api/internal/domain/entity"
	"github.com/jhoicas/Kardex-api/internal/domain/repository"
)

var _ repository.NotificationLogRepository = (*NotificationLogRepo)(nil)

const notificationColumns = `
	id, COALESCE(alert_id::text, ''), COALESCE(product_id::text, ''), type, recipient,
	subject, content, status, COALESCE(error_message, ''), attempts, sent_at, created_at`

// NotificationLogRepo implementación del puerto NotificationLogRepository
// sobre PostgreSQL.
type NotificationLogRepo struct {
	q Querier
}

// NewNotificationLogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewNotificationLogRepository(q Querier) *NotificationLogRepo {
	return &NotificationLogRepo{q: q}
}

func scanNotification(row pgx.Row) (*entity.NotificationLog, error) {
	var n entity.NotificationLog
	err := row.Scan(
		&n.ID, &n.AlertID, &n.ProductID, &n.Type, &n.Recipient,
		&n.Subject, &n.Content, &n.Status, &n.ErrorMessage, &n.Attempts, &n.SentAt, &n.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &n, nil
}

// Create inserta un registro de notificación (normalmente en pending).
func (r *NotificationLogRepo) Create(n *entity.NotificationLog) error {
	query := `
		INSERT INTO notification_logs (id, alert_id, product_id, type, recipient, subject, content,
			status, error_message, attempts, sent_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		n.ID, nullable(n.AlertID), nullable(n.ProductID), n.Type, n.Recipient,
		n.Subject, n.Content, n.Status, nullable(n.ErrorMessage), n.Attempts, n.SentAt, n.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert notification log: %w", err)
	}
	return nil
}

// GetByID obtiene un registro.
func (r *NotificationLogRepo) GetByID(id string) (*entity.NotificationLog, error) {
	row := r.q.QueryRow(context.Background(),
		`SELECT `+notificationColumns+` FROM notification_logs WHERE id = $1`, id)
	n, err := scanNotification(row)
	if err != nil {
		return nil, fmt.Errorf("get notification log: %w", err)
	}
	return n, nil
}

// Update persiste el resultado de un intento de envío.
func (r *NotificationLogRepo) Update(n *entity.NotificationLog) error {
	query := `
		UPDATE notification_logs SET status = $2, error_message = $3, attempts = $4, sent_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		n.ID, n.Status, nullable(n.ErrorMessage), n.Attempts, n.SentAt,
	)
	if err != nil {
		return fmt.Errorf("update notification log: %w", err)
	}
	return nil
}

// ListRetryable devuelve pendientes y fallidas con menos de maxAttempts
// intentos, más antiguas primero.
func (r *NotificationLogRepo) ListRetryable(maxAttempts, limit int) ([]*entity.NotificationLog, error) {
	query := `
		SELECT ` + notificationColumns + ` FROM notification_logs
		WHERE status = $1 OR (status = $2 AND attempts < $3)
		ORDER BY created_at ASC LIMIT $4`
	rows, err := r.q.Query(context.Background(), query,
		entity.NotificationStatusPending, entity.NotificationStatusFailed, maxAttempts, limit)
	if err != nil {
		return nil, fmt.Errorf("list retryable notifications: %w", err)
	}
	defer rows.Close()
	return collectNotifications(rows)
}

// List devuelve registros, filtrables por estado.
func (r *NotificationLogRepo) List(status string, limit, offset int) ([]*entity.NotificationLog, error) {
	query := `SELECT ` + notificationColumns + ` FROM notification_logs`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)-1, len(args))
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()
	return collectNotifications(rows)
}

func collectNotifications(rows pgx.Rows) ([]*entity.NotificationLog, error) {
	var list []*entity.NotificationLog
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("scan notification log: %w", err)
		}
		list = append(list, n)
	}
	return list, rows.Err()
}
