package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Kardex-api/internal/domain/entity"
	"github.com/jhoicas/Kardex-api/internal/domain/repository"
)

var _ repository.AlertRepository = (*AlertRepo)(nil)

const alertColumns = `
	id, product_id, type, severity, message, is_resolved,
	resolved_at, COALESCE(resolved_by::text, ''), created_at, updated_at`

// AlertRepo implementación del puerto AlertRepository sobre PostgreSQL.
type AlertRepo struct {
	q Querier
}

// NewAlertRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAlertRepository(q Querier) *AlertRepo {
	return &AlertRepo{q: q}
}

func scanAlert(row pgx.Row) (*entity.Alert, error) {
	var a entity.Alert
	err := row.Scan(
		&a.ID, &a.ProductID, &a.Type, &a.Severity, &a.Message, &a.IsResolved,
		&a.ResolvedAt, &a.ResolvedBy, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

// Create inserta una alerta.
func (r *AlertRepo) Create(a *entity.Alert) error {
	query := `
		INSERT INTO alerts (id, product_id, type, severity, message, is_resolved, resolved_at, resolved_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.ProductID, a.Type, a.Severity, a.Message, a.IsResolved,
		a.ResolvedAt, nullable(a.ResolvedBy), a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert alert: %w", err)
	}
	return nil
}

// GetByID obtiene una alerta.
func (r *AlertRepo) GetByID(id string) (*entity.Alert, error) {
	row := r.q.QueryRow(context.Background(),
		`SELECT `+alertColumns+` FROM alerts WHERE id = $1`, id)
	a, err := scanAlert(row)
	if err != nil {
		return nil, fmt.Errorf("get alert: %w", err)
	}
	return a, nil
}

// Update persiste los cambios de una alerta (resolución).
func (r *AlertRepo) Update(a *entity.Alert) error {
	query := `
		UPDATE alerts SET is_resolved = $2, resolved_at = $3, resolved_by = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.IsResolved, a.ResolvedAt, nullable(a.ResolvedBy), a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update alert: %w", err)
	}
	return nil
}

// ExistsActive indica si hay una alerta sin resolver del tipo para el producto.
func (r *AlertRepo) ExistsActive(productID, alertType string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM alerts WHERE product_id = $1 AND type = $2 AND is_resolved = false)`,
		productID, alertType,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists active alert: %w", err)
	}
	return exists, nil
}

// ListActive devuelve alertas sin resolver, más recientes primero.
func (r *AlertRepo) ListActive(limit, offset int) ([]*entity.Alert, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+alertColumns+` FROM alerts WHERE is_resolved = false
		 ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list active alerts: %w", err)
	}
	defer rows.Close()
	return collectAlerts(rows)
}

// ListByProduct devuelve todas las alertas de un producto.
func (r *AlertRepo) ListByProduct(productID string) ([]*entity.Alert, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+alertColumns+` FROM alerts WHERE product_id = $1 ORDER BY created_at DESC`, productID)
	if err != nil {
		return nil, fmt.Errorf("list alerts by product: %w", err)
	}
	defer rows.Close()
	return collectAlerts(rows)
}

// CountActiveBySeverity agrupa las alertas activas por severidad.
func (r *AlertRepo) CountActiveBySeverity() (map[string]int, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT severity, COUNT(*) FROM alerts WHERE is_resolved = false GROUP BY severity`)
	if err != nil {
		return nil, fmt.Errorf("count active alerts: %w", err)
	}
	defer rows.Close()
	counts := make(map[string]int)
	for rows.Next() {
		var severity string
		var n int
		if err := rows.Scan(&severity, &n); err != nil {
			return nil, fmt.Errorf("scan alert count: %w", err)
		}
		counts[severity] = n
	}
	return counts, rows.Err()
}

func collectAlerts(rows pgx.Rows) ([]*entity.Alert, error) {
	var list []*entity.Alert
	for rows.Next() {
		a, err := scanAlert(rows)
		if err != nil {
			return nil, fmt.Errorf("scan alert: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}
