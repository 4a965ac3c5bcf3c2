package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Kardex-api/internal/domain/entity"
	"github.com/jhoicas/Kardex-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas read-only del dashboard sobre PostgreSQL.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador. Pasar pool (no necesita tx).
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// GetInventorySummary agregados del inventario activo. COALESCE devuelve cero
// con catálogo vacío.
func (r *AnalyticsRepo) GetInventorySummary(ctx context.Context) (*repository.InventorySummary, error) {
	query := `
		SELECT
			COUNT(*),
			COALESCE(SUM(stock), 0),
			COALESCE(SUM(stock * cost), 0),
			COUNT(*) FILTER (WHERE stock > 0 AND min_stock > 0 AND stock <= min_stock),
			COUNT(*) FILTER (WHERE stock = 0),
			COUNT(*) FILTER (WHERE expiration_date IS NOT NULL
				AND expiration_date > now()
				AND expiration_date <= now() + interval '30 days'),
			COUNT(*) FILTER (WHERE expiration_date IS NOT NULL AND expiration_date <= now())
		FROM products
		WHERE status = $1`
	var s repository.InventorySummary
	err := r.q.QueryRow(ctx, query, entity.ProductStatusActive).Scan(
		&s.TotalProducts, &s.TotalStockUnits, &s.TotalStockValue,
		&s.LowStockCount, &s.OutOfStockCount, &s.ExpiringCount, &s.ExpiredCount,
	)
	if err != nil {
		return nil, fmt.Errorf("inventory summary: %w", err)
	}
	return &s, nil
}

// GetTopMovedProducts productos con más unidades de salida en los últimos
// days días.
func (r *AnalyticsRepo) GetTopMovedProducts(ctx context.Context, days, limit int) ([]repository.TopMovedProduct, error) {
	query := `
		SELECT p.id, p.code, p.name, COALESCE(SUM(m.quantity), 0) AS units, p.stock
		FROM stock_movements m
		JOIN products p ON p.id = m.product_id
		WHERE m.type = $1 AND m.created_at >= now() - make_interval(days => $2)
		GROUP BY p.id, p.code, p.name, p.stock
		ORDER BY units DESC
		LIMIT $3`
	rows, err := r.q.Query(ctx, query, entity.MovementTypeExit, days, limit)
	if err != nil {
		return nil, fmt.Errorf("top moved products: %w", err)
	}
	defer rows.Close()
	var list []repository.TopMovedProduct
	for rows.Next() {
		var p repository.TopMovedProduct
		if err := rows.Scan(&p.ProductID, &p.Code, &p.Name, &p.UnitsMoved, &p.StockActual); err != nil {
			return nil, fmt.Errorf("scan top moved product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// GetStockByCategory stock agregado por categoría de los productos activos.
// LEFT JOIN para no perder los productos sin categoría.
func (r *AnalyticsRepo) GetStockByCategory(ctx context.Context) ([]repository.CategoryStock, error) {
	query := `
		SELECT
			COALESCE(c.id::text, ''),
			COALESCE(c.name, 'Sin categoría'),
			COUNT(*),
			COALESCE(SUM(p.stock), 0),
			COALESCE(SUM(p.stock * p.cost), 0)
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE p.status = $1
		GROUP BY c.id, c.name
		ORDER BY 4 DESC`
	rows, err := r.q.Query(ctx, query, entity.ProductStatusActive)
	if err != nil {
		return nil, fmt.Errorf("stock by category: %w", err)
	}
	defer rows.Close()
	var list []repository.CategoryStock
	for rows.Next() {
		var cs repository.CategoryStock
		if err := rows.Scan(&cs.CategoryID, &cs.CategoryName, &cs.Products, &cs.StockUnits, &cs.StockValue); err != nil {
			return nil, fmt.Errorf("scan category stock: %w", err)
		}
		list = append(list, cs)
	}
	return list, rows.Err()
}

// CountMovementsByType conteo de movimientos por tipo en los últimos days días.
func (r *AnalyticsRepo) CountMovementsByType(ctx context.Context, days int) (map[string]int, error) {
	query := `
		SELECT type, COUNT(*) FROM stock_movements
		WHERE created_at >= now() - make_interval(days => $1)
		GROUP BY type`
	rows, err := r.q.Query(ctx, query, days)
	if err != nil {
		return nil, fmt.Errorf("count movements by type: %w", err)
	}
	defer rows.Close()
	counts := make(map[string]int)
	for rows.Next() {
		var t string
		var n int
		if err := rows.Scan(&t, &n); err != nil {
			return nil, fmt.Errorf("scan movement count: %w", err)
		}
		counts[t] = n
	}
	return counts, rows.Err()
}
