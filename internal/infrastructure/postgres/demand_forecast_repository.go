package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Kardex-api/internal/domain/entity"
	"github.com/jhoicas/Kardex-api/internal/domain/repository"
)

var _ repository.DemandForecastRepository = (*DemandForecastRepo)(nil)

const forecastColumns = `
	id, product_id, forecasted_demand, suggested_order_quantity, confidence,
	analysis_data, generated_at, valid_until`

// DemandForecastRepo implementación del puerto DemandForecastRepository sobre
// PostgreSQL. Solo inserta y lee: la caché de predicciones es append-only.
type DemandForecastRepo struct {
	q Querier
}

// NewDemandForecastRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDemandForecastRepository(q Querier) *DemandForecastRepo {
	return &DemandForecastRepo{q: q}
}

func scanForecast(row pgx.Row) (*entity.DemandForecast, error) {
	var f entity.DemandForecast
	err := row.Scan(
		&f.ID, &f.ProductID, &f.ForecastedDemand, &f.SuggestedOrderQuantity,
		&f.Confidence, &f.AnalysisData, &f.GeneratedAt, &f.ValidUntil,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &f, nil
}

// Create inserta una predicción nueva sin tocar las anteriores.
func (r *DemandForecastRepo) Create(f *entity.DemandForecast) error {
	query := `
		INSERT INTO demand_forecasts (id, product_id, forecasted_demand, suggested_order_quantity,
			confidence, analysis_data, generated_at, valid_until)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		f.ID, f.ProductID, f.ForecastedDemand, f.SuggestedOrderQuantity,
		f.Confidence, f.AnalysisData, f.GeneratedAt, f.ValidUntil,
	)
	if err != nil {
		return fmt.Errorf("insert demand forecast: %w", err)
	}
	return nil
}

// GetLatestByProduct devuelve la predicción más reciente o (nil, nil).
func (r *DemandForecastRepo) GetLatestByProduct(productID string) (*entity.DemandForecast, error) {
	row := r.q.QueryRow(context.Background(),
		`SELECT `+forecastColumns+` FROM demand_forecasts
		 WHERE product_id = $1 ORDER BY generated_at DESC LIMIT 1`, productID)
	f, err := scanForecast(row)
	if err != nil {
		return nil, fmt.Errorf("get latest forecast: %w", err)
	}
	return f, nil
}

// ListByProduct devuelve el historial de predicciones, más recientes primero.
func (r *DemandForecastRepo) ListByProduct(productID string, limit int) ([]*entity.DemandForecast, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+forecastColumns+` FROM demand_forecasts
		 WHERE product_id = $1 ORDER BY generated_at DESC LIMIT $2`, productID, limit)
	if err != nil {
		return nil, fmt.Errorf("list forecasts: %w", err)
	}
	defer rows.Close()
	var list []*entity.DemandForecast
	for rows.Next() {
		f, err := scanForecast(rows)
		if err != nil {
			return nil, fmt.Errorf("scan forecast: %w", err)
		}
		list = append(list, f)
	}
	return list, rows.Err()
}
