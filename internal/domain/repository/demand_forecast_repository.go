package repository

import "github.com/jhoicas/Kardex-api/internal/domain/entity"

// DemandForecastRepository define el puerto de persistencia para predicciones
// de demanda (DIP). La caché es append-only: una predicción nueva se inserta,
// nunca se sobreescribe la anterior.
type DemandForecastRepository interface {
	Create(forecast *entity.DemandForecast) error
	// GetLatestByProduct devuelve la predicción más reciente del producto,
	// vigente o no, o (nil, nil) si nunca se generó una.
	GetLatestByProduct(productID string) (*entity.DemandForecast, error)
	ListByProduct(productID string, limit int) ([]*entity.DemandForecast, error)
}
