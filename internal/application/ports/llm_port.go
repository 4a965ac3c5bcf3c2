package ports

import (
	"context"

	"github.com/jhoicas/Kardex-api/internal/application/dto"
	"github.com/jhoicas/Kardex-api/internal/domain/forecast"
	"github.com/jhoicas/Kardex-api/internal/domain/entity"
)

// DemandPredictor define el puerto de salida hacia el modelo de lenguaje que
// genera predicciones de demanda. Cualquier adaptador (Anthropic, Gemini,
// mock) debe implementar esta interfaz. Siguiendo el principio de inversión
// de dependencias (DIP), la aplicación solo conoce este contrato, no la
// implementación concreta.
type DemandPredictor interface {
	// PredictDemand recibe el producto y su patrón de consumo y devuelve la
	// predicción del modelo. El contexto debe llevar un timeout para evitar
	// bloqueos en llamadas externas.
	PredictDemand(
		ctx context.Context,
		product *entity.Product,
		pattern forecast.Pattern,
	) (*dto.AIForecastResult, error)
}
