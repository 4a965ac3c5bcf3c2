package dto

import (
	"encoding/json"
	"time"
)

// DemandForecastDTO salida de una predicción de demanda.
type DemandForecastDTO struct {
	ID                     string          `json:"id"`
	ProductID              string          `json:"product_id"`
	ForecastedDemand       int             `json:"forecasted_demand"`
	SuggestedOrderQuantity int             `json:"suggested_order_quantity"`
	Confidence             int             `json:"confidence"`
	Analysis               json.RawMessage `json:"analysis,omitempty"`
	ValidUntil             time.Time       `json:"valid_until"`
	CreatedAt              time.Time       `json:"created_at"`
	// FromCache indica si la predicción se sirvió desde la caché de 30 días
	// o se generó en esta petición.
	FromCache bool `json:"from_cache"`
}

// AIForecastResult es lo que el modelo de lenguaje debe producir.
// Los adaptadores lo parsean del JSON de la respuesta del modelo.
type AIForecastResult struct {
	ForecastedDemand       int    `json:"forecastedDemand"`
	SuggestedOrderQuantity int    `json:"suggestedOrderQuantity"`
	Confidence             int    `json:"confidence"`
	Analysis               string `json:"analysis"`
}
