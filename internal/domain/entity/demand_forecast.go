package entity

import (
	"encoding/json"
	"time"
)

// DemandForecast es una predicción de demanda generada por el predictor externo.
// El historial se conserva por inserción (append-only); en lectura solo se usa
// la más reciente. Un forecast es válido mientras ValidUntil > now.
type DemandForecast struct {
	ID                     string
	ProductID              string
	ForecastedDemand       int
	SuggestedOrderQuantity int
	Confidence             int             // 0..100
	AnalysisData           json.RawMessage // {pattern, analysis} serializado
	GeneratedAt            time.Time
	ValidUntil             time.Time
}

// IsValid indica si el forecast sigue vigente en el instante dado.
func (f *DemandForecast) IsValid(now time.Time) bool {
	return f.ValidUntil.After(now)
}
