// Package forecast contiene el análisis de patrones de consumo que alimenta
// la predicción de demanda. El análisis es determinista y puro; la parte no
// determinista (el modelo de lenguaje) vive en infraestructura.
package forecast

import (
	"sort"
	"time"

	"github.com/jhoicas/Kardex-api/internal/domain/entity"
)

// Tendencias de consumo.
const (
	TrendIncreasing = "increasing"
	TrendDecreasing = "decreasing"
	TrendStable     = "stable"
)

// Umbral de cambio entre el último mes y el anterior para declarar tendencia
// creciente o decreciente (±20%).
const trendThreshold = 0.2

// Umbral de variación relativa (rango / promedio) para declarar estacionalidad.
const seasonalityThreshold = 0.3

// MonthlyConsumption es el consumo agregado de un mes calendario.
type MonthlyConsumption struct {
	Month    string // formato "2006-01"
	Quantity int
}

// Pattern es el resultado del análisis de consumo histórico de un producto.
type Pattern struct {
	Months         []MonthlyConsumption
	AverageMonthly float64
	Trend          string
	HasSeasonality bool
	TotalConsumed  int
}

// AnalyzeConsumption agrega los movimientos de salida por mes calendario y
// deriva promedio, tendencia y estacionalidad sobre los últimos (hasta) seis
// meses con consumo. Solo se consideran movimientos de tipo exit; entradas,
// ajustes y bajas no representan demanda.
//
// Con menos de dos meses de datos la tendencia es stable y no hay
// estacionalidad.
func AnalyzeConsumption(movements []*entity.StockMovement) Pattern {
	buckets := make(map[string]int)
	for _, m := range movements {
		if m.Type != entity.MovementTypeExit {
			continue
		}
		key := m.CreatedAt.Format("2006-01")
		buckets[key] += m.Quantity
	}

	months := make([]MonthlyConsumption, 0, len(buckets))
	for k, q := range buckets {
		months = append(months, MonthlyConsumption{Month: k, Quantity: q})
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Month < months[j].Month })
	if len(months) > 6 {
		months = months[len(months)-6:]
	}

	p := Pattern{Months: months, Trend: TrendStable}
	if len(months) == 0 {
		return p
	}

	minQ, maxQ := months[0].Quantity, months[0].Quantity
	for _, mc := range months {
		p.TotalConsumed += mc.Quantity
		if mc.Quantity < minQ {
			minQ = mc.Quantity
		}
		if mc.Quantity > maxQ {
			maxQ = mc.Quantity
		}
	}
	p.AverageMonthly = float64(p.TotalConsumed) / float64(len(months))

	if len(months) >= 2 {
		last := float64(months[len(months)-1].Quantity)
		prev := float64(months[len(months)-2].Quantity)
		switch {
		case last > prev*(1+trendThreshold):
			p.Trend = TrendIncreasing
		case last < prev*(1-trendThreshold):
			p.Trend = TrendDecreasing
		}
		if p.AverageMonthly > 0 {
			p.HasSeasonality = float64(maxQ-minQ)/p.AverageMonthly > seasonalityThreshold
		}
	}

	return p
}

// ForecastValidity es la vigencia de una predicción generada.
const ForecastValidity = 30 * 24 * time.Hour
