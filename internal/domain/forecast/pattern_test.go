package forecast

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Kardex-api/internal/domain/entity"
)

func salida(t *testing.T, fecha string, cantidad int) *entity.StockMovement {
	t.Helper()
	d, err := time.Parse("2006-01-02", fecha)
	require.NoError(t, err)
	return &entity.StockMovement{Type: entity.MovementTypeExit, Quantity: cantidad, CreatedAt: d}
}

func entrada(t *testing.T, fecha string, cantidad int) *entity.StockMovement {
	t.Helper()
	d, err := time.Parse("2006-01-02", fecha)
	require.NoError(t, err)
	return &entity.StockMovement{Type: entity.MovementTypeEntry, Quantity: cantidad, CreatedAt: d}
}

func TestAnalyzeConsumption_SinMovimientos(t *testing.T) {
	p := AnalyzeConsumption(nil)
	assert.Empty(t, p.Months)
	assert.Equal(t, TrendStable, p.Trend)
	assert.Zero(t, p.AverageMonthly)
	assert.False(t, p.HasSeasonality)
}

func TestAnalyzeConsumption_IgnoraMovimientosQueNoSonSalida(t *testing.T) {
	p := AnalyzeConsumption([]*entity.StockMovement{
		entrada(t, "2026-01-10", 100),
		salida(t, "2026-01-15", 20),
	})
	require.Len(t, p.Months, 1)
	assert.Equal(t, 20, p.Months[0].Quantity)
	assert.Equal(t, 20, p.TotalConsumed)
}

func TestAnalyzeConsumption_AgregaPorMes(t *testing.T) {
	p := AnalyzeConsumption([]*entity.StockMovement{
		salida(t, "2026-01-05", 10),
		salida(t, "2026-01-20", 15),
		salida(t, "2026-02-03", 30),
	})
	require.Len(t, p.Months, 2)
	assert.Equal(t, "2026-01", p.Months[0].Month)
	assert.Equal(t, 25, p.Months[0].Quantity)
	assert.Equal(t, "2026-02", p.Months[1].Month)
	assert.Equal(t, 30, p.Months[1].Quantity)
	assert.Equal(t, 55, p.TotalConsumed)
	assert.InDelta(t, 27.5, p.AverageMonthly, 0.001)
}

func TestAnalyzeConsumption_ConservaUltimosSeisMeses(t *testing.T) {
	movs := []*entity.StockMovement{
		salida(t, "2025-06-01", 1),
		salida(t, "2025-07-01", 2),
		salida(t, "2025-08-01", 3),
		salida(t, "2025-09-01", 4),
		salida(t, "2025-10-01", 5),
		salida(t, "2025-11-01", 6),
		salida(t, "2025-12-01", 7),
		salida(t, "2026-01-01", 8),
	}
	p := AnalyzeConsumption(movs)
	require.Len(t, p.Months, 6)
	assert.Equal(t, "2025-08", p.Months[0].Month)
	assert.Equal(t, "2026-01", p.Months[5].Month)
}

func TestAnalyzeConsumption_TendenciaCreciente(t *testing.T) {
	// 30 → 40: +33% supera el umbral del 20%.
	p := AnalyzeConsumption([]*entity.StockMovement{
		salida(t, "2025-12-01", 30),
		salida(t, "2026-01-01", 40),
	})
	assert.Equal(t, TrendIncreasing, p.Trend)
}

func TestAnalyzeConsumption_TendenciaDecreciente(t *testing.T) {
	// 40 → 30: -25% supera el umbral del 20%.
	p := AnalyzeConsumption([]*entity.StockMovement{
		salida(t, "2025-12-01", 40),
		salida(t, "2026-01-01", 30),
	})
	assert.Equal(t, TrendDecreasing, p.Trend)
}

func TestAnalyzeConsumption_TendenciaEstable(t *testing.T) {
	// 30 → 33: +10% no supera el umbral.
	p := AnalyzeConsumption([]*entity.StockMovement{
		salida(t, "2025-12-01", 30),
		salida(t, "2026-01-01", 33),
	})
	assert.Equal(t, TrendStable, p.Trend)
}

func TestAnalyzeConsumption_UnSoloMesEsEstable(t *testing.T) {
	p := AnalyzeConsumption([]*entity.StockMovement{
		salida(t, "2026-01-01", 100),
	})
	assert.Equal(t, TrendStable, p.Trend)
	assert.False(t, p.HasSeasonality)
}

func TestAnalyzeConsumption_DetectaEstacionalidad(t *testing.T) {
	// rango=20, promedio=30 → 0.66 > 0.3
	p := AnalyzeConsumption([]*entity.StockMovement{
		salida(t, "2025-11-01", 20),
		salida(t, "2025-12-01", 40),
		salida(t, "2026-01-01", 30),
	})
	assert.True(t, p.HasSeasonality)
}

func TestAnalyzeConsumption_ConsumoUniformeSinEstacionalidad(t *testing.T) {
	p := AnalyzeConsumption([]*entity.StockMovement{
		salida(t, "2025-11-01", 30),
		salida(t, "2025-12-01", 31),
		salida(t, "2026-01-01", 30),
	})
	assert.False(t, p.HasSeasonality)
}
