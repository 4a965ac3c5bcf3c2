package inventory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Kardex-api/internal/domain/entity"
)

func producto(stock, minStock int, expiration *time.Time) *entity.Product {
	return &entity.Product{
		ID:             "prod-1",
		Code:           "SKU-001",
		Name:           "Paracetamol 500mg",
		Stock:          stock,
		MinStock:       minStock,
		ExpirationDate: expiration,
	}
}

func fecha(t *testing.T, s string) *time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return &d
}

func tipos(conds []Condition) []string {
	out := make([]string, len(conds))
	for i, c := range conds {
		out[i] = c.Type
	}
	return out
}

func TestEvaluateProduct_SinCondiciones(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	conds := EvaluateProduct(producto(50, 10, nil), now)
	assert.Empty(t, conds)
}

func TestEvaluateProduct_StockBajo(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	conds := EvaluateProduct(producto(10, 10, nil), now)
	require.Len(t, conds, 1)
	assert.Equal(t, entity.AlertTypeLowStock, conds[0].Type)
	assert.Equal(t, entity.AlertSeverityWarning, conds[0].Severity)
	assert.Contains(t, conds[0].Message, "SKU-001")
}

func TestEvaluateProduct_SinStockExcluyeStockBajo(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	conds := EvaluateProduct(producto(0, 10, nil), now)
	require.Len(t, conds, 1)
	assert.Equal(t, entity.AlertTypeOutOfStock, conds[0].Type)
	assert.Equal(t, entity.AlertSeverityCritical, conds[0].Severity)
}

func TestEvaluateProduct_MinStockCeroNoGeneraStockBajo(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	conds := EvaluateProduct(producto(1, 0, nil), now)
	assert.Empty(t, conds)
}

func TestEvaluateProduct_ProximoAVencer(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	conds := EvaluateProduct(producto(50, 10, fecha(t, "2026-03-20")), now)
	require.Len(t, conds, 1)
	assert.Equal(t, entity.AlertTypeExpiringSoon, conds[0].Type)
	assert.Equal(t, entity.AlertSeverityWarning, conds[0].Severity)
}

func TestEvaluateProduct_Vencido(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	conds := EvaluateProduct(producto(50, 10, fecha(t, "2026-02-15")), now)
	require.Len(t, conds, 1)
	assert.Equal(t, entity.AlertTypeExpired, conds[0].Type)
	assert.Equal(t, entity.AlertSeverityCritical, conds[0].Severity)
	assert.Contains(t, conds[0].Message, "2026-02-15")
}

func TestEvaluateProduct_VencimientoLejanoNoAlerta(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	conds := EvaluateProduct(producto(50, 10, fecha(t, "2026-12-31")), now)
	assert.Empty(t, conds)
}

func TestEvaluateProduct_CondicionesIndependientes(t *testing.T) {
	// Sin stock y vencido a la vez: ambas condiciones se reportan.
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	conds := EvaluateProduct(producto(0, 10, fecha(t, "2026-01-01")), now)
	assert.ElementsMatch(t,
		[]string{entity.AlertTypeOutOfStock, entity.AlertTypeExpired},
		tipos(conds))
}
