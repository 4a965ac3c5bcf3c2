package analytics

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Kardex-api/internal/domain/entity"
	"github.com/jhoicas/Kardex-api/internal/domain/repository"
)

// ─── Fakes ──────────────────────────────────────────────────────────────────

type fakeAnalyticsRepo struct {
	summary    *repository.InventorySummary
	top        []repository.TopMovedProduct
	counts     map[string]int
	categories []repository.CategoryStock

	categoriesErr error
}

func (f *fakeAnalyticsRepo) GetInventorySummary(context.Context) (*repository.InventorySummary, error) {
	return f.summary, nil
}
func (f *fakeAnalyticsRepo) GetTopMovedProducts(_ context.Context, days, limit int) ([]repository.TopMovedProduct, error) {
	return f.top, nil
}
func (f *fakeAnalyticsRepo) CountMovementsByType(context.Context, int) (map[string]int, error) {
	return f.counts, nil
}
func (f *fakeAnalyticsRepo) GetStockByCategory(context.Context) ([]repository.CategoryStock, error) {
	return f.categories, f.categoriesErr
}

type fakeAlertRepo struct {
	bySeverity map[string]int
}

func (f *fakeAlertRepo) Create(*entity.Alert) error                    { return nil }
func (f *fakeAlertRepo) GetByID(string) (*entity.Alert, error)         { return nil, nil }
func (f *fakeAlertRepo) Update(*entity.Alert) error                    { return nil }
func (f *fakeAlertRepo) ExistsActive(string, string) (bool, error)     { return false, nil }
func (f *fakeAlertRepo) ListActive(int, int) ([]*entity.Alert, error)  { return nil, nil }
func (f *fakeAlertRepo) ListByProduct(string) ([]*entity.Alert, error) { return nil, nil }
func (f *fakeAlertRepo) CountActiveBySeverity() (map[string]int, error) {
	return f.bySeverity, nil
}

type fakePORepo struct {
	pending int
}

func (f *fakePORepo) Create(*entity.PurchaseOrder) error            { return nil }
func (f *fakePORepo) GetByID(string) (*entity.PurchaseOrder, error) { return nil, nil }
func (f *fakePORepo) Update(*entity.PurchaseOrder) error            { return nil }
func (f *fakePORepo) UpdateStatus(string, string) error             { return nil }
func (f *fakePORepo) AddItem(*entity.PurchaseOrderItem) error       { return nil }
func (f *fakePORepo) UpdateItemReceived(string, int) error          { return nil }
func (f *fakePORepo) List(string, string, int, int) ([]*entity.PurchaseOrder, error) {
	return nil, nil
}
func (f *fakePORepo) CountByStatus(status string) (int, error) {
	if status == entity.PurchaseOrderStatusPending {
		return f.pending, nil
	}
	return 0, nil
}

// ─── GetSummary ─────────────────────────────────────────────────────────────

func TestGetSummary_IncluyeStockPorCategoria(t *testing.T) {
	analyticsRepo := &fakeAnalyticsRepo{
		summary: &repository.InventorySummary{
			TotalProducts:   12,
			TotalStockUnits: 340,
			TotalStockValue: decimal.RequireFromString("1520.505"),
			LowStockCount:   2,
		},
		counts: map[string]int{entity.MovementTypeEntry: 7, entity.MovementTypeExit: 11},
		categories: []repository.CategoryStock{
			{CategoryID: "c1", CategoryName: "Analgésicos", Products: 8, StockUnits: 300, StockValue: decimal.RequireFromString("1200.004")},
			{CategoryName: "Sin categoría", Products: 4, StockUnits: 40, StockValue: decimal.RequireFromString("320.501")},
		},
	}
	uc := NewDashboardUseCase(analyticsRepo, &fakeAlertRepo{bySeverity: map[string]int{entity.AlertSeverityCritical: 1}}, &fakePORepo{pending: 3})

	summary, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	require.Len(t, summary.StockByCategory, 2)
	assert.Equal(t, "c1", summary.StockByCategory[0].CategoryID)
	assert.Equal(t, "Analgésicos", summary.StockByCategory[0].CategoryName)
	assert.Equal(t, 8, summary.StockByCategory[0].Products)
	assert.Equal(t, 300, summary.StockByCategory[0].StockUnits)
	assert.True(t, summary.StockByCategory[0].StockValue.Equal(decimal.RequireFromString("1200.00")),
		"se redondea a dos decimales, got %s", summary.StockByCategory[0].StockValue)

	assert.Empty(t, summary.StockByCategory[1].CategoryID)
	assert.Equal(t, "Sin categoría", summary.StockByCategory[1].CategoryName)

	assert.Equal(t, 12, summary.TotalProducts)
	assert.Equal(t, 3, summary.PendingOrders)
	assert.Equal(t, 1, summary.ActiveAlerts[entity.AlertSeverityCritical])
}

func TestGetSummary_FalloDeCategoriasPropagaElError(t *testing.T) {
	analyticsRepo := &fakeAnalyticsRepo{
		summary:       &repository.InventorySummary{},
		categoriesErr: assert.AnError,
	}
	uc := NewDashboardUseCase(analyticsRepo, &fakeAlertRepo{}, &fakePORepo{})

	_, err := uc.GetSummary(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stock por categoría")
}

func TestGetSummary_SinCategoriasDevuelveListaVacia(t *testing.T) {
	analyticsRepo := &fakeAnalyticsRepo{summary: &repository.InventorySummary{}}
	uc := NewDashboardUseCase(analyticsRepo, &fakeAlertRepo{}, &fakePORepo{})

	summary, err := uc.GetSummary(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, summary.StockByCategory)
	assert.Empty(t, summary.StockByCategory)
}
