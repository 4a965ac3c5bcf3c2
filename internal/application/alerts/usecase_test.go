package alerts

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Kardex-api/internal/domain"
	"github.com/jhoicas/Kardex-api/internal/domain/entity"
	"github.com/jhoicas/Kardex-api/internal/domain/repository"
	"github.com/jhoicas/Kardex-api/pkg/logger"
)

// ─── Fakes ──────────────────────────────────────────────────────────────────

type fakeAlertRepo struct {
	alerts []*entity.Alert

	// existsErrFor fuerza el fallo de ExistsActive para un producto concreto
	existsErrFor string
}

func (f *fakeAlertRepo) Create(a *entity.Alert) error { f.alerts = append(f.alerts, a); return nil }
func (f *fakeAlertRepo) GetByID(id string) (*entity.Alert, error) {
	for _, a := range f.alerts {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}
func (f *fakeAlertRepo) Update(a *entity.Alert) error { return nil }
func (f *fakeAlertRepo) ExistsActive(productID, alertType string) (bool, error) {
	if f.existsErrFor != "" && productID == f.existsErrFor {
		return false, domain.ErrUnavailable
	}
	for _, a := range f.alerts {
		if a.ProductID == productID && a.Type == alertType && !a.IsResolved {
			return true, nil
		}
	}
	return false, nil
}
func (f *fakeAlertRepo) ListActive(limit, offset int) ([]*entity.Alert, error) {
	var out []*entity.Alert
	for _, a := range f.alerts {
		if !a.IsResolved {
			out = append(out, a)
		}
	}
	return out, nil
}
func (f *fakeAlertRepo) ListByProduct(productID string) ([]*entity.Alert, error) {
	var out []*entity.Alert
	for _, a := range f.alerts {
		if a.ProductID == productID {
			out = append(out, a)
		}
	}
	return out, nil
}
func (f *fakeAlertRepo) CountActiveBySeverity() (map[string]int, error)  { return nil, nil }

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (f *fakeProductRepo) Create(*entity.Product) error                 { return nil }
func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error)   { return f.products[id], nil }
func (f *fakeProductRepo) GetByCode(string) (*entity.Product, error)    { return nil, nil }
func (f *fakeProductRepo) GetByBarcode(string) (*entity.Product, error) { return nil, nil }
func (f *fakeProductRepo) Update(*entity.Product) error                 { return nil }
func (f *fakeProductRepo) UpdateStock(string, int) error                { return nil }
func (f *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return f.products[id], nil
}
func (f *fakeProductRepo) List(repository.ProductFilter, int, int) ([]*entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) ListActive() ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.products {
		out = append(out, p)
	}
	return out, nil
}
func (f *fakeProductRepo) Delete(string) error { return nil }

type fakePORepo struct {
	orders []*entity.PurchaseOrder
}

func (f *fakePORepo) Create(*entity.PurchaseOrder) error                { return nil }
func (f *fakePORepo) GetByID(string) (*entity.PurchaseOrder, error)     { return nil, nil }
func (f *fakePORepo) Update(*entity.PurchaseOrder) error                { return nil }
func (f *fakePORepo) UpdateStatus(string, string) error                 { return nil }
func (f *fakePORepo) AddItem(*entity.PurchaseOrderItem) error           { return nil }
func (f *fakePORepo) UpdateItemReceived(string, int) error              { return nil }
func (f *fakePORepo) List(status, supplierID string, limit, offset int) ([]*entity.PurchaseOrder, error) {
	return f.orders, nil
}
func (f *fakePORepo) CountByStatus(string) (int, error) { return 0, nil }

type fakeNotifier struct {
	notified []*entity.Alert
}

func (f *fakeNotifier) NotifyAlert(ctx context.Context, alert *entity.Alert, product *entity.Product) error {
	f.notified = append(f.notified, alert)
	return nil
}

func newUseCase(products ...*entity.Product) (*UseCase, *fakeAlertRepo, *fakeNotifier) {
	m := make(map[string]*entity.Product)
	for _, p := range products {
		m[p.ID] = p
	}
	alertRepo := &fakeAlertRepo{}
	notifier := &fakeNotifier{}
	uc := NewUseCase(alertRepo, &fakeProductRepo{products: m}, &fakePORepo{}, notifier, logger.Nop())
	return uc, alertRepo, notifier
}

// ─── RecheckProduct ─────────────────────────────────────────────────────────

func TestRecheckProduct_CreaAlertaDeStockBajo(t *testing.T) {
	uc, alertRepo, notifier := newUseCase(&entity.Product{
		ID: "p1", Code: "SKU-1", Name: "Alcohol 70%", Stock: 2, MinStock: 5,
	})

	created, err := uc.RecheckProduct(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, 1, created)
	require.Len(t, alertRepo.alerts, 1)
	assert.Equal(t, entity.AlertTypeLowStock, alertRepo.alerts[0].Type)
	assert.Len(t, notifier.notified, 1, "la alerta nueva debe notificarse")
}

func TestRecheckProduct_EsIdempotente(t *testing.T) {
	uc, alertRepo, notifier := newUseCase(&entity.Product{
		ID: "p1", Code: "SKU-1", Name: "Alcohol 70%", Stock: 0, MinStock: 5,
	})

	for i := 0; i < 3; i++ {
		_, err := uc.RecheckProduct(context.Background(), "p1")
		require.NoError(t, err)
	}
	assert.Len(t, alertRepo.alerts, 1, "reevaluar no duplica la alerta activa")
	assert.Len(t, notifier.notified, 1, "solo la creación notifica")
}

func TestRecheckProduct_SinCondicionesNoCreaNada(t *testing.T) {
	uc, alertRepo, _ := newUseCase(&entity.Product{
		ID: "p1", Code: "SKU-1", Name: "Alcohol 70%", Stock: 50, MinStock: 5,
	})

	created, err := uc.RecheckProduct(context.Background(), "p1")
	require.NoError(t, err)
	assert.Zero(t, created)
	assert.Empty(t, alertRepo.alerts)
}

func TestRecheckProduct_ProductoInexistente(t *testing.T) {
	uc, _, _ := newUseCase()

	_, err := uc.RecheckProduct(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecheckProduct_TrasResolverVuelveACrear(t *testing.T) {
	uc, alertRepo, _ := newUseCase(&entity.Product{
		ID: "p1", Code: "SKU-1", Name: "Alcohol 70%", Stock: 0, MinStock: 5,
	})

	_, err := uc.RecheckProduct(context.Background(), "p1")
	require.NoError(t, err)
	require.Len(t, alertRepo.alerts, 1)

	// Un admin resuelve la alerta aunque la condición persiste
	_, err = uc.Resolve(context.Background(), alertRepo.alerts[0].ID, "admin-1")
	require.NoError(t, err)

	// La condición sigue vigente: la siguiente evaluación crea una nueva
	created, err := uc.RecheckProduct(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, 1, created)
	assert.Len(t, alertRepo.alerts, 2)
}

// ─── Resolve ────────────────────────────────────────────────────────────────

func TestResolve_MarcaResueltaConActor(t *testing.T) {
	uc, alertRepo, _ := newUseCase(&entity.Product{
		ID: "p1", Code: "SKU-1", Name: "Alcohol 70%", Stock: 0, MinStock: 5,
	})
	_, err := uc.RecheckProduct(context.Background(), "p1")
	require.NoError(t, err)

	alert, err := uc.Resolve(context.Background(), alertRepo.alerts[0].ID, "admin-1")
	require.NoError(t, err)
	assert.True(t, alert.IsResolved)
	assert.Equal(t, "admin-1", alert.ResolvedBy)
	assert.NotNil(t, alert.ResolvedAt)
}

func TestResolve_DosVecesEsConflicto(t *testing.T) {
	uc, alertRepo, _ := newUseCase(&entity.Product{
		ID: "p1", Code: "SKU-1", Name: "Alcohol 70%", Stock: 0, MinStock: 5,
	})
	_, err := uc.RecheckProduct(context.Background(), "p1")
	require.NoError(t, err)

	_, err = uc.Resolve(context.Background(), alertRepo.alerts[0].ID, "admin-1")
	require.NoError(t, err)
	_, err = uc.Resolve(context.Background(), alertRepo.alerts[0].ID, "admin-2")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestResolve_AlertaInexistente(t *testing.T) {
	uc, _, _ := newUseCase()
	_, err := uc.Resolve(context.Background(), "no-existe", "admin-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ─── CheckPendingOrders ─────────────────────────────────────────────────────

func TestCheckPendingOrders_SoloOrdenesViejas(t *testing.T) {
	uc, alertRepo, _ := newUseCase()
	po := &fakePORepo{orders: []*entity.PurchaseOrder{
		{ID: "po-1", OrderNumber: "PO-100", Status: entity.PurchaseOrderStatusPending, UpdatedAt: time.Now().Add(-72 * time.Hour)},
		{ID: "po-2", OrderNumber: "PO-101", Status: entity.PurchaseOrderStatusPending, UpdatedAt: time.Now().Add(-1 * time.Hour)},
	}}
	uc.poRepo = po

	created, err := uc.CheckPendingOrders(context.Background(), 48*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, created)
	require.Len(t, alertRepo.alerts, 1)
	assert.Equal(t, entity.AlertTypePurchaseOrderPending, alertRepo.alerts[0].Type)
	assert.Contains(t, alertRepo.alerts[0].Message, "PO-100")
}

// ─── RecheckAll ─────────────────────────────────────────────────────────────

func TestRecheckAll_ReportaChequeadosCreadosYFallidos(t *testing.T) {
	uc, alertRepo, _ := newUseCase(
		&entity.Product{ID: "p1", Code: "SKU-1", Name: "Alcohol 70%", Stock: 0, MinStock: 5},
		&entity.Product{ID: "p2", Code: "SKU-2", Name: "Gasas", Stock: 0, MinStock: 5},
	)
	// p2 falla al consultar sus alertas vigentes; el barrido no se interrumpe
	alertRepo.existsErrFor = "p2"

	checked, created, failed, err := uc.RecheckAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, checked)
	assert.Equal(t, 1, created)
	assert.Equal(t, 1, failed)
}

func TestRecheckAll_SinFallosReportaCero(t *testing.T) {
	uc, _, _ := newUseCase(
		&entity.Product{ID: "p1", Code: "SKU-1", Name: "Alcohol 70%", Stock: 50, MinStock: 5},
	)

	checked, created, failed, err := uc.RecheckAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, checked)
	assert.Equal(t, 0, created)
	assert.Equal(t, 0, failed)
}

// ─── ListByProduct ──────────────────────────────────────────────────────────

func TestListByProduct_IncluyeResueltas(t *testing.T) {
	uc, alertRepo, _ := newUseCase(&entity.Product{ID: "p1", Code: "SKU-1", Name: "Alcohol 70%"})
	alertRepo.alerts = []*entity.Alert{
		{ID: "a1", ProductID: "p1", Type: entity.AlertTypeLowStock, IsResolved: true},
		{ID: "a2", ProductID: "p1", Type: entity.AlertTypeOutOfStock},
		{ID: "a3", ProductID: "otro", Type: entity.AlertTypeLowStock},
	}

	list, err := uc.ListByProduct(context.Background(), "p1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "a1", list[0].ID)
	assert.Equal(t, "a2", list[1].ID)
}

func TestListByProduct_ProductoInexistente(t *testing.T) {
	uc, _, _ := newUseCase()

	_, err := uc.ListByProduct(context.Background(), "fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
