package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Kardex-api/internal/application/dto"
	"github.com/jhoicas/Kardex-api/internal/application/inventory"
	"github.com/jhoicas/Kardex-api/internal/domain"
	"github.com/jhoicas/Kardex-api/internal/domain/entity"
	"github.com/jhoicas/Kardex-api/internal/domain/repository"
)

// ─── Fakes ──────────────────────────────────────────────────────────────────

type fakePORepo struct {
	orders   map[string]*entity.PurchaseOrder
	added    []*entity.PurchaseOrderItem
	received map[string]int // itemID → cantidad recibida persistida
}

func newFakePORepo() *fakePORepo {
	return &fakePORepo{
		orders:   make(map[string]*entity.PurchaseOrder),
		received: make(map[string]int),
	}
}

func (f *fakePORepo) Create(o *entity.PurchaseOrder) error { f.orders[o.ID] = o; return nil }
func (f *fakePORepo) GetByID(id string) (*entity.PurchaseOrder, error) {
	return f.orders[id], nil
}
func (f *fakePORepo) Update(o *entity.PurchaseOrder) error { f.orders[o.ID] = o; return nil }
func (f *fakePORepo) UpdateStatus(id, status string) error {
	f.orders[id].Status = status
	return nil
}
func (f *fakePORepo) AddItem(it *entity.PurchaseOrderItem) error {
	f.added = append(f.added, it)
	return nil
}
func (f *fakePORepo) UpdateItemReceived(itemID string, receivedQuantity int) error {
	f.received[itemID] = receivedQuantity
	return nil
}
func (f *fakePORepo) List(status, supplierID string, limit, offset int) ([]*entity.PurchaseOrder, error) {
	var out []*entity.PurchaseOrder
	for _, o := range f.orders {
		if status == "" || o.Status == status {
			out = append(out, o)
		}
	}
	return out, nil
}
func (f *fakePORepo) CountByStatus(string) (int, error) { return 0, nil }

type fakeSupplierRepo struct {
	supplier *entity.Supplier
}

func (f *fakeSupplierRepo) Create(*entity.Supplier) error             { return nil }
func (f *fakeSupplierRepo) GetByID(string) (*entity.Supplier, error)  { return f.supplier, nil }
func (f *fakeSupplierRepo) Update(*entity.Supplier) error             { return nil }
func (f *fakeSupplierRepo) List(int, int) ([]*entity.Supplier, error) { return nil, nil }
func (f *fakeSupplierRepo) Delete(string) error                       { return nil }

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
func (f *fakeProductRepo) ListActive() ([]*entity.Product, error) { return nil, nil }
func (f *fakeProductRepo) Delete(string) error                    { return nil }

type fakeRegistrar struct {
	inputs []inventory.MovementInput
	failAt int // falla la n-ésima llamada (1-based); 0 nunca falla
}

func (f *fakeRegistrar) RegisterMovement(ctx context.Context, input inventory.MovementInput) (*entity.StockMovement, error) {
	f.inputs = append(f.inputs, input)
	if f.failAt > 0 && len(f.inputs) == f.failAt {
		return nil, domain.ErrUnavailable
	}
	return &entity.StockMovement{ID: "mov", ProductID: input.ProductID}, nil
}

func newPOUseCase() (*PurchaseOrderUseCase, *fakePORepo, *fakeRegistrar) {
	poRepo := newFakePORepo()
	registrar := &fakeRegistrar{}
	uc := NewPurchaseOrderUseCase(
		poRepo,
		&fakeSupplierRepo{supplier: &entity.Supplier{ID: "sup-1", Name: "Distribuidora Norte"}},
		&fakeProductRepo{products: map[string]*entity.Product{
			"p1": {ID: "p1", Code: "SKU-1", Name: "Gasa estéril"},
			"p2": {ID: "p2", Code: "SKU-2", Name: "Venda elástica"},
		}},
		registrar,
	)
	return uc, poRepo, registrar
}

func ordenBase() dto.CreatePurchaseOrderRequest {
	return dto.CreatePurchaseOrderRequest{
		SupplierID: "sup-1",
		Items: []dto.PurchaseOrderItemRequest{
			{ProductID: "p1", Quantity: 10, UnitCost: decimal.NewFromInt(5)},
			{ProductID: "p2", Quantity: 4, UnitCost: decimal.NewFromFloat(2.5)},
		},
	}
}

// ─── Create ─────────────────────────────────────────────────────────────────

func TestCreatePurchaseOrder_NaceEnDraftConTotal(t *testing.T) {
	uc, _, _ := newPOUseCase()

	resp, err := uc.Create(context.Background(), "user-1", ordenBase())
	require.NoError(t, err)
	assert.Equal(t, entity.PurchaseOrderStatusDraft, resp.Status)
	assert.True(t, resp.Total.Equal(decimal.NewFromInt(60)), "10*5 + 4*2.5 = 60, fue %s", resp.Total)
	assert.Len(t, resp.Items, 2)
	assert.NotEmpty(t, resp.OrderNumber)
	assert.Equal(t, "user-1", resp.CreatedBy)
}

func TestCreatePurchaseOrder_SinLineasEsInvalida(t *testing.T) {
	uc, _, _ := newPOUseCase()

	_, err := uc.Create(context.Background(), "user-1", dto.CreatePurchaseOrderRequest{SupplierID: "sup-1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreatePurchaseOrder_ProductoInexistente(t *testing.T) {
	uc, _, _ := newPOUseCase()

	in := ordenBase()
	in.Items[0].ProductID = "no-existe"
	_, err := uc.Create(context.Background(), "user-1", in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ─── Transition ─────────────────────────────────────────────────────────────

func avanzarHasta(t *testing.T, uc *PurchaseOrderUseCase, orderID string, estados ...string) {
	t.Helper()
	for _, s := range estados {
		_, err := uc.Transition(context.Background(), orderID, "user-1", s)
		require.NoError(t, err)
	}
}

func TestTransition_FlujoCompletoHastaRecepcion(t *testing.T) {
	uc, _, registrar := newPOUseCase()
	resp, err := uc.Create(context.Background(), "user-1", ordenBase())
	require.NoError(t, err)

	avanzarHasta(t, uc, resp.ID, entity.PurchaseOrderStatusPending, entity.PurchaseOrderStatusConfirmed)

	recibida, err := uc.Transition(context.Background(), resp.ID, "bodeguero-1", entity.PurchaseOrderStatusReceived)
	require.NoError(t, err)
	assert.Equal(t, entity.PurchaseOrderStatusReceived, recibida.Status)
	assert.NotNil(t, recibida.ReceivedAt)

	// Cada línea recibida entra al kardex como movimiento entry
	require.Len(t, registrar.inputs, 2)
	for _, in := range registrar.inputs {
		assert.Equal(t, entity.MovementTypeEntry, in.Type)
		assert.Equal(t, resp.ID, in.PurchaseOrderID)
		assert.Equal(t, "bodeguero-1", in.UserID)
	}
	assert.Equal(t, 10, registrar.inputs[0].Quantity)
	assert.Equal(t, 4, registrar.inputs[1].Quantity)
}

func TestTransition_SaltoDeEstadoProhibido(t *testing.T) {
	uc, _, registrar := newPOUseCase()
	resp, err := uc.Create(context.Background(), "user-1", ordenBase())
	require.NoError(t, err)

	_, err = uc.Transition(context.Background(), resp.ID, "user-1", entity.PurchaseOrderStatusReceived)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Empty(t, registrar.inputs, "sin recepción no hay movimientos")
}

func TestTransition_EstadoTerminalNoAvanza(t *testing.T) {
	uc, _, _ := newPOUseCase()
	resp, err := uc.Create(context.Background(), "user-1", ordenBase())
	require.NoError(t, err)

	avanzarHasta(t, uc, resp.ID, entity.PurchaseOrderStatusCancelled)

	_, err = uc.Transition(context.Background(), resp.ID, "user-1", entity.PurchaseOrderStatusPending)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestTransition_OrdenInexistente(t *testing.T) {
	uc, _, _ := newPOUseCase()
	_, err := uc.Transition(context.Background(), "no-existe", "user-1", entity.PurchaseOrderStatusPending)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTransition_RecepcionInterrumpidaNoDuplicaAlReintentar(t *testing.T) {
	uc, poRepo, registrar := newPOUseCase()
	resp, err := uc.Create(context.Background(), "user-1", ordenBase())
	require.NoError(t, err)
	avanzarHasta(t, uc, resp.ID, entity.PurchaseOrderStatusPending, entity.PurchaseOrderStatusConfirmed)

	// La segunda línea falla: la primera ya asentó su entrada en el kardex
	registrar.failAt = 2
	_, err = uc.Transition(context.Background(), resp.ID, "bodeguero-1", entity.PurchaseOrderStatusReceived)
	require.Error(t, err)
	assert.Equal(t, entity.PurchaseOrderStatusConfirmed, poRepo.orders[resp.ID].Status)

	// La recepción de la primera línea quedó persistida aunque la orden no avanzó
	primera := poRepo.orders[resp.ID].Items[0]
	assert.Equal(t, 10, poRepo.received[primera.ID])

	// El reintento salta la línea ya recibida y solo asienta la pendiente
	recibida, err := uc.Transition(context.Background(), resp.ID, "bodeguero-1", entity.PurchaseOrderStatusReceived)
	require.NoError(t, err)
	assert.Equal(t, entity.PurchaseOrderStatusReceived, recibida.Status)

	entradasP1 := 0
	for _, in := range registrar.inputs {
		if in.ProductID == "p1" {
			entradasP1++
		}
	}
	assert.Equal(t, 1, entradasP1, "la línea ya recibida no vuelve a entrar al kardex")
	assert.Len(t, registrar.inputs, 3, "línea 1, línea 2 fallida y línea 2 reintentada")
}

func TestTransition_ActualizaUpdatedAt(t *testing.T) {
	uc, poRepo, _ := newPOUseCase()
	resp, err := uc.Create(context.Background(), "user-1", ordenBase())
	require.NoError(t, err)

	antes := poRepo.orders[resp.ID].UpdatedAt
	time.Sleep(5 * time.Millisecond)
	avanzarHasta(t, uc, resp.ID, entity.PurchaseOrderStatusPending)
	assert.True(t, poRepo.orders[resp.ID].UpdatedAt.After(antes))
}

// ─── Update / AddItem ───────────────────────────────────────────────────────

func TestUpdatePurchaseOrder_CabeceraEnDraft(t *testing.T) {
	uc, _, _ := newPOUseCase()
	resp, err := uc.Create(context.Background(), "user-1", ordenBase())
	require.NoError(t, err)

	fecha := time.Now().Add(7 * 24 * time.Hour)
	notas := "entregar en bodega central"
	out, err := uc.Update(context.Background(), resp.ID, dto.UpdatePurchaseOrderRequest{
		ExpectedDate: &fecha,
		Notes:        &notas,
	})
	require.NoError(t, err)
	assert.Equal(t, notas, out.Notes)
	require.NotNil(t, out.ExpectedDate)
	assert.WithinDuration(t, fecha, *out.ExpectedDate, time.Second)
}

func TestUpdatePurchaseOrder_ConfirmadaNoSeEdita(t *testing.T) {
	uc, _, _ := newPOUseCase()
	resp, err := uc.Create(context.Background(), "user-1", ordenBase())
	require.NoError(t, err)
	avanzarHasta(t, uc, resp.ID, entity.PurchaseOrderStatusPending, entity.PurchaseOrderStatusConfirmed)

	notas := "tarde"
	_, err = uc.Update(context.Background(), resp.ID, dto.UpdatePurchaseOrderRequest{Notes: &notas})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestAddItem_RecalculaElTotal(t *testing.T) {
	uc, poRepo, _ := newPOUseCase()
	resp, err := uc.Create(context.Background(), "user-1", ordenBase())
	require.NoError(t, err)

	out, err := uc.AddItem(context.Background(), resp.ID, dto.PurchaseOrderItemRequest{
		ProductID: "p2", Quantity: 8, UnitCost: decimal.NewFromInt(3),
	})
	require.NoError(t, err)
	assert.Len(t, out.Items, 3)
	assert.True(t, out.Total.Equal(decimal.NewFromInt(84)), "60 + 8*3 = 84, fue %s", out.Total)

	// La línea nueva se persistió con su subtotal calculado
	require.Len(t, poRepo.added, 1)
	assert.True(t, poRepo.added[0].TotalPrice.Equal(decimal.NewFromInt(24)))
}

func TestAddItem_OrdenRecibidaEsConflicto(t *testing.T) {
	uc, _, _ := newPOUseCase()
	resp, err := uc.Create(context.Background(), "user-1", ordenBase())
	require.NoError(t, err)
	avanzarHasta(t, uc, resp.ID,
		entity.PurchaseOrderStatusPending,
		entity.PurchaseOrderStatusConfirmed,
		entity.PurchaseOrderStatusReceived)

	_, err = uc.AddItem(context.Background(), resp.ID, dto.PurchaseOrderItemRequest{
		ProductID: "p1", Quantity: 1, UnitCost: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestAddItem_CantidadInvalida(t *testing.T) {
	uc, _, _ := newPOUseCase()
	resp, err := uc.Create(context.Background(), "user-1", ordenBase())
	require.NoError(t, err)

	_, err = uc.AddItem(context.Background(), resp.ID, dto.PurchaseOrderItemRequest{
		ProductID: "p1", Quantity: 0, UnitCost: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
