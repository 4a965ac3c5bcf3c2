package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Kardex-api/internal/application/dto"
	"github.com/jhoicas/Kardex-api/internal/application/inventory"
	"github.com/jhoicas/Kardex-api/internal/domain"
	"github.com/jhoicas/Kardex-api/internal/domain/entity"
	"github.com/jhoicas/Kardex-api/internal/domain/repository"
)

// MovementRegistrar registra movimientos de inventario. Lo implementa
// inventory.RegisterMovementUseCase; la recepción de órdenes lo usa para que
// cada línea recibida entre al kardex como un movimiento entry.
type MovementRegistrar interface {
	RegisterMovement(ctx context.Context, input inventory.MovementInput) (*entity.StockMovement, error)
}

// PurchaseOrderUseCase gestiona el ciclo de vida de las órdenes de compra:
// draft → pending → confirmed → received, con cancelación desde cualquier
// estado no terminal.
type PurchaseOrderUseCase struct {
	poRepo       repository.PurchaseOrderRepository
	supplierRepo repository.SupplierRepository
	productRepo  repository.ProductRepository
	movements    MovementRegistrar
}

// NewPurchaseOrderUseCase construye el caso de uso.
func NewPurchaseOrderUseCase(
	poRepo repository.PurchaseOrderRepository,
	supplierRepo repository.SupplierRepository,
	productRepo repository.ProductRepository,
	movements MovementRegistrar,
) *PurchaseOrderUseCase {
	return &PurchaseOrderUseCase{
		poRepo:       poRepo,
		supplierRepo: supplierRepo,
		productRepo:  productRepo,
		movements:    movements,
	}
}

// Create crea una orden en estado draft con sus líneas y total calculado.
func (uc *PurchaseOrderUseCase) Create(ctx context.Context, userID string, in dto.CreatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	if in.SupplierID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	order := &entity.PurchaseOrder{
		ID:                   uuid.New().String(),
		OrderNumber:          fmt.Sprintf("PO-%d", now.UnixMilli()),
		SupplierID:           in.SupplierID,
		Status:               entity.PurchaseOrderStatusDraft,
		TotalAmount:          decimal.Zero,
		ExpectedDeliveryDate: in.ExpectedDate,
		Notes:                in.Notes,
		CreatedBy:            userID,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	for _, item := range in.Items {
		if item.Quantity <= 0 || item.UnitCost.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		total := item.UnitCost.Mul(decimal.NewFromInt(int64(item.Quantity)))
		order.Items = append(order.Items, entity.PurchaseOrderItem{
			ID:              uuid.New().String(),
			PurchaseOrderID: order.ID,
			ProductID:       item.ProductID,
			Quantity:        item.Quantity,
			UnitPrice:       item.UnitCost,
			TotalPrice:      total,
			CreatedAt:       now,
		})
		order.TotalAmount = order.TotalAmount.Add(total)
	}
	if err := uc.poRepo.Create(order); err != nil {
		return nil, err
	}
	return toPurchaseOrderResponse(order), nil
}

// Transition cambia el estado de una orden validando la máquina de estados.
// Al pasar a received registra un movimiento entry por cada línea, de modo
// que la mercancía recibida queda asentada en el kardex.
func (uc *PurchaseOrderUseCase) Transition(ctx context.Context, orderID, userID, newStatus string) (*dto.PurchaseOrderResponse, error) {
	order, err := uc.poRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if !entity.CanTransition(order.Status, newStatus) {
		return nil, domain.ErrInvalidTransition
	}

	if newStatus == entity.PurchaseOrderStatusReceived {
		if err := uc.receiveItems(ctx, order, userID); err != nil {
			return nil, err
		}
		now := time.Now()
		order.ReceivedDate = &now
	}

	order.Status = newStatus
	order.UpdatedAt = time.Now()
	if err := uc.poRepo.Update(order); err != nil {
		return nil, err
	}
	return toPurchaseOrderResponse(order), nil
}

// receiveItems asienta una entrada en el kardex por cada línea de la orden.
// El avance se persiste línea por línea: cada entrada confirmada marca su
// received_quantity antes de pasar a la siguiente. Si una línea falla, la
// orden sigue en confirmed y el reintento de la transición salta las líneas
// ya recibidas en vez de duplicar sus movimientos.
func (uc *PurchaseOrderUseCase) receiveItems(ctx context.Context, order *entity.PurchaseOrder, userID string) error {
	for i := range order.Items {
		item := &order.Items[i]
		remaining := item.Quantity - item.ReceivedQuantity
		if remaining <= 0 {
			continue
		}
		_, err := uc.movements.RegisterMovement(ctx, inventory.MovementInput{
			ProductID:       item.ProductID,
			UserID:          userID,
			Type:            entity.MovementTypeEntry,
			Quantity:        remaining,
			Reason:          "recepción de orden de compra",
			Reference:       order.OrderNumber,
			PurchaseOrderID: order.ID,
		})
		if err != nil {
			return fmt.Errorf("recibiendo línea %s de la orden %s: %w", item.ProductID, order.OrderNumber, err)
		}
		item.ReceivedQuantity = item.Quantity
		if err := uc.poRepo.UpdateItemReceived(item.ID, item.ReceivedQuantity); err != nil {
			return fmt.Errorf("registrando recepción de la línea %s de la orden %s: %w", item.ProductID, order.OrderNumber, err)
		}
	}
	return nil
}

// editableStatus indica si la orden todavía admite cambios de cabecera o
// líneas nuevas. Desde confirmed la orden es un compromiso con el proveedor.
func editableStatus(status string) bool {
	return status == entity.PurchaseOrderStatusDraft || status == entity.PurchaseOrderStatusPending
}

// Update modifica la cabecera de una orden en draft o pending.
func (uc *PurchaseOrderUseCase) Update(ctx context.Context, orderID string, in dto.UpdatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	order, err := uc.poRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if !editableStatus(order.Status) {
		return nil, domain.ErrConflict
	}
	if in.ExpectedDate != nil {
		order.ExpectedDeliveryDate = in.ExpectedDate
	}
	if in.Notes != nil {
		order.Notes = *in.Notes
	}
	order.UpdatedAt = time.Now()
	if err := uc.poRepo.Update(order); err != nil {
		return nil, err
	}
	return toPurchaseOrderResponse(order), nil
}

// AddItem agrega una línea a una orden en draft o pending y recalcula el
// total (totalPrice = cantidad × precio unitario).
func (uc *PurchaseOrderUseCase) AddItem(ctx context.Context, orderID string, in dto.PurchaseOrderItemRequest) (*dto.PurchaseOrderResponse, error) {
	if in.Quantity <= 0 || in.UnitCost.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.poRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if !editableStatus(order.Status) {
		return nil, domain.ErrConflict
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	total := in.UnitCost.Mul(decimal.NewFromInt(int64(in.Quantity)))
	item := entity.PurchaseOrderItem{
		ID:              uuid.New().String(),
		PurchaseOrderID: order.ID,
		ProductID:       in.ProductID,
		Quantity:        in.Quantity,
		UnitPrice:       in.UnitCost,
		TotalPrice:      total,
		CreatedAt:       time.Now(),
	}
	if err := uc.poRepo.AddItem(&item); err != nil {
		return nil, err
	}
	order.Items = append(order.Items, item)
	order.TotalAmount = order.TotalAmount.Add(total)
	order.UpdatedAt = time.Now()
	if err := uc.poRepo.Update(order); err != nil {
		return nil, err
	}
	return toPurchaseOrderResponse(order), nil
}

// GetByID obtiene una orden con sus líneas.
func (uc *PurchaseOrderUseCase) GetByID(id string) (*dto.PurchaseOrderResponse, error) {
	order, err := uc.poRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	return toPurchaseOrderResponse(order), nil
}

// List lista órdenes con filtros y paginación.
func (uc *PurchaseOrderUseCase) List(status, supplierID string, page dto.PageRequest) (*dto.PurchaseOrderListResponse, error) {
	page.DefaultPage()
	list, err := uc.poRepo.List(status, supplierID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PurchaseOrderResponse, len(list))
	for i, o := range list {
		items[i] = *toPurchaseOrderResponse(o)
	}
	return &dto.PurchaseOrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

func toPurchaseOrderResponse(o *entity.PurchaseOrder) *dto.PurchaseOrderResponse {
	items := make([]dto.PurchaseOrderItemResponse, len(o.Items))
	for i, it := range o.Items {
		items[i] = dto.PurchaseOrderItemResponse{
			ID:        it.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitCost:  it.UnitPrice,
			Subtotal:  it.TotalPrice,
		}
	}
	return &dto.PurchaseOrderResponse{
		ID:           o.ID,
		OrderNumber:  o.OrderNumber,
		SupplierID:   o.SupplierID,
		Status:       o.Status,
		Total:        o.TotalAmount,
		ExpectedDate: o.ExpectedDeliveryDate,
		ReceivedAt:   o.ReceivedDate,
		Notes:        o.Notes,
		CreatedBy:    o.CreatedBy,
		Items:        items,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}
