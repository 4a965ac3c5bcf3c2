// Package alerts evalúa las condiciones de alerta del inventario y las
// persiste de forma idempotente: una condición vigente produce una única
// alerta activa por (producto, tipo) sin importar cuántas veces se reevalúe.
package alerts

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Kardex-api/internal/domain"
	"github.com/jhoicas/Kardex-api/internal/domain/entity"
	invdomain "github.com/jhoicas/Kardex-api/internal/domain/inventory"
	"github.com/jhoicas/Kardex-api/internal/domain/repository"
	"github.com/jhoicas/Kardex-api/pkg/logger"
)

// AlertNotifier despacha la notificación de una alerta recién creada.
// Lo implementa el dispatcher de notificaciones.
type AlertNotifier interface {
	NotifyAlert(ctx context.Context, alert *entity.Alert, product *entity.Product) error
}

// UseCase evalúa, lista y resuelve alertas.
type UseCase struct {
	alertRepo   repository.AlertRepository
	productRepo repository.ProductRepository
	poRepo      repository.PurchaseOrderRepository
	notifier    AlertNotifier
	log         *logger.Logger
}

// NewUseCase construye el caso de uso de alertas.
func NewUseCase(
	alertRepo repository.AlertRepository,
	productRepo repository.ProductRepository,
	poRepo repository.PurchaseOrderRepository,
	notifier AlertNotifier,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		alertRepo:   alertRepo,
		productRepo: productRepo,
		poRepo:      poRepo,
		notifier:    notifier,
		log:         log,
	}
}

// RecheckProduct reevalúa las condiciones de un producto y crea las alertas
// que falten. Devuelve cuántas alertas nuevas se crearon. La operación es
// idempotente: condiciones que ya tienen alerta activa no se duplican.
func (uc *UseCase) RecheckProduct(ctx context.Context, productID string) (int, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return 0, err
	}
	if product == nil {
		return 0, domain.ErrNotFound
	}
	return uc.recheck(ctx, product)
}

// RecheckAll reevalúa todos los productos activos del catálogo. La usa el
// endpoint de evaluación global y puede engancharse a un scheduler. Devuelve
// cuántos productos se revisaron, cuántas alertas se crearon y cuántos
// productos fallaron en la reevaluación.
func (uc *UseCase) RecheckAll(ctx context.Context) (checked, created, failed int, err error) {
	products, err := uc.productRepo.ListActive()
	if err != nil {
		return 0, 0, 0, err
	}
	for _, p := range products {
		n, err := uc.recheck(ctx, p)
		if err != nil {
			// Un producto con error no interrumpe el barrido
			uc.log.Error().Err(err).Str("product_id", p.ID).Msg("fallo reevaluando producto")
			failed++
			continue
		}
		created += n
	}
	return len(products), created, failed, nil
}

func (uc *UseCase) recheck(ctx context.Context, product *entity.Product) (int, error) {
	created := 0
	for _, cond := range invdomain.EvaluateProduct(product, time.Now()) {
		exists, err := uc.alertRepo.ExistsActive(product.ID, cond.Type)
		if err != nil {
			return created, err
		}
		if exists {
			continue
		}
		alert := &entity.Alert{
			ID:        uuid.New().String(),
			ProductID: product.ID,
			Type:      cond.Type,
			Severity:  cond.Severity,
			Message:   cond.Message,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if err := uc.alertRepo.Create(alert); err != nil {
			return created, err
		}
		created++

		// La notificación es best-effort: su fallo queda en el log de
		// notificaciones (pending/failed) y se reintenta después
		if uc.notifier != nil {
			if err := uc.notifier.NotifyAlert(ctx, alert, product); err != nil {
				uc.log.Warn().Err(err).
					Str("alert_id", alert.ID).
					Str("product_id", product.ID).
					Msg("no se pudo despachar la notificación de la alerta")
			}
		}
	}
	return created, nil
}

// Resolve marca una alerta como resuelta. Resolver una alerta ya resuelta es
// ErrConflict; la resolución nunca es automática.
func (uc *UseCase) Resolve(ctx context.Context, alertID, userID string) (*entity.Alert, error) {
	alert, err := uc.alertRepo.GetByID(alertID)
	if err != nil {
		return nil, err
	}
	if alert == nil {
		return nil, domain.ErrNotFound
	}
	if alert.IsResolved {
		return nil, domain.ErrConflict
	}
	now := time.Now()
	alert.IsResolved = true
	alert.ResolvedAt = &now
	alert.ResolvedBy = userID
	alert.UpdatedAt = now
	if err := uc.alertRepo.Update(alert); err != nil {
		return nil, err
	}
	return alert, nil
}

// ListActive devuelve las alertas sin resolver, más recientes primero.
func (uc *UseCase) ListActive(ctx context.Context, limit, offset int) ([]*entity.Alert, error) {
	return uc.alertRepo.ListActive(limit, offset)
}

// ListByProduct devuelve el historial de alertas de un producto, resueltas
// incluidas. ErrNotFound si el producto no existe.
func (uc *UseCase) ListByProduct(ctx context.Context, productID string) ([]*entity.Alert, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return uc.alertRepo.ListByProduct(productID)
}

// CheckPendingOrders crea una alerta purchase_order_pending por cada orden
// que lleve en pending más de maxAge. Idempotente igual que el resto.
func (uc *UseCase) CheckPendingOrders(ctx context.Context, maxAge time.Duration) (int, error) {
	orders, err := uc.poRepo.List(entity.PurchaseOrderStatusPending, "", 200, 0)
	if err != nil {
		return 0, err
	}
	created := 0
	cutoff := time.Now().Add(-maxAge)
	for _, o := range orders {
		if o.UpdatedAt.After(cutoff) {
			continue
		}
		// Las alertas de órdenes se deduplican por orden, no por producto
		exists, err := uc.alertRepo.ExistsActive(o.ID, entity.AlertTypePurchaseOrderPending)
		if err != nil {
			return created, err
		}
		if exists {
			continue
		}
		alert := &entity.Alert{
			ID:        uuid.New().String(),
			ProductID: o.ID,
			Type:      entity.AlertTypePurchaseOrderPending,
			Severity:  entity.AlertSeverityInfo,
			Message:   fmt.Sprintf("Orden de compra %s pendiente de confirmación desde %s", o.OrderNumber, o.UpdatedAt.Format("2006-01-02")),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if err := uc.alertRepo.Create(alert); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}
