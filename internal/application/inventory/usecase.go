package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Kardex-api/internal/application/dto"
	"github.com/jhoicas/Kardex-api/internal/domain"
	"github.com/jhoicas/Kardex-api/internal/domain/entity"
	invdomain "github.com/jhoicas/Kardex-api/internal/domain/inventory"
	"github.com/jhoicas/Kardex-api/internal/domain/repository"
	"github.com/jhoicas/Kardex-api/pkg/logger"
)

// RegisterMovementUseCase registra movimientos de inventario de forma
// transaccional (entry, exit, adjustment, return, write_off) con bloqueo de
// fila (SELECT FOR UPDATE) y Commit/Rollback. El asiento del kardex y el
// stock denormalizado del producto cambian en la misma transacción.
type RegisterMovementUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	movRepo     repository.StockMovementRepository
	rechecker   ProductRechecker
	log         *logger.Logger
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	movRepo repository.StockMovementRepository,
	rechecker ProductRechecker,
	log *logger.Logger,
) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{
		txRunner:    txRunner,
		productRepo: productRepo,
		movRepo:     movRepo,
		rechecker:   rechecker,
		log:         log,
	}
}

// MovementInput entrada para registrar un movimiento de inventario.
// Quantity es positiva para entry/exit/return/write_off; para adjustment es
// un delta con signo. ExpectedPreviousStock es opcional: si viene y no
// coincide con el stock al momento de la transacción, el movimiento se
// rechaza con ErrConflict (el cliente decidió con una foto obsoleta).
type MovementInput struct {
	ProductID             string
	UserID                string
	Type                  string
	Quantity              int
	Reason                string
	Reference             string
	PurchaseOrderID       string
	ExpectedPreviousStock *int
}

// RegisterMovement inicia una transacción, bloquea la fila del producto
// (SELECT FOR UPDATE), congela PreviousStock/ResultingStock, inserta el
// asiento del kardex y actualiza el stock del producto. Commit o Rollback
// juntos: nunca queda un movimiento sin su stock ni un stock sin su
// movimiento.
//
// Después del commit reevalúa las alertas del producto; un fallo en esa
// reevaluación se registra en el log pero no revierte el movimiento.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, input MovementInput) (*entity.StockMovement, error) {
	if input.ProductID == "" || input.UserID == "" {
		return nil, domain.ErrInvalidInput
	}
	// Valida tipo y cantidad antes de abrir la transacción
	if _, err := invdomain.SignedEffect(input.Type, input.Quantity); err != nil {
		return nil, err
	}

	now := time.Now()
	var created *entity.StockMovement

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		// Bloquea la fila del producto; su Stock es la única lectura
		// autoritativa de previousStock
		product, err := productRepo.GetForUpdate(input.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		if input.ExpectedPreviousStock != nil && *input.ExpectedPreviousStock != product.Stock {
			return domain.ErrConflict
		}

		resulting, err := invdomain.ApplyEffect(product.Stock, input.Type, input.Quantity)
		if err != nil {
			return err
		}

		mov := &entity.StockMovement{
			ID:              uuid.New().String(),
			ProductID:       input.ProductID,
			Type:            input.Type,
			Quantity:        input.Quantity,
			ReferenceNumber: input.Reference,
			Reason:          input.Reason,
			UserID:          input.UserID,
			PurchaseOrderID: input.PurchaseOrderID,
			PreviousStock:   product.Stock,
			ResultingStock:  resulting,
			CreatedAt:       now,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		if err := productRepo.UpdateStock(input.ProductID, resulting); err != nil {
			return err
		}
		created = mov
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Reevaluación de alertas post-commit: el movimiento ya es definitivo,
	// un fallo aquí no lo revierte
	if uc.rechecker != nil {
		if _, err := uc.rechecker.RecheckProduct(ctx, input.ProductID); err != nil {
			uc.log.Error().Err(err).
				Str("product_id", input.ProductID).
				Msg("fallo reevaluando alertas tras movimiento")
		}
	}

	return created, nil
}

// RegisterFromRequest adapta el request HTTP a RegisterMovement.
func (uc *RegisterMovementUseCase) RegisterFromRequest(ctx context.Context, userID string, in dto.RegisterMovementRequest) (*entity.StockMovement, error) {
	return uc.RegisterMovement(ctx, MovementInput{
		ProductID:             in.ProductID,
		UserID:                userID,
		Type:                  in.Type,
		Quantity:              in.Quantity,
		Reason:                in.Reason,
		Reference:             in.Reference,
		ExpectedPreviousStock: in.ExpectedPreviousStock,
	})
}

// GetKardex devuelve el kardex de un producto (movimientos en orden
// cronológico descendente) junto con su stock actual.
func (uc *RegisterMovementUseCase) GetKardex(ctx context.Context, productID string, from, to *time.Time, limit, offset int) (*entity.Product, []*entity.StockMovement, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, nil, err
	}
	if product == nil {
		return nil, nil, domain.ErrNotFound
	}
	movements, err := uc.movRepo.ListByProduct(productID, from, to, limit, offset)
	if err != nil {
		return nil, nil, err
	}
	return product, movements, nil
}

// ListMovements devuelve movimientos de todo el inventario con filtros.
func (uc *RegisterMovementUseCase) ListMovements(ctx context.Context, filter repository.MovementFilter, limit, offset int) ([]*entity.StockMovement, error) {
	return uc.movRepo.List(filter, limit, offset)
}
