// Package reports genera los reportes descargables del inventario.
package reports

import (
	"context"
	"time"

	"github.com/jhoicas/Kardex-api/internal/domain"
	"github.com/jhoicas/Kardex-api/internal/domain/entity"
	"github.com/jhoicas/Kardex-api/internal/domain/repository"
)

// Cuántos movimientos entran como máximo en el reporte.
const kardexReportLimit = 500

// KardexPDFGenerator define el puerto hacia el generador de PDF.
type KardexPDFGenerator interface {
	GenerateKardexPDF(
		ctx context.Context,
		product *entity.Product,
		movements []*entity.StockMovement,
		from, to *time.Time,
	) ([]byte, error)
}

// UseCase genera el reporte kardex de un producto en PDF.
type UseCase struct {
	productRepo repository.ProductRepository
	movRepo     repository.StockMovementRepository
	generator   KardexPDFGenerator
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	productRepo repository.ProductRepository,
	movRepo repository.StockMovementRepository,
	generator KardexPDFGenerator,
) *UseCase {
	return &UseCase{productRepo: productRepo, movRepo: movRepo, generator: generator}
}

// KardexPDF genera el kardex del producto como PDF, con los movimientos del
// rango pedido en orden cronológico descendente.
func (uc *UseCase) KardexPDF(ctx context.Context, productID string, from, to *time.Time) ([]byte, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	movements, err := uc.movRepo.ListByProduct(productID, from, to, kardexReportLimit, 0)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateKardexPDF(ctx, product, movements, from, to)
}
