package inventory

import (
	"context"

	"github.com/jhoicas/Kardex-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el asiento del kardex y la
// actualización del stock del producto se confirmen o reviertan juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// ProductRechecker reevalúa las alertas de un producto después de que su
// stock cambió. Lo implementa el use case de alertas; el registro de
// movimientos lo invoca después del commit.
type ProductRechecker interface {
	RecheckProduct(ctx context.Context, productID string) (created int, err error)
}
