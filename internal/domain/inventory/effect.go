package inventory

import (
	"github.com/jhoicas/Kardex-api/internal/domain"
	"github.com/jhoicas/Kardex-api/internal/domain/entity"
)

// SignedEffect calcula el efecto con signo de un movimiento sobre el stock
// (servicio de dominio). Reglas:
//
//	entry, return  → +quantity (quantity debe ser > 0)
//	exit, write_off → -quantity (quantity debe ser > 0)
//	adjustment     → quantity tal cual, con signo (quantity debe ser ≠ 0)
//
// Para adjustment la cantidad es un DELTA con signo, no un valor absoluto
// de stock destino. Ver DESIGN.md (resolución de pregunta abierta).
func SignedEffect(movementType string, quantity int) (int, error) {
	switch movementType {
	case entity.MovementTypeEntry, entity.MovementTypeReturn:
		if quantity <= 0 {
			return 0, domain.ErrInvalidInput
		}
		return quantity, nil
	case entity.MovementTypeExit, entity.MovementTypeWriteOff:
		if quantity <= 0 {
			return 0, domain.ErrInvalidInput
		}
		return -quantity, nil
	case entity.MovementTypeAdjustment:
		if quantity == 0 {
			return 0, domain.ErrInvalidInput
		}
		return quantity, nil
	default:
		return 0, domain.ErrInvalidInput
	}
}

// ApplyEffect calcula el stock resultante de aplicar un movimiento.
// Devuelve ErrInsufficientStock si el resultado sería negativo: el sistema
// no admite backorders, el stock nunca baja de cero.
func ApplyEffect(previousStock int, movementType string, quantity int) (int, error) {
	effect, err := SignedEffect(movementType, quantity)
	if err != nil {
		return 0, err
	}
	resulting := previousStock + effect
	if resulting < 0 {
		return 0, domain.ErrInsufficientStock
	}
	return resulting, nil
}
