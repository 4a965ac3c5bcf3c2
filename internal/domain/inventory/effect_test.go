package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Kardex-api/internal/domain"
	"github.com/jhoicas/Kardex-api/internal/domain/entity"
)

// ─── SignedEffect ───────────────────────────────────────────────────────────

func TestSignedEffect_EntradaSumaStock(t *testing.T) {
	effect, err := SignedEffect(entity.MovementTypeEntry, 10)
	require.NoError(t, err)
	assert.Equal(t, 10, effect)
}

func TestSignedEffect_DevolucionSumaStock(t *testing.T) {
	effect, err := SignedEffect(entity.MovementTypeReturn, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, effect)
}

func TestSignedEffect_SalidaRestaStock(t *testing.T) {
	effect, err := SignedEffect(entity.MovementTypeExit, 7)
	require.NoError(t, err)
	assert.Equal(t, -7, effect)
}

func TestSignedEffect_BajaRestaStock(t *testing.T) {
	effect, err := SignedEffect(entity.MovementTypeWriteOff, 2)
	require.NoError(t, err)
	assert.Equal(t, -2, effect)
}

func TestSignedEffect_AjusteConservaSigno(t *testing.T) {
	effect, err := SignedEffect(entity.MovementTypeAdjustment, -5)
	require.NoError(t, err)
	assert.Equal(t, -5, effect)

	effect, err = SignedEffect(entity.MovementTypeAdjustment, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, effect)
}

func TestSignedEffect_CantidadInvalida(t *testing.T) {
	casos := []struct {
		tipo     string
		cantidad int
	}{
		{entity.MovementTypeEntry, 0},
		{entity.MovementTypeEntry, -1},
		{entity.MovementTypeExit, 0},
		{entity.MovementTypeExit, -4},
		{entity.MovementTypeReturn, -2},
		{entity.MovementTypeWriteOff, 0},
		{entity.MovementTypeAdjustment, 0},
	}
	for _, c := range casos {
		_, err := SignedEffect(c.tipo, c.cantidad)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "tipo=%s cantidad=%d", c.tipo, c.cantidad)
	}
}

func TestSignedEffect_TipoDesconocido(t *testing.T) {
	_, err := SignedEffect("transfer", 1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ─── ApplyEffect ────────────────────────────────────────────────────────────

func TestApplyEffect_CalculaStockResultante(t *testing.T) {
	resulting, err := ApplyEffect(10, entity.MovementTypeExit, 4)
	require.NoError(t, err)
	assert.Equal(t, 6, resulting)
}

func TestApplyEffect_SalidaExactaDejaStockEnCero(t *testing.T) {
	resulting, err := ApplyEffect(5, entity.MovementTypeExit, 5)
	require.NoError(t, err)
	assert.Equal(t, 0, resulting)
}

func TestApplyEffect_StockInsuficiente(t *testing.T) {
	_, err := ApplyEffect(3, entity.MovementTypeExit, 4)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestApplyEffect_AjusteNegativoNoPuedeDejarStockNegativo(t *testing.T) {
	_, err := ApplyEffect(2, entity.MovementTypeAdjustment, -3)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}
