package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Kardex-api/internal/domain/entity"
)

func TestAllowed_AdminPuedeTodo(t *testing.T) {
	ops := []Operation{
		OpManageCatalog, OpRegisterMovement, OpManageOrders,
		OpResolveAlert, OpRetryNotifications, OpGenerateForecast, OpRead,
	}
	for _, op := range ops {
		assert.True(t, Allowed(entity.RoleAdmin, op), "admin debe poder %s", op)
	}
}

func TestAllowed_BodegueroOperaInventarioPeroNoMaestros(t *testing.T) {
	assert.True(t, Allowed(entity.RoleBodeguero, OpRegisterMovement))
	assert.True(t, Allowed(entity.RoleBodeguero, OpManageOrders))
	assert.True(t, Allowed(entity.RoleBodeguero, OpGenerateForecast))
	assert.True(t, Allowed(entity.RoleBodeguero, OpRead))

	assert.False(t, Allowed(entity.RoleBodeguero, OpManageCatalog))
	assert.False(t, Allowed(entity.RoleBodeguero, OpResolveAlert))
	assert.False(t, Allowed(entity.RoleBodeguero, OpRetryNotifications))
}

func TestAllowed_VendedorSoloMueveYConsulta(t *testing.T) {
	assert.True(t, Allowed(entity.RoleVendedor, OpRegisterMovement))
	assert.True(t, Allowed(entity.RoleVendedor, OpRead))

	assert.False(t, Allowed(entity.RoleVendedor, OpManageCatalog))
	assert.False(t, Allowed(entity.RoleVendedor, OpManageOrders))
	assert.False(t, Allowed(entity.RoleVendedor, OpGenerateForecast))
}

func TestAllowed_RolDesconocidoSeNiega(t *testing.T) {
	assert.False(t, Allowed("auditor", OpRead))
	assert.False(t, Allowed("", OpRegisterMovement))
}
