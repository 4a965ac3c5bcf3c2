package auth

import "github.com/jhoicas/Kardex-api/internal/domain/entity"

// Operation identifica una acción protegida del sistema para la política de
// autorización.
type Operation string

// Operaciones protegidas.
const (
	OpManageCatalog      Operation = "catalog.manage"      // crear/editar/borrar datos maestros
	OpRegisterMovement   Operation = "inventory.move"      // registrar movimientos de stock
	OpManageOrders       Operation = "orders.manage"       // crear y transicionar órdenes de compra
	OpResolveAlert       Operation = "alerts.resolve"      // resolver alertas
	OpRetryNotifications Operation = "notifications.retry" // reintentar notificaciones
	OpGenerateForecast   Operation = "forecast.generate"   // generar predicciones de demanda
	OpRead               Operation = "read"                // consultas (catálogo, kardex, dashboard)
)

// policy tabla de permisos por rol. Una operación ausente se niega.
var policy = map[string]map[Operation]bool{
	entity.RoleAdmin: {
		OpManageCatalog:      true,
		OpRegisterMovement:   true,
		OpManageOrders:       true,
		OpResolveAlert:       true,
		OpRetryNotifications: true,
		OpGenerateForecast:   true,
		OpRead:               true,
	},
	entity.RoleBodeguero: {
		OpRegisterMovement: true,
		OpManageOrders:     true,
		OpGenerateForecast: true,
		OpRead:             true,
	},
	entity.RoleVendedor: {
		OpRegisterMovement: true, // salidas por venta
		OpRead:             true,
	},
}

// Allowed decide si un rol puede ejecutar la operación. Es una función pura:
// la capa HTTP solo la consulta, nunca decide por su cuenta.
func Allowed(role string, op Operation) bool {
	return policy[role][op]
}
