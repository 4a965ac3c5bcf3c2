package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Kardex-api/internal/domain/entity"
	"github.com/jhoicas/Kardex-api/internal/domain/repository"
)

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

const orderColumns = `
	id, order_number, supplier_id, status, total_amount,
	expected_delivery_date, received_date, COALESCE(notes, ''), created_by, created_at, updated_at`

// PurchaseOrderRepo implementación del puerto PurchaseOrderRepository sobre
// PostgreSQL. La cabecera y sus líneas se insertan juntas.
type PurchaseOrderRepo struct {
	q Querier
}

// NewPurchaseOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseOrderRepository(q Querier) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{q: q}
}

func scanOrder(row pgx.Row) (*entity.PurchaseOrder, error) {
	var o entity.PurchaseOrder
	err := row.Scan(
		&o.ID, &o.OrderNumber, &o.SupplierID, &o.Status, &o.TotalAmount,
		&o.ExpectedDeliveryDate, &o.ReceivedDate, &o.Notes, &o.CreatedBy, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

// Create inserta la cabecera y las líneas de la orden.
func (r *PurchaseOrderRepo) Create(o *entity.PurchaseOrder) error {
	query := `
		INSERT INTO purchase_orders (id, order_number, supplier_id, status, total_amount,
			expected_delivery_date, received_date, notes, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		o.ID, o.OrderNumber, o.SupplierID, o.Status, o.TotalAmount,
		o.ExpectedDeliveryDate, o.ReceivedDate, nullable(o.Notes), o.CreatedBy, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert purchase order: %w", err)
	}
	for i := range o.Items {
		if err := r.insertItem(&o.Items[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *PurchaseOrderRepo) insertItem(it *entity.PurchaseOrderItem) error {
	query := `
		INSERT INTO purchase_order_items (id, purchase_order_id, product_id, quantity,
			unit_price, total_price, received_quantity, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		it.ID, it.PurchaseOrderID, it.ProductID, it.Quantity,
		it.UnitPrice, it.TotalPrice, it.ReceivedQuantity, it.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert purchase order item: %w", err)
	}
	return nil
}

// GetByID obtiene la orden con sus líneas cargadas.
func (r *PurchaseOrderRepo) GetByID(id string) (*entity.PurchaseOrder, error) {
	row := r.q.QueryRow(context.Background(),
		`SELECT `+orderColumns+` FROM purchase_orders WHERE id = $1`, id)
	o, err := scanOrder(row)
	if err != nil {
		return nil, fmt.Errorf("get purchase order: %w", err)
	}
	if o == nil {
		return nil, nil
	}
	items, err := r.listItems(id)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return o, nil
}

func (r *PurchaseOrderRepo) listItems(orderID string) ([]entity.PurchaseOrderItem, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, purchase_order_id, product_id, quantity, unit_price, total_price, received_quantity, created_at
		 FROM purchase_order_items WHERE purchase_order_id = $1 ORDER BY created_at`, orderID)
	if err != nil {
		return nil, fmt.Errorf("list purchase order items: %w", err)
	}
	defer rows.Close()
	var items []entity.PurchaseOrderItem
	for rows.Next() {
		var it entity.PurchaseOrderItem
		if err := rows.Scan(&it.ID, &it.PurchaseOrderID, &it.ProductID, &it.Quantity,
			&it.UnitPrice, &it.TotalPrice, &it.ReceivedQuantity, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan purchase order item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// Update persiste la cabecera y las cantidades recibidas de las líneas.
func (r *PurchaseOrderRepo) Update(o *entity.PurchaseOrder) error {
	query := `
		UPDATE purchase_orders SET status = $2, total_amount = $3, expected_delivery_date = $4,
			received_date = $5, notes = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		o.ID, o.Status, o.TotalAmount, o.ExpectedDeliveryDate,
		o.ReceivedDate, nullable(o.Notes), o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update purchase order: %w", err)
	}
	for i := range o.Items {
		it := &o.Items[i]
		_, err := r.q.Exec(context.Background(),
			`UPDATE purchase_order_items SET received_quantity = $2 WHERE id = $1`,
			it.ID, it.ReceivedQuantity)
		if err != nil {
			return fmt.Errorf("update purchase order item: %w", err)
		}
	}
	return nil
}

// AddItem inserta una línea nueva en una orden existente.
func (r *PurchaseOrderRepo) AddItem(it *entity.PurchaseOrderItem) error {
	return r.insertItem(it)
}

// UpdateItemReceived persiste la cantidad recibida de una sola línea.
func (r *PurchaseOrderRepo) UpdateItemReceived(itemID string, receivedQuantity int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE purchase_order_items SET received_quantity = $2 WHERE id = $1`,
		itemID, receivedQuantity)
	if err != nil {
		return fmt.Errorf("update purchase order item received: %w", err)
	}
	return nil
}

// UpdateStatus cambia solo el estado de la orden.
func (r *PurchaseOrderRepo) UpdateStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE purchase_orders SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update purchase order status: %w", err)
	}
	return nil
}

// List lista órdenes (sin líneas) con filtros y paginación.
func (r *PurchaseOrderRepo) List(status, supplierID string, limit, offset int) ([]*entity.PurchaseOrder, error) {
	query := `SELECT ` + orderColumns + ` FROM purchase_orders WHERE 1=1`
	args := []any{}
	if status != "" {
		args = append(args, status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if supplierID != "" {
		args = append(args, supplierID)
		query += fmt.Sprintf(" AND supplier_id = $%d", len(args))
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list purchase orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.PurchaseOrder
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan purchase order: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

// CountByStatus cuenta órdenes en un estado (widget del dashboard).
func (r *PurchaseOrderRepo) CountByStatus(status string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM purchase_orders WHERE status = $1`, status).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count purchase orders: %w", err)
	}
	return n, nil
}
