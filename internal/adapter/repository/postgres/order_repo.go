package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/oyedot/vendorhub/internal/domain"
	"github.com/oyedot/vendorhub/internal/usecase"
)

// OrderRepository implements usecase.OrderRepository. Orders span
// multiple vendors, so every vendor-scoped query joins order_items and
// aggregates the vendor's line-item share.
type OrderRepository struct {
	pool querier
}

// NewOrderRepository creates a new OrderRepository.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

const vendorOrderColumns = `
o.id, o.customer_id, o.total, o.currency, o.payment_status, o.fulfillment_status,
o.delivered_at, o.created_at, o.updated_at, COALESCE(SUM(i.subtotal), 0) AS items_total`

const vendorOrderGroupBy = `
GROUP BY o.id, o.customer_id, o.total, o.currency, o.payment_status, o.fulfillment_status,
         o.delivered_at, o.created_at, o.updated_at`

const vendorOrderQuery = `
SELECT ` + vendorOrderColumns + `
FROM orders o
JOIN order_items i ON i.order_id = o.id
WHERE o.id = $1 AND i.vendor_id = $2` + vendorOrderGroupBy

// VendorOrder retrieves one order together with the vendor's item total.
// Orders with no line items for the vendor are reported as not found.
func (r *OrderRepository) VendorOrder(ctx context.Context, orderID, vendorID string) (*domain.VendorOrder, error) {
	row := r.pool.QueryRow(ctx, vendorOrderQuery, orderID, vendorID)

	vo, err := scanVendorOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}

		return nil, err
	}

	return vo, nil
}

const itemsByOrderQuery = `
SELECT id, order_id, product_id, vendor_id, name, quantity, unit_price, subtotal
FROM order_items
WHERE order_id = $1 AND vendor_id = $2
ORDER BY id`

// ItemsByOrder lists the vendor's line items on one order.
func (r *OrderRepository) ItemsByOrder(ctx context.Context, orderID, vendorID string) ([]domain.OrderItem, error) {
	rows, err := r.pool.Query(ctx, itemsByOrderQuery, orderID, vendorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectItems(rows)
}

const listByVendorQuery = `
SELECT ` + vendorOrderColumns + `
FROM orders o
JOIN order_items i ON i.order_id = o.id
WHERE i.vendor_id = $1` + vendorOrderGroupBy + `
ORDER BY o.created_at DESC
LIMIT $2 OFFSET $3`

// ListByVendor lists the vendor's orders, newest first.
func (r *OrderRepository) ListByVendor(ctx context.Context, vendorID string, limit, offset int) ([]domain.VendorOrder, error) {
	rows, err := r.pool.Query(ctx, listByVendorQuery, vendorID, int32(limit), int32(offset))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectVendorOrders(rows)
}

const listByVendorStatusQuery = `
SELECT ` + vendorOrderColumns + `
FROM orders o
JOIN order_items i ON i.order_id = o.id
WHERE i.vendor_id = $1 AND o.payment_status = $2` + vendorOrderGroupBy + `
ORDER BY o.created_at DESC`

// ListCompletedByVendor lists the vendor's paid orders.
func (r *OrderRepository) ListCompletedByVendor(ctx context.Context, vendorID string) ([]domain.VendorOrder, error) {
	return r.listByVendorStatus(ctx, vendorID, domain.PaymentCompleted)
}

// ListRefundedByVendor lists the vendor's refunded orders.
func (r *OrderRepository) ListRefundedByVendor(ctx context.Context, vendorID string) ([]domain.VendorOrder, error) {
	return r.listByVendorStatus(ctx, vendorID, domain.PaymentRefunded)
}

func (r *OrderRepository) listByVendorStatus(ctx context.Context, vendorID string, status domain.PaymentStatus) ([]domain.VendorOrder, error) {
	rows, err := r.pool.Query(ctx, listByVendorStatusQuery, vendorID, string(status))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectVendorOrders(rows)
}

const listPaidInWindowQuery = `
SELECT o.id, o.customer_id, COALESCE(SUM(i.subtotal), 0) AS total, o.currency,
       o.payment_status, o.fulfillment_status, o.delivered_at, o.created_at, o.updated_at
FROM orders o
JOIN order_items i ON i.order_id = o.id
WHERE i.vendor_id = $1 AND o.payment_status = 'completed'
  AND o.created_at >= $2 AND o.created_at < $3
GROUP BY o.id, o.customer_id, o.currency, o.payment_status, o.fulfillment_status,
         o.delivered_at, o.created_at, o.updated_at
ORDER BY o.created_at DESC`

// ListPaidInWindow lists paid orders in [from, to). Total carries the
// vendor's line-item share, not the whole-order amount.
func (r *OrderRepository) ListPaidInWindow(ctx context.Context, vendorID string, from, to time.Time) ([]domain.Order, error) {
	rows, err := r.pool.Query(ctx, listPaidInWindowQuery, vendorID, timeToPgTimestamptz(from), timeToPgTimestamptz(to))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}

	return orders, rows.Err()
}

const listCompletedInWindowQuery = `
SELECT ` + vendorOrderColumns + `
FROM orders o
JOIN order_items i ON i.order_id = o.id
WHERE i.vendor_id = $1 AND o.payment_status = 'completed'
  AND o.created_at >= $2 AND o.created_at < $3` + vendorOrderGroupBy + `
ORDER BY o.created_at DESC`

// ListCompletedInWindow lists paid vendor orders in [from, to).
func (r *OrderRepository) ListCompletedInWindow(ctx context.Context, vendorID string, from, to time.Time) ([]domain.VendorOrder, error) {
	rows, err := r.pool.Query(ctx, listCompletedInWindowQuery, vendorID, timeToPgTimestamptz(from), timeToPgTimestamptz(to))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectVendorOrders(rows)
}

const itemsInWindowQuery = `
SELECT i.id, i.order_id, i.product_id, i.vendor_id, i.name, i.quantity, i.unit_price, i.subtotal
FROM order_items i
JOIN orders o ON o.id = i.order_id
WHERE i.vendor_id = $1 AND o.created_at >= $2 AND o.created_at < $3
ORDER BY o.created_at DESC, i.id`

// ItemsInWindow lists the vendor's line items on orders created in [from, to).
func (r *OrderRepository) ItemsInWindow(ctx context.Context, vendorID string, from, to time.Time) ([]domain.OrderItem, error) {
	rows, err := r.pool.Query(ctx, itemsInWindowQuery, vendorID, timeToPgTimestamptz(from), timeToPgTimestamptz(to))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectItems(rows)
}

const lifetimeEarningsQuery = `
SELECT COALESCE(SUM(i.subtotal), 0)
FROM order_items i
JOIN orders o ON o.id = i.order_id
WHERE i.vendor_id = $1 AND o.payment_status = 'completed'`

// LifetimeEarnings sums the vendor's line-item share of all paid orders.
func (r *OrderRepository) LifetimeEarnings(ctx context.Context, vendorID string) (decimal.Decimal, error) {
	var total pgtype.Numeric
	if err := r.pool.QueryRow(ctx, lifetimeEarningsQuery, vendorID).Scan(&total); err != nil {
		return decimal.Zero, err
	}

	return numericToDecimal(total), nil
}

const updateFulfillmentQuery = `
UPDATE orders
SET fulfillment_status = $2, delivered_at = $3, updated_at = $4
WHERE id = $1`

// UpdateFulfillmentTx updates an order's fulfillment status inside a transaction.
func (r *OrderRepository) UpdateFulfillmentTx(ctx context.Context, tx usecase.Transaction, orderID string, status domain.FulfillmentStatus, deliveredAt *time.Time, updatedAt time.Time) error {
	pgxTx := tx.(*Tx).PgxTx()

	tag, err := pgxTx.Exec(ctx, updateFulfillmentQuery,
		orderID,
		string(status),
		timePtrToPgTimestamptz(deliveredAt),
		timeToPgTimestamptz(updatedAt),
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrOrderNotFound
	}

	return nil
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var (
		o             domain.Order
		total         pgtype.Numeric
		paymentStatus string
		fulfillment   string
		deliveredAt   pgtype.Timestamptz
		createdAt     pgtype.Timestamptz
		updatedAt     pgtype.Timestamptz
	)

	err := row.Scan(&o.ID, &o.CustomerID, &total, &o.Currency, &paymentStatus, &fulfillment,
		&deliveredAt, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	o.Total = numericToDecimal(total)
	o.PaymentStatus = domain.PaymentStatus(paymentStatus)
	o.FulfillmentStatus = domain.FulfillmentStatus(fulfillment)
	o.DeliveredAt = pgTimestamptzToTimePtr(deliveredAt)
	o.CreatedAt = createdAt.Time
	o.UpdatedAt = updatedAt.Time

	return &o, nil
}

func scanVendorOrder(row pgx.Row) (*domain.VendorOrder, error) {
	var (
		vo            domain.VendorOrder
		total         pgtype.Numeric
		itemsTotal    pgtype.Numeric
		paymentStatus string
		fulfillment   string
		deliveredAt   pgtype.Timestamptz
		createdAt     pgtype.Timestamptz
		updatedAt     pgtype.Timestamptz
	)

	err := row.Scan(&vo.Order.ID, &vo.Order.CustomerID, &total, &vo.Order.Currency,
		&paymentStatus, &fulfillment, &deliveredAt, &createdAt, &updatedAt, &itemsTotal)
	if err != nil {
		return nil, err
	}

	vo.Order.Total = numericToDecimal(total)
	vo.Order.PaymentStatus = domain.PaymentStatus(paymentStatus)
	vo.Order.FulfillmentStatus = domain.FulfillmentStatus(fulfillment)
	vo.Order.DeliveredAt = pgTimestamptzToTimePtr(deliveredAt)
	vo.Order.CreatedAt = createdAt.Time
	vo.Order.UpdatedAt = updatedAt.Time
	vo.ItemsTotal = numericToDecimal(itemsTotal)

	return &vo, nil
}

func collectVendorOrders(rows pgx.Rows) ([]domain.VendorOrder, error) {
	orders := make([]domain.VendorOrder, 0)
	for rows.Next() {
		vo, err := scanVendorOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *vo)
	}

	return orders, rows.Err()
}

func collectItems(rows pgx.Rows) ([]domain.OrderItem, error) {
	items := make([]domain.OrderItem, 0)
	for rows.Next() {
		var (
			item      domain.OrderItem
			unitPrice pgtype.Numeric
			subtotal  pgtype.Numeric
		)
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.VendorID,
			&item.Name, &item.Quantity, &unitPrice, &subtotal); err != nil {
			return nil, err
		}
		item.UnitPrice = numericToDecimal(unitPrice)
		item.Subtotal = numericToDecimal(subtotal)
		items = append(items, item)
	}

	return items, rows.Err()
}
