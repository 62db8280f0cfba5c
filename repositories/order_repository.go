package repositories

import (
	"context"
	"fmt"
	"time"

	"mmoss/config"
	"mmoss/models"
)

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// CommitOrder turns a priced draft into a durable order. The whole
// commit runs in one transaction: product rows are locked, stock is
// re-checked line by line (the cart never reserved any), the balance
// debit is guarded against overdraft, and the order with its items
// is written. Any failure rolls the whole thing back, leaving stock,
// balance, and cart untouched.
func (r *OrderRepository) CommitOrder(ctx context.Context, order *models.Order) error {
	tx, err := config.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	now := time.Now()

	for i := range order.Items {
		item := &order.Items[i]

		var stock int
		err := tx.QueryRow(ctx,
			`SELECT stock FROM products WHERE id = $1 FOR UPDATE`, item.ProductID).Scan(&stock)
		if err != nil {
			return models.ErrInventoryChanged
		}
		if stock < item.Quantity {
			return models.ErrInventoryChanged
		}

		_, err = tx.Exec(ctx,
			`UPDATE products SET stock = stock - $1, updated_at = $2 WHERE id = $3`,
			item.Quantity, now, item.ProductID)
		if err != nil {
			return err
		}
	}

	tag, err := tx.Exec(ctx,
		`UPDATE users SET balance = balance - $1, updated_at = $2 WHERE id = $3 AND balance >= $1`,
		order.Total, now, order.UserID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrInsufficientFunds
	}

	err = tx.QueryRow(ctx,
		`INSERT INTO orders (order_number, user_id, subtotal, discount_kind, discount_amount, promo_code,
			delivery_fee, total, fulfillment, delivery_address, pickup_store_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at`,
		order.OrderNumber, order.UserID, order.Subtotal, order.DiscountKind, order.DiscountAmount,
		order.PromoCode, order.DeliveryFee, order.Total, order.Fulfillment,
		order.DeliveryAddress, order.PickupStoreID, order.Status, now,
	).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		return err
	}

	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID
		err = tx.QueryRow(ctx,
			`INSERT INTO order_items (order_id, product_id, product_name, quantity, unit_price, line_total)
			VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
			order.ID, item.ProductID, item.ProductName, item.Quantity, item.UnitPrice, item.LineTotal,
		).Scan(&item.ID)
		if err != nil {
			return err
		}
	}

	if order.Fulfillment == models.FulfillmentPickup {
		_, err = tx.Exec(ctx,
			`UPDATE users SET has_pickup_order = true, updated_at = $1 WHERE id = $2`, now, order.UserID)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *OrderRepository) GetOrder(ctx context.Context, id int) (*models.Order, error) {
	query := `SELECT id, order_number, user_id, subtotal, discount_kind, discount_amount, promo_code,
		delivery_fee, total, fulfillment, delivery_address, pickup_store_id, status, created_at
		FROM orders WHERE id = $1`

	var o models.Order
	err := config.DB.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.OrderNumber, &o.UserID, &o.Subtotal, &o.DiscountKind, &o.DiscountAmount,
		&o.PromoCode, &o.DeliveryFee, &o.Total, &o.Fulfillment,
		&o.DeliveryAddress, &o.PickupStoreID, &o.Status, &o.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	items, err := r.getOrderItems(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items

	return &o, nil
}

func (r *OrderRepository) getOrderItems(ctx context.Context, orderID int) ([]models.OrderItem, error) {
	rows, err := config.DB.Query(ctx,
		`SELECT id, order_id, product_id, product_name, quantity, unit_price, line_total
		FROM order_items WHERE order_id = $1 ORDER BY id`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.OrderItem{}
	for rows.Next() {
		var it models.OrderItem
		err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.ProductName, &it.Quantity, &it.UnitPrice, &it.LineTotal)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}

// ListOrders returns orders newest first, optionally filtered by
// user and status, with the total match count.
func (r *OrderRepository) ListOrders(ctx context.Context, userID int, status string, page, limit int) ([]models.Order, int, error) {
	offset := (page - 1) * limit

	where := ""
	args := []interface{}{}
	argIndex := 1

	if userID > 0 {
		where = " WHERE user_id = $1"
		args = append(args, userID)
		argIndex++
	}
	if status != "" {
		if where == "" {
			where = " WHERE"
		} else {
			where += " AND"
		}
		where += fmt.Sprintf(" status = $%d", argIndex)
		args = append(args, status)
		argIndex++
	}

	var total int
	if err := config.DB.QueryRow(ctx, "SELECT COUNT(*) FROM orders"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`SELECT id, order_number, user_id, subtotal, discount_kind, discount_amount, promo_code,
		delivery_fee, total, fulfillment, delivery_address, pickup_store_id, status, created_at
		FROM orders`+where+` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, argIndex, argIndex+1)
	args = append(args, limit, offset)

	rows, err := config.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var o models.Order
		err := rows.Scan(
			&o.ID, &o.OrderNumber, &o.UserID, &o.Subtotal, &o.DiscountKind, &o.DiscountAmount,
			&o.PromoCode, &o.DeliveryFee, &o.Total, &o.Fulfillment,
			&o.DeliveryAddress, &o.PickupStoreID, &o.Status, &o.CreatedAt,
		)
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, o)
	}
	return orders, total, nil
}

// UpdateStatus moves an order forward. Backward moves are rejected
// before touching the row.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id int, status string) error {
	var current string
	err := config.DB.QueryRow(ctx, `SELECT status FROM orders WHERE id = $1`, id).Scan(&current)
	if err != nil {
		return models.ErrNotFound
	}

	if !models.CanTransitionOrderStatus(current, status) {
		return models.ErrInvalidStatusTransition
	}

	_, err = config.DB.Exec(ctx, `UPDATE orders SET status = $1 WHERE id = $2`, status, id)
	return err
}

// DashboardStats is the admin landing summary.
type DashboardStats struct {
	TotalOrders   int   `json:"total_orders"`
	TotalRevenue  int64 `json:"total_revenue"`
	TotalUsers    int   `json:"total_users"`
	TotalProducts int   `json:"total_products"`
	PendingOrders int   `json:"pending_orders"`
}

func (r *OrderRepository) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	var stats DashboardStats

	err := config.DB.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM orders),
			(SELECT COALESCE(SUM(total), 0) FROM orders),
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM products WHERE is_active = true),
			(SELECT COUNT(*) FROM orders WHERE status = 'pending')
	`).Scan(&stats.TotalOrders, &stats.TotalRevenue, &stats.TotalUsers, &stats.TotalProducts, &stats.PendingOrders)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
