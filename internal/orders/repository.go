package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"pizza-store/internal/database"
	"pizza-store/internal/domain"
)

type Repository interface {
	Insert(ctx context.Context, o domain.Order) (int64, error)
	HistoryRows(ctx context.Context, login string, limit int) ([]OrderRow, error)
	Get(ctx context.Context, orderID int64) (domain.Order, error)
	UpdateStatus(ctx context.Context, orderID int64, status domain.OrderStatus) error
}

type repo struct {
	db *database.Conn
}

func NewRepository(db *database.Conn) Repository {
	return &repo{db: db}
}

// Insert writes the order and all of its lines in one transaction, so
// a failure partway never leaves an order without lines. The id comes
// from the identity column, not a max+1 read.
func (r *repo) Insert(ctx context.Context, o domain.Order) (int64, error) {
	var orderID int64
	err := r.db.InTx(ctx, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO orders (login, store_id, total_price, order_timestamp, order_status)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING order_id
		`, o.Login, o.StoreID, o.Total, o.Timestamp, string(o.Status)).Scan(&orderID)
		if err != nil {
			return fmt.Errorf("failed to insert order: %w", database.MapConstraint(err))
		}
		for _, ln := range o.Lines {
			_, err = tx.Exec(ctx, `
				INSERT INTO order_items (order_id, item_name, quantity)
				VALUES ($1, $2, $3)
			`, orderID, ln.ItemName, ln.Quantity)
			if err != nil {
				return fmt.Errorf("failed to insert order item %s: %w", ln.ItemName, database.MapConstraint(err))
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return orderID, nil
}

// HistoryRows returns the join rows for an account's orders, newest
// order first, lines contiguous per order. limit restricts the number
// of orders, not rows; limit <= 0 means no cap.
func (r *repo) HistoryRows(ctx context.Context, login string, limit int) ([]OrderRow, error) {
	sql := `
		SELECT o.order_id, o.order_timestamp, o.total_price, o.order_status,
		       COALESCE(oi.item_name, ''), COALESCE(oi.quantity, 0)
		FROM (
			SELECT order_id, order_timestamp, total_price, order_status
			FROM orders WHERE login = $1
			ORDER BY order_id DESC
	`
	args := []any{login}
	if limit > 0 {
		args = append(args, limit)
		sql += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	sql += `
		) o
		LEFT JOIN order_items oi ON oi.order_id = o.order_id
		ORDER BY o.order_id DESC, oi.item_name
	`

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query order history: %w", err)
	}
	defer rows.Close()

	var out []OrderRow
	for rows.Next() {
		var row OrderRow
		var status string
		if err := rows.Scan(&row.OrderID, &row.Timestamp, &row.Total, &status, &row.ItemName, &row.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		row.Status = domain.OrderStatus(status)
		out = append(out, row)
	}
	return out, rows.Err()
}

func (r *repo) Get(ctx context.Context, orderID int64) (domain.Order, error) {
	var o domain.Order
	var status string
	err := r.db.QueryRow(ctx, `
		SELECT order_id, login, store_id, total_price, order_timestamp, order_status
		FROM orders WHERE order_id = $1
	`, orderID).Scan(&o.ID, &o.Login, &o.StoreID, &o.Total, &o.Timestamp, &status)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Order{}, fmt.Errorf("order %d: %w", orderID, domain.ErrNotFound)
	}
	if err != nil {
		return domain.Order{}, fmt.Errorf("failed to get order: %w", err)
	}
	o.Status = domain.OrderStatus(status)

	rows, err := r.db.Query(ctx, `
		SELECT item_name, quantity FROM order_items
		WHERE order_id = $1 ORDER BY item_name
	`, orderID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("failed to get order items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var ln domain.OrderLine
		if err := rows.Scan(&ln.ItemName, &ln.Quantity); err != nil {
			return domain.Order{}, fmt.Errorf("failed to scan order item: %w", err)
		}
		o.Lines = append(o.Lines, ln)
	}
	return o, rows.Err()
}

func (r *repo) UpdateStatus(ctx context.Context, orderID int64, status domain.OrderStatus) error {
	n, err := r.db.ExecRows(ctx, `
		UPDATE orders SET order_status = $2 WHERE order_id = $1
	`, orderID, string(status))
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("order %d: %w", orderID, domain.ErrNotFound)
	}
	return nil
}
