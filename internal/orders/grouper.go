package orders

import (
	"time"

	"github.com/shopspring/decimal"

	"pizza-store/internal/domain"
)

// OrderRow is one flat row of the orders/order_items join. ItemName is
// empty when the LEFT JOIN found no lines for the order.
type OrderRow struct {
	OrderID   int64
	Timestamp time.Time
	Total     decimal.Decimal
	Status    domain.OrderStatus
	ItemName  string
	Quantity  int
}

// OrderGroup is one order with its line items collected.
type OrderGroup struct {
	OrderID   int64
	Timestamp time.Time
	Total     decimal.Decimal
	Status    domain.OrderStatus
	Lines     []domain.OrderLine
}

// GroupRows folds key-contiguous join rows into per-order groups in a
// single pass. Rows for one order must be adjacent; the caller's query
// guarantees that by sorting on order_id. Groups come out in the order
// their id first appears. Empty input yields nil.
func GroupRows(rows []OrderRow) []OrderGroup {
	var groups []OrderGroup
	for _, row := range rows {
		if len(groups) == 0 || groups[len(groups)-1].OrderID != row.OrderID {
			groups = append(groups, OrderGroup{
				OrderID:   row.OrderID,
				Timestamp: row.Timestamp,
				Total:     row.Total,
				Status:    row.Status,
			})
		}
		if row.ItemName == "" {
			continue
		}
		g := &groups[len(groups)-1]
		g.Lines = append(g.Lines, domain.OrderLine{ItemName: row.ItemName, Quantity: row.Quantity})
	}
	return groups
}
