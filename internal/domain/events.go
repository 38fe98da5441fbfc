package domain

import "time"

type OrderLineMsg struct {
	ItemName string `json:"item_name"`
	Quantity int    `json:"quantity"`
}

type OrderPlacedEvent struct {
	OrderID    int64          `json:"order_id"`
	Login      string         `json:"login"`
	StoreID    int            `json:"store_id"`
	TotalPrice string         `json:"total_price"`
	Lines      []OrderLineMsg `json:"lines"`
	PlacedAt   time.Time      `json:"placed_at"`
}

type OrderStatusChangedEvent struct {
	OrderID   int64     `json:"order_id"`
	Status    string    `json:"status"`
	ChangedBy string    `json:"changed_by"`
	ChangedAt time.Time `json:"changed_at"`
}
