package domain

import "time"

// Routing keys for kitchen events on the order exchange.
const (
	EventOrderCreated      = "order.created"
	EventCookStatusChanged = "order.cook_status_changed"
	EventSharedToCook      = "order.shared_to_cook"
)

type OrderEvent struct {
	OrderID    string     `json:"orderId"`
	ReceiptNo  string     `json:"receiptNo,omitempty"`
	Name       string     `json:"name,omitempty"`
	CookStatus CookStatus `json:"cookStatus,omitempty"`
	OccurredAt time.Time  `json:"occurredAt"`
}
