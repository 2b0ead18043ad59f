package domain

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusProcessed OrderStatus = "Processed"
	OrderStatusCompleted OrderStatus = "Completed"
)

// Next cycles Pending -> Processed -> Completed -> Pending. Unknown values
// reset to Pending.
func (s OrderStatus) Next() OrderStatus {
	switch s {
	case OrderStatusPending:
		return OrderStatusProcessed
	case OrderStatusProcessed:
		return OrderStatusCompleted
	default:
		return OrderStatusPending
	}
}

// OrderItem snapshots the product name and carries the quantity the customer
// asked for. Notes holds the dressage annotation when it applies.
type OrderItem struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Notes     string `json:"notes,omitempty"`
}

// Order is immutable after submission except for Status. TotalPrice is the
// sum captured at submission time and is never recomputed from the current
// catalog.
type Order struct {
	ID           string      `json:"id"`
	CustomerName string      `json:"customerName"`
	Phone        string      `json:"phone"`
	Items        []OrderItem `json:"items"`
	TotalPrice   float64     `json:"totalPrice"`
	Notes        string      `json:"notes"`
	Status       OrderStatus `json:"status"`
	Date         string      `json:"date"`
}
