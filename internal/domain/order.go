package domain

const OrderStatusCompleted = "completed"

// Order is created once at checkout and never mutated. Items are the cart
// line snapshots exactly as they were when the order was placed.
type Order struct {
	ID     string     `json:"id,omitempty"`
	UserID string     `json:"userId"`
	Items  []CartLine `json:"items"`
	Total  float64    `json:"total"`
	Date   string     `json:"date"`
	Status string     `json:"status"`
}
