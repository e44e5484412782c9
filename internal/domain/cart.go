package domain

// CartLine is one persisted cart record. The id is assigned by the remote
// store on create; quantity is always >= 1 once stored.
type CartLine struct {
	ID        string  `json:"id,omitempty"`
	ProductID string  `json:"productId"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
}
