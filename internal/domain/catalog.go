package domain

// Product is owned by the remote store and immutable from our side.
// JSON tags are the remote store's wire shape.
type Product struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
