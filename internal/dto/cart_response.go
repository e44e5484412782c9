package dto

import "github.com/oceanshop/storefront/internal/domain"

type CartResponse struct {
	Lines []domain.CartLine `json:"lines"`
	Total float64           `json:"total"`
}

type CartCountResponse struct {
	Count int `json:"count"`
}
