package dto

import "github.com/oceanshop/storefront/internal/domain"

type CheckoutResponse struct {
	Order domain.Order      `json:"order"`
	Cart  []domain.CartLine `json:"cart"`
}
