package dto

import "github.com/oceanshop/storefront/internal/domain"

type ProductDetailsResponse struct {
	Product domain.Product   `json:"product"`
	Related []domain.Product `json:"related"`
}
