package dto

import "github.com/oceanshop/storefront/internal/domain"

type ReviewListResponse struct {
	Reviews       []domain.Review `json:"reviews"`
	Count         int             `json:"count"`
	AverageRating float64         `json:"average_rating"`
}
