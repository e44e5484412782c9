package repository

import (
	"context"

	"github.com/oceanshop/storefront/internal/domain"
)

type CatalogRepository interface {
	GetProducts(ctx context.Context) (data []domain.Product, err error)
	GetProductsByCategory(ctx context.Context, category string) (data []domain.Product, err error)
	GetProductByID(ctx context.Context, id string) (data domain.Product, err error)
	GetCategories(ctx context.Context) (data []domain.Category, err error)
}

type CartRepository interface {
	GetCartLines(ctx context.Context) (data []domain.CartLine, err error)
	GetCartLinesByProductID(ctx context.Context, productID string) (data []domain.CartLine, err error)
	AddCartLine(ctx context.Context, line domain.CartLine) (created domain.CartLine, err error)
	UpdateCartLineQuantity(ctx context.Context, id string, quantity int) (updated domain.CartLine, err error)
	DeleteCartLine(ctx context.Context, id string) (err error)
}

type OrderRepository interface {
	AddOrder(ctx context.Context, order domain.Order) (created domain.Order, err error)
}

type ReviewRepository interface {
	GetReviewsByProductID(ctx context.Context, productID string) (data []domain.Review, err error)
	AddReview(ctx context.Context, review domain.Review) (created domain.Review, err error)
}
