package service

import (
	"context"

	"github.com/oceanshop/storefront/internal/domain"
	"github.com/oceanshop/storefront/internal/dto"
)

type CatalogService interface {
	GetProducts(ctx context.Context, category string) (data []domain.Product, err error)
	GetProductDetails(ctx context.Context, id string) (data dto.ProductDetailsResponse, err error)
	GetCategories(ctx context.Context) (data []domain.Category, err error)
}

type CartService interface {
	GetCart(ctx context.Context) (resp dto.CartResponse, err error)
	GetCartLinesForProduct(ctx context.Context, productID string) (data []domain.CartLine, err error)
	AddLine(ctx context.Context, user *domain.User, req dto.AddCartLineRequest) (resp dto.CartResponse, err error)
	UpdateQuantity(ctx context.Context, lineID string, req dto.UpdateQuantityRequest) (resp dto.CartResponse, err error)
	RemoveLine(ctx context.Context, lineID string) (resp dto.CartResponse, err error)
	GetCartCount(ctx context.Context) (count int, err error)
	RefreshCartCount()
}

type CheckoutService interface {
	Checkout(ctx context.Context, user *domain.User, req dto.CheckoutRequest) (resp dto.CheckoutResponse, err error)
}

type ReviewService interface {
	GetReviews(ctx context.Context, productID string) (resp dto.ReviewListResponse, err error)
	AddReview(ctx context.Context, user *domain.User, req dto.ReviewRequest) (resp dto.ReviewListResponse, err error)
}

type UserService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (resp dto.LoginResponse, err error)
	Login(ctx context.Context, req dto.LoginRequest) (resp dto.LoginResponse, err error)
	FederatedLogin(ctx context.Context, req dto.FederatedLoginRequest) (resp dto.LoginResponse, err error)
	UpdateProfile(ctx context.Context, user *domain.User, req dto.UpdateProfileRequest) (resp dto.UserResponse, err error)
	Logout(ctx context.Context, user *domain.User) (err error)
}
