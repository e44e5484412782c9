package service

import (
	"context"
	"strconv"
	"time"

	"github.com/oceanshop/storefront/internal/domain"
	"github.com/oceanshop/storefront/internal/dto"
	"github.com/oceanshop/storefront/internal/infrastructure/cache"
	"github.com/oceanshop/storefront/internal/repository"
	"github.com/oceanshop/storefront/pkg/errs"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// CartServiceImpl keeps the displayed cart consistent with the remote store:
// there is no optimistic local mutation, every change goes through the store
// and the snapshot is rebuilt from a full re-fetch.
type CartServiceImpl struct {
	cartRepo    repository.CartRepository
	catalogRepo repository.CatalogRepository
	redis       *redis.Client
}

func CreateCartService(cartRepo repository.CartRepository, catalogRepo repository.CatalogRepository, redis *redis.Client) CartService {
	return &CartServiceImpl{
		cartRepo:    cartRepo,
		catalogRepo: catalogRepo,
		redis:       redis,
	}
}

func cartTotal(lines []domain.CartLine) float64 {
	var total float64
	for _, line := range lines {
		total += line.Price * float64(line.Quantity)
	}
	return total
}

func (s *CartServiceImpl) GetCart(ctx context.Context) (resp dto.CartResponse, err error) {
	lines, err := s.cartRepo.GetCartLines(ctx)
	if err != nil {
		return resp, err
	}

	resp.Lines = lines
	resp.Total = cartTotal(lines)

	return resp, nil
}

func (s *CartServiceImpl) GetCartLinesForProduct(ctx context.Context, productID string) (data []domain.CartLine, err error) {
	return s.cartRepo.GetCartLinesByProductID(ctx, productID)
}

// AddLine creates a new cart line with quantity 1. Adding a product that is
// already in the cart creates a second line; callers wanting
// increment-in-place look the line up first and call UpdateQuantity.
func (s *CartServiceImpl) AddLine(ctx context.Context, user *domain.User, req dto.AddCartLineRequest) (resp dto.CartResponse, err error) {
	if user == nil {
		return resp, errs.ErrNotLoggedIn
	}

	product, err := s.catalogRepo.GetProductByID(ctx, req.ProductID)
	if err != nil {
		return resp, err
	}

	line := domain.CartLine{
		ProductID: product.ID,
		Title:     product.Title,
		Price:     product.Price,
		Image:     product.Image,
		Quantity:  1,
	}

	if _, err = s.cartRepo.AddCartLine(ctx, line); err != nil {
		return resp, err
	}

	return s.GetCart(ctx)
}

// UpdateQuantity applies a quantity change through the store and rebuilds the
// snapshot. A target below 1 is a no-op: removal is always a separate,
// explicit action.
func (s *CartServiceImpl) UpdateQuantity(ctx context.Context, lineID string, req dto.UpdateQuantityRequest) (resp dto.CartResponse, err error) {
	if req.Quantity < 1 {
		return s.GetCart(ctx)
	}

	if _, err = s.cartRepo.UpdateCartLineQuantity(ctx, lineID, req.Quantity); err != nil {
		return resp, err
	}

	return s.GetCart(ctx)
}

func (s *CartServiceImpl) RemoveLine(ctx context.Context, lineID string) (resp dto.CartResponse, err error) {
	if err = s.cartRepo.DeleteCartLine(ctx, lineID); err != nil {
		return resp, err
	}

	return s.GetCart(ctx)
}

// GetCartCount serves the cached cart-size indicator, falling back to a live
// fetch when the cache is cold.
func (s *CartServiceImpl) GetCartCount(ctx context.Context) (count int, err error) {
	if s.redis != nil {
		cached, err := s.redis.Get(ctx, cache.KeyCartCount).Result()
		if err == nil {
			if count, convErr := strconv.Atoi(cached); convErr == nil {
				return count, nil
			}
		} else if err != redis.Nil {
			log.Error().Err(err).Str("component", "GetCartCount").Msg("")
		}
	}

	lines, err := s.cartRepo.GetCartLines(ctx)
	if err != nil {
		return 0, err
	}

	s.cacheCartCount(ctx, len(lines))

	return len(lines), nil
}

// RefreshCartCount is the scheduled poll behind the cart-size indicator. It
// is best-effort: a failed cycle leaves the previous cached value in place.
func (s *CartServiceImpl) RefreshCartCount() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	lines, err := s.cartRepo.GetCartLines(ctx)
	if err != nil {
		log.Error().Err(err).Str("component", "RefreshCartCount").Msg("")
		return
	}

	s.cacheCartCount(ctx, len(lines))
}

func (s *CartServiceImpl) cacheCartCount(ctx context.Context, count int) {
	if s.redis == nil {
		return
	}
	if err := s.redis.Set(ctx, cache.KeyCartCount, strconv.Itoa(count), cache.TTLCartCount).Err(); err != nil {
		log.Error().Err(err).Str("component", "cacheCartCount").Msg("")
	}
}
