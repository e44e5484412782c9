package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/oceanshop/storefront/internal/domain"
	"github.com/oceanshop/storefront/pkg/errs"
)

type fakeCartRepository struct {
	mu          sync.Mutex
	lines       []domain.CartLine
	nextID      int
	listErr     error
	deleteErrs  map[string]error
	addCalls    int
	updateCalls int
	deleteCalls int
}

func (r *fakeCartRepository) GetCartLines(ctx context.Context) (data []domain.CartLine, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.listErr != nil {
		return nil, r.listErr
	}

	data = make([]domain.CartLine, len(r.lines))
	copy(data, r.lines)
	return data, nil
}

func (r *fakeCartRepository) GetCartLinesByProductID(ctx context.Context, productID string) (data []domain.CartLine, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, line := range r.lines {
		if line.ProductID == productID {
			data = append(data, line)
		}
	}
	return data, nil
}

func (r *fakeCartRepository) AddCartLine(ctx context.Context, line domain.CartLine) (created domain.CartLine, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.addCalls++
	r.nextID++
	line.ID = fmt.Sprintf("line-%d", r.nextID)
	r.lines = append(r.lines, line)
	return line, nil
}

func (r *fakeCartRepository) UpdateCartLineQuantity(ctx context.Context, id string, quantity int) (updated domain.CartLine, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.updateCalls++
	for i := range r.lines {
		if r.lines[i].ID == id {
			r.lines[i].Quantity = quantity
			return r.lines[i], nil
		}
	}
	return updated, errs.ErrNotFound
}

func (r *fakeCartRepository) DeleteCartLine(ctx context.Context, id string) (err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.deleteCalls++
	if err, ok := r.deleteErrs[id]; ok {
		return err
	}

	for i := range r.lines {
		if r.lines[i].ID == id {
			r.lines = append(r.lines[:i], r.lines[i+1:]...)
			return nil
		}
	}
	return errs.ErrNotFound
}

type fakeCatalogRepository struct {
	products      []domain.Product
	categories    []domain.Category
	byCategoryErr error
	getCalls      int
}

func (r *fakeCatalogRepository) GetProducts(ctx context.Context) (data []domain.Product, err error) {
	return r.products, nil
}

func (r *fakeCatalogRepository) GetProductsByCategory(ctx context.Context, category string) (data []domain.Product, err error) {
	if r.byCategoryErr != nil {
		return nil, r.byCategoryErr
	}

	for _, p := range r.products {
		if p.Category == category {
			data = append(data, p)
		}
	}
	return data, nil
}

func (r *fakeCatalogRepository) GetProductByID(ctx context.Context, id string) (data domain.Product, err error) {
	r.getCalls++
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return data, errs.ErrNotFound
}

func (r *fakeCatalogRepository) GetCategories(ctx context.Context) (data []domain.Category, err error) {
	return r.categories, nil
}

type fakeOrderRepository struct {
	mu       sync.Mutex
	orders   []domain.Order
	addErr   error
	addCalls int
}

func (r *fakeOrderRepository) AddOrder(ctx context.Context, order domain.Order) (created domain.Order, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.addCalls++
	if r.addErr != nil {
		return created, r.addErr
	}

	order.ID = fmt.Sprintf("order-%d", len(r.orders)+1)
	r.orders = append(r.orders, order)
	return order, nil
}

type fakeReviewRepository struct {
	reviews  []domain.Review
	addCalls int
}

func (r *fakeReviewRepository) GetReviewsByProductID(ctx context.Context, productID string) (data []domain.Review, err error) {
	for _, review := range r.reviews {
		if review.ProductID == productID {
			data = append(data, review)
		}
	}
	return data, nil
}

func (r *fakeReviewRepository) AddReview(ctx context.Context, review domain.Review) (created domain.Review, err error) {
	r.addCalls++
	review.ID = fmt.Sprintf("review-%d", len(r.reviews)+1)
	r.reviews = append(r.reviews, review)
	return review, nil
}
