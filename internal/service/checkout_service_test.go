package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/oceanshop/storefront/config"
	"github.com/oceanshop/storefront/internal/domain"
	"github.com/oceanshop/storefront/internal/dto"
	"github.com/oceanshop/storefront/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkoutRequest() dto.CheckoutRequest {
	return dto.CheckoutRequest{
		CardNumber:     "4111111111111111",
		ExpiryDate:     "12/30",
		CVV:            "123",
		CardholderName: "Test Buyer",
	}
}

func Test_CheckoutRequiresLogin(t *testing.T) {
	cartRepo := &fakeCartRepository{
		lines: []domain.CartLine{{ID: "line-1", ProductID: "p1", Price: 10, Quantity: 1}},
	}
	orderRepo := &fakeOrderRepository{}
	svc := CreateCheckoutService(cartRepo, orderRepo, &config.Config{}, nil)

	_, err := svc.Checkout(context.Background(), nil, checkoutRequest())

	assert.ErrorIs(t, err, errs.ErrNotLoggedIn)
	assert.Equal(t, 0, orderRepo.addCalls)
}

func Test_CheckoutEmptyCart(t *testing.T) {
	cartRepo := &fakeCartRepository{}
	orderRepo := &fakeOrderRepository{}
	svc := CreateCheckoutService(cartRepo, orderRepo, &config.Config{}, nil)

	_, err := svc.Checkout(context.Background(), &domain.User{UID: "u1"}, checkoutRequest())

	assert.ErrorIs(t, err, errs.ErrEmptyCart)
	assert.Equal(t, 0, orderRepo.addCalls)
}

func Test_CheckoutKeepsCartWhenOrderFails(t *testing.T) {
	cartRepo := &fakeCartRepository{
		lines: []domain.CartLine{
			{ID: "line-1", ProductID: "p1", Price: 10, Quantity: 2},
			{ID: "line-2", ProductID: "p2", Price: 5.5, Quantity: 1},
		},
	}
	orderRepo := &fakeOrderRepository{addErr: errors.New("store write failed")}
	svc := CreateCheckoutService(cartRepo, orderRepo, &config.Config{}, nil)

	_, err := svc.Checkout(context.Background(), &domain.User{UID: "u1"}, checkoutRequest())

	// No cart line may be touched unless the order record exists.
	require.Error(t, err)
	assert.Equal(t, 0, cartRepo.deleteCalls)
	assert.Len(t, cartRepo.lines, 2)
}

func Test_CheckoutClearsCartAfterOrder(t *testing.T) {
	cartRepo := &fakeCartRepository{
		lines: []domain.CartLine{
			{ID: "line-1", ProductID: "p1", Price: 10, Quantity: 2},
			{ID: "line-2", ProductID: "p2", Price: 5.5, Quantity: 1},
		},
	}
	orderRepo := &fakeOrderRepository{}
	svc := CreateCheckoutService(cartRepo, orderRepo, &config.Config{}, nil)

	resp, err := svc.Checkout(context.Background(), &domain.User{UID: "u1", Email: "u1@example.com"}, checkoutRequest())
	require.NoError(t, err)

	assert.Equal(t, "u1", resp.Order.UserID)
	assert.Equal(t, domain.OrderStatusCompleted, resp.Order.Status)
	assert.Equal(t, 25.5, resp.Order.Total)
	assert.Len(t, resp.Order.Items, 2)

	_, err = time.Parse(time.RFC3339, resp.Order.Date)
	assert.NoError(t, err)

	assert.Equal(t, 2, cartRepo.deleteCalls)
	assert.Empty(t, resp.Cart)
	assert.Empty(t, cartRepo.lines)
}

func Test_CheckoutSucceedsDespiteFailedCleanup(t *testing.T) {
	cartRepo := &fakeCartRepository{
		lines: []domain.CartLine{
			{ID: "line-1", ProductID: "p1", Price: 10, Quantity: 1},
			{ID: "line-2", ProductID: "p2", Price: 5.5, Quantity: 1},
		},
		deleteErrs: map[string]error{"line-2": errors.New("delete failed")},
	}
	orderRepo := &fakeOrderRepository{}
	svc := CreateCheckoutService(cartRepo, orderRepo, &config.Config{}, nil)

	resp, err := svc.Checkout(context.Background(), &domain.User{UID: "u1"}, checkoutRequest())
	require.NoError(t, err)

	// The order stands; the line whose delete failed stays in the cart.
	assert.Equal(t, 1, orderRepo.addCalls)
	assert.Equal(t, 2, cartRepo.deleteCalls)
	require.Len(t, resp.Cart, 1)
	assert.Equal(t, "line-2", resp.Cart[0].ID)
}
