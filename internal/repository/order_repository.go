package repository

import (
	"context"
	"encoding/json"

	"github.com/oceanshop/storefront/internal/domain"
	"github.com/oceanshop/storefront/internal/infrastructure/store"
	"github.com/oceanshop/storefront/pkg/errs"
	"github.com/rs/zerolog/log"
)

type OrderRepositoryImpl struct {
	store *store.Client
}

func CreateOrderRepository(store *store.Client) OrderRepository {
	return &OrderRepositoryImpl{store: store}
}

func (r *OrderRepositoryImpl) AddOrder(ctx context.Context, order domain.Order) (created domain.Order, err error) {
	body, err := r.store.Create(ctx, store.CollectionOrders, order)
	if err != nil {
		log.Error().Err(err).Str("component", "AddOrder").Msg("")
		return created, errs.ErrStoreUnavailable
	}

	if err = json.Unmarshal(body, &created); err != nil {
		log.Error().Err(err).Str("component", "AddOrder").Msg("")
		return created, errs.ErrStoreUnavailable
	}

	return created, nil
}
