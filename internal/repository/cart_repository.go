package repository

import (
	"context"
	"encoding/json"

	"github.com/oceanshop/storefront/internal/domain"
	"github.com/oceanshop/storefront/internal/infrastructure/store"
	"github.com/oceanshop/storefront/pkg/errs"
	"github.com/rs/zerolog/log"
)

type CartRepositoryImpl struct {
	store *store.Client
}

func CreateCartRepository(store *store.Client) CartRepository {
	return &CartRepositoryImpl{store: store}
}

func (r *CartRepositoryImpl) GetCartLines(ctx context.Context) (data []domain.CartLine, err error) {
	body, err := r.store.List(ctx, store.CollectionCart, nil)
	if err != nil {
		log.Error().Err(err).Str("component", "GetCartLines").Msg("")
		return nil, errs.ErrStoreUnavailable
	}

	if err = json.Unmarshal(body, &data); err != nil {
		log.Error().Err(err).Str("component", "GetCartLines").Msg("")
		return nil, errs.ErrStoreUnavailable
	}

	return data, nil
}

func (r *CartRepositoryImpl) GetCartLinesByProductID(ctx context.Context, productID string) (data []domain.CartLine, err error) {
	body, err := r.store.List(ctx, store.CollectionCart, map[string]string{"productId": productID})
	if err != nil {
		log.Error().Err(err).Str("component", "GetCartLinesByProductID").Msg("")
		return nil, errs.ErrStoreUnavailable
	}

	if err = json.Unmarshal(body, &data); err != nil {
		log.Error().Err(err).Str("component", "GetCartLinesByProductID").Msg("")
		return nil, errs.ErrStoreUnavailable
	}

	return data, nil
}

func (r *CartRepositoryImpl) AddCartLine(ctx context.Context, line domain.CartLine) (created domain.CartLine, err error) {
	body, err := r.store.Create(ctx, store.CollectionCart, line)
	if err != nil {
		log.Error().Err(err).Str("component", "AddCartLine").Msg("")
		return created, errs.ErrStoreUnavailable
	}

	if err = json.Unmarshal(body, &created); err != nil {
		log.Error().Err(err).Str("component", "AddCartLine").Msg("")
		return created, errs.ErrStoreUnavailable
	}

	return created, nil
}

func (r *CartRepositoryImpl) UpdateCartLineQuantity(ctx context.Context, id string, quantity int) (updated domain.CartLine, err error) {
	body, err := r.store.Update(ctx, store.CollectionCart, id, map[string]interface{}{"quantity": quantity})
	if err != nil {
		if err == errs.ErrNotFound {
			return updated, err
		}
		log.Error().Err(err).Str("component", "UpdateCartLineQuantity").Msg("")
		return updated, errs.ErrStoreUnavailable
	}

	if err = json.Unmarshal(body, &updated); err != nil {
		log.Error().Err(err).Str("component", "UpdateCartLineQuantity").Msg("")
		return updated, errs.ErrStoreUnavailable
	}

	return updated, nil
}

func (r *CartRepositoryImpl) DeleteCartLine(ctx context.Context, id string) (err error) {
	if err = r.store.Delete(ctx, store.CollectionCart, id); err != nil {
		if err == errs.ErrNotFound {
			return err
		}
		log.Error().Err(err).Str("component", "DeleteCartLine").Msg("")
		return errs.ErrStoreUnavailable
	}

	return nil
}
