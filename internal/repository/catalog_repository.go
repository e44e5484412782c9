package repository

import (
	"context"
	"encoding/json"

	"github.com/oceanshop/storefront/internal/domain"
	"github.com/oceanshop/storefront/internal/infrastructure/store"
	"github.com/oceanshop/storefront/pkg/errs"
	"github.com/rs/zerolog/log"
)

type CatalogRepositoryImpl struct {
	store *store.Client
}

func CreateCatalogRepository(store *store.Client) CatalogRepository {
	return &CatalogRepositoryImpl{store: store}
}

func (r *CatalogRepositoryImpl) GetProducts(ctx context.Context) (data []domain.Product, err error) {
	body, err := r.store.List(ctx, store.CollectionProducts, nil)
	if err != nil {
		log.Error().Err(err).Str("component", "GetProducts").Msg("")
		return nil, errs.ErrStoreUnavailable
	}

	if err = json.Unmarshal(body, &data); err != nil {
		log.Error().Err(err).Str("component", "GetProducts").Msg("")
		return nil, errs.ErrStoreUnavailable
	}

	return data, nil
}

func (r *CatalogRepositoryImpl) GetProductsByCategory(ctx context.Context, category string) (data []domain.Product, err error) {
	body, err := r.store.List(ctx, store.CollectionProducts, map[string]string{"category": category})
	if err != nil {
		log.Error().Err(err).Str("component", "GetProductsByCategory").Msg("")
		return nil, errs.ErrStoreUnavailable
	}

	if err = json.Unmarshal(body, &data); err != nil {
		log.Error().Err(err).Str("component", "GetProductsByCategory").Msg("")
		return nil, errs.ErrStoreUnavailable
	}

	return data, nil
}

func (r *CatalogRepositoryImpl) GetProductByID(ctx context.Context, id string) (data domain.Product, err error) {
	body, err := r.store.Get(ctx, store.CollectionProducts, id)
	if err != nil {
		if err == errs.ErrNotFound {
			return data, err
		}
		log.Error().Err(err).Str("component", "GetProductByID").Msg("")
		return data, errs.ErrStoreUnavailable
	}

	if err = json.Unmarshal(body, &data); err != nil {
		log.Error().Err(err).Str("component", "GetProductByID").Msg("")
		return data, errs.ErrStoreUnavailable
	}

	return data, nil
}

func (r *CatalogRepositoryImpl) GetCategories(ctx context.Context) (data []domain.Category, err error) {
	body, err := r.store.List(ctx, store.CollectionCategories, nil)
	if err != nil {
		log.Error().Err(err).Str("component", "GetCategories").Msg("")
		return nil, errs.ErrStoreUnavailable
	}

	if err = json.Unmarshal(body, &data); err != nil {
		log.Error().Err(err).Str("component", "GetCategories").Msg("")
		return nil, errs.ErrStoreUnavailable
	}

	return data, nil
}
