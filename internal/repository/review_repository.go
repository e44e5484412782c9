package repository

import (
	"context"
	"encoding/json"

	"github.com/oceanshop/storefront/internal/domain"
	"github.com/oceanshop/storefront/internal/infrastructure/store"
	"github.com/oceanshop/storefront/pkg/errs"
	"github.com/rs/zerolog/log"
)

type ReviewRepositoryImpl struct {
	store *store.Client
}

func CreateReviewRepository(store *store.Client) ReviewRepository {
	return &ReviewRepositoryImpl{store: store}
}

func (r *ReviewRepositoryImpl) GetReviewsByProductID(ctx context.Context, productID string) (data []domain.Review, err error) {
	body, err := r.store.List(ctx, store.CollectionReviews, map[string]string{"productId": productID})
	if err != nil {
		log.Error().Err(err).Str("component", "GetReviewsByProductID").Msg("")
		return nil, errs.ErrStoreUnavailable
	}

	if err = json.Unmarshal(body, &data); err != nil {
		log.Error().Err(err).Str("component", "GetReviewsByProductID").Msg("")
		return nil, errs.ErrStoreUnavailable
	}

	return data, nil
}

func (r *ReviewRepositoryImpl) AddReview(ctx context.Context, review domain.Review) (created domain.Review, err error) {
	body, err := r.store.Create(ctx, store.CollectionReviews, review)
	if err != nil {
		log.Error().Err(err).Str("component", "AddReview").Msg("")
		return created, errs.ErrStoreUnavailable
	}

	if err = json.Unmarshal(body, &created); err != nil {
		log.Error().Err(err).Str("component", "AddReview").Msg("")
		return created, errs.ErrStoreUnavailable
	}

	return created, nil
}
