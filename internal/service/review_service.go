package service

import (
	"context"
	"time"

	"github.com/oceanshop/storefront/internal/domain"
	"github.com/oceanshop/storefront/internal/dto"
	"github.com/oceanshop/storefront/internal/repository"
	"github.com/oceanshop/storefront/pkg/errs"
)

type ReviewServiceImpl struct {
	reviewRepo repository.ReviewRepository
}

func CreateReviewService(reviewRepo repository.ReviewRepository) ReviewService {
	return &ReviewServiceImpl{reviewRepo: reviewRepo}
}

func averageRating(reviews []domain.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}

	var sum int
	for _, review := range reviews {
		sum += review.Rating
	}
	return float64(sum) / float64(len(reviews))
}

func (s *ReviewServiceImpl) GetReviews(ctx context.Context, productID string) (resp dto.ReviewListResponse, err error) {
	reviews, err := s.reviewRepo.GetReviewsByProductID(ctx, productID)
	if err != nil {
		return resp, err
	}

	resp.Reviews = reviews
	resp.Count = len(reviews)
	resp.AverageRating = averageRating(reviews)

	return resp, nil
}

func (s *ReviewServiceImpl) AddReview(ctx context.Context, user *domain.User, req dto.ReviewRequest) (resp dto.ReviewListResponse, err error) {
	if user == nil {
		return resp, errs.ErrNotLoggedIn
	}

	userName := user.DisplayName
	if userName == "" {
		userName = user.Email
	}

	review := domain.Review{
		ProductID: req.ProductID,
		UserID:    user.UID,
		UserName:  userName,
		Rating:    req.Rating,
		Comment:   req.Comment,
		Date:      time.Now().UTC().Format("2006-01-02"),
	}

	if _, err = s.reviewRepo.AddReview(ctx, review); err != nil {
		return resp, err
	}

	return s.GetReviews(ctx, req.ProductID)
}
