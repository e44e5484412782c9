package service

import (
	"context"

	"github.com/oceanshop/storefront/internal/domain"
	"github.com/oceanshop/storefront/internal/dto"
	"github.com/oceanshop/storefront/internal/repository"
	"github.com/rs/zerolog/log"
)

const relatedProductsLimit = 4

type CatalogServiceImpl struct {
	catalogRepo repository.CatalogRepository
}

func CreateCatalogService(catalogRepo repository.CatalogRepository) CatalogService {
	return &CatalogServiceImpl{catalogRepo: catalogRepo}
}

func (s *CatalogServiceImpl) GetProducts(ctx context.Context, category string) (data []domain.Product, err error) {
	if category == "" {
		return s.catalogRepo.GetProducts(ctx)
	}
	return s.catalogRepo.GetProductsByCategory(ctx, category)
}

func (s *CatalogServiceImpl) GetProductDetails(ctx context.Context, id string) (data dto.ProductDetailsResponse, err error) {
	product, err := s.catalogRepo.GetProductByID(ctx, id)
	if err != nil {
		return data, err
	}
	data.Product = product

	// Related products are decoration; a failed lookup does not fail the page.
	sameCategory, err := s.catalogRepo.GetProductsByCategory(ctx, product.Category)
	if err != nil {
		log.Error().Err(err).Str("component", "GetProductDetails").Msg("")
		return data, nil
	}

	related := make([]domain.Product, 0, relatedProductsLimit)
	for _, p := range sameCategory {
		if p.ID == product.ID {
			continue
		}
		related = append(related, p)
		if len(related) == relatedProductsLimit {
			break
		}
	}
	data.Related = related

	return data, nil
}

func (s *CatalogServiceImpl) GetCategories(ctx context.Context) (data []domain.Category, err error) {
	return s.catalogRepo.GetCategories(ctx)
}
