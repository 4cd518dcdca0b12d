package service

import (
	"errors"

	"github.com/pehchaan/storefront-backend/internal/app/model"
	"github.com/pehchaan/storefront-backend/internal/app/repository"
	"github.com/pehchaan/storefront-backend/pkg/logger"
)

var ErrProductNotFound = errors.New("product not found")

type CatalogService interface {
	ListProducts() []model.Product
	GetProductByID(id string) (*model.Product, error)
}

type catalogService struct {
	catalogRepo repository.CatalogRepository
}

func NewCatalogService(catalogRepo repository.CatalogRepository) CatalogService {
	return &catalogService{catalogRepo: catalogRepo}
}

func (s *catalogService) ListProducts() []model.Product {
	return s.catalogRepo.List()
}

func (s *catalogService) GetProductByID(id string) (*model.Product, error) {
	product, err := s.catalogRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			logger.Debug("Product not found in catalog", map[string]interface{}{
				"product_id": id,
			})
			return nil, ErrProductNotFound
		}
		logger.Error("Failed to look up product", err, map[string]interface{}{
			"product_id": id,
		})
		return nil, err
	}
	return product, nil
}
