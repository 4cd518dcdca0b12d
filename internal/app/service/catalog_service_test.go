package service

import (
	"testing"

	"github.com/pehchaan/storefront-backend/internal/app/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_ListProducts(t *testing.T) {
	catalogService := NewCatalogService(repository.NewCatalogRepository(repository.DefaultCatalog()))

	products := catalogService.ListProducts()
	require.Len(t, products, 4)
	assert.Equal(t, "jacket-1", products[0].ID)
	assert.Equal(t, "shirt-1", products[3].ID)
}

func TestCatalogService_GetProductByID(t *testing.T) {
	catalogService := NewCatalogService(repository.NewCatalogRepository(repository.DefaultCatalog()))

	product, err := catalogService.GetProductByID("kurta-1")
	require.NoError(t, err)
	assert.Equal(t, "Easy-Open Kurta", product.Name)
	assert.Equal(t, int64(4800), product.Price)
}

func TestCatalogService_GetProductByID_NotFound(t *testing.T) {
	catalogService := NewCatalogService(repository.NewCatalogRepository(repository.DefaultCatalog()))

	product, err := catalogService.GetProductByID("no-such-product")
	assert.Nil(t, product)
	assert.ErrorIs(t, err, ErrProductNotFound)
}
