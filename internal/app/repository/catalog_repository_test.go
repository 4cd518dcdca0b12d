package repository

import (
	"testing"

	"github.com/pehchaan/storefront-backend/internal/app/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogRepository_FindByID(t *testing.T) {
	repo := NewCatalogRepository(DefaultCatalog())

	product, err := repo.FindByID("jacket-1")
	require.NoError(t, err)
	assert.Equal(t, "Adaptive Jacket", product.Name)
	assert.Equal(t, int64(6500), product.Price)
	assert.Equal(t, []string{"Accessible closures", "Comfort-first", "Everyday wear"}, product.Badges)
}

func TestCatalogRepository_FindByID_NotFound(t *testing.T) {
	repo := NewCatalogRepository(DefaultCatalog())

	product, err := repo.FindByID("no-such-product")
	assert.Nil(t, product)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestCatalogRepository_List_PreservesOrder(t *testing.T) {
	products := []model.Product{
		{ID: "b", Name: "B", Price: 2},
		{ID: "a", Name: "A", Price: 1},
		{ID: "c", Name: "C", Price: 3},
	}
	repo := NewCatalogRepository(products)

	listed := repo.List()
	require.Len(t, listed, 3)
	assert.Equal(t, "b", listed[0].ID)
	assert.Equal(t, "a", listed[1].ID)
	assert.Equal(t, "c", listed[2].ID)
}

func TestCatalogRepository_List_CopyIsIndependent(t *testing.T) {
	repo := NewCatalogRepository(DefaultCatalog())

	listed := repo.List()
	listed[0].Name = "mutated"

	fresh, err := repo.FindByID(listed[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Adaptive Jacket", fresh.Name)
}
