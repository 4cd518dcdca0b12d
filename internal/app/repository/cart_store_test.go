package repository

import (
	"context"
	"testing"
	"time"

	"github.com/pehchaan/storefront-backend/internal/app/model"
	"github.com/pehchaan/storefront-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupGormCartStoreTest(t *testing.T) (CartStore, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	return NewGormCartStore(testDB), testDB
}

func sampleCart() model.Cart {
	return model.Cart{
		{ProductID: "jacket-1", Name: "Adaptive Jacket", Price: 6500, Image: "/images/product-1.png", Quantity: 2},
		{ProductID: "kurta-1", Name: "Easy-Open Kurta", Price: 4800, Image: "/images/product-3.png", Quantity: 1},
	}
}

func TestGormCartStore_RoundTrip(t *testing.T) {
	store, _ := setupGormCartStoreTest(t)
	ctx := context.Background()

	cart := sampleCart()
	require.NoError(t, store.Save(ctx, "visitor-1", cart))

	loaded, err := store.Load(ctx, "visitor-1")
	require.NoError(t, err)
	assert.Equal(t, cart, loaded)
}

func TestGormCartStore_Load_AbsentIsEmpty(t *testing.T) {
	store, _ := setupGormCartStoreTest(t)

	cart, err := store.Load(context.Background(), "never-seen")
	require.NoError(t, err)
	assert.Empty(t, cart)
}

func TestGormCartStore_Load_CorruptedPayloadIsEmpty(t *testing.T) {
	store, testDB := setupGormCartStoreTest(t)

	require.NoError(t, testDB.Create(&model.CartSnapshot{
		CartID:    "visitor-1",
		Payload:   "{not json at all",
		UpdatedAt: time.Now(),
	}).Error)

	cart, err := store.Load(context.Background(), "visitor-1")
	require.NoError(t, err)
	assert.Empty(t, cart)
}

func TestGormCartStore_Load_DropsInvalidLineItems(t *testing.T) {
	store, testDB := setupGormCartStoreTest(t)

	payload := `[{"id":"jacket-1","name":"Adaptive Jacket","price":6500,"image":"","qty":2},` +
		`{"id":"kurta-1","name":"Easy-Open Kurta","price":4800,"image":"","qty":0},` +
		`{"id":"","name":"ghost","price":1,"image":"","qty":3}]`
	require.NoError(t, testDB.Create(&model.CartSnapshot{
		CartID:    "visitor-1",
		Payload:   payload,
		UpdatedAt: time.Now(),
	}).Error)

	cart, err := store.Load(context.Background(), "visitor-1")
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, "jacket-1", cart[0].ProductID)
	assert.Equal(t, 2, cart[0].Quantity)
}

func TestGormCartStore_Save_ReplacesSnapshot(t *testing.T) {
	store, testDB := setupGormCartStoreTest(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "visitor-1", sampleCart()))
	require.NoError(t, store.Save(ctx, "visitor-1", model.Cart{
		{ProductID: "shirt-1", Name: "Magnetic Closure Shirt", Price: 4300, Quantity: 1},
	}))

	var count int64
	require.NoError(t, testDB.Model(&model.CartSnapshot{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	loaded, err := store.Load(ctx, "visitor-1")
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "shirt-1", loaded[0].ProductID)
}

func TestGormCartStore_Clear(t *testing.T) {
	store, _ := setupGormCartStoreTest(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "visitor-1", sampleCart()))
	require.NoError(t, store.Clear(ctx, "visitor-1"))

	cart, err := store.Load(ctx, "visitor-1")
	require.NoError(t, err)
	assert.Empty(t, cart)
}

func TestGormCartStore_PurgeStale(t *testing.T) {
	store, testDB := setupGormCartStoreTest(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "old-visitor", sampleCart()))
	require.NoError(t, store.Save(ctx, "fresh-visitor", sampleCart()))

	stale := time.Now().Add(-48 * time.Hour)
	require.NoError(t, testDB.Model(&model.CartSnapshot{}).
		Where("cart_id = ?", "old-visitor").
		Update("updated_at", stale).Error)

	purged, err := store.PurgeStale(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), purged)

	cart, err := store.Load(ctx, "fresh-visitor")
	require.NoError(t, err)
	assert.Len(t, cart, 2)
}

func TestMemoryCartStore_RoundTrip(t *testing.T) {
	store := NewMemoryCartStore()
	ctx := context.Background()

	cart := sampleCart()
	require.NoError(t, store.Save(ctx, "visitor-1", cart))

	loaded, err := store.Load(ctx, "visitor-1")
	require.NoError(t, err)
	assert.Equal(t, cart, loaded)

	require.NoError(t, store.Clear(ctx, "visitor-1"))
	loaded, err = store.Load(ctx, "visitor-1")
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestMemoryCartStore_CorruptedPayloadIsEmpty(t *testing.T) {
	store := NewMemoryCartStore()
	store.SaveRaw("visitor-1", []byte(`"definitely not a cart"`))

	cart, err := store.Load(context.Background(), "visitor-1")
	require.NoError(t, err)
	assert.Empty(t, cart)
}
