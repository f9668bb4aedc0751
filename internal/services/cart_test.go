package services

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sesotho-storefront/internal/models"
)

type failingCartStorage struct {
	loadErr error
	saveErr error
	data    []byte
}

func (f *failingCartStorage) Load() ([]byte, error) {
	return f.data, f.loadErr
}

func (f *failingCartStorage) Save(data []byte) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.data = data
	return nil
}

func testLine(productID string, quantity int) models.CartLineItem {
	return models.CartLineItem{
		Type:      models.ItemTypeProduct,
		Name:      "Heritage Tee",
		Price:     45000,
		Quantity:  quantity,
		ProductID: productID,
	}
}

func TestNewCartStore_LoadsExistingRecord(t *testing.T) {
	items := []models.CartLineItem{
		{ID: "product-p1-default", Type: models.ItemTypeProduct, Name: "Heritage Tee", Price: 45000, Quantity: 2, ProductID: "p1"},
	}
	data, err := json.Marshal(items)
	require.NoError(t, err)

	store := NewCartStore(NewMemoryCartStorageWith(data))

	cart := store.Cart()
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "product-p1-default", cart.Items[0].ID)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, 90000, store.Total())
}

func TestNewCartStore_EmptyWhenNoRecord(t *testing.T) {
	store := NewCartStore(NewMemoryCartStorage())

	assert.Empty(t, store.Cart().Items)
	assert.Equal(t, 0, store.Total())
	assert.Equal(t, 0, store.Count())
}

func TestNewCartStore_MalformedRecordFallsBackEmpty(t *testing.T) {
	store := NewCartStore(NewMemoryCartStorageWith([]byte("{not json")))

	assert.Empty(t, store.Cart().Items)
}

func TestNewCartStore_LoadErrorFallsBackEmpty(t *testing.T) {
	storage := &failingCartStorage{loadErr: errors.New("storage unavailable")}

	store := NewCartStore(storage)

	assert.Empty(t, store.Cart().Items)
}

func TestCartStore_MutationsPersistSynchronously(t *testing.T) {
	storage := NewMemoryCartStorage()
	store := NewCartStore(storage)

	id, err := store.AddItem(testLine("p1", 2))
	require.NoError(t, err)
	assert.Equal(t, "product-p1-default", id)

	// A fresh store over the same storage sees the mutation
	restored := NewCartStore(storage)
	require.Len(t, restored.Cart().Items, 1)
	assert.Equal(t, 2, restored.Cart().Items[0].Quantity)

	require.NoError(t, store.UpdateQuantity(id, 5))
	assert.Equal(t, 5, NewCartStore(storage).Cart().Items[0].Quantity)

	require.NoError(t, store.RemoveItem(id))
	assert.Empty(t, NewCartStore(storage).Cart().Items)
}

func TestCartStore_ClearPersistsEmptySequence(t *testing.T) {
	storage := NewMemoryCartStorage()
	store := NewCartStore(storage)

	_, err := store.AddItem(testLine("p1", 1))
	require.NoError(t, err)

	require.NoError(t, store.Clear())

	data, err := storage.Load()
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))
}

func TestCartStore_SaveErrorSurfaces(t *testing.T) {
	storage := &failingCartStorage{saveErr: errors.New("write failed")}
	store := NewCartStore(storage)

	_, err := store.AddItem(testLine("p1", 1))
	assert.Error(t, err)
}

func TestCartStore_CartReturnsSnapshot(t *testing.T) {
	store := NewCartStore(NewMemoryCartStorage())
	_, err := store.AddItem(testLine("p1", 1))
	require.NoError(t, err)

	snapshot := store.Cart()
	snapshot.Items[0].Quantity = 99

	assert.Equal(t, 1, store.Cart().Items[0].Quantity)
}
