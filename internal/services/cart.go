package services

import (
	"encoding/json"
	"log"

	"sesotho-storefront/internal/models"
)

// CartStorageKey is the durable record key holding the serialized cart
const CartStorageKey = "sesotho-cart"

// CartStorage is the durable mirror behind a cart store. Load returns the
// raw serialized cart or nil when no record exists; Save overwrites the
// record with the given serialization.
type CartStorage interface {
	Load() ([]byte, error)
	Save(data []byte) error
}

// CartStore owns an in-process cart and keeps a durable storage record in
// sync with it. Every mutation rewrites the full record synchronously.
// Load and parse failures fall back to an empty cart rather than failing.
type CartStore struct {
	cart    models.Cart
	storage CartStorage
}

// NewCartStore initializes a cart store from the durable record. A missing,
// unreadable or malformed record yields an empty cart.
func NewCartStore(storage CartStorage) *CartStore {
	store := &CartStore{storage: storage}

	data, err := storage.Load()
	if err != nil {
		log.Printf("cart storage read failed, starting empty: %v", err)
		return store
	}
	if len(data) == 0 {
		return store
	}

	var items []models.CartLineItem
	if err := json.Unmarshal(data, &items); err != nil {
		log.Printf("cart storage parse failed, starting empty: %v", err)
		return store
	}

	store.cart.Items = items
	return store
}

// Cart returns a snapshot of the current cart
func (s *CartStore) Cart() models.Cart {
	items := make([]models.CartLineItem, len(s.cart.Items))
	copy(items, s.cart.Items)
	return models.Cart{Items: items}
}

// AddItem merges the candidate into the cart and persists. Returns the
// derived line item ID.
func (s *CartStore) AddItem(candidate models.CartLineItem) (string, error) {
	id := s.cart.AddItem(candidate)
	return id, s.persist()
}

// RemoveItem deletes the line with the given ID and persists
func (s *CartStore) RemoveItem(id string) error {
	s.cart.RemoveItem(id)
	return s.persist()
}

// UpdateQuantity sets the quantity on a line (zero or less removes it) and
// persists
func (s *CartStore) UpdateQuantity(id string, quantity int) error {
	s.cart.UpdateQuantity(id, quantity)
	return s.persist()
}

// Clear empties the cart and persists the empty sequence
func (s *CartStore) Clear() error {
	s.cart.Clear()
	return s.persist()
}

// Total returns the cart total in cents
func (s *CartStore) Total() int {
	return s.cart.Total()
}

// Count returns the total quantity across all lines
func (s *CartStore) Count() int {
	return s.cart.Count()
}

func (s *CartStore) persist() error {
	items := s.cart.Items
	if items == nil {
		items = []models.CartLineItem{}
	}

	data, err := json.Marshal(items)
	if err != nil {
		return err
	}

	return s.storage.Save(data)
}

// MemoryCartStorage is an in-memory CartStorage, used in tests and as a
// stand-in when no durable backend is wired.
type MemoryCartStorage struct {
	data []byte
}

// NewMemoryCartStorage creates an empty in-memory storage
func NewMemoryCartStorage() *MemoryCartStorage {
	return &MemoryCartStorage{}
}

// NewMemoryCartStorageWith seeds the storage with an existing record
func NewMemoryCartStorageWith(data []byte) *MemoryCartStorage {
	return &MemoryCartStorage{data: data}
}

func (m *MemoryCartStorage) Load() ([]byte, error) {
	return m.data, nil
}

func (m *MemoryCartStorage) Save(data []byte) error {
	m.data = data
	return nil
}
