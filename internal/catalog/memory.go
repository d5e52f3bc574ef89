package catalog

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore is an in-memory Store for development and tests.
type MemoryStore struct {
	mu       sync.RWMutex
	users    map[string]User
	styles   map[string]Style
	products map[string]Product
	wishlist map[string]WishlistItem
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:    make(map[string]User),
		styles:   make(map[string]Style),
		products: make(map[string]Product),
		wishlist: make(map[string]WishlistItem),
	}
}

// NewSeededMemoryStore creates a MemoryStore preloaded with the curated
// styles and showcase products.
func NewSeededMemoryStore() *MemoryStore {
	s := NewMemoryStore()
	for _, style := range SeedStyles() {
		s.styles[style.ID] = style
	}
	for _, product := range SeedProducts() {
		s.products[product.ID] = product
	}
	return s
}

func (s *MemoryStore) CreateUser(_ context.Context, user *User) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	created := *user
	created.ID = uuid.NewString()
	s.users[created.ID] = created
	return &created, nil
}

func (s *MemoryStore) GetStyles(_ context.Context, gender, bodyType, occasion string) ([]Style, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	styles := make([]Style, 0, len(s.styles))
	for _, style := range s.styles {
		if gender != "" && style.Gender != gender {
			continue
		}
		if bodyType != "" && style.BodyType != bodyType {
			continue
		}
		if occasion != "" && style.Occasion != occasion {
			continue
		}
		styles = append(styles, style)
	}
	return styles, nil
}

func (s *MemoryStore) GetStyle(_ context.Context, id string) (*Style, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	style, ok := s.styles[id]
	if !ok {
		return nil, nil
	}
	return &style, nil
}

func (s *MemoryStore) PutStyle(_ context.Context, style *Style) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.styles[style.ID] = *style
	return nil
}

func (s *MemoryStore) GetProducts(_ context.Context, category string) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	products := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		if category != "" && p.Category != category {
			continue
		}
		products = append(products, p)
	}
	return products, nil
}

func (s *MemoryStore) PutProduct(_ context.Context, product *Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[product.ID] = *product
	return nil
}

func (s *MemoryStore) GetWishlist(_ context.Context, userID string) ([]WishlistItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]WishlistItem, 0)
	for _, item := range s.wishlist {
		if item.UserID == userID {
			items = append(items, item)
		}
	}
	return items, nil
}

func (s *MemoryStore) GetWishlistItem(_ context.Context, userID, itemType, itemID string) (*WishlistItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.wishlist {
		if item.UserID == userID && item.ItemType == itemType && item.ItemID == itemID {
			found := item
			return &found, nil
		}
	}
	return nil, nil
}

func (s *MemoryStore) AddToWishlist(_ context.Context, item *WishlistItem) (*WishlistItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	created := *item
	created.ID = uuid.NewString()
	s.wishlist[created.ID] = created
	return &created, nil
}

func (s *MemoryStore) RemoveFromWishlist(_ context.Context, userID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if item, ok := s.wishlist[id]; ok && item.UserID == userID {
		delete(s.wishlist, id)
	}
	return nil
}
