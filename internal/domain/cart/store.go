// internal/domain/cart/store.go
package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/your-org/lumina-storefront/internal/domain/catalog"
	"github.com/your-org/lumina-storefront/internal/infrastructure/storage"
)

// Store owns all cart state. It is constructed once at process start and is
// the single writer of cart keys: every transition loads the persisted item
// list, applies a pure command, recomputes totals against the live catalog,
// and persists the result before returning.
type Store struct {
	storage storage.Store
	catalog *catalog.Service
	mu      sync.Mutex
}

// NewStore creates a new cart store.
func NewStore(st storage.Store, cat *catalog.Service) *Store {
	return &Store{
		storage: st,
		catalog: cat,
	}
}

func cartKey(sessionID string) string {
	return "cart:" + sessionID
}

// Get returns the cart for the session, rehydrating persisted items and
// recomputing totals against current catalog prices.
func (s *Store) Get(ctx context.Context, sessionID string) (*Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.derive(items), nil
}

// AddItem adds quantity of the product to the session's cart, merging into
// an existing entry when present.
func (s *Store) AddItem(ctx context.Context, sessionID, productID string, quantity int) (*Cart, error) {
	return s.dispatch(ctx, sessionID, AddItem{ProductID: productID, Quantity: quantity})
}

// RemoveItem removes the product from the session's cart. Removing an
// absent product is a no-op.
func (s *Store) RemoveItem(ctx context.Context, sessionID, productID string) (*Cart, error) {
	return s.dispatch(ctx, sessionID, RemoveItem{ProductID: productID})
}

// UpdateQuantity replaces the entry's quantity; zero or negative removes it.
func (s *Store) UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) (*Cart, error) {
	return s.dispatch(ctx, sessionID, UpdateQuantity{ProductID: productID, Quantity: quantity})
}

// Clear empties the session's cart.
func (s *Store) Clear(ctx context.Context, sessionID string) (*Cart, error) {
	return s.dispatch(ctx, sessionID, Clear{})
}

// ItemCount returns the cart's total quantity across resolvable entries.
func (s *Store) ItemCount(ctx context.Context, sessionID string) (int, error) {
	c, err := s.Get(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	return c.TotalItems, nil
}

// ResolveProduct resolves a cart entry's product id through the catalog, for
// callers that need name/price/stock alongside the cart snapshot.
func (s *Store) ResolveProduct(productID string) (catalog.Product, bool) {
	return s.catalog.GetByID(productID)
}

// dispatch runs one transition to completion: load, apply, derive, persist.
func (s *Store) dispatch(ctx context.Context, sessionID string, cmd Command) (*Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	items = Apply(items, cmd)
	c := s.derive(items)

	// A failed write must surface: swallowing it would leave in-memory and
	// durable state silently divergent.
	if err := s.persist(ctx, sessionID, c); err != nil {
		return nil, err
	}

	return c, nil
}

// load rehydrates the persisted item list by replaying each entry through
// AddItem. Only items are trusted; persisted totals are ignored so that
// derived fields always reflect present-day catalog prices. Entries whose
// product no longer resolves are retained (they simply contribute zero to
// totals) to avoid silent data loss on transient catalog issues.
func (s *Store) load(ctx context.Context, sessionID string) ([]Item, error) {
	raw, err := s.storage.Get(ctx, cartKey(sessionID))
	if err == storage.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}

	var snapshot Cart
	if err := json.Unmarshal([]byte(raw), &snapshot); err != nil {
		return nil, fmt.Errorf("decode cart snapshot: %w", err)
	}

	var items []Item
	for _, it := range snapshot.Items {
		items = Apply(items, AddItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return items, nil
}

func (s *Store) persist(ctx context.Context, sessionID string, c *Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode cart snapshot: %w", err)
	}
	if err := s.storage.Set(ctx, cartKey(sessionID), string(data)); err != nil {
		return fmt.Errorf("persist cart: %w", err)
	}
	return nil
}

// derive recomputes all derived fields from the item list and current
// catalog prices. Entries whose product does not resolve are skipped: their
// quantity does not count toward any total.
func (s *Store) derive(items []Item) *Cart {
	c := &Cart{Items: items}
	if c.Items == nil {
		c.Items = []Item{}
	}

	for _, it := range items {
		p, ok := s.catalog.GetByID(it.ProductID)
		if !ok {
			continue
		}

		c.TotalItems += it.Quantity
		c.Subtotal += int64(it.Quantity) * p.Price
		if p.HasDiscount() {
			c.Discount += int64(it.Quantity) * (p.Price - p.DiscountPrice)
		}
	}

	c.Total = c.Subtotal - c.Discount
	return c
}
