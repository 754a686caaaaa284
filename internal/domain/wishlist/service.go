// internal/domain/wishlist/service.go
package wishlist

import (
	"context"
	"errors"

	"github.com/your-org/lumina-storefront/internal/domain/cart"
	"github.com/your-org/lumina-storefront/internal/domain/catalog"
	"github.com/your-org/lumina-storefront/internal/domain/user"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrAlreadyInList   = errors.New("item already exists in wishlist")
	ErrNotInList       = errors.New("item not found in wishlist")
)

// recentlyViewedLimit caps the recently-viewed list, most recent first.
const recentlyViewedLimit = 10

// Service handles wishlist and recently-viewed logic on top of the
// authenticated user record.
type Service struct {
	users   *user.Store
	carts   *cart.Store
	catalog *catalog.Service
}

// NewService creates a new wishlist service
func NewService(users *user.Store, carts *cart.Store, cat *catalog.Service) *Service {
	return &Service{
		users:   users,
		carts:   carts,
		catalog: cat,
	}
}

// List resolves the active user's wishlist ids to products, dropping ids
// that no longer resolve.
func (s *Service) List(ctx context.Context, sessionID string) ([]catalog.Product, error) {
	u, err := s.users.Current(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, user.ErrNotAuthenticated
	}

	return s.resolve(u.Wishlist), nil
}

// Add puts the product on the active user's wishlist.
func (s *Service) Add(ctx context.Context, sessionID, productID string) (*user.User, error) {
	if _, ok := s.catalog.GetByID(productID); !ok {
		return nil, ErrProductNotFound
	}

	return s.users.UpdateWith(ctx, sessionID, func(u *user.User) error {
		if u.InWishlist(productID) {
			return ErrAlreadyInList
		}
		u.Wishlist = append(u.Wishlist, productID)
		return nil
	})
}

// Remove takes the product off the active user's wishlist.
func (s *Service) Remove(ctx context.Context, sessionID, productID string) (*user.User, error) {
	return s.users.UpdateWith(ctx, sessionID, func(u *user.User) error {
		for i, id := range u.Wishlist {
			if id == productID {
				u.Wishlist = append(u.Wishlist[:i], u.Wishlist[i+1:]...)
				return nil
			}
		}
		return ErrNotInList
	})
}

// MoveToCart adds a wishlisted product to the session's cart and removes it
// from the wishlist.
func (s *Service) MoveToCart(ctx context.Context, sessionID, productID string, quantity int) (*cart.Cart, error) {
	u, err := s.users.Current(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, user.ErrNotAuthenticated
	}
	if !u.InWishlist(productID) {
		return nil, ErrNotInList
	}

	if quantity <= 0 {
		quantity = 1
	}

	c, err := s.carts.AddItem(ctx, sessionID, productID, quantity)
	if err != nil {
		return nil, err
	}

	if _, err := s.Remove(ctx, sessionID, productID); err != nil {
		return nil, err
	}
	return c, nil
}

// RecordView notes that the active user looked at a product. The list is
// de-duplicated, most recent first, and capped.
func (s *Service) RecordView(ctx context.Context, sessionID, productID string) (*user.User, error) {
	if _, ok := s.catalog.GetByID(productID); !ok {
		return nil, ErrProductNotFound
	}

	return s.users.UpdateWith(ctx, sessionID, func(u *user.User) error {
		viewed := []string{productID}
		for _, id := range u.RecentlyViewed {
			if id == productID {
				continue
			}
			viewed = append(viewed, id)
		}
		if len(viewed) > recentlyViewedLimit {
			viewed = viewed[:recentlyViewedLimit]
		}
		u.RecentlyViewed = viewed
		return nil
	})
}

// RecentlyViewed resolves the active user's recently-viewed ids to products.
func (s *Service) RecentlyViewed(ctx context.Context, sessionID string) ([]catalog.Product, error) {
	u, err := s.users.Current(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, user.ErrNotAuthenticated
	}

	return s.resolve(u.RecentlyViewed), nil
}

func (s *Service) resolve(ids []string) []catalog.Product {
	out := make([]catalog.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := s.catalog.GetByID(id); ok {
			out = append(out, p)
		}
	}
	return out
}
