// internal/domain/user/entity.go
package user

import "time"

// User represents a registered storefront account. The full record,
// password included, lives in the persisted directory; Sanitized copies are
// what leave the store.
type User struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	Password       string    `json:"password,omitempty"` // bcrypt hash, stripped from responses
	CreatedAt      time.Time `json:"createdAt"`
	Wishlist       []string  `json:"wishlist"`
	RecentlyViewed []string  `json:"recentlyViewed"`
	Addresses      []Address `json:"addresses"`
}

// Address represents a saved shipping address.
type Address struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
	IsDefault  bool   `json:"isDefault"`
}

// AuthState is the two-state session view: Anonymous (User nil) or
// Authenticated.
type AuthState struct {
	User            *User `json:"user"`
	IsAuthenticated bool  `json:"isAuthenticated"`
}

// Sanitized returns a copy of the user with the password hash cleared.
func (u User) Sanitized() User {
	u.Password = ""
	return u
}

// InWishlist reports whether the product id is on the user's wishlist.
func (u *User) InWishlist(productID string) bool {
	for _, id := range u.Wishlist {
		if id == productID {
			return true
		}
	}
	return false
}

// DefaultAddress returns the user's default address, if any.
func (u *User) DefaultAddress() (Address, bool) {
	for _, a := range u.Addresses {
		if a.IsDefault {
			return a, true
		}
	}
	return Address{}, false
}
