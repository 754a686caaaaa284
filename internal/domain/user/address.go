// internal/domain/user/address.go
package user

import (
	"context"

	"github.com/google/uuid"
)

// AddAddress appends an address to the active user. The first address, or
// one flagged as default, becomes the single default.
func (s *Store) AddAddress(ctx context.Context, sessionID string, addr Address) (*User, error) {
	return s.mutateCurrent(ctx, sessionID, func(u *User) error {
		addr.ID = uuid.New().String()

		if addr.IsDefault || len(u.Addresses) == 0 {
			addr.IsDefault = true
			for i := range u.Addresses {
				u.Addresses[i].IsDefault = false
			}
		}

		u.Addresses = append(u.Addresses, addr)
		return nil
	})
}

// RemoveAddress deletes the address with the given id. Removing an absent
// address is a no-op. If the default address is removed, the first
// remaining address becomes the default.
func (s *Store) RemoveAddress(ctx context.Context, sessionID, addressID string) (*User, error) {
	return s.mutateCurrent(ctx, sessionID, func(u *User) error {
		removedDefault := false
		kept := make([]Address, 0, len(u.Addresses))
		for _, a := range u.Addresses {
			if a.ID == addressID {
				removedDefault = a.IsDefault
				continue
			}
			kept = append(kept, a)
		}

		if removedDefault && len(kept) > 0 {
			kept[0].IsDefault = true
		}

		u.Addresses = kept
		return nil
	})
}
