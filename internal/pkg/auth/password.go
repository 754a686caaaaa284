// internal/pkg/auth/password.go
package auth

import (
	"fmt"

	"github.com/your-org/lumina-storefront/internal/config"
	"golang.org/x/crypto/bcrypt"
)

// PasswordManager handles password hashing and verification. Passwords are
// never stored in the clear; the directory only ever holds bcrypt hashes.
// No strength policy is enforced: this is a demo storefront.
type PasswordManager struct {
	cost int
}

// NewPasswordManager creates a new password manager
func NewPasswordManager(cfg *config.Config) *PasswordManager {
	return &PasswordManager{
		cost: cfg.Security.BcryptCost,
	}
}

// Hash hashes a password using bcrypt
func (p *PasswordManager) Hash(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), p.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashedBytes), nil
}

// Verify verifies a password against its hash
func (p *PasswordManager) Verify(password, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
