// internal/pkg/auth/session_test.go
package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/lumina-storefront/internal/config"
)

func testConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "Lumina Storefront"
	cfg.Session.Secret = secret
	cfg.Session.TokenExpiry = time.Hour
	return cfg
}

func TestIssueAndValidateRoundTrip(t *testing.T) {
	m := NewSessionManager(testConfig("secret"))

	token, err := m.Issue("sess-1", "user-1", "a@example.com")
	require.NoError(t, err)

	claims, err := m.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "sess-1", claims.SessionID)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "a@example.com", claims.Email)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	issuer := NewSessionManager(testConfig("secret-a"))
	validator := NewSessionManager(testConfig("secret-b"))

	token, err := issuer.Issue("sess-1", "", "")
	require.NoError(t, err)

	_, err = validator.Validate(token)
	assert.Error(t, err)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	cfg := testConfig("secret")
	cfg.Session.TokenExpiry = -time.Minute
	m := NewSessionManager(cfg)

	token, err := m.Issue("sess-1", "", "")
	require.NoError(t, err)

	_, err = m.Validate(token)
	assert.Error(t, err)
}

func TestValidateRejectsGarbage(t *testing.T) {
	m := NewSessionManager(testConfig("secret"))

	_, err := m.Validate("not-a-token")
	assert.Error(t, err)
}

func TestExtractTokenFromHeader(t *testing.T) {
	assert.Equal(t, "abc", ExtractTokenFromHeader("Bearer abc"))
	assert.Equal(t, "", ExtractTokenFromHeader("abc"))
	assert.Equal(t, "", ExtractTokenFromHeader(""))
	assert.Equal(t, "", ExtractTokenFromHeader("Bearer "))
}

func TestPasswordHashAndVerify(t *testing.T) {
	cfg := testConfig("secret")
	cfg.Security.BcryptCost = 4
	p := NewPasswordManager(cfg)

	hash, err := p.Hash("pw")
	require.NoError(t, err)
	assert.NotEqual(t, "pw", hash)

	assert.NoError(t, p.Verify("pw", hash))
	assert.Error(t, p.Verify("other", hash))
}
