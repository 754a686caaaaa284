// internal/domain/user/store_test.go
package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/lumina-storefront/internal/config"
	"github.com/your-org/lumina-storefront/internal/infrastructure/storage"
	"github.com/your-org/lumina-storefront/internal/pkg/auth"
)

func newTestStore() (*Store, storage.Store) {
	cfg := &config.Config{}
	cfg.Security.BcryptCost = 4 // keep the test suite fast
	mem := storage.NewMemory()
	return NewStore(mem, auth.NewPasswordManager(cfg)), mem
}

func TestRegisterSignsSessionIn(t *testing.T) {
	s, _ := newTestStore()
	ctx := context.Background()

	u, err := s.Register(ctx, "sess", "a@example.com", "pw", "Alice")
	require.NoError(t, err)

	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "a@example.com", u.Email)
	assert.Equal(t, "Alice", u.Name)
	assert.Empty(t, u.Password)

	current, err := s.Current(ctx, "sess")
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, u.ID, current.ID)
}

func TestRegisterDuplicateEmailKeepsDirectoryIntact(t *testing.T) {
	s, mem := newTestStore()
	ctx := context.Background()

	first, err := s.Register(ctx, "sess1", "a@example.com", "pw", "Alice")
	require.NoError(t, err)

	_, err = s.Register(ctx, "sess2", "a@example.com", "pw2", "Imposter")
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	// The failed attempt neither grew the directory nor signed sess2 in.
	raw, err := mem.Get(ctx, "users")
	require.NoError(t, err)
	assert.Contains(t, raw, first.ID)

	current, err := s.Current(ctx, "sess2")
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestLoginWithValidCredentials(t *testing.T) {
	s, _ := newTestStore()
	ctx := context.Background()

	_, err := s.Register(ctx, "sess1", "a@example.com", "pw", "Alice")
	require.NoError(t, err)

	u, err := s.Login(ctx, "sess2", "a@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "Alice", u.Name)
	assert.Empty(t, u.Password)
}

func TestLoginWrongPasswordLeavesSessionAnonymous(t *testing.T) {
	s, _ := newTestStore()
	ctx := context.Background()

	_, err := s.Register(ctx, "sess1", "a@example.com", "pw", "Alice")
	require.NoError(t, err)

	_, err = s.Login(ctx, "sess2", "a@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	state, err := s.State(ctx, "sess2")
	require.NoError(t, err)
	assert.False(t, state.IsAuthenticated)
	assert.Nil(t, state.User)
}

func TestLoginUnknownEmailSameError(t *testing.T) {
	s, _ := newTestStore()

	_, err := s.Login(context.Background(), "sess", "nobody@example.com", "pw")

	// Unknown email and wrong password are indistinguishable to the caller.
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogoutIsIdempotent(t *testing.T) {
	s, _ := newTestStore()
	ctx := context.Background()

	_, err := s.Register(ctx, "sess", "a@example.com", "pw", "Alice")
	require.NoError(t, err)

	require.NoError(t, s.Logout(ctx, "sess"))
	require.NoError(t, s.Logout(ctx, "sess"))

	current, err := s.Current(ctx, "sess")
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestLogoutAnonymousSessionIsNoOp(t *testing.T) {
	s, _ := newTestStore()

	assert.NoError(t, s.Logout(context.Background(), "never-seen"))
}

func TestUpdateUserWhileAnonymous(t *testing.T) {
	s, _ := newTestStore()

	_, err := s.UpdateUser(context.Background(), "sess", User{Name: "Ghost"})

	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestUpdateUserPreservesIdentityFields(t *testing.T) {
	s, _ := newTestStore()
	ctx := context.Background()

	registered, err := s.Register(ctx, "sess", "a@example.com", "pw", "Alice")
	require.NoError(t, err)

	updated, err := s.UpdateUser(ctx, "sess", User{
		ID:    "forged-id",
		Email: "forged@example.com",
		Name:  "Alice Cooper",
	})
	require.NoError(t, err)

	assert.Equal(t, registered.ID, updated.ID)
	assert.Equal(t, "a@example.com", updated.Email)
	assert.Equal(t, "Alice Cooper", updated.Name)

	// Profile changes survive a re-login, so the directory was written too.
	u, err := s.Login(ctx, "other", "a@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "Alice Cooper", u.Name)
}

func TestCurrentDropsStaleSession(t *testing.T) {
	s, mem := newTestStore()
	ctx := context.Background()

	_, err := s.Register(ctx, "sess", "a@example.com", "pw", "Alice")
	require.NoError(t, err)

	// Wipe the directory behind the session's back.
	require.NoError(t, mem.Set(ctx, "users", "[]"))

	current, err := s.Current(ctx, "sess")
	require.NoError(t, err)
	assert.Nil(t, current)

	// The stale session record was deleted along the way.
	_, err = mem.Get(ctx, "user:sess")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestStateReflectsSessionLifecycle(t *testing.T) {
	s, _ := newTestStore()
	ctx := context.Background()

	state, err := s.State(ctx, "sess")
	require.NoError(t, err)
	assert.False(t, state.IsAuthenticated)

	_, err = s.Register(ctx, "sess", "a@example.com", "pw", "Alice")
	require.NoError(t, err)

	state, err = s.State(ctx, "sess")
	require.NoError(t, err)
	assert.True(t, state.IsAuthenticated)
	require.NotNil(t, state.User)
	assert.Empty(t, state.User.Password)

	require.NoError(t, s.Logout(ctx, "sess"))

	state, err = s.State(ctx, "sess")
	require.NoError(t, err)
	assert.False(t, state.IsAuthenticated)
}

func TestPasswordsAreStoredHashed(t *testing.T) {
	s, mem := newTestStore()
	ctx := context.Background()

	_, err := s.Register(ctx, "sess", "a@example.com", "hunter2", "Alice")
	require.NoError(t, err)

	raw, err := mem.Get(ctx, "users")
	require.NoError(t, err)
	assert.NotContains(t, raw, "hunter2")
}
