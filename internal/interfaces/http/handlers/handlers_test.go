// internal/interfaces/http/handlers/handlers_test.go
package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/lumina-storefront/internal/config"
	"github.com/your-org/lumina-storefront/internal/domain/blog"
	"github.com/your-org/lumina-storefront/internal/domain/cart"
	"github.com/your-org/lumina-storefront/internal/domain/catalog"
	"github.com/your-org/lumina-storefront/internal/domain/user"
	"github.com/your-org/lumina-storefront/internal/domain/wishlist"
	"github.com/your-org/lumina-storefront/internal/infrastructure/storage"
	"github.com/your-org/lumina-storefront/internal/interfaces/http/middleware"
	"github.com/your-org/lumina-storefront/internal/interfaces/http/routes"
	"github.com/your-org/lumina-storefront/internal/pkg/auth"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.App.Name = "Lumina Storefront"
	cfg.Security.BcryptCost = 4
	cfg.Session.Secret = "test-secret"
	cfg.Session.TokenExpiry = time.Hour

	mem := storage.NewMemory()
	cat := catalog.NewService(catalog.DefaultDataset())

	users := user.NewStore(mem, auth.NewPasswordManager(cfg))
	carts := cart.NewStore(mem, cat)
	sessions := auth.NewSessionManager(cfg)

	router := gin.New()
	router.Use(middleware.Session(sessions))

	routes.SetupRoutes(router.Group("/api/v1"), &routes.Stores{
		Catalog:  cat,
		Blog:     blog.NewService(blog.DefaultDataset()),
		Cart:     carts,
		Users:    users,
		Wishlist: wishlist.NewService(users, carts, cat),
		Sessions: sessions,
	})
	return router
}

// do issues a request pinned to a fixed session so state accumulates across
// calls within a test.
func do(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: "session_id", Value: "test-session"})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestGetProducts(t *testing.T) {
	router := newTestRouter(t)

	w := do(router, http.MethodGet, "/api/v1/products", "")
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.EqualValues(t, 8, body["count"])
}

func TestGetProductNotFound(t *testing.T) {
	router := newTestRouter(t)

	w := do(router, http.MethodGet, "/api/v1/products/999", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCartFlow(t *testing.T) {
	router := newTestRouter(t)

	w := do(router, http.MethodPost, "/api/v1/cart/items", `{"product_id":"1","quantity":2}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(router, http.MethodGet, "/api/v1/cart", "")
	require.Equal(t, http.StatusOK, w.Code)

	data := decode(t, w)["data"].(map[string]interface{})
	assert.EqualValues(t, 2, data["totalItems"])
	// Product 1: 12999 full price, 9999 discounted.
	assert.EqualValues(t, 25998, data["subtotal"])
	assert.EqualValues(t, 6000, data["discount"])
	assert.EqualValues(t, 19998, data["total"])
}

func TestUpdateCartItemToZeroRemovesIt(t *testing.T) {
	router := newTestRouter(t)

	w := do(router, http.MethodPost, "/api/v1/cart/items", `{"product_id":"1","quantity":2}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(router, http.MethodPut, "/api/v1/cart/items/1", `{"quantity":0}`)
	require.Equal(t, http.StatusOK, w.Code)

	data := decode(t, w)["data"].(map[string]interface{})
	assert.Empty(t, data["items"])
	assert.EqualValues(t, 0, data["totalItems"])
}

func TestAddToCartRejectsInvalidBody(t *testing.T) {
	router := newTestRouter(t)

	w := do(router, http.MethodPost, "/api/v1/cart/items", `{"quantity":2}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(router, http.MethodPost, "/api/v1/cart/items", `{"product_id":"1","quantity":0}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCartCount(t *testing.T) {
	router := newTestRouter(t)

	_ = do(router, http.MethodPost, "/api/v1/cart/items", `{"product_id":"1","quantity":2}`)
	_ = do(router, http.MethodPost, "/api/v1/cart/items", `{"product_id":"2","quantity":1}`)

	w := do(router, http.MethodGet, "/api/v1/cart/count", "")
	require.Equal(t, http.StatusOK, w.Code)

	data := decode(t, w)["data"].(map[string]interface{})
	assert.EqualValues(t, 3, data["count"])
}

func TestRegisterLoginAndProfile(t *testing.T) {
	router := newTestRouter(t)

	w := do(router, http.MethodPost, "/api/v1/auth/register", `{"email":"a@example.com","password":"pw123","name":"Alice"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	data := decode(t, w)["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])
	registered := data["user"].(map[string]interface{})
	assert.Equal(t, "a@example.com", registered["email"])
	assert.NotContains(t, registered, "password")

	// Duplicate registration is a conflict.
	w = do(router, http.MethodPost, "/api/v1/auth/register", `{"email":"a@example.com","password":"other","name":"Bob"}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	// The session is signed in.
	w = do(router, http.MethodGet, "/api/v1/auth/profile", "")
	require.Equal(t, http.StatusOK, w.Code)
	state := decode(t, w)["data"].(map[string]interface{})
	assert.Equal(t, true, state["isAuthenticated"])

	// Logout returns the session to anonymous.
	w = do(router, http.MethodPost, "/api/v1/auth/logout", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = do(router, http.MethodGet, "/api/v1/auth/profile", "")
	require.Equal(t, http.StatusOK, w.Code)
	state = decode(t, w)["data"].(map[string]interface{})
	assert.Equal(t, false, state["isAuthenticated"])

	// And logging back in works.
	w = do(router, http.MethodPost, "/api/v1/auth/login", `{"email":"a@example.com","password":"pw123"}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	router := newTestRouter(t)

	w := do(router, http.MethodPost, "/api/v1/auth/register", `{"email":"a@example.com","password":"pw123","name":"Alice"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(router, http.MethodPost, "/api/v1/auth/login", `{"email":"a@example.com","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdateProfileRequiresAuthentication(t *testing.T) {
	router := newTestRouter(t)

	w := do(router, http.MethodPut, "/api/v1/auth/profile", `{"name":"Ghost"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWishlistRequiresAuthentication(t *testing.T) {
	router := newTestRouter(t)

	w := do(router, http.MethodGet, "/api/v1/wishlist", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWishlistFlow(t *testing.T) {
	router := newTestRouter(t)

	w := do(router, http.MethodPost, "/api/v1/auth/register", `{"email":"a@example.com","password":"pw","name":"Alice"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(router, http.MethodPost, "/api/v1/wishlist/items", `{"product_id":"2"}`)
	require.Equal(t, http.StatusOK, w.Code)

	// Adding it twice conflicts.
	w = do(router, http.MethodPost, "/api/v1/wishlist/items", `{"product_id":"2"}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(router, http.MethodGet, "/api/v1/wishlist", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.EqualValues(t, 1, body["count"])

	// Move it to the cart.
	w = do(router, http.MethodPost, "/api/v1/wishlist/items/2/move-to-cart", `{"quantity":3}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(router, http.MethodGet, "/api/v1/wishlist", "")
	body = decode(t, w)
	assert.EqualValues(t, 0, body["count"])

	w = do(router, http.MethodGet, "/api/v1/cart/count", "")
	data := decode(t, w)["data"].(map[string]interface{})
	assert.EqualValues(t, 3, data["count"])
}

func TestRecentlyViewedFlow(t *testing.T) {
	router := newTestRouter(t)

	// Anonymous views are accepted and dropped.
	w := do(router, http.MethodPost, "/api/v1/products/1/view", "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(router, http.MethodPost, "/api/v1/auth/register", `{"email":"a@example.com","password":"pw","name":"Alice"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(router, http.MethodPost, "/api/v1/products/1/view", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = do(router, http.MethodPost, "/api/v1/products/2/view", "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(router, http.MethodGet, "/api/v1/account/recently-viewed", "")
	require.Equal(t, http.StatusOK, w.Code)

	items := decode(t, w)["data"].([]interface{})
	require.Len(t, items, 2)
	first := items[0].(map[string]interface{})
	assert.Equal(t, "2", first["id"])
}

func TestBlogEndpoints(t *testing.T) {
	router := newTestRouter(t)

	w := do(router, http.MethodGet, "/api/v1/blog", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = do(router, http.MethodGet, "/api/v1/blog/recent?limit=2", "")
	require.Equal(t, http.StatusOK, w.Code)
	posts := decode(t, w)["data"].([]interface{})
	assert.Len(t, posts, 2)

	w = do(router, http.MethodGet, "/api/v1/blog/unknown-post", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddressFlow(t *testing.T) {
	router := newTestRouter(t)

	w := do(router, http.MethodPost, "/api/v1/auth/register", `{"email":"a@example.com","password":"pw","name":"Alice"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(router, http.MethodPost, "/api/v1/account/addresses", `{"name":"Home","line1":"1 Main St","city":"Springfield","state":"IL","postalCode":"62701","country":"US"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	u := decode(t, w)["data"].(map[string]interface{})
	addresses := u["addresses"].([]interface{})
	require.Len(t, addresses, 1)
	addr := addresses[0].(map[string]interface{})
	assert.Equal(t, true, addr["isDefault"])

	w = do(router, http.MethodDelete, "/api/v1/account/addresses/"+addr["id"].(string), "")
	require.Equal(t, http.StatusOK, w.Code)

	u = decode(t, w)["data"].(map[string]interface{})
	assert.Empty(t, u["addresses"])
}
