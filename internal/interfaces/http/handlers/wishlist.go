// internal/interfaces/http/handlers/wishlist.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/lumina-storefront/internal/domain/user"
	"github.com/your-org/lumina-storefront/internal/domain/wishlist"
	"github.com/your-org/lumina-storefront/internal/interfaces/http/middleware"
)

// WishlistHandler handles wishlist and recently-viewed endpoints
type WishlistHandler struct {
	wishlist *wishlist.Service
}

// NewWishlistHandler creates a new wishlist handler
func NewWishlistHandler(svc *wishlist.Service) *WishlistHandler {
	return &WishlistHandler{wishlist: svc}
}

// AddToWishlistRequest represents add to wishlist request
type AddToWishlistRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

// MoveToCartRequest represents the optional quantity for move-to-cart.
type MoveToCartRequest struct {
	Quantity int `json:"quantity"`
}

// GetWishlist handles GET /wishlist
func (h *WishlistHandler) GetWishlist(c *gin.Context) {
	products, err := h.wishlist.List(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		h.renderError(c, err, "Failed to retrieve wishlist")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Wishlist retrieved successfully",
		"data":    products,
		"count":   len(products),
	})
}

// AddToWishlist handles POST /wishlist/items
func (h *WishlistHandler) AddToWishlist(c *gin.Context) {
	var req AddToWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	u, err := h.wishlist.Add(c.Request.Context(), middleware.SessionID(c), req.ProductID)
	if err != nil {
		h.renderError(c, err, "Failed to add item to wishlist")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to wishlist successfully",
		"data":    u,
	})
}

// RemoveFromWishlist handles DELETE /wishlist/items/:id
func (h *WishlistHandler) RemoveFromWishlist(c *gin.Context) {
	u, err := h.wishlist.Remove(c.Request.Context(), middleware.SessionID(c), c.Param("id"))
	if err != nil {
		h.renderError(c, err, "Failed to remove item from wishlist")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from wishlist successfully",
		"data":    u,
	})
}

// MoveToCart handles POST /wishlist/items/:id/move-to-cart
func (h *WishlistHandler) MoveToCart(c *gin.Context) {
	var req MoveToCartRequest
	// Body is optional; quantity defaults to 1.
	_ = c.ShouldBindJSON(&req)

	cartState, err := h.wishlist.MoveToCart(c.Request.Context(), middleware.SessionID(c), c.Param("id"), req.Quantity)
	if err != nil {
		h.renderError(c, err, "Failed to move item to cart")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item moved to cart successfully",
		"data":    cartState,
	})
}

// RecordProductView handles POST /products/:id/view. Anonymous sessions are
// accepted and ignored; only authenticated users accumulate history.
func (h *WishlistHandler) RecordProductView(c *gin.Context) {
	_, err := h.wishlist.RecordView(c.Request.Context(), middleware.SessionID(c), c.Param("id"))
	if err != nil && !errors.Is(err, user.ErrNotAuthenticated) {
		h.renderError(c, err, "Failed to record product view")
		return
	}

	c.Status(http.StatusNoContent)
}

// GetRecentlyViewed handles GET /account/recently-viewed
func (h *WishlistHandler) GetRecentlyViewed(c *gin.Context) {
	products, err := h.wishlist.RecentlyViewed(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		h.renderError(c, err, "Failed to retrieve recently viewed products")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Recently viewed products retrieved successfully",
		"data":    products,
	})
}

func (h *WishlistHandler) renderError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, user.ErrNotAuthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
	case errors.Is(err, wishlist.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, wishlist.ErrAlreadyInList), errors.Is(err, wishlist.ErrNotInList):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
