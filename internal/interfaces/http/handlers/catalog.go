// internal/interfaces/http/handlers/catalog.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/lumina-storefront/internal/domain/catalog"
)

// CatalogHandler handles product catalog endpoints
type CatalogHandler struct {
	catalog *catalog.Service
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(cat *catalog.Service) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

// GetProducts handles GET /products with optional category and q filters.
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	var products []catalog.Product

	switch {
	case c.Query("category") != "":
		products = h.catalog.ByCategory(catalog.Category(c.Query("category")))
	case c.Query("q") != "":
		products = h.catalog.Search(c.Query("q"))
	default:
		products = h.catalog.All()
	}

	if products == nil {
		products = []catalog.Product{}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Products retrieved successfully",
		"data":    products,
		"count":   len(products),
	})
}

// SearchProducts handles GET /products/search?q=
func (h *CatalogHandler) SearchProducts(c *gin.Context) {
	products := h.catalog.Search(c.Query("q"))
	if products == nil {
		products = []catalog.Product{}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Search completed successfully",
		"data":    products,
		"count":   len(products),
	})
}

// GetProduct handles GET /products/:id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	product, ok := h.catalog.GetByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product retrieved successfully",
		"data":    product,
	})
}

// GetRelatedProducts handles GET /products/:id/related
func (h *CatalogHandler) GetRelatedProducts(c *gin.Context) {
	if _, ok := h.catalog.GetByID(c.Param("id")); !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	related := h.catalog.Related(c.Param("id"))
	if related == nil {
		related = []catalog.Product{}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Related products retrieved successfully",
		"data":    related,
	})
}

// GetFeaturedProducts handles GET /products/featured
func (h *CatalogHandler) GetFeaturedProducts(c *gin.Context) {
	products := h.catalog.Featured()
	if products == nil {
		products = []catalog.Product{}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Featured products retrieved successfully",
		"data":    products,
	})
}

// GetNewArrivals handles GET /products/new
func (h *CatalogHandler) GetNewArrivals(c *gin.Context) {
	products := h.catalog.NewArrivals()
	if products == nil {
		products = []catalog.Product{}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "New arrivals retrieved successfully",
		"data":    products,
	})
}
