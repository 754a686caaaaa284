// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/your-org/lumina-storefront/internal/domain/blog"
	"github.com/your-org/lumina-storefront/internal/domain/cart"
	"github.com/your-org/lumina-storefront/internal/domain/catalog"
	"github.com/your-org/lumina-storefront/internal/domain/user"
	"github.com/your-org/lumina-storefront/internal/domain/wishlist"
	"github.com/your-org/lumina-storefront/internal/interfaces/http/handlers"
	"github.com/your-org/lumina-storefront/internal/interfaces/http/middleware"
	"github.com/your-org/lumina-storefront/internal/pkg/auth"
)

// Stores bundles the process-wide domain stores and services, constructed
// once in main and injected here.
type Stores struct {
	Catalog  *catalog.Service
	Blog     *blog.Service
	Cart     *cart.Store
	Users    *user.Store
	Wishlist *wishlist.Service
	Sessions *auth.SessionManager
}

// SetupRoutes wires all API routes onto the router group.
func SetupRoutes(rg *gin.RouterGroup, s *Stores) {
	catalogHandler := handlers.NewCatalogHandler(s.Catalog)
	blogHandler := handlers.NewBlogHandler(s.Blog)
	cartHandler := handlers.NewCartHandler(s.Cart)
	authHandler := handlers.NewAuthHandler(s.Users, s.Sessions)
	wishlistHandler := handlers.NewWishlistHandler(s.Wishlist)

	products := rg.Group("/products")
	{
		products.GET("", catalogHandler.GetProducts)
		products.GET("/search", catalogHandler.SearchProducts)
		products.GET("/featured", catalogHandler.GetFeaturedProducts)
		products.GET("/new", catalogHandler.GetNewArrivals)
		products.GET("/:id", catalogHandler.GetProduct)
		products.GET("/:id/related", catalogHandler.GetRelatedProducts)
		products.POST("/:id/view", wishlistHandler.RecordProductView)
	}

	blogGroup := rg.Group("/blog")
	{
		blogGroup.GET("", blogHandler.GetPosts)
		blogGroup.GET("/recent", blogHandler.GetRecentPosts)
		blogGroup.GET("/:id", blogHandler.GetPost)
	}

	// Cart routes work for anonymous and authenticated sessions alike.
	cartGroup := rg.Group("/cart")
	{
		cartGroup.GET("", cartHandler.GetCart)
		cartGroup.GET("/count", cartHandler.GetCartCount)
		cartGroup.POST("/items", cartHandler.AddToCart)
		cartGroup.PUT("/items/:id", cartHandler.UpdateCartItem)
		cartGroup.DELETE("/items/:id", cartHandler.RemoveFromCart)
		cartGroup.DELETE("", cartHandler.ClearCart)
	}

	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/logout", authHandler.Logout)
		authGroup.GET("/profile", authHandler.GetProfile)
		authGroup.PUT("/profile", authHandler.UpdateProfile)
	}

	account := rg.Group("/account")
	account.Use(middleware.Authenticated(s.Users))
	{
		account.GET("/recently-viewed", wishlistHandler.GetRecentlyViewed)
		account.POST("/addresses", authHandler.AddAddress)
		account.DELETE("/addresses/:id", authHandler.RemoveAddress)
	}

	wishlistGroup := rg.Group("/wishlist")
	wishlistGroup.Use(middleware.Authenticated(s.Users))
	{
		wishlistGroup.GET("", wishlistHandler.GetWishlist)
		wishlistGroup.POST("/items", wishlistHandler.AddToWishlist)
		wishlistGroup.DELETE("/items/:id", wishlistHandler.RemoveFromWishlist)
		wishlistGroup.POST("/items/:id/move-to-cart", wishlistHandler.MoveToCart)
	}
}
