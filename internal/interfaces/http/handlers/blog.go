// internal/interfaces/http/handlers/blog.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/lumina-storefront/internal/domain/blog"
)

// BlogHandler handles blog endpoints
type BlogHandler struct {
	blog *blog.Service
}

// NewBlogHandler creates a new blog handler
func NewBlogHandler(b *blog.Service) *BlogHandler {
	return &BlogHandler{blog: b}
}

// GetPosts handles GET /blog with optional tag, category, and q filters.
func (h *BlogHandler) GetPosts(c *gin.Context) {
	var posts []blog.Post

	switch {
	case c.Query("tag") != "":
		posts = h.blog.ByTag(c.Query("tag"))
	case c.Query("category") != "":
		posts = h.blog.ByCategory(c.Query("category"))
	case c.Query("q") != "":
		posts = h.blog.Search(c.Query("q"))
	default:
		posts = h.blog.All()
	}

	if posts == nil {
		posts = []blog.Post{}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Posts retrieved successfully",
		"data":    posts,
		"count":   len(posts),
	})
}

// GetRecentPosts handles GET /blog/recent?limit=
func (h *BlogHandler) GetRecentPosts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "3"))

	c.JSON(http.StatusOK, gin.H{
		"message": "Recent posts retrieved successfully",
		"data":    h.blog.Recent(limit),
	})
}

// GetPost handles GET /blog/:id
func (h *BlogHandler) GetPost(c *gin.Context) {
	post, ok := h.blog.GetByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Post not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Post retrieved successfully",
		"data":    post,
	})
}
