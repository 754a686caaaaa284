// internal/domain/blog/entity.go
package blog

import "time"

// Post represents a published blog article. Posts are loaded once at process
// start and are immutable afterwards.
type Post struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Excerpt     string    `json:"excerpt"`
	Content     string    `json:"content"`
	Author      string    `json:"author"`
	PublishedAt time.Time `json:"publishedAt"`
	Image       string    `json:"image"`
	Tags        []string  `json:"tags"`
	Category    string    `json:"category"`
}
