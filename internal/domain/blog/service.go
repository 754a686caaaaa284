// internal/domain/blog/service.go
package blog

import (
	"sort"
	"strings"
)

// Service is a read-only query view over the blog dataset.
type Service struct {
	posts []Post
	byID  map[string]int
}

// NewService creates a blog service over the given posts.
func NewService(posts []Post) *Service {
	byID := make(map[string]int, len(posts))
	for i, p := range posts {
		byID[p.ID] = i
	}
	return &Service{
		posts: posts,
		byID:  byID,
	}
}

// All returns every post in dataset order.
func (s *Service) All() []Post {
	out := make([]Post, len(s.posts))
	copy(out, s.posts)
	return out
}

// GetByID returns the post with the given id.
func (s *Service) GetByID(id string) (Post, bool) {
	i, ok := s.byID[id]
	if !ok {
		return Post{}, false
	}
	return s.posts[i], true
}

// Recent returns up to limit posts, most recently published first. A limit
// of zero or less falls back to three, the storefront's home page strip.
func (s *Service) Recent(limit int) []Post {
	if limit <= 0 {
		limit = 3
	}

	out := s.All()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PublishedAt.After(out[j].PublishedAt)
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// ByTag returns posts carrying the exact tag.
func (s *Service) ByTag(tag string) []Post {
	var out []Post
	for _, p := range s.posts {
		for _, t := range p.Tags {
			if t == tag {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

// ByCategory returns posts in the given category.
func (s *Service) ByCategory(category string) []Post {
	var out []Post
	for _, p := range s.posts {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Search returns posts whose title, excerpt, content, or tags contain the
// query, case-insensitively. An empty query returns all posts.
func (s *Service) Search(query string) []Post {
	if query == "" {
		return s.All()
	}

	q := strings.ToLower(query)
	var out []Post
	for _, p := range s.posts {
		if strings.Contains(strings.ToLower(p.Title), q) ||
			strings.Contains(strings.ToLower(p.Excerpt), q) ||
			strings.Contains(strings.ToLower(p.Content), q) ||
			tagsMatch(p.Tags, q) {
			out = append(out, p)
		}
	}
	return out
}

func tagsMatch(tags []string, q string) bool {
	for _, t := range tags {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	return false
}
