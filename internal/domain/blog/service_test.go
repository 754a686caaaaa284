// internal/domain/blog/service_test.go
package blog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService() *Service {
	return NewService([]Post{
		{ID: "a", Title: "Choosing the Right Pendant", Excerpt: "A buyer's guide", Content: "Pendant lights suit kitchen islands.", Category: "guides", Tags: []string{"indoor", "pendant"}, PublishedAt: time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)},
		{ID: "b", Title: "Smart Lighting Basics", Excerpt: "Automate your home", Content: "Smart bulbs pair with voice assistants.", Category: "smart-home", Tags: []string{"smart"}, PublishedAt: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)},
		{ID: "c", Title: "Garden Lighting Ideas", Excerpt: "Outdoor inspiration", Content: "Solar pathway lights need no wiring.", Category: "guides", Tags: []string{"outdoor"}, PublishedAt: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)},
	})
}

func TestServiceGetByID(t *testing.T) {
	s := testService()

	p, ok := s.GetByID("b")
	require.True(t, ok)
	assert.Equal(t, "Smart Lighting Basics", p.Title)

	_, ok = s.GetByID("zzz")
	assert.False(t, ok)
}

func TestServiceRecentOrdersNewestFirst(t *testing.T) {
	s := testService()

	recent := s.Recent(2)

	require.Len(t, recent, 2)
	assert.Equal(t, "b", recent[0].ID)
	assert.Equal(t, "c", recent[1].ID)
}

func TestServiceRecentDefaultLimit(t *testing.T) {
	s := testService()

	assert.Len(t, s.Recent(0), 3)
	assert.Len(t, s.Recent(-1), 3)
	assert.Len(t, s.Recent(100), 3)
}

func TestServiceByTagExactMatch(t *testing.T) {
	s := testService()

	posts := s.ByTag("outdoor")
	require.Len(t, posts, 1)
	assert.Equal(t, "c", posts[0].ID)

	// Tag matching is exact, not substring.
	assert.Empty(t, s.ByTag("out"))
}

func TestServiceByCategory(t *testing.T) {
	s := testService()

	assert.Len(t, s.ByCategory("guides"), 2)
	assert.Empty(t, s.ByCategory("news"))
}

func TestServiceSearch(t *testing.T) {
	s := testService()

	assert.Len(t, s.Search("LIGHTING"), 2)
	assert.Len(t, s.Search("voice assistants"), 1)
	assert.Len(t, s.Search("pendant"), 1)
	assert.Empty(t, s.Search("chandeliers"))
	assert.Len(t, s.Search(""), 3)
}

func TestDefaultDatasetIsWellFormed(t *testing.T) {
	s := NewService(DefaultDataset())

	for _, p := range s.All() {
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.Title)
		assert.False(t, p.PublishedAt.IsZero())
	}
}
