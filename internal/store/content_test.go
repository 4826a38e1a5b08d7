package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlogPosts(t *testing.T) {
	s := testStore(t)

	p := s.AddBlogPost("  Hello  ", "  body text  ", nil)
	assert.Equal(t, 1, p.ID)
	assert.Equal(t, "Hello", p.Title, "title is trimmed")
	assert.Equal(t, "body text", p.Content)
	assert.NotNil(t, p.Tags)

	s.AddBlogPost("Second", "more", []string{"news"})

	posts := s.BlogPosts(50)
	require.Len(t, posts, 2)
	assert.Equal(t, "Second", posts[0].Title, "posts are most-recent-first")

	assert.Len(t, s.BlogPosts(1), 1)

	assert.True(t, s.DeleteBlogPost(p.ID))
	assert.False(t, s.DeleteBlogPost(p.ID))
}

func TestPortfolioItems(t *testing.T) {
	s := testStore(t)

	item := s.AddPortfolioItem("HUD", "custom hud", "https://img.example/hud.png", []string{"ui"})
	assert.Equal(t, 1, item.ID)

	s.AddPortfolioItem("Anticheat", "", "", nil)
	items := s.PortfolioItems()
	require.Len(t, items, 2)
	assert.Equal(t, "Anticheat", items[0].Title)
	assert.NotNil(t, items[0].Tags)

	assert.True(t, s.DeletePortfolioItem(item.ID))
	assert.False(t, s.DeletePortfolioItem(999))
}

func TestChangelogEntries(t *testing.T) {
	s := testStore(t)

	e := s.AddChangelogEntry("v1.2", "fixed it", ChangeFix)
	assert.Equal(t, ChangeFix, e.Type)

	odd := s.AddChangelogEntry("v1.3", "??", "bogus-type")
	assert.Equal(t, ChangeImprovement, odd.Type, "unknown types default to improvement")

	entries := s.ChangelogEntries(50)
	require.Len(t, entries, 2)

	assert.Len(t, s.ChangelogEntries(1), 1)
	assert.True(t, s.DeleteChangelogEntry(e.ID))
	assert.False(t, s.DeleteChangelogEntry(e.ID))
}
