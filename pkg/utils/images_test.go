package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveImageURL(t *testing.T) {
	t.Run("tmdb path gets the CDN prefix", func(t *testing.T) {
		got := ResolveImageURL("/gbVwHl4YPSq6BcC92TQpe7qUTh6.jpg", "w500", "fallback")
		assert.Equal(t, "https://image.tmdb.org/t/p/w500/gbVwHl4YPSq6BcC92TQpe7qUTh6.jpg", got)
	})

	t.Run("empty size uses the default", func(t *testing.T) {
		got := ResolveImageURL("/poster.png", "", "fallback")
		assert.Equal(t, "https://image.tmdb.org/t/p/w500/poster.png", got)
	})

	t.Run("absolute URLs pass through", func(t *testing.T) {
		got := ResolveImageURL("https://example.com/poster.jpg", "w500", "fallback")
		assert.Equal(t, "https://example.com/poster.jpg", got)
	})

	t.Run("empty path falls back to placeholder", func(t *testing.T) {
		got := ResolveImageURL("", "w500", "The Housemaid")
		assert.Equal(t, "https://picsum.photos/seed/The-Housemaid/500/750", got)
	})

	t.Run("non-tmdb relative path falls back", func(t *testing.T) {
		got := ResolveImageURL("posters/local.bmp", "w500", "seed")
		assert.Equal(t, "https://picsum.photos/seed/seed/500/750", got)
	})
}

func TestPlaceholderImageURL(t *testing.T) {
	assert.Equal(t, "https://picsum.photos/seed/movie/500/750", PlaceholderImageURL(""))
	assert.Equal(t, "https://picsum.photos/seed/Zootopia-2/500/750", PlaceholderImageURL("Zootopia 2"))
}
