package utils

import (
	"net/url"
	"strings"
)

const (
	tmdbImageBase    = "https://image.tmdb.org/t/p/"
	placeholderBase  = "https://picsum.photos/seed/"
	DefaultImageSize = "w500"
)

// ResolveImageURL maps an opaque stored image reference to a displayable URL.
// Absolute URLs pass through, TMDB-style poster paths get the CDN prefix and
// everything else resolves to a deterministic placeholder so the UI always
// has something to render.
func ResolveImageURL(path, size, fallbackSeed string) string {
	if size == "" {
		size = DefaultImageSize
	}

	if path == "" {
		return PlaceholderImageURL(fallbackSeed)
	}

	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}

	if isTMDBPath(path) {
		return tmdbImageBase + size + path
	}

	return PlaceholderImageURL(fallbackSeed)
}

// PlaceholderImageURL returns a stable placeholder for the given seed.
func PlaceholderImageURL(seed string) string {
	if seed == "" {
		seed = "movie"
	}
	seed = strings.Join(strings.Fields(seed), "-")
	return placeholderBase + url.PathEscape(seed) + "/500/750"
}

// isTMDBPath matches TMDB poster/backdrop paths like /abc123.jpg.
func isTMDBPath(path string) bool {
	if !strings.HasPrefix(path, "/") {
		return false
	}
	if strings.Count(path, "/") != 1 {
		return false
	}
	return strings.HasSuffix(path, ".jpg") || strings.HasSuffix(path, ".png")
}
