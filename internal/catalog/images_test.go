package catalog

import (
	"testing"

	"go-acoustics-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCatalogJSON = `{
  "placeholderImages": [
    {
      "id": "hero",
      "description": "Hero image",
      "folder": "hero",
      "desktop": { "file": "hero-desktop.webp", "width": 1920, "height": 1080 },
      "mobile": { "file": "hero-mobile.webp", "width": 828, "height": 1200 }
    },
    {
      "id": "desktop-only",
      "description": "Only a desktop variant",
      "desktop": { "imageUrl": "https://cdn.example.com/desktop.webp", "width": 1600 }
    },
    {
      "id": "flat-file",
      "description": "Flat file entry",
      "folder": "site maps",
      "file": "contact map.webp"
    },
    {
      "id": "flat-url",
      "description": "Absolute URL entry",
      "imageUrl": "https://images.example.com/photo.jpg?w=1200"
    }
  ]
}`

func newTestCatalog(t *testing.T) *ImageCatalog {
	t.Helper()
	c, err := NewImageCatalogFrom([]byte(testCatalogJSON), "/images")
	require.NoError(t, err)
	return c
}

func TestImageCatalogConstruction(t *testing.T) {
	t.Run("Embedded catalog builds", func(t *testing.T) {
		c, err := NewImageCatalog("/images")
		require.NoError(t, err)

		for _, id := range []string{"home-hero", "contact-map", "service-noise-survey"} {
			_, ok := c.Get(id)
			assert.True(t, ok, "expected embedded entry %q", id)
		}
	})

	t.Run("Entry without any source fails construction", func(t *testing.T) {
		_, err := NewImageCatalogFrom([]byte(`{
			"placeholderImages": [{"id": "broken", "description": "no source"}]
		}`), "/images")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "broken")
	})

	t.Run("Variant entry with sourceless variants fails construction", func(t *testing.T) {
		_, err := NewImageCatalogFrom([]byte(`{
			"placeholderImages": [{"id": "broken", "description": "d", "desktop": {"width": 100}}]
		}`), "/images")
		require.Error(t, err)
	})

	t.Run("Duplicate ids fail construction", func(t *testing.T) {
		_, err := NewImageCatalogFrom([]byte(`{
			"placeholderImages": [
				{"id": "dup", "description": "a", "file": "a.png"},
				{"id": "dup", "description": "b", "file": "b.png"}
			]
		}`), "/images")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate")
	})

	t.Run("Malformed JSON fails construction", func(t *testing.T) {
		_, err := NewImageCatalogFrom([]byte(`{`), "/images")
		require.Error(t, err)
	})
}

func TestImageURLConstruction(t *testing.T) {
	c := newTestCatalog(t)

	t.Run("Base, folder and file join with encoded segments", func(t *testing.T) {
		img, ok := c.Get("flat-file")
		require.True(t, ok)
		assert.Equal(t, "/images/site%20maps/contact%20map.webp", img.ImageURL)
	})

	t.Run("Absolute URL is used verbatim", func(t *testing.T) {
		img, ok := c.Get("flat-url")
		require.True(t, ok)
		assert.Equal(t, "https://images.example.com/photo.jpg?w=1200", img.ImageURL)
	})

	t.Run("Trailing base slashes do not double up", func(t *testing.T) {
		c2, err := NewImageCatalogFrom([]byte(`{
			"placeholderImages": [{"id": "x", "description": "d", "folder": "/f/", "file": "/a.png"}]
		}`), "/cdn/")
		require.NoError(t, err)
		img, _ := c2.Get("x")
		assert.Equal(t, "/cdn/f/a.png", img.ImageURL)
	})
}

func TestImageVariantPrecedence(t *testing.T) {
	c := newTestCatalog(t)

	t.Run("Requested variant wins when present", func(t *testing.T) {
		src, err := c.Resolve("hero", domain.VariantDesktop)
		require.NoError(t, err)
		assert.Equal(t, "/images/hero/hero-desktop.webp", src.Src)
		assert.Equal(t, 1920, src.Width)
		assert.Equal(t, 1080, src.Height)

		src, err = c.Resolve("hero", domain.VariantMobile)
		require.NoError(t, err)
		assert.Equal(t, "/images/hero/hero-mobile.webp", src.Src)
	})

	t.Run("Absent variant falls back to the other variant", func(t *testing.T) {
		src, err := c.Resolve("desktop-only", domain.VariantMobile)
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/desktop.webp", src.Src)
	})

	t.Run("No variants falls back to the flat source", func(t *testing.T) {
		src, err := c.Resolve("flat-file", domain.VariantDesktop)
		require.NoError(t, err)
		assert.Equal(t, "/images/site%20maps/contact%20map.webp", src.Src)
	})

	t.Run("No selector returns the flat fallback source", func(t *testing.T) {
		src, err := c.Resolve("hero", domain.VariantNone)
		require.NoError(t, err)
		// Flat URL of a variant entry is the desktop source
		assert.Equal(t, "/images/hero/hero-desktop.webp", src.Src)
	})

	t.Run("Unknown id returns not found", func(t *testing.T) {
		_, err := c.Resolve("nope", domain.VariantDesktop)
		assert.ErrorIs(t, err, domain.ErrImageNotFound)

		_, ok := c.Get("nope")
		assert.False(t, ok)
	})
}

func TestFallbackAsset(t *testing.T) {
	c := newTestCatalog(t)
	assert.Equal(t, "/images/placeholder.svg", c.Fallback().Src)
}
