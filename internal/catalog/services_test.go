package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceCatalog(t *testing.T) {
	c, err := NewServiceCatalog()
	require.NoError(t, err)

	t.Run("All five services are present with unique slugs", func(t *testing.T) {
		all := c.All()
		assert.Len(t, all, 5)

		slugs := make(map[string]bool)
		for _, s := range all {
			assert.False(t, slugs[s.Slug], "duplicate slug %q", s.Slug)
			slugs[s.Slug] = true
		}
	})

	t.Run("BySlug resolves and misses correctly", func(t *testing.T) {
		svc, ok := c.BySlug("noise-survey")
		require.True(t, ok)
		assert.Equal(t, "Noise Survey", svc.Title)

		// The consultancy service's slug differs from its key
		svc, ok = c.BySlug("acoustic-consultancy")
		require.True(t, ok)
		assert.Equal(t, "acoustic-consultant", svc.Key)

		_, ok = c.BySlug("does-not-exist")
		assert.False(t, ok)
	})

	t.Run("Cards carry navigation hrefs", func(t *testing.T) {
		cards := c.Cards()
		require.Len(t, cards, 5)
		for _, card := range cards {
			assert.Equal(t, "/services/"+card.Slug, card.Href)
			assert.NotEmpty(t, card.Description)
			_, known := LookupIcon(card.IconName)
			assert.True(t, known, "card icon %q not in the icon set", card.IconName)
		}
	})

	t.Run("Every image reference resolves in the embedded image catalog", func(t *testing.T) {
		images, err := NewImageCatalog("/images")
		require.NoError(t, err)
		for _, s := range c.All() {
			_, ok := images.Get(s.ImageID)
			assert.True(t, ok, "service %q references missing image %q", s.Key, s.ImageID)
		}
	})
}

func TestIconLookup(t *testing.T) {
	icon, ok := LookupIcon("Building2")
	assert.True(t, ok)
	assert.Equal(t, "Building2", icon)

	_, ok = LookupIcon("NotAnIcon")
	assert.False(t, ok)

	assert.Equal(t, DefaultIcon, IconOrDefault("NotAnIcon"))
	assert.Equal(t, "Handshake", IconOrDefault("Handshake"))
}
