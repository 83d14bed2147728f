package sharecard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheKey(t *testing.T) {
	assert.Equal(t, "bill-clinton-yes-8.jpg", CacheKey("bill-clinton", true, 8))
	assert.Equal(t, "nobody-no-0.jpg", CacheKey("nobody", false, 0))
}

func TestCacheRejectsTraversal(t *testing.T) {
	cache, err := NewCache(t.TempDir())
	require.NoError(t, err)

	_, err = cache.Path("../../etc/passwd")
	assert.Error(t, err)
}

func TestRenderCreatesAndReusesCard(t *testing.T) {
	cache, err := NewCache(t.TempDir())
	require.NoError(t, err)
	renderer := NewRenderer(cache)

	card := Card{DisplayName: "BILL CLINTON", Found: true, Matches: 8, SiteName: "filecheck.example"}
	key := CacheKey("bill-clinton", true, 8)

	path, err := renderer.Render(key, card)
	require.NoError(t, err)
	assert.True(t, cache.Has(key))

	// second render hits the cache and returns the same path
	path2, err := renderer.Render(key, card)
	require.NoError(t, err)
	assert.Equal(t, path, path2)
}

func TestRenderNotFoundCard(t *testing.T) {
	cache, err := NewCache(t.TempDir())
	require.NoError(t, err)
	renderer := NewRenderer(cache)

	_, err = renderer.Render(CacheKey("nobody-real", false, 0), Card{
		DisplayName: "NOBODY REAL",
		Found:       false,
		Matches:     0,
	})
	require.NoError(t, err)
}
