package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidYouTubeID(t *testing.T) {
	assert.True(t, IsValidYouTubeID("dQw4w9WgXcQ"))
	assert.True(t, IsValidYouTubeID("a-b_c123XYZ"))
	assert.False(t, IsValidYouTubeID(""))
	assert.False(t, IsValidYouTubeID("short"))
	assert.False(t, IsValidYouTubeID("waytoolongvideoid"))
	assert.False(t, IsValidYouTubeID(`"><script>a`))
}

func TestSanitizeYouTubeTimestamp(t *testing.T) {
	ts, ok := SanitizeYouTubeTimestamp(90)
	assert.True(t, ok)
	assert.Equal(t, 90, ts)

	_, ok = SanitizeYouTubeTimestamp(-1)
	assert.False(t, ok)

	_, ok = SanitizeYouTubeTimestamp(86401)
	assert.False(t, ok)
}

func TestBuildYouTubeEmbedURL(t *testing.T) {
	assert.Equal(t,
		"https://www.youtube-nocookie.com/embed/dQw4w9WgXcQ",
		BuildYouTubeEmbedURL("dQw4w9WgXcQ", 0))

	assert.Equal(t,
		"https://www.youtube-nocookie.com/embed/dQw4w9WgXcQ?start=90",
		BuildYouTubeEmbedURL("dQw4w9WgXcQ", 90))

	assert.Equal(t, "", BuildYouTubeEmbedURL("bogus", 90))
}
