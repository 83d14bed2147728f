package utils

import (
	"fmt"
	"regexp"
)

// youtube video IDs are exactly 11 characters of [A-Za-z0-9_-]
var youtubeIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)

const maxYouTubeTimestamp = 86400 // 24 hours

// IsValidYouTubeID validates a YouTube video ID before it is embedded in a
// page; editorial custom content is data, not trusted input.
func IsValidYouTubeID(id string) bool {
	return youtubeIDPattern.MatchString(id)
}

// SanitizeYouTubeTimestamp clamps a start offset to a sane range. returns
// the timestamp and whether it is usable.
func SanitizeYouTubeTimestamp(ts int) (int, bool) {
	if ts < 0 || ts > maxYouTubeTimestamp {
		return 0, false
	}
	return ts, true
}

// BuildYouTubeEmbedURL produces a privacy-friendly embed URL, or "" when
// the video ID is invalid.
func BuildYouTubeEmbedURL(videoID string, timestamp int) string {
	if !IsValidYouTubeID(videoID) {
		return ""
	}
	base := "https://www.youtube-nocookie.com/embed/" + videoID
	if ts, ok := SanitizeYouTubeTimestamp(timestamp); ok && ts > 0 {
		return fmt.Sprintf("%s?start=%d", base, ts)
	}
	return base
}
