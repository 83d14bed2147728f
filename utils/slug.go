package utils

import (
	"regexp"
	"strings"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// IsValidSlug reports whether s looks like a person slug (lowercase
// alphanumeric tokens joined by hyphens). used to validate URL path
// segments and subdomains before they reach the resolver.
func IsValidSlug(s string) bool {
	return s != "" && slugPattern.MatchString(s)
}

// Slugify turns free text into a slug: lowercase, non-alphanumerics
// collapsed to single hyphens, no leading or trailing hyphen.
func Slugify(name string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// DisplayNameFromSlug converts "donald-duck" to "Donald Duck"; used when a
// queried name has no catalog entry but still needs a rendered page.
func DisplayNameFromSlug(slug string) string {
	words := strings.Split(slug, "-")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
