package service

import (
	"net/url"
	"strings"
)

const placeholderTextRunes = 50

// placeholderImageURL builds a deterministic 1080x1920 placeholder that shows
// the start of the scene description.
func placeholderImageURL(base, description string) string {
	text := []rune(description)
	if len(text) > placeholderTextRunes {
		text = text[:placeholderTextRunes]
	}
	escaped := strings.ReplaceAll(url.QueryEscape(string(text)), "+", "%20")
	return strings.TrimSuffix(base, "/") + "/1080x1920/0ea5e9/ffffff?text=" + escaped
}
