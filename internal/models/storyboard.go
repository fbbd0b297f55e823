package models

import (
	"strconv"
	"strings"
	"unicode"
)

// DefaultSceneSeconds is counted for a scene whose duration has no usable
// leading integer.
const DefaultSceneSeconds = 5

// Scene is one shot of a storyboard.
type Scene struct {
	Scene    int    `json:"scene"`
	Duration string `json:"duration"`
	Visual   string `json:"visual"`
	Script   string `json:"script"`
	Notes    string `json:"notes,omitempty"`
}

// Seconds returns the leading integer of Duration ("7s" -> 7). Missing or zero
// values count as DefaultSceneSeconds.
func (s Scene) Seconds() int {
	return ParseSeconds(s.Duration, DefaultSceneSeconds)
}

// Storyboard is an ordered, non-empty list of scenes.
type Storyboard []Scene

// SceneCount returns the number of scenes.
func (sb Storyboard) SceneCount() int {
	return len(sb)
}

// TotalDurationSeconds sums the per-scene seconds; the result does not depend on scene order.
func (sb Storyboard) TotalDurationSeconds() int {
	total := 0
	for _, sc := range sb {
		total += sc.Seconds()
	}
	return total
}

// ParseSeconds reads the leading run of digits in s. When there is none, or it
// parses to zero, fallback is returned.
func ParseSeconds(s string, fallback int) int {
	s = strings.TrimSpace(s)
	end := strings.IndexFunc(s, func(r rune) bool { return !unicode.IsDigit(r) })
	if end == -1 {
		end = len(s)
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil || n == 0 {
		return fallback
	}
	return n
}

// FormatSeconds renders a whole number of seconds the way scenes carry it ("5s").
func FormatSeconds(n int) string {
	return strconv.Itoa(n) + "s"
}

// StoryboardMetadata is returned next to a generated storyboard.
type StoryboardMetadata struct {
	SceneCount    int    `json:"sceneCount"`
	TotalDuration string `json:"totalDuration"`
	BrandName     string `json:"brandName"`
	ProductName   string `json:"productName"`
	GeneratedAt   string `json:"generatedAt"`
}
