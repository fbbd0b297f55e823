package brief

import (
	"strings"
)

// extract returns the value of the first keyword in r that matches text, or "".
func (r fieldRule) extract(text string) string {
	for _, p := range r.patterns {
		if m := p.re.FindStringSubmatch(text); m != nil {
			if v := strings.TrimSpace(m[1]); v != "" {
				return v
			}
		}
	}
	return ""
}

// extract locates the section introduced by each keyword in turn and returns the
// items of the first section that has any. It never returns nil.
func (r listRule) extract(text string) []string {
	for _, p := range r.patterns {
		loc := p.re.FindStringIndex(text)
		if loc == nil {
			continue
		}
		section := text[loc[1]:]
		if end := sectionEndRe.FindStringIndex(section); end != nil {
			section = section[:end[0]]
		}
		if items := splitSection(section); len(items) > 0 {
			return items
		}
	}
	return []string{}
}

// splitSection tries bullets, then numbered items, then commas, then the whole
// section as one item, stopping at the first strategy that yields anything.
func splitSection(section string) []string {
	if items := submatches(bulletItemRe.FindAllStringSubmatch(section, -1)); len(items) > 0 {
		return items
	}
	if items := submatches(numberedItemRe.FindAllStringSubmatch(section, -1)); len(items) > 0 {
		return items
	}
	if strings.Contains(section, ",") {
		var items []string
		for _, part := range strings.Split(section, ",") {
			if part = strings.TrimSpace(part); part != "" {
				items = append(items, part)
			}
		}
		if len(items) > 0 {
			return items
		}
	}
	if s := strings.TrimSpace(section); s != "" {
		return []string{s}
	}
	return nil
}

func submatches(matches [][]string) []string {
	var items []string
	for _, m := range matches {
		if v := strings.TrimSpace(m[1]); v != "" {
			items = append(items, v)
		}
	}
	return items
}

// ExtractHashtags returns every #tag in text, de-duplicated, in order of first occurrence.
func ExtractHashtags(text string) []string {
	tags := []string{}
	seen := make(map[string]struct{})
	for _, tag := range hashtagRe.FindAllString(text, -1) {
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	return tags
}

// DetectPlatform returns the highest-priority platform mentioned in text.
func DetectPlatform(text string) string {
	return detect(platformRules, text, "Instagram")
}

// DetectFormat returns the highest-priority content format mentioned in text.
func DetectFormat(text string) string {
	return detect(formatRules, text, "Reel")
}

func detect(rules []detectRule, text, fallback string) string {
	for _, r := range rules {
		for _, m := range r.markers {
			if m.MatchString(text) {
				return r.label
			}
		}
	}
	return fallback
}
