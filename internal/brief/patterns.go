package brief

import (
	"regexp"
	"strings"
)

// keywordPattern is one synonym of a field, compiled for a specific extractor.
type keywordPattern struct {
	keyword string
	re      *regexp.Regexp
}

// fieldRule extracts a single-line value. Keywords are tried in order and the
// first match wins.
type fieldRule struct {
	name     string
	patterns []keywordPattern
}

// listRule extracts a multi-item section. Keywords are tried in order and the
// first keyword whose section yields items wins.
type listRule struct {
	name     string
	patterns []keywordPattern
}

// detectRule maps a set of case-insensitive markers to a platform or format label.
type detectRule struct {
	label   string
	markers []*regexp.Regexp
}

func newFieldRule(name string, keywords ...string) fieldRule {
	r := fieldRule{name: name}
	for _, kw := range keywords {
		r.patterns = append(r.patterns, keywordPattern{
			keyword: kw,
			re:      regexp.MustCompile(`(?i)\b` + keywordExpr(kw) + `[ \t]*[:\-][ \t]*([^\n]+)`),
		})
	}
	return r
}

func newListRule(name string, keywords ...string) listRule {
	r := listRule{name: name}
	for _, kw := range keywords {
		r.patterns = append(r.patterns, keywordPattern{
			keyword: kw,
			re:      regexp.MustCompile(`(?i)\b` + keywordExpr(kw) + `[ \t]*[:\-]?[ \t]*`),
		})
	}
	return r
}

func newDetectRule(label string, markers ...string) detectRule {
	r := detectRule{label: label}
	for _, m := range markers {
		r.markers = append(r.markers, regexp.MustCompile(`(?i)`+m))
	}
	return r
}

// keywordExpr quotes a keyword and lets any run of spaces match its inner spaces.
func keywordExpr(kw string) string {
	parts := strings.Fields(kw)
	for i, p := range parts {
		parts[i] = regexp.QuoteMeta(p)
	}
	return strings.Join(parts, `\s+`)
}

var (
	brandRule      = newFieldRule("brandName", "brand", "company", "sponsor")
	productRule    = newFieldRule("productName", "product", "item", "service")
	campaignRule   = newFieldRule("campaignName", "campaign", "campaign name")
	durationRule   = newFieldRule("duration", "duration", "length", "time")
	ctaRule        = newFieldRule("callToAction", "call to action", "cta", "link", "visit")
	guidelinesRule = newFieldRule("brandGuidelines", "guidelines", "tone", "voice", "style")
	deadlineRule   = newFieldRule("deadline", "deadline", "due date", "submit by")

	talkingPointsRule = newListRule("talkingPoints",
		"talking points", "mention", "highlight", "features", "benefits", "key messages")
	restrictionsRule = newListRule("restrictions",
		"avoid", "don't mention", "do not", "restrictions", "limitations")

	// Priority order: the first rule with a matching marker wins.
	platformRules = []detectRule{
		newDetectRule("Instagram", `instagram`, `\big\b`, `reels?\b`),
		newDetectRule("TikTok", `tiktok`, `tik\s+tok`),
		newDetectRule("YouTube", `youtube`, `\byt\b`),
		newDetectRule("Twitter", `twitter`, `\btweet`),
		newDetectRule("Facebook", `facebook`, `\bfb\b`),
	}
	formatRules = []detectRule{
		newDetectRule("Reel", `\breel`),
		newDetectRule("Story", `\bstory\b`, `\bstories\b`),
		newDetectRule("Post", `\bpost\b`, `\bposts\b`),
		newDetectRule("Short", `\bshorts?\b`),
		newDetectRule("Video", `\bvideos?\b`),
	}

	hashtagRe = regexp.MustCompile(`#\w+`)

	// A list section ends at a blank line or at the next capitalized "Label:" line.
	sectionEndRe = regexp.MustCompile(`\n[ \t]*\n|\n[ \t]*[A-Z][a-z]+:`)

	bulletItemRe   = regexp.MustCompile(`(?m)^[ \t]*[-•*][ \t]*(.+)$`)
	numberedItemRe = regexp.MustCompile(`(?m)^[ \t]*\d+[.)][ \t]*(.+)$`)
)
