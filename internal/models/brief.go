package models

import "encoding/json"

// Defaults applied to briefs when the input leaves a field out.
const (
	DefaultDuration    = "15-30 seconds"
	DefaultPlatform    = "Instagram"
	DefaultFormat      = "Reel"
	DefaultAspectRatio = "9:16"
)

// PlatformSpecs describes where the sponsored video will be published.
type PlatformSpecs struct {
	Platform    string `json:"platform"`
	Format      string `json:"format"`
	AspectRatio string `json:"aspectRatio"`
}

// DefaultPlatformSpecs returns Instagram / Reel / 9:16.
func DefaultPlatformSpecs() PlatformSpecs {
	return PlatformSpecs{
		Platform:    DefaultPlatform,
		Format:      DefaultFormat,
		AspectRatio: DefaultAspectRatio,
	}
}

// StructuredBrief is the normalized form of a sponsor's brand brief.
// BrandName and ProductName are always non-empty after a successful parse.
type StructuredBrief struct {
	BrandName       string          `json:"brandName"`
	ProductName     string          `json:"productName"`
	CampaignName    string          `json:"campaignName,omitempty"`
	TalkingPoints   []string        `json:"talkingPoints"`
	Hashtags        []string        `json:"hashtags"`
	Restrictions    []string        `json:"restrictions"`
	Duration        string          `json:"duration"`
	PlatformSpecs   PlatformSpecs   `json:"platformSpecs"`
	CallToAction    string          `json:"callToAction,omitempty"`
	BrandGuidelines string          `json:"brandGuidelines,omitempty"`
	Deadline        string          `json:"deadline,omitempty"`
	Compensation    json.RawMessage `json:"compensation,omitempty"`
}

// EnsureLists replaces nil list fields with empty slices so they encode as [].
func (b *StructuredBrief) EnsureLists() {
	if b.TalkingPoints == nil {
		b.TalkingPoints = []string{}
	}
	if b.Hashtags == nil {
		b.Hashtags = []string{}
	}
	if b.Restrictions == nil {
		b.Restrictions = []string{}
	}
}

// CreatorStyle biases generation toward a creator's usual content.
type CreatorStyle struct {
	ContentFormat   string   `json:"contentFormat,omitempty"`
	Tone            string   `json:"tone,omitempty"`
	AestheticTags   []string `json:"aestheticTags,omitempty"`
	TypicalDuration string   `json:"typicalDuration,omitempty"`
	CommonThemes    []string `json:"commonThemes,omitempty"`
	UniqueHook      string   `json:"uniqueHook,omitempty"`
}

// DefaultCreatorStyle is used when the caller sends no style.
func DefaultCreatorStyle() CreatorStyle {
	return CreatorStyle{
		ContentFormat:   "talking head vlog",
		Tone:            "casual and authentic",
		AestheticTags:   []string{"modern", "clean", "relatable"},
		TypicalDuration: DefaultDuration,
	}
}

// WithDefaults fills empty fields of s from DefaultCreatorStyle.
func (s CreatorStyle) WithDefaults() CreatorStyle {
	def := DefaultCreatorStyle()
	if s.ContentFormat == "" {
		s.ContentFormat = def.ContentFormat
	}
	if s.Tone == "" {
		s.Tone = def.Tone
	}
	if len(s.AestheticTags) == 0 {
		s.AestheticTags = def.AestheticTags
	}
	if s.TypicalDuration == "" {
		s.TypicalDuration = def.TypicalDuration
	}
	return s
}
