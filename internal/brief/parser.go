// Package brief turns free-text or structured brand briefs into a
// models.StructuredBrief.
package brief

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/zprintln/AdMaxxer-Project/internal/models"
)

// Parse normalizes a brief. Input that decodes as a JSON object takes the
// structured path; anything else is scanned with the keyword tables.
func Parse(input string) (*models.StructuredBrief, error) {
	text := strings.TrimSpace(input)
	if text == "" {
		return nil, fmt.Errorf("%w: brief text cannot be empty", models.ErrValidation)
	}

	if strings.HasPrefix(text, "{") {
		var raw map[string]any
		if err := json.Unmarshal([]byte(text), &raw); err == nil {
			return Normalize(raw)
		}
	}

	return parseText(text)
}

func parseText(text string) (*models.StructuredBrief, error) {
	b := &models.StructuredBrief{
		BrandName:       brandRule.extract(text),
		ProductName:     productRule.extract(text),
		CampaignName:    campaignRule.extract(text),
		TalkingPoints:   talkingPointsRule.extract(text),
		Hashtags:        ExtractHashtags(text),
		Restrictions:    restrictionsRule.extract(text),
		Duration:        durationRule.extract(text),
		CallToAction:    ctaRule.extract(text),
		BrandGuidelines: guidelinesRule.extract(text),
		Deadline:        deadlineRule.extract(text),
		PlatformSpecs: models.PlatformSpecs{
			Platform:    DetectPlatform(text),
			Format:      DetectFormat(text),
			AspectRatio: models.DefaultAspectRatio,
		},
	}
	if b.Duration == "" {
		b.Duration = models.DefaultDuration
	}

	if b.BrandName == "" {
		return nil, fmt.Errorf(`%w: could not find brand name in brief, include "Brand: [name]" or provide structured data`, models.ErrValidation)
	}
	if b.ProductName == "" {
		return nil, fmt.Errorf(`%w: could not find product name in brief, include "Product: [name]" or provide structured data`, models.ErrValidation)
	}

	b.EnsureLists()
	return b, nil
}
