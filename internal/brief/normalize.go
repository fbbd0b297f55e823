package brief

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/zprintln/AdMaxxer-Project/internal/models"
)

// Normalize validates a pre-structured brief and fills documented defaults.
// List fields that are not arrays become empty lists.
func Normalize(raw map[string]any) (*models.StructuredBrief, error) {
	b := &models.StructuredBrief{
		BrandName:       stringField(raw, "brandName"),
		ProductName:     stringField(raw, "productName"),
		CampaignName:    stringField(raw, "campaignName"),
		TalkingPoints:   listField(raw, "talkingPoints"),
		Hashtags:        listField(raw, "hashtags"),
		Restrictions:    listField(raw, "restrictions"),
		Duration:        stringField(raw, "duration"),
		CallToAction:    stringField(raw, "callToAction"),
		BrandGuidelines: stringField(raw, "brandGuidelines"),
		Deadline:        stringField(raw, "deadline"),
		PlatformSpecs:   platformField(raw["platformSpecs"]),
	}
	if strings.TrimSpace(b.BrandName) == "" || strings.TrimSpace(b.ProductName) == "" {
		return nil, fmt.Errorf("%w: structured data must include brandName and productName", models.ErrValidation)
	}
	if b.Duration == "" {
		b.Duration = models.DefaultDuration
	}
	if c, ok := raw["compensation"]; ok && c != nil {
		if data, err := json.Marshal(c); err == nil {
			b.Compensation = data
		}
	}
	return b, nil
}

// NormalizeBrief applies the same rules to an already decoded brief.
func NormalizeBrief(b models.StructuredBrief) (*models.StructuredBrief, error) {
	if strings.TrimSpace(b.BrandName) == "" || strings.TrimSpace(b.ProductName) == "" {
		return nil, fmt.Errorf("%w: structured brief must include brandName and productName", models.ErrValidation)
	}
	if b.Duration == "" {
		b.Duration = models.DefaultDuration
	}
	def := models.DefaultPlatformSpecs()
	if b.PlatformSpecs.Platform == "" {
		b.PlatformSpecs.Platform = def.Platform
	}
	if b.PlatformSpecs.Format == "" {
		b.PlatformSpecs.Format = def.Format
	}
	if b.PlatformSpecs.AspectRatio == "" {
		b.PlatformSpecs.AspectRatio = def.AspectRatio
	}
	b.EnsureLists()
	return &b, nil
}

func stringField(raw map[string]any, key string) string {
	switch v := raw[key].(type) {
	case string:
		return v
	case float64, bool:
		return fmt.Sprint(v)
	default:
		return ""
	}
}

func listField(raw map[string]any, key string) []string {
	arr, ok := raw[key].([]any)
	if !ok {
		return []string{}
	}
	items := make([]string, 0, len(arr))
	for _, el := range arr {
		switch v := el.(type) {
		case string:
			items = append(items, v)
		case float64, bool:
			items = append(items, fmt.Sprint(v))
		}
	}
	return items
}

func platformField(v any) models.PlatformSpecs {
	specs := models.DefaultPlatformSpecs()
	obj, ok := v.(map[string]any)
	if !ok {
		return specs
	}
	if s := stringField(obj, "platform"); s != "" {
		specs.Platform = s
	}
	if s := stringField(obj, "format"); s != "" {
		specs.Format = s
	}
	if s := stringField(obj, "aspectRatio"); s != "" {
		specs.AspectRatio = s
	}
	return specs
}
