package export

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zprintln/AdMaxxer-Project/internal/models"
)

var fixedClock = func() time.Time { return time.Date(2025, time.March, 7, 15, 4, 5, 0, time.UTC) }

func sampleStoryboard() models.Storyboard {
	return models.Storyboard{
		{Scene: 1, Duration: "3s", Visual: "Hook", Script: "Hey!"},
		{Scene: 2, Duration: "5s", Visual: "Demo", Script: "Look", Notes: "Mentions SPF"},
		{Scene: 3, Duration: "later", Visual: "CTA", Script: "Link in bio"},
	}
}

func sampleBrand() models.BrandInfo {
	return models.BrandInfo{
		BrandName:     "Glossier",
		ProductName:   "Cloud Paint",
		TalkingPoints: []string{"buildable", "dewy"},
		Hashtags:      []string{"#ad", "#glossier"},
		Duration:      "30 seconds",
	}
}

func TestExportHTML(t *testing.T) {
	f := &Formatter{Now: fixedClock}

	doc, err := f.Export(sampleStoryboard(), sampleBrand(), models.CreatorInfo{Name: "Jane", Handle: "@jane"}, models.ExportHTML)
	require.NoError(t, err)

	assert.Equal(t, models.ExportHTML, doc.Format)
	assert.Equal(t, "Glossier x Jane - Storyboard", doc.Title)
	assert.True(t, strings.HasPrefix(doc.HTML, "<!DOCTYPE html>"))
	assert.Contains(t, doc.HTML, "March 7, 2025")
	assert.Contains(t, doc.HTML, "<p>13s</p>")
	assert.Contains(t, doc.HTML, "<p>Instagram</p>")
	assert.Contains(t, doc.HTML, "<p>Reel</p>")
	assert.Contains(t, doc.HTML, "Brand Requirement")
	assert.Equal(t, 1, strings.Count(doc.HTML, "Brand Requirement</h4>"))
	assert.Contains(t, doc.HTML, "buildable, dewy")
	assert.Contains(t, doc.HTML, "#ad #glossier")
	assert.Contains(t, doc.HTML, "(Target: 30 seconds)")
	assert.Contains(t, doc.HTML, "Generated by <strong>AdMaxxer</strong> - AI-Powered Storyboard Creator")
}

func TestExportHTML_EscapesValues(t *testing.T) {
	f := &Formatter{Now: fixedClock}
	storyboard := models.Storyboard{{Scene: 1, Duration: "3s", Visual: "<script>alert(1)</script>", Script: "Tom & Jerry"}}

	doc, err := f.Export(storyboard, models.DefaultBrandInfo(), models.DefaultCreatorInfo(), "")
	require.NoError(t, err)

	assert.NotContains(t, doc.HTML, "<script>alert(1)</script>")
	assert.Contains(t, doc.HTML, "&lt;script&gt;")
	assert.Contains(t, doc.HTML, "Tom &amp; Jerry")
	assert.Contains(t, doc.HTML, "(Target: 15-30s)")
	assert.NotContains(t, doc.HTML, "Talking Points:")
	assert.Equal(t, "Brand x Creator - Storyboard", doc.Title)
}

func TestExportJSON(t *testing.T) {
	f := &Formatter{Now: fixedClock}
	storyboard := sampleStoryboard()

	doc, err := f.Export(storyboard, models.BrandInfo{BrandName: "Acme", ProductName: "Rocket"}, models.CreatorInfo{Name: "Jane"}, models.ExportJSON)
	require.NoError(t, err)

	require.NotNil(t, doc.Metadata)
	assert.Equal(t, models.ExportMetadata{
		BrandName:     "Acme",
		ProductName:   "Rocket",
		CreatorHandle: "Jane",
		SceneCount:    3,
		TotalDuration: "13s",
		Platform:      "Instagram",
		Format:        "Reel",
		ExportedAt:    "2025-03-07T15:04:05Z",
	}, *doc.Metadata)
	assert.Equal(t, storyboard, doc.Storyboard)

	data, err := json.Marshal(doc)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	requirements := decoded["requirements"].(map[string]any)
	for _, key := range []string{"talkingPoints", "hashtags", "restrictions"} {
		assert.Equal(t, []any{}, requirements[key], key)
	}
	assert.NotContains(t, decoded, "html")
}

func TestExport_Validation(t *testing.T) {
	f := NewFormatter()

	for _, format := range []string{models.ExportHTML, models.ExportJSON, "", "pdf"} {
		for name, storyboard := range map[string]models.Storyboard{"nil": nil, "empty": {}} {
			t.Run(format+"/"+name, func(t *testing.T) {
				doc, err := f.Export(storyboard, models.DefaultBrandInfo(), models.DefaultCreatorInfo(), format)
				assert.ErrorIs(t, err, models.ErrValidation)
				assert.Nil(t, doc)
			})
		}
	}

	_, err := f.Export(sampleStoryboard(), models.DefaultBrandInfo(), models.DefaultCreatorInfo(), "pdf")
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestExportHTML_TitleFallsBackToHandle(t *testing.T) {
	f := &Formatter{Now: fixedClock}

	doc, err := f.Export(sampleStoryboard(), sampleBrand(), models.CreatorInfo{Handle: "@jane"}, models.ExportHTML)
	require.NoError(t, err)
	assert.Equal(t, "Glossier x @jane - Storyboard", doc.Title)
	assert.Contains(t, doc.HTML, "<title>Storyboard - Glossier x @jane</title>")
}
