package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zprintln/AdMaxxer-Project/internal/models"
)

func TestStripCodeFences(t *testing.T) {
	assert.Equal(t, `[1]`, stripCodeFences("```json\n[1]\n```"))
	assert.Equal(t, `[1]`, stripCodeFences("```\n[1]```"))
	assert.Equal(t, `[1]`, stripCodeFences("  [1]  "))
}

func TestParseStoryboard_FalsyFieldsAreMissing(t *testing.T) {
	cases := map[string]string{
		"scene":    `[{"scene":0,"duration":"3s","visual":"a","script":"b"}]`,
		"duration": `[{"scene":1,"duration":"","visual":"a","script":"b"}]`,
		"visual":   `[{"scene":1,"duration":"3s","visual":null,"script":"b"}]`,
	}
	for field, reply := range cases {
		t.Run(field, func(t *testing.T) {
			_, err := parseStoryboard(reply)
			var fieldErr *models.SceneFieldError
			require.ErrorAs(t, err, &fieldErr)
			assert.Equal(t, 1, fieldErr.Scene)
			assert.Equal(t, field, fieldErr.Field)
		})
	}
}

func TestParseScene_RejectsArray(t *testing.T) {
	_, err := parseScene(`[1,2]`, 2)
	assert.ErrorIs(t, err, models.ErrMalformedResponse)
}

func TestMockStoryboard_SceneBudget(t *testing.T) {
	brief := models.StructuredBrief{
		BrandName:     "Acme",
		ProductName:   "Rocket",
		TalkingPoints: []string{"one", "two", "three", "four", "five", "six"},
		Duration:      "30 seconds",
	}
	storyboard := mockStoryboard(brief, models.DefaultCreatorStyle())
	assert.Len(t, storyboard, 6)
	assert.Equal(t, "3s", storyboard[0].Duration)
	assert.Equal(t, "4s", storyboard[5].Duration)

	brief.TalkingPoints = nil
	brief.Duration = ""
	storyboard = mockStoryboard(brief, models.CreatorStyle{})
	assert.Len(t, storyboard, 3)
	for i, scene := range storyboard {
		assert.Equal(t, i+1, scene.Scene)
	}
}
