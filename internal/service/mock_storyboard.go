package service

import (
	"fmt"
	"strings"

	"github.com/zprintln/AdMaxxer-Project/internal/models"
)

// mockStoryboard builds a deterministic storyboard from the brief alone. It
// backs USE_MOCK_MODE for demos without provider access.
func mockStoryboard(brief models.StructuredBrief, style models.CreatorStyle) models.Storyboard {
	totalSeconds := models.ParseSeconds(brief.Duration, 20)
	budget := (totalSeconds + 4) / 5
	if budget < 4 {
		budget = 4
	}
	if budget > 6 {
		budget = 6
	}

	aesthetic := "modern"
	if len(style.AestheticTags) > 0 {
		aesthetic = style.AestheticTags[0]
	}

	scenes := models.Storyboard{{
		Duration: "3s",
		Visual:   fmt.Sprintf("Close-up of creator holding %s, bright natural lighting, %s background", brief.ProductName, aesthetic),
		Script:   fmt.Sprintf("Hey everyone! I'm so excited to show you the new %s from %s!", brief.ProductName, brief.BrandName),
		Notes:    "Product introduction and hook",
	}}

	points := brief.TalkingPoints
	if len(points) == 0 {
		points = []string{"how easy it is to use"}
	}
	if max := budget - 2; len(points) > max {
		points = points[:max]
	}
	for i, point := range points {
		sc := models.Scene{
			Duration: "5s",
			Script:   fmt.Sprintf("What I love most is %s. It's seriously a game-changer!", point),
			Notes:    fmt.Sprintf("Highlights talking point: %s", point),
		}
		if i == 0 {
			sc.Visual = fmt.Sprintf("Creator demonstrating %s in action, dynamic camera movement", brief.ProductName)
		} else {
			sc.Visual = fmt.Sprintf("Detail shot of %s features, clean product-focused framing", brief.ProductName)
			sc.Script = fmt.Sprintf("Plus, %s. %s really nailed it with this one!", point, brief.BrandName)
		}
		scenes = append(scenes, sc)
	}

	cta := "link in bio!"
	if brief.CallToAction != "" {
		cta = brief.CallToAction + "!"
	}
	scenes = append(scenes, models.Scene{
		Duration: "4s",
		Visual:   fmt.Sprintf("Creator smiling at camera, holding %s, %s logo visible", brief.ProductName, brief.BrandName),
		Script:   strings.TrimSpace(fmt.Sprintf("Check out %s - %s %s", brief.ProductName, cta, strings.Join(brief.Hashtags, " "))),
		Notes:    "Call-to-action with required hashtags",
	})

	for i := range scenes {
		scenes[i].Scene = i + 1
	}
	return scenes
}
