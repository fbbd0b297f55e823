package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// contract is what GET on an API route returns.
type contract struct {
	Endpoint         string   `json:"endpoint"`
	Status           string   `json:"status"`
	Method           string   `json:"method"`
	Description      string   `json:"description"`
	RequiredFields   []string `json:"requiredFields"`
	OptionalFields   []string `json:"optionalFields"`
	SupportedFormats []string `json:"supportedFormats,omitempty"`
	Example          any      `json:"example,omitempty"`
}

func describe(ct contract) gin.HandlerFunc {
	ct.Status = "ready"
	ct.Method = http.MethodPost
	if ct.OptionalFields == nil {
		ct.OptionalFields = []string{}
	}
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, ct)
	}
}

var (
	parseBriefContract = contract{
		Endpoint:       "/api/parse-brief",
		Description:    "Parses an unstructured brand brief into structured data",
		RequiredFields: []string{"briefText"},
		Example: gin.H{
			"briefText": "Brand: Nike\nProduct: Air Max 2024\nKey Points:\n- New cushioning technology\n- Sustainable materials\nHashtags: #Nike #AirMax2024\nDuration: 30 seconds",
		},
	}

	generateStoryboardContract = contract{
		Endpoint:       "/api/generate-storyboard",
		Description:    "Generates a scene-by-scene storyboard from a structured brief",
		RequiredFields: []string{"structuredBrief"},
		OptionalFields: []string{"creatorStyle"},
		Example: gin.H{
			"structuredBrief": gin.H{
				"brandName":     "Nike",
				"productName":   "Air Max 2024",
				"talkingPoints": []string{"New cushioning technology", "Sustainable materials"},
				"hashtags":      []string{"#Nike", "#AirMax2024"},
				"duration":      "30 seconds",
			},
			"creatorStyle": gin.H{
				"contentFormat": "talking head vlog",
				"tone":          "casual and authentic",
			},
		},
	}

	generatePreviewContract = contract{
		Endpoint:       "/api/generate-preview",
		Description:    "Generates a visual preview (image or video) for a storyboard scene",
		RequiredFields: []string{"sceneDescription"},
		OptionalFields: []string{"duration", "type", "options"},
		Example: gin.H{
			"sceneDescription": "Close-up shot of creator holding Nike Air Max shoes with city skyline in background, golden hour lighting",
			"duration":         "5s",
			"type":             "image",
			"options":          gin.H{"aspectRatio": "9:16", "style": "realistic"},
		},
	}

	exportContract = contract{
		Endpoint:         "/api/export",
		Description:      "Exports a storyboard for brand approval",
		RequiredFields:   []string{"storyboard"},
		OptionalFields:   []string{"brandInfo", "creatorInfo", "format"},
		SupportedFormats: []string{"html", "json"},
	}

	regenerateSceneContract = contract{
		Endpoint:       "/api/regenerate-scene",
		Description:    "Rewrites one storyboard scene using feedback",
		RequiredFields: []string{"sceneNumber", "currentScene", "structuredBrief"},
		OptionalFields: []string{"creatorStyle", "feedback"},
		Example: gin.H{
			"sceneNumber":  2,
			"currentScene": gin.H{"scene": 2, "duration": "5s", "visual": "Product demo", "script": "Check this out"},
			"feedback":     "Make it more energetic",
		},
	}

	analyzeCreatorStyleContract = contract{
		Endpoint:       "/api/analyze-creator-style",
		Description:    "Builds a creator style profile from an Instagram handle",
		RequiredFields: []string{"instagramHandle"},
		Example:        gin.H{"instagramHandle": "@creator"},
	}
)
