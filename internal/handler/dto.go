package handler

import (
	"github.com/zprintln/AdMaxxer-Project/internal/models"
)

type successResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data"`
	Format  string `json:"format,omitempty"`
	Message string `json:"message"`
}

type parseBriefRequest struct {
	BriefText any `json:"briefText"`
}

type generateStoryboardRequest struct {
	StructuredBrief *models.StructuredBrief `json:"structuredBrief"`
	CreatorStyle    *models.CreatorStyle    `json:"creatorStyle"`
}

type storyboardResponse struct {
	Storyboard models.Storyboard         `json:"storyboard"`
	Metadata   models.StoryboardMetadata `json:"metadata"`
}

type generatePreviewRequest struct {
	SceneDescription any                  `json:"sceneDescription"`
	Duration         string               `json:"duration"`
	Type             string               `json:"type"`
	Options          *models.ImageOptions `json:"options"`
}

type previewResponse struct {
	URL              string             `json:"url"`
	Type             models.PreviewType `json:"type"`
	SceneDescription string             `json:"sceneDescription"`
	Duration         string             `json:"duration"`
	GeneratedAt      string             `json:"generatedAt"`
}

type exportRequest struct {
	Storyboard  models.Storyboard   `json:"storyboard"`
	BrandInfo   *models.BrandInfo   `json:"brandInfo"`
	CreatorInfo *models.CreatorInfo `json:"creatorInfo"`
	Format      string              `json:"format"`
}

type regenerateSceneRequest struct {
	SceneNumber     int                     `json:"sceneNumber"`
	CurrentScene    *models.Scene           `json:"currentScene"`
	StructuredBrief *models.StructuredBrief `json:"structuredBrief"`
	CreatorStyle    *models.CreatorStyle    `json:"creatorStyle"`
	Feedback        string                  `json:"feedback"`
}

type analyzeCreatorStyleRequest struct {
	InstagramHandle string `json:"instagramHandle"`
}

type createItemRequest struct {
	Name string `json:"name"`
}
