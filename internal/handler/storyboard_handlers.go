package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/zprintln/AdMaxxer-Project/internal/brief"
	"github.com/zprintln/AdMaxxer-Project/internal/models"
	"github.com/zprintln/AdMaxxer-Project/internal/service"
)

func (h *Handler) parseBrief(c *gin.Context) {
	var req parseBriefRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}
	text, ok := req.BriefText.(string)
	if !ok {
		badRequest(c, "Missing or invalid briefText field")
		return
	}
	if strings.TrimSpace(text) == "" {
		badRequest(c, "Brief text cannot be empty")
		return
	}

	parsed, err := brief.Parse(text)
	if err != nil {
		h.handleServiceError(c, err, "Failed to parse brief")
		return
	}
	h.logger.Info("Brief parsed", zap.String("brand", parsed.BrandName))
	respondSuccess(c, http.StatusOK, parsed, "Brief parsed successfully")
}

func (h *Handler) generateStoryboard(c *gin.Context) {
	var req generateStoryboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if req.StructuredBrief == nil {
		badRequest(c, "Missing structuredBrief field")
		return
	}
	structured, err := brief.NormalizeBrief(*req.StructuredBrief)
	if err != nil {
		badRequest(c, "structuredBrief must include brandName and productName")
		return
	}

	style := models.DefaultCreatorStyle()
	if req.CreatorStyle != nil {
		style = req.CreatorStyle.WithDefaults()
	}

	storyboard, err := h.generation.GenerateStoryboard(c.Request.Context(), *structured, style)
	if err != nil {
		h.handleServiceError(c, err, "Failed to generate storyboard")
		return
	}

	respondSuccess(c, http.StatusOK, storyboardResponse{
		Storyboard: storyboard,
		Metadata: models.StoryboardMetadata{
			SceneCount:    storyboard.SceneCount(),
			TotalDuration: models.FormatSeconds(storyboard.TotalDurationSeconds()),
			BrandName:     structured.BrandName,
			ProductName:   structured.ProductName,
			GeneratedAt:   h.timestamp(),
		},
	}, fmt.Sprintf("Generated %d scenes", storyboard.SceneCount()))
}

func (h *Handler) regenerateScene(c *gin.Context) {
	var req regenerateSceneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if req.SceneNumber < 1 {
		badRequest(c, "sceneNumber must be a positive integer")
		return
	}
	if req.CurrentScene == nil {
		badRequest(c, "Missing currentScene field")
		return
	}
	if req.StructuredBrief == nil {
		badRequest(c, "Missing structuredBrief field")
		return
	}
	structured, err := brief.NormalizeBrief(*req.StructuredBrief)
	if err != nil {
		badRequest(c, "structuredBrief must include brandName and productName")
		return
	}

	style := models.DefaultCreatorStyle()
	if req.CreatorStyle != nil {
		style = req.CreatorStyle.WithDefaults()
	}

	scene, err := h.generation.RegenerateScene(c.Request.Context(), service.SceneRegenerationRequest{
		SceneNumber: req.SceneNumber,
		Current:     *req.CurrentScene,
		Brief:       *structured,
		Style:       style,
		Feedback:    req.Feedback,
	})
	if err != nil {
		h.handleServiceError(c, err, "Failed to regenerate scene")
		return
	}
	respondSuccess(c, http.StatusOK, scene, fmt.Sprintf("Scene %d regenerated", scene.Scene))
}

func (h *Handler) analyzeCreatorStyle(c *gin.Context) {
	var req analyzeCreatorStyleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(req.InstagramHandle), "@")) == "" {
		badRequest(c, "Missing instagramHandle field")
		return
	}

	style, err := h.generation.AnalyzeCreatorStyle(c.Request.Context(), req.InstagramHandle)
	if err != nil {
		h.handleServiceError(c, err, "Failed to analyze creator style")
		return
	}
	respondSuccess(c, http.StatusOK, style, "Creator style analyzed")
}
