package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"

	"github.com/zprintln/AdMaxxer-Project/internal/models"
)

const previewDescriptionRunes = 100

func (h *Handler) generatePreview(c *gin.Context) {
	var req generatePreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}
	description, ok := req.SceneDescription.(string)
	if !ok {
		badRequest(c, "Missing or invalid sceneDescription field")
		return
	}
	if strings.TrimSpace(description) == "" {
		badRequest(c, "Scene description cannot be empty")
		return
	}

	previewType := models.PreviewType(strings.ToLower(strings.TrimSpace(req.Type)))
	if previewType == "" {
		previewType = models.PreviewImage
	}
	seconds := previewSeconds(req.Duration)

	opts := models.ImageOptions{}
	if req.Options != nil {
		opts = *req.Options
	}

	var (
		result models.PreviewResult
		err    error
	)
	switch previewType {
	case models.PreviewImage:
		result, err = h.generation.GenerateSceneImage(c.Request.Context(), description, opts)
	case models.PreviewVideo:
		result, err = h.generation.GenerateSceneVideo(c.Request.Context(), description, seconds, opts)
	default:
		badRequest(c, `Invalid type. Use "image" or "video"`)
		return
	}
	if err != nil {
		h.handleServiceError(c, err, "Failed to generate preview")
		return
	}

	respondSuccess(c, http.StatusOK, previewResponse{
		URL:              result.URL,
		Type:             result.Type,
		SceneDescription: firstRunes(description, previewDescriptionRunes),
		Duration:         models.FormatSeconds(seconds),
		GeneratedAt:      h.timestamp(),
	}, fmt.Sprintf("%s preview generated successfully", result.Type))
}

// previewSeconds keeps only the digits of s ("5s" -> 5). No digits, or zero,
// means the default scene length.
func previewSeconds(s string) int {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
	n, err := strconv.Atoi(digits)
	if err != nil || n <= 0 {
		return models.DefaultSceneSeconds
	}
	return n
}

func firstRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
