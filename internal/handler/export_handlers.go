package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/zprintln/AdMaxxer-Project/internal/models"
)

func (h *Handler) exportStoryboard(c *gin.Context) {
	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Missing or invalid storyboard array")
		return
	}
	if req.Storyboard == nil {
		badRequest(c, "Missing or invalid storyboard array")
		return
	}
	if len(req.Storyboard) == 0 {
		badRequest(c, "Storyboard cannot be empty")
		return
	}

	brand := models.DefaultBrandInfo()
	if req.BrandInfo != nil {
		brand = *req.BrandInfo
	}
	creator := models.DefaultCreatorInfo()
	if req.CreatorInfo != nil {
		creator = *req.CreatorInfo
	}
	format := strings.ToLower(strings.TrimSpace(req.Format))
	if format == "" {
		format = models.ExportHTML
	}

	doc, err := h.formatter.Export(req.Storyboard, brand, creator, format)
	if err != nil {
		h.handleServiceError(c, err, "Failed to export storyboard")
		return
	}
	h.logger.Info("Storyboard exported", zap.String("brand", brand.BrandName), zap.String("format", format))

	c.JSON(http.StatusOK, successResponse{
		Success: true,
		Data:    doc,
		Format:  doc.Format,
		Message: "Storyboard exported successfully",
	})
}
