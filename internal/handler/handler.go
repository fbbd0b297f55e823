// Package handler exposes the storyboard pipeline over HTTP. Every step is
// stateless and can be called on its own.
package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/zprintln/AdMaxxer-Project/internal/export"
	"github.com/zprintln/AdMaxxer-Project/internal/repository"
	"github.com/zprintln/AdMaxxer-Project/internal/service"
)

// Handler serves the /api routes.
type Handler struct {
	generation  service.GenerationService
	formatter   *export.Formatter
	items       repository.ItemRepository
	logger      *zap.Logger
	development bool
	now         func() time.Time
}

// Option customizes a Handler.
type Option func(*Handler)

// WithItems enables the /api/items routes.
func WithItems(items repository.ItemRepository) Option {
	return func(h *Handler) { h.items = items }
}

// WithDevelopment makes error responses carry debug details.
func WithDevelopment(enabled bool) Option {
	return func(h *Handler) { h.development = enabled }
}

// WithClock overrides the clock used for generatedAt timestamps.
func WithClock(now func() time.Time) Option {
	return func(h *Handler) {
		h.now = now
		h.formatter.Now = now
	}
}

// NewHandler creates a Handler.
func NewHandler(generation service.GenerationService, logger *zap.Logger, opts ...Option) *Handler {
	h := &Handler{
		generation: generation,
		formatter:  export.NewFormatter(),
		logger:     logger.Named("Handler"),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// RegisterRoutes mounts the API on router.
func (h *Handler) RegisterRoutes(router gin.IRouter) {
	api := router.Group("/api")
	{
		api.POST("/parse-brief", h.parseBrief)
		api.GET("/parse-brief", describe(parseBriefContract))

		api.POST("/generate-storyboard", h.generateStoryboard)
		api.GET("/generate-storyboard", describe(generateStoryboardContract))

		api.POST("/generate-preview", h.generatePreview)
		api.GET("/generate-preview", describe(generatePreviewContract))

		api.POST("/export", h.exportStoryboard)
		api.GET("/export", describe(exportContract))

		api.POST("/regenerate-scene", h.regenerateScene)
		api.GET("/regenerate-scene", describe(regenerateSceneContract))

		api.POST("/analyze-creator-style", h.analyzeCreatorStyle)
		api.GET("/analyze-creator-style", describe(analyzeCreatorStyleContract))
	}

	if h.items != nil {
		items := api.Group("/items")
		{
			items.GET("", h.listItems)
			items.POST("", h.createItem)
			items.GET("/:id", h.getItem)
			items.DELETE("/:id", h.deleteItem)
		}
	}
}

func (h *Handler) timestamp() string {
	return h.now().UTC().Format(time.RFC3339)
}

func respondSuccess(c *gin.Context, status int, data any, message string) {
	c.JSON(status, successResponse{Success: true, Data: data, Message: message})
}

func badRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, errorBody(message))
}
