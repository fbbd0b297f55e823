package service

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/zprintln/AdMaxxer-Project/internal/models"
)

var (
	aiRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "admaxxer_ai_requests_total",
			Help: "Total number of requests to the LLM provider.",
		},
		[]string{"operation", "model", "status"},
	)
	aiRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "admaxxer_ai_request_duration_seconds",
			Help:    "Histogram of LLM request durations.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "model"},
	)
	aiPromptTokens = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "admaxxer_ai_prompt_tokens",
			Help:    "Histogram of prompt token counts.",
			Buckets: prometheus.LinearBuckets(250, 250, 20),
		},
		[]string{"operation", "model"},
	)
	aiCompletionTokens = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "admaxxer_ai_completion_tokens",
			Help:    "Histogram of completion token counts.",
			Buckets: prometheus.LinearBuckets(100, 100, 20),
		},
		[]string{"operation", "model"},
	)
	aiEstimatedUsageTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "admaxxer_ai_estimated_usage_total",
			Help: "Completions whose token usage was estimated locally.",
		},
		[]string{"operation", "model"},
	)

	mediaRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "admaxxer_media_requests_total",
			Help: "Total number of requests to the media generation provider.",
		},
		[]string{"kind", "status"},
	)
	mediaRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "admaxxer_media_request_duration_seconds",
			Help:    "Histogram of media provider request durations.",
			Buckets: []float64{.25, .5, 1, 2.5, 5, 10, 20, 30, 60, 120},
		},
		[]string{"kind"},
	)
	previewFallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "admaxxer_preview_fallbacks_total",
			Help: "Preview requests served by a fallback (video to image, image to placeholder).",
		},
		[]string{"from", "to"},
	)
	videoJobsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "admaxxer_video_jobs_total",
			Help: "Video generation jobs by final state.",
		},
		[]string{"state"},
	)
)

func observeUsage(operation, model string, usage UsageInfo) {
	if usage.TotalTokens <= 0 {
		return
	}
	aiPromptTokens.WithLabelValues(operation, model).Observe(float64(usage.PromptTokens))
	aiCompletionTokens.WithLabelValues(operation, model).Observe(float64(usage.CompletionTokens))
	if usage.Estimated {
		aiEstimatedUsageTotal.WithLabelValues(operation, model).Inc()
	}
}

// errorStatusLabel is the status label recorded for a classified error.
func errorStatusLabel(err error) string {
	switch {
	case errors.Is(err, models.ErrAuthentication):
		return "error_auth"
	case errors.Is(err, models.ErrRateLimited):
		return "error_rate_limited"
	case errors.Is(err, models.ErrConnectivity):
		return "error_connectivity"
	case errors.Is(err, models.ErrMalformedResponse):
		return "error_malformed"
	default:
		return "error"
	}
}
