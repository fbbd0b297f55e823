package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/zprintln/AdMaxxer-Project/internal/config"
	"github.com/zprintln/AdMaxxer-Project/internal/models"
	"github.com/zprintln/AdMaxxer-Project/internal/prompts"
)

// Operation labels used in logs and metrics.
const (
	opGenerateStoryboard  = "generate_storyboard"
	opRegenerateScene     = "regenerate_scene"
	opAnalyzeCreatorStyle = "analyze_creator_style"
	opEnhanceDescription  = "enhance_description"
)

// GenerationService produces storyboards and scene previews.
type GenerationService interface {
	GenerateStoryboard(ctx context.Context, brief models.StructuredBrief, style models.CreatorStyle) (models.Storyboard, error)
	RegenerateScene(ctx context.Context, req SceneRegenerationRequest) (models.Scene, error)
	AnalyzeCreatorStyle(ctx context.Context, handle string) (models.CreatorStyle, error)
	GenerateSceneImage(ctx context.Context, description string, opts models.ImageOptions) (models.PreviewResult, error)
	GenerateSceneVideo(ctx context.Context, description string, seconds int, opts models.ImageOptions) (models.PreviewResult, error)
}

// SceneRegenerationRequest asks for a rewrite of one scene.
type SceneRegenerationRequest struct {
	SceneNumber int
	Current     models.Scene
	Brief       models.StructuredBrief
	Style       models.CreatorStyle
	Feedback    string
}

type generationService struct {
	cfg    config.AIConfig
	ai     AIClient
	media  MediaClient
	logger *zap.Logger
}

// NewGenerationService wires the LLM and media clients together.
func NewGenerationService(cfg config.AIConfig, ai AIClient, media MediaClient, logger *zap.Logger) GenerationService {
	return &generationService{
		cfg:    cfg,
		ai:     ai,
		media:  media,
		logger: logger.Named("GenerationService"),
	}
}

func storyboardParams() GenerationParams {
	return GenerationParams{
		Temperature: float64Ptr(0.7),
		TopP:        float64Ptr(0.9),
		MaxTokens:   intPtr(2000),
	}
}

func enhanceParams() GenerationParams {
	return GenerationParams{
		Temperature: float64Ptr(0.5),
		MaxTokens:   intPtr(200),
	}
}

// textConfigured reports whether text generation can reach its provider.
// A local Ollama model needs no MiniMax credentials.
func (s *generationService) textConfigured() error {
	if strings.EqualFold(s.cfg.ClientType, config.ClientTypeOllama) || s.cfg.HasCredentials() {
		return nil
	}
	return fmt.Errorf("%w: MiniMax API credentials not configured, set MINIMAX_API_KEY and MINIMAX_GROUP_ID", models.ErrConfiguration)
}

func (s *generationService) mediaConfigured() error {
	if s.cfg.HasCredentials() {
		return nil
	}
	return fmt.Errorf("%w: MiniMax API credentials not configured, set MINIMAX_API_KEY and MINIMAX_GROUP_ID", models.ErrConfiguration)
}

func (s *generationService) GenerateStoryboard(ctx context.Context, brief models.StructuredBrief, style models.CreatorStyle) (models.Storyboard, error) {
	if strings.TrimSpace(brief.BrandName) == "" || strings.TrimSpace(brief.ProductName) == "" {
		return nil, fmt.Errorf("%w: structured brief must include brandName and productName", models.ErrValidation)
	}
	style = style.WithDefaults()
	log := s.logger.With(zap.String("brand", brief.BrandName), zap.String("product", brief.ProductName))

	if s.cfg.MockMode {
		storyboard := mockStoryboard(brief, style)
		log.Info("Mock storyboard generated", zap.Int("scenes", storyboard.SceneCount()))
		return storyboard, nil
	}
	if err := s.textConfigured(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.TextTimeout)
	defer cancel()

	reply, _, err := s.ai.GenerateText(ctx, opGenerateStoryboard, prompts.StoryboardSystemPrompt, prompts.StoryboardPrompt(brief, style), storyboardParams())
	if err != nil {
		log.Error("Storyboard generation failed", zap.Error(err))
		return nil, fmt.Errorf("failed to generate storyboard: %w", err)
	}

	storyboard, err := parseStoryboard(reply)
	if err != nil {
		log.Warn("Storyboard reply rejected", zap.Error(err))
		return nil, err
	}
	log.Info("Storyboard generated",
		zap.Int("scenes", storyboard.SceneCount()),
		zap.Int("total_seconds", storyboard.TotalDurationSeconds()),
	)
	return storyboard, nil
}

func (s *generationService) RegenerateScene(ctx context.Context, req SceneRegenerationRequest) (models.Scene, error) {
	if req.SceneNumber < 1 {
		return models.Scene{}, fmt.Errorf("%w: sceneNumber must be a positive integer", models.ErrValidation)
	}
	if strings.TrimSpace(req.Brief.BrandName) == "" || strings.TrimSpace(req.Brief.ProductName) == "" {
		return models.Scene{}, fmt.Errorf("%w: structured brief must include brandName and productName", models.ErrValidation)
	}
	style := req.Style.WithDefaults()
	log := s.logger.With(zap.Int("scene", req.SceneNumber))

	if s.cfg.MockMode {
		scene := req.Current
		scene.Scene = req.SceneNumber
		if fb := strings.TrimSpace(req.Feedback); fb != "" {
			scene.Notes = strings.TrimSpace(scene.Notes + " Revised for feedback: " + fb)
		}
		return scene, nil
	}
	if err := s.textConfigured(); err != nil {
		return models.Scene{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.TextTimeout)
	defer cancel()

	prompt := prompts.RegenerateScenePrompt(req.SceneNumber, req.Current, req.Brief, style, req.Feedback)
	reply, _, err := s.ai.GenerateText(ctx, opRegenerateScene, prompts.StoryboardSystemPrompt, prompt, storyboardParams())
	if err != nil {
		log.Error("Scene regeneration failed", zap.Error(err))
		return models.Scene{}, fmt.Errorf("failed to regenerate scene: %w", err)
	}
	scene, err := parseScene(reply, req.SceneNumber)
	if err != nil {
		log.Warn("Regenerated scene rejected", zap.Error(err))
		return models.Scene{}, err
	}
	log.Info("Scene regenerated")
	return scene, nil
}

func (s *generationService) AnalyzeCreatorStyle(ctx context.Context, handle string) (models.CreatorStyle, error) {
	handle = strings.TrimPrefix(strings.TrimSpace(handle), "@")
	if handle == "" {
		return models.CreatorStyle{}, fmt.Errorf("%w: instagramHandle is required", models.ErrValidation)
	}
	if s.cfg.MockMode {
		return models.DefaultCreatorStyle(), nil
	}
	if err := s.textConfigured(); err != nil {
		return models.CreatorStyle{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.TextTimeout)
	defer cancel()

	reply, _, err := s.ai.GenerateText(ctx, opAnalyzeCreatorStyle, prompts.CreatorAnalystSystemPrompt, prompts.AnalyzeCreatorStylePrompt(handle), storyboardParams())
	if err != nil {
		s.logger.Error("Creator style analysis failed", zap.String("handle", handle), zap.Error(err))
		return models.CreatorStyle{}, fmt.Errorf("failed to analyze creator style: %w", err)
	}
	style, err := parseCreatorStyle(reply)
	if err != nil {
		return models.CreatorStyle{}, err
	}
	return style.WithDefaults(), nil
}

// enhanceDescription asks the LLM for a richer image prompt. Any failure
// returns the original description.
func (s *generationService) enhanceDescription(ctx context.Context, description string) string {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.EnhanceTimeout)
	defer cancel()

	reply, _, err := s.ai.GenerateText(ctx, opEnhanceDescription, "", prompts.EnhanceVisualDescriptionPrompt(description), enhanceParams())
	if err != nil {
		s.logger.Debug("Description enhancement skipped", zap.Error(err))
		return description
	}
	if enhanced := strings.TrimSpace(reply); enhanced != "" {
		return enhanced
	}
	return description
}

func (s *generationService) GenerateSceneImage(ctx context.Context, description string, opts models.ImageOptions) (models.PreviewResult, error) {
	placeholder := models.PreviewResult{
		URL:  placeholderImageURL(s.cfg.PlaceholderBaseURL, description),
		Type: models.PreviewImage,
	}
	if s.cfg.MockMode {
		return placeholder, nil
	}
	if err := s.mediaConfigured(); err != nil {
		return models.PreviewResult{}, err
	}

	aspect := opts.AspectRatio
	if aspect == "" {
		aspect = models.DefaultAspectRatio
	}
	style := opts.Style
	if style == "" {
		style = models.DefaultImageStyle
	}

	prompt := s.enhanceDescription(ctx, description)

	imgCtx, cancel := context.WithTimeout(ctx, s.cfg.ImageTimeout)
	defer cancel()

	url, err := s.media.GenerateImage(imgCtx, ImageRequest{
		Model:       s.cfg.ImageModel,
		Prompt:      prompt,
		AspectRatio: aspect,
		NumImages:   1,
		Style:       style,
	})
	if err != nil {
		s.logger.Warn("Image generation failed, using placeholder", zap.Error(err))
		previewFallbacksTotal.WithLabelValues("image", "placeholder").Inc()
		return placeholder, nil
	}
	return models.PreviewResult{URL: url, Type: models.PreviewImage}, nil
}

func (s *generationService) GenerateSceneVideo(ctx context.Context, description string, seconds int, opts models.ImageOptions) (models.PreviewResult, error) {
	if s.cfg.MockMode {
		return s.GenerateSceneImage(ctx, description, opts)
	}
	if err := s.mediaConfigured(); err != nil {
		return models.PreviewResult{}, err
	}
	if seconds <= 0 {
		seconds = models.DefaultSceneSeconds
	}

	job := newVideoJob()
	url, err := s.runVideoJob(ctx, job, description, seconds, opts.AspectRatio)
	videoJobsTotal.WithLabelValues(job.state.String()).Inc()
	if err == nil {
		s.logger.Info("Scene video generated", zap.Int("polls", job.polls))
		return models.PreviewResult{URL: url, Type: models.PreviewVideo}, nil
	}

	s.logger.Warn("Video generation failed, falling back to image",
		zap.String("state", job.state.String()),
		zap.Int("polls", job.polls),
		zap.Error(err),
	)
	s.advance(job, VideoFellBackToImage)
	previewFallbacksTotal.WithLabelValues("video", "image").Inc()
	return s.GenerateSceneImage(ctx, description, opts)
}

// runVideoJob submits a video and polls until it settles. On error the job
// is left in VideoFailed or VideoTimedOut.
func (s *generationService) runVideoJob(ctx context.Context, job *videoJob, description string, seconds int, aspect string) (string, error) {
	if aspect == "" {
		aspect = models.DefaultAspectRatio
	}
	submitCtx, cancel := context.WithTimeout(ctx, s.cfg.VideoTimeout)
	sub, err := s.media.SubmitVideo(submitCtx, VideoRequest{
		Model:       s.cfg.VideoModel,
		Prompt:      description,
		Duration:    seconds,
		AspectRatio: aspect,
	})
	cancel()
	if err != nil {
		s.advance(job, VideoFailed)
		return "", fmt.Errorf("video submission failed: %w", err)
	}
	if sub.TaskID == "" {
		s.advance(job, VideoCompleted)
		return sub.URL, nil
	}

	log := s.logger.With(zap.String("task_id", sub.TaskID))
	ticker := time.NewTicker(s.cfg.VideoPollInterval)
	defer ticker.Stop()

	for attempt := 1; attempt <= s.cfg.VideoPollAttempts; attempt++ {
		select {
		case <-ctx.Done():
			s.advance(job, VideoFailed)
			return "", fmt.Errorf("video polling cancelled: %w", ctx.Err())
		case <-ticker.C:
		}
		s.advance(job, VideoPolling)

		pollCtx, cancel := context.WithTimeout(ctx, s.cfg.VideoTimeout)
		status, err := s.media.VideoStatus(pollCtx, sub.TaskID)
		cancel()
		if err != nil {
			log.Warn("Video status poll failed", zap.Int("attempt", attempt), zap.Error(err))
			continue
		}

		switch classifyVideoStatus(status.Status) {
		case providerVideoDone:
			if status.URL == "" {
				s.advance(job, VideoFailed)
				return "", fmt.Errorf("%w: video completed without a URL", models.ErrMalformedResponse)
			}
			s.advance(job, VideoCompleted)
			return status.URL, nil
		case providerVideoFailed:
			s.advance(job, VideoFailed)
			return "", fmt.Errorf("video generation failed with status %q", status.Status)
		default:
			log.Debug("Video still processing", zap.Int("attempt", attempt), zap.String("status", status.Status))
		}
	}

	s.advance(job, VideoTimedOut)
	return "", fmt.Errorf("%w: video generation did not finish after %d polls", models.ErrTimeout, s.cfg.VideoPollAttempts)
}

func (s *generationService) advance(job *videoJob, next VideoState) {
	if err := job.transition(next); err != nil {
		s.logger.Error("Video job state error", zap.Error(err))
	}
}
