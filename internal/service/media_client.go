package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/zprintln/AdMaxxer-Project/internal/config"
	"github.com/zprintln/AdMaxxer-Project/internal/models"
)

// MediaClient talks to the image and video generation endpoints.
type MediaClient interface {
	GenerateImage(ctx context.Context, req ImageRequest) (string, error)
	SubmitVideo(ctx context.Context, req VideoRequest) (VideoSubmission, error)
	VideoStatus(ctx context.Context, taskID string) (VideoStatusResponse, error)
}

// ImageRequest is the body of POST /image/generation.
type ImageRequest struct {
	Model       string `json:"model"`
	Prompt      string `json:"prompt"`
	AspectRatio string `json:"aspect_ratio"`
	NumImages   int    `json:"num_images"`
	Style       string `json:"style,omitempty"`
}

// VideoRequest is the body of POST /video/generation.
type VideoRequest struct {
	Model       string `json:"model"`
	Prompt      string `json:"prompt"`
	Duration    int    `json:"duration"`
	AspectRatio string `json:"aspect_ratio"`
}

// VideoSubmission is either an async task handle or a direct URL.
type VideoSubmission struct {
	TaskID string
	URL    string
}

// VideoStatusResponse is one poll result.
type VideoStatusResponse struct {
	Status string
	URL    string
}

type baseResp struct {
	StatusCode int    `json:"status_code"`
	StatusMsg  string `json:"status_msg"`
}

type urlItem struct {
	URL string `json:"url"`
}

type imageResponse struct {
	Images   []urlItem `json:"images"`
	Data     []urlItem `json:"data"`
	BaseResp *baseResp `json:"base_resp,omitempty"`
}

type videoResponse struct {
	TaskID   string    `json:"task_id"`
	Status   string    `json:"status"`
	VideoURL string    `json:"video_url"`
	Data     *urlItem  `json:"data,omitempty"`
	BaseResp *baseResp `json:"base_resp,omitempty"`
}

func (r videoResponse) url() string {
	if r.VideoURL != "" {
		return r.VideoURL
	}
	if r.Data != nil {
		return r.Data.URL
	}
	return ""
}

// MiniMax reports some failures with HTTP 200 and a non-zero base_resp code.
const (
	minimaxCodeRateLimited = 1002
	minimaxCodeAuthFailed  = 1004
)

type minimaxMediaClient struct {
	baseURL     string
	apiKey      string
	groupID     string
	imageClient *http.Client
	videoClient *http.Client
	logger      *zap.Logger
}

// NewMediaClient creates the MiniMax media client. Image and video calls use
// separate HTTP clients with their own timeouts.
func NewMediaClient(cfg config.AIConfig, logger *zap.Logger) MediaClient {
	return &minimaxMediaClient{
		baseURL:     strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:      cfg.APIKey,
		groupID:     cfg.GroupID,
		imageClient: &http.Client{Timeout: cfg.ImageTimeout},
		videoClient: &http.Client{Timeout: cfg.VideoTimeout},
		logger:      logger,
	}
}

func (c *minimaxMediaClient) GenerateImage(ctx context.Context, req ImageRequest) (string, error) {
	var resp imageResponse
	if err := c.do(ctx, c.imageClient, "image", http.MethodPost, "/image/generation", req, &resp); err != nil {
		return "", err
	}
	if err := checkBaseResp(resp.BaseResp); err != nil {
		mediaRequestsTotal.WithLabelValues("image", errorStatusLabel(err)).Inc()
		return "", err
	}
	for _, items := range [][]urlItem{resp.Images, resp.Data} {
		if len(items) > 0 && items[0].URL != "" {
			mediaRequestsTotal.WithLabelValues("image", "success").Inc()
			return items[0].URL, nil
		}
	}
	mediaRequestsTotal.WithLabelValues("image", "error_malformed").Inc()
	return "", fmt.Errorf("%w: no image URL returned", models.ErrMalformedResponse)
}

func (c *minimaxMediaClient) SubmitVideo(ctx context.Context, req VideoRequest) (VideoSubmission, error) {
	var resp videoResponse
	if err := c.do(ctx, c.videoClient, "video", http.MethodPost, "/video/generation", req, &resp); err != nil {
		return VideoSubmission{}, err
	}
	if err := checkBaseResp(resp.BaseResp); err != nil {
		mediaRequestsTotal.WithLabelValues("video", errorStatusLabel(err)).Inc()
		return VideoSubmission{}, err
	}
	sub := VideoSubmission{TaskID: resp.TaskID, URL: resp.url()}
	if sub.TaskID == "" && sub.URL == "" {
		mediaRequestsTotal.WithLabelValues("video", "error_malformed").Inc()
		return VideoSubmission{}, fmt.Errorf("%w: neither task id nor video URL returned", models.ErrMalformedResponse)
	}
	mediaRequestsTotal.WithLabelValues("video", "success").Inc()
	return sub, nil
}

func (c *minimaxMediaClient) VideoStatus(ctx context.Context, taskID string) (VideoStatusResponse, error) {
	var resp videoResponse
	if err := c.do(ctx, c.videoClient, "video_poll", http.MethodGet, "/video/generation/"+url.PathEscape(taskID), nil, &resp); err != nil {
		return VideoStatusResponse{}, err
	}
	if err := checkBaseResp(resp.BaseResp); err != nil {
		return VideoStatusResponse{}, err
	}
	mediaRequestsTotal.WithLabelValues("video_poll", "success").Inc()
	return VideoStatusResponse{Status: resp.Status, URL: resp.url()}, nil
}

// do sends one JSON request and decodes the JSON response into out.
func (c *minimaxMediaClient) do(ctx context.Context, client *http.Client, kind, method, path string, body any, out any) error {
	log := c.logger.With(zap.String("kind", kind), zap.String("path", path))

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal %s request payload: %w", kind, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create %s request: %w", kind, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	if c.groupID != "" {
		req.Header.Set("GroupId", c.groupID)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := client.Do(req)
	mediaRequestDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
	if err != nil {
		classified := classifyTransportError(err)
		mediaRequestsTotal.WithLabelValues(kind, errorStatusLabel(classified)).Inc()
		log.Warn("Media request failed", zap.Error(err))
		return classified
	}
	defer resp.Body.Close()

	bodyBytes, readErr := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := fmt.Errorf("media API returned status %d: %s", resp.StatusCode, truncate(string(bodyBytes), 200))
		classified := classifyHTTPStatus(resp.StatusCode, "", apiErr)
		mediaRequestsTotal.WithLabelValues(kind, errorStatusLabel(classified)).Inc()
		log.Warn("Media API returned non-OK status",
			zap.Int("status_code", resp.StatusCode),
			zap.ByteString("response_body", bodyBytes),
		)
		return classified
	}
	if readErr != nil {
		mediaRequestsTotal.WithLabelValues(kind, "error_connectivity").Inc()
		return fmt.Errorf("%w: failed to read response body: %w", models.ErrConnectivity, readErr)
	}
	if err := json.Unmarshal(bodyBytes, out); err != nil {
		mediaRequestsTotal.WithLabelValues(kind, "error_malformed").Inc()
		return fmt.Errorf("%w: invalid JSON from media API: %w", models.ErrMalformedResponse, err)
	}
	return nil
}

func checkBaseResp(br *baseResp) error {
	if br == nil || br.StatusCode == 0 {
		return nil
	}
	switch br.StatusCode {
	case minimaxCodeAuthFailed:
		return fmt.Errorf("%w: %s", models.ErrAuthentication, br.StatusMsg)
	case minimaxCodeRateLimited:
		return fmt.Errorf("%w: %s", models.ErrRateLimited, br.StatusMsg)
	default:
		return fmt.Errorf("provider API error (%d): %s", br.StatusCode, br.StatusMsg)
	}
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
