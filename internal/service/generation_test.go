package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/zprintln/AdMaxxer-Project/internal/config"
	"github.com/zprintln/AdMaxxer-Project/internal/models"
)

// fakeProvider stands in for the MiniMax chat, image and video endpoints.
type fakeProvider struct {
	t *testing.T

	mu          sync.Mutex
	chatCalls   int
	imageBodies []ImageRequest
	videoBodies []VideoRequest
	polls       int
	pollURIs    []string
	groupIDs    []string

	chat        func(call int) (int, string)
	image       func() (int, string)
	video       func() (int, string)
	videoStatus func(poll int) (int, string)
}

func (f *fakeProvider) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.groupIDs = append(f.groupIDs, r.Header.Get("GroupId"))

	var status int
	var body string
	switch {
	case r.URL.Path == "/text/chatcompletion_v2":
		f.chatCalls++
		if f.chat == nil {
			f.t.Errorf("unexpected chat call")
			status, body = http.StatusInternalServerError, `{}`
			break
		}
		status, body = f.chat(f.chatCalls)
	case r.URL.Path == "/image/generation":
		var req ImageRequest
		assert.NoError(f.t, json.NewDecoder(r.Body).Decode(&req))
		f.imageBodies = append(f.imageBodies, req)
		if f.image == nil {
			f.t.Errorf("unexpected image call")
			status, body = http.StatusInternalServerError, `{}`
			break
		}
		status, body = f.image()
	case r.URL.Path == "/video/generation" && r.Method == http.MethodPost:
		var req VideoRequest
		assert.NoError(f.t, json.NewDecoder(r.Body).Decode(&req))
		f.videoBodies = append(f.videoBodies, req)
		status, body = f.video()
	case strings.HasPrefix(r.URL.Path, "/video/generation/"):
		f.polls++
		f.pollURIs = append(f.pollURIs, r.RequestURI)
		status, body = f.videoStatus(f.polls)
	default:
		f.t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		status, body = http.StatusNotFound, `{}`
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func (f *fakeProvider) calls() (chat, images, videos, polls int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.chatCalls, len(f.imageBodies), len(f.videoBodies), f.polls
}

func chatReply(content string) (int, string) {
	payload := map[string]any{
		"id":      "chatcmpl-1",
		"object":  "chat.completion",
		"created": 1,
		"model":   "abab6.5-chat",
		"choices": []map[string]any{{
			"index":         0,
			"message":       map[string]string{"role": "assistant", "content": content},
			"finish_reason": "stop",
		}},
		"usage": map[string]int{"prompt_tokens": 120, "completion_tokens": 80, "total_tokens": 200},
	}
	data, _ := json.Marshal(payload)
	return http.StatusOK, string(data)
}

func chatError(status int) (int, string) {
	return status, fmt.Sprintf(`{"error":{"message":"provider said %d","type":"error"}}`, status)
}

func testAIConfig(baseURL string) config.AIConfig {
	return config.AIConfig{
		ClientType:         config.ClientTypeOpenAI,
		APIKey:             "test-key",
		GroupID:            "group-1",
		BaseURL:            baseURL,
		ChatModel:          "abab6.5-chat",
		ImageModel:         "image-01",
		VideoModel:         "video-01",
		TextTimeout:        5 * time.Second,
		ImageTimeout:       5 * time.Second,
		VideoTimeout:       5 * time.Second,
		EnhanceTimeout:     5 * time.Second,
		VideoPollInterval:  time.Millisecond,
		VideoPollAttempts:  3,
		PlaceholderBaseURL: "https://placeholder.test",
	}
}

func newTestService(t *testing.T, fake *fakeProvider, mutate func(*config.AIConfig)) GenerationService {
	t.Helper()
	fake.t = t
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	cfg := testAIConfig(srv.URL)
	if mutate != nil {
		mutate(&cfg)
	}
	logger := zaptest.NewLogger(t)
	ai, err := NewAIClient(cfg, logger)
	require.NoError(t, err)
	return NewGenerationService(cfg, ai, NewMediaClient(cfg, logger), logger)
}

func testBrief() models.StructuredBrief {
	return models.StructuredBrief{
		BrandName:     "Glossier",
		ProductName:   "Cloud Paint",
		TalkingPoints: []string{"buildable color", "dewy finish"},
		Hashtags:      []string{"#glossierpartner", "#ad"},
		Restrictions:  []string{},
		Duration:      "20 seconds",
		PlatformSpecs: models.DefaultPlatformSpecs(),
		CallToAction:  "Shop now",
	}
}

const threeScenes = "```json\n[" +
	`{"scene":1,"duration":"3s","visual":"Hook shot","script":"Hey!"},` +
	`{"scene":7,"duration":5,"visual":"Demo","script":"Look at this","notes":"show texture"},` +
	`{"scene":9,"duration":"4s","visual":"CTA","script":"Link in bio #ad"}` +
	"]\n```"

func TestGenerateStoryboard_Success(t *testing.T) {
	fake := &fakeProvider{chat: func(int) (int, string) { return chatReply(threeScenes) }}
	svc := newTestService(t, fake, nil)

	storyboard, err := svc.GenerateStoryboard(context.Background(), testBrief(), models.CreatorStyle{})
	require.NoError(t, err)
	require.Len(t, storyboard, 3)

	for i, scene := range storyboard {
		assert.Equal(t, i+1, scene.Scene)
	}
	assert.Equal(t, "5s", storyboard[1].Duration)
	assert.Equal(t, "show texture", storyboard[1].Notes)
	assert.Equal(t, 12, storyboard.TotalDurationSeconds())
	assert.Contains(t, fake.groupIDs, "group-1")
}

func TestGenerateStoryboard_MissingField(t *testing.T) {
	reply := `[{"scene":1,"duration":"3s","visual":"a","script":"b"},{"scene":2,"duration":"5s","visual":"c"}]`
	fake := &fakeProvider{chat: func(int) (int, string) { return chatReply(reply) }}
	svc := newTestService(t, fake, nil)

	_, err := svc.GenerateStoryboard(context.Background(), testBrief(), models.CreatorStyle{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrMalformedResponse))

	var fieldErr *models.SceneFieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, 2, fieldErr.Scene)
	assert.Equal(t, "script", fieldErr.Field)
	assert.EqualError(t, err, "scene 2 is missing required field: script")
}

func TestGenerateStoryboard_RejectsNonArrayAndEmpty(t *testing.T) {
	for name, reply := range map[string]string{
		"object":   `{"scene":1}`,
		"empty":    `[]`,
		"not json": `I cannot help with that`,
	} {
		t.Run(name, func(t *testing.T) {
			fake := &fakeProvider{chat: func(int) (int, string) { return chatReply(reply) }}
			svc := newTestService(t, fake, nil)
			_, err := svc.GenerateStoryboard(context.Background(), testBrief(), models.CreatorStyle{})
			assert.ErrorIs(t, err, models.ErrMalformedResponse)
		})
	}
}

func TestGenerateStoryboard_RecoversArrayFromProse(t *testing.T) {
	reply := "Here you go:\n" + `[{"scene":1,"duration":"3s","visual":"a","script":"b"}]` + "\nEnjoy!"
	fake := &fakeProvider{chat: func(int) (int, string) { return chatReply(reply) }}
	svc := newTestService(t, fake, nil)

	storyboard, err := svc.GenerateStoryboard(context.Background(), testBrief(), models.CreatorStyle{})
	require.NoError(t, err)
	assert.Len(t, storyboard, 1)
}

func TestGenerateStoryboard_ProviderErrors(t *testing.T) {
	cases := []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, models.ErrAuthentication},
		{http.StatusForbidden, models.ErrAuthentication},
		{http.StatusTooManyRequests, models.ErrRateLimited},
		{http.StatusServiceUnavailable, models.ErrConnectivity},
	}
	for _, tc := range cases {
		t.Run(http.StatusText(tc.status), func(t *testing.T) {
			fake := &fakeProvider{chat: func(int) (int, string) { return chatError(tc.status) }}
			svc := newTestService(t, fake, nil)
			_, err := svc.GenerateStoryboard(context.Background(), testBrief(), models.CreatorStyle{})
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestGenerateStoryboard_BaseRespErrorsWithStatusOK(t *testing.T) {
	cases := []struct {
		name string
		code int
		want error
	}{
		{"invalid api key", 1004, models.ErrAuthentication},
		{"rate limited", 1002, models.ErrRateLimited},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fake := &fakeProvider{chat: func(int) (int, string) {
				return http.StatusOK, fmt.Sprintf(`{"choices":null,"base_resp":{"status_code":%d,"status_msg":"%s"}}`, tc.code, tc.name)
			}}
			svc := newTestService(t, fake, nil)

			_, err := svc.GenerateStoryboard(context.Background(), testBrief(), models.CreatorStyle{})
			assert.ErrorIs(t, err, tc.want)
			assert.NotErrorIs(t, err, models.ErrMalformedResponse)
			assert.NotErrorIs(t, err, models.ErrConnectivity)
		})
	}
}

func TestGenerateStoryboard_FencedAndBareRepliesMatch(t *testing.T) {
	payload := `[{"scene":1,"duration":"3s","visual":"Hook","script":"Hi"},` +
		`{"scene":2,"duration":6,"visual":"Demo","script":"Watch","notes":"close-up"}]`

	generate := func(t *testing.T, reply string) models.Storyboard {
		t.Helper()
		fake := &fakeProvider{chat: func(int) (int, string) { return chatReply(reply) }}
		svc := newTestService(t, fake, nil)
		storyboard, err := svc.GenerateStoryboard(context.Background(), testBrief(), models.CreatorStyle{})
		require.NoError(t, err)
		return storyboard
	}

	bare := generate(t, payload)
	require.Len(t, bare, 2)
	for name, reply := range map[string]string{
		"json fence":  "```json\n" + payload + "\n```",
		"plain fence": "```\n" + payload + "\n```",
	} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, bare, generate(t, reply))
		})
	}
}

func TestGenerateStoryboard_OtherProviderErrorIsGeneric(t *testing.T) {
	fake := &fakeProvider{chat: func(int) (int, string) { return chatError(http.StatusBadRequest) }}
	svc := newTestService(t, fake, nil)

	_, err := svc.GenerateStoryboard(context.Background(), testBrief(), models.CreatorStyle{})
	require.Error(t, err)
	for _, kind := range []error{models.ErrAuthentication, models.ErrRateLimited, models.ErrConnectivity, models.ErrMalformedResponse} {
		assert.NotErrorIs(t, err, kind)
	}
}

func TestGenerateStoryboard_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	baseURL := srv.URL
	srv.Close()

	cfg := testAIConfig(baseURL)
	logger := zaptest.NewLogger(t)
	ai, err := NewAIClient(cfg, logger)
	require.NoError(t, err)
	svc := NewGenerationService(cfg, ai, NewMediaClient(cfg, logger), logger)

	_, err = svc.GenerateStoryboard(context.Background(), testBrief(), models.CreatorStyle{})
	assert.ErrorIs(t, err, models.ErrConnectivity)
}

func TestGenerateStoryboard_MissingCredentials(t *testing.T) {
	fake := &fakeProvider{}
	svc := newTestService(t, fake, func(c *config.AIConfig) { c.APIKey = "" })

	_, err := svc.GenerateStoryboard(context.Background(), testBrief(), models.CreatorStyle{})
	assert.ErrorIs(t, err, models.ErrConfiguration)
	chat, _, _, _ := fake.calls()
	assert.Zero(t, chat)
}

func TestGenerateStoryboard_InvalidBrief(t *testing.T) {
	svc := newTestService(t, &fakeProvider{}, nil)
	brief := testBrief()
	brief.ProductName = " "
	_, err := svc.GenerateStoryboard(context.Background(), brief, models.CreatorStyle{})
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestGenerateStoryboard_MockMode(t *testing.T) {
	fake := &fakeProvider{}
	svc := newTestService(t, fake, func(c *config.AIConfig) {
		c.MockMode = true
		c.APIKey = ""
	})

	first, err := svc.GenerateStoryboard(context.Background(), testBrief(), models.CreatorStyle{})
	require.NoError(t, err)
	second, err := svc.GenerateStoryboard(context.Background(), testBrief(), models.CreatorStyle{})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.GreaterOrEqual(t, len(first), 3)
	assert.LessOrEqual(t, len(first), 6)
	last := first[len(first)-1]
	assert.Contains(t, last.Script, "#glossierpartner")
	assert.Contains(t, last.Script, "Shop now")
	chat, images, videos, _ := fake.calls()
	assert.Zero(t, chat+images+videos)
}

func TestGenerateSceneImage_Success(t *testing.T) {
	fake := &fakeProvider{
		chat:  func(int) (int, string) { return chatReply("A richer description") },
		image: func() (int, string) { return http.StatusOK, `{"data":[{"url":"https://cdn.test/img.png"}]}` },
	}
	svc := newTestService(t, fake, nil)

	res, err := svc.GenerateSceneImage(context.Background(), "Creator holds product", models.ImageOptions{})
	require.NoError(t, err)
	assert.Equal(t, models.PreviewResult{URL: "https://cdn.test/img.png", Type: models.PreviewImage}, res)

	require.Len(t, fake.imageBodies, 1)
	body := fake.imageBodies[0]
	assert.Equal(t, "A richer description", body.Prompt)
	assert.Equal(t, "9:16", body.AspectRatio)
	assert.Equal(t, "realistic", body.Style)
	assert.Equal(t, "image-01", body.Model)
}

func TestGenerateSceneImage_EnhancementFailureUsesOriginal(t *testing.T) {
	fake := &fakeProvider{
		chat:  func(int) (int, string) { return chatError(http.StatusInternalServerError) },
		image: func() (int, string) { return http.StatusOK, `{"images":[{"url":"https://cdn.test/a.png"}]}` },
	}
	svc := newTestService(t, fake, nil)

	res, err := svc.GenerateSceneImage(context.Background(), "Original description", models.ImageOptions{AspectRatio: "1:1", Style: "anime"})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.test/a.png", res.URL)
	require.Len(t, fake.imageBodies, 1)
	assert.Equal(t, "Original description", fake.imageBodies[0].Prompt)
	assert.Equal(t, "1:1", fake.imageBodies[0].AspectRatio)
	assert.Equal(t, "anime", fake.imageBodies[0].Style)
}

func TestGenerateSceneImage_FailureReturnsPlaceholder(t *testing.T) {
	fake := &fakeProvider{
		chat:  func(int) (int, string) { return chatReply("enhanced") },
		image: func() (int, string) { return http.StatusInternalServerError, `{"error":"boom"}` },
	}
	svc := newTestService(t, fake, nil)

	res, err := svc.GenerateSceneImage(context.Background(), "Sunset beach walk", models.ImageOptions{})
	require.NoError(t, err)
	assert.Equal(t, models.PreviewImage, res.Type)
	assert.Equal(t, "https://placeholder.test/1080x1920/0ea5e9/ffffff?text=Sunset%20beach%20walk", res.URL)
}

func TestGenerateSceneImage_MissingCredentials(t *testing.T) {
	fake := &fakeProvider{}
	svc := newTestService(t, fake, func(c *config.AIConfig) { c.GroupID = "" })

	_, err := svc.GenerateSceneImage(context.Background(), "anything", models.ImageOptions{})
	assert.ErrorIs(t, err, models.ErrConfiguration)
}

func TestGenerateSceneVideo_CompletesAfterPolling(t *testing.T) {
	fake := &fakeProvider{
		video: func() (int, string) { return http.StatusOK, `{"task_id":"task-42"}` },
		videoStatus: func(poll int) (int, string) {
			if poll < 2 {
				return http.StatusOK, `{"status":"processing"}`
			}
			return http.StatusOK, `{"status":"Success","video_url":"https://cdn.test/v.mp4"}`
		},
	}
	svc := newTestService(t, fake, nil)

	res, err := svc.GenerateSceneVideo(context.Background(), "Product spin", 6, models.ImageOptions{})
	require.NoError(t, err)
	assert.Equal(t, models.PreviewResult{URL: "https://cdn.test/v.mp4", Type: models.PreviewVideo}, res)

	_, images, _, polls := fake.calls()
	assert.Equal(t, 2, polls)
	assert.Zero(t, images)
	require.Len(t, fake.videoBodies, 1)
	assert.Equal(t, 6, fake.videoBodies[0].Duration)
	assert.Equal(t, "9:16", fake.videoBodies[0].AspectRatio)
}

func TestGenerateSceneVideo_DirectURL(t *testing.T) {
	fake := &fakeProvider{
		video: func() (int, string) { return http.StatusOK, `{"data":{"url":"https://cdn.test/direct.mp4"}}` },
	}
	svc := newTestService(t, fake, nil)

	res, err := svc.GenerateSceneVideo(context.Background(), "Product spin", 0, models.ImageOptions{})
	require.NoError(t, err)
	assert.Equal(t, models.PreviewVideo, res.Type)
	assert.Equal(t, "https://cdn.test/direct.mp4", res.URL)
	assert.Equal(t, models.DefaultSceneSeconds, fake.videoBodies[0].Duration)
}

func TestGenerateSceneVideo_FailedStatusFallsBackImmediately(t *testing.T) {
	fake := &fakeProvider{
		chat:        func(int) (int, string) { return chatReply("enhanced") },
		image:       func() (int, string) { return http.StatusOK, `{"data":[{"url":"https://cdn.test/fallback.png"}]}` },
		video:       func() (int, string) { return http.StatusOK, `{"task_id":"task-1"}` },
		videoStatus: func(int) (int, string) { return http.StatusOK, `{"status":"Fail"}` },
	}
	svc := newTestService(t, fake, nil)

	res, err := svc.GenerateSceneVideo(context.Background(), "Product spin", 5, models.ImageOptions{})
	require.NoError(t, err)
	assert.Equal(t, models.PreviewResult{URL: "https://cdn.test/fallback.png", Type: models.PreviewImage}, res)
	_, _, _, polls := fake.calls()
	assert.Equal(t, 1, polls)
}

func TestGenerateSceneVideo_TimesOutAndFallsBack(t *testing.T) {
	fake := &fakeProvider{
		chat:        func(int) (int, string) { return chatReply("enhanced") },
		image:       func() (int, string) { return http.StatusInternalServerError, `{}` },
		video:       func() (int, string) { return http.StatusOK, `{"task_id":"task-1"}` },
		videoStatus: func(int) (int, string) { return http.StatusOK, `{"status":"Queueing"}` },
	}
	svc := newTestService(t, fake, nil)

	res, err := svc.GenerateSceneVideo(context.Background(), "Slow render", 5, models.ImageOptions{})
	require.NoError(t, err)
	assert.Equal(t, models.PreviewImage, res.Type)
	assert.True(t, strings.HasPrefix(res.URL, "https://placeholder.test/1080x1920/"))
	_, _, _, polls := fake.calls()
	assert.Equal(t, 3, polls)
}

func TestGenerateSceneVideo_PollErrorsKeepPolling(t *testing.T) {
	fake := &fakeProvider{
		video: func() (int, string) { return http.StatusOK, `{"task_id":"task-1"}` },
		videoStatus: func(poll int) (int, string) {
			if poll == 1 {
				return http.StatusBadGateway, `{}`
			}
			return http.StatusOK, `{"status":"completed","video_url":"https://cdn.test/ok.mp4"}`
		},
	}
	svc := newTestService(t, fake, nil)

	res, err := svc.GenerateSceneVideo(context.Background(), "Product spin", 5, models.ImageOptions{})
	require.NoError(t, err)
	assert.Equal(t, models.PreviewVideo, res.Type)
}

func TestGenerateSceneVideo_FallbackKeepsOptions(t *testing.T) {
	fake := &fakeProvider{
		chat:        func(int) (int, string) { return chatReply("enhanced") },
		image:       func() (int, string) { return http.StatusOK, `{"data":[{"url":"https://cdn.test/square.png"}]}` },
		video:       func() (int, string) { return http.StatusOK, `{"task_id":"task-1"}` },
		videoStatus: func(int) (int, string) { return http.StatusOK, `{"status":"failed"}` },
	}
	svc := newTestService(t, fake, nil)

	opts := models.ImageOptions{AspectRatio: "1:1", Style: "anime"}
	res, err := svc.GenerateSceneVideo(context.Background(), "Product spin", 5, opts)
	require.NoError(t, err)
	assert.Equal(t, models.PreviewImage, res.Type)

	require.Len(t, fake.videoBodies, 1)
	assert.Equal(t, "1:1", fake.videoBodies[0].AspectRatio)
	require.Len(t, fake.imageBodies, 1)
	assert.Equal(t, "1:1", fake.imageBodies[0].AspectRatio)
	assert.Equal(t, "anime", fake.imageBodies[0].Style)
}

func TestMediaClient_VideoStatusEscapesTaskID(t *testing.T) {
	fake := &fakeProvider{t: t, videoStatus: func(int) (int, string) {
		return http.StatusOK, `{"status":"processing"}`
	}}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	client := NewMediaClient(testAIConfig(srv.URL), zaptest.NewLogger(t))
	status, err := client.VideoStatus(context.Background(), "task/1 x")
	require.NoError(t, err)
	assert.Equal(t, "processing", status.Status)
	assert.Equal(t, []string{"/video/generation/task%2F1%20x"}, fake.pollURIs)
}

func TestGenerateSceneVideo_MissingCredentials(t *testing.T) {
	svc := newTestService(t, &fakeProvider{}, func(c *config.AIConfig) { c.APIKey = "" })
	_, err := svc.GenerateSceneVideo(context.Background(), "x", 5, models.ImageOptions{})
	assert.ErrorIs(t, err, models.ErrConfiguration)
}

func TestRegenerateScene_ForcesSceneNumber(t *testing.T) {
	fake := &fakeProvider{chat: func(int) (int, string) {
		return chatReply(`{"scene":1,"duration":"4s","visual":"New angle","script":"Fresh take"}`)
	}}
	svc := newTestService(t, fake, nil)

	scene, err := svc.RegenerateScene(context.Background(), SceneRegenerationRequest{
		SceneNumber: 3,
		Current:     models.Scene{Scene: 3, Duration: "4s", Visual: "Old", Script: "Old"},
		Brief:       testBrief(),
		Feedback:    "more energy",
	})
	require.NoError(t, err)
	assert.Equal(t, models.Scene{Scene: 3, Duration: "4s", Visual: "New angle", Script: "Fresh take"}, scene)
}

func TestRegenerateScene_Validation(t *testing.T) {
	svc := newTestService(t, &fakeProvider{}, nil)
	_, err := svc.RegenerateScene(context.Background(), SceneRegenerationRequest{SceneNumber: 0, Brief: testBrief()})
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestAnalyzeCreatorStyle(t *testing.T) {
	fake := &fakeProvider{chat: func(int) (int, string) {
		return chatReply("```json\n{\"contentFormat\":\"GRWM\",\"tone\":\"playful\",\"commonThemes\":[\"skincare\"]}\n```")
	}}
	svc := newTestService(t, fake, nil)

	style, err := svc.AnalyzeCreatorStyle(context.Background(), "@jane")
	require.NoError(t, err)
	assert.Equal(t, "GRWM", style.ContentFormat)
	assert.Equal(t, "playful", style.Tone)
	assert.Equal(t, []string{"skincare"}, style.CommonThemes)
	assert.NotEmpty(t, style.AestheticTags)

	_, err = svc.AnalyzeCreatorStyle(context.Background(), " @ ")
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestPlaceholderImageURL(t *testing.T) {
	long := strings.Repeat("é", 60)
	got := placeholderImageURL("https://p.test/", long)
	assert.Equal(t, placeholderImageURL("https://p.test", long), got)
	assert.Contains(t, got, "https://p.test/1080x1920/0ea5e9/ffffff?text=")
	assert.Equal(t, 50, strings.Count(got, "%C3%A9"))
}
