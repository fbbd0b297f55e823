package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ollama/ollama/api"
	"github.com/pkoukk/tiktoken-go"
	openaigo "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/zprintln/AdMaxxer-Project/internal/config"
	"github.com/zprintln/AdMaxxer-Project/internal/models"
)

// GenerationParams are optional sampling settings; nil means provider default.
type GenerationParams struct {
	Temperature *float64
	MaxTokens   *int
	TopP        *float64
}

// UsageInfo reports token usage of one completion.
type UsageInfo struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
	Estimated        bool
}

// AIClient sends a single chat completion to an LLM provider. Errors are
// classified into the models error kinds.
type AIClient interface {
	GenerateText(ctx context.Context, operation, systemPrompt, userInput string, params GenerationParams) (string, UsageInfo, error)
}

// NewAIClient builds the client selected by cfg.ClientType.
func NewAIClient(cfg config.AIConfig, logger *zap.Logger) (AIClient, error) {
	switch strings.ToLower(cfg.ClientType) {
	case config.ClientTypeOpenAI:
		return newOpenAIClient(cfg, logger), nil
	case config.ClientTypeOllama:
		return newOllamaClient(cfg, logger)
	default:
		return nil, fmt.Errorf("unknown AI client type: '%s'", cfg.ClientType)
	}
}

// --- OpenAI-compatible client (MiniMax) ---

type openAIClient struct {
	client *openaigo.Client
	model  string
	logger *zap.Logger
}

func newOpenAIClient(cfg config.AIConfig, logger *zap.Logger) *openAIClient {
	openaiConfig := openaigo.DefaultConfig(cfg.APIKey)
	openaiConfig.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")
	openaiConfig.HTTPClient = &http.Client{
		Transport: &minimaxTransport{
			base:     http.DefaultTransport,
			groupID:  cfg.GroupID,
			chatPath: minimaxChatPath,
		},
	}
	logger.Info("OpenAI-compatible AI client created",
		zap.String("base_url", openaiConfig.BaseURL),
		zap.String("model", cfg.ChatModel),
	)
	return &openAIClient{
		client: openaigo.NewClientWithConfig(openaiConfig),
		model:  cfg.ChatModel,
		logger: logger,
	}
}

func (c *openAIClient) GenerateText(ctx context.Context, operation, systemPrompt, userInput string, params GenerationParams) (string, UsageInfo, error) {
	log := c.logger.With(zap.String("operation", operation), zap.String("model", c.model))
	usage := UsageInfo{}

	if strings.TrimSpace(userInput) == "" {
		aiRequestsTotal.WithLabelValues(operation, c.model, "error").Inc()
		return "", usage, fmt.Errorf("%w: prompt is empty", models.ErrValidation)
	}

	messages := make([]openaigo.ChatCompletionMessage, 0, 2)
	if systemPrompt != "" {
		messages = append(messages, openaigo.ChatCompletionMessage{Role: openaigo.ChatMessageRoleSystem, Content: systemPrompt})
	}
	messages = append(messages, openaigo.ChatCompletionMessage{Role: openaigo.ChatMessageRoleUser, Content: userInput})

	req := openaigo.ChatCompletionRequest{
		Model:    c.model,
		Messages: messages,
	}
	if params.Temperature != nil {
		req.Temperature = float32(*params.Temperature)
	}
	if params.TopP != nil {
		req.TopP = float32(*params.TopP)
	}
	if params.MaxTokens != nil {
		req.MaxTokens = *params.MaxTokens
	}

	start := time.Now()
	log.Debug("Sending chat completion", zap.Int("prompt_bytes", len(systemPrompt)+len(userInput)))
	resp, err := c.client.CreateChatCompletion(ctx, req)
	duration := time.Since(start)
	aiRequestDuration.WithLabelValues(operation, c.model).Observe(duration.Seconds())

	if err != nil {
		classified := classifyOpenAIError(err)
		aiRequestsTotal.WithLabelValues(operation, c.model, errorStatusLabel(classified)).Inc()
		log.Warn("Chat completion failed", zap.Duration("duration", duration), zap.Error(err))
		return "", usage, classified
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		aiRequestsTotal.WithLabelValues(operation, c.model, "error_empty_response").Inc()
		log.Warn("Chat completion returned no content", zap.Duration("duration", duration))
		return "", usage, fmt.Errorf("%w: no response from LLM", models.ErrMalformedResponse)
	}
	text := resp.Choices[0].Message.Content

	if resp.Usage.TotalTokens > 0 {
		usage.PromptTokens = resp.Usage.PromptTokens
		usage.CompletionTokens = resp.Usage.CompletionTokens
		usage.TotalTokens = resp.Usage.TotalTokens
	} else {
		usage = estimateUsage(c.model, systemPrompt+userInput, text)
	}
	observeUsage(operation, c.model, usage)
	aiRequestsTotal.WithLabelValues(operation, c.model, "success").Inc()

	log.Info("Chat completion received",
		zap.Duration("duration", duration),
		zap.Int("response_chars", len(text)),
		zap.Int("total_tokens", usage.TotalTokens),
		zap.Bool("tokens_estimated", usage.Estimated),
	)
	return text, usage, nil
}

// minimaxChatPath is where MiniMax serves chat completions.
const minimaxChatPath = "/text/chatcompletion_v2"

// minimaxTransport routes OpenAI-style chat requests to the MiniMax endpoint
// and adds the GroupId header MiniMax requires.
type minimaxTransport struct {
	base     http.RoundTripper
	groupID  string
	chatPath string
}

func (t *minimaxTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())
	if t.groupID != "" {
		r.Header.Set("GroupId", t.groupID)
	}
	isChat := t.chatPath != "" && strings.HasSuffix(r.URL.Path, "/chat/completions")
	if isChat {
		r.URL.Path = strings.TrimSuffix(r.URL.Path, "/chat/completions") + t.chatPath
	}
	resp, err := t.base.RoundTrip(r)
	if err != nil || !isChat || resp.StatusCode != http.StatusOK {
		return resp, err
	}

	// MiniMax reports auth and quota failures as 200 with a base_resp code.
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		return nil, &baseRespError{err: fmt.Errorf("%w: failed to read chat response: %w", models.ErrConnectivity, err)}
	}
	var envelope struct {
		Choices  []json.RawMessage `json:"choices"`
		BaseResp *baseResp         `json:"base_resp"`
	}
	if json.Unmarshal(body, &envelope) == nil && len(envelope.Choices) == 0 {
		if brErr := checkBaseResp(envelope.BaseResp); brErr != nil {
			return nil, &baseRespError{err: brErr}
		}
	}
	resp.Body = io.NopCloser(bytes.NewReader(body))
	resp.ContentLength = int64(len(body))
	return resp, nil
}

// baseRespError carries an already classified provider failure out of the
// HTTP transport, past the url.Error wrapping of http.Client.
type baseRespError struct {
	err error
}

func (e *baseRespError) Error() string { return e.err.Error() }
func (e *baseRespError) Unwrap() error { return e.err }

// classifyOpenAIError maps go-openai errors onto the error kinds.
func classifyOpenAIError(err error) error {
	var brErr *baseRespError
	if errors.As(err, &brErr) {
		return brErr.err
	}
	var apiErr *openaigo.APIError
	if errors.As(err, &apiErr) {
		return classifyHTTPStatus(apiErr.HTTPStatusCode, apiErr.Message, err)
	}
	var reqErr *openaigo.RequestError
	if errors.As(err, &reqErr) {
		return classifyHTTPStatus(reqErr.HTTPStatusCode, string(reqErr.Body), err)
	}
	return classifyTransportError(err)
}

// --- Ollama client ---

type ollamaClient struct {
	client *api.Client
	model  string
	logger *zap.Logger
}

func newOllamaClient(cfg config.AIConfig, logger *zap.Logger) (AIClient, error) {
	baseURL := strings.TrimSuffix(strings.TrimSuffix(cfg.OllamaBaseURL, "/"), "/v1")
	parsedURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("error parsing Ollama base URL '%s': %w", baseURL, err)
	}
	logger.Info("Ollama AI client created", zap.String("base_url", baseURL), zap.String("model", cfg.OllamaModel))
	return &ollamaClient{
		client: api.NewClient(parsedURL, &http.Client{}),
		model:  cfg.OllamaModel,
		logger: logger,
	}, nil
}

func (c *ollamaClient) GenerateText(ctx context.Context, operation, systemPrompt, userInput string, params GenerationParams) (string, UsageInfo, error) {
	log := c.logger.With(zap.String("operation", operation), zap.String("model", c.model))
	usage := UsageInfo{}

	if strings.TrimSpace(userInput) == "" {
		aiRequestsTotal.WithLabelValues(operation, c.model, "error").Inc()
		return "", usage, fmt.Errorf("%w: prompt is empty", models.ErrValidation)
	}

	messages := make([]api.Message, 0, 2)
	if systemPrompt != "" {
		messages = append(messages, api.Message{Role: "system", Content: systemPrompt})
	}
	messages = append(messages, api.Message{Role: "user", Content: userInput})

	options := map[string]interface{}{}
	if params.Temperature != nil {
		options["temperature"] = *params.Temperature
	}
	if params.TopP != nil {
		options["top_p"] = *params.TopP
	}
	if params.MaxTokens != nil {
		options["num_predict"] = *params.MaxTokens
	}
	stream := false
	req := &api.ChatRequest{
		Model:    c.model,
		Messages: messages,
		Stream:   &stream,
		Options:  options,
	}

	start := time.Now()
	var resp api.ChatResponse
	err := c.client.Chat(ctx, req, func(r api.ChatResponse) error {
		resp = r
		return nil
	})
	duration := time.Since(start)
	aiRequestDuration.WithLabelValues(operation, c.model).Observe(duration.Seconds())

	if err != nil {
		classified := classifyOllamaError(err)
		aiRequestsTotal.WithLabelValues(operation, c.model, errorStatusLabel(classified)).Inc()
		log.Warn("Ollama chat failed", zap.Duration("duration", duration), zap.Error(err))
		return "", usage, classified
	}
	if strings.TrimSpace(resp.Message.Content) == "" {
		aiRequestsTotal.WithLabelValues(operation, c.model, "error_empty_response").Inc()
		return "", usage, fmt.Errorf("%w: no response from LLM", models.ErrMalformedResponse)
	}

	usage.PromptTokens = resp.PromptEvalCount
	usage.CompletionTokens = resp.EvalCount
	usage.TotalTokens = resp.PromptEvalCount + resp.EvalCount
	observeUsage(operation, c.model, usage)
	aiRequestsTotal.WithLabelValues(operation, c.model, "success").Inc()

	log.Info("Ollama chat received",
		zap.Duration("duration", duration),
		zap.Int("response_chars", len(resp.Message.Content)),
		zap.Int("total_tokens", usage.TotalTokens),
	)
	return resp.Message.Content, usage, nil
}

func classifyOllamaError(err error) error {
	var statusErr api.StatusError
	if errors.As(err, &statusErr) {
		return classifyHTTPStatus(statusErr.StatusCode, statusErr.ErrorMessage, err)
	}
	return classifyTransportError(err)
}

// --- shared helpers ---

// classifyHTTPStatus turns a provider HTTP failure into an error kind.
func classifyHTTPStatus(status int, message string, err error) error {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return fmt.Errorf("%w: %w", models.ErrAuthentication, err)
	case status == http.StatusTooManyRequests:
		return fmt.Errorf("%w: %w", models.ErrRateLimited, err)
	case status == http.StatusBadGateway || status == http.StatusServiceUnavailable || status == http.StatusGatewayTimeout:
		return fmt.Errorf("%w: %w", models.ErrConnectivity, err)
	default:
		if message == "" {
			message = "unknown API error"
		}
		return fmt.Errorf("provider API error (%d): %s: %w", status, message, err)
	}
}

// classifyTransportError treats anything that never produced an HTTP response as connectivity.
func classifyTransportError(err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", models.ErrConnectivity, err)
	}
	return err
}

// estimateUsage counts tokens locally when the provider omits usage.
func estimateUsage(model, prompt, completion string) UsageInfo {
	tke, err := tiktoken.EncodingForModel(model)
	if err != nil {
		tke, err = tiktoken.GetEncoding(tiktoken.MODEL_CL100K_BASE)
		if err != nil {
			return UsageInfo{Estimated: true}
		}
	}
	promptTokens := len(tke.Encode(prompt, nil, nil))
	completionTokens := len(tke.Encode(completion, nil, nil))
	return UsageInfo{
		PromptTokens:     promptTokens,
		CompletionTokens: completionTokens,
		TotalTokens:      promptTokens + completionTokens,
		Estimated:        true,
	}
}

func float64Ptr(v float64) *float64 { return &v }
func intPtr(v int) *int             { return &v }
