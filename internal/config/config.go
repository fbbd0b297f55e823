package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"

	"github.com/zprintln/AdMaxxer-Project/pkg/logger"
)

// Supported LLM transports.
const (
	ClientTypeOpenAI = "openai"
	ClientTypeOllama = "ollama"
)

// Config holds the whole process configuration. It is read once at startup
// and passed down explicitly.
type Config struct {
	AppEnv             string `env:"APP_ENV" env-default:"development"`
	ServerPort         string `env:"SERVER_PORT" env-default:"8080"`
	CORSAllowedOrigins string `env:"CORS_ALLOWED_ORIGINS" env-default:"http://localhost:3000"`
	Logger             logger.Config
	AI                 AIConfig
	Database           DatabaseConfig
}

// AIConfig configures the LLM and media provider. Credentials are optional at
// startup; the generation client reports their absence on first use.
type AIConfig struct {
	ClientType string `env:"AI_CLIENT_TYPE" env-default:"openai"`
	APIKey     string `env:"MINIMAX_API_KEY"`
	GroupID    string `env:"MINIMAX_GROUP_ID"`
	BaseURL    string `env:"MINIMAX_BASE_URL" env-default:"https://api.minimax.chat/v1"`
	ChatModel  string `env:"MINIMAX_CHAT_MODEL" env-default:"abab6.5-chat"`
	ImageModel string `env:"MINIMAX_IMAGE_MODEL" env-default:"image-01"`
	VideoModel string `env:"MINIMAX_VIDEO_MODEL" env-default:"video-01"`

	OllamaBaseURL string `env:"OLLAMA_BASE_URL" env-default:"http://localhost:11434"`
	OllamaModel   string `env:"OLLAMA_MODEL" env-default:"llama3"`

	TextTimeout    time.Duration `env:"AI_TEXT_TIMEOUT" env-default:"45s"`
	ImageTimeout   time.Duration `env:"AI_IMAGE_TIMEOUT" env-default:"60s"`
	VideoTimeout   time.Duration `env:"AI_VIDEO_TIMEOUT" env-default:"120s"`
	EnhanceTimeout time.Duration `env:"AI_ENHANCE_TIMEOUT" env-default:"15s"`

	VideoPollInterval time.Duration `env:"VIDEO_POLL_INTERVAL" env-default:"3s"`
	VideoPollAttempts int           `env:"VIDEO_POLL_ATTEMPTS" env-default:"20"`

	PlaceholderBaseURL string `env:"PLACEHOLDER_BASE_URL" env-default:"https://via.placeholder.com"`
	MockMode           bool   `env:"USE_MOCK_MODE" env-default:"false"`
}

// DatabaseConfig enables the items API when URL is set.
type DatabaseConfig struct {
	URL         string        `env:"DATABASE_URL"`
	MaxConns    int           `env:"DB_MAX_CONNS" env-default:"10"`
	IdleTimeout time.Duration `env:"DB_IDLE_TIMEOUT" env-default:"5m"`
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("error loading configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks settings that cannot be fixed at request time.
func (c *Config) Validate() error {
	switch strings.ToLower(c.AI.ClientType) {
	case ClientTypeOpenAI, ClientTypeOllama:
	default:
		return fmt.Errorf("unknown AI_CLIENT_TYPE %q (expected %q or %q)", c.AI.ClientType, ClientTypeOpenAI, ClientTypeOllama)
	}
	if c.AI.VideoPollAttempts <= 0 {
		return fmt.Errorf("VIDEO_POLL_ATTEMPTS must be positive, got %d", c.AI.VideoPollAttempts)
	}
	if c.AI.VideoPollInterval <= 0 {
		return fmt.Errorf("VIDEO_POLL_INTERVAL must be positive, got %s", c.AI.VideoPollInterval)
	}
	return nil
}

// IsDevelopment reports whether error responses may carry debug details.
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.AppEnv, "development")
}

// GetAllowedOrigins splits CORSAllowedOrigins into a slice.
func (c *Config) GetAllowedOrigins() []string {
	if strings.TrimSpace(c.CORSAllowedOrigins) == "" {
		return nil
	}
	var origins []string
	for _, o := range strings.Split(c.CORSAllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// HasCredentials reports whether the MiniMax key and group id are both set.
func (a AIConfig) HasCredentials() bool {
	return strings.TrimSpace(a.APIKey) != "" && strings.TrimSpace(a.GroupID) != ""
}
