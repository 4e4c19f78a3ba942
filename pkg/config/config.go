package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Transcription providers
const (
	ProviderAssemblyAI = "assemblyai"
	ProviderGoogle     = "google"
)

// Config holds application configuration
type Config struct {
	Server        ServerConfig
	Mongo         MongoConfig
	Redis         RedisConfig
	Assembly      AssemblyAIConfig
	Speech        SpeechConfig
	Gemini        GeminiConfig
	Transcription TranscriptionConfig
	Generation    GenerationConfig
	Pipeline      PipelineConfig
	Upload        UploadConfig
	Insight       InsightConfig
	Cache         CacheConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string        `envconfig:"PORT" default:"5001"`
	Host            string        `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string        `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string      `envconfig:"ALLOWED_ORIGINS" default:"*"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

// MongoConfig holds document store configuration
type MongoConfig struct {
	URI                    string        `envconfig:"MONGODB_URI" required:"true"`
	Database               string        `envconfig:"MONGODB_DATABASE" default:"cinejournal"`
	ConnectTimeout         time.Duration `envconfig:"MONGODB_CONNECT_TIMEOUT" default:"15s"`
	ServerSelectionTimeout time.Duration `envconfig:"MONGODB_SERVER_SELECTION_TIMEOUT" default:"20s"`
	MaxPoolSize            uint64        `envconfig:"MONGODB_MAX_POOL_SIZE" default:"10"`
	MinPoolSize            uint64        `envconfig:"MONGODB_MIN_POOL_SIZE" default:"1"`
}

// RedisConfig holds Redis configuration. An empty Addr selects the in-memory cache.
type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// AssemblyAIConfig holds AssemblyAI credentials
type AssemblyAIConfig struct {
	APIKey  string `envconfig:"ASSEMBLYAI_API_KEY"`
	BaseURL string `envconfig:"ASSEMBLYAI_BASE_URL"`
}

// SpeechConfig holds Google Cloud Speech settings
type SpeechConfig struct {
	LanguageCode    string `envconfig:"GOOGLE_SPEECH_LANGUAGE" default:"en-US"`
	CredentialsFile string `envconfig:"GOOGLE_APPLICATION_CREDENTIALS"`
}

// GeminiConfig holds Vertex AI Gemini settings
type GeminiConfig struct {
	ProjectID       string `envconfig:"GEMINI_PROJECT_ID"`
	Location        string `envconfig:"GEMINI_LOCATION" default:"us-central1"`
	Model           string `envconfig:"GEMINI_MODEL" default:"gemini-2.0-flash-lite"`
	CredentialsFile string `envconfig:"GEMINI_CREDENTIALS_FILE"`
}

// TranscriptionConfig controls provider selection and polling.
// The google provider accepts FLAC, WAV, Ogg/WebM Opus and AMR only; m4a uploads need assemblyai.
type TranscriptionConfig struct {
	Provider        string        `envconfig:"TRANSCRIPTION_PROVIDER" default:"assemblyai"`
	PollInterval    time.Duration `envconfig:"TRANSCRIPTION_POLL_INTERVAL" default:"5s"`
	MaxPollAttempts int           `envconfig:"TRANSCRIPTION_MAX_POLL_ATTEMPTS" default:"20"`
}

// GenerationConfig controls the retry policy around text generation
type GenerationConfig struct {
	MaxAttempts    int           `envconfig:"GENERATION_MAX_ATTEMPTS" default:"3"`
	RetryBaseDelay time.Duration `envconfig:"GENERATION_RETRY_BASE_DELAY" default:"500ms"`
}

// PipelineConfig bounds a single entry creation run
type PipelineConfig struct {
	Timeout time.Duration `envconfig:"PIPELINE_TIMEOUT" default:"5m"`
}

// UploadConfig holds multipart upload limits
type UploadConfig struct {
	MaxBytes int64 `envconfig:"UPLOAD_MAX_BYTES" default:"125829120"`
}

// InsightConfig controls the weekly mood arc job
type InsightConfig struct {
	Enabled    bool          `envconfig:"INSIGHT_ENABLED" default:"true"`
	Schedule   string        `envconfig:"INSIGHT_SCHEDULE" default:"0 1 * * *"`
	Window     time.Duration `envconfig:"INSIGHT_WINDOW" default:"168h"`
	MinEntries int           `envconfig:"INSIGHT_MIN_ENTRIES" default:"2"`
	Timeout    time.Duration `envconfig:"INSIGHT_TIMEOUT" default:"2m"`
	Timezone   string        `envconfig:"INSIGHT_TIMEZONE" default:"Local"`
}

// CacheConfig holds cache TTLs
type CacheConfig struct {
	InsightsTTL time.Duration `envconfig:"CACHE_INSIGHTS_TTL" default:"5m"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Mongo.URI == "" {
		return fmt.Errorf("MONGODB_URI is required")
	}
	switch c.Transcription.Provider {
	case ProviderAssemblyAI, ProviderGoogle:
	default:
		return fmt.Errorf("invalid TRANSCRIPTION_PROVIDER: %s (must be %s or %s)",
			c.Transcription.Provider, ProviderAssemblyAI, ProviderGoogle)
	}
	if c.Transcription.PollInterval <= 0 {
		return fmt.Errorf("TRANSCRIPTION_POLL_INTERVAL must be positive")
	}
	if c.Transcription.MaxPollAttempts < 1 {
		return fmt.Errorf("TRANSCRIPTION_MAX_POLL_ATTEMPTS must be at least 1")
	}
	if c.Generation.MaxAttempts < 1 {
		return fmt.Errorf("GENERATION_MAX_ATTEMPTS must be at least 1")
	}
	if c.Upload.MaxBytes < 1 {
		return fmt.Errorf("UPLOAD_MAX_BYTES must be at least 1")
	}
	if c.Insight.MinEntries < 1 {
		return fmt.Errorf("INSIGHT_MIN_ENTRIES must be at least 1")
	}
	if c.Insight.Window <= 0 {
		return fmt.Errorf("INSIGHT_WINDOW must be positive")
	}
	if _, err := time.LoadLocation(c.Insight.Timezone); err != nil {
		return fmt.Errorf("invalid INSIGHT_TIMEZONE %q: %w", c.Insight.Timezone, err)
	}
	return nil
}

// IsDevelopment reports whether the server runs in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

// GetServerAddr returns the listen address
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

// GetCORSOrigins returns the trimmed list of allowed origins
func (c *Config) GetCORSOrigins() []string {
	origins := make([]string, 0, len(c.Server.AllowedOrigins))
	for _, origin := range c.Server.AllowedOrigins {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

// InsightLocation returns the location used to bucket entries by weekday and month
func (c *Config) InsightLocation() *time.Location {
	loc, err := time.LoadLocation(c.Insight.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}
