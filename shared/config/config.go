package config

import (
	"fmt"
	"os"

	"caption-digest/internal/models"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	YouTube    YouTubeConfig    `yaml:"youtube"`
	Summarizer SummarizerConfig `yaml:"summarizer"`
	Digest     DigestConfig     `yaml:"digest"`
	Email      EmailConfig      `yaml:"email"`
	Monitoring MonitoringConfig `yaml:"monitoring"`
	Schedule   string           `yaml:"schedule"`
}

type YouTubeConfig struct {
	APIKey        string `yaml:"api_key" env:"YOUTUBE_API_KEY"`
	OAuthClientID string `yaml:"oauth_client_id" env:"YOUTUBE_OAUTH_CLIENT_ID"`
	TokenFile     string `yaml:"token_file"`
}

// SummarizerConfig selects and configures the summarization backend.
// Provider is "openrouter" or "gemini".
type SummarizerConfig struct {
	Provider         string `yaml:"provider"`
	OpenRouterAPIKey string `yaml:"openrouter_api_key" env:"OPENROUTER_API_KEY"`
	GeminiAPIKey     string `yaml:"gemini_api_key" env:"GEMINI_API_KEY"`
	Model            string `yaml:"model"`
	BaseURL          string `yaml:"base_url"`
	Referer          string `yaml:"referer"`
	AppTitle         string `yaml:"app_title"`
}

// DigestConfig is the standing query used by scheduled runs.
type DigestConfig struct {
	Query      string `yaml:"query"`
	MaxResults int    `yaml:"max_results"`
	TimeFilter string `yaml:"time_filter"`
	UseOAuth   bool   `yaml:"use_oauth"`
}

type EmailConfig struct {
	Enabled      bool   `yaml:"enabled"`
	SMTPServer   string `yaml:"smtp_server"`
	SMTPPort     int    `yaml:"smtp_port"`
	Username     string `yaml:"username" env:"EMAIL_USERNAME"`
	Password     string `yaml:"password" env:"EMAIL_PASSWORD"`
	FromEmail    string `yaml:"from_email"`
	ToEmail      string `yaml:"to_email"`
	TemplateFile string `yaml:"template_file"`
}

type MonitoringConfig struct {
	HealthPort int `yaml:"health_port"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	configFile := os.Getenv("CONFIG_FILE")
	if configFile == "" {
		configFile = "config.yaml"
	}

	data, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configFile, err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyEnv() {
	if c.YouTube.APIKey == "" {
		c.YouTube.APIKey = os.Getenv("YOUTUBE_API_KEY")
	}
	if c.YouTube.OAuthClientID == "" {
		c.YouTube.OAuthClientID = os.Getenv("YOUTUBE_OAUTH_CLIENT_ID")
	}
	if c.Summarizer.OpenRouterAPIKey == "" {
		c.Summarizer.OpenRouterAPIKey = os.Getenv("OPENROUTER_API_KEY")
	}
	if c.Summarizer.GeminiAPIKey == "" {
		c.Summarizer.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	}
	if c.Email.Username == "" {
		c.Email.Username = os.Getenv("EMAIL_USERNAME")
	}
	if c.Email.Password == "" {
		c.Email.Password = os.Getenv("EMAIL_PASSWORD")
	}
}

func (c *Config) applyDefaults() {
	if c.Summarizer.Provider == "" {
		c.Summarizer.Provider = "openrouter"
	}
	if c.Summarizer.Model == "" {
		c.Summarizer.Model = "gpt-3.5-turbo"
	}
	if c.Summarizer.BaseURL == "" {
		c.Summarizer.BaseURL = "https://openrouter.ai/api/v1"
	}
	if c.Summarizer.Referer == "" {
		c.Summarizer.Referer = "https://github.com/"
	}
	if c.Summarizer.AppTitle == "" {
		c.Summarizer.AppTitle = "Caption Digest"
	}
	if c.Digest.MaxResults <= 0 {
		c.Digest.MaxResults = 5
	}
	if c.Digest.TimeFilter == "" {
		c.Digest.TimeFilter = "7d"
	}
	if c.Email.TemplateFile == "" {
		c.Email.TemplateFile = "agents/caption-digest/email_template.html"
	}
	if c.Monitoring.HealthPort == 0 {
		c.Monitoring.HealthPort = 8080
	}
	if c.Schedule == "" {
		c.Schedule = "0 9 * * *" // Daily at 9 AM
	}
}

func (c *Config) validate() error {
	if c.YouTube.APIKey == "" {
		return fmt.Errorf("YouTube API key is required (set YOUTUBE_API_KEY or youtube.api_key)")
	}
	switch c.Summarizer.Provider {
	case "openrouter":
		if c.Summarizer.OpenRouterAPIKey == "" {
			return fmt.Errorf("OpenRouter API key is required (set OPENROUTER_API_KEY or summarizer.openrouter_api_key)")
		}
	case "gemini":
		if c.Summarizer.GeminiAPIKey == "" {
			return fmt.Errorf("Gemini API key is required (set GEMINI_API_KEY or summarizer.gemini_api_key)")
		}
	default:
		return fmt.Errorf("unknown summarizer provider %q (valid: openrouter, gemini)", c.Summarizer.Provider)
	}
	if _, err := models.ParseTimeFilter(c.Digest.TimeFilter); err != nil {
		return err
	}
	if c.Email.Enabled {
		if c.Email.SMTPServer == "" || c.Email.SMTPPort == 0 {
			return fmt.Errorf("email is enabled but smtp_server/smtp_port are not set")
		}
		if c.Email.Username == "" || c.Email.Password == "" {
			return fmt.Errorf("email is enabled but credentials are not set (EMAIL_USERNAME, EMAIL_PASSWORD)")
		}
		if c.Email.FromEmail == "" || c.Email.ToEmail == "" {
			return fmt.Errorf("email is enabled but from_email/to_email are not set")
		}
	}
	return nil
}

// SummarizerAPIKey returns the key for the selected provider.
func (c *Config) SummarizerAPIKey() string {
	if c.Summarizer.Provider == "gemini" {
		return c.Summarizer.GeminiAPIKey
	}
	return c.Summarizer.OpenRouterAPIKey
}
