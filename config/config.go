package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultPort        = "5000"
	DefaultGroqBaseURL = "https://api.groq.com/openai/v1"
)

var defaultOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
}

// Config is resolved once at startup and never mutated afterwards.
type Config struct {
	Port string

	// CORS
	FrontendURL string

	// Groq (OpenAI-compatible) provider
	GroqAPIKey  string
	GroqBaseURL string

	// "development", "prod", ... empty means unset
	AppEnv string
}

// LoadConfig reads .env (when present) into the environment and builds a
// Config from it. Variables already set in the environment win.
func LoadConfig() *Config {
	_ = godotenv.Load()
	return FromEnv()
}

func FromEnv() *Config {
	appEnv := os.Getenv("APP_ENV")
	if appEnv == "" {
		appEnv = os.Getenv("NODE_ENV")
	}
	return &Config{
		Port:        envOr("PORT", DefaultPort),
		FrontendURL: strings.TrimRight(strings.TrimSpace(os.Getenv("FRONTEND_URL")), "/"),
		GroqAPIKey:  strings.TrimSpace(os.Getenv("GROQ_API_KEY")),
		GroqBaseURL: envOr("GROQ_BASE_URL", DefaultGroqBaseURL),
		AppEnv:      appEnv,
	}
}

// AllowOrigins lists the origins allowed to call the relay with credentials.
func (c *Config) AllowOrigins() []string {
	origins := append([]string(nil), defaultOrigins...)
	if c.FrontendURL != "" && c.FrontendURL != "*" {
		origins = append(origins, c.FrontendURL)
	}
	return origins
}

// EnvName is the mode reported in startup logs.
func (c *Config) EnvName() string {
	if c.AppEnv == "" {
		return "development"
	}
	return c.AppEnv
}

// Development reports whether error details may be exposed to callers.
func (c *Config) Development() bool {
	return c.AppEnv == "development"
}

func (c *Config) HasCredential() bool {
	return c.GroqAPIKey != ""
}

func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("PORT is empty")
	}
	for _, origin := range c.AllowOrigins() {
		u, err := url.Parse(origin)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("invalid CORS origin %q: expected scheme://host[:port]", origin)
		}
	}
	if _, err := url.ParseRequestURI(c.GroqBaseURL); err != nil {
		return fmt.Errorf("invalid GROQ_BASE_URL: %w", err)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
