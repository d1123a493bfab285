package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	HTTP struct {
		Addr string
	}
	// Endpoint is the generation backend used by the web UI, CLI and MCP
	// clients.
	Endpoint struct {
		Base    string
		Timeout time.Duration
	}
	DB struct {
		Driver string
		DSN    string
	}
	LLM struct {
		Provider string
		Model    string
		BaseURL  string
		APIKey   string
		Timeout  time.Duration
	}
	CORS struct {
		AllowedOrigins []string
	}
	API struct {
		RateLimit float64
		RateBurst int
	}
	Log struct {
		Level  string
		Format string
	}
	KeyFile         string
	SessionLifetime time.Duration
	// SecureCookies marks the session cookie Secure; enable behind HTTPS.
	SecureCookies bool
}

// Load reads config from .env, the environment (SCRIBO_ prefix) and an
// optional scribo.yaml.
func Load() (*Config, error) {
	_ = godotenv.Load() // optional .env

	v := viper.New()
	v.SetEnvPrefix("SCRIBO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigName("scribo")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional config file

	setDefaults(v)
	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http.addr", ":8000")
	v.SetDefault("endpoint.base", "http://localhost:8000")
	v.SetDefault("endpoint.timeout", "120s")
	v.SetDefault("db.driver", "sqlite3")
	v.SetDefault("db.dsn", "scribo.db")
	v.SetDefault("llm.provider", "gemini")
	v.SetDefault("llm.timeout", "60s")
	v.SetDefault("cors.allowed_origins", []string{"http://localhost:5173", "http://127.0.0.1:5173"})
	v.SetDefault("api.rate_limit", 5.0)
	v.SetDefault("api.rate_burst", 10)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("session.lifetime", "720h")
	v.SetDefault("session.secure_cookies", false)
	v.SetDefault("key.file", defaultKeyFile())
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	cfg.HTTP.Addr = v.GetString("http.addr")
	cfg.Endpoint.Base = strings.TrimRight(v.GetString("endpoint.base"), "/")
	cfg.DB.Driver = v.GetString("db.driver")
	cfg.DB.DSN = v.GetString("db.dsn")
	cfg.LLM.Provider = v.GetString("llm.provider")
	cfg.LLM.Model = v.GetString("llm.model")
	cfg.LLM.BaseURL = v.GetString("llm.base_url")
	cfg.LLM.APIKey = v.GetString("llm.api_key")
	if cfg.LLM.APIKey == "" {
		cfg.LLM.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	cfg.CORS.AllowedOrigins = v.GetStringSlice("cors.allowed_origins")
	cfg.API.RateLimit = v.GetFloat64("api.rate_limit")
	cfg.API.RateBurst = v.GetInt("api.rate_burst")
	cfg.Log.Level = v.GetString("log.level")
	cfg.Log.Format = v.GetString("log.format")
	cfg.KeyFile = v.GetString("key.file")
	cfg.SecureCookies = v.GetBool("session.secure_cookies")

	var err error
	if cfg.Endpoint.Timeout, err = time.ParseDuration(v.GetString("endpoint.timeout")); err != nil {
		return nil, fmt.Errorf("invalid SCRIBO_ENDPOINT_TIMEOUT: %w", err)
	}
	if cfg.LLM.Timeout, err = time.ParseDuration(v.GetString("llm.timeout")); err != nil {
		return nil, fmt.Errorf("invalid SCRIBO_LLM_TIMEOUT: %w", err)
	}
	if cfg.SessionLifetime, err = time.ParseDuration(v.GetString("session.lifetime")); err != nil {
		return nil, fmt.Errorf("invalid SCRIBO_SESSION_LIFETIME: %w", err)
	}

	switch cfg.LLM.Provider {
	case "gemini", "anthropic", "openai", "openai-compatible":
	default:
		return nil, fmt.Errorf("unsupported SCRIBO_LLM_PROVIDER %q (gemini, anthropic, openai)", cfg.LLM.Provider)
	}
	if cfg.API.RateLimit < 0 || cfg.API.RateBurst < 0 {
		return nil, fmt.Errorf("SCRIBO_API_RATE_LIMIT and SCRIBO_API_RATE_BURST must not be negative")
	}
	if cfg.Endpoint.Base == "" {
		return nil, fmt.Errorf("SCRIBO_ENDPOINT_BASE is required")
	}
	return cfg, nil
}

func defaultKeyFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".scribo_api_key"
	}
	return filepath.Join(dir, "scribo", "gemini_api_key")
}
