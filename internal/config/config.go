package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"riftlens/internal/apperr"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const (
	DefaultAssetDir      = "dragontail-14.20.1"
	DefaultVersion       = "14.20.1"
	DefaultLocale        = "en_GB"
	DefaultHTTPTimeout   = 10 * time.Second
	defaultHistoryFolder = "RiftLens"
)

// Config holds everything the app reads from the environment
type Config struct {
	APIKey      string
	AssetDir    string
	Version     string
	Locale      string
	LogLevel    zerolog.Level
	HistoryDB   string
	HTTPTimeout time.Duration
}

// Load reads an optional .env file and then the process environment.
// A missing API key is not an error here; see Validate.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if _, err := os.Stat(f); err == nil {
			if err := godotenv.Load(f); err != nil {
				return nil, fmt.Errorf("failed to load %s: %w", f, err)
			}
		}
	}

	cfg := &Config{
		APIKey:      os.Getenv("RIOT_API_KEY"),
		AssetDir:    getenv("ASSET_DIR", DefaultAssetDir),
		Version:     getenv("DDRAGON_VERSION", DefaultVersion),
		Locale:      getenv("DDRAGON_LOCALE", DefaultLocale),
		LogLevel:    zerolog.InfoLevel,
		HTTPTimeout: DefaultHTTPTimeout,
	}
	if cfg.APIKey == "" {
		// Also check alternative env var name
		cfg.APIKey = os.Getenv("RIOT-DEV-KEY")
	}

	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		parsed, err := zerolog.ParseLevel(lvl)
		if err != nil {
			return nil, apperr.Configuration(fmt.Sprintf("invalid LOG_LEVEL %q", lvl))
		}
		cfg.LogLevel = parsed
	}

	if raw := os.Getenv("HTTP_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			return nil, apperr.Configuration(fmt.Sprintf("invalid HTTP_TIMEOUT %q", raw))
		}
		cfg.HTTPTimeout = d
	}

	cfg.HistoryDB = os.Getenv("HISTORY_DB")
	if cfg.HistoryDB == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			configDir = "."
		}
		cfg.HistoryDB = filepath.Join(configDir, defaultHistoryFolder, "history.db")
	}

	return cfg, nil
}

// Validate reports a configuration error when no API key is set
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return apperr.Configuration("RIOT_API_KEY is not set; add it to the environment or a .env file")
	}
	return nil
}

// MaskedKey returns the key with only its prefix and suffix visible
func (c *Config) MaskedKey() string {
	if len(c.APIKey) <= 12 {
		return "****"
	}
	return c.APIKey[:8] + "..." + c.APIKey[len(c.APIKey)-4:]
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
