package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/mmcdole/kickoff/internal/domain"
)

// Default API parameters
const (
	DefaultEndpoint      = "https://s.livesport.services/api/v2/search"
	DefaultImageBaseURL  = "https://www.livesport.cz/res/image/data/"
	DefaultProjectTypeID = 1
	DefaultProjectID     = 602
	DefaultLangID        = 1
	DefaultTimeout       = 15 * time.Second
	DefaultRateLimit     = 5.0
	DefaultRateBurst     = 2
	DefaultUserAgent     = "Kickoff/1.0"
)

// DefaultSportIDs are the sports included in every search
var DefaultSportIDs = []int{1, 2, 3, 4, 5, 6, 7, 8, 9}

// Config holds all application configuration
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Search  SearchConfig  `mapstructure:"search"`
	History HistoryConfig `mapstructure:"history"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// APIConfig holds search API configuration
type APIConfig struct {
	Endpoint      string        `mapstructure:"endpoint"`
	ImageBaseURL  string        `mapstructure:"image_base_url"`
	ProjectTypeID int           `mapstructure:"project_type_id"`
	ProjectID     int           `mapstructure:"project_id"`
	LangID        int           `mapstructure:"lang_id"`
	SportIDs      []int         `mapstructure:"sport_ids"`
	Timeout       time.Duration `mapstructure:"timeout"`
	RateLimit     float64       `mapstructure:"rate_limit"` // requests per second, 0 disables
	RateBurst     int           `mapstructure:"rate_burst"`
	UserAgent     string        `mapstructure:"user_agent"`
}

// SearchConfig holds search defaults
type SearchConfig struct {
	DefaultCategory string `mapstructure:"default_category"` // "all", "leagues" or "teams"
}

// HistoryConfig holds search history configuration
type HistoryConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Path       string `mapstructure:"path"` // BoltDB file; empty keeps history in memory
	MaxEntries int    `mapstructure:"max_entries"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			Endpoint:      DefaultEndpoint,
			ImageBaseURL:  DefaultImageBaseURL,
			ProjectTypeID: DefaultProjectTypeID,
			ProjectID:     DefaultProjectID,
			LangID:        DefaultLangID,
			SportIDs:      append([]int(nil), DefaultSportIDs...),
			Timeout:       DefaultTimeout,
			RateLimit:     DefaultRateLimit,
			RateBurst:     DefaultRateBurst,
			UserAgent:     DefaultUserAgent,
		},
		Search: SearchConfig{
			DefaultCategory: "all",
		},
		History: HistoryConfig{
			Enabled:    true,
			Path:       defaultHistoryPath(),
			MaxEntries: 50,
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "kickoff", "kickoff.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "kickoff", "kickoff.log")
	}
}

// defaultHistoryPath returns the default history database path for the current OS
func defaultHistoryPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "kickoff", "history.db")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "kickoff", "history.db")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "kickoff")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "kickoff")
	}
}

// newViper creates a viper instance seeded with defaults and env overrides
func newViper(cfg *Config) *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")

	// Defaults must be registered for AutomaticEnv to see nested keys
	v.SetDefault("api.endpoint", cfg.API.Endpoint)
	v.SetDefault("api.image_base_url", cfg.API.ImageBaseURL)
	v.SetDefault("api.project_type_id", cfg.API.ProjectTypeID)
	v.SetDefault("api.project_id", cfg.API.ProjectID)
	v.SetDefault("api.lang_id", cfg.API.LangID)
	v.SetDefault("api.sport_ids", cfg.API.SportIDs)
	v.SetDefault("api.timeout", cfg.API.Timeout)
	v.SetDefault("api.rate_limit", cfg.API.RateLimit)
	v.SetDefault("api.rate_burst", cfg.API.RateBurst)
	v.SetDefault("api.user_agent", cfg.API.UserAgent)
	v.SetDefault("search.default_category", cfg.Search.DefaultCategory)
	v.SetDefault("history.enabled", cfg.History.Enabled)
	v.SetDefault("history.path", cfg.History.Path)
	v.SetDefault("history.max_entries", cfg.History.MaxEntries)
	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("logging.level", cfg.Logging.Level)

	// Environment variable overrides: KICKOFF_API_TIMEOUT, KICKOFF_LOGGING_LEVEL, ...
	v.SetEnvPrefix("KICKOFF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// LoadConfig loads configuration from file and environment.
// An empty path searches the default config directory and the working directory.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	v := newViper(cfg)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(defaultConfigPath())
		v.AddConfigPath(".")
	}

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ConfigFile returns path, or the default config file when path is empty
func ConfigFile(path string) string {
	if path != "" {
		return path
	}
	return filepath.Join(defaultConfigPath(), "config.yaml")
}

// SaveConfig writes cfg to path (default config file when empty)
func SaveConfig(cfg *Config, path string) error {
	path = ConfigFile(path)

	// Ensure config directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")

	v.Set("api.endpoint", cfg.API.Endpoint)
	v.Set("api.image_base_url", cfg.API.ImageBaseURL)
	v.Set("api.project_type_id", cfg.API.ProjectTypeID)
	v.Set("api.project_id", cfg.API.ProjectID)
	v.Set("api.lang_id", cfg.API.LangID)
	v.Set("api.sport_ids", cfg.API.SportIDs)
	v.Set("api.timeout", cfg.API.Timeout.String())
	v.Set("api.rate_limit", cfg.API.RateLimit)
	v.Set("api.rate_burst", cfg.API.RateBurst)
	v.Set("api.user_agent", cfg.API.UserAgent)

	v.Set("search.default_category", cfg.Search.DefaultCategory)

	v.Set("history.enabled", cfg.History.Enabled)
	v.Set("history.path", cfg.History.Path)
	v.Set("history.max_entries", cfg.History.MaxEntries)

	v.Set("logging.file", cfg.Logging.File)
	v.Set("logging.level", cfg.Logging.Level)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks the configuration for values the client cannot work with
func (c *Config) Validate() error {
	if c.API.Endpoint == "" {
		return fmt.Errorf("api.endpoint is required")
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("api.timeout must be positive, got %s", c.API.Timeout)
	}
	if c.API.RateLimit < 0 {
		return fmt.Errorf("api.rate_limit must not be negative")
	}
	if len(c.API.SportIDs) == 0 {
		return fmt.Errorf("api.sport_ids must not be empty")
	}
	if _, err := domain.ParseCategory(c.Search.DefaultCategory); err != nil {
		return fmt.Errorf("search.default_category: %w", err)
	}
	return nil
}

// DefaultCategory returns the parsed default category (CategoryAll if invalid)
func (c *Config) DefaultCategory() domain.Category {
	cat, err := domain.ParseCategory(c.Search.DefaultCategory)
	if err != nil {
		return domain.CategoryAll
	}
	return cat
}
