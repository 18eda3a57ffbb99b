package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the application configuration.
type Config struct {
	Server    ServerConfig              `mapstructure:"server"`
	Log       LogConfig                 `mapstructure:"log"`
	JWT       JWTConfig                 `mapstructure:"jwt"`
	Database  DatabaseConfig            `mapstructure:"database"`
	Providers map[string]ProviderConfig `mapstructure:"providers"`
	Defaults  DefaultsConfig            `mapstructure:"defaults"`
	Search    SearchConfig              `mapstructure:"search"`
	Streaming StreamingConfig           `mapstructure:"streaming"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Host               string        `mapstructure:"host"`
	Port               int           `mapstructure:"port"`
	Mode               string        `mapstructure:"mode"`
	ReadTimeout        time.Duration `mapstructure:"read_timeout"`
	WriteTimeout       time.Duration `mapstructure:"write_timeout"`
	MaxRequestBodySize int           `mapstructure:"max_request_body_size"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level     string `mapstructure:"level"`
	Format    string `mapstructure:"format"`
	Output    string `mapstructure:"output"`
	FilePath  string `mapstructure:"file_path"`
	AddSource bool   `mapstructure:"add_source"`
}

// JWTConfig configures token signing.
type JWTConfig struct {
	Secret string `mapstructure:"secret"`
}

// DatabaseConfig configures the MySQL connection pool.
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// ProviderConfig describes one model provider and its model catalog.
type ProviderConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	BaseURL string        `mapstructure:"base_url"`
	APIKey  string        `mapstructure:"api_key"`
	Timeout time.Duration `mapstructure:"timeout"`
	Models  []ModelConfig `mapstructure:"models"`
}

// ModelConfig describes one model within a provider's catalog.
type ModelConfig struct {
	Name             string   `mapstructure:"name"`
	DisplayName      string   `mapstructure:"display_name"`
	Enabled          bool     `mapstructure:"enabled"`
	MaxTokens        int      `mapstructure:"max_tokens"`
	Temperature      *float64 `mapstructure:"temperature"`
	SupportsThinking bool     `mapstructure:"supports_thinking"`
	SupportsTools    bool     `mapstructure:"supports_tools"`
}

// DefaultsConfig holds the process-wide fallback selection and sampling
// parameters applied when neither request nor model config specify them.
type DefaultsConfig struct {
	Provider    string  `mapstructure:"provider"`
	Model       string  `mapstructure:"model"`
	Temperature float64 `mapstructure:"temperature"`
	MaxTokens   int     `mapstructure:"max_tokens"`
	TopP        float64 `mapstructure:"top_p"`
}

// SearchConfig configures the Tavily web search backend.
type SearchConfig struct {
	Enabled      bool          `mapstructure:"enabled"`
	BaseURL      string        `mapstructure:"base_url"`
	APIKey       string        `mapstructure:"api_key"`
	MaxResults   int           `mapstructure:"max_results"`
	Timeout      time.Duration `mapstructure:"timeout"`
	MaxToolCalls int           `mapstructure:"max_tool_calls"`
}

// StreamingConfig bounds one streaming turn.
type StreamingConfig struct {
	ResponseTimeout time.Duration `mapstructure:"response_timeout"`
	ViewerBuffer    int           `mapstructure:"viewer_buffer"`
}

// Load reads the configuration file and environment overrides.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("CHAT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// Note: don't log here, the logger is initialized after config load.

	return &cfg, nil
}

// applyDefaults fills in values that are safe to leave out of the file.
func (c *Config) applyDefaults() {
	if c.Defaults.Temperature == 0 {
		c.Defaults.Temperature = 0.7
	}
	if c.Defaults.MaxTokens == 0 {
		c.Defaults.MaxTokens = 2048
	}
	if c.Defaults.TopP == 0 {
		c.Defaults.TopP = 1.0
	}
	if c.Search.MaxResults == 0 {
		c.Search.MaxResults = 5
	}
	if c.Search.MaxToolCalls == 0 {
		c.Search.MaxToolCalls = 3
	}
	if c.Search.Timeout == 0 {
		c.Search.Timeout = 15 * time.Second
	}
	if c.Streaming.ResponseTimeout == 0 {
		c.Streaming.ResponseTimeout = 5 * time.Minute
	}
	if c.Streaming.ViewerBuffer == 0 {
		c.Streaming.ViewerBuffer = 256
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Server.Mode != "debug" && c.Server.Mode != "release" {
		return fmt.Errorf("invalid server mode: %s, must be 'debug' or 'release'", c.Server.Mode)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}

	if c.Log.Format != "json" && c.Log.Format != "text" {
		return fmt.Errorf("invalid log format: %s, must be 'json' or 'text'", c.Log.Format)
	}

	if c.JWT.Secret == "" {
		return fmt.Errorf("jwt.secret is required")
	}
	if len(c.JWT.Secret) < 32 {
		return fmt.Errorf("jwt.secret must be at least 32 characters for security")
	}

	if c.Database.Driver == "" {
		return fmt.Errorf("database.driver is required")
	}
	if c.Database.Host == "" {
		return fmt.Errorf("database.host is required")
	}

	if len(c.Providers) == 0 {
		return fmt.Errorf("at least one provider must be configured")
	}
	if c.Defaults.Provider == "" {
		return fmt.Errorf("defaults.provider is required")
	}
	def, ok := c.Providers[c.Defaults.Provider]
	if !ok {
		return fmt.Errorf("defaults.provider %q is not a configured provider", c.Defaults.Provider)
	}
	if !def.Enabled {
		return fmt.Errorf("defaults.provider %q is disabled", c.Defaults.Provider)
	}
	for name, p := range c.Providers {
		if !p.Enabled {
			continue
		}
		if p.BaseURL == "" {
			return fmt.Errorf("providers.%s.base_url is required", name)
		}
		if len(p.Models) == 0 {
			return fmt.Errorf("providers.%s has no models configured", name)
		}
	}

	if c.Search.Enabled && c.Search.APIKey == "" {
		return fmt.Errorf("search.api_key is required when search is enabled")
	}

	return nil
}

// Provider returns the catalog entry for name, if configured.
func (c *Config) Provider(name string) (ProviderConfig, bool) {
	p, ok := c.Providers[name]
	return p, ok
}

// ProviderAvailable reports whether the provider is configured and enabled.
func (c *Config) ProviderAvailable(name string) bool {
	p, ok := c.Providers[name]
	return ok && p.Enabled
}

// ModelConfig returns the catalog entry for (provider, model), if present.
func (c *Config) ModelConfig(provider, model string) (ModelConfig, bool) {
	p, ok := c.Providers[provider]
	if !ok {
		return ModelConfig{}, false
	}
	for _, m := range p.Models {
		if m.Name == model {
			return m, true
		}
	}
	return ModelConfig{}, false
}

// FirstEnabledModel returns the provider's first enabled model name.
func (c *Config) FirstEnabledModel(provider string) (string, bool) {
	p, ok := c.Providers[provider]
	if !ok {
		return "", false
	}
	for _, m := range p.Models {
		if m.Enabled {
			return m.Name, true
		}
	}
	return "", false
}

// GetServerAddr returns the server listen address.
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// GetReadTimeout returns the server read timeout.
func (c *Config) GetReadTimeout() time.Duration {
	return c.Server.ReadTimeout
}

// GetWriteTimeout returns the server write timeout.
func (c *Config) GetWriteTimeout() time.Duration {
	return c.Server.WriteTimeout
}
