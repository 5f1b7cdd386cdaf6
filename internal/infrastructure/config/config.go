package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/dayplanhq/dayplan-mcp/pkg/dayplan"
	"gopkg.in/yaml.v3"
)

const configFile = "dayplan.yaml"

// Environment variables override anything found in dayplan.yaml.
const (
	EnvAPIKey    = "DAYPLAN_API_KEY"
	EnvBaseURL   = "DAYPLAN_BASE_URL"
	EnvTimeoutMS = "DAYPLAN_TIMEOUT_MS"
)

// Config holds everything needed to reach the Dayplan backend.
type Config struct {
	APIKey    string        `yaml:"apiKey"`
	BaseURL   string        `yaml:"baseUrl"`
	Timeout   time.Duration `yaml:"-"`
	TimeoutMS int           `yaml:"timeoutMs"`
}

// Load builds a Config from dayplan.yaml in dir (if present) layered under
// the DAYPLAN_* environment variables. The API key is the only required
// setting.
func Load(dir string) (*Config, error) {
	cfg := &Config{
		BaseURL: dayplan.DefaultBaseURL,
		Timeout: dayplan.DefaultTimeout,
	}

	if err := loadFile(dir, cfg); err != nil {
		return nil, err
	}

	if v := os.Getenv(EnvAPIKey); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv(EnvBaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv(EnvTimeoutMS); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil || ms <= 0 {
			return nil, fmt.Errorf("%w: %s=%q", dayplan.ErrInvalidTimeout, EnvTimeoutMS, v)
		}
		cfg.Timeout = time.Duration(ms) * time.Millisecond
	}

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: set %s", dayplan.ErrMissingAPIKey, EnvAPIKey)
	}
	return cfg, nil
}

func loadFile(dir string, cfg *Config) error {
	data, err := os.ReadFile(dir + "/" + configFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if file.APIKey != "" {
		cfg.APIKey = file.APIKey
	}
	if file.BaseURL != "" {
		cfg.BaseURL = file.BaseURL
	}
	if file.TimeoutMS > 0 {
		cfg.Timeout = time.Duration(file.TimeoutMS) * time.Millisecond
	}
	return nil
}

// Client builds a dayplan.Client from the loaded configuration.
func (c *Config) Client() (*dayplan.Client, error) {
	return dayplan.New(c.APIKey,
		dayplan.WithBaseURL(c.BaseURL),
		dayplan.WithTimeout(c.Timeout),
	)
}
