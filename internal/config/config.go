// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type DatabaseConfig struct {
	Driver   string `yaml:"driver"`
	Filename string `yaml:"filename"`
}

type Config struct {
	App struct {
		Name            string        `yaml:"name"`
		Environment     string        `yaml:"environment"`
		Port            int           `yaml:"port"`
		ShutdownTimeout time.Duration `yaml:"-"`
	} `yaml:"app"`

	Database DatabaseConfig `yaml:"database"`

	// AllowedOrigins is the cross-origin caller allow-list.
	// A single "*" entry allows any origin.
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// Load reads the optional YAML config file, overlays .env and environment
// variables, and applies defaults. A missing config file is not an error;
// the zero-config case runs with a local SQLite file on port 8080.
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	var cfg Config
	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("error parsing config file: %w", err)
			}
		}
	}

	applyDefaults(&cfg)
	applyEnvOverrides(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "facilitybook"
	}
	if cfg.App.Environment == "" {
		cfg.App.Environment = "development"
	}
	if cfg.App.Port == 0 {
		cfg.App.Port = 8080
	}
	if cfg.App.ShutdownTimeout == 0 {
		cfg.App.ShutdownTimeout = 30 * time.Second
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "sqlite"
	}
	if cfg.Database.Filename == "" {
		cfg.Database.Filename = "data/reservations.db"
	}
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"*"}
	}
}

func applyEnvOverrides(cfg *Config) {
	if value, ok := os.LookupEnv("ENVIRONMENT"); ok {
		cfg.App.Environment = value
	}
	if value, ok := os.LookupEnv("PORT"); ok {
		if port, err := strconv.Atoi(value); err == nil {
			cfg.App.Port = port
		}
	}
	if value, ok := os.LookupEnv("SHUTDOWN_TIMEOUT_SECONDS"); ok {
		if seconds, err := strconv.Atoi(value); err == nil {
			cfg.App.ShutdownTimeout = time.Duration(seconds) * time.Second
		}
	}
	if value, ok := os.LookupEnv("DATABASE_PATH"); ok {
		cfg.Database.Filename = value
	}
	if value, ok := os.LookupEnv("ALLOWED_ORIGINS"); ok {
		origins := strings.Split(value, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
		cfg.AllowedOrigins = origins
	}
}

func (c *Config) Validate() error {
	if c.App.Port <= 0 || c.App.Port > 65535 {
		return fmt.Errorf("app port must be between 1 and 65535")
	}
	if c.Database.Driver != "sqlite" {
		return fmt.Errorf("unsupported database driver: %s", c.Database.Driver)
	}
	if c.Database.Filename == "" {
		return fmt.Errorf("database filename is required for sqlite")
	}
	return nil
}
