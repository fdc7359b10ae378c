package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

/**
 * @brief Runtime configuration of the combiner. Loaded from TOML or built in
 * code; zero fields fall back to defaults.
 */
type Config struct {
	/** @brief Absolute per-output-mesh vertex ceiling imposed by the target platform's index format. */
	VertexLimit int `toml:"vertex_limit"`
	/** @brief Number of combine workers. */
	Workers int `toml:"workers"`
	/** @brief Buffered job queue size per priority. */
	QueueSize int `toml:"queue_size"`
	/** @brief Minimum log level: debug, info, warn, error. */
	LogLevel string `toml:"log_level"`
}

// DefaultVertexLimit matches a 16-bit index format.
const DefaultVertexLimit = 65535

func Default() *Config {
	return &Config{
		VertexLimit: DefaultVertexLimit,
		Workers:     1,
		QueueSize:   16,
		LogLevel:    "info",
	}
}

// Load reads a TOML file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.VertexLimit < 4 {
		return fmt.Errorf("vertex_limit %d cannot hold a single triangle", c.VertexLimit)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.QueueSize < 0 {
		return fmt.Errorf("queue_size cannot be negative, got %d", c.QueueSize)
	}
	return nil
}
