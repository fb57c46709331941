// Package config loads the server settings from an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2/log"
	"gopkg.in/yaml.v3"
)

type WebSocket struct {
	ReadBufferSize  int `yaml:"readBufferSize"`
	WriteBufferSize int `yaml:"writeBufferSize"`
}

type Config struct {
	Listen       string    `yaml:"listen"`
	AllowOrigins []string  `yaml:"allowOrigins"`
	WebSocket    WebSocket `yaml:"websocket"`
	MaxGames     int       `yaml:"maxGames"`
	LogLevel     string    `yaml:"logLevel"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Listen:       ":3000",
		AllowOrigins: []string{"http://localhost:5173"},
		WebSocket: WebSocket{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		MaxGames: 1000,
		LogLevel: "info",
	}
}

// Load reads filename over the defaults. An empty filename returns the
// defaults unchanged.
func Load(filename string) (Config, error) {
	cfg := Default()
	if filename == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("'%s': %w", filename, err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("'%s': %w", filename, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("'%s': %w", filename, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Listen == "" {
		return errors.New("listen address is required")
	}
	if c.WebSocket.ReadBufferSize <= 0 || c.WebSocket.WriteBufferSize <= 0 {
		return errors.New("websocket buffer sizes must be positive")
	}
	if c.MaxGames < 0 {
		return errors.New("maxGames must not be negative")
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Level returns the configured fiber log level.
func (c Config) Level() log.Level {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return log.LevelInfo
	}
	return level
}

// Origins joins AllowOrigins the way the cors middleware expects.
func (c Config) Origins() string {
	return strings.Join(c.AllowOrigins, ", ")
}

func parseLevel(s string) (log.Level, error) {
	switch strings.ToLower(s) {
	case "trace":
		return log.LevelTrace, nil
	case "debug":
		return log.LevelDebug, nil
	case "", "info":
		return log.LevelInfo, nil
	case "warn":
		return log.LevelWarn, nil
	case "error":
		return log.LevelError, nil
	}
	return log.LevelInfo, fmt.Errorf("unknown log level %q", s)
}
