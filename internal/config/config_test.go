package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2/log"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(filename, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return filename
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Listen != ":3000" || cfg.MaxGames != 1000 || cfg.Level() != log.LevelInfo {
		t.Errorf("unexpected defaults %+v", cfg)
	}
	if err := Default().Validate(); err != nil {
		t.Errorf("defaults must validate: %v", err)
	}
}

func TestLoad_File(t *testing.T) {
	filename := writeConfig(t, `
listen: ":8080"
allowOrigins:
  - http://localhost:5173
  - https://chess.example.com
maxGames: 10
logLevel: debug
`)
	cfg, err := Load(filename)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Listen != ":8080" || cfg.MaxGames != 10 {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.Level() != log.LevelDebug {
		t.Errorf("want debug level, got %v", cfg.Level())
	}
	if got := cfg.Origins(); got != "http://localhost:5173, https://chess.example.com" {
		t.Errorf("unexpected origins %q", got)
	}
	// unset keys keep their defaults
	if cfg.WebSocket.ReadBufferSize != 1024 || cfg.WebSocket.WriteBufferSize != 1024 {
		t.Errorf("want default buffer sizes, got %+v", cfg.WebSocket)
	}
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    string
	}{
		{name: "unknown level", content: "logLevel: loud\n", want: "unknown log level"},
		{name: "negative max games", content: "maxGames: -1\n", want: "maxGames"},
		{name: "empty listen", content: "listen: \"\"\n", want: "listen address"},
		{name: "zero buffer", content: "websocket:\n  readBufferSize: 0\n", want: "buffer sizes"},
		{name: "not yaml", content: "listen: [\n", want: "yaml"},
	}
	for _, c := range cases {
		filename := writeConfig(t, c.content)
		_, err := Load(filename)
		if err == nil || !strings.Contains(err.Error(), c.want) {
			t.Errorf("%s: want error containing %q, got %v", c.name, c.want, err)
		}
		if err != nil && !strings.Contains(err.Error(), filename) {
			t.Errorf("%s: error should name the file, got %v", c.name, err)
		}
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("want error for a missing file")
	}
}
