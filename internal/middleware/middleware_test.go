package middleware

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func newApp() *fiber.App {
	app := fiber.New()
	app.Use(EnsureClientID())
	app.Get("/whoami", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("clientID").(string))
	})
	app.Get("/ws/game/:gameId", WebSocketUpgrade(func(gameID string) bool {
		return gameID == "known"
	}), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("wsGameID").(string) + "/" + c.Locals("wsClientID").(string))
	})
	return app
}

func get(t *testing.T, app *fiber.App, target string, headers map[string]string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodGet, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return resp.StatusCode, string(b)
}

func TestEnsureClientID(t *testing.T) {
	app := newApp()
	cases := []struct {
		name    string
		target  string
		headers map[string]string
		status  int
		body    string
	}{
		{name: "header", target: "/whoami", headers: map[string]string{"X-Client-ID": "alice"}, status: fiber.StatusOK, body: "alice"},
		{name: "query", target: "/whoami?clientId=bob", status: fiber.StatusOK, body: "bob"},
		{name: "header wins", target: "/whoami?clientId=bob", headers: map[string]string{"X-Client-ID": "alice"}, status: fiber.StatusOK, body: "alice"},
		{name: "missing", target: "/whoami", status: fiber.StatusUnauthorized},
		{name: "blank", target: "/whoami", headers: map[string]string{"X-Client-ID": "   "}, status: fiber.StatusUnauthorized},
		{name: "too long", target: "/whoami?clientId=" + strings.Repeat("x", maxClientIDLength+1), status: fiber.StatusBadRequest},
	}
	for _, c := range cases {
		status, body := get(t, app, c.target, c.headers)
		if status != c.status {
			t.Errorf("%s: want %d got %d: %s", c.name, c.status, status, body)
			continue
		}
		if c.body != "" && body != c.body {
			t.Errorf("%s: want %q got %q", c.name, c.body, body)
		}
	}
}

func TestWebSocketUpgrade(t *testing.T) {
	app := newApp()
	upgrade := map[string]string{
		"X-Client-ID":           "alice",
		"Connection":            "Upgrade",
		"Upgrade":               "websocket",
		"Sec-WebSocket-Version": "13",
		"Sec-WebSocket-Key":     "dGhlIHNhbXBsZSBub25jZQ==",
	}

	if status, _ := get(t, app, "/ws/game/known", map[string]string{"X-Client-ID": "alice"}); status != fiber.StatusUpgradeRequired {
		t.Errorf("plain request: want 426 got %d", status)
	}
	if status, _ := get(t, app, "/ws/game/unknown", upgrade); status != fiber.StatusNotFound {
		t.Errorf("unknown game: want 404 got %d", status)
	}
	status, body := get(t, app, "/ws/game/known", upgrade)
	if status != fiber.StatusOK || body != "known/alice" {
		t.Errorf("known game: want 200 known/alice, got %d %q", status, body)
	}
}
