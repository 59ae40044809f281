package middleware

import (
	"bytes"
	"log"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
)

func TestAccessLogAssignsRequestID(t *testing.T) {
	var buf bytes.Buffer
	mw := NewAccessLogMiddleware(log.New(&buf, "", 0))

	app := fiber.New()
	app.Use(mw.Middleware())
	app.Get("/ping", func(c fiber.Ctx) error {
		if rid, _ := c.Locals(CtxRequestIDKey).(string); rid == "" {
			t.Error("request id missing from locals")
		}
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()

	if resp.Header.Get("X-Request-ID") == "" {
		t.Error("X-Request-ID header not set")
	}

	line := buf.String()
	if !strings.Contains(line, "[HTTP] GET /ping") || !strings.Contains(line, "status=200") {
		t.Errorf("access line = %q", line)
	}
}

func TestAccessLogKeepsCallerRequestID(t *testing.T) {
	var buf bytes.Buffer
	mw := NewAccessLogMiddleware(log.New(&buf, "", 0))

	app := fiber.New()
	app.Use(mw.Middleware())
	app.Get("/ping", func(c fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set("X-Request-ID", "caller-rid")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()

	if got := resp.Header.Get("X-Request-ID"); got != "caller-rid" {
		t.Errorf("X-Request-ID = %q, want caller-rid", got)
	}
	if !strings.Contains(buf.String(), "rid=caller-rid") {
		t.Errorf("access line = %q", buf.String())
	}
}
