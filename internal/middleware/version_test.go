package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestNormalizeVersion(t *testing.T) {
	tests := map[string]string{
		"1":     "1.0.0",
		"1.0":   "1.0.0",
		"v1":    "1.0.0",
		"1.2.3": "1.2.3",
		" v2.1": "2.1.0",
	}

	for input, want := range tests {
		if got := normalizeVersion(input); got != want {
			t.Errorf("normalizeVersion(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestVersionMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(VersionMiddleware())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("apiVersion").(string))
	})

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("X-Api-Version", "v1")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}

	if got := resp.Header.Get("X-Api-Version"); got != APIVersion {
		t.Errorf("Expected X-Api-Version %s, got %q", APIVersion, got)
	}

	body := make([]byte, 16)
	n, _ := resp.Body.Read(body)
	if string(body[:n]) != "1.0.0" {
		t.Errorf("Expected apiVersion 1.0.0 in locals, got %q", string(body[:n]))
	}
}
