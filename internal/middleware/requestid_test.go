package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestRequestIDAssignsAndEchoes(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID())

	seen := ""
	app.Get("/", func(c *fiber.Ctx) error {
		seen = GetRequestID(c)
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()

	echoed := resp.Header.Get(HeaderRequestID)
	if echoed == "" {
		t.Fatal("response carries no request id")
	}
	if seen != echoed {
		t.Errorf("handler saw %q, response echoed %q", seen, echoed)
	}
}

func TestRequestIDHonorsCaller(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID())
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("ok") })

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(HeaderRequestID, "trace-42")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()

	if got := resp.Header.Get(HeaderRequestID); got != "trace-42" {
		t.Errorf("echoed id: got %q, want trace-42", got)
	}
}

func TestGetRequestIDOutsideMiddleware(t *testing.T) {
	app := fiber.New()

	got := "unset"
	app.Get("/", func(c *fiber.Ctx) error {
		got = GetRequestID(c)
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	resp.Body.Close()

	if got != "" {
		t.Errorf("id without middleware: got %q, want empty", got)
	}
}
