package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"varanex_backend/middleware"
	"varanex_backend/models"
	"varanex_backend/pkg/apperror"
)

func newErrorApp(development bool) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler:          NewErrorHandler(development),
		DisableStartupMessage: true,
	})
	app.Use(middleware.Recover(false))
	app.Get("/panic", func(c *fiber.Ctx) error {
		panic("nil map write")
	})
	app.Get("/fail", func(c *fiber.Ctx) error {
		return errors.New("database exploded")
	})
	app.Get("/rate", func(c *fiber.Ctx) error {
		return apperror.FromProviderStatus(http.StatusTooManyRequests, "", nil)
	})
	app.Get("/fiber404", func(c *fiber.Ctx) error {
		return fiber.ErrNotFound
	})
	return app
}

func get(t *testing.T, app *fiber.App, path string) (int, models.ErrorResponse) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close()
	var body models.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("GET %s: decoding body: %v", path, err)
	}
	return resp.StatusCode, body
}

func TestErrorHandler_Production(t *testing.T) {
	app := newErrorApp(false)

	for _, path := range []string{"/panic", "/fail"} {
		status, body := get(t, app, path)
		if status != http.StatusInternalServerError {
			t.Errorf("GET %s status = %d; want 500", path, status)
		}
		if body.Error != "Internal server error" {
			t.Errorf("GET %s error = %q", path, body.Error)
		}
		if body.Message != "" {
			t.Errorf("GET %s leaked message %q outside development", path, body.Message)
		}
	}
}

func TestErrorHandler_Development(t *testing.T) {
	app := newErrorApp(true)

	status, body := get(t, app, "/fail")
	if status != http.StatusInternalServerError || body.Error != "Internal server error" {
		t.Errorf("GET /fail = (%d, %q)", status, body.Error)
	}
	if body.Message != "database exploded" {
		t.Errorf("message = %q; want failure text in development", body.Message)
	}

	_, body = get(t, app, "/panic")
	if body.Message != "nil map write" {
		t.Errorf("panic message = %q; want recovered value", body.Message)
	}
}

func TestErrorHandler_ClassifiedErrors(t *testing.T) {
	app := newErrorApp(true)

	status, body := get(t, app, "/rate")
	if status != http.StatusTooManyRequests || body.Error != apperror.MsgRateLimit {
		t.Errorf("GET /rate = (%d, %q)", status, body.Error)
	}
	if body.Message != "" {
		t.Errorf("classified error should not carry a message, got %q", body.Message)
	}

	status, body = get(t, app, "/fiber404")
	if status != http.StatusNotFound || body.Error != apperror.MsgNotFound {
		t.Errorf("GET /fiber404 = (%d, %q)", status, body.Error)
	}

	// no route at all
	status, body = get(t, app, "/missing")
	if status != http.StatusNotFound || body.Error != apperror.MsgNotFound {
		t.Errorf("GET /missing = (%d, %q)", status, body.Error)
	}
}
