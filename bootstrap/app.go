package bootstrap

import (
	"context"
	"os"

	"github.com/gofiber/fiber/v2"

	"varanex_backend/config"
	"varanex_backend/handlers"
	"varanex_backend/middleware"
	"varanex_backend/routes"
	"varanex_backend/services"
)

type App struct {
	Cfg      *config.Config
	Services *Services
	Handlers *Handlers
	Fiber    *fiber.App
}

func NewApp(cfg *config.Config) (*App, error) {
	return NewAppWithCompleter(cfg, nil)
}

// NewAppWithCompleter builds the app around a given provider; nil selects the
// Groq client.
func NewAppWithCompleter(cfg *config.Config, completer services.Completer) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	app := &App{Cfg: cfg}

	// services
	app.Services = NewServices(cfg, completer)
	app.Handlers = NewHandlers(app.Services)

	f := fiber.New(fiber.Config{
		AppName:               "VaraNex AI",
		ErrorHandler:          handlers.NewErrorHandler(cfg.Development()),
		DisableStartupMessage: true,
	})
	f.Use(middleware.Recover(cfg.Development()))
	f.Use(middleware.RequestID())
	f.Use(middleware.Logger(cfg.AppEnv, os.Stdout))
	f.Use(middleware.CORS(cfg.AllowOrigins()))

	routes.RegisterStatusRoutes(f)
	routes.RegisterAskRoutes(f, app.Handlers.AskHandler)
	routes.RegisterFallback(f)

	app.Fiber = f
	return app, nil
}

func (a *App) Listen() error {
	return a.Fiber.Listen(":" + a.Cfg.Port)
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (a *App) Shutdown(ctx context.Context) error {
	if a == nil || a.Fiber == nil {
		return nil
	}
	return a.Fiber.ShutdownWithContext(ctx)
}
