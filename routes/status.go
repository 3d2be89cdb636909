package routes

import (
	"github.com/gofiber/fiber/v2"

	"varanex_backend/handlers"
)

func RegisterStatusRoutes(app *fiber.App) {
	app.Get("/", handlers.Root)
	app.Get("/health", handlers.Health)
}
