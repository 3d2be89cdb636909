package routes

import (
	"github.com/gofiber/fiber/v2"

	"varanex_backend/handlers"
)

func RegisterAskRoutes(app *fiber.App, askHandler *handlers.AskHandler) {
	app.Post("/ask", askHandler.Ask)
}

// RegisterFallback must run after every other route.
func RegisterFallback(app *fiber.App) {
	app.Use(handlers.NotFound)
}
