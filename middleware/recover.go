package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// Recover turns handler panics into errors for the app's ErrorHandler.
func Recover(development bool) fiber.Handler {
	return recover.New(recover.Config{EnableStackTrace: development})
}
