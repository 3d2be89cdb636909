package handlers

import (
	"github.com/gofiber/fiber/v2"

	"varanex_backend/models"
)

const (
	RootMessage   = "VaraNex AI backend is live. Use /health or /ask endpoints."
	HealthMessage = "Backend is running"
)

func Root(c *fiber.Ctx) error {
	return c.JSON(models.StatusResponse{Status: "OK", Message: RootMessage})
}

func Health(c *fiber.Ctx) error {
	return c.JSON(models.StatusResponse{Status: "OK", Message: HealthMessage})
}
