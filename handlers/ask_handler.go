package handlers

import (
	"github.com/gofiber/fiber/v2"

	"varanex_backend/models"
	"varanex_backend/pkg/apperror"
	"varanex_backend/services"
)

type AskHandler struct {
	relay *services.RelayService
}

func NewAskHandler(relay *services.RelayService) *AskHandler {
	return &AskHandler{relay: relay}
}

func (h *AskHandler) Ask(c *fiber.Ctx) error {
	// decompose message
	var req models.AskRequest
	if err := c.BodyParser(&req); err != nil {
		return apperror.Validation()
	}
	question, err := services.ParseQuestion(req)
	if err != nil {
		return err
	}

	resp, err := h.relay.Ask(c.UserContext(), question)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
