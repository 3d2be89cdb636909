package bootstrap

import (
	"varanex_backend/config"
	"varanex_backend/services"
)

type Services struct {
	Completer    services.Completer
	RelayService *services.RelayService
}

// NewServices wires the relay to completer, or to a Groq client built from
// cfg when completer is nil.
func NewServices(cfg *config.Config, completer services.Completer) *Services {
	res := &Services{}
	if completer == nil {
		completer = services.NewGroqClient(cfg.GroqAPIKey, cfg.GroqBaseURL, nil)
	}
	res.Completer = completer
	res.RelayService = services.NewRelayService(cfg, completer)
	return res
}
