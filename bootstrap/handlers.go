package bootstrap

import "varanex_backend/handlers"

type Handlers struct {
	AskHandler *handlers.AskHandler
}

func NewHandlers(services *Services) *Handlers {
	return &Handlers{
		AskHandler: handlers.NewAskHandler(services.RelayService),
	}
}
