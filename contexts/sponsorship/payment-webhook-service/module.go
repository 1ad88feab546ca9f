package paymentwebhookservice

import (
	"log/slog"

	httpadapter "poemclub/contexts/sponsorship/payment-webhook-service/adapters/http"
	"poemclub/contexts/sponsorship/payment-webhook-service/application/commands"
	"poemclub/contexts/sponsorship/payment-webhook-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
}

type Dependencies struct {
	Secret      string
	Booker      ports.SlotBooker
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func NewModule(deps Dependencies) Module {
	return Module{
		Handler: httpadapter.Handler{
			Confirm: commands.ConfirmPaymentUseCase{
				Secret:      deps.Secret,
				Booker:      deps.Booker,
				IDGenerator: deps.IDGenerator,
				Logger:      deps.Logger,
			},
			Logger: deps.Logger,
		},
	}
}
