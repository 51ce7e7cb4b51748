package wire

import (
	"museum-concierge/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func TicketRoutes(r chi.Router, handler adaptor.TicketHandler) {
	r.Get("/ticket-types", handler.List)
}
