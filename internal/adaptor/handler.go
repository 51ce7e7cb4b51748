package adaptor

import (
	"museum-concierge/internal/usecase"

	"go.uber.org/zap"
)

// Handler aggregates the HTTP handlers behind one wiring point.
type Handler struct {
	Chat    ChatHandler
	Ticket  TicketHandler
	Booking BookingHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Chat:    NewChatHandler(service.Concierge, log),
		Ticket:  NewTicketHandler(service.Availability, log),
		Booking: NewBookingHandler(service.Booking, log),
	}
}
