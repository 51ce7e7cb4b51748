package repository

import (
	"museum-concierge/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	TicketType TicketTypeRepository
	Booking    BookingRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		TicketType: NewTicketTypeRepository(db, log),
		Booking:    NewBookingRepository(db, log),
	}
}
