package usecase

import (
	"context"
	"fmt"

	"museum-concierge/internal/concierge"
	"museum-concierge/internal/data/repository"
	"museum-concierge/internal/dto/response"
	"museum-concierge/pkg/utils"

	"go.uber.org/zap"
)

// UnlimitedSpots is the remaining-capacity sentinel for experiences without
// a cap. Large enough that no realistic party size exceeds it.
const UnlimitedSpots = 1 << 20

// AvailabilityService is the live inventory: the dialog consults it
// mid-conversation and the ticket listing endpoint reads it directly.
type AvailabilityService interface {
	concierge.Catalog
	ListTicketTypes(ctx context.Context, date string) ([]*response.TicketTypeResponse, error)
}

type availabilityService struct {
	ticketTypes repository.TicketTypeRepository
	bookings    repository.BookingRepository
	log         *zap.Logger
}

func NewAvailabilityService(repo *repository.Repository, log *zap.Logger) AvailabilityService {
	return &availabilityService{
		ticketTypes: repo.TicketType,
		bookings:    repo.Booking,
		log:         log.With(zap.String("service", "availability")),
	}
}

func (s *availabilityService) Experiences(ctx context.Context) ([]concierge.Experience, error) {
	types, err := s.ticketTypes.FindAllActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list experiences: %w", err)
	}

	experiences := make([]concierge.Experience, 0, len(types))
	for _, tt := range types {
		experiences = append(experiences, concierge.Experience{
			Name:      tt.Name,
			Price:     tt.Price,
			Available: tt.Capacity,
		})
	}
	return experiences, nil
}

// Remaining fails closed: if the inventory cannot be read, the slot reports
// zero spots rather than overselling.
func (s *availabilityService) Remaining(ctx context.Context, ticketType, date string) int {
	tt, err := s.ticketTypes.FindByName(ctx, ticketType)
	if err != nil || tt == nil || !tt.IsActive {
		if err != nil {
			s.log.Warn("Availability check failed, treating slot as full",
				zap.Error(err),
				zap.String("ticket_type", ticketType),
			)
		}
		return 0
	}
	if tt.Capacity == nil {
		return UnlimitedSpots
	}

	visitDate, err := utils.ParseVisitDate(date)
	if err != nil {
		return 0
	}

	booked, err := s.bookings.BookedQuantityForSlot(ctx, ticketType, visitDate)
	if err != nil {
		s.log.Warn("Booked quantity lookup failed, treating slot as full",
			zap.Error(err),
			zap.String("ticket_type", ticketType),
			zap.String("date", date),
		)
		return 0
	}

	remaining := *tt.Capacity - booked
	if remaining < 0 {
		return 0
	}
	return remaining
}

// ListTicketTypes returns the active experiences. With a date, Available is
// the remaining spots for that day; without one, the static capacity.
func (s *availabilityService) ListTicketTypes(ctx context.Context, date string) ([]*response.TicketTypeResponse, error) {
	types, err := s.ticketTypes.FindAllActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list ticket types: %w", err)
	}

	out := make([]*response.TicketTypeResponse, 0, len(types))
	for _, tt := range types {
		item := &response.TicketTypeResponse{
			Name:  tt.Name,
			Price: tt.Price,
		}
		if tt.Capacity != nil {
			if date != "" {
				remaining := s.Remaining(ctx, tt.Name, date)
				item.Available = &remaining
			} else {
				capacity := *tt.Capacity
				item.Available = &capacity
			}
		}
		out = append(out, item)
	}
	return out, nil
}
