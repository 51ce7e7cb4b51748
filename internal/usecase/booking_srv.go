package usecase

import (
	"context"
	"fmt"

	"museum-concierge/internal/data/repository"
	"museum-concierge/internal/dto/response"

	"go.uber.org/zap"
)

type BookingService interface {
	GetUserBookings(ctx context.Context, uid string, page, limit int) (*response.PaginatedResponse[*response.BookingResponse], error)
}

type bookingService struct {
	bookings repository.BookingRepository
	log      *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		bookings: repo.Booking,
		log:      log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) GetUserBookings(ctx context.Context, uid string, page, limit int) (*response.PaginatedResponse[*response.BookingResponse], error) {
	offset := (page - 1) * limit

	bookings, err := s.bookings.FindByUID(ctx, uid, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("get bookings for user: %w", err)
	}

	total, err := s.bookings.CountByUID(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("count bookings for user: %w", err)
	}

	items := make([]*response.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		item := &response.BookingResponse{
			Reference:   b.Reference,
			VisitorName: b.VisitorName,
			TicketType:  b.TicketType,
			VisitDate:   b.VisitDate.Format("2006-01-02"),
			Quantity:    b.Quantity,
			TotalAmount: b.TotalAmount,
			Language:    b.Language,
			Status:      string(b.Status),
			CreatedAt:   b.CreatedAt,
		}

		guests, err := s.bookings.FindGuests(ctx, b.ID)
		if err != nil {
			return nil, fmt.Errorf("get guests for booking %s: %w", b.Reference, err)
		}
		for _, g := range guests {
			item.Guests = append(item.Guests, response.BookingGuestResponse{
				Position: g.Position,
				Name:     g.Name,
				Gender:   g.Gender,
				Age:      g.Age,
			})
		}

		items = append(items, item)
	}

	return response.NewPaginatedResponse(items, page, limit, total), nil
}
