package usecase

import (
	"museum-concierge/internal/concierge"
	"museum-concierge/internal/data/repository"
	"museum-concierge/pkg/utils"

	"go.uber.org/zap"
)

// Service aggregates the application services behind one wiring point.
type Service struct {
	Availability AvailabilityService
	Payment      PaymentService
	Booking      BookingService
	Concierge    ConciergeService
}

func NewService(repo *repository.Repository, queue taskEnqueuer, config *utils.Config, log *zap.Logger) *Service {
	availability := NewAvailabilityService(repo, log)
	payment := NewPaymentService(config.Razorpay, repo.Booking, queue, log)
	machine := concierge.NewMachine(availability, config.Concierge, log)

	return &Service{
		Availability: availability,
		Payment:      payment,
		Booking:      NewBookingService(repo, log),
		Concierge:    NewConciergeService(machine, payment, config.Concierge, log),
	}
}
