package usecase

import (
	"context"
	"errors"
	"testing"

	"museum-concierge/internal/data/entity"
	"museum-concierge/internal/data/repository"

	"go.uber.org/zap"
)

type fakeTicketTypes struct {
	types []*entity.TicketType
	err   error
}

func (f *fakeTicketTypes) FindAllActive(context.Context) ([]*entity.TicketType, error) {
	return f.types, f.err
}

func (f *fakeTicketTypes) FindByName(_ context.Context, name string) (*entity.TicketType, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, tt := range f.types {
		if tt.Name == name {
			return tt, nil
		}
	}
	return nil, nil
}

func capPtr(n int) *int { return &n }

func newTestAvailability(tt *fakeTicketTypes, bookings *fakeBookingRepo) AvailabilityService {
	repo := &repository.Repository{TicketType: tt, Booking: bookings}
	return NewAvailabilityService(repo, zap.NewNop())
}

func TestRemainingSubtractsBookedQuantity(t *testing.T) {
	svc := newTestAvailability(
		&fakeTicketTypes{types: []*entity.TicketType{
			{Name: "Guided Tour", Price: 100, Capacity: capPtr(10), IsActive: true},
		}},
		&fakeBookingRepo{booked: 3},
	)

	if got := svc.Remaining(context.Background(), "Guided Tour", "2026-09-10"); got != 7 {
		t.Errorf("Remaining = %d, want 7", got)
	}
}

func TestRemainingUnlimitedWhenUncapped(t *testing.T) {
	svc := newTestAvailability(
		&fakeTicketTypes{types: []*entity.TicketType{
			{Name: "Guided Tour", Price: 100, IsActive: true},
		}},
		&fakeBookingRepo{},
	)

	if got := svc.Remaining(context.Background(), "Guided Tour", "2026-09-10"); got != UnlimitedSpots {
		t.Errorf("Remaining = %d, want the unlimited sentinel", got)
	}
}

func TestRemainingFailsClosed(t *testing.T) {
	tests := []struct {
		name     string
		tt       *fakeTicketTypes
		bookings *fakeBookingRepo
		ticket   string
		date     string
	}{
		{
			name:     "repository error",
			tt:       &fakeTicketTypes{err: errors.New("connection refused")},
			bookings: &fakeBookingRepo{},
			ticket:   "Guided Tour",
			date:     "2026-09-10",
		},
		{
			name:     "unknown ticket type",
			tt:       &fakeTicketTypes{},
			bookings: &fakeBookingRepo{},
			ticket:   "Nonexistent",
			date:     "2026-09-10",
		},
		{
			name: "inactive ticket type",
			tt: &fakeTicketTypes{types: []*entity.TicketType{
				{Name: "Guided Tour", Capacity: capPtr(10), IsActive: false},
			}},
			bookings: &fakeBookingRepo{},
			ticket:   "Guided Tour",
			date:     "2026-09-10",
		},
		{
			name: "unparsable date",
			tt: &fakeTicketTypes{types: []*entity.TicketType{
				{Name: "Guided Tour", Capacity: capPtr(10), IsActive: true},
			}},
			bookings: &fakeBookingRepo{},
			ticket:   "Guided Tour",
			date:     "whenever",
		},
		{
			name: "booked quantity lookup fails",
			tt: &fakeTicketTypes{types: []*entity.TicketType{
				{Name: "Guided Tour", Capacity: capPtr(10), IsActive: true},
			}},
			bookings: &fakeBookingRepo{bookedErr: errors.New("timeout")},
			ticket:   "Guided Tour",
			date:     "2026-09-10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestAvailability(tt.tt, tt.bookings)
			if got := svc.Remaining(context.Background(), tt.ticket, tt.date); got != 0 {
				t.Errorf("Remaining = %d, want 0", got)
			}
		})
	}
}

func TestRemainingNeverNegative(t *testing.T) {
	svc := newTestAvailability(
		&fakeTicketTypes{types: []*entity.TicketType{
			{Name: "Guided Tour", Capacity: capPtr(5), IsActive: true},
		}},
		&fakeBookingRepo{booked: 9},
	)

	if got := svc.Remaining(context.Background(), "Guided Tour", "2026-09-10"); got != 0 {
		t.Errorf("Remaining = %d, want 0 when overbooked", got)
	}
}

func TestListTicketTypes(t *testing.T) {
	svc := newTestAvailability(
		&fakeTicketTypes{types: []*entity.TicketType{
			{Name: "Guided Tour", Price: 100, Capacity: capPtr(10), IsActive: true},
			{Name: "Open Gallery", Price: 50, IsActive: true},
		}},
		&fakeBookingRepo{booked: 4},
	)

	withDate, err := svc.ListTicketTypes(context.Background(), "2026-09-10")
	if err != nil {
		t.Fatalf("ListTicketTypes: %v", err)
	}
	if len(withDate) != 2 {
		t.Fatalf("got %d types, want 2", len(withDate))
	}
	if withDate[0].Available == nil || *withDate[0].Available != 6 {
		t.Errorf("capped type Available = %v, want 6 remaining", withDate[0].Available)
	}
	if withDate[1].Available != nil {
		t.Errorf("uncapped type Available = %v, want nil", withDate[1].Available)
	}

	noDate, err := svc.ListTicketTypes(context.Background(), "")
	if err != nil {
		t.Fatalf("ListTicketTypes: %v", err)
	}
	if noDate[0].Available == nil || *noDate[0].Available != 10 {
		t.Errorf("static Available = %v, want capacity 10", noDate[0].Available)
	}
}
