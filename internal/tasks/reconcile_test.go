package tasks

import (
	"context"
	"errors"
	"testing"
	"time"

	"museum-concierge/internal/data/entity"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

type stubBookingRepo struct {
	existing  *entity.Booking
	createErr error
	created   []*entity.Booking
	guests    []*entity.Guest
}

func (s *stubBookingRepo) CreateWithGuests(_ context.Context, b *entity.Booking, guests []*entity.Guest) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.created = append(s.created, b)
	s.guests = append(s.guests, guests...)
	return nil
}

func (s *stubBookingRepo) FindByReference(context.Context, string) (*entity.Booking, error) {
	return s.existing, nil
}

func (s *stubBookingRepo) FindByUID(context.Context, string, int, int) ([]*entity.Booking, error) {
	return nil, nil
}

func (s *stubBookingRepo) CountByUID(context.Context, string) (int64, error) { return 0, nil }

func (s *stubBookingRepo) FindGuests(context.Context, uuid.UUID) ([]*entity.Guest, error) {
	return nil, nil
}

func (s *stubBookingRepo) BookedQuantityForSlot(context.Context, string, time.Time) (int, error) {
	return 0, nil
}

func testPayload() ReconcilePayload {
	return ReconcilePayload{
		Reference:      "LXM-00042",
		UID:            "u1",
		VisitorName:    "Alice Smith",
		TicketType:     "Guided Tour",
		VisitDate:      "2026-09-10",
		Quantity:       2,
		TotalAmount:    200,
		Language:       "English",
		PaymentOrderID: "order_1",
		PaymentID:      "pay_1",
		Guests: []ReconcileGuest{
			{Position: 1, Name: "Alice Smith", Gender: "Female", Age: 30},
			{Position: 2, Name: "Bob Jones", Gender: "Male", Age: 8},
		},
	}
}

func TestReconcileRebuildsBooking(t *testing.T) {
	repo := &stubBookingRepo{}
	handler := NewReconcileHandler(repo, zap.NewNop())

	task, err := NewReconcileTask(testPayload())
	if err != nil {
		t.Fatalf("NewReconcileTask: %v", err)
	}

	if err := handler.ProcessTask(context.Background(), task); err != nil {
		t.Fatalf("ProcessTask: %v", err)
	}

	if len(repo.created) != 1 {
		t.Fatalf("created %d bookings, want 1", len(repo.created))
	}
	booking := repo.created[0]
	if booking.Reference != "LXM-00042" || booking.Status != entity.BookingStatusConfirmed {
		t.Errorf("booking = %+v", booking)
	}
	if booking.VisitDate.Format("2006-01-02") != "2026-09-10" {
		t.Errorf("visit date = %v", booking.VisitDate)
	}
	if len(repo.guests) != 2 {
		t.Errorf("created %d guests, want 2", len(repo.guests))
	}
}

func TestReconcileIdempotent(t *testing.T) {
	repo := &stubBookingRepo{existing: &entity.Booking{Reference: "LXM-00042"}}
	handler := NewReconcileHandler(repo, zap.NewNop())

	task, _ := NewReconcileTask(testPayload())
	if err := handler.ProcessTask(context.Background(), task); err != nil {
		t.Fatalf("ProcessTask on existing booking: %v", err)
	}
	if len(repo.created) != 0 {
		t.Errorf("booking recreated despite existing row")
	}
}

func TestReconcileRetriesOnPersistFailure(t *testing.T) {
	repo := &stubBookingRepo{createErr: errors.New("still down")}
	handler := NewReconcileHandler(repo, zap.NewNop())

	task, _ := NewReconcileTask(testPayload())
	err := handler.ProcessTask(context.Background(), task)
	if err == nil {
		t.Fatal("ProcessTask succeeded against a failing store")
	}
	if errors.Is(err, asynq.SkipRetry) {
		t.Error("persist failure marked unretryable")
	}
}

func TestReconcileSkipsRetryOnBadPayload(t *testing.T) {
	handler := NewReconcileHandler(&stubBookingRepo{}, zap.NewNop())

	task := asynq.NewTask(TypeBookingReconcile, []byte("not json"))
	err := handler.ProcessTask(context.Background(), task)
	if !errors.Is(err, asynq.SkipRetry) {
		t.Errorf("err = %v, want SkipRetry for malformed payload", err)
	}
}
