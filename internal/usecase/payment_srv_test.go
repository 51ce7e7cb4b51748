package usecase

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"museum-concierge/internal/concierge"
	"museum-concierge/internal/data/entity"
	"museum-concierge/internal/tasks"
	"museum-concierge/pkg/utils"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

type fakeOrders struct {
	response map[string]interface{}
	err      error
	lastData map[string]interface{}
}

func (f *fakeOrders) Create(data map[string]interface{}, _ map[string]string) (map[string]interface{}, error) {
	f.lastData = data
	return f.response, f.err
}

type fakeEnqueuer struct {
	tasks []*asynq.Task
	err   error
}

func (f *fakeEnqueuer) Enqueue(task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.tasks = append(f.tasks, task)
	return &asynq.TaskInfo{}, nil
}

type fakeBookingRepo struct {
	created      []*entity.Booking
	createdGuest []*entity.Guest
	createErr    error
	byReference  map[string]*entity.Booking
	booked       int
	bookedErr    error
}

func (f *fakeBookingRepo) CreateWithGuests(_ context.Context, b *entity.Booking, guests []*entity.Guest) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, b)
	f.createdGuest = append(f.createdGuest, guests...)
	return nil
}

func (f *fakeBookingRepo) FindByReference(_ context.Context, reference string) (*entity.Booking, error) {
	return f.byReference[reference], nil
}

func (f *fakeBookingRepo) FindByUID(context.Context, string, int, int) ([]*entity.Booking, error) {
	return nil, nil
}

func (f *fakeBookingRepo) CountByUID(context.Context, string) (int64, error) { return 0, nil }

func (f *fakeBookingRepo) FindGuests(context.Context, uuid.UUID) ([]*entity.Guest, error) {
	return nil, nil
}

func (f *fakeBookingRepo) BookedQuantityForSlot(context.Context, string, time.Time) (int, error) {
	return f.booked, f.bookedErr
}

func testDraft() concierge.BookingDraft {
	return concierge.BookingDraft{
		Language:   "English",
		TicketType: "Guided Tour",
		UnitPrice:  100,
		Date:       "2026-09-10",
		Quantity:   2,
		Total:      200,
		Guests: []concierge.GuestRecord{
			{Name: "Alice Smith", Gender: "Female", Age: 30},
			{Name: "Bob Jones", Gender: "Male", Age: 8},
		},
	}
}

func newTestPaymentService(orders *fakeOrders, repo *fakeBookingRepo, queue *fakeEnqueuer) *paymentService {
	cfg := utils.RazorpayConfig{KeyID: "rzp_test", KeySecret: "secret", Currency: "INR"}
	svc := NewPaymentService(cfg, repo, queue, zap.NewNop()).(*paymentService)
	svc.newOrders = func() orderCreator { return orders }
	return svc
}

func TestCreateOrderBuildsCheckoutIntent(t *testing.T) {
	orders := &fakeOrders{response: map[string]interface{}{"id": "order_abc123"}}
	svc := newTestPaymentService(orders, &fakeBookingRepo{}, &fakeEnqueuer{})

	identity := &utils.Identity{UID: "u1", Name: "Alice Smith", Email: "alice@example.com"}
	intent, err := svc.CreateOrder(context.Background(), testDraft(), identity)
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	if intent.OrderID != "order_abc123" {
		t.Errorf("order id = %q", intent.OrderID)
	}
	if intent.Amount != 20000 {
		t.Errorf("amount = %d paise, want 20000", intent.Amount)
	}
	if intent.Currency != "INR" {
		t.Errorf("currency = %q, want INR", intent.Currency)
	}
	if intent.PrefillName != "Alice Smith" || intent.PrefillMail != "alice@example.com" {
		t.Errorf("prefill = %q / %q", intent.PrefillName, intent.PrefillMail)
	}
	if orders.lastData["amount"] != int64(20000) {
		t.Errorf("gateway amount = %v, want 20000", orders.lastData["amount"])
	}
}

func TestCreateOrderGatewayFailure(t *testing.T) {
	orders := &fakeOrders{err: errors.New("gateway down")}
	svc := newTestPaymentService(orders, &fakeBookingRepo{}, &fakeEnqueuer{})

	if _, err := svc.CreateOrder(context.Background(), testDraft(), nil); err == nil {
		t.Fatal("CreateOrder succeeded against a failing gateway")
	}
}

func TestCreateOrderRejectsMissingOrderID(t *testing.T) {
	orders := &fakeOrders{response: map[string]interface{}{"status": "created"}}
	svc := newTestPaymentService(orders, &fakeBookingRepo{}, &fakeEnqueuer{})

	if _, err := svc.CreateOrder(context.Background(), testDraft(), nil); err == nil {
		t.Fatal("CreateOrder accepted a response without an order id")
	}
}

func TestVerifySignature(t *testing.T) {
	svc := newTestPaymentService(&fakeOrders{}, &fakeBookingRepo{}, &fakeEnqueuer{})

	mac := hmac.New(sha256.New, []byte("secret"))
	mac.Write([]byte("order_1|pay_1"))
	valid := hex.EncodeToString(mac.Sum(nil))

	if !svc.VerifySignature("order_1", "pay_1", valid) {
		t.Error("valid signature rejected")
	}
	if svc.VerifySignature("order_1", "pay_1", "deadbeef") {
		t.Error("tampered signature accepted")
	}
	if svc.VerifySignature("order_2", "pay_1", valid) {
		t.Error("signature accepted for the wrong order")
	}
}

func TestFinalizePersistsBookingWithGuests(t *testing.T) {
	repo := &fakeBookingRepo{}
	queue := &fakeEnqueuer{}
	svc := newTestPaymentService(&fakeOrders{}, repo, queue)

	identity := &utils.Identity{UID: "u1", Name: "Alice Smith"}
	booking, err := svc.Finalize(context.Background(), identity, testDraft(), "order_1", "pay_1")
	if err != nil {
		t.Fatalf("Finalize: %v", err)
	}

	if len(repo.created) != 1 {
		t.Fatalf("created %d bookings, want 1", len(repo.created))
	}
	got := repo.created[0]
	if got.UID != "u1" || got.VisitorName != "Alice Smith" {
		t.Errorf("uid=%q visitor=%q", got.UID, got.VisitorName)
	}
	if got.Status != entity.BookingStatusConfirmed {
		t.Errorf("status = %q, want confirmed", got.Status)
	}
	if got.PaymentOrderID != "order_1" || got.PaymentID != "pay_1" {
		t.Errorf("payment refs = %q / %q", got.PaymentOrderID, got.PaymentID)
	}
	if len(repo.createdGuest) != 2 {
		t.Fatalf("created %d guests, want 2", len(repo.createdGuest))
	}
	if repo.createdGuest[0].Position != 1 || repo.createdGuest[1].Position != 2 {
		t.Errorf("guest positions = %d, %d", repo.createdGuest[0].Position, repo.createdGuest[1].Position)
	}
	if booking.Reference == "" {
		t.Error("booking reference is empty")
	}
	if len(queue.tasks) != 0 {
		t.Errorf("reconcile queued on a clean persist")
	}
}

func TestFinalizeQueuesReconcileOnPersistFailure(t *testing.T) {
	repo := &fakeBookingRepo{createErr: errors.New("connection refused")}
	queue := &fakeEnqueuer{}
	svc := newTestPaymentService(&fakeOrders{}, repo, queue)

	booking, err := svc.Finalize(context.Background(), nil, testDraft(), "order_1", "pay_1")
	if err != nil {
		t.Fatalf("Finalize surfaced a queued gap as an error: %v", err)
	}
	if booking == nil || booking.Reference == "" {
		t.Fatal("no usable booking returned despite captured payment")
	}

	if len(queue.tasks) != 1 {
		t.Fatalf("queued %d tasks, want 1", len(queue.tasks))
	}
	task := queue.tasks[0]
	if task.Type() != tasks.TypeBookingReconcile {
		t.Errorf("task type = %q", task.Type())
	}

	var payload tasks.ReconcilePayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	if payload.Reference != booking.Reference {
		t.Errorf("payload reference = %q, want %q", payload.Reference, booking.Reference)
	}
	if payload.PaymentID != "pay_1" || len(payload.Guests) != 2 {
		t.Errorf("payload = %+v", payload)
	}
}

func TestFinalizeErrorsWhenQueueAlsoFails(t *testing.T) {
	repo := &fakeBookingRepo{createErr: errors.New("connection refused")}
	queue := &fakeEnqueuer{err: errors.New("redis down")}
	svc := newTestPaymentService(&fakeOrders{}, repo, queue)

	if _, err := svc.Finalize(context.Background(), nil, testDraft(), "order_1", "pay_1"); err == nil {
		t.Fatal("Finalize hid a booking lost to both store and queue")
	}
}
