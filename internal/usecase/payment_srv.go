package usecase

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
	"time"

	"museum-concierge/internal/concierge"
	"museum-concierge/internal/data/entity"
	"museum-concierge/internal/data/repository"
	"museum-concierge/internal/tasks"
	"museum-concierge/pkg/utils"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	razorpay "github.com/razorpay/razorpay-go"
	"go.uber.org/zap"
)

// orderCreator is the slice of the gateway SDK the service needs. The
// razorpay order resource satisfies it.
type orderCreator interface {
	Create(data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
}

// taskEnqueuer is the slice of the asynq client the service needs.
type taskEnqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

type PaymentService interface {
	// CreateOrder opens a gateway order for the drafted booking and returns
	// the checkout intent the client needs to launch the widget.
	CreateOrder(ctx context.Context, draft concierge.BookingDraft, identity *utils.Identity) (*concierge.CheckoutIntent, error)

	// VerifySignature checks the gateway's HMAC over "orderID|paymentID".
	VerifySignature(orderID, paymentID, signature string) bool

	// Finalize persists the paid booking. The payment is already captured at
	// this point, so a persistence failure is queued for reconciliation
	// rather than surfaced to the visitor; the returned booking is always
	// usable, and the error reports only an unrecoverable gap.
	Finalize(ctx context.Context, identity *utils.Identity, draft concierge.BookingDraft, orderID, paymentID string) (*entity.Booking, error)
}

type paymentService struct {
	cfg      utils.RazorpayConfig
	bookings repository.BookingRepository
	queue    taskEnqueuer
	log      *zap.Logger

	// newOrders builds a fresh gateway client per attempt so rotated
	// credentials take effect without a restart. Tests swap it out.
	newOrders func() orderCreator
}

func NewPaymentService(cfg utils.RazorpayConfig, bookings repository.BookingRepository, queue taskEnqueuer, log *zap.Logger) PaymentService {
	return &paymentService{
		cfg:      cfg,
		bookings: bookings,
		queue:    queue,
		log:      log.With(zap.String("service", "payment")),
		newOrders: func() orderCreator {
			return razorpay.NewClient(cfg.KeyID, cfg.KeySecret).Order
		},
	}
}

func (s *paymentService) CreateOrder(ctx context.Context, draft concierge.BookingDraft, identity *utils.Identity) (*concierge.CheckoutIntent, error) {
	amount := int64(math.Round(draft.Total * 100)) // rupees to paise

	data := map[string]interface{}{
		"amount":   amount,
		"currency": s.cfg.Currency,
		"receipt":  utils.GenerateReceiptID(),
		"notes": map[string]interface{}{
			"ticket_type": draft.TicketType,
			"visit_date":  draft.Date,
			"quantity":    draft.Quantity,
		},
	}

	body, err := s.newOrders().Create(data, nil)
	if err != nil {
		s.log.Error("Failed to create payment order",
			zap.Error(err),
			zap.String("ticket_type", draft.TicketType),
			zap.Int64("amount", amount),
		)
		return nil, fmt.Errorf("create payment order: %w", err)
	}

	orderID, _ := body["id"].(string)
	if orderID == "" {
		return nil, fmt.Errorf("create payment order: gateway returned no order id")
	}

	intent := &concierge.CheckoutIntent{
		OrderID:     orderID,
		Amount:      amount,
		Currency:    s.cfg.Currency,
		Description: fmt.Sprintf("%s x%d on %s", draft.TicketType, draft.Quantity, draft.Date),
	}
	if identity != nil {
		intent.PrefillName = identity.Name
		intent.PrefillMail = identity.Email
	}

	s.log.Info("Payment order created",
		zap.String("order_id", orderID),
		zap.Int64("amount", amount),
		zap.String("currency", s.cfg.Currency),
	)
	return intent, nil
}

func (s *paymentService) VerifySignature(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(s.cfg.KeySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

func (s *paymentService) Finalize(ctx context.Context, identity *utils.Identity, draft concierge.BookingDraft, orderID, paymentID string) (*entity.Booking, error) {
	visitDate, err := utils.ParseVisitDate(draft.Date)
	if err != nil {
		return nil, fmt.Errorf("finalize booking: %w", err)
	}

	var uid string
	if identity != nil {
		uid = identity.UID
	}

	visitorName := ""
	if len(draft.Guests) > 0 {
		visitorName = draft.Guests[0].Name
	}

	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Reference:      utils.GenerateBookingReference(),
		UID:            uid,
		VisitorName:    visitorName,
		TicketType:     draft.TicketType,
		VisitDate:      visitDate,
		Quantity:       draft.Quantity,
		TotalAmount:    draft.Total,
		Language:       draft.Language,
		PaymentOrderID: orderID,
		PaymentID:      paymentID,
		Status:         entity.BookingStatusConfirmed,
	}

	guests := make([]*entity.Guest, 0, len(draft.Guests))
	for i, g := range draft.Guests {
		guests = append(guests, &entity.Guest{
			BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: now},
			BookingID:  booking.ID,
			Position:   i + 1,
			Name:       g.Name,
			Gender:     g.Gender,
			Age:        g.Age,
		})
	}

	err = s.bookings.CreateWithGuests(ctx, booking, guests)
	if err == nil {
		s.log.Info("Booking finalized",
			zap.String("reference", booking.Reference),
			zap.String("payment_id", paymentID),
		)
		return booking, nil
	}

	if qerr := s.enqueueReconcile(booking, guests); qerr != nil {
		// Payment captured but neither the write nor the queue took it.
		s.log.Error("Reconciliation gap: booking lost to both store and queue",
			zap.Error(err),
			zap.NamedError("enqueue_error", qerr),
			zap.String("reference", booking.Reference),
			zap.String("payment_id", paymentID),
		)
		return booking, fmt.Errorf("finalize booking %s: %w", booking.Reference, qerr)
	}

	s.log.Warn("Reconciliation gap: booking persist failed, queued for retry",
		zap.Error(err),
		zap.String("reference", booking.Reference),
		zap.String("payment_id", paymentID),
	)
	return booking, nil
}

func (s *paymentService) enqueueReconcile(booking *entity.Booking, guests []*entity.Guest) error {
	payload := tasks.ReconcilePayload{
		Reference:      booking.Reference,
		UID:            booking.UID,
		VisitorName:    booking.VisitorName,
		TicketType:     booking.TicketType,
		VisitDate:      booking.VisitDate.Format("2006-01-02"),
		Quantity:       booking.Quantity,
		TotalAmount:    booking.TotalAmount,
		Language:       booking.Language,
		PaymentOrderID: booking.PaymentOrderID,
		PaymentID:      booking.PaymentID,
	}
	for _, g := range guests {
		payload.Guests = append(payload.Guests, tasks.ReconcileGuest{
			Position: g.Position,
			Name:     g.Name,
			Gender:   g.Gender,
			Age:      g.Age,
		})
	}

	task, err := tasks.NewReconcileTask(payload)
	if err != nil {
		return err
	}
	if _, err := s.queue.Enqueue(task); err != nil {
		return fmt.Errorf("enqueue reconcile for %s: %w", booking.Reference, err)
	}
	return nil
}
