package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"museum-concierge/internal/data/entity"
	"museum-concierge/internal/data/repository"
	"museum-concierge/pkg/utils"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// TypeBookingReconcile re-persists a booking whose payment was captured but
// whose database write failed during the dialog turn.
const TypeBookingReconcile = "booking:reconcile"

type ReconcileGuest struct {
	Position int    `json:"position"`
	Name     string `json:"name"`
	Gender   string `json:"gender"`
	Age      int    `json:"age"`
}

// ReconcilePayload carries everything needed to rebuild the booking row.
type ReconcilePayload struct {
	Reference      string           `json:"reference"`
	UID            string           `json:"uid"`
	VisitorName    string           `json:"visitorName"`
	TicketType     string           `json:"ticketType"`
	VisitDate      string           `json:"visitDate"` // ISO calendar date
	Quantity       int              `json:"quantity"`
	TotalAmount    float64          `json:"totalAmount"`
	Language       string           `json:"language"`
	PaymentOrderID string           `json:"paymentOrderId"`
	PaymentID      string           `json:"paymentId"`
	Guests         []ReconcileGuest `json:"guests"`
}

// NewReconcileTask builds the retry task. The first attempt runs shortly
// after enqueue so a transient outage heals quickly; asynq's backoff covers
// the rest.
func NewReconcileTask(payload ReconcilePayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal reconcile payload %s: %w", payload.Reference, err)
	}
	return asynq.NewTask(TypeBookingReconcile, data,
		asynq.MaxRetry(10),
		asynq.ProcessIn(30*time.Second),
	), nil
}

// ReconcileHandler processes booking reconcile tasks. It is idempotent: a
// booking already on file makes the task a no-op.
type ReconcileHandler struct {
	repo repository.BookingRepository
	log  *zap.Logger
}

func NewReconcileHandler(repo repository.BookingRepository, log *zap.Logger) *ReconcileHandler {
	return &ReconcileHandler{
		repo: repo,
		log:  log.With(zap.String("task", TypeBookingReconcile)),
	}
}

func (h *ReconcileHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload ReconcilePayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal reconcile payload: %v: %w", err, asynq.SkipRetry)
	}

	existing, err := h.repo.FindByReference(ctx, payload.Reference)
	if err != nil {
		return fmt.Errorf("check existing booking %s: %w", payload.Reference, err)
	}
	if existing != nil {
		h.log.Info("Booking already reconciled", zap.String("reference", payload.Reference))
		return nil
	}

	visitDate, err := utils.ParseVisitDate(payload.VisitDate)
	if err != nil {
		return fmt.Errorf("parse visit date for %s: %v: %w", payload.Reference, err, asynq.SkipRetry)
	}

	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Reference:      payload.Reference,
		UID:            payload.UID,
		VisitorName:    payload.VisitorName,
		TicketType:     payload.TicketType,
		VisitDate:      visitDate,
		Quantity:       payload.Quantity,
		TotalAmount:    payload.TotalAmount,
		Language:       payload.Language,
		PaymentOrderID: payload.PaymentOrderID,
		PaymentID:      payload.PaymentID,
		Status:         entity.BookingStatusConfirmed,
	}

	guests := make([]*entity.Guest, 0, len(payload.Guests))
	for _, g := range payload.Guests {
		guests = append(guests, &entity.Guest{
			BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: now},
			BookingID:  booking.ID,
			Position:   g.Position,
			Name:       g.Name,
			Gender:     g.Gender,
			Age:        g.Age,
		})
	}

	if err := h.repo.CreateWithGuests(ctx, booking, guests); err != nil {
		h.log.Warn("Reconcile attempt failed",
			zap.Error(err),
			zap.String("reference", payload.Reference),
		)
		return err
	}

	h.log.Info("Booking reconciled",
		zap.String("reference", payload.Reference),
		zap.String("payment_id", payload.PaymentID),
	)
	return nil
}

// StartWorker runs the asynq server in the background and returns it for
// shutdown.
func StartWorker(redis utils.RedisConfig, repo repository.BookingRepository, log *zap.Logger) *asynq.Server {
	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     redis.Addr,
			Password: redis.Password,
			DB:       redis.DB,
		},
		asynq.Config{Concurrency: 5},
	)

	mux := asynq.NewServeMux()
	mux.Handle(TypeBookingReconcile, NewReconcileHandler(repo, log))

	go func() {
		if err := srv.Run(mux); err != nil {
			log.Error("Task worker stopped", zap.Error(err))
		}
	}()

	return srv
}
