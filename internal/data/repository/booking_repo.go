package repository

import (
	"context"
	"fmt"
	"time"

	"museum-concierge/internal/data/entity"
	"museum-concierge/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	CreateWithGuests(ctx context.Context, booking *entity.Booking, guests []*entity.Guest) error
	FindByReference(ctx context.Context, reference string) (*entity.Booking, error)
	FindByUID(ctx context.Context, uid string, limit, offset int) ([]*entity.Booking, error)
	CountByUID(ctx context.Context, uid string) (int64, error)
	FindGuests(ctx context.Context, bookingID uuid.UUID) ([]*entity.Guest, error)

	// Business queries
	BookedQuantityForSlot(ctx context.Context, ticketType string, visitDate time.Time) (int, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

// CreateWithGuests persists the booking and its guest list in one transaction.
func (r *bookingRepository) CreateWithGuests(ctx context.Context, booking *entity.Booking, guests []*entity.Guest) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin booking transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	bookingQuery := `
		INSERT INTO bookings (id, reference, uid, visitor_name, ticket_type, visit_date,
			quantity, total_amount, language, payment_order_id, payment_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err = tx.Exec(ctx, bookingQuery,
		booking.ID,
		booking.Reference,
		booking.UID,
		booking.VisitorName,
		booking.TicketType,
		booking.VisitDate,
		booking.Quantity,
		booking.TotalAmount,
		booking.Language,
		booking.PaymentOrderID,
		booking.PaymentID,
		booking.Status,
		booking.CreatedAt,
		booking.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("reference", booking.Reference),
			zap.String("uid", booking.UID),
		)
		return fmt.Errorf("create booking %s: %w", booking.Reference, err)
	}

	guestQuery := `
		INSERT INTO booking_guests (id, booking_id, position, name, gender, age, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	for _, guest := range guests {
		_, err = tx.Exec(ctx, guestQuery,
			guest.ID,
			guest.BookingID,
			guest.Position,
			guest.Name,
			guest.Gender,
			guest.Age,
			guest.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to create booking guest",
				zap.Error(err),
				zap.String("reference", booking.Reference),
				zap.Int("position", guest.Position),
			)
			return fmt.Errorf("create guest %d for booking %s: %w", guest.Position, booking.Reference, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit booking %s: %w", booking.Reference, err)
	}

	return nil
}

func (r *bookingRepository) FindByReference(ctx context.Context, reference string) (*entity.Booking, error) {
	query := `
		SELECT id, reference, uid, visitor_name, ticket_type, visit_date,
			quantity, total_amount, language, payment_order_id, payment_id, status, created_at, updated_at
		FROM bookings
		WHERE reference = $1
	`

	var booking entity.Booking
	err := r.db.QueryRow(ctx, query, reference).Scan(
		&booking.ID,
		&booking.Reference,
		&booking.UID,
		&booking.VisitorName,
		&booking.TicketType,
		&booking.VisitDate,
		&booking.Quantity,
		&booking.TotalAmount,
		&booking.Language,
		&booking.PaymentOrderID,
		&booking.PaymentID,
		&booking.Status,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by reference",
			zap.Error(err),
			zap.String("reference", reference),
		)
		return nil, fmt.Errorf("find booking by reference %s: %w", reference, err)
	}

	return &booking, nil
}

func (r *bookingRepository) FindByUID(ctx context.Context, uid string, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT id, reference, uid, visitor_name, ticket_type, visit_date,
			quantity, total_amount, language, payment_order_id, payment_id, status, created_at, updated_at
		FROM bookings
		WHERE uid = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, uid, limit, offset)
	if err != nil {
		r.log.Error("Failed to find bookings by uid",
			zap.Error(err),
			zap.String("uid", uid),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find bookings by uid %s: %w", uid, err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		var booking entity.Booking
		err := rows.Scan(
			&booking.ID,
			&booking.Reference,
			&booking.UID,
			&booking.VisitorName,
			&booking.TicketType,
			&booking.VisitDate,
			&booking.Quantity,
			&booking.TotalAmount,
			&booking.Language,
			&booking.PaymentOrderID,
			&booking.PaymentID,
			&booking.Status,
			&booking.CreatedAt,
			&booking.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, &booking)
	}

	return bookings, nil
}

func (r *bookingRepository) CountByUID(ctx context.Context, uid string) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE uid = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, uid).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings by uid",
			zap.Error(err),
			zap.String("uid", uid),
		)
		return 0, fmt.Errorf("count bookings by uid %s: %w", uid, err)
	}

	return count, nil
}

func (r *bookingRepository) FindGuests(ctx context.Context, bookingID uuid.UUID) ([]*entity.Guest, error) {
	query := `
		SELECT id, booking_id, position, name, gender, age, created_at
		FROM booking_guests
		WHERE booking_id = $1
		ORDER BY position
	`

	rows, err := r.db.Query(ctx, query, bookingID)
	if err != nil {
		r.log.Error("Failed to find booking guests",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return nil, fmt.Errorf("find guests for booking %s: %w", bookingID.String(), err)
	}
	defer rows.Close()

	var guests []*entity.Guest
	for rows.Next() {
		var guest entity.Guest
		err := rows.Scan(
			&guest.ID,
			&guest.BookingID,
			&guest.Position,
			&guest.Name,
			&guest.Gender,
			&guest.Age,
			&guest.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan guest row", zap.Error(err))
			return nil, fmt.Errorf("scan guest row: %w", err)
		}
		guests = append(guests, &guest)
	}

	return guests, nil
}

// BookedQuantityForSlot sums confirmed guests for a (ticket type, date) slot.
func (r *bookingRepository) BookedQuantityForSlot(ctx context.Context, ticketType string, visitDate time.Time) (int, error) {
	query := `
		SELECT COALESCE(SUM(quantity), 0)
		FROM bookings
		WHERE ticket_type = $1 AND visit_date = $2 AND status = 'confirmed'
	`

	var booked int
	err := r.db.QueryRow(ctx, query, ticketType, visitDate).Scan(&booked)
	if err != nil {
		r.log.Error("Failed to sum booked quantity for slot",
			zap.Error(err),
			zap.String("ticket_type", ticketType),
			zap.String("visit_date", visitDate.Format("2006-01-02")),
		)
		return 0, fmt.Errorf("booked quantity for %s on %s: %w", ticketType, visitDate.Format("2006-01-02"), err)
	}

	return booked, nil
}
