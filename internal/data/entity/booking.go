package entity

import (
	"time"
)

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking is a finalized, paid ticket purchase. Drafts in progress never reach
// this table; a row exists only after the gateway confirmed the charge.
type Booking struct {
	Base
	Reference      string        `db:"reference"` // visitor-facing, LXM-xxxxx
	UID            string        `db:"uid"`       // identity-provider user id
	VisitorName    string        `db:"visitor_name"`
	TicketType     string        `db:"ticket_type"`
	VisitDate      time.Time     `db:"visit_date"`
	Quantity       int           `db:"quantity"`
	TotalAmount    float64       `db:"total_amount"`
	Language       string        `db:"language"`
	PaymentOrderID string        `db:"payment_order_id"`
	PaymentID      string        `db:"payment_id"`
	Status         BookingStatus `db:"status"`
}
