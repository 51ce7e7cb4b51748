package entity

import (
	"github.com/google/uuid"
)

// Guest is one attendee on a finalized booking. Position preserves the order the
// concierge collected them in.
type Guest struct {
	BaseSimple
	BookingID uuid.UUID `db:"booking_id"`
	Position  int       `db:"position"`
	Name      string    `db:"name"`
	Gender    string    `db:"gender"`
	Age       int       `db:"age"`
}
