package entity

// TicketType is a bookable museum experience. Capacity is the per-day limit of
// confirmed guests across all bookings; NULL means unconstrained.
type TicketType struct {
	Base
	Name     string  `db:"name"`
	Price    float64 `db:"price"`
	Capacity *int    `db:"capacity"`
	IsActive bool    `db:"is_active"`
}
