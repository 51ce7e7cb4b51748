package response

// TicketTypeResponse is one bookable experience. A nil Available means the
// experience has no capacity cap.
type TicketTypeResponse struct {
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Available *int    `json:"available,omitempty"`
}
