package response

import "time"

type BookingGuestResponse struct {
	Position int    `json:"position"`
	Name     string `json:"name"`
	Gender   string `json:"gender"`
	Age      int    `json:"age"`
}

type BookingResponse struct {
	Reference   string                 `json:"reference"`
	VisitorName string                 `json:"visitorName"`
	TicketType  string                 `json:"ticketType"`
	VisitDate   string                 `json:"visitDate"`
	Quantity    int                    `json:"quantity"`
	TotalAmount float64                `json:"totalAmount"`
	Language    string                 `json:"language"`
	Status      string                 `json:"status"`
	CreatedAt   time.Time              `json:"createdAt"`
	Guests      []BookingGuestResponse `json:"guests,omitempty"`
}
