package adaptor

import (
	"net/http"

	"museum-concierge/internal/usecase"
	"museum-concierge/pkg/utils"

	"go.uber.org/zap"
)

type TicketHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type ticketHandler struct {
	service usecase.AvailabilityService
	log     *zap.Logger
}

func NewTicketHandler(service usecase.AvailabilityService, log *zap.Logger) TicketHandler {
	return &ticketHandler{
		service: service,
		log:     log.With(zap.String("handler", "ticket")),
	}
}

// List returns the active experiences. An optional ?date=YYYY-MM-DD query
// switches Available from static capacity to that day's remaining spots.
func (h *ticketHandler) List(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date != "" {
		parsed, err := utils.ParseVisitDate(date)
		if err != nil {
			utils.ResponseBadRequest(w, "Invalid date", nil)
			return
		}
		date = parsed.Format("2006-01-02")
	}

	types, err := h.service.ListTicketTypes(r.Context(), date)
	if err != nil {
		h.log.Error("Failed to list ticket types", zap.Error(err))
		utils.ResponseInternalError(w, "Something went wrong")
		return
	}
	utils.ResponseSuccess(w, "Ticket types retrieved", types)
}
