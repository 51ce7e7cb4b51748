package adaptor

import (
	"net/http"

	"museum-concierge/internal/usecase"
	"museum-concierge/pkg/utils"

	"go.uber.org/zap"
)

type BookingHandler interface {
	GetMyBookings(w http.ResponseWriter, r *http.Request)
}

type bookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) BookingHandler {
	return &bookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

func (h *bookingHandler) GetMyBookings(w http.ResponseWriter, r *http.Request) {
	identity := utils.GetIdentityFromContext(r.Context())
	if identity == nil {
		utils.ResponseUnauthorized(w, "Sign in required")
		return
	}

	page := utils.ParseInt(r.URL.Query().Get("page"), 1)
	limit := utils.ParseInt(r.URL.Query().Get("limit"), 10)
	if limit > 100 {
		limit = 100
	}

	bookings, err := h.service.GetUserBookings(r.Context(), identity.UID, page, limit)
	if err != nil {
		h.log.Error("Failed to get user bookings",
			zap.Error(err),
			zap.String("uid", identity.UID),
		)
		utils.ResponseInternalError(w, "Something went wrong")
		return
	}
	utils.ResponseSuccess(w, "Bookings retrieved", bookings)
}
