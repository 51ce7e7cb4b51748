package wire

import (
	"museum-concierge/internal/adaptor"
	"museum-concierge/pkg/middleware"
	"museum-concierge/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func BookingRoutes(r chi.Router, handler adaptor.BookingHandler, verifier utils.IdentityVerifier, log *zap.Logger) {
	r.Route("/user", func(user chi.Router) {
		user.Use(middleware.Auth(verifier, log))

		user.Get("/bookings", handler.GetMyBookings)
	})
}
