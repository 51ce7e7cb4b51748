package wire

import (
	"net/http"

	"museum-concierge/internal/adaptor"
	"museum-concierge/pkg/middleware"
	"museum-concierge/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// SetupRouter builds the HTTP surface: global middleware, health check, and
// the per-domain route groups.
func SetupRouter(handler *adaptor.Handler, verifier utils.IdentityVerifier, log *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger(log))
	r.Use(middleware.Recover(log))
	r.Use(middleware.CORS())

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		utils.ResponseSuccess(w, "OK", nil)
	})

	r.Route("/api", func(api chi.Router) {
		ChatRoutes(api, handler.Chat, verifier, log)
		TicketRoutes(api, handler.Ticket)
		BookingRoutes(api, handler.Booking, verifier, log)
	})

	return r
}
