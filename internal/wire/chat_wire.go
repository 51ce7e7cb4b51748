package wire

import (
	"museum-concierge/internal/adaptor"
	"museum-concierge/pkg/middleware"
	"museum-concierge/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ChatRoutes accept anonymous visitors: the dialog itself asks for sign-in
// before anything is paid for. The rate limit keeps one client from flooding
// the dialog endpoints.
func ChatRoutes(r chi.Router, handler adaptor.ChatHandler, verifier utils.IdentityVerifier, log *zap.Logger) {
	r.Route("/chat", func(chat chi.Router) {
		chat.Use(middleware.OptionalAuth(verifier, log))
		chat.Use(middleware.RateLimit())

		chat.Post("/session", handler.OpenSession)
		chat.Route("/{sessionID}", func(session chi.Router) {
			session.Get("/", handler.GetSession)
			session.Post("/message", handler.Message)
			session.Post("/payment-result", handler.PaymentResult)
			session.Post("/restart", handler.Restart)
			session.Post("/close", handler.Close)
			session.Post("/open", handler.Reopen)
		})
	})
}
