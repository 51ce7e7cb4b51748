package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"museum-concierge/internal/dto/request"
	"museum-concierge/internal/usecase"
	"museum-concierge/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ChatHandler interface {
	OpenSession(w http.ResponseWriter, r *http.Request)
	GetSession(w http.ResponseWriter, r *http.Request)
	Message(w http.ResponseWriter, r *http.Request)
	PaymentResult(w http.ResponseWriter, r *http.Request)
	Restart(w http.ResponseWriter, r *http.Request)
	Close(w http.ResponseWriter, r *http.Request)
	Reopen(w http.ResponseWriter, r *http.Request)
}

type chatHandler struct {
	service usecase.ConciergeService
	log     *zap.Logger
}

func NewChatHandler(service usecase.ConciergeService, log *zap.Logger) ChatHandler {
	return &chatHandler{
		service: service,
		log:     log.With(zap.String("handler", "chat")),
	}
}

func (h *chatHandler) OpenSession(w http.ResponseWriter, r *http.Request) {
	identity := utils.GetIdentityFromContext(r.Context())
	session := h.service.OpenSession(identity)
	utils.ResponseCreated(w, "Session opened", session)
}

func (h *chatHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}

	session, err := h.service.GetSession(id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	utils.ResponseSuccess(w, "Session retrieved", session)
}

func (h *chatHandler) Message(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}

	var req request.ChatMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}
	if errs := utils.ValidateStruct(req); errs != nil {
		utils.ResponseBadRequest(w, "Validation failed", errs)
		return
	}

	identity := utils.GetIdentityFromContext(r.Context())
	turn, err := h.service.HandleMessage(r.Context(), id, identity, &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	utils.ResponseSuccess(w, "Message processed", turn)
}

func (h *chatHandler) PaymentResult(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}

	var req request.PaymentResultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}
	if errs := utils.ValidateStruct(req); errs != nil {
		utils.ResponseBadRequest(w, "Validation failed", errs)
		return
	}

	turn, err := h.service.HandlePaymentResult(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	utils.ResponseSuccess(w, "Payment result processed", turn)
}

func (h *chatHandler) Restart(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}

	session, err := h.service.Restart(id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	utils.ResponseSuccess(w, "Session restarted", session)
}

func (h *chatHandler) Close(w http.ResponseWriter, r *http.Request) {
	h.setOpen(w, r, false, "Session closed")
}

func (h *chatHandler) Reopen(w http.ResponseWriter, r *http.Request) {
	h.setOpen(w, r, true, "Session reopened")
}

func (h *chatHandler) setOpen(w http.ResponseWriter, r *http.Request, open bool, message string) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}

	session, err := h.service.SetOpen(id, open)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	utils.ResponseSuccess(w, message, session)
}

func (h *chatHandler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrSessionNotFound):
		utils.ResponseNotFound(w, "Session not found")
	case errors.Is(err, usecase.ErrSessionClosed):
		utils.ResponseConflict(w, "Session is closed")
	case errors.Is(err, usecase.ErrNoPendingPayment):
		utils.ResponseConflict(w, "No pending payment for this session")
	case errors.Is(err, usecase.ErrBadSignature):
		utils.ResponseBadRequest(w, "Payment verification failed", nil)
	default:
		h.log.Error("Unhandled service error", zap.Error(err))
		utils.ResponseInternalError(w, "Something went wrong")
	}
}

func sessionID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "sessionID"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid session ID", nil)
		return uuid.Nil, false
	}
	return id, true
}
