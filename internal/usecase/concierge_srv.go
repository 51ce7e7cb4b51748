package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"museum-concierge/internal/concierge"
	"museum-concierge/internal/dto/request"
	"museum-concierge/internal/dto/response"
	"museum-concierge/internal/i18n"
	"museum-concierge/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrSessionClosed    = errors.New("session is closed")
	ErrNoPendingPayment = errors.New("no pending payment")
	ErrBadSignature     = errors.New("invalid payment signature")
)

/// ConciergeService owns the live sessions and orchestrates the dialog: it
// runs the machine on snapshots, applies results under the session lock, and
// drives the payment handshake and the timed close sequences.
type ConciergeService interface {
	OpenSession(identity *utils.Identity) *response.ChatSessionResponse
	GetSession(id uuid.UUID) (*response.ChatSessionResponse, error)
	HandleMessage(ctx context.Context, id uuid.UUID, identity *utils.Identity, req *request.ChatMessageRequest) (*response.ChatTurnResponse, error)
	HandlePaymentResult(ctx context.Context, id uuid.UUID, req *request.PaymentResultRequest) (*response.ChatTurnResponse, error)
	Restart(id uuid.UUID) (*response.ChatSessionResponse, error)
	SetOpen(id uuid.UUID, open bool) (*response.ChatSessionResponse, error)
	Stop()
}

type conciergeService struct {
	machine *concierge.Machine
	payment PaymentService
	cfg     utils.ConciergeConfig
	log     *zap.Logger

	mu       sync.RWMutex
	sessions map[uuid.UUID]*concierge.Session

	stop chan struct{}
	once sync.Once
}

func NewConciergeService(machine *concierge.Machine, payment PaymentService, cfg utils.ConciergeConfig, log *zap.Logger) ConciergeService {
	svc := &conciergeService{
		machine:  machine,
		payment:  payment,
		cfg:      cfg,
		log:      log.With(zap.String("service", "concierge")),
		sessions: make(map[uuid.UUID]*concierge.Session),
		stop:     make(chan struct{}),
	}
	go svc.sweepIdle()
	return svc
}

func (svc *conciergeService) OpenSession(identity *utils.Identity) *response.ChatSessionResponse {
	s := concierge.NewSession(identity)

	svc.mu.Lock()
	svc.sessions[s.ID] = s
	svc.mu.Unlock()

	svc.log.Info("Session opened",
		zap.String("session_id", s.ID.String()),
		zap.Bool("signed_in", identity != nil),
	)

	s.Mu.Lock()
	defer s.Mu.Unlock()
	return sessionResponse(s)
}

func (svc *conciergeService) GetSession(id uuid.UUID) (*response.ChatSessionResponse, error) {
	s, err := svc.session(id)
	if err != nil {
		return nil, err
	}

	s.Mu.Lock()
	defer s.Mu.Unlock()
	s.LastSeen = time.Now()
	return sessionResponse(s), nil
}

func (svc *conciergeService) HandleMessage(ctx context.Context, id uuid.UUID, identity *utils.Identity, req *request.ChatMessageRequest) (*response.ChatTurnResponse, error) {
	s, err := svc.session(id)
	if err != nil {
		return nil, err
	}

	s.Mu.Lock()
	s.LastSeen = time.Now()

	if identity != nil {
		changed := s.Identity == nil || s.Identity.UID != identity.UID
		s.Identity = identity
		if changed && s.State != concierge.StateGreeting {
			// Identity switched mid-booking: the draft no longer belongs
			// to the visitor at the keyboard.
			s.CancelCloser()
			s.Reset(s.Draft.Language)
			s.Open = true
			resp := turnResponse(s, s.Messages, nil)
			s.Mu.Unlock()
			return resp, nil
		}
	}

	if !s.Open {
		s.Mu.Unlock()
		return nil, ErrSessionClosed
	}
	if s.TurnBusy {
		resp := turnResponse(s, nil, nil)
		s.Mu.Unlock()
		return resp, nil
	}

	s.TurnBusy = true
	epoch := s.Epoch
	view := concierge.View{
		State:       s.State,
		Draft:       s.Draft,
		Guest:       s.Guest,
		SignedIn:    s.Identity != nil,
		LastOptions: s.LastBotOptions(),
	}
	s.Mu.Unlock()

	res := svc.machine.Advance(ctx, view, concierge.Input{
		Text:     req.Text,
		OptionID: req.OptionID,
	})

	s.Mu.Lock()
	s.TurnBusy = false
	if s.Epoch != epoch || res.Dropped {
		resp := turnResponse(s, nil, nil)
		s.Mu.Unlock()
		return resp, nil
	}

	var appended []concierge.Message
	if res.UserEcho != "" {
		echo := concierge.NewUserMessage(res.UserEcho)
		s.Append(echo)
		appended = append(appended, echo)
	}
	s.Append(res.Messages...)
	appended = append(appended, res.Messages...)
	s.State = res.State
	s.Draft = res.Draft
	s.Guest = res.Guest
	s.CancelCloser()

	var checkout *response.CheckoutResponse
	if res.BeginPayment {
		checkout, appended = svc.beginPayment(ctx, s, epoch, appended)
	}
	if res.Declined {
		svc.scheduleClose(s, svc.cfg.CancelNoticeDelay, svc.cfg.CancelCloseDelay)
	}

	resp := turnResponse(s, appended, checkout)
	s.Mu.Unlock()
	return resp, nil
}

// beginPayment creates the gateway order while the turn stays busy. Caller
// holds the session lock on entry and exit; it is released around the
// network call.
func (svc *conciergeService) beginPayment(ctx context.Context, s *concierge.Session, epoch uint64, appended []concierge.Message) (*response.CheckoutResponse, []concierge.Message) {
	draft := s.Draft
	identity := s.Identity
	s.TurnBusy = true
	s.Mu.Unlock()

	intent, err := svc.payment.CreateOrder(ctx, draft, identity)

	s.Mu.Lock()
	s.TurnBusy = false
	if s.Epoch != epoch {
		return nil, appended
	}

	if err != nil {
		// Charge never happened; abort the attempt and apologize.
		failure := concierge.NewBotMessage(i18n.Resolve(s.Draft.Language, i18n.KeyError, nil))
		s.Append(failure)
		s.State = concierge.StateGreeting
		return nil, append(appended, failure)
	}

	s.Pending = &concierge.PendingOrder{
		OrderID:  intent.OrderID,
		Amount:   intent.Amount,
		Currency: intent.Currency,
		Epoch:    epoch,
	}
	return &response.CheckoutResponse{
		OrderID:     intent.OrderID,
		Amount:      intent.Amount,
		Currency:    intent.Currency,
		Description: intent.Description,
		PrefillName: intent.PrefillName,
		PrefillMail: intent.PrefillMail,
	}, appended
}

func (svc *conciergeService) HandlePaymentResult(ctx context.Context, id uuid.UUID, req *request.PaymentResultRequest) (*response.ChatTurnResponse, error) {
	s, err := svc.session(id)
	if err != nil {
		return nil, err
	}

	s.Mu.Lock()
	s.LastSeen = time.Now()

	if s.State != concierge.StatePaying || s.Pending == nil {
		s.Mu.Unlock()
		return nil, ErrNoPendingPayment
	}

	lang := s.Draft.Language
	epoch := s.Epoch

	if req.Status != "completed" {
		// Cancelled or dismissed: no charge happened.
		s.Pending = nil
		note := concierge.NewBotMessage(i18n.Resolve(lang, i18n.KeyCancelled, nil))
		s.Append(note)
		s.State = concierge.StateGreeting
		svc.scheduleClose(s, svc.cfg.CancelNoticeDelay, svc.cfg.CancelCloseDelay)
		resp := turnResponse(s, []concierge.Message{note}, nil)
		s.Mu.Unlock()

		svc.log.Info("Payment abandoned",
			zap.String("session_id", id.String()),
			zap.String("status", req.Status),
		)
		return resp, nil
	}

	if req.OrderID != s.Pending.OrderID {
		s.Mu.Unlock()
		return nil, fmt.Errorf("%w: unknown order", ErrNoPendingPayment)
	}
	if !svc.payment.VerifySignature(req.OrderID, req.PaymentID, req.Signature) {
		s.Mu.Unlock()
		svc.log.Warn("Payment signature rejected",
			zap.String("session_id", id.String()),
			zap.String("order_id", req.OrderID),
		)
		return nil, ErrBadSignature
	}

	draft := s.Draft
	identity := s.Identity
	s.TurnBusy = true
	s.Mu.Unlock()

	booking, err := svc.payment.Finalize(ctx, identity, draft, req.OrderID, req.PaymentID)

	s.Mu.Lock()
	s.TurnBusy = false
	if s.Epoch != epoch {
		resp := turnResponse(s, nil, nil)
		s.Mu.Unlock()
		return resp, nil
	}
	s.Pending = nil
	var turnMsgs []concierge.Message
	if err != nil {
		// The charge is captured but the booking reached neither the store
		// nor the retry queue. The visitor is told; the gap is already
		// logged inside Finalize for manual reconciliation.
		svc.log.Error("Finalize reported an unrecoverable gap",
			zap.Error(err),
			zap.String("session_id", id.String()),
		)
		turnMsgs = []concierge.Message{
			concierge.NewBotMessage(i18n.Resolve(lang, i18n.KeyError, nil)),
		}
	} else {
		turnMsgs = []concierge.Message{
			concierge.NewBotMessage(i18n.Resolve(lang, i18n.KeySuccess, nil)),
			concierge.NewBotMessage(fmt.Sprintf("%s: %s",
				i18n.Resolve(lang, i18n.KeyConfirmed, nil), booking.Reference)),
		}
	}
	s.Append(turnMsgs...)
	s.State = concierge.StateFinished
	svc.scheduleClose(s, svc.cfg.FinishNoticeDelay, svc.cfg.FinishCloseDelay)

	resp := turnResponse(s, turnMsgs, nil)
	s.Mu.Unlock()

	if err == nil {
		svc.log.Info("Booking completed",
			zap.String("session_id", id.String()),
			zap.String("reference", booking.Reference),
		)
	}
	return resp, nil
}

func (svc *conciergeService) Restart(id uuid.UUID) (*response.ChatSessionResponse, error) {
	s, err := svc.session(id)
	if err != nil {
		return nil, err
	}

	s.Mu.Lock()
	defer s.Mu.Unlock()
	s.LastSeen = time.Now()
	s.CancelCloser()
	s.Reset(s.Draft.Language)
	s.Open = true
	return sessionResponse(s), nil
}

func (svc *conciergeService) SetOpen(id uuid.UUID, open bool) (*response.ChatSessionResponse, error) {
	s, err := svc.session(id)
	if err != nil {
		return nil, err
	}

	s.Mu.Lock()
	defer s.Mu.Unlock()
	s.LastSeen = time.Now()
	s.Open = open
	return sessionResponse(s), nil
}

func (svc *conciergeService) Stop() {
	svc.once.Do(func() { close(svc.stop) })
}

func (svc *conciergeService) session(id uuid.UUID) (*concierge.Session, error) {
	svc.mu.RLock()
	s, ok := svc.sessions[id]
	svc.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// scheduleClose runs the timed wind-down: notice, close, reset. The steps
// cancel as a unit when the visitor acts again, and each step re-checks the
// epoch so a restart orphans the whole chain. Caller holds the session lock.
func (svc *conciergeService) scheduleClose(s *concierge.Session, noticeAfter, closeAfter time.Duration) {
	lang := s.Draft.Language
	epoch := s.Epoch

	seq := concierge.StartSequence(
		concierge.Step{After: noticeAfter, Run: func() {
			s.Mu.Lock()
			defer s.Mu.Unlock()
			if s.Epoch != epoch {
				return
			}
			s.Append(concierge.NewBotMessage(i18n.Resolve(lang, i18n.KeyReopen, nil)))
		}},
		concierge.Step{After: closeAfter, Run: func() {
			s.Mu.Lock()
			defer s.Mu.Unlock()
			if s.Epoch != epoch {
				return
			}
			s.Open = false
		}},
		concierge.Step{After: svc.cfg.ResetDelay, Run: func() {
			s.Mu.Lock()
			defer s.Mu.Unlock()
			if s.Epoch != epoch {
				return
			}
			s.Reset(lang)
		}},
	)
	s.SetCloser(seq)
}

// sweepIdle evicts sessions that have gone quiet past the TTL.
func (svc *conciergeService) sweepIdle() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-svc.stop:
			return
		case <-ticker.C:
		}

		cutoff := time.Now().Add(-svc.cfg.SessionIdleTTL)
		svc.mu.Lock()
		for id, s := range svc.sessions {
			s.Mu.Lock()
			idle := s.LastSeen.Before(cutoff)
			if idle {
				s.CancelCloser()
			}
			s.Mu.Unlock()
			if idle {
				delete(svc.sessions, id)
				svc.log.Info("Idle session evicted", zap.String("session_id", id.String()))
			}
		}
		svc.mu.Unlock()
	}
}

func toChatMessages(msgs []concierge.Message) []response.ChatMessage {
	out := make([]response.ChatMessage, 0, len(msgs))
	for _, m := range msgs {
		cm := response.ChatMessage{
			ID:      m.ID,
			Origin:  string(m.Origin),
			Content: m.Content,
		}
		for _, o := range m.Options {
			cm.Options = append(cm.Options, response.ChatOption{ID: o.ID, Label: o.Label})
		}
		out = append(out, cm)
	}
	return out
}

// Caller holds the session lock.
func sessionResponse(s *concierge.Session) *response.ChatSessionResponse {
	return &response.ChatSessionResponse{
		SessionID:   s.ID.String(),
		State:       string(s.State),
		Open:        s.Open,
		InputLocked: s.InputLocked(),
		Messages:    toChatMessages(s.Messages),
	}
}

// Caller holds the session lock.
func turnResponse(s *concierge.Session, appended []concierge.Message, checkout *response.CheckoutResponse) *response.ChatTurnResponse {
	return &response.ChatTurnResponse{
		SessionID:   s.ID.String(),
		State:       string(s.State),
		Open:        s.Open,
		InputLocked: s.InputLocked(),
		Messages:    toChatMessages(appended),
		Checkout:    checkout,
	}
}
