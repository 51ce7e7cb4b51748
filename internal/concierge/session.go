package concierge

import (
	"sync"
	"time"

	"museum-concierge/internal/i18n"
	"museum-concierge/pkg/utils"

	"github.com/google/uuid"
)

// State is the dialog position of a session. Exactly one state is active.
type State string

const (
	StateGreeting       State = "GREETING"
	StateLanguage       State = "LANGUAGE"
	StateTicketType     State = "TICKET_TYPE"
	StateDate           State = "DATE"
	StateQuantity       State = "QUANTITY"
	StateGuestName      State = "GUEST_NAME"
	StateGuestGender    State = "GUEST_GENDER"
	StateGuestAge       State = "GUEST_AGE"
	StatePaymentConfirm State = "PAYMENT_CONFIRM"
	StatePaying         State = "PAYING"
	StateFinished       State = "FINISHED"
)

type Origin string

const (
	OriginBot  Origin = "bot"
	OriginUser Origin = "user"
)

// Option is a tappable choice. Selection matches the stable ID, never the
// localized label.
type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type Message struct {
	ID      string   `json:"id"`
	Origin  Origin   `json:"origin"`
	Content string   `json:"content"`
	Options []Option `json:"options,omitempty"`
}

// GuestRecord is one collected attendee. Gender holds the canonical value
// (the English label), not the localized display text.
type GuestRecord struct {
	Name   string `json:"name"`
	Gender string `json:"gender"`
	Age    int    `json:"age"`
}

// GuestProgress tracks the guest-collection sub-loop: the 0-based index of the
// guest being collected and the scratch record staged across name/gender/age.
type GuestProgress struct {
	Index   int
	Scratch GuestRecord
}

// BookingDraft accumulates everything collected during one booking attempt.
// It is never persisted; only the finalized booking is.
type BookingDraft struct {
	Language       string
	TicketType     string
	UnitPrice      float64
	Date           string // ISO calendar date
	AvailableSpots int    // capacity snapshot for (TicketType, Date); 0 = not fetched
	Quantity       int
	Total          float64
	Guests         []GuestRecord
}

// NewBookingDraft returns a zeroed draft in the default language.
func NewBookingDraft() BookingDraft {
	return BookingDraft{Language: i18n.Default}
}

// PendingOrder is the payment order awaiting a checkout outcome.
type PendingOrder struct {
	OrderID  string
	Amount   int64 // smallest currency unit
	Currency string
	Epoch    uint64
}

// CheckoutIntent tells the client how to open the external checkout.
type CheckoutIntent struct {
	OrderID     string `json:"orderId"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	Description string `json:"description"`
	PrefillName string `json:"prefillName,omitempty"`
	PrefillMail string `json:"prefillEmail,omitempty"`
}

// Session is one live conversation. All fields are guarded by Mu except where
// noted; the epoch counter lets results of in-flight network calls be discarded
// after a restart.
type Session struct {
	Mu sync.Mutex

	ID       uuid.UUID
	Identity *utils.Identity
	State    State
	Draft    BookingDraft
	Guest    GuestProgress
	Messages []Message
	Open     bool
	Epoch    uint64
	Pending  *PendingOrder
	LastSeen time.Time

	// TurnBusy serializes turns: a second input arriving while a turn's
	// network call is outstanding is silently dropped.
	TurnBusy bool

	// closer is the running auto-close sequence, if any.
	closer *Sequence
}

func NewSession(identity *utils.Identity) *Session {
	s := &Session{
		ID:       uuid.New(),
		Identity: identity,
		State:    StateGreeting,
		Draft:    NewBookingDraft(),
		Open:     true,
		LastSeen: time.Now(),
	}
	s.Messages = []Message{welcomeMessage(i18n.Default)}
	return s
}

// Reset discards the draft and dialog position. The welcome message is
// rendered in the given language so the farewell locale carries over to the
// greeting, as the draft itself resets to the default language.
// Caller holds Mu.
func (s *Session) Reset(welcomeLanguage string) {
	if welcomeLanguage == "" {
		welcomeLanguage = i18n.Default
	}
	s.State = StateGreeting
	s.Draft = NewBookingDraft()
	s.Guest = GuestProgress{}
	s.Pending = nil
	s.Epoch++
	s.Messages = []Message{welcomeMessage(welcomeLanguage)}
}

// SetCloser replaces the running auto-close sequence, cancelling the previous
// one as a unit. Caller holds Mu.
func (s *Session) SetCloser(seq *Sequence) {
	if s.closer != nil {
		s.closer.Cancel()
	}
	s.closer = seq
}

// CancelCloser stops any running auto-close sequence. Caller holds Mu.
func (s *Session) CancelCloser() {
	if s.closer != nil {
		s.closer.Cancel()
		s.closer = nil
	}
}

// LastBotOptions returns the option set of the most recent bot message. Only
// this set is authoritative for the next input.
func (s *Session) LastBotOptions() []Option {
	for i := len(s.Messages) - 1; i >= 0; i-- {
		if s.Messages[i].Origin == OriginBot {
			return s.Messages[i].Options
		}
	}
	return nil
}

// InputLocked reports whether free text is currently rejected: the last bot
// message carries options and the session is not collecting a quantity.
func (s *Session) InputLocked() bool {
	return len(s.LastBotOptions()) > 0 && s.State != StateQuantity
}

// Append adds messages to the log. Caller holds Mu.
func (s *Session) Append(msgs ...Message) {
	s.Messages = append(s.Messages, msgs...)
}

func welcomeMessage(language string) Message {
	return NewBotMessage(
		i18n.Resolve(language, i18n.KeyWelcome, nil),
		Option{ID: OptStart, Label: i18n.Resolve(language, i18n.KeyStart, nil)},
	)
}

func NewBotMessage(content string, options ...Option) Message {
	return Message{
		ID:      uuid.NewString(),
		Origin:  OriginBot,
		Content: content,
		Options: options,
	}
}

func NewUserMessage(content string) Message {
	return Message{
		ID:      uuid.NewString(),
		Origin:  OriginUser,
		Content: content,
	}
}
