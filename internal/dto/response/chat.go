package response

// ChatOption mirrors a tappable choice offered by the concierge.
type ChatOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type ChatMessage struct {
	ID      string       `json:"id"`
	Origin  string       `json:"origin"`
	Content string       `json:"content"`
	Options []ChatOption `json:"options,omitempty"`
}

// CheckoutResponse tells the client how to open the external payment widget.
type CheckoutResponse struct {
	OrderID     string `json:"orderId"`
	Amount      int64  `json:"amount"` // smallest currency unit
	Currency    string `json:"currency"`
	Description string `json:"description"`
	PrefillName string `json:"prefillName,omitempty"`
	PrefillMail string `json:"prefillEmail,omitempty"`
}

// ChatTurnResponse is the outcome of one dialog turn: only the messages the
// turn appended, plus the resulting state.
type ChatTurnResponse struct {
	SessionID   string            `json:"sessionId"`
	State       string            `json:"state"`
	Open        bool              `json:"open"`
	InputLocked bool              `json:"inputLocked"`
	Messages    []ChatMessage     `json:"messages"`
	Checkout    *CheckoutResponse `json:"checkout,omitempty"`
}

// ChatSessionResponse is the full session snapshot for opening or polling.
type ChatSessionResponse struct {
	SessionID   string        `json:"sessionId"`
	State       string        `json:"state"`
	Open        bool          `json:"open"`
	InputLocked bool          `json:"inputLocked"`
	Messages    []ChatMessage `json:"messages"`
}
