package request

// ChatMessageRequest is one dialog turn from the client: free text, a tapped
// option ID, or both (the date picker sends its ID plus the chosen date).
type ChatMessageRequest struct {
	Text     string `json:"text" validate:"required_without=OptionID,max=500"`
	OptionID string `json:"optionId" validate:"max=100"`
}

// PaymentResultRequest reports the outcome of the external checkout.
type PaymentResultRequest struct {
	Status    string `json:"status" validate:"required,oneof=completed cancelled dismissed"`
	OrderID   string `json:"orderId" validate:"required_if=Status completed"`
	PaymentID string `json:"paymentId" validate:"required_if=Status completed"`
	Signature string `json:"signature" validate:"required_if=Status completed"`
}
