package models

// PaymentStatus is the approval state of a subscription payment
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "PENDING"
	PaymentApproved PaymentStatus = "APPROVED"
	PaymentRejected PaymentStatus = "REJECTED"
)

// Payment is a subscription payment record
type Payment struct {
	ID            string        `json:"id,omitempty"`
	UserID        string        `json:"userId"`
	Plan          Plan          `json:"plan"`
	Amount        float64       `json:"amount"`
	Method        string        `json:"method"`
	SenderNumber  string        `json:"senderNumber"`
	TransactionID string        `json:"transactionId"`
	Status        PaymentStatus `json:"status"`
	CreatedAt     string        `json:"createdAt,omitempty"`
}

// PaymentSubmission represents a manual mobile-money payment form
type PaymentSubmission struct {
	Plan          Plan    `json:"plan"`
	Amount        float64 `json:"amount"`
	Method        string  `json:"method"`
	SenderNumber  string  `json:"senderNumber"`
	TransactionID string  `json:"transactionId"`
}

// GatewayConfirmation is a payment already verified by a payment gateway
type GatewayConfirmation struct {
	UserID        string  `json:"userId"`
	Plan          Plan    `json:"plan"`
	Amount        float64 `json:"amount"`
	Method        string  `json:"method"`
	TransactionID string  `json:"transactionId"`
}

// Quote is the price of a plan for a billing cycle
type Quote struct {
	Plan    Plan    `json:"plan"`
	Name    string  `json:"name"`
	Billing string  `json:"billing"`
	Amount  float64 `json:"amount"`
}
