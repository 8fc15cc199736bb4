package model

// Payee is the billed client, read from the payee directory.
type Payee struct {
	ID          int32  `json:"id"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	Country     string `json:"country,omitempty"`
}

// FeeResult is the outcome of a payment-method fee computation.
type FeeResult struct {
	FeeCents   Amount `json:"fee_cents"`
	TotalCents Amount `json:"total_cents"`
}
