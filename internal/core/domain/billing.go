package domain

import "time"

// CreditTransaction is one entry in the append-only billing ledger.
// Credits are signed: purchases are positive, charges negative.
type CreditTransaction struct {
	ID          int64     `json:"id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Description string    `json:"description"`
	Credits     int       `json:"credits"`
	AmountUSD   float64   `json:"amount_usd,omitempty"`
	Status      string    `json:"status"`
}
