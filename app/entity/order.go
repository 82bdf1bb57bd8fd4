package entity

import "time"

// Order mirrors the last-known state of a Razorpay order. The provider is
// authoritative; rows are refreshed on create, re-fetch, or webhook.
type Order struct {
	ID string

	Amount     int64
	AmountPaid int64
	AmountDue  int64
	Currency   string

	Receipt  *string
	Status   string
	Attempts int32
	Notes    map[string]string

	CreatedAt time.Time
	UpdatedAt time.Time
}
