package entity

import "time"

// WebhookEvent is an append-only log row, written before any side effect of
// the event is applied. The provider-assigned event id is the dedup key.
type WebhookEvent struct {
	ID        string
	Entity    string
	EventType string
	AccountID *string

	PayloadJSON string

	SignatureVerified bool
	Processed         bool

	CreatedAt time.Time
}
