package entity

import "time"

const (
	SubscriptionStatusCreated       = "created"
	SubscriptionStatusAuthenticated = "authenticated"
	SubscriptionStatusActive        = "active"
	SubscriptionStatusPending       = "pending"
	SubscriptionStatusHalted        = "halted"
	SubscriptionStatusCancelled     = "cancelled"
	SubscriptionStatusCompleted     = "completed"
	SubscriptionStatusExpired       = "expired"
	SubscriptionStatusPaused        = "paused"
)

type Subscription struct {
	ID         string
	PlanID     *string
	CustomerID *string

	Status   string
	Quantity int32

	CurrentStart *time.Time
	CurrentEnd   *time.Time
	ChargeAt     *time.Time
	StartAt      *time.Time
	EndAt        *time.Time
	EndedAt      *time.Time

	AuthAttempts int32
	TotalCount   *int32
	PaidCount    int32

	Notes map[string]string

	CreatedAt time.Time
	UpdatedAt time.Time
}
