package entity

import "time"

// SubscriptionPayment mirrors one billing-cycle invoice of a subscription.
type SubscriptionPayment struct {
	ID             string
	SubscriptionID string
	InvoiceID      *string
	PaymentID      *string

	Amount   int64
	Currency string

	Status      string
	Description *string

	BillingPeriodStart *time.Time
	BillingPeriodEnd   *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
