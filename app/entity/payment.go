package entity

import "time"

const (
	PaymentStatusCreated    = "created"
	PaymentStatusAuthorized = "authorized"
	PaymentStatusCaptured   = "captured"
	PaymentStatusRefunded   = "refunded"
	PaymentStatusFailed     = "failed"
)

type Payment struct {
	ID      string
	OrderID string

	Amount   int64
	Currency string

	Status      string
	Method      *string
	Description *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
