package service

import (
	"strings"
	"time"

	"github.com/apexneural-PraveenJogi/razorpay/app/entity"
	"github.com/apexneural-PraveenJogi/razorpay/app/razorpay"
)

// Mirror construction: remote entities are the source of truth, local rows
// cache their last-known state for listing and reporting.

func orderFromRemote(remote *razorpay.Order, now time.Time) *entity.Order {
	return &entity.Order{
		ID:         remote.ID,
		Amount:     remote.Amount,
		AmountPaid: remote.AmountPaid,
		AmountDue:  remote.AmountDue,
		Currency:   remote.Currency,
		Receipt:    normalizeOptionalString(remote.Receipt),
		Status:     defaultString(remote.Status, "created"),
		Attempts:   remote.Attempts,
		Notes:      map[string]string(remote.Notes),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func paymentFromRemote(remote *razorpay.Payment, now time.Time) *entity.Payment {
	return &entity.Payment{
		ID:          remote.ID,
		OrderID:     remote.OrderID,
		Amount:      remote.Amount,
		Currency:    defaultString(remote.Currency, "INR"),
		Status:      defaultString(strings.ToLower(remote.Status), entity.PaymentStatusCreated),
		Method:      normalizeOptionalString(remote.Method),
		Description: normalizeOptionalString(remote.Description),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func subscriptionFromRemote(remote *razorpay.Subscription, now time.Time) *entity.Subscription {
	quantity := remote.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	return &entity.Subscription{
		ID:           remote.ID,
		PlanID:       normalizeOptionalString(remote.PlanID),
		CustomerID:   normalizeOptionalString(remote.CustomerID),
		Status:       defaultString(strings.ToLower(remote.Status), entity.SubscriptionStatusCreated),
		Quantity:     quantity,
		CurrentStart: timeFromUnix(remote.CurrentStart),
		CurrentEnd:   timeFromUnix(remote.CurrentEnd),
		ChargeAt:     timeFromUnix(remote.ChargeAt),
		StartAt:      timeFromUnix(remote.StartAt),
		EndAt:        timeFromUnix(remote.EndAt),
		EndedAt:      timeFromUnix(remote.EndedAt),
		AuthAttempts: remote.AuthAttempts,
		TotalCount:   normalizeOptionalInt32(remote.TotalCount),
		PaidCount:    remote.PaidCount,
		Notes:        map[string]string(remote.Notes),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func subscriptionPaymentFromInvoice(remote *razorpay.Invoice, now time.Time) *entity.SubscriptionPayment {
	return &entity.SubscriptionPayment{
		ID:                 remote.ID,
		SubscriptionID:     remote.SubscriptionID,
		InvoiceID:          normalizeOptionalString(remote.ID),
		PaymentID:          normalizeOptionalString(remote.PaymentID),
		Amount:             remote.Amount,
		Currency:           defaultString(remote.Currency, "INR"),
		Status:             defaultString(strings.ToLower(remote.Status), "issued"),
		Description:        normalizeOptionalString(remote.Description),
		BillingPeriodStart: timeFromUnix(remote.BillingPeriodStart),
		BillingPeriodEnd:   timeFromUnix(remote.BillingPeriodEnd),
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

func timeFromUnix(ts int64) *time.Time {
	if ts <= 0 {
		return nil
	}
	t := time.Unix(ts, 0).UTC()
	return &t
}

func normalizeOptionalString(v string) *string {
	trimmed := strings.TrimSpace(v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func normalizeOptionalInt32(v int32) *int32 {
	if v <= 0 {
		return nil
	}
	n := v
	return &n
}

func defaultString(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}
