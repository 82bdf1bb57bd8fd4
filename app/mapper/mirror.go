package mapper

import (
	"time"

	"github.com/apexneural-PraveenJogi/razorpay/app/entity"
	"github.com/apexneural-PraveenJogi/razorpay/app/types"
)

func OrderToResponse(item *entity.Order) *types.Order {
	if item == nil {
		return nil
	}

	return &types.Order{
		ID:         item.ID,
		Amount:     item.Amount,
		AmountPaid: item.AmountPaid,
		AmountDue:  item.AmountDue,
		Currency:   item.Currency,
		Receipt:    derefString(item.Receipt),
		Status:     item.Status,
		Attempts:   item.Attempts,
		Notes:      cloneNotes(item.Notes),
		CreatedAt:  formatTime(item.CreatedAt),
		UpdatedAt:  formatTime(item.UpdatedAt),
	}
}

func OrdersToResponse(items []*entity.Order) []*types.Order {
	result := make([]*types.Order, 0, len(items))
	for _, item := range items {
		result = append(result, OrderToResponse(item))
	}
	return result
}

func PaymentToResponse(item *entity.Payment) *types.Payment {
	if item == nil {
		return nil
	}

	return &types.Payment{
		ID:          item.ID,
		OrderID:     item.OrderID,
		Amount:      item.Amount,
		Currency:    item.Currency,
		Status:      item.Status,
		Method:      derefString(item.Method),
		Description: derefString(item.Description),
		CreatedAt:   formatTime(item.CreatedAt),
		UpdatedAt:   formatTime(item.UpdatedAt),
	}
}

func PaymentsToResponse(items []*entity.Payment) []*types.Payment {
	result := make([]*types.Payment, 0, len(items))
	for _, item := range items {
		result = append(result, PaymentToResponse(item))
	}
	return result
}

func SubscriptionToResponse(item *entity.Subscription) *types.Subscription {
	if item == nil {
		return nil
	}

	return &types.Subscription{
		ID:           item.ID,
		PlanID:       derefString(item.PlanID),
		CustomerID:   derefString(item.CustomerID),
		Status:       item.Status,
		Quantity:     item.Quantity,
		CurrentStart: formatOptionalTime(item.CurrentStart),
		CurrentEnd:   formatOptionalTime(item.CurrentEnd),
		ChargeAt:     formatOptionalTime(item.ChargeAt),
		StartAt:      formatOptionalTime(item.StartAt),
		EndAt:        formatOptionalTime(item.EndAt),
		EndedAt:      formatOptionalTime(item.EndedAt),
		AuthAttempts: item.AuthAttempts,
		TotalCount:   derefInt32(item.TotalCount),
		PaidCount:    item.PaidCount,
		Notes:        cloneNotes(item.Notes),
		CreatedAt:    formatTime(item.CreatedAt),
		UpdatedAt:    formatTime(item.UpdatedAt),
	}
}

func SubscriptionsToResponse(items []*entity.Subscription) []*types.Subscription {
	result := make([]*types.Subscription, 0, len(items))
	for _, item := range items {
		result = append(result, SubscriptionToResponse(item))
	}
	return result
}

func SubscriptionPaymentToResponse(item *entity.SubscriptionPayment) *types.SubscriptionPayment {
	if item == nil {
		return nil
	}

	return &types.SubscriptionPayment{
		ID:                 item.ID,
		SubscriptionID:     item.SubscriptionID,
		InvoiceID:          derefString(item.InvoiceID),
		PaymentID:          derefString(item.PaymentID),
		Amount:             item.Amount,
		Currency:           item.Currency,
		Status:             item.Status,
		Description:        derefString(item.Description),
		BillingPeriodStart: formatOptionalTime(item.BillingPeriodStart),
		BillingPeriodEnd:   formatOptionalTime(item.BillingPeriodEnd),
		CreatedAt:          formatTime(item.CreatedAt),
		UpdatedAt:          formatTime(item.UpdatedAt),
	}
}

func SubscriptionPaymentsToResponse(items []*entity.SubscriptionPayment) []*types.SubscriptionPayment {
	result := make([]*types.SubscriptionPayment, 0, len(items))
	for _, item := range items {
		result = append(result, SubscriptionPaymentToResponse(item))
	}
	return result
}

func WebhookEventToResponse(item *entity.WebhookEvent) *types.WebhookEvent {
	if item == nil {
		return nil
	}

	return &types.WebhookEvent{
		ID:                item.ID,
		EventType:         item.EventType,
		AccountID:         derefString(item.AccountID),
		SignatureVerified: item.SignatureVerified,
		Processed:         item.Processed,
		CreatedAt:         formatTime(item.CreatedAt),
	}
}

func WebhookEventsToResponse(items []*entity.WebhookEvent) []*types.WebhookEvent {
	result := make([]*types.WebhookEvent, 0, len(items))
	for _, item := range items {
		result = append(result, WebhookEventToResponse(item))
	}
	return result
}

func derefString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func derefInt32(v *int32) int32 {
	if v == nil {
		return 0
	}
	return *v
}

func cloneNotes(src map[string]string) map[string]string {
	if len(src) == 0 {
		return map[string]string{}
	}
	dst := make(map[string]string, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}
