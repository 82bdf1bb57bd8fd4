package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/apexneural-PraveenJogi/razorpay/app/entity"
)

func newWebhookServiceForTest(gateway *fakeGateway, eventRepo *serviceWebhookEventRepo, paymentRepo *servicePaymentRepo) *WebhookService {
	return NewWebhookService(
		gateway,
		eventRepo,
		&serviceOrderRepo{},
		paymentRepo,
		&serviceSubscriptionRepo{},
		&serviceInvoiceRepo{},
	)
}

func paymentAuthorizedEvent(eventID, paymentID string) []byte {
	return []byte(fmt.Sprintf(`{
		"id": %q,
		"entity": "event",
		"account_id": "acc_001",
		"event": "payment.authorized",
		"payload": {
			"payment": {
				"entity": {
					"id": %q,
					"entity": "payment",
					"order_id": "order_001",
					"amount": 10000,
					"currency": "INR",
					"status": "authorized"
				}
			}
		}
	}`, eventID, paymentID))
}

func TestProcessEventDuplicateDeliveryAppliedOnce(t *testing.T) {
	gateway := newFakeGateway()
	eventRepo := &serviceWebhookEventRepo{}
	paymentRepo := &servicePaymentRepo{}
	svc := newWebhookServiceForTest(gateway, eventRepo, paymentRepo)

	body := paymentAuthorizedEvent("evt_001", "pay_001")

	first, err := svc.ProcessEvent(context.Background(), body, "sig")
	if err != nil {
		t.Fatalf("first delivery failed: %v", err)
	}
	if first.Duplicate {
		t.Fatal("first delivery flagged as duplicate")
	}

	second, err := svc.ProcessEvent(context.Background(), body, "sig")
	if err != nil {
		t.Fatalf("second delivery failed: %v", err)
	}
	if !second.Duplicate {
		t.Fatal("second delivery not flagged as duplicate")
	}

	if len(eventRepo.events) != 1 {
		t.Fatalf("expected one stored event, got %d", len(eventRepo.events))
	}
	if len(gateway.captureCalls) != 1 {
		t.Fatalf("expected one capture across both deliveries, got %d", len(gateway.captureCalls))
	}
}

func TestProcessEventBadSignatureRecordedAndRejected(t *testing.T) {
	gateway := newFakeGateway()
	gateway.webhookOK = false
	eventRepo := &serviceWebhookEventRepo{}
	paymentRepo := &servicePaymentRepo{}
	svc := newWebhookServiceForTest(gateway, eventRepo, paymentRepo)

	_, err := svc.ProcessEvent(context.Background(), paymentAuthorizedEvent("evt_001", "pay_001"), "bad-sig")
	if !errors.Is(err, ErrSignatureInvalid) {
		t.Fatalf("expected ErrSignatureInvalid, got %v", err)
	}

	if len(eventRepo.events) != 1 {
		t.Fatalf("expected rejected event to be recorded, got %d", len(eventRepo.events))
	}
	if eventRepo.events[0].SignatureVerified {
		t.Fatal("expected signature_verified=false on rejected event")
	}
	if len(paymentRepo.payments) != 0 {
		t.Fatalf("expected no mirror writes, got %d", len(paymentRepo.payments))
	}
}

func TestProcessEventAuthorizedPaymentIsCapturedAndMirrored(t *testing.T) {
	gateway := newFakeGateway()
	eventRepo := &serviceWebhookEventRepo{}
	paymentRepo := &servicePaymentRepo{}
	svc := newWebhookServiceForTest(gateway, eventRepo, paymentRepo)

	result, err := svc.ProcessEvent(context.Background(), paymentAuthorizedEvent("evt_001", "pay_001"), "sig")
	if err != nil {
		t.Fatalf("process event failed: %v", err)
	}
	if result.EventType != "payment.authorized" {
		t.Fatalf("unexpected event type %q", result.EventType)
	}

	mirrored, _ := paymentRepo.FindByID(context.Background(), "pay_001")
	if mirrored == nil {
		t.Fatal("expected mirrored payment row")
	}
	if mirrored.Status != entity.PaymentStatusCaptured {
		t.Fatalf("expected captured status, got %q", mirrored.Status)
	}
	if !eventRepo.events[0].Processed {
		t.Fatal("expected event marked processed")
	}
}

func TestProcessEventCaptureFailureMirrorsAuthorized(t *testing.T) {
	gateway := newFakeGateway()
	gateway.captureErr = errors.New("capture unavailable")
	eventRepo := &serviceWebhookEventRepo{}
	paymentRepo := &servicePaymentRepo{}
	svc := newWebhookServiceForTest(gateway, eventRepo, paymentRepo)

	if _, err := svc.ProcessEvent(context.Background(), paymentAuthorizedEvent("evt_001", "pay_001"), "sig"); err != nil {
		t.Fatalf("process event failed: %v", err)
	}

	mirrored, _ := paymentRepo.FindByID(context.Background(), "pay_001")
	if mirrored == nil {
		t.Fatal("expected mirrored payment row")
	}
	if mirrored.Status != entity.PaymentStatusAuthorized {
		t.Fatalf("expected authorized status kept, got %q", mirrored.Status)
	}
}

func TestProcessEventMissingIDFallsBackToEntityKey(t *testing.T) {
	gateway := newFakeGateway()
	eventRepo := &serviceWebhookEventRepo{}
	paymentRepo := &servicePaymentRepo{}
	svc := newWebhookServiceForTest(gateway, eventRepo, paymentRepo)

	body := []byte(`{
		"entity": "event",
		"event": "payment.captured",
		"payload": {
			"payment": {
				"entity": {"id": "pay_777", "status": "captured", "amount": 100, "currency": "INR"}
			}
		}
	}`)

	result, err := svc.ProcessEvent(context.Background(), body, "sig")
	if err != nil {
		t.Fatalf("process event failed: %v", err)
	}
	if result.EventID != "payment.captured:pay_777" {
		t.Fatalf("unexpected fallback event id %q", result.EventID)
	}

	dup, err := svc.ProcessEvent(context.Background(), body, "sig")
	if err != nil {
		t.Fatalf("duplicate delivery failed: %v", err)
	}
	if !dup.Duplicate {
		t.Fatal("expected fallback key to dedupe the second delivery")
	}
}

func TestProcessEventUnknownEventIsAcknowledged(t *testing.T) {
	gateway := newFakeGateway()
	eventRepo := &serviceWebhookEventRepo{}
	svc := newWebhookServiceForTest(gateway, eventRepo, &servicePaymentRepo{})

	body := []byte(`{"id": "evt_900", "entity": "event", "event": "refund.processed", "payload": {}}`)

	result, err := svc.ProcessEvent(context.Background(), body, "sig")
	if err != nil {
		t.Fatalf("expected unknown event to be acknowledged, got %v", err)
	}
	if result.EventID != "evt_900" {
		t.Fatalf("unexpected event id %q", result.EventID)
	}
	if !eventRepo.events[0].Processed {
		t.Fatal("expected unknown event marked processed")
	}
}

func TestProcessEventSubscriptionActivatedMirrorsStatus(t *testing.T) {
	gateway := newFakeGateway()
	eventRepo := &serviceWebhookEventRepo{}
	subscriptionRepo := &serviceSubscriptionRepo{}
	svc := NewWebhookService(gateway, eventRepo, &serviceOrderRepo{}, &servicePaymentRepo{}, subscriptionRepo, &serviceInvoiceRepo{})

	body := []byte(`{
		"id": "evt_sub",
		"entity": "event",
		"event": "subscription.activated",
		"payload": {
			"subscription": {
				"entity": {"id": "sub_001", "plan_id": "plan_001", "status": "active", "total_count": 12}
			}
		}
	}`)

	if _, err := svc.ProcessEvent(context.Background(), body, "sig"); err != nil {
		t.Fatalf("process event failed: %v", err)
	}

	mirrored, _ := subscriptionRepo.FindByID(context.Background(), "sub_001")
	if mirrored == nil {
		t.Fatal("expected mirrored subscription row")
	}
	if mirrored.Status != entity.SubscriptionStatusActive {
		t.Fatalf("expected active status, got %q", mirrored.Status)
	}
}

func TestProcessEventMalformedPayloadIsInvalid(t *testing.T) {
	svc := newWebhookServiceForTest(newFakeGateway(), &serviceWebhookEventRepo{}, &servicePaymentRepo{})

	_, err := svc.ProcessEvent(context.Background(), []byte("not json"), "sig")
	if !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}
