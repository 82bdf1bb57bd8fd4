package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/apexneural-PraveenJogi/razorpay/app/entity"
	"github.com/apexneural-PraveenJogi/razorpay/app/factory"
	"github.com/apexneural-PraveenJogi/razorpay/app/razorpay"
	"github.com/apexneural-PraveenJogi/razorpay/app/repository"
)

type webhookGateway interface {
	VerifyWebhookSignature(body []byte, signature string) bool
	CapturePayment(ctx context.Context, paymentID string, amount int64, currency string) (*razorpay.Payment, error)
}

type webhookEventRepository interface {
	Create(ctx context.Context, event *entity.WebhookEvent) error
	MarkProcessed(ctx context.Context, id string) error
	List(ctx context.Context, limit, offset int32) ([]*entity.WebhookEvent, error)
}

type webhookOrderRepository interface {
	Upsert(ctx context.Context, order *entity.Order) error
}

type webhookPaymentRepository interface {
	Upsert(ctx context.Context, payment *entity.Payment) error
}

type webhookSubscriptionRepository interface {
	Upsert(ctx context.Context, subscription *entity.Subscription) error
}

type webhookInvoiceRepository interface {
	Upsert(ctx context.Context, payment *entity.SubscriptionPayment) error
}

type WebhookService struct {
	gateway          webhookGateway
	eventRepo        webhookEventRepository
	orderRepo        webhookOrderRepository
	paymentRepo      webhookPaymentRepository
	subscriptionRepo webhookSubscriptionRepository
	invoiceRepo      webhookInvoiceRepository
	logger           logrus.FieldLogger
}

func NewWebhookService(
	gateway webhookGateway,
	eventRepo webhookEventRepository,
	orderRepo webhookOrderRepository,
	paymentRepo webhookPaymentRepository,
	subscriptionRepo webhookSubscriptionRepository,
	invoiceRepo webhookInvoiceRepository,
) *WebhookService {
	return &WebhookService{
		gateway:          gateway,
		eventRepo:        eventRepo,
		orderRepo:        orderRepo,
		paymentRepo:      paymentRepo,
		subscriptionRepo: subscriptionRepo,
		invoiceRepo:      invoiceRepo,
		logger:           factory.NewModuleLogger("webhooks-service"),
	}
}

type webhookEnvelope struct {
	ID        string `json:"id"`
	Entity    string `json:"entity"`
	AccountID string `json:"account_id"`
	Event     string `json:"event"`
	Payload   struct {
		Payment struct {
			Entity json.RawMessage `json:"entity"`
		} `json:"payment"`
		Order struct {
			Entity json.RawMessage `json:"entity"`
		} `json:"order"`
		Subscription struct {
			Entity json.RawMessage `json:"entity"`
		} `json:"subscription"`
		Invoice struct {
			Entity json.RawMessage `json:"entity"`
		} `json:"invoice"`
	} `json:"payload"`
}

type ProcessEventResult struct {
	EventID   string
	EventType string
	Duplicate bool
}

// ProcessEvent verifies the webhook signature, records the raw event exactly
// once keyed by the provider event id, applies the event to the mirror rows,
// and marks the event processed. A duplicate delivery is acknowledged without
// re-applying the event.
func (s *WebhookService) ProcessEvent(ctx context.Context, body []byte, signature string) (*ProcessEventResult, error) {
	var envelope webhookEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: malformed webhook payload", ErrInvalidRequest)
	}
	if envelope.Event == "" {
		return nil, fmt.Errorf("%w: webhook payload missing event", ErrInvalidRequest)
	}

	verified := s.gateway.VerifyWebhookSignature(body, signature)
	eventID := s.eventID(&envelope)
	now := time.Now().UTC()

	record := &entity.WebhookEvent{
		ID:                eventID,
		Entity:            defaultString(envelope.Entity, "event"),
		EventType:         envelope.Event,
		AccountID:         normalizeOptionalString(envelope.AccountID),
		PayloadJSON:       string(body),
		SignatureVerified: verified,
		CreatedAt:         now,
	}

	if !verified {
		if err := s.eventRepo.Create(ctx, record); err != nil && !errors.Is(err, repository.ErrWebhookEventExists) {
			s.logger.WithError(err).WithField("event_id", eventID).Warn("Failed to record rejected webhook event")
		}
		s.logger.WithField("event_id", eventID).WithField("event", envelope.Event).Warn("Webhook signature verification failed")
		return nil, ErrSignatureInvalid
	}

	if err := s.eventRepo.Create(ctx, record); err != nil {
		if errors.Is(err, repository.ErrWebhookEventExists) {
			s.logger.WithField("event_id", eventID).Info("Skipping duplicate webhook event")
			return &ProcessEventResult{EventID: eventID, EventType: envelope.Event, Duplicate: true}, nil
		}
		return nil, err
	}

	if err := s.applyEvent(ctx, &envelope); err != nil {
		// The provider retries on non-2xx responses; a handler failure is
		// logged and the delivery acknowledged so the row stays unprocessed
		// for inspection rather than triggering a redelivery storm.
		s.logger.WithError(err).WithField("event_id", eventID).WithField("event", envelope.Event).Error("Failed to apply webhook event")
		return &ProcessEventResult{EventID: eventID, EventType: envelope.Event}, nil
	}

	if err := s.eventRepo.MarkProcessed(ctx, eventID); err != nil {
		s.logger.WithError(err).WithField("event_id", eventID).Warn("Failed to mark webhook event processed")
	}

	return &ProcessEventResult{EventID: eventID, EventType: envelope.Event}, nil
}

// eventID prefers the provider-assigned event id; older webhook versions omit
// it, so the event name plus the affected entity id stands in as the
// idempotence key.
func (s *WebhookService) eventID(envelope *webhookEnvelope) string {
	if envelope.ID != "" {
		return envelope.ID
	}

	entityID := ""
	for _, raw := range []json.RawMessage{
		envelope.Payload.Payment.Entity,
		envelope.Payload.Order.Entity,
		envelope.Payload.Subscription.Entity,
		envelope.Payload.Invoice.Entity,
	} {
		if len(raw) == 0 {
			continue
		}
		var ref struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(raw, &ref); err == nil && ref.ID != "" {
			entityID = ref.ID
			break
		}
	}

	return envelope.Event + ":" + entityID
}

func (s *WebhookService) applyEvent(ctx context.Context, envelope *webhookEnvelope) error {
	now := time.Now().UTC()

	switch {
	case strings.HasPrefix(envelope.Event, "payment."):
		return s.applyPaymentEvent(ctx, envelope, now)
	case strings.HasPrefix(envelope.Event, "order."):
		return s.applyOrderEvent(ctx, envelope, now)
	case strings.HasPrefix(envelope.Event, "subscription."):
		return s.applySubscriptionEvent(ctx, envelope, now)
	case strings.HasPrefix(envelope.Event, "invoice."):
		return s.applyInvoiceEvent(ctx, envelope, now)
	default:
		s.logger.WithField("event", envelope.Event).Info("Ignoring unhandled webhook event")
		return nil
	}
}

func (s *WebhookService) applyPaymentEvent(ctx context.Context, envelope *webhookEnvelope, now time.Time) error {
	if len(envelope.Payload.Payment.Entity) == 0 {
		return fmt.Errorf("payment event %s carries no payment entity", envelope.Event)
	}

	var remote razorpay.Payment
	if err := json.Unmarshal(envelope.Payload.Payment.Entity, &remote); err != nil {
		return fmt.Errorf("decode payment entity: %w", err)
	}

	if envelope.Event == "payment.authorized" && strings.EqualFold(remote.Status, entity.PaymentStatusAuthorized) {
		captured, err := s.gateway.CapturePayment(ctx, remote.ID, remote.Amount, remote.Currency)
		if err != nil {
			s.logger.WithError(err).WithField("payment_id", remote.ID).Warn("Failed to capture authorized payment from webhook")
		} else {
			remote = *captured
		}
	}

	return s.paymentRepo.Upsert(ctx, paymentFromRemote(&remote, now))
}

func (s *WebhookService) applyOrderEvent(ctx context.Context, envelope *webhookEnvelope, now time.Time) error {
	if len(envelope.Payload.Order.Entity) == 0 {
		return fmt.Errorf("order event %s carries no order entity", envelope.Event)
	}

	var remote razorpay.Order
	if err := json.Unmarshal(envelope.Payload.Order.Entity, &remote); err != nil {
		return fmt.Errorf("decode order entity: %w", err)
	}

	return s.orderRepo.Upsert(ctx, orderFromRemote(&remote, now))
}

func (s *WebhookService) applySubscriptionEvent(ctx context.Context, envelope *webhookEnvelope, now time.Time) error {
	if len(envelope.Payload.Subscription.Entity) == 0 {
		return fmt.Errorf("subscription event %s carries no subscription entity", envelope.Event)
	}

	var remote razorpay.Subscription
	if err := json.Unmarshal(envelope.Payload.Subscription.Entity, &remote); err != nil {
		return fmt.Errorf("decode subscription entity: %w", err)
	}

	return s.subscriptionRepo.Upsert(ctx, subscriptionFromRemote(&remote, now))
}

func (s *WebhookService) applyInvoiceEvent(ctx context.Context, envelope *webhookEnvelope, now time.Time) error {
	if len(envelope.Payload.Invoice.Entity) == 0 {
		return fmt.Errorf("invoice event %s carries no invoice entity", envelope.Event)
	}

	var remote razorpay.Invoice
	if err := json.Unmarshal(envelope.Payload.Invoice.Entity, &remote); err != nil {
		return fmt.Errorf("decode invoice entity: %w", err)
	}
	if remote.SubscriptionID == "" {
		s.logger.WithField("invoice_id", remote.ID).Info("Ignoring invoice event without subscription")
		return nil
	}

	return s.invoiceRepo.Upsert(ctx, subscriptionPaymentFromInvoice(&remote, now))
}

func (s *WebhookService) ListEvents(ctx context.Context, limit, offset int32) ([]*entity.WebhookEvent, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return s.eventRepo.List(ctx, limit, offset)
}
