package service

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/apexneural-PraveenJogi/razorpay/app/entity"
	"github.com/apexneural-PraveenJogi/razorpay/app/factory"
	"github.com/apexneural-PraveenJogi/razorpay/app/razorpay"
)

type subscriptionGateway interface {
	CreatePlan(ctx context.Context, req *razorpay.CreatePlanRequest) (*razorpay.Plan, error)
	FetchPlan(ctx context.Context, planID string) (*razorpay.Plan, error)
	ListPlans(ctx context.Context, count, skip int32) (*razorpay.PlanList, error)
	CreateSubscription(ctx context.Context, req *razorpay.CreateSubscriptionRequest) (*razorpay.Subscription, error)
	FetchSubscription(ctx context.Context, subscriptionID string) (*razorpay.Subscription, error)
	ListSubscriptions(ctx context.Context, count, skip int32, planID, customerID string) (*razorpay.SubscriptionList, error)
	CancelSubscription(ctx context.Context, subscriptionID string, cancelAtCycleEnd bool) (*razorpay.Subscription, error)
	PauseSubscription(ctx context.Context, subscriptionID, pauseAt string) (*razorpay.Subscription, error)
	ResumeSubscription(ctx context.Context, subscriptionID, resumeAt string) (*razorpay.Subscription, error)
	ListInvoices(ctx context.Context, subscriptionID string) (*razorpay.InvoiceList, error)
	FetchInvoice(ctx context.Context, invoiceID string) (*razorpay.Invoice, error)
}

type subscriptionRepository interface {
	Upsert(ctx context.Context, subscription *entity.Subscription) error
	UpdateStatus(ctx context.Context, id, status string, updatedAt time.Time) error
	FindByID(ctx context.Context, id string) (*entity.Subscription, error)
	List(ctx context.Context, limit, offset int32) ([]*entity.Subscription, error)
}

type subscriptionPaymentRepository interface {
	FindByID(ctx context.Context, id string) (*entity.SubscriptionPayment, error)
	ListBySubscription(ctx context.Context, subscriptionID string, limit, offset int32) ([]*entity.SubscriptionPayment, error)
}

type SubscriptionService struct {
	gateway          subscriptionGateway
	subscriptionRepo subscriptionRepository
	invoiceRepo      subscriptionPaymentRepository
	logger           logrus.FieldLogger
}

func NewSubscriptionService(gateway subscriptionGateway, subscriptionRepo subscriptionRepository, invoiceRepo subscriptionPaymentRepository) *SubscriptionService {
	return &SubscriptionService{
		gateway:          gateway,
		subscriptionRepo: subscriptionRepo,
		invoiceRepo:      invoiceRepo,
		logger:           factory.NewModuleLogger("subscriptions-service"),
	}
}

type CreatePlanInput struct {
	Period      string
	Interval    int32
	Name        string
	Amount      int64
	Currency    string
	Description string
	Notes       map[string]string
}

func (s *SubscriptionService) CreatePlan(ctx context.Context, input CreatePlanInput) (*razorpay.Plan, error) {
	if input.Amount <= 0 || strings.TrimSpace(input.Name) == "" || input.Interval <= 0 {
		return nil, ErrInvalidRequest
	}
	period := strings.ToLower(strings.TrimSpace(input.Period))
	switch period {
	case "daily", "weekly", "monthly", "yearly":
	default:
		return nil, ErrInvalidRequest
	}

	currency := strings.ToUpper(strings.TrimSpace(input.Currency))
	if currency == "" {
		currency = "INR"
	}

	return s.gateway.CreatePlan(ctx, &razorpay.CreatePlanRequest{
		Period:   period,
		Interval: input.Interval,
		Item: razorpay.PlanItem{
			Name:        input.Name,
			Amount:      input.Amount,
			Currency:    currency,
			Description: input.Description,
		},
		Notes: input.Notes,
	})
}

func (s *SubscriptionService) GetPlan(ctx context.Context, planID string) (*razorpay.Plan, error) {
	if strings.TrimSpace(planID) == "" {
		return nil, ErrInvalidRequest
	}
	return s.gateway.FetchPlan(ctx, planID)
}

func (s *SubscriptionService) ListPlans(ctx context.Context, count, skip int32) (*razorpay.PlanList, error) {
	if count <= 0 {
		count = 10
	}
	if skip < 0 {
		skip = 0
	}
	return s.gateway.ListPlans(ctx, count, skip)
}

type CreateSubscriptionInput struct {
	PlanID         string
	TotalCount     int32
	Quantity       int32
	CustomerNotify bool
	StartAt        int64
	Notes          map[string]string
}

func (s *SubscriptionService) CreateSubscription(ctx context.Context, input CreateSubscriptionInput) (*razorpay.Subscription, error) {
	if strings.TrimSpace(input.PlanID) == "" || input.TotalCount <= 0 {
		return nil, ErrInvalidRequest
	}

	quantity := input.Quantity
	if quantity <= 0 {
		quantity = 1
	}
	notify := int32(0)
	if input.CustomerNotify {
		notify = 1
	}

	remote, err := s.gateway.CreateSubscription(ctx, &razorpay.CreateSubscriptionRequest{
		PlanID:         input.PlanID,
		TotalCount:     input.TotalCount,
		Quantity:       quantity,
		CustomerNotify: notify,
		StartAt:        input.StartAt,
		Notes:          input.Notes,
	})
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := s.subscriptionRepo.Upsert(ctx, subscriptionFromRemote(remote, now)); err != nil {
		s.logger.WithError(err).WithField("subscription_id", remote.ID).Warn("Failed to mirror subscription")
	}

	return remote, nil
}

func (s *SubscriptionService) GetSubscription(ctx context.Context, subscriptionID string) (*razorpay.Subscription, error) {
	if strings.TrimSpace(subscriptionID) == "" {
		return nil, ErrInvalidRequest
	}
	return s.gateway.FetchSubscription(ctx, subscriptionID)
}

func (s *SubscriptionService) ListSubscriptions(ctx context.Context, count, skip int32, planID, customerID string) (*razorpay.SubscriptionList, error) {
	if count <= 0 {
		count = 10
	}
	if skip < 0 {
		skip = 0
	}
	return s.gateway.ListSubscriptions(ctx, count, skip, planID, customerID)
}

func (s *SubscriptionService) CancelSubscription(ctx context.Context, subscriptionID string, cancelAtCycleEnd bool) (*razorpay.Subscription, error) {
	if strings.TrimSpace(subscriptionID) == "" {
		return nil, ErrInvalidRequest
	}

	remote, err := s.gateway.CancelSubscription(ctx, subscriptionID, cancelAtCycleEnd)
	if err != nil {
		return nil, err
	}

	s.mirrorStatus(ctx, remote)
	return remote, nil
}

func (s *SubscriptionService) PauseSubscription(ctx context.Context, subscriptionID string) (*razorpay.Subscription, error) {
	if strings.TrimSpace(subscriptionID) == "" {
		return nil, ErrInvalidRequest
	}

	remote, err := s.gateway.PauseSubscription(ctx, subscriptionID, "now")
	if err != nil {
		return nil, err
	}

	s.mirrorStatus(ctx, remote)
	return remote, nil
}

func (s *SubscriptionService) ResumeSubscription(ctx context.Context, subscriptionID string) (*razorpay.Subscription, error) {
	if strings.TrimSpace(subscriptionID) == "" {
		return nil, ErrInvalidRequest
	}

	remote, err := s.gateway.ResumeSubscription(ctx, subscriptionID, "now")
	if err != nil {
		return nil, err
	}

	s.mirrorStatus(ctx, remote)
	return remote, nil
}

func (s *SubscriptionService) mirrorStatus(ctx context.Context, remote *razorpay.Subscription) {
	now := time.Now().UTC()
	if err := s.subscriptionRepo.UpdateStatus(ctx, remote.ID, strings.ToLower(remote.Status), now); err != nil {
		s.logger.WithError(err).WithField("subscription_id", remote.ID).Warn("Failed to mirror subscription status")
	}
}

func (s *SubscriptionService) GetSubscriptionFromDB(ctx context.Context, subscriptionID string) (*entity.Subscription, error) {
	subscription, err := s.subscriptionRepo.FindByID(ctx, subscriptionID)
	if err != nil {
		return nil, err
	}
	if subscription == nil {
		return nil, ErrNotFound
	}
	return subscription, nil
}

func (s *SubscriptionService) ListSubscriptionsFromDB(ctx context.Context, limit, offset int32) ([]*entity.Subscription, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return s.subscriptionRepo.List(ctx, limit, offset)
}

func (s *SubscriptionService) ListSubscriptionInvoices(ctx context.Context, subscriptionID string) (*razorpay.InvoiceList, error) {
	if strings.TrimSpace(subscriptionID) == "" {
		return nil, ErrInvalidRequest
	}
	return s.gateway.ListInvoices(ctx, subscriptionID)
}

func (s *SubscriptionService) GetInvoice(ctx context.Context, invoiceID string) (*razorpay.Invoice, error) {
	if strings.TrimSpace(invoiceID) == "" {
		return nil, ErrInvalidRequest
	}
	return s.gateway.FetchInvoice(ctx, invoiceID)
}

func (s *SubscriptionService) GetInvoiceFromDB(ctx context.Context, invoiceID string) (*entity.SubscriptionPayment, error) {
	item, err := s.invoiceRepo.FindByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrNotFound
	}
	return item, nil
}

func (s *SubscriptionService) ListSubscriptionInvoicesFromDB(ctx context.Context, subscriptionID string, limit, offset int32) ([]*entity.SubscriptionPayment, error) {
	if strings.TrimSpace(subscriptionID) == "" {
		return nil, ErrInvalidRequest
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return s.invoiceRepo.ListBySubscription(ctx, subscriptionID, limit, offset)
}
