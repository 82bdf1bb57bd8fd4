package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/apexneural-PraveenJogi/razorpay/app/entity"
	"github.com/apexneural-PraveenJogi/razorpay/app/razorpay"
)

func (g *fakeGateway) CreatePlan(_ context.Context, req *razorpay.CreatePlanRequest) (*razorpay.Plan, error) {
	plan := &razorpay.Plan{
		ID:        fmt.Sprintf("plan_fake_%03d", len(g.plans)+1),
		Entity:    "plan",
		Period:    req.Period,
		Interval:  req.Interval,
		Item:      req.Item,
		Notes:     razorpay.Notes(req.Notes),
		CreatedAt: time.Now().Unix(),
	}
	g.plans[plan.ID] = plan
	return plan, nil
}

func (g *fakeGateway) FetchPlan(_ context.Context, planID string) (*razorpay.Plan, error) {
	plan, ok := g.plans[planID]
	if !ok {
		return nil, &razorpay.APIError{StatusCode: 400, Code: "BAD_REQUEST_ERROR", Description: "plan not found"}
	}
	return plan, nil
}

func (g *fakeGateway) ListPlans(_ context.Context, _, _ int32) (*razorpay.PlanList, error) {
	list := &razorpay.PlanList{Entity: "collection"}
	for _, plan := range g.plans {
		list.Items = append(list.Items, plan)
	}
	list.Count = int32(len(list.Items))
	return list, nil
}

func (g *fakeGateway) CreateSubscription(_ context.Context, req *razorpay.CreateSubscriptionRequest) (*razorpay.Subscription, error) {
	sub := &razorpay.Subscription{
		ID:         fmt.Sprintf("sub_fake_%03d", len(g.subscriptions)+1),
		Entity:     "subscription",
		PlanID:     req.PlanID,
		Status:     entity.SubscriptionStatusCreated,
		Quantity:   req.Quantity,
		TotalCount: req.TotalCount,
		StartAt:    req.StartAt,
		Notes:      razorpay.Notes(req.Notes),
		CreatedAt:  time.Now().Unix(),
	}
	g.subscriptions[sub.ID] = sub
	return sub, nil
}

func (g *fakeGateway) FetchSubscription(_ context.Context, subscriptionID string) (*razorpay.Subscription, error) {
	sub, ok := g.subscriptions[subscriptionID]
	if !ok {
		return nil, &razorpay.APIError{StatusCode: 400, Code: "BAD_REQUEST_ERROR", Description: "subscription not found"}
	}
	return sub, nil
}

func (g *fakeGateway) ListSubscriptions(_ context.Context, _, _ int32, planID, _ string) (*razorpay.SubscriptionList, error) {
	list := &razorpay.SubscriptionList{Entity: "collection"}
	for _, sub := range g.subscriptions {
		if planID != "" && sub.PlanID != planID {
			continue
		}
		list.Items = append(list.Items, sub)
	}
	list.Count = int32(len(list.Items))
	return list, nil
}

func (g *fakeGateway) CancelSubscription(_ context.Context, subscriptionID string, _ bool) (*razorpay.Subscription, error) {
	sub, ok := g.subscriptions[subscriptionID]
	if !ok {
		return nil, &razorpay.APIError{StatusCode: 400, Code: "BAD_REQUEST_ERROR", Description: "subscription not found"}
	}
	sub.Status = entity.SubscriptionStatusCancelled
	return sub, nil
}

func (g *fakeGateway) PauseSubscription(_ context.Context, subscriptionID, _ string) (*razorpay.Subscription, error) {
	sub, ok := g.subscriptions[subscriptionID]
	if !ok {
		return nil, &razorpay.APIError{StatusCode: 400, Code: "BAD_REQUEST_ERROR", Description: "subscription not found"}
	}
	sub.Status = entity.SubscriptionStatusPaused
	return sub, nil
}

func (g *fakeGateway) ResumeSubscription(_ context.Context, subscriptionID, _ string) (*razorpay.Subscription, error) {
	sub, ok := g.subscriptions[subscriptionID]
	if !ok {
		return nil, &razorpay.APIError{StatusCode: 400, Code: "BAD_REQUEST_ERROR", Description: "subscription not found"}
	}
	sub.Status = entity.SubscriptionStatusActive
	return sub, nil
}

func (g *fakeGateway) ListInvoices(_ context.Context, subscriptionID string) (*razorpay.InvoiceList, error) {
	list := &razorpay.InvoiceList{Entity: "collection"}
	for _, invoice := range g.invoices {
		if invoice.SubscriptionID == subscriptionID {
			list.Items = append(list.Items, invoice)
		}
	}
	list.Count = int32(len(list.Items))
	return list, nil
}

func (g *fakeGateway) FetchInvoice(_ context.Context, invoiceID string) (*razorpay.Invoice, error) {
	for _, invoice := range g.invoices {
		if invoice.ID == invoiceID {
			return invoice, nil
		}
	}
	return nil, &razorpay.APIError{StatusCode: 400, Code: "BAD_REQUEST_ERROR", Description: "invoice not found"}
}

func TestCreatePlanRejectsUnknownPeriod(t *testing.T) {
	svc := NewSubscriptionService(newFakeGateway(), &serviceSubscriptionRepo{}, &serviceInvoiceRepo{})

	_, err := svc.CreatePlan(context.Background(), CreatePlanInput{
		Period:   "fortnightly",
		Interval: 1,
		Name:     "Basic",
		Amount:   49900,
	})
	if !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}

func TestCreatePlanDefaultsCurrency(t *testing.T) {
	svc := NewSubscriptionService(newFakeGateway(), &serviceSubscriptionRepo{}, &serviceInvoiceRepo{})

	plan, err := svc.CreatePlan(context.Background(), CreatePlanInput{
		Period:   "Monthly",
		Interval: 1,
		Name:     "Basic",
		Amount:   49900,
	})
	if err != nil {
		t.Fatalf("create plan failed: %v", err)
	}
	if plan.Period != "monthly" {
		t.Fatalf("expected normalized period, got %q", plan.Period)
	}
	if plan.Item.Currency != "INR" {
		t.Fatalf("expected default INR currency, got %q", plan.Item.Currency)
	}
}

func TestCreateSubscriptionMirrorsRow(t *testing.T) {
	gateway := newFakeGateway()
	repo := &serviceSubscriptionRepo{}
	svc := NewSubscriptionService(gateway, repo, &serviceInvoiceRepo{})

	sub, err := svc.CreateSubscription(context.Background(), CreateSubscriptionInput{
		PlanID:     "plan_001",
		TotalCount: 12,
	})
	if err != nil {
		t.Fatalf("create subscription failed: %v", err)
	}
	if sub.Quantity != 1 {
		t.Fatalf("expected default quantity 1, got %d", sub.Quantity)
	}

	mirrored, _ := repo.FindByID(context.Background(), sub.ID)
	if mirrored == nil {
		t.Fatal("expected mirrored subscription row")
	}
	if mirrored.PlanID == nil || *mirrored.PlanID != "plan_001" {
		t.Fatalf("expected mirrored plan id plan_001, got %v", mirrored.PlanID)
	}
}

func TestCancelSubscriptionUpdatesMirrorStatus(t *testing.T) {
	gateway := newFakeGateway()
	repo := &serviceSubscriptionRepo{}
	svc := NewSubscriptionService(gateway, repo, &serviceInvoiceRepo{})

	sub, err := svc.CreateSubscription(context.Background(), CreateSubscriptionInput{
		PlanID:     "plan_001",
		TotalCount: 12,
	})
	if err != nil {
		t.Fatalf("create subscription failed: %v", err)
	}

	cancelled, err := svc.CancelSubscription(context.Background(), sub.ID, false)
	if err != nil {
		t.Fatalf("cancel subscription failed: %v", err)
	}
	if cancelled.Status != entity.SubscriptionStatusCancelled {
		t.Fatalf("expected cancelled status, got %q", cancelled.Status)
	}

	mirrored, _ := repo.FindByID(context.Background(), sub.ID)
	if mirrored.Status != entity.SubscriptionStatusCancelled {
		t.Fatalf("expected mirrored status cancelled, got %q", mirrored.Status)
	}
}

func TestListSubscriptionInvoicesFromDBFiltersBySubscription(t *testing.T) {
	invoiceRepo := &serviceInvoiceRepo{}
	for _, item := range []*entity.SubscriptionPayment{
		{ID: "inv_001", SubscriptionID: "sub_001", Amount: 49900, Currency: "INR", Status: "paid"},
		{ID: "inv_002", SubscriptionID: "sub_002", Amount: 49900, Currency: "INR", Status: "paid"},
		{ID: "inv_003", SubscriptionID: "sub_001", Amount: 49900, Currency: "INR", Status: "issued"},
	} {
		if err := invoiceRepo.Upsert(context.Background(), item); err != nil {
			t.Fatalf("seed invoice: %v", err)
		}
	}
	svc := NewSubscriptionService(newFakeGateway(), &serviceSubscriptionRepo{}, invoiceRepo)

	invoices, err := svc.ListSubscriptionInvoicesFromDB(context.Background(), "sub_001", 10, 0)
	if err != nil {
		t.Fatalf("list invoices failed: %v", err)
	}
	if len(invoices) != 2 {
		t.Fatalf("expected 2 invoices for sub_001, got %d", len(invoices))
	}
	if invoices[0].ID != "inv_001" || invoices[1].ID != "inv_003" {
		t.Fatalf("unexpected invoice order: %s, %s", invoices[0].ID, invoices[1].ID)
	}
}

func TestGetInvoiceFromDBNotFound(t *testing.T) {
	svc := NewSubscriptionService(newFakeGateway(), &serviceSubscriptionRepo{}, &serviceInvoiceRepo{})

	_, err := svc.GetInvoiceFromDB(context.Background(), "inv_missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetSubscriptionFromDBNotFound(t *testing.T) {
	svc := NewSubscriptionService(newFakeGateway(), &serviceSubscriptionRepo{}, &serviceInvoiceRepo{})

	_, err := svc.GetSubscriptionFromDB(context.Background(), "sub_missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
