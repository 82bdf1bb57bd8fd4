package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/apexneural-PraveenJogi/razorpay/app/entity"
)

func TestCreateOrderGeneratesReceiptAndMirrors(t *testing.T) {
	gateway := newFakeGateway()
	repo := &serviceOrderRepo{}
	svc := NewOrderService(gateway, repo)

	order, err := svc.CreateOrder(context.Background(), CreateOrderInput{
		Amount:   10000,
		Currency: "inr",
		Notes:    map[string]string{"purpose": "checkout"},
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if !strings.HasPrefix(order.Receipt, "rcpt_") {
		t.Fatalf("expected generated receipt, got %q", order.Receipt)
	}
	if order.Currency != "INR" {
		t.Fatalf("expected uppercased currency, got %q", order.Currency)
	}

	mirrored, _ := repo.FindByID(context.Background(), order.ID)
	if mirrored == nil {
		t.Fatal("expected mirrored order row")
	}
	if mirrored.Amount != 10000 {
		t.Fatalf("expected mirrored amount 10000, got %d", mirrored.Amount)
	}
}

func TestCreateOrderRejectsNonPositiveAmount(t *testing.T) {
	svc := NewOrderService(newFakeGateway(), &serviceOrderRepo{})

	_, err := svc.CreateOrder(context.Background(), CreateOrderInput{Amount: 0})
	if !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}

func TestGetOrderFromDBNotFound(t *testing.T) {
	svc := NewOrderService(newFakeGateway(), &serviceOrderRepo{})

	_, err := svc.GetOrderFromDB(context.Background(), "order_missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListOrdersFromDBPreservesInsertionOrder(t *testing.T) {
	gateway := newFakeGateway()
	repo := &serviceOrderRepo{}
	svc := NewOrderService(gateway, repo)

	now := time.Now().UTC()
	ids := []string{"order_a", "order_b", "order_c"}
	for _, id := range ids {
		if err := repo.Upsert(context.Background(), &entity.Order{ID: id, Status: "created", CreatedAt: now, UpdatedAt: now}); err != nil {
			t.Fatalf("seed order failed: %v", err)
		}
	}

	listed, err := svc.ListOrdersFromDB(context.Background(), 2, 1)
	if err != nil {
		t.Fatalf("list orders failed: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(listed))
	}
	if listed[0].ID != "order_b" || listed[1].ID != "order_c" {
		t.Fatalf("expected orders b,c in insertion order, got %s,%s", listed[0].ID, listed[1].ID)
	}
}
