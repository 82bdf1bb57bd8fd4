package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/apexneural-PraveenJogi/razorpay/app/entity"
	"github.com/apexneural-PraveenJogi/razorpay/app/razorpay"
	"github.com/apexneural-PraveenJogi/razorpay/app/service"
)

type controllerOrderRepo struct {
	orders []*entity.Order
}

func (r *controllerOrderRepo) Upsert(_ context.Context, order *entity.Order) error {
	for i, item := range r.orders {
		if item.ID == order.ID {
			copyItem := *order
			r.orders[i] = &copyItem
			return nil
		}
	}
	copyItem := *order
	r.orders = append(r.orders, &copyItem)
	return nil
}

func (r *controllerOrderRepo) FindByID(_ context.Context, id string) (*entity.Order, error) {
	for _, item := range r.orders {
		if item.ID == id {
			copyItem := *item
			return &copyItem, nil
		}
	}
	return nil, nil
}

func (r *controllerOrderRepo) List(_ context.Context, limit, offset int32) ([]*entity.Order, error) {
	start := int(offset)
	if start > len(r.orders) {
		return []*entity.Order{}, nil
	}
	end := start + int(limit)
	if end > len(r.orders) {
		end = len(r.orders)
	}
	return r.orders[start:end], nil
}

func newOrderControllerForTest(baseURL string, repo *controllerOrderRepo) *OrderController {
	client := razorpay.NewClient(razorpay.Config{
		KeyID:     "rzp_test_key",
		KeySecret: "secret",
		BaseURL:   baseURL,
	})
	return NewOrderController(service.NewOrderService(client, repo))
}

func TestCreateOrderConvertsMajorUnitsAndMirrors(t *testing.T) {
	var remoteAmount int64
	stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/orders" {
			t.Fatalf("unexpected remote call %s %s", r.Method, r.URL.Path)
		}
		var body struct {
			Amount   int64  `json:"amount"`
			Currency string `json:"currency"`
			Receipt  string `json:"receipt"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode remote body failed: %v", err)
		}
		remoteAmount = body.Amount
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"id":        "order_test_001",
			"entity":    "order",
			"amount":    body.Amount,
			"amount_due": body.Amount,
			"currency":  body.Currency,
			"receipt":   body.Receipt,
			"status":    "created",
		})
	}))
	defer stub.Close()

	repo := &controllerOrderRepo{}
	ctrl := newOrderControllerForTest(stub.URL, repo)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", bytes.NewBufferString(`{"amount":499.50,"currency":"INR","receipt":"rcpt-1"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	if err := ctrl.CreateOrder(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	if remoteAmount != 49950 {
		t.Fatalf("expected remote amount 49950 minor units, got %d", remoteAmount)
	}
	if len(repo.orders) != 1 || repo.orders[0].ID != "order_test_001" {
		t.Fatalf("expected mirrored order, got %+v", repo.orders)
	}
}

func TestCreateOrderRejectsFractionalPaise(t *testing.T) {
	ctrl := newOrderControllerForTest("http://localhost:0", &controllerOrderRepo{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", bytes.NewBufferString(`{"amount":10.999}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	_ = ctrl.CreateOrder(ctx)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCreateOrderProviderErrorKeepsRemoteStatus(t *testing.T) {
	stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":"BAD_REQUEST_ERROR","description":"Currency is not supported"}}`))
	}))
	defer stub.Close()

	ctrl := newOrderControllerForTest(stub.URL, &controllerOrderRepo{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", bytes.NewBufferString(`{"amount":100,"currency":"XYZ"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	_ = ctrl.CreateOrder(ctx)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected remote 400 to propagate, got %d", rec.Code)
	}
	if !bytes.Contains(rec.Body.Bytes(), []byte("Currency is not supported")) {
		t.Fatalf("expected remote description in body, got %s", rec.Body.String())
	}
}

func TestGetOrderFromDBNotFound(t *testing.T) {
	ctrl := newOrderControllerForTest("http://localhost:0", &controllerOrderRepo{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/order_x/db", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.SetParamNames("id")
	ctx.SetParamValues("order_x")

	_ = ctrl.GetOrderFromDB(ctx)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
