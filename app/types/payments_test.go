package types

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestVerifyPaymentValidateRequiresAllFields(t *testing.T) {
	req := &VerifyPaymentRequest{RazorpayOrderID: "order_1", RazorpayPaymentID: "pay_1"}
	if err := req.Validate(); err == nil {
		t.Fatal("expected signature validation error")
	}

	req.RazorpaySignature = "sig"
	if err := req.Validate(); err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}
}

func TestCapturePaymentValidateConvertsAmount(t *testing.T) {
	req := &CapturePaymentRequest{PaymentID: "pay_1", Amount: 250.50}
	if err := req.Validate(); err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}
	if req.AmountMinorUnits() != 25050 {
		t.Fatalf("expected 25050 minor units, got %d", req.AmountMinorUnits())
	}
}

func TestNewWebhookEventRequestFromContextReadsRawBody(t *testing.T) {
	e := echo.New()
	body := `{"event":"payment.captured"}`
	req := httptest.NewRequest("POST", "/api/v1/webhooks/razorpay", bytes.NewBufferString(body))
	req.Header.Set(WebhookSignatureHeader, "abc123")
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	parsed, err := NewWebhookEventRequestFromContext(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if string(parsed.Body) != body {
		t.Fatalf("expected raw body preserved, got %q", parsed.Body)
	}
	if parsed.Signature != "abc123" {
		t.Fatalf("expected signature header, got %q", parsed.Signature)
	}
	if err := parsed.Validate(); err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}
}
