package types

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"
)

type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
}

func NewVerifyPaymentRequestFromContext(ctx echo.Context) (*VerifyPaymentRequest, error) {
	var body VerifyPaymentRequest
	if err := ctx.Bind(&body); err != nil {
		return nil, err
	}

	body.RazorpayOrderID = strings.TrimSpace(body.RazorpayOrderID)
	body.RazorpayPaymentID = strings.TrimSpace(body.RazorpayPaymentID)
	body.RazorpaySignature = strings.TrimSpace(body.RazorpaySignature)

	return &body, nil
}

func (r *VerifyPaymentRequest) Validate() error {
	if r.RazorpayOrderID == "" {
		return errors.New("razorpay_order_id is required")
	}
	if r.RazorpayPaymentID == "" {
		return errors.New("razorpay_payment_id is required")
	}
	if r.RazorpaySignature == "" {
		return errors.New("razorpay_signature is required")
	}
	return nil
}

type CapturePaymentRequest struct {
	PaymentID string  `json:"payment_id"`
	Amount    float64 `json:"amount"`

	amountMinor int64
}

func NewCapturePaymentRequestFromContext(ctx echo.Context) (*CapturePaymentRequest, error) {
	var body CapturePaymentRequest
	if err := ctx.Bind(&body); err != nil {
		return nil, err
	}

	body.PaymentID = strings.TrimSpace(body.PaymentID)

	return &body, nil
}

func (r *CapturePaymentRequest) Validate() error {
	if r.PaymentID == "" {
		return errors.New("payment_id is required")
	}
	minor, err := MinorUnits(r.Amount)
	if err != nil {
		return err
	}
	r.amountMinor = minor
	return nil
}

// AmountMinorUnits is valid only after Validate has run. Zero means capture
// the full authorized amount.
func (r *CapturePaymentRequest) AmountMinorUnits() int64 {
	return r.amountMinor
}

type GetPaymentRequest struct {
	ID string
}

func NewGetPaymentRequestFromContext(ctx echo.Context) (*GetPaymentRequest, error) {
	return &GetPaymentRequest{ID: pathID(ctx, "id")}, nil
}

func (r *GetPaymentRequest) Validate() error {
	if r.ID == "" {
		return errors.New("payment id is required")
	}
	return nil
}

type VerifyPaymentResponse struct {
	Verified  bool   `json:"verified"`
	OrderID   string `json:"order_id"`
	PaymentID string `json:"payment_id"`
	Status    string `json:"status,omitempty"`
	Message   string `json:"message"`
}
