package types

import (
	"errors"
	"io"
	"strings"

	"github.com/labstack/echo/v4"
)

const WebhookSignatureHeader = "X-Razorpay-Signature"

type WebhookEventRequest struct {
	Body      []byte
	Signature string
}

func NewWebhookEventRequestFromContext(ctx echo.Context) (*WebhookEventRequest, error) {
	body, err := io.ReadAll(ctx.Request().Body)
	if err != nil {
		return nil, err
	}

	return &WebhookEventRequest{
		Body:      body,
		Signature: strings.TrimSpace(ctx.Request().Header.Get(WebhookSignatureHeader)),
	}, nil
}

func (r *WebhookEventRequest) Validate() error {
	if len(r.Body) == 0 {
		return errors.New("webhook body is required")
	}
	return nil
}
