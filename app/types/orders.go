package types

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"
)

type CreateOrderRequest struct {
	Amount   float64           `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes"`

	amountMinor int64
}

func NewCreateOrderRequestFromContext(ctx echo.Context) (*CreateOrderRequest, error) {
	var body CreateOrderRequest
	if err := ctx.Bind(&body); err != nil {
		return nil, err
	}

	body.Currency = strings.ToUpper(strings.TrimSpace(body.Currency))
	body.Receipt = strings.TrimSpace(body.Receipt)

	return &body, nil
}

func (r *CreateOrderRequest) Validate() error {
	if r.Amount <= 0 {
		return errors.New("amount must be > 0")
	}
	minor, err := MinorUnits(r.Amount)
	if err != nil {
		return err
	}
	r.amountMinor = minor
	if r.Currency != "" && len(r.Currency) != 3 {
		return errors.New("currency must be 3 letters")
	}
	return nil
}

// AmountMinorUnits is valid only after Validate has run.
func (r *CreateOrderRequest) AmountMinorUnits() int64 {
	return r.amountMinor
}

type GetOrderRequest struct {
	ID string
}

func NewGetOrderRequestFromContext(ctx echo.Context) (*GetOrderRequest, error) {
	return &GetOrderRequest{ID: pathID(ctx, "id")}, nil
}

func (r *GetOrderRequest) Validate() error {
	if r.ID == "" {
		return errors.New("order id is required")
	}
	return nil
}
