package types

import (
	"errors"
	"io"
	"strings"

	"github.com/labstack/echo/v4"
)

type CreatePlanRequest struct {
	Period      string            `json:"period"`
	Interval    int32             `json:"interval"`
	Name        string            `json:"name"`
	Amount      float64           `json:"amount"`
	Currency    string            `json:"currency"`
	Description string            `json:"description"`
	Notes       map[string]string `json:"notes"`

	amountMinor int64
}

func NewCreatePlanRequestFromContext(ctx echo.Context) (*CreatePlanRequest, error) {
	var body CreatePlanRequest
	if err := ctx.Bind(&body); err != nil {
		return nil, err
	}

	body.Period = strings.ToLower(strings.TrimSpace(body.Period))
	body.Name = strings.TrimSpace(body.Name)
	body.Currency = strings.ToUpper(strings.TrimSpace(body.Currency))
	body.Description = strings.TrimSpace(body.Description)

	return &body, nil
}

func (r *CreatePlanRequest) Validate() error {
	switch r.Period {
	case "daily", "weekly", "monthly", "yearly":
	default:
		return errors.New("period must be daily, weekly, monthly, or yearly")
	}
	if r.Interval <= 0 {
		return errors.New("interval must be > 0")
	}
	if r.Name == "" {
		return errors.New("name is required")
	}
	if r.Amount <= 0 {
		return errors.New("amount must be > 0")
	}
	minor, err := MinorUnits(r.Amount)
	if err != nil {
		return err
	}
	r.amountMinor = minor
	return nil
}

// AmountMinorUnits is valid only after Validate has run.
func (r *CreatePlanRequest) AmountMinorUnits() int64 {
	return r.amountMinor
}

type CreateSubscriptionRequest struct {
	PlanID         string            `json:"plan_id"`
	TotalCount     int32             `json:"total_count"`
	Quantity       int32             `json:"quantity"`
	CustomerNotify bool              `json:"customer_notify"`
	StartAt        int64             `json:"start_at"`
	Notes          map[string]string `json:"notes"`
}

func NewCreateSubscriptionRequestFromContext(ctx echo.Context) (*CreateSubscriptionRequest, error) {
	var body CreateSubscriptionRequest
	if err := ctx.Bind(&body); err != nil {
		return nil, err
	}

	body.PlanID = strings.TrimSpace(body.PlanID)

	return &body, nil
}

func (r *CreateSubscriptionRequest) Validate() error {
	if r.PlanID == "" {
		return errors.New("plan_id is required")
	}
	if r.TotalCount <= 0 {
		return errors.New("total_count must be > 0")
	}
	if r.Quantity < 0 {
		return errors.New("quantity must be >= 0")
	}
	if r.StartAt < 0 {
		return errors.New("start_at must be a unix timestamp")
	}
	return nil
}

type GetSubscriptionRequest struct {
	ID string
}

func NewGetSubscriptionRequestFromContext(ctx echo.Context) (*GetSubscriptionRequest, error) {
	return &GetSubscriptionRequest{ID: pathID(ctx, "id")}, nil
}

func (r *GetSubscriptionRequest) Validate() error {
	if r.ID == "" {
		return errors.New("subscription id is required")
	}
	return nil
}

type CancelSubscriptionRequest struct {
	ID               string
	CancelAtCycleEnd bool `json:"cancel_at_cycle_end"`
}

func NewCancelSubscriptionRequestFromContext(ctx echo.Context) (*CancelSubscriptionRequest, error) {
	var body CancelSubscriptionRequest
	if err := ctx.Bind(&body); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	body.ID = pathID(ctx, "id")

	return &body, nil
}

func (r *CancelSubscriptionRequest) Validate() error {
	if r.ID == "" {
		return errors.New("subscription id is required")
	}
	return nil
}

// RemoteListQuery carries Razorpay-style count/skip pagination for the
// passthrough list endpoints.
type RemoteListQuery struct {
	Count      int32
	Skip       int32
	PlanID     string
	CustomerID string
}

func NewRemoteListQueryFromContext(ctx echo.Context) (*RemoteListQuery, error) {
	count, err := queryInt32(ctx, "count", 10)
	if err != nil {
		return nil, err
	}
	skip, err := queryInt32(ctx, "skip", 0)
	if err != nil {
		return nil, err
	}

	return &RemoteListQuery{
		Count:      count,
		Skip:       skip,
		PlanID:     strings.TrimSpace(ctx.QueryParam("plan_id")),
		CustomerID: strings.TrimSpace(ctx.QueryParam("customer_id")),
	}, nil
}

func (q *RemoteListQuery) Validate() error {
	if q.Count <= 0 || q.Count > 100 {
		return errors.New("count must be between 1 and 100")
	}
	if q.Skip < 0 {
		return errors.New("skip must be >= 0")
	}
	return nil
}

type GetInvoiceRequest struct {
	ID string
}

func NewGetInvoiceRequestFromContext(ctx echo.Context) (*GetInvoiceRequest, error) {
	return &GetInvoiceRequest{ID: pathID(ctx, "id")}, nil
}

func (r *GetInvoiceRequest) Validate() error {
	if r.ID == "" {
		return errors.New("invoice id is required")
	}
	return nil
}
