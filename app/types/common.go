package types

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

// MinorUnits converts a major-unit amount (e.g. rupees) to minor units
// (paise). Amounts with more than two fractional digits are rejected so the
// conversion can never silently round money.
func MinorUnits(amount float64) (int64, error) {
	if amount < 0 {
		return 0, errors.New("amount must be >= 0")
	}
	scaled := amount * 100
	rounded := math.Round(scaled)
	if math.Abs(scaled-rounded) > 1e-6 {
		return 0, errors.New("amount must have at most two decimal places")
	}
	return int64(rounded), nil
}

func queryInt32(ctx echo.Context, name string, fallback int32) (int32, error) {
	raw := strings.TrimSpace(ctx.QueryParam(name))
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, errors.New(name + " must be an integer")
	}
	return int32(value), nil
}

// ListQuery carries skip/limit pagination for the local read-model endpoints.
type ListQuery struct {
	Limit int32
	Skip  int32
}

func NewListQueryFromContext(ctx echo.Context) (*ListQuery, error) {
	limit, err := queryInt32(ctx, "limit", 100)
	if err != nil {
		return nil, err
	}
	skip, err := queryInt32(ctx, "skip", 0)
	if err != nil {
		return nil, err
	}
	return &ListQuery{Limit: limit, Skip: skip}, nil
}

func (q *ListQuery) Validate() error {
	if q.Limit <= 0 || q.Limit > 500 {
		return errors.New("limit must be between 1 and 500")
	}
	if q.Skip < 0 {
		return errors.New("skip must be >= 0")
	}
	return nil
}

func pathID(ctx echo.Context, name string) string {
	return strings.TrimSpace(ctx.Param(name))
}
