package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/apexneural-PraveenJogi/razorpay/app/razorpay"
	"github.com/apexneural-PraveenJogi/razorpay/app/service"
	"github.com/apexneural-PraveenJogi/razorpay/app/types"
)

func writeError(ctx echo.Context, statusCode int, message string) error {
	return ctx.JSON(statusCode, &types.ErrorResponse{Error: message})
}

// writeServiceError maps service and provider errors onto HTTP statuses.
// Provider errors surface with the remote status code so callers see what
// Razorpay actually said.
func writeServiceError(ctx echo.Context, logger logrus.FieldLogger, err error, action string) error {
	var apiErr *razorpay.APIError
	switch {
	case errors.Is(err, service.ErrInvalidRequest), errors.Is(err, service.ErrInvalidStatus), errors.Is(err, service.ErrSignatureInvalid):
		return writeError(ctx, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNotFound):
		return writeError(ctx, http.StatusNotFound, "not found")
	case errors.As(err, &apiErr):
		return ctx.JSON(apiErr.StatusCode, &types.ErrorResponse{Error: apiErr.Description, Detail: apiErr.Code})
	default:
		logger.WithError(err).Error(action + " failed")
		return writeError(ctx, http.StatusInternalServerError, "internal server error")
	}
}
