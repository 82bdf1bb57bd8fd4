package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/apexneural-PraveenJogi/razorpay/app/factory"
	"github.com/apexneural-PraveenJogi/razorpay/app/mapper"
	"github.com/apexneural-PraveenJogi/razorpay/app/service"
	"github.com/apexneural-PraveenJogi/razorpay/app/types"
)

type PaymentController struct {
	paymentService *service.PaymentService
	logger         logrus.FieldLogger
}

func NewPaymentController(paymentService *service.PaymentService) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
		logger:         factory.NewModuleLogger("payments-controller"),
	}
}

func (c *PaymentController) VerifyPayment(ctx echo.Context) error {
	req, err := types.NewVerifyPaymentRequestFromContext(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	result, err := c.paymentService.VerifyPayment(ctx.Request().Context(), service.VerifyPaymentInput{
		OrderID:   req.RazorpayOrderID,
		PaymentID: req.RazorpayPaymentID,
		Signature: req.RazorpaySignature,
	})
	if err != nil {
		return writeServiceError(ctx, c.logger, err, "Verify payment")
	}

	return ctx.JSON(http.StatusOK, &types.VerifyPaymentResponse{
		Verified:  result.Verified,
		OrderID:   result.OrderID,
		PaymentID: result.PaymentID,
		Status:    result.Status,
		Message:   result.Message,
	})
}

func (c *PaymentController) CapturePayment(ctx echo.Context) error {
	req, err := types.NewCapturePaymentRequestFromContext(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	payment, err := c.paymentService.CapturePayment(ctx.Request().Context(), service.CapturePaymentInput{
		PaymentID: req.PaymentID,
		Amount:    req.AmountMinorUnits(),
	})
	if err != nil {
		return writeServiceError(ctx, c.logger, err, "Capture payment")
	}

	return ctx.JSON(http.StatusOK, payment)
}

func (c *PaymentController) GetPayment(ctx echo.Context) error {
	req, err := types.NewGetPaymentRequestFromContext(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request")
	}
	if err := req.Validate(); err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	payment, err := c.paymentService.GetPayment(ctx.Request().Context(), req.ID)
	if err != nil {
		return writeServiceError(ctx, c.logger, err, "Get payment")
	}

	return ctx.JSON(http.StatusOK, payment)
}

func (c *PaymentController) GetPaymentFromDB(ctx echo.Context) error {
	req, err := types.NewGetPaymentRequestFromContext(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request")
	}
	if err := req.Validate(); err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	payment, err := c.paymentService.GetPaymentFromDB(ctx.Request().Context(), req.ID)
	if err != nil {
		return writeServiceError(ctx, c.logger, err, "Get payment from db")
	}

	return ctx.JSON(http.StatusOK, mapper.PaymentToResponse(payment))
}

func (c *PaymentController) ListPaymentsFromDB(ctx echo.Context) error {
	query, err := types.NewListQueryFromContext(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}
	if err := query.Validate(); err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	payments, err := c.paymentService.ListPaymentsFromDB(ctx.Request().Context(), query.Limit, query.Skip)
	if err != nil {
		return writeServiceError(ctx, c.logger, err, "List payments")
	}

	return ctx.JSON(http.StatusOK, &types.PaymentListResponse{
		Total:    len(payments),
		Payments: mapper.PaymentsToResponse(payments),
	})
}
