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

type WebhookController struct {
	webhookService *service.WebhookService
	logger         logrus.FieldLogger
}

func NewWebhookController(webhookService *service.WebhookService) *WebhookController {
	return &WebhookController{
		webhookService: webhookService,
		logger:         factory.NewModuleLogger("webhooks-controller"),
	}
}

func (c *WebhookController) HandleEvent(ctx echo.Context) error {
	req, err := types.NewWebhookEventRequestFromContext(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	result, err := c.webhookService.ProcessEvent(ctx.Request().Context(), req.Body, req.Signature)
	if err != nil {
		return writeServiceError(ctx, c.logger, err, "Handle webhook event")
	}

	return ctx.JSON(http.StatusOK, &types.WebhookAckResponse{
		Status:    "ok",
		EventID:   result.EventID,
		EventType: result.EventType,
		Duplicate: result.Duplicate,
	})
}

func (c *WebhookController) ListEvents(ctx echo.Context) error {
	query, err := types.NewListQueryFromContext(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}
	if err := query.Validate(); err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	events, err := c.webhookService.ListEvents(ctx.Request().Context(), query.Limit, query.Skip)
	if err != nil {
		return writeServiceError(ctx, c.logger, err, "List webhook events")
	}

	return ctx.JSON(http.StatusOK, &types.WebhookEventListResponse{
		Total:  len(events),
		Events: mapper.WebhookEventsToResponse(events),
	})
}
