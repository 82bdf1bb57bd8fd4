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

type SubscriptionController struct {
	subscriptionService *service.SubscriptionService
	logger              logrus.FieldLogger
}

func NewSubscriptionController(subscriptionService *service.SubscriptionService) *SubscriptionController {
	return &SubscriptionController{
		subscriptionService: subscriptionService,
		logger:              factory.NewModuleLogger("subscriptions-controller"),
	}
}

func (c *SubscriptionController) CreatePlan(ctx echo.Context) error {
	req, err := types.NewCreatePlanRequestFromContext(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	plan, err := c.subscriptionService.CreatePlan(ctx.Request().Context(), service.CreatePlanInput{
		Period:      req.Period,
		Interval:    req.Interval,
		Name:        req.Name,
		Amount:      req.AmountMinorUnits(),
		Currency:    req.Currency,
		Description: req.Description,
		Notes:       req.Notes,
	})
	if err != nil {
		return writeServiceError(ctx, c.logger, err, "Create plan")
	}

	return ctx.JSON(http.StatusCreated, plan)
}

func (c *SubscriptionController) GetPlan(ctx echo.Context) error {
	planID := ctx.Param("id")

	plan, err := c.subscriptionService.GetPlan(ctx.Request().Context(), planID)
	if err != nil {
		return writeServiceError(ctx, c.logger, err, "Get plan")
	}

	return ctx.JSON(http.StatusOK, plan)
}

func (c *SubscriptionController) ListPlans(ctx echo.Context) error {
	query, err := types.NewRemoteListQueryFromContext(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}
	if err := query.Validate(); err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	list, err := c.subscriptionService.ListPlans(ctx.Request().Context(), query.Count, query.Skip)
	if err != nil {
		return writeServiceError(ctx, c.logger, err, "List plans")
	}

	return ctx.JSON(http.StatusOK, list)
}

func (c *SubscriptionController) CreateSubscription(ctx echo.Context) error {
	req, err := types.NewCreateSubscriptionRequestFromContext(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	subscription, err := c.subscriptionService.CreateSubscription(ctx.Request().Context(), service.CreateSubscriptionInput{
		PlanID:         req.PlanID,
		TotalCount:     req.TotalCount,
		Quantity:       req.Quantity,
		CustomerNotify: req.CustomerNotify,
		StartAt:        req.StartAt,
		Notes:          req.Notes,
	})
	if err != nil {
		return writeServiceError(ctx, c.logger, err, "Create subscription")
	}

	return ctx.JSON(http.StatusCreated, subscription)
}

func (c *SubscriptionController) GetSubscription(ctx echo.Context) error {
	req, err := types.NewGetSubscriptionRequestFromContext(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request")
	}
	if err := req.Validate(); err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	subscription, err := c.subscriptionService.GetSubscription(ctx.Request().Context(), req.ID)
	if err != nil {
		return writeServiceError(ctx, c.logger, err, "Get subscription")
	}

	return ctx.JSON(http.StatusOK, subscription)
}

func (c *SubscriptionController) GetSubscriptionFromDB(ctx echo.Context) error {
	req, err := types.NewGetSubscriptionRequestFromContext(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request")
	}
	if err := req.Validate(); err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	subscription, err := c.subscriptionService.GetSubscriptionFromDB(ctx.Request().Context(), req.ID)
	if err != nil {
		return writeServiceError(ctx, c.logger, err, "Get subscription from db")
	}

	return ctx.JSON(http.StatusOK, mapper.SubscriptionToResponse(subscription))
}

func (c *SubscriptionController) ListSubscriptions(ctx echo.Context) error {
	query, err := types.NewRemoteListQueryFromContext(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}
	if err := query.Validate(); err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	list, err := c.subscriptionService.ListSubscriptions(ctx.Request().Context(), query.Count, query.Skip, query.PlanID, query.CustomerID)
	if err != nil {
		return writeServiceError(ctx, c.logger, err, "List subscriptions")
	}

	return ctx.JSON(http.StatusOK, list)
}

func (c *SubscriptionController) ListSubscriptionsFromDB(ctx echo.Context) error {
	query, err := types.NewListQueryFromContext(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}
	if err := query.Validate(); err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	subscriptions, err := c.subscriptionService.ListSubscriptionsFromDB(ctx.Request().Context(), query.Limit, query.Skip)
	if err != nil {
		return writeServiceError(ctx, c.logger, err, "List subscriptions from db")
	}

	return ctx.JSON(http.StatusOK, &types.SubscriptionListResponse{
		Total:         len(subscriptions),
		Subscriptions: mapper.SubscriptionsToResponse(subscriptions),
	})
}

func (c *SubscriptionController) CancelSubscription(ctx echo.Context) error {
	req, err := types.NewCancelSubscriptionRequestFromContext(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	subscription, err := c.subscriptionService.CancelSubscription(ctx.Request().Context(), req.ID, req.CancelAtCycleEnd)
	if err != nil {
		return writeServiceError(ctx, c.logger, err, "Cancel subscription")
	}

	return ctx.JSON(http.StatusOK, subscription)
}

func (c *SubscriptionController) PauseSubscription(ctx echo.Context) error {
	req, err := types.NewGetSubscriptionRequestFromContext(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request")
	}
	if err := req.Validate(); err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	subscription, err := c.subscriptionService.PauseSubscription(ctx.Request().Context(), req.ID)
	if err != nil {
		return writeServiceError(ctx, c.logger, err, "Pause subscription")
	}

	return ctx.JSON(http.StatusOK, subscription)
}

func (c *SubscriptionController) ResumeSubscription(ctx echo.Context) error {
	req, err := types.NewGetSubscriptionRequestFromContext(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request")
	}
	if err := req.Validate(); err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	subscription, err := c.subscriptionService.ResumeSubscription(ctx.Request().Context(), req.ID)
	if err != nil {
		return writeServiceError(ctx, c.logger, err, "Resume subscription")
	}

	return ctx.JSON(http.StatusOK, subscription)
}

func (c *SubscriptionController) ListSubscriptionInvoices(ctx echo.Context) error {
	req, err := types.NewGetSubscriptionRequestFromContext(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request")
	}
	if err := req.Validate(); err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	list, err := c.subscriptionService.ListSubscriptionInvoices(ctx.Request().Context(), req.ID)
	if err != nil {
		return writeServiceError(ctx, c.logger, err, "List subscription invoices")
	}

	return ctx.JSON(http.StatusOK, list)
}

func (c *SubscriptionController) GetInvoice(ctx echo.Context) error {
	req, err := types.NewGetInvoiceRequestFromContext(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request")
	}
	if err := req.Validate(); err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	invoice, err := c.subscriptionService.GetInvoice(ctx.Request().Context(), req.ID)
	if err != nil {
		return writeServiceError(ctx, c.logger, err, "Get invoice")
	}

	return ctx.JSON(http.StatusOK, invoice)
}

func (c *SubscriptionController) ListSubscriptionInvoicesFromDB(ctx echo.Context) error {
	req, err := types.NewGetSubscriptionRequestFromContext(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request")
	}
	if err := req.Validate(); err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}
	query, err := types.NewListQueryFromContext(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}
	if err := query.Validate(); err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	invoices, err := c.subscriptionService.ListSubscriptionInvoicesFromDB(ctx.Request().Context(), req.ID, query.Limit, query.Skip)
	if err != nil {
		return writeServiceError(ctx, c.logger, err, "List subscription invoices from db")
	}

	return ctx.JSON(http.StatusOK, &types.SubscriptionPaymentListResponse{
		Total:    len(invoices),
		Invoices: mapper.SubscriptionPaymentsToResponse(invoices),
	})
}

func (c *SubscriptionController) GetInvoiceFromDB(ctx echo.Context) error {
	req, err := types.NewGetInvoiceRequestFromContext(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request")
	}
	if err := req.Validate(); err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	invoice, err := c.subscriptionService.GetInvoiceFromDB(ctx.Request().Context(), req.ID)
	if err != nil {
		return writeServiceError(ctx, c.logger, err, "Get invoice from db")
	}

	return ctx.JSON(http.StatusOK, mapper.SubscriptionPaymentToResponse(invoice))
}
