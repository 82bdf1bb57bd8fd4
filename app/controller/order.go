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

type OrderController struct {
	orderService *service.OrderService
	logger       logrus.FieldLogger
}

func NewOrderController(orderService *service.OrderService) *OrderController {
	return &OrderController{
		orderService: orderService,
		logger:       factory.NewModuleLogger("orders-controller"),
	}
}

func (c *OrderController) CreateOrder(ctx echo.Context) error {
	req, err := types.NewCreateOrderRequestFromContext(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	order, err := c.orderService.CreateOrder(ctx.Request().Context(), service.CreateOrderInput{
		Amount:   req.AmountMinorUnits(),
		Currency: req.Currency,
		Receipt:  req.Receipt,
		Notes:    req.Notes,
	})
	if err != nil {
		return writeServiceError(ctx, c.logger, err, "Create order")
	}

	return ctx.JSON(http.StatusCreated, order)
}

func (c *OrderController) GetOrder(ctx echo.Context) error {
	req, err := types.NewGetOrderRequestFromContext(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request")
	}
	if err := req.Validate(); err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	order, err := c.orderService.GetOrder(ctx.Request().Context(), req.ID)
	if err != nil {
		return writeServiceError(ctx, c.logger, err, "Get order")
	}

	return ctx.JSON(http.StatusOK, order)
}

func (c *OrderController) GetOrderFromDB(ctx echo.Context) error {
	req, err := types.NewGetOrderRequestFromContext(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request")
	}
	if err := req.Validate(); err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	order, err := c.orderService.GetOrderFromDB(ctx.Request().Context(), req.ID)
	if err != nil {
		return writeServiceError(ctx, c.logger, err, "Get order from db")
	}

	return ctx.JSON(http.StatusOK, mapper.OrderToResponse(order))
}

func (c *OrderController) ListOrdersFromDB(ctx echo.Context) error {
	query, err := types.NewListQueryFromContext(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}
	if err := query.Validate(); err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	orders, err := c.orderService.ListOrdersFromDB(ctx.Request().Context(), query.Limit, query.Skip)
	if err != nil {
		return writeServiceError(ctx, c.logger, err, "List orders")
	}

	return ctx.JSON(http.StatusOK, &types.OrderListResponse{
		Total:  len(orders),
		Orders: mapper.OrdersToResponse(orders),
	})
}
