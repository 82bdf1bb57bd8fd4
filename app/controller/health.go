package controller

import (
	"database/sql"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/apexneural-PraveenJogi/razorpay/app/factory"
	"github.com/apexneural-PraveenJogi/razorpay/app/types"
)

type HealthController struct {
	db     *sql.DB
	logger logrus.FieldLogger
}

func NewHealthController(db *sql.DB) *HealthController {
	return &HealthController{
		db:     db,
		logger: factory.NewModuleLogger("health-controller"),
	}
}

func (c *HealthController) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, &types.HealthResponse{Status: "ok"})
}

func (c *HealthController) HealthDB(ctx echo.Context) error {
	if err := c.db.PingContext(ctx.Request().Context()); err != nil {
		c.logger.WithError(err).Error("Database ping failed")
		return writeError(ctx, http.StatusServiceUnavailable, "database unavailable")
	}
	return ctx.JSON(http.StatusOK, &types.HealthResponse{Status: "ok"})
}
