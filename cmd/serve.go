package cmd

import (
	"context"
	"database/sql"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/apexneural-PraveenJogi/razorpay/app/controller"
	"github.com/apexneural-PraveenJogi/razorpay/app/razorpay"
	"github.com/apexneural-PraveenJogi/razorpay/app/repository"
	"github.com/apexneural-PraveenJogi/razorpay/app/service"
	"github.com/apexneural-PraveenJogi/razorpay/config"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  "Start the Echo HTTP server exposing the gateway API and the Razorpay webhook endpoint.",
	Run:   runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

type services struct {
	orders        *service.OrderService
	payments      *service.PaymentService
	subscriptions *service.SubscriptionService
	webhooks      *service.WebhookService
}

func runServe(_ *cobra.Command, _ []string) {
	cfg, db, svcs, cleanup := mustCreateServices()
	defer cleanup()

	e := setupHTTPServer(db, svcs)

	go func() {
		httpAddr := net.JoinHostPort(cfg.HTTP.Host, cfg.HTTP.Port)
		logrus.WithField("addr", httpAddr).Info("Starting HTTP server")
		if err := e.Start(httpAddr); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Fatal("HTTP server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Warn("HTTP shutdown error")
	}

	logrus.Info("Server stopped")
}

func setupHTTPServer(db *sql.DB, svcs *services) *echo.Echo {
	healthController := controller.NewHealthController(db)
	orderController := controller.NewOrderController(svcs.orders)
	paymentController := controller.NewPaymentController(svcs.payments)
	subscriptionController := controller.NewSubscriptionController(svcs.subscriptions)
	webhookController := controller.NewWebhookController(svcs.webhooks)

	e := echo.New()
	e.HideBanner = true

	e.Use(echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogRemoteIP:  true,
		LogLatency:   true,
		LogUserAgent: true,
		LogError:     true,
		HandleError:  true,
		LogRequestID: true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			fields := logrus.Fields{
				"remote_ip":  v.RemoteIP,
				"host":       v.Host,
				"method":     v.Method,
				"uri":        v.URI,
				"status":     v.Status,
				"latency":    v.Latency.String(),
				"latency_ns": v.Latency.Nanoseconds(),
				"user_agent": v.UserAgent,
			}
			entry := logrus.WithFields(fields)
			if v.Error != nil {
				entry = entry.WithError(v.Error)
			}
			entry.Info("http_request")
			return nil
		},
	}))
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())

	e.GET("/health", healthController.Health)
	e.GET("/health/db", healthController.HealthDB)

	api := e.Group("/api/v1")

	orders := api.Group("/orders")
	orders.POST("", orderController.CreateOrder)
	orders.GET("", orderController.ListOrdersFromDB)
	orders.GET("/:id", orderController.GetOrder)
	orders.GET("/:id/db", orderController.GetOrderFromDB)

	payments := api.Group("/payments")
	payments.POST("/verify", paymentController.VerifyPayment)
	payments.POST("/capture", paymentController.CapturePayment)
	payments.GET("", paymentController.ListPaymentsFromDB)
	payments.GET("/:id", paymentController.GetPayment)
	payments.GET("/:id/db", paymentController.GetPaymentFromDB)

	webhooks := api.Group("/webhooks")
	webhooks.POST("/razorpay", webhookController.HandleEvent)
	webhooks.GET("/events", webhookController.ListEvents)

	subscriptions := api.Group("/subscriptions")
	subscriptions.POST("/plans", subscriptionController.CreatePlan)
	subscriptions.GET("/plans", subscriptionController.ListPlans)
	subscriptions.GET("/plans/:id", subscriptionController.GetPlan)
	subscriptions.POST("", subscriptionController.CreateSubscription)
	subscriptions.GET("", subscriptionController.ListSubscriptions)
	subscriptions.GET("/db/list", subscriptionController.ListSubscriptionsFromDB)
	subscriptions.GET("/invoices/:id", subscriptionController.GetInvoice)
	subscriptions.GET("/invoices/:id/db", subscriptionController.GetInvoiceFromDB)
	subscriptions.GET("/:id", subscriptionController.GetSubscription)
	subscriptions.GET("/:id/db", subscriptionController.GetSubscriptionFromDB)
	subscriptions.POST("/:id/cancel", subscriptionController.CancelSubscription)
	subscriptions.POST("/:id/pause", subscriptionController.PauseSubscription)
	subscriptions.POST("/:id/resume", subscriptionController.ResumeSubscription)
	subscriptions.GET("/:id/invoices", subscriptionController.ListSubscriptionInvoices)
	subscriptions.GET("/:id/invoices/db", subscriptionController.ListSubscriptionInvoicesFromDB)

	return e
}

func mustCreateServices() (*config.Config, *sql.DB, *services, func()) {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}
	if err := configureLogging(cfg); err != nil {
		logrus.WithError(err).Fatal("Failed to configure logging")
	}

	db, err := sql.Open("mysql", cfg.MySQL.DSN)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to database")
	}

	db.SetMaxOpenConns(cfg.MySQL.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MySQL.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.MySQL.ConnMaxLifetime)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		logrus.WithError(err).Fatal("Failed to ping database")
	}

	client := razorpay.NewClient(razorpay.Config{
		KeyID:         cfg.Razorpay.KeyID,
		KeySecret:     cfg.Razorpay.KeySecret,
		WebhookSecret: cfg.Razorpay.WebhookSecret,
		HTTPTimeout:   cfg.Razorpay.HTTPTimeout,
	})

	orderRepo := repository.NewOrderRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)
	subscriptionPaymentRepo := repository.NewSubscriptionPaymentRepository(db)
	webhookEventRepo := repository.NewWebhookEventRepository(db)

	svcs := &services{
		orders:        service.NewOrderService(client, orderRepo),
		payments:      service.NewPaymentService(client, paymentRepo, cfg.Payments),
		subscriptions: service.NewSubscriptionService(client, subscriptionRepo, subscriptionPaymentRepo),
		webhooks: service.NewWebhookService(
			client,
			webhookEventRepo,
			orderRepo,
			paymentRepo,
			subscriptionRepo,
			subscriptionPaymentRepo,
		),
	}

	cleanup := func() {
		if err := db.Close(); err != nil {
			logrus.WithError(err).Warn("Failed to close database")
		}
	}

	return cfg, db, svcs, cleanup
}
