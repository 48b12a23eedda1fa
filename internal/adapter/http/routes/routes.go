package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	_ "equine_billing/docs" // generated by swag init
	"equine_billing/internal/adapter/http/handlers"
	"equine_billing/internal/adapter/persistence/repository"
	"equine_billing/internal/infrastructure/database"
	"equine_billing/internal/infrastructure/lock"
	"equine_billing/internal/infrastructure/mail"
	"equine_billing/internal/infrastructure/messaging"
	"equine_billing/internal/infrastructure/payments"
	"equine_billing/internal/infrastructure/storage"
	"equine_billing/internal/usecase"
	"equine_billing/internal/usecase/interfaces"
	"equine_billing/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups every HTTP handler the router serves.
type Handlers struct {
	Invoice        *handlers.InvoiceHandler
	Payment        *handlers.PaymentHandler
	ServiceRequest *handlers.ServiceRequestHandler
	BillingProfile *handlers.BillingProfileHandler
	Hook           *handlers.HookHandler
}

// Run wires the application from cfg and starts the server.
func Run(ctx context.Context, cfg config.Config) error {
	h, closeFn, err := getHandlers(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeFn()

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.HTTP.Port),
		Handler:           NewRouter(h),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logrus.WithError(err).Error("[http] graceful shutdown failed")
		}
	}()

	logrus.WithField("port", cfg.HTTP.Port).Info("[http] server starting")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to startup the application: %w", err)
	}
	logrus.Info("[http] server stopped")
	return nil
}

// NewRouter builds the gin engine with middlewares and every route.
func NewRouter(h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBillingRoutes(v1, h.Invoice, h.Payment)
	addServiceRequestRoutes(v1, h.ServiceRequest)
	addUserRoutes(v1, h.BillingProfile)
	addHookRoutes(v1, h.Hook)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"code": "ROUTE_NOT_FOUND", "message": "Route not found"})
	})
	return router
}

func getHandlers(ctx context.Context, cfg config.Config) (Handlers, func(), error) {
	ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
	if err != nil {
		return Handlers{}, nil, err
	}
	t := cfg.Tables

	users := repository.NewUserDynamoRepository(ddb, t.Users)
	horses := repository.NewHorseDynamoRepository(ddb, t.Horses)
	owners := repository.NewHorseOwnerDynamoRepository(ddb, t.HorseOwners)
	shows := repository.NewServiceShowDynamoRepository(ddb, t.ServiceShows)
	requests := repository.NewServiceRequestDynamoRepository(ddb, t.ServiceRequests)
	invoices := repository.NewInvoiceDynamoRepository(ddb, t.Invoices, t.ServiceRequests)
	paymentRepo := repository.NewPaymentDynamoRepository(ddb, t.Payments)
	approvers := repository.NewPaymentApproverDynamoRepository(ddb, t.PaymentApprovers)
	notifications := repository.NewNotificationDynamoRepository(ddb, t.Notifications)

	processor, err := payments.NewStripeProcessor(cfg.Stripe.SecretKey, cfg.Stripe.MockMode)
	if err != nil {
		// Settlement and billing profile calls fail with ErrProcessorNotConfigured.
		logrus.WithError(err).Warn("[http] payment processor not configured")
	}

	var closers []func() error
	var push interfaces.IPushSender
	if len(cfg.Kafka.Brokers) > 0 {
		sender := messaging.NewKafkaPushSender(cfg.Kafka.Brokers, cfg.Kafka.PushTopic)
		closers = append(closers, sender.Close)
		push = sender
	} else {
		logrus.Warn("[http] KAFKA_BROKERS empty, push notifications disabled")
	}

	var locker interfaces.ILocker
	if cfg.Redis.Addr != "" {
		client := lock.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		closers = append(closers, client.Close)
		locker = lock.NewRedisLocker(client)
	}

	var mailer interfaces.IMailer
	if cfg.Mailer.Host != "" {
		m := cfg.Mailer
		mailer = mail.NewGomailMailer(m.Host, m.Port, m.Login, m.Password, m.From, m.FromName)
	}

	var archive interfaces.IExportArchive
	if cfg.MinIO.Endpoint != "" {
		m := cfg.MinIO
		a, err := storage.NewMinIOArchive(ctx, m.Endpoint, m.AccessKey, m.SecretKey, m.Bucket, m.UseSSL, m.LinkTTL)
		if err != nil {
			logrus.WithError(err).Warn("[http] export archive disabled")
		} else {
			archive = a
		}
	}

	resolver := usecase.NewEntityResolver(users, horses, owners, shows, requests)
	aggregator := usecase.NewInvoiceAggregator(resolver, approvers)
	notifier := usecase.NewNotifier(users, notifications, push)

	invoiceUseCase := usecase.NewInvoiceUseCase(invoices, requests, paymentRepo, resolver, aggregator, notifier).
		WithExportSinks(mailer, archive)
	settlementUseCase := usecase.NewSettlementUseCase(invoices, paymentRepo, resolver, aggregator, processor, notifier, usecase.SettlementSettings{
		Currency:              cfg.Billing.Currency,
		ApplicationFeePercent: cfg.Billing.ApplicationFeePercent,
		LockTTL:               cfg.Billing.SettlementLockTTL,
	}).WithLocker(locker)
	requestUseCase := usecase.NewServiceRequestUseCase(requests, resolver, notifier)
	profileUseCase := usecase.NewBillingProfileUseCase(users, resolver, processor)

	h := Handlers{
		Invoice:        handlers.NewInvoiceHandler(invoiceUseCase),
		Payment:        handlers.NewPaymentHandler(settlementUseCase),
		ServiceRequest: handlers.NewServiceRequestHandler(requestUseCase),
		BillingProfile: handlers.NewBillingProfileHandler(profileUseCase),
		Hook:           handlers.NewHookHandler(invoiceUseCase, requestUseCase, profileUseCase),
	}
	closeFn := func() {
		for _, c := range closers {
			if err := c(); err != nil {
				logrus.WithError(err).Warn("[http] close failed")
			}
		}
	}
	return h, closeFn, nil
}

func setMiddlewares(router *gin.Engine) {
	router.Use(requestID())
	router.Use(requestLogger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logrus.WithField("panic", recovered).Error("[http] recovered from panic")
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
