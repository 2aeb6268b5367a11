package routes

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "voice_billing/docs"
	"voice_billing/internal/adapter/http/handlers"
	"voice_billing/internal/bootstrap"
	"voice_billing/internal/config"
	"voice_billing/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 15 * time.Second

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("[startup] invalid configuration")
	}
	logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	c, err := bootstrap.New(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("[startup] failed to wire dependencies")
	}
	defer c.Close()

	router := NewRouter(c)

	if cfg.Scheduler.Enabled {
		c.Scheduler.Start()
		if cfg.Scheduler.RunOnStartup {
			go func() {
				if err := c.Scheduler.RunAll(ctx); err != nil {
					log.Error().Err(err).Msg("[startup] startup job run failed")
				}
			}()
		}
	}

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Info().Str("addr", srv.Addr).Str("env", cfg.App.Env).Msg("[startup] http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to startup the application")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("[shutdown] signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("[shutdown] http server")
	}
	if cfg.Scheduler.Enabled {
		if err := c.Scheduler.Stop(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("[shutdown] scheduler")
		}
	}
}

// NewRouter builds the gin engine with every route group mounted under /v1.
func NewRouter(c *bootstrap.Container) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	admin := handlers.AdminAuth(c.Config.Admin.APIKey)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addInvoiceRoutes(v1, admin,
		handlers.NewInvoiceHandler(c.InvoiceUseCase),
		handlers.NewSweepHandler(c.SweepUseCase),
		handlers.NewPaymentHistoryHandler(c.PaymentHistoryUseCase),
	)
	addPaymentRoutes(v1, admin,
		handlers.NewPaymentHandler(c.PaymentUseCase),
		handlers.NewWebhookHandler(c.PaymentUseCase),
		handlers.NewPaymentHistoryHandler(c.PaymentHistoryUseCase),
	)
	addCallLogRoutes(v1, admin, handlers.NewCallLogsHandler(c.UsageAggregator))
	addSchedulerRoutes(v1, admin, handlers.NewSchedulerHandler(c.Scheduler))
	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(logger.GinMiddleware())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Ctx(c.Request.Context()).Error().Interface("panic", recovered).Msg("Recovered from panic")
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
