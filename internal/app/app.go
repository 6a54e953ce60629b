package app

import (
	"context"
	"net/http"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/app"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/xenking/jewel-store/gen/oas"
	"github.com/xenking/jewel-store/internal/domain/auth"
	"github.com/xenking/jewel-store/internal/domain/coupon"
	"github.com/xenking/jewel-store/internal/domain/invoice"
	"github.com/xenking/jewel-store/internal/domain/order"
	"github.com/xenking/jewel-store/internal/domain/payment"
	"github.com/xenking/jewel-store/internal/domain/settings"
	"github.com/xenking/jewel-store/internal/gateway/razorpay"
	"github.com/xenking/jewel-store/internal/handler"
	"github.com/xenking/jewel-store/internal/storage/postgres"
	"github.com/xenking/jewel-store/pkg/health"
	"github.com/xenking/jewel-store/pkg/httpmiddleware"
)

const (
	apiPrefix = "/api"
	// maxBodySize caps request bodies.
	maxBodySize = 1 << 20
)

// Run creates all dependencies, starts the HTTP server, and handles graceful
// shutdown. It is the single wiring point for the application.
func Run(ctx context.Context, lg *zap.Logger, m *app.Telemetry, cfg *Config) error {
	lg.Info("Initializing", zap.String("addr", cfg.Addr))

	pricingDefaults, err := cfg.Pricing.Defaults()
	if err != nil {
		return errors.Wrap(err, "pricing config")
	}
	if cfg.Gateway.AllowDemoPayments {
		lg.Warn("Demo payments are enabled, signatures are not required for demo orders",
			zap.String("prefix", cfg.Gateway.DemoPrefix))
	}

	// PostgreSQL pool + migrations.
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return errors.Wrap(err, "create db pool")
	}
	defer pool.Close()

	if err := postgres.RunMigrations(ctx, pool); err != nil {
		return errors.Wrap(err, "run migrations")
	}

	healthSvc := health.New()
	healthSvc.AddReadinessCheck("postgres", health.PingCheck(pool), health.WithTimeout(5*time.Second))
	healthSvc.AddLivenessCheck("goroutines", health.GoroutineCountCheck(10000))
	healthSvc.AddLivenessCheck("gc", health.GCMaxPauseCheck(time.Second))
	healthSvc.Start(ctx, 10*time.Second)

	// Repositories.
	productRepo := postgres.NewProductRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	couponRepo := postgres.NewCouponRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)
	apikeyRepo := postgres.NewAPIKeyRepository(pool)

	// Domain services.
	siteSettings := settings.NewResolver(settingsRepo, pricingDefaults)
	couponValidator := coupon.NewRepoValidator(couponRepo, customerRepo)
	orderService, err := order.NewService(productRepo, couponValidator, orderRepo, siteSettings, m.MeterProvider())
	if err != nil {
		return errors.Wrap(err, "create order service")
	}
	invoiceGenerator, err := invoice.NewGenerator(invoiceRepo, orderService, productRepo, customerRepo, siteSettings, m.MeterProvider())
	if err != nil {
		return errors.Wrap(err, "create invoice generator")
	}

	gateways := razorpay.NewProvider(razorpay.ProviderConfig{
		BaseURL:   cfg.Gateway.BaseURL,
		KeyID:     cfg.Gateway.KeyID,
		KeySecret: cfg.Gateway.KeySecret,
		Timeout:   cfg.Gateway.Timeout,
	}, siteSettings)
	paymentService, err := payment.NewService(payment.Config{
		AllowDemo:  cfg.Gateway.AllowDemoPayments,
		DemoPrefix: cfg.Gateway.DemoPrefix,
		Currency:   pricingDefaults.Currency,
	}, gateways, orderService, siteSettings, invoiceGenerator, m.TracerProvider(), m.MeterProvider())
	if err != nil {
		return errors.Wrap(err, "create payment service")
	}

	h := handler.NewHandler(
		handler.HandlerConfig{DevMode: cfg.DevMode, Company: cfg.Company.header()},
		handler.Deps{
			Products: productRepo,
			Orders:   orderService,
			Coupons:  couponValidator,
			Payments: paymentService,
			Invoices: invoiceGenerator,
			Settings: settingsRepo,
			Gateway:  gateways,
		},
	)
	securityHandler := handler.NewSecurityHandler(auth.NewAuthenticator(apikeyRepo, []byte(cfg.APIKeyPepper)))

	oasServer, err := oas.NewServer(h, securityHandler,
		oas.WithPathPrefix(apiPrefix),
		oas.WithErrorHandler(h.HandleError),
		oas.WithTracerProvider(m.TracerProvider()),
		oas.WithMeterProvider(m.MeterProvider()),
	)
	if err != nil {
		return errors.Wrap(err, "create oas server")
	}

	// Mux: health endpoints + ogen API routes on one server.
	mux := http.NewServeMux()
	mux.HandleFunc("GET /livez", healthSvc.LiveEndpoint)
	mux.HandleFunc("GET /readyz", healthSvc.ReadyEndpoint)
	mux.Handle(apiPrefix+"/", http.MaxBytesHandler(oasServer, maxBodySize))
	routeFinder := httpmiddleware.MakeRouteFinder(apiPrefix, oasServer, mux)

	server := &http.Server{
		ReadHeaderTimeout: time.Second,
		ReadTimeout:       5 * time.Second,
		// Leaves room for a slow gateway call inside a request.
		WriteTimeout:   cfg.Gateway.Timeout + 10*time.Second,
		IdleTimeout:    120 * time.Second,
		MaxHeaderBytes: 1 << 20,
		Addr:           cfg.Addr,
		Handler: httpmiddleware.Wrap(mux,
			httpmiddleware.Recovery(),
			httpmiddleware.CORS(httpmiddleware.CORSConfig{
				AllowOrigins:     cfg.CORS.Origins,
				AllowHeaders:     []string{"Content-Type", "Authorization", "api_key"},
				ExposeHeaders:    []string{httpmiddleware.HeaderRequestID},
				AllowCredentials: cfg.CORS.AllowCredentials,
				MaxAge:           86400,
			}),
			httpmiddleware.RateLimit(ctx, httpmiddleware.RateLimitConfig{
				Max:        cfg.RateLimit.Max,
				Window:     cfg.RateLimit.Window,
				Prefixes:   []string{"/api/"},
				TrustProxy: cfg.RateLimit.TrustProxy,
			}),
			httpmiddleware.RateLimit(ctx, httpmiddleware.RateLimitConfig{
				Max:        cfg.RateLimit.CouponMax,
				Window:     cfg.RateLimit.Window,
				Prefixes:   []string{"/api/coupons/"},
				TrustProxy: cfg.RateLimit.TrustProxy,
			}),
			httpmiddleware.InjectLogger(zctx.From(ctx)),
			httpmiddleware.RequestID(),
			httpmiddleware.Instrument("jewel-api", routeFinder, m),
			httpmiddleware.LogRequests(routeFinder),
			httpmiddleware.Labeler(routeFinder),
		),
	}
	healthSvc.SetReady(true)

	// Graceful shutdown: wait for context cancellation, drain, then stop.
	shutdownDone := make(chan struct{})
	go func() {
		<-ctx.Done()
		healthSvc.SetReady(false)
		lg.Info("Readiness set to false, draining", zap.Duration("delay", cfg.Graceful.ReadinessDelay))
		time.Sleep(cfg.Graceful.ReadinessDelay)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Graceful.ShutdownTimeout)
		defer cancel()

		lg.Info("Shutting down server", zap.Duration("timeout", cfg.Graceful.ShutdownTimeout))
		if err := server.Shutdown(shutdownCtx); err != nil {
			lg.Error("Server shutdown error", zap.Error(err))
		}
		healthSvc.Stop()
		close(shutdownDone)
	}()

	lg.Info("Server listening", zap.String("addr", cfg.Addr))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "server")
	}
	<-shutdownDone
	return nil
}
