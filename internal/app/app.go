package app

import (
	"context"
	"net/http"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/app"
	"github.com/go-faster/sdk/zctx"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/xenking/harshita-store/internal/domain/catalog"
	"github.com/xenking/harshita-store/internal/domain/locale"
	"github.com/xenking/harshita-store/internal/domain/order"
	"github.com/xenking/harshita-store/internal/domain/product"
	"github.com/xenking/harshita-store/internal/handler"
	"github.com/xenking/harshita-store/internal/session"
	"github.com/xenking/harshita-store/internal/storage/kv"
	"github.com/xenking/harshita-store/internal/storage/postgres"
	"github.com/xenking/harshita-store/internal/storage/redis"
	"github.com/xenking/harshita-store/internal/storage/sqlite"
	"github.com/xenking/harshita-store/pkg/health"
	"github.com/xenking/harshita-store/pkg/httpmiddleware"
)

// Run creates all dependencies, starts the HTTP server, and handles graceful
// shutdown. It is the single wiring point for the application.
func Run(ctx context.Context, lg *zap.Logger, m *app.Telemetry, cfg *Config) error {
	lg.Info("Initializing",
		zap.String("addr", cfg.Addr),
		zap.String("storage", cfg.Storage.Driver),
	)
	if err := locale.Verify(); err != nil {
		return errors.Wrap(err, "verify translations")
	}

	healthSvc := health.New()

	// Catalog source: PostgreSQL when configured, the built-in sample catalog
	// otherwise.
	var (
		repo product.Repository = emptyCatalog{}
		pool *pgxpool.Pool
	)
	if cfg.DatabaseURL != "" {
		var err error
		pool, err = postgres.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return errors.Wrap(err, "create db pool")
		}
		defer pool.Close()

		if err := postgres.RunMigrations(ctx, pool); err != nil {
			return errors.Wrap(err, "run migrations")
		}
		repo = postgres.NewCatalogRepository(pool)
		healthSvc.AddReadinessCheck("postgres", 5*time.Second, func(ctx context.Context) error {
			return pool.Ping(ctx)
		})
	} else {
		lg.Warn("No database configured, serving the sample catalog")
	}

	store, err := openStorage(ctx, cfg, pool)
	if err != nil {
		return errors.Wrap(err, "open session storage")
	}
	defer func() {
		if err := store.Close(); err != nil {
			lg.Warn("Close session storage", zap.Error(err))
		}
	}()

	healthSvc.AddReadinessCheck("storage", 5*time.Second, health.PingCheck(cfg.Storage.Driver, store))
	healthSvc.AddLivenessCheck("goroutines", time.Second, health.GoroutineCountCheck(10000))
	healthSvc.Start(ctx, 10*time.Second)
	healthSvc.SetReady(true)

	// Domain services.
	sessions := session.NewRegistry(store, cfg.Session.IdleTTL)
	catalogSvc := catalog.NewService(repo, m.TracerProvider())
	orderSvc := order.NewService(order.Config{
		Endpoint:       cfg.Order.Endpoint,
		CountryCode:    cfg.Order.CountryCode,
		FallbackNumber: cfg.Order.WhatsAppNumber,
	})

	// HTTP handlers.
	h, err := handler.NewHandler(
		handler.Config{
			ImageBaseURL: cfg.ImageBaseURL,
			Store: product.StoreSettings{
				StoreName:      cfg.Store.Name,
				PrimaryPhone:   cfg.Store.Phone,
				WhatsAppNumber: cfg.Order.WhatsAppNumber,
				City:           cfg.Store.City,
			},
		},
		catalogSvc,
		sessions,
		orderSvc,
		m.MeterProvider(),
	)
	if err != nil {
		return errors.Wrap(err, "create handler")
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /livez", healthSvc.LiveEndpoint)
	mux.HandleFunc("GET /readyz", healthSvc.ReadyEndpoint)
	h.Register(mux)
	routeFinder := httpmiddleware.MakeRouteFinder(mux)

	server := &http.Server{
		ReadHeaderTimeout: time.Second,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20,
		Addr:              cfg.Addr,
		Handler:           httpmiddleware.Wrap(mux, middlewares(ctx, cfg, routeFinder, m)...),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		sessions.Run(gctx, cfg.Session.Sweep)
		return nil
	})
	g.Go(func() error {
		// Graceful shutdown: wait for cancellation, drain, then stop.
		<-gctx.Done()
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
		return nil
	})
	g.Go(func() error {
		lg.Info("Server listening", zap.String("addr", cfg.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "server")
		}
		return nil
	})
	return g.Wait()
}

// middlewares returns the server middleware chain, outermost first. The rate
// limiter runs before Session so clients without a session cannot mint a
// fresh window per request.
func middlewares(ctx context.Context, cfg *Config, find httpmiddleware.RouteFinder, m httpmiddleware.Telemetry) []httpmiddleware.Middleware {
	return []httpmiddleware.Middleware{
		httpmiddleware.Recovery(),
		httpmiddleware.CORS(httpmiddleware.CORSConfig{
			Origins:          cfg.CORS.Origins,
			Headers:          []string{"Content-Type", httpmiddleware.DefaultSessionHeader, httpmiddleware.RequestIDHeader},
			AllowCredentials: cfg.CORS.AllowCredentials,
			MaxAge:           86400,
		}),
		httpmiddleware.RequestID(),
		httpmiddleware.InjectLogger(zctx.From(ctx)),
		httpmiddleware.RateLimitWithCleanup(ctx, httpmiddleware.RateLimitConfig{
			Max:    cfg.RateLimit.Max,
			Window: cfg.RateLimit.Window,
			Key:    httpmiddleware.ClientIP,
		}),
		httpmiddleware.Session(httpmiddleware.SessionConfig{
			Cookie: cfg.Session.CookieName,
			MaxAge: cfg.Session.CookieMaxAge,
			Secure: cfg.Session.CookieSecure,
		}),
		httpmiddleware.Instrument("storefront-api", find, m),
		httpmiddleware.LogRequests(find),
		httpmiddleware.Labeler(find),
	}
}

// openStorage opens the session storage selected by cfg. pool is non-nil when
// a database is configured.
func openStorage(ctx context.Context, cfg *Config, pool *pgxpool.Pool) (kv.Store, error) {
	switch cfg.Storage.Driver {
	case DriverSQLite:
		return sqlite.Open(ctx, cfg.Storage.Path)
	case DriverPostgres:
		if pool == nil {
			return nil, errors.New("postgres storage without a database")
		}
		return postgres.NewKV(pool), nil
	case DriverRedis:
		return redis.Open(ctx, cfg.Storage.RedisURL, cfg.Storage.Prefix, cfg.Storage.TTL)
	case DriverMemory:
		zctx.From(ctx).Warn("Session storage is in memory, carts are lost on restart")
		return kv.NewMemory(), nil
	default:
		return nil, errors.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// emptyCatalog is the catalog source when no database is configured. The
// catalog service answers with its sample data.
type emptyCatalog struct{}

func (emptyCatalog) ListProducts(context.Context) ([]product.Product, error)   { return nil, nil }
func (emptyCatalog) ListCategories(context.Context) ([]product.Category, error) { return nil, nil }
func (emptyCatalog) GetSettings(context.Context) (*product.StoreSettings, error) {
	return nil, product.ErrNotFound
}
