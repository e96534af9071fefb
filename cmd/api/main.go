package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/multierr"

	"github.com/anagarciahdz/grocerhub-backend/api/routes"
	customersvc "github.com/anagarciahdz/grocerhub-backend/internal/customers"
	dashboardsvc "github.com/anagarciahdz/grocerhub-backend/internal/dashboard"
	inventorysvc "github.com/anagarciahdz/grocerhub-backend/internal/inventory"
	ordersvc "github.com/anagarciahdz/grocerhub-backend/internal/orders"
	productsvc "github.com/anagarciahdz/grocerhub-backend/internal/products"
	uomsvc "github.com/anagarciahdz/grocerhub-backend/internal/uom"
	"github.com/anagarciahdz/grocerhub-backend/pkg/config"
	"github.com/anagarciahdz/grocerhub-backend/pkg/db"
	"github.com/anagarciahdz/grocerhub-backend/pkg/logger"
	"github.com/anagarciahdz/grocerhub-backend/pkg/metrics"
	"github.com/anagarciahdz/grocerhub-backend/pkg/migrate"
	"github.com/anagarciahdz/grocerhub-backend/web"
)

const shutdownTimeout = 15 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	if err := run(cfg, logg); err != nil {
		logg.Error(context.Background(), "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logg *logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbClient, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		return err
	}

	if err := migrate.MaybeRunDev(ctx, cfg, logg, dbClient); err != nil {
		return multierr.Append(err, dbClient.Close())
	}

	router, err := buildRouter(cfg, logg, dbClient)
	if err != nil {
		return multierr.Append(err, dbClient.Close())
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.ListenAndServe()
	}()

	startCtx := logg.WithFields(ctx, map[string]any{
		"env":  cfg.App.Env,
		"addr": server.Addr,
	})
	logg.Info(startCtx, "starting api server")

	var errs error
	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			errs = multierr.Append(errs, err)
		}
	case <-ctx.Done():
		logg.Info(startCtx, "shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		errs = multierr.Append(errs, server.Shutdown(shutdownCtx))
	}

	return multierr.Append(errs, dbClient.Close())
}

func buildRouter(cfg *config.Config, logg *logger.Logger, dbClient *db.Client) (http.Handler, error) {
	gdb := dbClient.DB()

	products, err := productsvc.NewService(productsvc.NewRepository(gdb), dbClient, cfg.Inventory)
	if err != nil {
		return nil, err
	}
	customers, err := customersvc.NewService(customersvc.NewRepository(gdb))
	if err != nil {
		return nil, err
	}
	orders, err := ordersvc.NewService(ordersvc.NewRepository(gdb), dbClient)
	if err != nil {
		return nil, err
	}
	dashboard, err := dashboardsvc.NewService(dashboardsvc.NewRepository(gdb))
	if err != nil {
		return nil, err
	}
	inventory, err := inventorysvc.NewService(inventorysvc.NewRepository(gdb), cfg.Inventory)
	if err != nil {
		return nil, err
	}

	renderer, err := web.NewRenderer(logg)
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return routes.NewRouter(routes.Deps{
		Logger:    logg,
		DB:        dbClient,
		Metrics:   metrics.NewHTTPMetrics(registry),
		Gatherer:  registry,
		Renderer:  renderer,
		UOMRepo:   uomsvc.NewRepository(gdb),
		Products:  products,
		Customers: customers,
		Orders:    orders,
		Dashboard: dashboard,
		Inventory: inventory,
	}), nil
}
