package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/BlackSenju/techhive-automation/docs"
	"github.com/BlackSenju/techhive-automation/internal/activity"
	"github.com/BlackSenju/techhive-automation/internal/automation"
	"github.com/BlackSenju/techhive-automation/internal/config"
	api "github.com/BlackSenju/techhive-automation/internal/http"
	"github.com/BlackSenju/techhive-automation/internal/http/handlers"
	rl "github.com/BlackSenju/techhive-automation/internal/http/rate_limiter"
	"github.com/BlackSenju/techhive-automation/internal/obs"
	"github.com/BlackSenju/techhive-automation/internal/scheduler"
	"github.com/BlackSenju/techhive-automation/internal/shopify"
	"github.com/BlackSenju/techhive-automation/internal/worker"
)

// @title TechHive Catalog Automation API
// @version 1.0
// @description Proxies and automates product operations against a Shopify store.
// @host localhost:3000
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()
	if cfg.Debug {
		obs.Init(slog.LevelDebug)
	}

	if !cfg.ShopifyConfigured() {
		obs.Logger.Warn("shopify_not_configured",
			"detail", "SHOPIFY_STORE_DOMAIN and SHOPIFY_ACCESS_TOKEN are unset; running in degraded mode")
	}

	activityLog := activity.NewLog()
	client := shopify.NewClient(cfg.StoreDomain, cfg.AccessToken)
	svc := automation.NewService(client, activityLog)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool := worker.NewPool(16)
	pool.Start(ctx)

	sched := scheduler.New(svc, pool, activityLog)
	if err := sched.Start(); err != nil {
		obs.Logger.Error("scheduler_start_failed", "error", err)
		os.Exit(1)
	}

	go rl.StartVisitorCleanupLoop(time.Minute)

	handlers.SetCatalog(client)
	handlers.SetActivityLog(activityLog)
	handlers.SetAutomationService(svc)
	handlers.SetWorkerPool(pool)
	api.SetAdminSecret(cfg.AdminJWTSecret)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           api.NewRouter(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		obs.Logger.Info("http_listen", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			obs.Logger.Error("http_server_error", "error", err)
			os.Exit(1)
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	s := <-sigc
	obs.Logger.Info("shutdown_signal", "signal", s.String())

	sched.Stop()
	pool.Stop()

	drainCtx, cancelDrain := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancelDrain()
	if !pool.Wait(drainCtx) {
		obs.Logger.Warn("shutdown_drain_timeout")
	}

	srvCtx, cancelSrv := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelSrv()
	if err := srv.Shutdown(srvCtx); err != nil {
		obs.Logger.Error("http_shutdown_error", "error", err)
	}
	obs.Logger.Info("service_stopped")
}
