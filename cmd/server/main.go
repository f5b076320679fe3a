package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/clubechip/signup-api/internal/config"
	"github.com/clubechip/signup-api/internal/http/health"
	"github.com/clubechip/signup-api/internal/http/v1/routes"
	applog "github.com/clubechip/signup-api/internal/platform/logging"
	appmiddleware "github.com/clubechip/signup-api/internal/platform/middleware"
	"github.com/clubechip/signup-api/internal/platform/respond"
	"github.com/clubechip/signup-api/internal/service/address"
	"github.com/clubechip/signup-api/internal/service/signup"
	"github.com/clubechip/signup-api/internal/service/taxid"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

func main() {
	defer func() {
		if err := applog.Sync(); err != nil {
			applog.LogError(context.Background(), "logger sync error", err)
		}
	}()
	if err := applog.Err(); err != nil {
		applog.LogError(context.Background(), "logger init error", err)
	}

	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		applog.LogFatal(context.Background(), "configuration error", err)
	}

	httpClient := &http.Client{Timeout: 10 * time.Second}
	addressSvc := address.NewClient(httpClient, address.WithBaseURL(cfg.AddressBaseURL))
	taxidSvc := taxid.NewClient(httpClient, taxid.WithBaseURL(cfg.TaxIDBaseURL), taxid.WithToken(cfg.TaxIDToken))
	signupSvc := signup.NewClient(httpClient, signup.WithBaseURL(cfg.SignupBaseURL))

	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())

	// Base middleware stack
	router.Use(
		appmiddleware.Security("/v1/api-docs"),
		appmiddleware.Vary(),
		appmiddleware.CORS(),
		appmiddleware.RequestID(),
		chimiddleware.RealIP,
		// Form payloads are small; anything bigger is abuse.
		chimiddleware.RequestSize(1<<20), // 1 MB limit
		applog.RequestLogger(),
		applog.AccessLogger(),
		respond.Recoverer(),
	)

	router.Get("/health", health.Handler)

	apiCfg := huma.DefaultConfig("Signup API", Version)
	apiCfg.DocsPath = "/api-docs"
	apiCfg.Servers = []*huma.Server{{URL: "/v1"}}

	v1 := chi.NewRouter()
	api := humachi.New(v1, apiCfg)
	routes.Register(api, addressSvc, taxidSvc, signupSvc, cfg.SignupToken, config.Plans(), config.Regions())
	router.Mount("/v1", v1)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    64 << 10, // 64 KB
	}

	listenErr := make(chan error, 1)
	go func() {
		applog.LogInfo(context.Background(), "server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			listenErr <- err
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-listenErr:
		applog.LogError(context.Background(), "listen failed", err, zap.String("addr", srv.Addr))
		os.Exit(1)
	case <-stop:
		applog.LogInfo(context.Background(), "shutdown signal received")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		applog.LogError(ctx, "server shutdown error", err)
	}
	applog.LogInfo(context.Background(), "server exited")
}
