package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/restaurant_ordering/internal/config"
	"github.com/Skotchmaster/restaurant_ordering/internal/events"
	"github.com/Skotchmaster/restaurant_ordering/internal/httpserver"
	"github.com/Skotchmaster/restaurant_ordering/internal/repo"
	"github.com/Skotchmaster/restaurant_ordering/internal/search"
	"github.com/Skotchmaster/restaurant_ordering/internal/seed"
	"github.com/Skotchmaster/restaurant_ordering/internal/service"
	"github.com/Skotchmaster/restaurant_ordering/pkg/db"
	"github.com/Skotchmaster/restaurant_ordering/pkg/logging"
	middleware "github.com/Skotchmaster/restaurant_ordering/pkg/middleware/auth"
)

func main() {
	cfg := config.Load()

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)
	ctx := logging.IntoContext(context.Background(), logger)

	gdb, err := db.Open(ctx, cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db init: %v", err)
	}

	store := &repo.GormRepo{DB: gdb}
	if err := store.Migrate(ctx); err != nil {
		log.Fatalf("db migrate: %v", err)
	}

	if cfg.SeedDemo {
		if err := seed.Demo(ctx, gdb); err != nil {
			log.Fatalf("seed demo data: %v", err)
		}
	}

	var pub events.Publisher = events.Nop{}
	if len(cfg.KafkaBrokers) > 0 {
		pub = events.NewProducer(cfg.KafkaBrokers)
		logger.Info("kafka_enabled", "brokers", cfg.KafkaBrokers)
	}

	menuSvc := &service.MenuService{Repo: store, Events: pub}
	categorySvc := &service.CategoryService{Repo: store, Events: pub}
	if cfg.ESURL != "" {
		esClient, err := search.NewClient(search.Config{URL: cfg.ESURL, User: cfg.ESUser, Password: cfg.ESPassword})
		if err != nil {
			log.Fatal(err)
		}
		index := &search.MenuIndex{ES: esClient, Index: cfg.ESIndex}
		menuSvc.Index = index
		categorySvc.Index = index
		logger.Info("search_enabled", "index", cfg.ESIndex)

		if _, err := menuSvc.Reindex(ctx); err != nil {
			logger.Error("menu_reindex_error", "error", err)
		}
	}

	var tokens service.TokenIssuer = service.LegacyTokens{}
	var adminAuth echo.MiddlewareFunc
	if cfg.TokenMode == config.TokenModeJWT {
		tokens = service.JWTTokens{Secret: cfg.JWTSecret, TTL: cfg.JWTTTL}
		adminAuth = middleware.NewBearerAuth(cfg.JWTSecret).RequireAdmin
	} else {
		logger.Warn("admin_routes_unauthenticated", "token_mode", cfg.TokenMode)
	}
	if cfg.DemoBypass {
		logger.Warn("auth_demo_bypass_enabled")
	}

	clock := service.Clock{Loc: cfg.Location}
	deps := &httpserver.Deps{
		APIPrefix: cfg.APIPrefix,
		DB:        gdb,
		Dashboard: &httpserver.DashboardHTTP{
			Stats:   &service.DashboardService{Repo: store, Clock: clock},
			Reports: &service.ReportService{Repo: store, Clock: clock},
		},
		Menu:       &httpserver.MenuHTTP{Svc: menuSvc},
		Categories: &httpserver.CategoryHTTP{Svc: categorySvc},
		Users:      &httpserver.UserHTTP{Svc: &service.UserService{Repo: store, Events: pub}},
		Staff:      &httpserver.StaffHTTP{Svc: &service.StaffService{Repo: store, Events: pub}},
		Auth: &httpserver.AuthHTTP{Svc: &service.AuthService{
			Repo:       store,
			Tokens:     tokens,
			Events:     pub,
			DemoBypass: cfg.DemoBypass,
		}},
		AdminAuth: adminAuth,
	}

	e := httpserver.New(logger)
	if err := httpserver.Register(e, deps); err != nil {
		log.Fatalf("register routes: %v", err)
	}

	srv := &http.Server{
		Addr:         cfg.ServerPort,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		logger.Info("http_listen", "addr", cfg.ServerPort, "prefix", cfg.APIPrefix)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	go func() {
		<-quit
		log.Println("force exit")
		os.Exit(1)
	}()

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server_shutdown_error", "error", err)
	}
	if err := pub.Close(); err != nil {
		logger.Error("kafka_close_error", "error", err)
	}
	if err := db.Close(gdb); err != nil {
		logger.Error("db_close_error", "error", err)
	}

	logger.Info("shutdown complete")
}
