package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"

	"github.com/greenbdg/atlas-api/internal/account"
	"github.com/greenbdg/atlas-api/internal/auth"
	"github.com/greenbdg/atlas-api/internal/invoice"
	"github.com/greenbdg/atlas-api/internal/organisation"
	"github.com/greenbdg/atlas-api/internal/router"
	"github.com/greenbdg/atlas-api/internal/site"
	"github.com/greenbdg/atlas-api/pkg/database"
	"github.com/greenbdg/atlas-api/pkg/utilities"
)

func main() {
	// load .env file if present so os.Getenv picks values from it
	_ = godotenv.Load()

	lg, err := utilities.InitLogger(utilities.LogConfigFromEnv())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer lg.Sync()

	sugar := lg.Sugar()
	sugar.Info("starting atlas-api")

	sqlDB, err := database.Connect(database.ConfigFromEnv())
	if err != nil {
		sugar.Fatalf("db connect: %v", err)
	}
	defer sqlDB.Close()

	db := sqlx.NewDb(sqlDB, "postgres")
	defer db.Close()

	setupCtx, setupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer setupCancel()
	for name, ensure := range map[string]func(context.Context) error{
		"accounts":      account.NewRepo(db).EnsureTable,
		"organisations": organisation.NewRepo(db).EnsureTable,
		"sites":         site.NewRepo(db).EnsureTable,
		"invoices":      invoice.NewRepo(db).EnsureTable,
	} {
		if err := ensure(setupCtx); err != nil {
			sugar.Fatalf("ensure %s table: %v", name, err)
		}
	}

	authCfg := auth.ConfigFromEnv()
	if authCfg.UsingDefaultSecret() {
		sugar.Warn("JWT_SECRET not set, using the development default; tokens are forgeable")
	}

	handler, err := router.RegisterRoutes(sugar, db, authCfg)
	if err != nil {
		sugar.Fatalf("register routes: %v", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: handler,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			sugar.Fatalf("http server failed: %v", err)
		}
	}()
	sugar.Infow("service is running", "port", port)

	<-ctx.Done()
	sugar.Info("shutting down")

	doneCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(doneCtx); err != nil {
		sugar.Warnf("http server shutdown failed: %v", err)
	}
	sugar.Info("goodbye")
}
