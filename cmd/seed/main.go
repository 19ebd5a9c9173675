// Command seed creates an administrator account if one does not exist yet.
// It is idempotent: re-running with the same email is a no-op.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"

	"github.com/greenbdg/atlas-api/internal/account"
	"github.com/greenbdg/atlas-api/internal/auth"
	"github.com/greenbdg/atlas-api/pkg/database"
	"github.com/greenbdg/atlas-api/pkg/utilities"
)

func main() {
	_ = godotenv.Load()

	name := flag.String("name", os.Getenv("SEED_NAME"), "account display name")
	email := flag.String("email", os.Getenv("SEED_EMAIL"), "account email")
	password := flag.String("password", os.Getenv("SEED_PASSWORD"), "account password")
	role := flag.String("role", auth.RoleAdmin, "account role")
	flag.Parse()

	lg, err := utilities.InitLogger(utilities.LogConfigFromEnv())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer lg.Sync()
	sugar := lg.Sugar()

	if *email == "" || *password == "" {
		sugar.Fatal("email and password are required (flags or SEED_EMAIL / SEED_PASSWORD)")
	}

	sqlDB, err := database.Connect(database.ConfigFromEnv())
	if err != nil {
		sugar.Fatalf("db connect: %v", err)
	}
	defer sqlDB.Close()
	db := sqlx.NewDb(sqlDB, "postgres")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	repo := account.NewRepo(db)
	if err := repo.EnsureTable(ctx); err != nil {
		sugar.Fatalf("ensure accounts table: %v", err)
	}

	normalized := auth.NormalizeEmail(*email)
	if _, err := repo.FindByEmail(ctx, normalized); err == nil {
		sugar.Infow("account already exists", "email", normalized)
		return
	}

	hash, err := auth.BcryptHasher{}.Hash(*password)
	if err != nil {
		sugar.Fatalf("hash password: %v", err)
	}

	acct := &account.Account{
		ID:           utilities.NewKSUID(),
		Name:         *name,
		Email:        normalized,
		PasswordHash: hash,
		Role:         *role,
		IsActive:     true,
	}
	if err := repo.Create(ctx, acct); err != nil {
		sugar.Fatalf("create account: %v", err)
	}
	sugar.Infow("account created", "id", acct.ID, "email", acct.Email, "role", acct.Role)
}
