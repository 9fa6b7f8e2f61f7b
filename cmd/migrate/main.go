// migrate runs schema migration and seeds the shared chart of accounts.
//
// Usage (from backend directory):
//   DB_USER=... DB_PASSWORD=... DB_HOST=... DB_PORT=... DB_NAME=... go run ./cmd/migrate
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/adidyhq/ledger_backend/config"
	"github.com/adidyhq/ledger_backend/models"
	"github.com/adidyhq/ledger_backend/utils"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("no .env file, using environment")
	}

	config.ConnectDatabaseWithRetry()
	db := config.GetDB()
	if db == nil {
		fmt.Fprintln(os.Stderr, "database not initialized (config.GetDB returned nil). Set DB_* env vars.")
		os.Exit(1)
	}
	config.ConnectRedisWithRetry()

	models.MigrateTable()

	ctx := context.Background()
	ctx = utils.SetCorrelationIdInContext(ctx, utils.NewCorrelationId())
	ctx = utils.SetUserNameInContext(ctx, "Seed")
	ctx = utils.SetIsAdminInContext(ctx, true)
	ctx = utils.SetSkipOwnerScopeInContext(ctx, true)

	if err := models.SeedDefaults(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "failed to seed default accounts: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("migration and seed complete")
}
