package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/agencybooks/ledger_engine/internal/core/services"
	"github.com/agencybooks/ledger_engine/internal/handlers"
	"github.com/agencybooks/ledger_engine/internal/middleware"
	"github.com/agencybooks/ledger_engine/internal/repositories/database/pgsql"
	"github.com/agencybooks/ledger_engine/pkg/config"
	"github.com/agencybooks/ledger_engine/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ulule/limiter/v3"
	memorystore "github.com/ulule/limiter/v3/drivers/store/memory"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title Ledger Engine API
// @version 1.0
// @description Read-only general ledger reconstruction over a posted journal store.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	// The journal store is owned by the external posting subsystem; migrations
	// only bootstrap a local development schema and stay off in production.
	if cfg.RunMigrations {
		if err := runMigrations(cfg.DatabaseURL, logger); err != nil {
			logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSAllowOrigins,
		AllowMethods: []string{"GET"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	r.GET("/health", handlers.GetHealth)
	setupAPIV1Routes(r, cfg, dbPool)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func setupAPIV1Routes(r *gin.Engine, cfg *config.Config, dbPool *pgxpool.Pool) {
	v1 := r.Group("/api/v1")
	addLedgerAPI(v1, cfg, dbPool)
}

func addLedgerAPI(v1 *gin.RouterGroup, cfg *config.Config, dbPool *pgxpool.Pool) {
	entryRepo := pgsql.NewJournalEntryRepository(dbPool)
	accountRepo := pgsql.NewAccountRepository(dbPool)
	ledgerService := services.NewLedgerService(entryRepo, accountRepo,
		services.WithEntryFetchLimit(cfg.EntryFetchLimit))
	ledgerHandler := handlers.NewLedgerHandler(ledgerService)

	ledgerRoutes := v1.Group("/ledger")
	ledgerRoutes.GET("/summary", ledgerHandler.GetSummary)
	ledgerRoutes.GET("/transactions", ledgerHandler.GetTransactions)
	ledgerRoutes.GET("/balances", ledgerHandler.GetBalances)

	rate, err := limiter.NewRateFromFormatted(cfg.ExportRateLimit)
	if err != nil {
		slog.Warn("Invalid EXPORT_RATE_LIMIT, defaulting to 10-M", slog.String("error", err.Error()))
		rate, _ = limiter.NewRateFromFormatted("10-M")
	}
	exportLimiter := limiter.New(memorystore.NewStore(), rate)
	ledgerRoutes.GET("/export", middleware.RateLimit(exportLimiter), ledgerHandler.ExportCSV)
}

// runMigrations applies the local development schema via golang-migrate, using
// a temporary database/sql connection over the pgx stdlib driver.
func runMigrations(databaseURL string, logger *slog.Logger) error {
	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return err
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
