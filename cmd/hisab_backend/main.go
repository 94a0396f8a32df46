package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/sikandargaba/AA-Hisab-sub000/internal/core/domain"
	portsrepo "github.com/sikandargaba/AA-Hisab-sub000/internal/core/ports/repositories"
	"github.com/sikandargaba/AA-Hisab-sub000/internal/core/services"
	"github.com/sikandargaba/AA-Hisab-sub000/internal/handlers"
	"github.com/sikandargaba/AA-Hisab-sub000/internal/middleware"
	"github.com/sikandargaba/AA-Hisab-sub000/internal/platform/config"
	"github.com/sikandargaba/AA-Hisab-sub000/internal/repositories/database/pgsql"
	"github.com/sikandargaba/AA-Hisab-sub000/pkg/database"
)

// @title Hisab Ledger API
// @version 1.0
// @description Double-entry ledger posting and balance computation backend.

// @host localhost:8080
// @BasePath /
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection pool (for application use)
	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	if err := runMigrations(logger, cfg.DatabaseURL); err != nil {
		logger.Error("Failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := pgsql.NewRepositoryProvider(dbPool)

	// Resolve the posting configuration once; the engine never re-queries it.
	postingCfg, err := resolvePostingConfig(context.Background(), repos, cfg)
	if err != nil {
		logger.Error("Failed to resolve posting configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Posting configuration resolved",
		slog.String("commission_account_id", postingCfg.CommissionAccountID),
		slog.String("base_currency", postingCfg.BaseCurrency.CurrencyCode),
		slog.Int("registered_kinds", len(postingCfg.TypeCodes)))

	serviceContainer := services.NewServiceContainer(postingCfg, repos)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS, rate limiting)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.Default())

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid rate limit spec", slog.String("spec", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}
	ipLimiter := limiter.New(memory.NewStore(), rate)
	r.Use(middleware.RateLimit(ipLimiter))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies all pending "up" migrations before the server starts.
func runMigrations(logger *slog.Logger, databaseURL string) error {
	logger.Info("Running database migrations...")

	// Open a temporary standard sql.DB connection for migrations
	// Using pgx/v5/stdlib driver to be compatible with the main pool
	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

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

// resolvePostingConfig loads the system accounts and kind registrations the
// posting engine depends on. Startup fails if any of them is missing.
func resolvePostingConfig(ctx context.Context, repos portsrepo.RepositoryProvider, cfg *config.Config) (domain.PostingConfig, error) {
	commissionAccount, err := repos.AccountRepo.FindAccountByCode(ctx, cfg.CommissionAccountCode)
	if err != nil {
		return domain.PostingConfig{}, err
	}

	baseCurrency, err := repos.CurrencyRepo.FindBaseCurrency(ctx)
	if err != nil {
		return domain.PostingConfig{}, err
	}

	types, err := repos.TransactionTypeRepo.ListTransactionTypes(ctx)
	if err != nil {
		return domain.PostingConfig{}, err
	}
	typeCodes := make(map[domain.TransactionKind]int, len(types))
	for _, t := range types {
		typeCodes[t.Kind] = t.TypeCode
	}

	return domain.PostingConfig{
		CommissionAccountID: commissionAccount.AccountID,
		BaseCurrency:        *baseCurrency,
		TypeCodes:           typeCodes,
	}, nil
}
