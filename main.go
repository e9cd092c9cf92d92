package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"lifelens/adapters/excel"
	"lifelens/adapters/jsonstore"
	"lifelens/adapters/llm/heuristic"
	"lifelens/adapters/postgres"
	"lifelens/app"
	"lifelens/internal"
	"lifelens/internal/config"
	"lifelens/ports"
	"lifelens/ui"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	logger := internal.NewDefaultLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("configuration error: %v", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	checkinRepo, err := buildCheckinRepository(ctx, cfg, logger)
	if err != nil {
		logger.Error("check-in store setup failed: %v", err)
		os.Exit(1)
	}

	var excelReader jsonstore.TransactionReader
	if cfg.Data.ExcelFile != "" {
		excelReader = excel.NewTransactionReader()
		logger.Info("importing transactions from %s", cfg.Data.ExcelFile)
	}
	signals := jsonstore.NewSignalFiles(cfg.Data, excelReader)

	insightService := app.NewInsightService(signals, checkinRepo, heuristic.NewSummarizer(), cfg.Analysis, logger)
	checkinService := app.NewCheckinService(checkinRepo, logger)

	httpApp := ui.NewApp(cfg.Server, insightService, checkinService, logger)
	if err := httpApp.Start(ctx); err != nil {
		logger.Error("server error: %v", err)
		os.Exit(1)
	}
}

// buildCheckinRepository picks Postgres when DATABASE_URL is set, otherwise
// the JSON file store in the data directory.
func buildCheckinRepository(ctx context.Context, cfg *config.Config, logger *internal.Logger) (ports.CheckinRepository, error) {
	if cfg.Database.URL == "" {
		path := cfg.Data.Dir + "/" + cfg.Data.CheckinsFile
		logger.Info("using JSON check-in store at %s", path)
		return jsonstore.NewCheckinStore(path), nil
	}

	db, err := postgres.Connect(ctx, cfg.Database.URL)
	if err != nil {
		return nil, err
	}
	if err := postgres.EnsureSchema(ctx, db); err != nil {
		return nil, err
	}
	logger.Info("using Postgres check-in store")
	return postgres.NewCheckinRepository(db), nil
}
