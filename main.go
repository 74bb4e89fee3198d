package main

import (
	"log/slog"
	"os"

	"fintrack/store"

	"github.com/shopspring/decimal"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Amounts travel over the wire as plain JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true

	cfg := loadConfig(logger)

	db, err := openDB(cfg)
	if err != nil {
		logger.Error("open database", "err", err)
		os.Exit(1)
	}
	if cfg.AutoMigrate {
		autoMigrate(db, logger)
	}

	srv := newServer(cfg, store.New(db), logger)
	logger.Info("server listening", "port", cfg.Port)
	if err := srv.routes().Run(":" + cfg.Port); err != nil {
		logger.Error("server exited", "err", err)
		os.Exit(1)
	}
}
