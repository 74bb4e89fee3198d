package main

import (
	"fmt"
	"log/slog"

	"fintrack/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// openDB connects to Postgres using the configured DSN. The handle is owned by
// main and passed down; nothing else opens connections.
func openDB(cfg Config) (*gorm.DB, error) {
	if cfg.DSN == "" {
		return nil, fmt.Errorf("DB_DSN is not set; this service requires a Postgres DSN in DB_DSN")
	}
	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	return db, nil
}

// autoMigrate migrates models individually so a failure on one doesn't block
// the others. Permission errors are logged and ignored.
func autoMigrate(db *gorm.DB, log *slog.Logger) {
	tables := []struct {
		name  string
		model any
	}{
		{"users", &models.User{}},
		{"incomes", &models.Income{}},
		{"expenses", &models.Expense{}},
	}
	for _, t := range tables {
		if err := db.AutoMigrate(t.model); err != nil {
			log.Warn("migration warning", "table", t.name, "err", err)
		}
	}
}
