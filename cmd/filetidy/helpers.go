package main

import (
	"context"
	"log/slog"

	"github.com/jdoss/filetidy/internal/config"
	"github.com/jdoss/filetidy/internal/storage"
)

// openHistory opens the run history database. History is best effort: any
// failure is logged and nil is returned so the run proceeds without it.
func openHistory(ctx context.Context, cfg config.Config) *storage.SQLiteStorage {
	dbPath := config.ExpandPath(cfg.DatabasePath)
	if dbPath == "" {
		return nil
	}

	db, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		slog.Warn("Run history unavailable", "path", dbPath, "error", err)
		return nil
	}

	if err := db.Migrate(ctx); err != nil {
		slog.Warn("Run history unavailable", "path", dbPath, "error", err)
		_ = db.Close()
		return nil
	}

	return db
}

func closeHistory(db *storage.SQLiteStorage) {
	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		slog.Error("Failed to close database", "error", err)
	}
}
