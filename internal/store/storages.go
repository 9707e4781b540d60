package store

import (
	"context"
	"fmt"

	"github.com/vitalog/vitalog/internal/config"
	"github.com/vitalog/vitalog/internal/logger"
	"github.com/vitalog/vitalog/migrations"
)

// Storages groups the server-side repositories.
type Storages struct {
	Records RecordRepository
}

// NewStorages opens the PostgreSQL connection, runs pending migrations and
// wires the server repositories.
func NewStorages(cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(context.Background(), cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = migrations.Migrate(db.DB); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		Records: NewRecordRepository(db, log),
	}, nil
}
