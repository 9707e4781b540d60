package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/vitalog/vitalog/internal/config"
	"github.com/vitalog/vitalog/internal/logger"
)

// NewConnectSQLite opens the device's local SQLite database, creating the
// file on first run, and bootstraps the schema.
func NewConnectSQLite(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*DB, error) {
	if err := createLocalDBFileIfNotExists(cfg.Path); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file: %w", err)
	}

	conn, err := sql.Open("sqlite3", cfg.Path)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to local database successfully")

	db := &DB{
		DB:     conn,
		logger: log,
	}

	if err = db.migrateLocal(ctx); err != nil {
		return nil, err
	}

	return db, nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	return nil
}

// migrateLocal applies the client schema. Statements are idempotent so the
// call is safe on every start.
func (db *DB) migrateLocal(ctx context.Context) error {
	for _, stmt := range []string{
		createEntitiesTable,
		createPendingChangesTable,
		createPendingChangesStatusIndex,
		createSyncMetaTable,
	} {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			db.logger.Err(err).Str("func", "*DB.migrateLocal").Msg("error applying local schema")
			return fmt.Errorf("%w: apply local schema: %w", ErrLocalStorage, err)
		}
	}

	return nil
}
