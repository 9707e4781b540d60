package store

import (
	"context"
	"fmt"

	"github.com/vitalog/vitalog/internal/config"
	"github.com/vitalog/vitalog/internal/logger"
)

// ClientStorages groups the device-side repositories into a single value the
// service layer can be wired with. All three share one SQLite connection so
// queue writes and entity writes land in the same database file.
type ClientStorages struct {
	// Entities is the local cache of entity records.
	Entities LocalEntityRepository

	// Queue is the durable pending change queue.
	Queue ChangeQueueRepository

	// Meta holds the device identity, the sync cursor and the last error.
	Meta SyncMetaRepository

	db *DB
}

// Close closes the underlying SQLite connection.
func (s *ClientStorages) Close() error {
	return s.db.Close()
}

// NewClientStorages initialises the client storage layer: it opens (and on
// first run creates) the SQLite file at cfg.Path, bootstraps the schema and
// wires the repositories.
func NewClientStorages(cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	log.Info().Msg("creating client storages...")

	db, err := NewConnectSQLite(context.Background(), cfg, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	return &ClientStorages{
		Entities: NewLocalEntityRepository(db, log),
		Queue:    NewChangeQueueRepository(db, log),
		Meta:     NewSyncMetaRepository(db, log),
		db:       db,
	}, nil
}
