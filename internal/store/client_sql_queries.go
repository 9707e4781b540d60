package store

// Client-side schema. Entity rows keep tombstones (deleted=1) forever so
// re-applying a server batch stays idempotent; the queue keeps a row until
// the server acknowledges it or a human resolves it.
const (
	createEntitiesTable = `CREATE TABLE IF NOT EXISTS entities (
		entity_type TEXT NOT NULL,
		sync_id     TEXT NOT NULL,
		payload     TEXT,
		updated_at  TEXT NOT NULL DEFAULT '',
		deleted     INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (entity_type, sync_id)
	);`

	createPendingChangesTable = `CREATE TABLE IF NOT EXISTS pending_changes (
		id              INTEGER PRIMARY KEY AUTOINCREMENT,
		entity_type     TEXT NOT NULL,
		sync_id         TEXT NOT NULL,
		operation       TEXT NOT NULL,
		payload         TEXT,
		base_ts         TEXT,
		local_ts        TEXT NOT NULL,
		status          TEXT NOT NULL DEFAULT 'pending',
		server_snapshot TEXT,
		detected_at     TEXT
	);`

	createPendingChangesStatusIndex = `CREATE INDEX IF NOT EXISTS idx_pending_changes_status
		ON pending_changes (status);`

	createSyncMetaTable = `CREATE TABLE IF NOT EXISTS sync_meta (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);`
)

const (
	upsertEntity = `INSERT INTO entities (entity_type, sync_id, payload, updated_at, deleted)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (entity_type, sync_id)
		DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at, deleted = excluded.deleted;`

	selectEntity = `SELECT entity_type, sync_id, payload, updated_at, deleted
		FROM entities
		WHERE entity_type = ? AND sync_id = ?;`

	selectEntities = `SELECT entity_type, sync_id, payload, updated_at, deleted
		FROM entities
		WHERE entity_type = ?`

	saveEntityPayload = `INSERT INTO entities (entity_type, sync_id, payload, updated_at, deleted)
		VALUES (?, ?, ?, '', 0)
		ON CONFLICT (entity_type, sync_id)
		DO UPDATE SET payload = excluded.payload, deleted = 0;`

	markEntityDeleted = `UPDATE entities SET deleted = 1
		WHERE entity_type = ? AND sync_id = ?;`

	removeEntity = `DELETE FROM entities
		WHERE entity_type = ? AND sync_id = ?;`
)

const (
	insertPendingChange = `INSERT INTO pending_changes
		(entity_type, sync_id, operation, payload, base_ts, local_ts, status)
		VALUES (?, ?, ?, ?, ?, ?, ?);`

	selectChangeColumns = `SELECT id, entity_type, sync_id, operation, payload, base_ts, local_ts, status
		FROM pending_changes`

	replacePendingChange = `UPDATE pending_changes
		SET operation = ?, payload = ?, local_ts = ?
		WHERE id = ? AND status = 'pending';`

	markChangeConflict = `UPDATE pending_changes
		SET status = 'conflict', server_snapshot = ?, detected_at = ?
		WHERE id = ?;`

	selectConflicts = `SELECT id, entity_type, sync_id, operation, payload, base_ts, local_ts, status, server_snapshot, detected_at
		FROM pending_changes
		WHERE status = 'conflict'
		ORDER BY detected_at, id;`

	countPendingChanges = `SELECT COUNT(*) FROM pending_changes
		WHERE status IN ('pending', 'in_flight');`
)

const (
	selectMetaValue = `SELECT value FROM sync_meta WHERE key = ?;`

	upsertMetaValue = `INSERT INTO sync_meta (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value;`

	deleteMetaValue = `DELETE FROM sync_meta WHERE key = ?;`
)
