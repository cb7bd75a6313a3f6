package store

// schemaVersionV1 is the current run-history schema.
const schemaVersionV1 = 1

// currentSchemaVersion is the target schema version for this build.
const currentSchemaVersion = schemaVersionV1

var schemaV1 = `
CREATE TABLE IF NOT EXISTS schema_version (version INTEGER NOT NULL);

CREATE TABLE IF NOT EXISTS runs (
	id                   INTEGER PRIMARY KEY AUTOINCREMENT,
	source               TEXT NOT NULL,
	workspace            TEXT NOT NULL,
	started_at           TEXT NOT NULL,
	finished_at          TEXT NOT NULL,
	checks_total         INTEGER NOT NULL,
	checks_failed        INTEGER NOT NULL,
	checks_indeterminate INTEGER NOT NULL,
	results_payload      BLOB NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at);
`
