// Package runstore persists analysis runs in SQLite and exposes helpers for
// driving their lifecycle.
//
// The Store manages database connections, schema migrations, run status
// transitions that mirror the pipeline stages, and the per-model score rows
// produced by each run. The database is a local history of past analyses so
// the CLI can list runs and compare model rankings over time; trained models
// themselves are never persisted.
//
// Treat this package as the single source of truth for run semantics; when you
// add new statuses or columns, add a migration under migrations/.
package runstore
