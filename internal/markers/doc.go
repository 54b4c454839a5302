// Package markers provides SQLite-backed durable storage for milestone
// fired-markers.
//
// A marker records that a ritual's streak reached a threshold and the
// milestone was announced. Streaks are recomputed from the ledger, never
// stored, so the fired state must live outside the aggregate blob or a streak
// that re-enters a threshold value would announce the same milestone again.
//
// Idempotency comes from the schema, not the caller: UNIQUE(ritual,
// threshold) plus INSERT ... ON CONFLICT DO NOTHING means MarkFired can be
// called any number of times and reports an insert exactly once.
//
// # Database Configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks up to 5 seconds
//   - foreign_keys=ON
package markers
