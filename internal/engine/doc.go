// Package engine implements the ritual habit-tracking engine.
//
// The engine owns the aggregate document (rituals, completion ledger, idea
// backlog) and is the only writer to it. Every mutation follows the same
// shape: validate, mutate the in-memory document, persist the whole document
// through the Saver. A save therefore always reflects a fully consistent
// snapshot; there is never a partially applied mutation on disk.
//
// SINGLE-ACTOR MODEL:
// The engine assumes one logical actor mutating state sequentially. There is
// no locking discipline and no merge on concurrent writers; if two processes
// write the same state file, last write wins.
//
// Derived values (streaks, completion percentages, perfect days, weekly
// summaries) are pure functions of the document and are recomputed on demand,
// never stored. The one exception is milestone firing state, which must
// survive recomputation and so lives in a separate durable MarkerStore.
//
// Rename and remove are atomic from the caller's perspective: the ritual
// store and every ledger entry are rewritten inside one engine call, then
// persisted as one snapshot. Callers are never handed the two halves to
// interleave incorrectly.
package engine
