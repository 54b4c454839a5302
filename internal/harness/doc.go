// Package harness runs scripted scenarios against a real engine.
//
// A scenario is a YAML file describing an initial ritual board, a sequence
// of steps (add, rename, remove, done, idea, advance), and the errors some
// steps are expected to produce. The harness executes the steps with a
// fixed clock, an isolated state file, and an in-memory milestone store,
// and records every observable outcome into a trace.
//
// Traces are compared against golden files with goldie; regenerate with
//
//	go test ./internal/harness -update
package harness
