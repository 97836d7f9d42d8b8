// Package logging assembles the structured slog loggers used by the akari
// CLI and its transport session.
//
// It owns the console and JSON handlers, level parsing, and output routing,
// and exposes context helpers so session code can tag every line with the
// device address, the command in flight, and the session's correlation id.
// Output defaults to stderr so stdout stays reserved for command results.
//
// A no-op logger is provided for tests and for wiring code that has no
// logger to hand.
package logging
