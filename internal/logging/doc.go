// Package logging assembles the structured slog loggers used across matclean.
//
// It owns the console and JSON handlers, centralizes level parsing and output
// plumbing, and exposes a no-op logger for tests and wiring code that cannot
// fail. Prefer these constructors over hand-rolled slog setup so every
// component emits log lines with the same shape.
package logging
