// Package pkglog contains logging helpers used across the application.
//
// It is built around slog and keeps logs consistent by:
//   - Building a JSON handler with stable keys; the CLI points it at stderr so
//     stdout stays reserved for the timing report.
//   - Attaching the benchmark run ID (when present) to each log record.
package pkglog
