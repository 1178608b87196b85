// Package pkguid provides helpers for generating unique identifiers.
//
// The benchmark uses two strategies:
//   - String IDs (UUIDv7) to name one benchmark invocation in logs.
//   - Numeric IDs (Snowflake) to label tasks submitted to a worker pool.
package pkguid
