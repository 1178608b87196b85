// Package pkgroutine contains helpers for running goroutines safely.
//
// The Pool type runs submitted tasks on a fixed number of workers, hands back
// a Handle per task, and recovers panics so that a failing task surfaces as an
// error instead of crashing the process.
package pkgroutine
