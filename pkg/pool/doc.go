// Package pool provides the default scratch-buffer pool backing span
// copies in package fragment.
//
// Sized is a size-classed pool over sync.Pool; Instrumented wraps any
// fragment.Pool with Prometheus metrics so pool pressure shows up on the
// hosting application's /metrics endpoint.
package pool
