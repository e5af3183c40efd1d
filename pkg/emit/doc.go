// Package emit provides sink implementations for draining a
// fragment.Buffer: plain and flushing writer sinks, a collecting sink for
// tests, OpenTelemetry-traced emission, and an S3 publishing sink for
// rendered output.
package emit
