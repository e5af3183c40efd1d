// Package dev supports the preview command: a polling file watcher and a
// WebSocket broadcaster that tells connected browsers to reload when the
// previewed page or manifest changes.
package dev
