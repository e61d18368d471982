// Package services defines shared error utilities consumed by the pipeline
// stage handlers.
//
// Key responsibilities:
//   - Structured error markers plus the Wrap helper that translate failures
//     into consistent run statuses (failed vs review).
//   - A consistent "stage: operation: message" error detail format so console
//     output and persisted run errors read the same way.
//
// Use these helpers when wiring new stage logic so failure handling stays
// uniform across the pipeline.
package services
