// Package services defines shared utilities consumed by the pipeline stages.
//
// Key responsibilities:
//   - Context helpers that stamp package UUIDs and stage names for logging.
//   - Structured error markers plus the Wrap helper that classify failures
//     (source, encode, serialization, archive) for the driver to present.
//
// Every marker is fatal to the current run: the pipeline never retries, and
// workspace cleanup runs before any of these errors reach the caller.
package services
