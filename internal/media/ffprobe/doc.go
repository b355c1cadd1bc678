// Package ffprobe provides a typed wrapper around ffprobe JSON output.
//
// This package has no posterforge-specific dependencies and could be
// extracted as a standalone library.
//
// Key types:
//   - Result: parsed ffprobe output containing streams and format metadata
//   - Stream: individual stream properties including frame rate and count
//   - Format: container-level metadata (duration, size)
//
// Primary entry point:
//   - Inspect: executes ffprobe and returns parsed Result
//
// Stream.FrameCount is the container's estimate only; the frame extraction
// loop is authoritative for how many frames a source actually yields.
package ffprobe
