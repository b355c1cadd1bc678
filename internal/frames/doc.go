// Package frames extracts a video's frames into the zero-padded JPEG
// sequence the background layer bundle references.
//
// The decode backend is pluggable through the Decoder interface; the default
// FFmpegDecoder streams RGBA frames from an ffmpeg rawvideo pipe with the
// resize done by ffmpeg's scale filter. JPEG encoding fans out across a
// worker pool since frames are independent; the extractor waits for every
// write before reporting a count, so the contiguous index range is fully
// populated before any document references it.
//
// The count of frames actually written is authoritative. Container metadata
// routinely lies about frame counts and the layer documents must describe
// what is on disk.
package frames
