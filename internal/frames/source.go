package frames

import (
	"context"
	"image"
)

// Info carries probe metadata for a video source. FPS comes from the
// container; EstimatedFrames is the container's frame count claim and is only
// a hint, never authoritative.
type Info struct {
	FPS             float64
	EstimatedFrames int
	Width           int
	Height          int
}

// Source yields decoded frames already scaled to the requested geometry.
// Next returns io.EOF when the stream is exhausted.
type Source interface {
	Next() (image.Image, error)
	Close() error
}

// Decoder abstracts the video decode backend so the pipeline can be exercised
// without ffmpeg installed.
type Decoder interface {
	// Probe inspects the source without decoding. It fails when the path
	// does not exist or the container cannot be opened.
	Probe(ctx context.Context, path string) (Info, error)
	// Open starts a decode of every frame, scaled to width x height.
	Open(ctx context.Context, path string, width, height int) (Source, error)
}
