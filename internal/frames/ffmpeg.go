package frames

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"os"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	"posterforge/internal/media/ffprobe"
)

// FFmpegDecoder decodes video through an ffmpeg rawvideo pipe.
type FFmpegDecoder struct {
	// FFmpegBinary and FFprobeBinary override the executables; empty values
	// fall back to PATH lookup.
	FFmpegBinary  string
	FFprobeBinary string
}

var _ Decoder = (*FFmpegDecoder)(nil)

// Probe stats the path and inspects it with ffprobe. A missing file or a
// container without a video stream is reported as an error before any decode
// work starts.
func (d *FFmpegDecoder) Probe(ctx context.Context, path string) (Info, error) {
	if _, err := os.Stat(path); err != nil {
		return Info{}, err
	}
	result, err := ffprobe.Inspect(ctx, d.FFprobeBinary, path)
	if err != nil {
		return Info{}, err
	}
	stream, ok := result.FirstVideoStream()
	if !ok {
		return Info{}, errors.New("no video stream in container")
	}
	return Info{
		FPS:             stream.FrameRate(),
		EstimatedFrames: stream.FrameCount(),
		Width:           stream.Width,
		Height:          stream.Height,
	}, nil
}

// Open starts ffmpeg decoding every frame to RGBA at the requested geometry,
// streamed through a pipe. The scale filter stretches to exactly width x
// height; the wallpaper renderer expects full-bleed frames, not letterboxing.
func (d *FFmpegDecoder) Open(ctx context.Context, path string, width, height int) (Source, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid target geometry %dx%d", width, height)
	}

	pr, pw := io.Pipe()
	stream := ffmpeg.Input(path).
		Filter("scale", ffmpeg.Args{fmt.Sprintf("%d:%d", width, height)}).
		Output("pipe:", ffmpeg.KwArgs{"format": "rawvideo", "pix_fmt": "rgba"}).
		WithOutput(pw).
		Silent(true)
	if d.FFmpegBinary != "" {
		stream = stream.SetFfmpegPath(d.FFmpegBinary)
	}

	src := &ffmpegSource{
		reader: pr,
		width:  width,
		height: height,
		done:   make(chan struct{}),
	}
	go func() {
		defer close(src.done)
		pw.CloseWithError(stream.Run())
	}()
	go func() {
		select {
		case <-ctx.Done():
			pr.CloseWithError(ctx.Err())
		case <-src.done:
		}
	}()
	return src, nil
}

type ffmpegSource struct {
	reader *io.PipeReader
	width  int
	height int
	done   chan struct{}
}

func (s *ffmpegSource) Next() (image.Image, error) {
	frameBytes := s.width * s.height * 4
	buf := make([]byte, frameBytes)
	if _, err := io.ReadFull(s.reader, buf); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("truncated frame from decoder: %w", err)
		}
		return nil, err
	}
	img := &image.RGBA{
		Pix:    buf,
		Stride: s.width * 4,
		Rect:   image.Rect(0, 0, s.width, s.height),
	}
	return img, nil
}

func (s *ffmpegSource) Close() error {
	err := s.reader.Close()
	// Wait for the ffmpeg process to exit so the video handle is released
	// before the caller proceeds.
	<-s.done
	return err
}
