package frames

import (
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"posterforge/internal/logging"
	"posterforge/internal/services"
)

// FramePattern is the asset naming scheme shared with the layer documents.
const FramePattern = "%05d.jpg"

// Result reports what an extraction actually produced. FrameCount is the
// number of JPEG files written, which overrides any container estimate.
type Result struct {
	FrameCount int
	FPS        float64
	Duration   float64
	// FirstFrame is the first decoded frame, retained for prominent color
	// sampling. Nil when the source yielded no frames.
	FirstFrame image.Image
}

// Extractor decodes a video and writes its frames as a zero-padded JPEG
// sequence. Decode is sequential; resize happens inside the decoder and JPEG
// encoding fans out across a bounded worker pool.
type Extractor struct {
	decoder Decoder
	quality int
	workers int
	logger  *slog.Logger
}

// NewExtractor builds an extractor. quality is the JPEG quality (1-100);
// workers bounds the encode pool, 0 meaning one worker per CPU.
func NewExtractor(decoder Decoder, quality, workers int, logger *slog.Logger) *Extractor {
	if quality <= 0 || quality > 100 {
		quality = 92
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Extractor{
		decoder: decoder,
		quality: quality,
		workers: workers,
		logger:  logging.NewComponentLogger(logger, "extractor"),
	}
}

type encodeJob struct {
	index int
	frame image.Image
}

// Extract decodes every frame of videoPath at width x height into assetsDir.
// Frames are named by zero-based index, zero-padded to five digits, with no
// gaps. The info parameter carries the probe result obtained before the
// workspace existed; its FPS feeds the duration math.
func (e *Extractor) Extract(ctx context.Context, videoPath, assetsDir string, width, height int, info Info) (Result, error) {
	source, err := e.decoder.Open(ctx, videoPath, width, height)
	if err != nil {
		return Result{}, services.Wrap(services.ErrSourceUnavailable, "extracting", "open video", "Could not open video for decoding", err)
	}
	defer source.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan encodeJob)
	var wg sync.WaitGroup
	var encodeErr error
	var errOnce sync.Once
	fail := func(err error) {
		errOnce.Do(func() {
			encodeErr = err
			cancel()
		})
	}

	for i := 0; i < e.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				path := filepath.Join(assetsDir, fmt.Sprintf(FramePattern, job.index))
				if err := e.writeJPEG(path, job.frame); err != nil {
					fail(services.Wrap(services.ErrEncode, "extracting", "write frame", fmt.Sprintf("Failed to encode frame %d", job.index), err))
					return
				}
			}
		}()
	}

	var firstFrame image.Image
	count := 0
decode:
	for {
		if ctx.Err() != nil {
			break
		}
		frame, err := source.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			fail(services.Wrap(services.ErrEncode, "extracting", "decode frame", fmt.Sprintf("Failed to decode frame %d", count), err))
			break
		}
		if count == 0 {
			firstFrame = frame
		}
		select {
		case jobs <- encodeJob{index: count, frame: frame}:
			count++
		case <-ctx.Done():
			break decode
		}
	}
	close(jobs)
	wg.Wait()

	if encodeErr != nil {
		return Result{}, encodeErr
	}
	if err := ctx.Err(); err != nil {
		return Result{}, services.Wrap(services.ErrEncode, "extracting", "decode", "Extraction aborted", err)
	}

	result := Result{
		FrameCount: count,
		FPS:        info.FPS,
		FirstFrame: firstFrame,
	}
	if info.FPS > 0 {
		result.Duration = float64(count) / info.FPS
	}

	if estimated := info.EstimatedFrames; estimated != 0 && estimated != count {
		e.logger.Warn("container frame count disagrees with decode",
			logging.Int("estimated", estimated),
			logging.Int("written", count),
			logging.String(logging.FieldEventType, "frame_count_mismatch"),
		)
	}
	e.logger.Debug("extraction complete",
		logging.Int("frames", count),
		logging.Float64("fps", result.FPS),
		logging.Float64("duration", result.Duration),
	)
	return result, nil
}

func (e *Extractor) writeJPEG(path string, frame image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := jpeg.Encode(file, frame, &jpeg.Options{Quality: e.quality}); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
