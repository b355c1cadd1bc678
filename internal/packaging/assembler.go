package packaging

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"posterforge/internal/caml"
	"posterforge/internal/colors"
	"posterforge/internal/config"
	"posterforge/internal/fileutil"
	"posterforge/internal/frames"
	"posterforge/internal/logging"
	"posterforge/internal/metadata"
	"posterforge/internal/naming"
	"posterforge/internal/services"
	"posterforge/internal/workspace"
)

// Request describes one package build. VideoPath is mandatory; empty
// geometry, identifier, or name fields fall back to configured defaults.
type Request struct {
	VideoPath     string
	WallpaperName string
	Width         int
	Height        int
	Scale         int
	Identifier    int
	OutputDir     string
}

// Result reports what a completed build produced.
type Result struct {
	OutputPath  string
	PackageUUID string
	Names       naming.Names
	FrameCount  int
	FPS         float64
	Duration    float64
	Colors      colors.Prominent
}

// Assembler runs the package-synthesis pipeline end to end: probe, extract,
// document generation, metadata, archive, publish.
type Assembler struct {
	cfg       *config.Config
	decoder   frames.Decoder
	extractor *frames.Extractor
	logger    *slog.Logger
	now       func() time.Time
}

// New builds an assembler. A nil decoder wires the default ffmpeg backend
// using the configured binaries.
func New(cfg *config.Config, decoder frames.Decoder, logger *slog.Logger) *Assembler {
	if decoder == nil {
		decoder = &frames.FFmpegDecoder{
			FFmpegBinary:  cfg.FFmpegBinary(),
			FFprobeBinary: cfg.FFprobeBinary(),
		}
	}
	return &Assembler{
		cfg:       cfg,
		decoder:   decoder,
		extractor: frames.NewExtractor(decoder, cfg.Wallpaper.JPEGQuality, cfg.Wallpaper.ExtractWorkers, logger),
		logger:    logging.NewComponentLogger(logger, "assembler"),
		now:       time.Now,
	}
}

// Build converts the requested video into a .tendies archive in the output
// directory. Everything intermediate happens inside a temp workspace that is
// removed on every exit path; on failure no output file is left behind.
func (a *Assembler) Build(ctx context.Context, req Request) (Result, error) {
	req, err := a.normalize(req)
	if err != nil {
		return Result{}, err
	}

	// Probe before the workspace exists: an unopenable source must abort
	// without leaving any directory behind.
	info, err := a.decoder.Probe(ctx, req.VideoPath)
	if err != nil {
		return Result{}, services.Wrap(services.ErrSourceUnavailable, "probing", "inspect video", "Input video missing or unreadable", err)
	}

	names := naming.Derive(req.WallpaperName, req.Width, req.Height, req.Scale)
	packageUUID := metadata.NewUUID()
	providerDescriptorUUID := metadata.NewUUID()

	ctx = services.WithPackageID(ctx, packageUUID)
	logger := logging.WithContext(ctx, a.logger)

	ws, err := workspace.Acquire(a.cfg.Paths.StagingDir)
	if err != nil {
		return Result{}, services.Wrap(services.ErrArchive, "assembling", "acquire workspace", "Could not create temp workspace", err)
	}
	defer func() {
		if releaseErr := ws.Release(); releaseErr != nil {
			logger.Warn("workspace cleanup failed",
				logging.String("path", ws.Path()),
				logging.Error(releaseErr),
				logging.String(logging.FieldErrorHint, "remove the directory manually"),
			)
		}
	}()

	tree := newLayout(ws.Path(), packageUUID, names)
	if err := tree.create(); err != nil {
		return Result{}, services.Wrap(services.ErrArchive, "assembling", "create package tree", "Could not lay out package directories", err)
	}

	logger.Info("extracting frames",
		logging.String(logging.FieldStage, "extracting"),
		logging.String("video", req.VideoPath),
		logging.Float64("fps", info.FPS),
	)
	extraction, err := a.extractor.Extract(ctx, req.VideoPath, tree.backgroundAssets, req.Width, req.Height, info)
	if err != nil {
		return Result{}, err
	}

	prominent := colors.Sample(extraction.FirstFrame)

	params := caml.LayerParams{
		Width:      req.Width,
		Height:     req.Height,
		FrameCount: extraction.FrameCount,
		FPS:        extraction.FPS,
		Duration:   extraction.Duration,
	}
	if err := caml.WriteBackground(tree.backgroundDir, params); err != nil {
		return Result{}, err
	}
	if err := caml.WriteFloating(tree.floatingDir, params); err != nil {
		return Result{}, err
	}

	descriptor := metadata.NewDescriptor(names, req.WallpaperName, req.Identifier, prominent)
	if err := metadata.WriteDescriptor(tree.wallpaperDir, descriptor); err != nil {
		return Result{}, err
	}
	userInfo := metadata.NewUserInfo(names, req.Identifier)
	if err := metadata.WriteProviderFiles(tree.descriptorDir, providerDescriptorUUID, userInfo, a.now()); err != nil {
		return Result{}, err
	}

	archivePath := filepath.Join(ws.Path(), names.OutputFile)
	if err := zipTree(ws.Path(), "descriptors", archivePath); err != nil {
		return Result{}, services.Wrap(services.ErrArchive, "archiving", "zip package", "Could not create package archive", err)
	}

	if err := os.MkdirAll(req.OutputDir, 0o755); err != nil {
		return Result{}, services.Wrap(services.ErrArchive, "archiving", "ensure output dir", "Output directory not writable", err)
	}
	outputPath := filepath.Join(req.OutputDir, names.OutputFile)
	if err := fileutil.MoveFile(archivePath, outputPath); err != nil {
		return Result{}, services.Wrap(services.ErrArchive, "archiving", "publish archive", "Could not move archive into output directory", err)
	}

	logger.Info("package complete",
		logging.String(logging.FieldStage, "archiving"),
		logging.String("output", outputPath),
		logging.Int("frames", extraction.FrameCount),
		logging.Float64("duration", extraction.Duration),
	)

	return Result{
		OutputPath:  outputPath,
		PackageUUID: packageUUID,
		Names:       names,
		FrameCount:  extraction.FrameCount,
		FPS:         extraction.FPS,
		Duration:    extraction.Duration,
		Colors:      prominent,
	}, nil
}

func (a *Assembler) normalize(req Request) (Request, error) {
	if strings.TrimSpace(req.VideoPath) == "" {
		return req, services.Wrap(services.ErrValidation, "request", "", "video path is required", nil)
	}
	if strings.TrimSpace(req.WallpaperName) == "" {
		req.WallpaperName = naming.DefaultName(req.VideoPath)
	}
	if req.Width <= 0 {
		req.Width = a.cfg.Wallpaper.Width
	}
	if req.Height <= 0 {
		req.Height = a.cfg.Wallpaper.Height
	}
	if req.Scale <= 0 {
		req.Scale = a.cfg.Wallpaper.Scale
	}
	if req.Identifier == 0 {
		req.Identifier = a.cfg.Wallpaper.Identifier
	}
	if strings.TrimSpace(req.OutputDir) == "" {
		req.OutputDir = a.cfg.Paths.OutputDir
	}
	return req, nil
}
