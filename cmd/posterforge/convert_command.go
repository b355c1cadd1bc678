package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"posterforge/internal/packaging"
	"posterforge/internal/services"
	"posterforge/internal/workspace"
)

func newConvertCommand(ctx *commandContext) *cobra.Command {
	var nameFlag string
	var widthFlag int
	var heightFlag int
	var scaleFlag int
	var identifierFlag int
	var outputDirFlag string

	cmd := &cobra.Command{
		Use:   "convert <video>",
		Short: "Convert a video into a .tendies wallpaper package",
		Long: `Convert a video file into an animated lock-screen wallpaper package.

The video is decoded frame by frame, scaled to the target resolution, and
wrapped in the descriptor and layer documents iOS expects. The finished
.tendies archive lands in the configured output directory.

Examples:
  posterforge convert sunset.mp4
  posterforge convert sunset.mp4 --name Sunset --output-dir ~/wallpapers
  posterforge convert clip.mov --width 1179 --height 2556`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			videoPath, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolve path: %w", err)
			}
			info, err := os.Stat(videoPath)
			if err != nil {
				if errors.Is(err, os.ErrNotExist) {
					return fmt.Errorf("video does not exist: %s", videoPath)
				}
				return fmt.Errorf("inspect video: %w", err)
			}
			if info.IsDir() {
				return fmt.Errorf("%s is a directory", videoPath)
			}

			logger, err := ctx.buildLogger(cfg)
			if err != nil {
				return fmt.Errorf("setup logging: %w", err)
			}

			// Opportunistic sweep of workspaces left behind by crashed runs.
			maxAge := time.Duration(cfg.Staging.StaleMaxAgeHours) * time.Hour
			workspace.CleanStale(cmd.Context(), cfg.Paths.StagingDir, maxAge, logger)

			assembler := packaging.New(cfg, nil, logger)
			result, err := assembler.Build(cmd.Context(), packaging.Request{
				VideoPath:     videoPath,
				WallpaperName: nameFlag,
				Width:         widthFlag,
				Height:        heightFlag,
				Scale:         scaleFlag,
				Identifier:    identifierFlag,
				OutputDir:     outputDirFlag,
			})
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Build failed (%s)\n", services.Kind(err))
				return err
			}

			out := cmd.OutOrStdout()
			for _, line := range summaryHeading("Wallpaper package ready", shouldColorize(out)) {
				fmt.Fprintln(out, line)
			}
			fmt.Fprintln(out, renderSummary(result))
			return nil
		},
	}

	cmd.Flags().StringVarP(&nameFlag, "name", "n", "", "Wallpaper name (defaults to a name derived from the file)")
	cmd.Flags().IntVar(&widthFlag, "width", 0, "Target width in pixels")
	cmd.Flags().IntVar(&heightFlag, "height", 0, "Target height in pixels")
	cmd.Flags().IntVar(&scaleFlag, "scale", 0, "Display scale factor")
	cmd.Flags().IntVar(&identifierFlag, "identifier", 0, "Numeric poster identifier")
	cmd.Flags().StringVarP(&outputDirFlag, "output-dir", "o", "", "Directory for the finished archive")

	return cmd
}

func newCleanCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove stale staging workspaces",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			logger, err := ctx.buildLogger(cfg)
			if err != nil {
				return fmt.Errorf("setup logging: %w", err)
			}

			maxAge := time.Duration(cfg.Staging.StaleMaxAgeHours) * time.Hour
			result := workspace.CleanStale(cmd.Context(), cfg.Paths.StagingDir, maxAge, logger)

			out := cmd.OutOrStdout()
			if result.Skipped {
				fmt.Fprintln(out, "Sweep skipped; another process holds the staging lock")
				return nil
			}
			fmt.Fprintf(out, "Removed %d stale workspace(s)\n", len(result.Removed))
			return nil
		},
	}
}
