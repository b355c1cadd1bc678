package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"posterforge/internal/packaging"
)

const (
	ansiBlue  = "\x1b[34m"
	ansiReset = "\x1b[0m"
)

func renderSummary(result packaging.Result) string {
	rows := [][2]string{
		{"Output", result.OutputPath},
		{"Package", result.PackageUUID},
		{"Resolution", result.Names.ResolutionTag},
		{"Frames", fmt.Sprintf("%d", result.FrameCount)},
		{"FPS", trimFloat(result.FPS)},
		{"Duration", trimFloat(result.Duration) + "s"},
		{"Colors", result.Colors.Default + " / " + result.Colors.Dark},
	}
	return renderFieldTable(rows)
}

func summaryHeading(title string, colorize bool) []string {
	line := title
	rule := strings.Repeat("-", len(line))
	if colorize {
		line = ansiBlue + line + ansiReset
		rule = ansiBlue + rule + ansiReset
	}
	return []string{line, rule}
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func trimFloat(value float64) string {
	s := fmt.Sprintf("%.3f", value)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
