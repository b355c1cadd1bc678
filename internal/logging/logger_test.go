package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"posterforge/internal/services"
)

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "yaml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestConsoleHandlerLiftsSubject(t *testing.T) {
	var buf bytes.Buffer
	lvl := new(slog.LevelVar)
	logger := slog.New(newConsoleHandler(&buf, lvl))

	logger = NewComponentLogger(logger, "assembler")
	logger.Info("archive written",
		String(FieldStage, "archiving"),
		String("output", "A.tendies"),
	)

	line := buf.String()
	if !strings.Contains(line, "assembler · archiving") {
		t.Fatalf("expected subject in output, got %q", line)
	}
	if !strings.Contains(line, "archive written") {
		t.Fatalf("expected message in output, got %q", line)
	}
	if !strings.Contains(line, "output=A.tendies") {
		t.Fatalf("expected attr in output, got %q", line)
	}
	if strings.Contains(line, "component=") {
		t.Fatalf("component should be lifted out of attrs, got %q", line)
	}
}

func TestWithContextAddsFields(t *testing.T) {
	var buf bytes.Buffer
	lvl := new(slog.LevelVar)
	base := slog.New(newConsoleHandler(&buf, lvl))

	ctx := services.WithPackageID(context.Background(), "ABCD-1234")
	ctx = services.WithStage(ctx, "extracting")

	WithContext(ctx, base).Info("frame written")

	line := buf.String()
	if !strings.Contains(line, "ABCD-1234") {
		t.Fatalf("expected package id in output, got %q", line)
	}
	if !strings.Contains(line, "extracting") {
		t.Fatalf("expected stage in output, got %q", line)
	}
}

func TestNewNopDiscards(t *testing.T) {
	logger := NewNop()
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Fatal("nop logger should report disabled")
	}
}
