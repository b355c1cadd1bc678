package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSourceUnavailable marks failures to locate or open the input video.
	ErrSourceUnavailable = errors.New("source unavailable")
	// ErrEncode marks frame decode, resize, or JPEG encode failures.
	ErrEncode = errors.New("encode error")
	// ErrSerialization marks plist or layer document serialization failures.
	ErrSerialization = errors.New("serialization error")
	// ErrArchive marks zip creation or output publish failures.
	ErrArchive = errors.New("archive error")
	// ErrValidation marks rejected pipeline requests.
	ErrValidation = errors.New("validation error")
	// ErrConfiguration marks unusable configuration.
	ErrConfiguration = errors.New("configuration error")
)

// Wrap builds an error message that includes stage context while tagging it
// with the provided marker for later classification. The marker should be one
// of the exported sentinel errors above. Every marker is fatal to the current
// run; there is no retry tier.
func Wrap(marker error, stage, operation, message string, err error) error {
	detail := buildDetail(stage, operation, message)
	if marker == nil {
		marker = ErrValidation
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Kind returns a short classification string for user-facing presentation.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrSourceUnavailable):
		return "source unavailable"
	case errors.Is(err, ErrEncode):
		return "encode failure"
	case errors.Is(err, ErrSerialization):
		return "serialization failure"
	case errors.Is(err, ErrArchive):
		return "archive failure"
	case errors.Is(err, ErrConfiguration):
		return "configuration error"
	case errors.Is(err, ErrValidation):
		return "validation error"
	default:
		return "failure"
	}
}

func buildDetail(stage, operation, message string) string {
	parts := make([]string, 0, 3)
	if stage = strings.TrimSpace(stage); stage != "" {
		parts = append(parts, stage)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "pipeline failure"
	}
	return strings.Join(parts, ": ")
}
