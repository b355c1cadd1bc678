package services

import "context"

type contextKey string

const (
	packageIDKey contextKey = "package_id"
	stageKey     contextKey = "stage"
)

// WithPackageID annotates context with the package UUID for the current run.
func WithPackageID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, packageIDKey, id)
}

// PackageIDFromContext extracts the package UUID if present.
func PackageIDFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(packageIDKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithStage annotates context with the pipeline stage name.
func WithStage(ctx context.Context, stage string) context.Context {
	if stage == "" {
		return ctx
	}
	return context.WithValue(ctx, stageKey, stage)
}

// StageFromContext returns the stage name if present.
func StageFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(stageKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}
