package logging

import (
	"context"
	"log/slog"

	"submatch/internal/services"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldRunID is the standardized structured logging key for invocation correlation identifiers.
	FieldRunID = "run_id"
)

// WithContext enriches the logger with standardized fields carried by the
// context, currently the run correlation identifier.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	if ctx == nil {
		return logger
	}
	if id, ok := services.RunIDFromContext(ctx); ok {
		logger = logger.With(slog.String(FieldRunID, id))
	}
	return logger
}
