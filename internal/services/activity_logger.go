package services

import (
	"context"
	"log/slog"
	"time"

	"subscription-tracker/internal/models"
)

// ActivityLogger provides structured logging for scans, transitions and
// other user-facing operations
type ActivityLogger struct {
	logger *slog.Logger
}

// NewActivityLogger creates a new activity logger
func NewActivityLogger(logger *slog.Logger) ActivityLoggerInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &ActivityLogger{
		logger: logger,
	}
}

func (al *ActivityLogger) LogScanStarted(ctx context.Context, owner models.Owner, candidates int) {
	al.logger.InfoContext(ctx, "inbox scan started",
		slog.String("event_type", "scan_started"),
		slog.String("owner", owner.Key),
		slog.Int("candidates", candidates),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (al *ActivityLogger) LogScanCompleted(ctx context.Context, owner models.Owner, detected int, durationMs int64) {
	al.logger.InfoContext(ctx, "inbox scan completed",
		slog.String("event_type", "scan_completed"),
		slog.String("owner", owner.Key),
		slog.Int("detected", detected),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (al *ActivityLogger) LogScanFailed(ctx context.Context, owner models.Owner, errorMsg string, durationMs int64) {
	al.logger.WarnContext(ctx, "inbox scan failed",
		slog.String("event_type", "scan_failed"),
		slog.String("owner", owner.Key),
		slog.String("error", errorMsg),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (al *ActivityLogger) LogTransition(ctx context.Context, owner models.Owner, transition, subscriptionID string) {
	al.logger.InfoContext(ctx, "subscription state changed",
		slog.String("event_type", "subscription_transition"),
		slog.String("owner", owner.Key),
		slog.Bool("remote", owner.Remote),
		slog.String("transition", transition),
		slog.String("subscription_id", subscriptionID),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (al *ActivityLogger) LogStaleWrite(ctx context.Context, owner models.Owner, kind models.DocumentKind, expectedVersion int) {
	al.logger.WarnContext(ctx, "stale state write rejected",
		slog.String("event_type", "stale_write"),
		slog.String("owner", owner.Key),
		slog.String("kind", string(kind)),
		slog.Int("expected_version", expectedVersion),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (al *ActivityLogger) LogDirectoryLoaded(ctx context.Context, options int, etag string) {
	al.logger.DebugContext(ctx, "directory loaded",
		slog.String("event_type", "directory_loaded"),
		slog.Int("options", options),
		slog.String("etag", etag),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (al *ActivityLogger) LogGenerationFailed(ctx context.Context, purpose, errorMsg string) {
	al.logger.WarnContext(ctx, "text generation failed",
		slog.String("event_type", "generation_failed"),
		slog.String("purpose", purpose),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func getRequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if requestID, ok := ctx.Value(models.RequestIDContextKey).(string); ok {
		return requestID
	}
	return ""
}
