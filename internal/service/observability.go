package service

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// OpEvent is lightweight telemetry for one service operation (fetch,
// save, add-item).
type OpEvent struct {
	Name      string
	ProjectID string
	Duration  time.Duration
	Err       error
}

// Observer receives service operation events.
type Observer interface {
	ObserveOp(ctx context.Context, event OpEvent)
}

// NoopObserver ignores all events.
type NoopObserver struct{}

func (NoopObserver) ObserveOp(context.Context, OpEvent) {}

type logObserver struct {
	logger *slog.Logger
}

// NewLogObserver writes operation events to the provided writer as
// structured log lines.
func NewLogObserver(w io.Writer) Observer {
	if w == nil {
		return NoopObserver{}
	}
	return &logObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logObserver) ObserveOp(ctx context.Context, event OpEvent) {
	attrs := []any{
		"op", event.Name,
		"project_id", event.ProjectID,
		"duration_ms", event.Duration.Milliseconds(),
	}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.ErrorContext(ctx, "timeline_op", attrs...)
		return
	}
	o.logger.InfoContext(ctx, "timeline_op", attrs...)
}

func observerOrNoop(observers []Observer) Observer {
	for _, obs := range observers {
		if obs != nil {
			return obs
		}
	}
	return NoopObserver{}
}
