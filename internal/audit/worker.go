package audit

import (
	"context"
	"log/slog"
)

// Worker drains the publisher's channel into the configured sinks. A sink
// failure is logged and does not stop the worker or the other sinks.
type Worker struct {
	events <-chan Event
	sinks  []Store
	logger *slog.Logger
}

func NewWorker(events <-chan Event, logger *slog.Logger, sinks ...Store) *Worker {
	return &Worker{events: events, sinks: sinks, logger: logger}
}

// Run blocks until ctx is cancelled, persisting events as they arrive.
func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event := <-w.events:
			for _, sink := range w.sinks {
				if err := sink.Append(ctx, event); err != nil {
					w.logger.ErrorContext(ctx, "audit sink append failed",
						"action", event.Action,
						"error", err.Error(),
					)
				}
			}
		}
	}
}
