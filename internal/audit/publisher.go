package audit

import (
	"context"
	"log/slog"

	"crime-evidence/pkg/requestcontext"
)

// Publisher accepts events from domain logic and hands them to the worker
// via a buffered channel so emitting never blocks a request.
type Publisher struct {
	events chan Event
	logger *slog.Logger
}

// NewPublisher builds a publisher with the given buffer size.
func NewPublisher(buffer int, logger *slog.Logger) *Publisher {
	if buffer <= 0 {
		buffer = 256
	}
	return &Publisher{
		events: make(chan Event, buffer),
		logger: logger,
	}
}

// Emit records an event, stamping the timestamp and transaction ID from the
// context when absent. A full buffer drops the event with a warning.
func (p *Publisher) Emit(ctx context.Context, event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = requestcontext.Now(ctx)
	}
	if event.TransactionID == "" {
		event.TransactionID = requestcontext.TransactionID(ctx)
	}

	select {
	case p.events <- event:
	default:
		p.logger.WarnContext(ctx, "audit buffer full, dropping event", "action", event.Action)
	}
}

// Events exposes the channel for the worker.
func (p *Publisher) Events() <-chan Event {
	return p.events
}
