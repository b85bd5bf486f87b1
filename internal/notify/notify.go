// Package notify fans workflow events out to interested parties (operator
// email, webhooks). Publishing is fire-and-forget: the workflow never blocks
// or fails because a notification could not be delivered.
package notify

import (
	"context"
	"time"

	"rrer/pkg/domain"
	"rrer/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EventKind classifies a workflow event.
type EventKind string

const (
	// EventDeterminationCompleted fires when a determination run materializes
	// a verdict.
	EventDeterminationCompleted EventKind = "DETERMINATION_COMPLETED"
	// EventPartySubmitted fires when a party completes their submission.
	EventPartySubmitted EventKind = "PARTY_SUBMITTED"
	// EventReportReady fires when the last outstanding party submits and the
	// report becomes ready to file.
	EventReportReady EventKind = "REPORT_READY"
	// EventFilingOutcome fires when a filing submission reaches acceptance,
	// rejection or review.
	EventFilingOutcome EventKind = "FILING_OUTCOME"
)

// Event is one workflow notification.
type Event struct {
	// Kind classifies the event.
	Kind EventKind
	// ReportID is the report the event belongs to.
	ReportID domain.ReportID
	// PartyID is set for party-scoped events.
	PartyID domain.PartyID
	// Detail is a short human-readable description.
	Detail string
	// At is when the event occurred.
	At time.Time
}

// Sender delivers a single event. Implementations must be safe for use from a
// single dispatcher goroutine.
type Sender interface {
	Send(ctx context.Context, event Event) error
}

// Publisher accepts events into a bounded inbox. When the inbox is full the
// event is dropped and counted; the workflow path never blocks on delivery.
type Publisher struct {
	inbox chan Event
}

// NewPublisher creates a Publisher with the given inbox capacity.
func NewPublisher(buffer int) *Publisher {
	return &Publisher{inbox: make(chan Event, buffer)}
}

// Publish enqueues the event without blocking. A full inbox drops the event.
// A nil Publisher silently discards, so callers never guard instrumentation.
func (p *Publisher) Publish(ctx context.Context, event Event) {
	if p == nil {
		return
	}
	if event.At.IsZero() {
		event.At = time.Now()
	}

	select {
	case p.inbox <- event:
	default:
		logger.Get(ctx).Warn("notification dropped, inbox full",
			zap.String("kind", string(event.Kind)))
	}
}

// Inbox exposes the receive side of the publisher for a Dispatcher.
func (p *Publisher) Inbox() <-chan Event { return p.inbox }

// Dispatcher consumes events from an inbox and hands them to a Sender.
type Dispatcher struct {
	sender Sender
	inbox  <-chan Event
}

// NewDispatcher creates a Dispatcher reading from inbox and delivering via
// sender.
func NewDispatcher(sender Sender, inbox <-chan Event) *Dispatcher {
	return &Dispatcher{sender: sender, inbox: inbox}
}

// Run consumes events until the context is cancelled. Delivery failures are
// logged and skipped; a broken sender must not stop the dispatcher.
func (d *Dispatcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event := <-d.inbox:
			if err := d.sender.Send(ctx, event); err != nil {
				logger.Get(ctx).Error("could not deliver notification",
					zap.String("kind", string(event.Kind)),
					zap.Error(err))
			}
		}
	}
}

// LogSender is the default Sender: it writes events to the context logger.
// Deployments wire a real channel (email, webhook) in its place.
type LogSender struct{}

// Send logs the event.
func (LogSender) Send(ctx context.Context, event Event) error {
	logger.Get(ctx).Info("workflow event",
		zap.String("kind", string(event.Kind)),
		zap.String("reportId", uuid.UUID(event.ReportID).String()),
		zap.String("detail", event.Detail))

	return nil
}
