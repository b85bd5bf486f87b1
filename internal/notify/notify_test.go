package notify_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"rrer/internal/notify"
	"rrer/pkg/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// captureSender records delivered events and can be told to fail.
type captureSender struct {
	mu     sync.Mutex
	events []notify.Event
	fail   bool
}

func (s *captureSender) Send(_ context.Context, event notify.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.fail {
		return errors.New("delivery failed")
	}
	s.events = append(s.events, event)

	return nil
}

func (s *captureSender) delivered() []notify.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]notify.Event, len(s.events))
	copy(out, s.events)

	return out
}

func TestDispatcher_Run(t *testing.T) {
	t.Parallel()

	pub := notify.NewPublisher(8)
	sender := &captureSender{}
	dispatcher := notify.NewDispatcher(sender, pub.Inbox())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = dispatcher.Run(ctx)
	}()

	reportID := domain.ReportID(uuid.New())
	pub.Publish(ctx, notify.Event{
		Kind:     notify.EventDeterminationCompleted,
		ReportID: reportID,
		Detail:   "verdict REPORTABLE",
	})
	pub.Publish(ctx, notify.Event{
		Kind:     notify.EventReportReady,
		ReportID: reportID,
	})

	require.Eventually(t, func() bool {
		return len(sender.delivered()) == 2
	}, time.Second, 10*time.Millisecond)

	events := sender.delivered()
	require.Equal(t, notify.EventDeterminationCompleted, events[0].Kind)
	require.Equal(t, reportID, events[0].ReportID)
	require.False(t, events[0].At.IsZero())
	require.Equal(t, notify.EventReportReady, events[1].Kind)

	cancel()
	<-done
}

func TestPublisher_DropOnFull(t *testing.T) {
	t.Parallel()

	// no dispatcher running, so the second publish finds the inbox full
	pub := notify.NewPublisher(1)
	ctx := context.Background()

	pub.Publish(ctx, notify.Event{Kind: notify.EventPartySubmitted})
	pub.Publish(ctx, notify.Event{Kind: notify.EventPartySubmitted})

	require.Len(t, pub.Inbox(), 1)
}

func TestDispatcher_SkipsFailedDelivery(t *testing.T) {
	t.Parallel()

	pub := notify.NewPublisher(8)
	sender := &captureSender{fail: true}
	dispatcher := notify.NewDispatcher(sender, pub.Inbox())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = dispatcher.Run(ctx)
	}()

	pub.Publish(ctx, notify.Event{Kind: notify.EventFilingOutcome})

	require.Eventually(t, func() bool {
		return len(pub.Inbox()) == 0
	}, time.Second, 10*time.Millisecond)
	require.Empty(t, sender.delivered())

	cancel()
	<-done
}
