// Package filingchannel defines the client abstraction used to hand assembled
// report payloads to the government filing channel and interpret its answer.
package filingchannel

import (
	"context"

	"rrer/pkg/domain"
)

// Outcome is the channel's definitive answer to one submission attempt. It is
// only produced when the channel actually decided something; transport-level
// failures are returned as errors instead so callers never mistake a timeout
// for a verdict.
type Outcome struct {
	// Status is one of FilingStatusAccepted, FilingStatusRejected or
	// FilingStatusNeedsReview.
	Status domain.FilingStatus
	// ReceiptID is the channel's acknowledgement identifier, set on acceptance.
	ReceiptID string
	// Code classifies a rejection. Empty for accepted and needs-review outcomes.
	Code domain.RejectionCode
	// Message is the channel's free-text detail, surfaced to operators verbatim.
	Message string
}

// Client is the abstraction for the filing channel. Implementations submit
// fully assembled payloads and report the channel's decision.
//
//go:generate mockgen -package mockfilingchannel -source=interface.go -destination=mock/mockfilingchannel.go *
type Client interface {
	// Submit hands the payload to the filing channel and returns its outcome.
	// An error means no outcome was obtained (timeout, malformed response,
	// transport failure); callers must treat that as undecided, never as
	// accepted or rejected.
	Submit(ctx context.Context, payload domain.FilingPayload) (Outcome, error)
}
