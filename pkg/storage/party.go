package storage

import (
	"context"
	"time"

	"rrer/pkg/domain"
)

// PartyUpdates describes a set of optional fields that can be applied to an
// existing party during an update. Only non-nil fields will be updated.
type PartyUpdates struct {
	// Status is the new collection status to set. Empty means unchanged.
	Status domain.PartyStatus
	// IfStatusIn, when non-empty, guards the update: it only applies while the
	// party currently holds one of these statuses. A non-matching row is left
	// alone and the update reports no result, so one-way moves like submission
	// can never double-apply.
	IfStatusIn []domain.PartyStatus
	// Data, when provided, replaces the stored party data wholesale.
	Data *domain.PartyData
}

// PartyStorage defines CRUD operations on report parties. Parties are never
// hard-deleted; cancellation is a status so the audit history stays intact.
type PartyStorage interface {
	// StoreParties inserts one or more parties and returns the stored rows as
	// they exist in the database (including generated fields).
	StoreParties(ctx context.Context, parties ...domain.Party) ([]domain.Party, error)
	// PartyByID fetches a party by its ID, excluding soft-deleted records.
	// Returns nil when not found.
	PartyByID(ctx context.Context, id domain.PartyID) (*domain.Party, error)
	// PartiesByReport returns every party attached to the report, cancelled
	// ones included, ordered by creation time.
	PartiesByReport(ctx context.Context, reportID domain.ReportID) ([]domain.Party, error)
	// UpdateParty updates a single party and returns the updated row. When
	// updates.IfStatusIn is set and the party's current status is not in the
	// list, nothing is changed and nil is returned. updated_at is set
	// automatically.
	UpdateParty(ctx context.Context, id domain.PartyID, updates PartyUpdates) (*domain.Party, error)
}

// LinkStorage persists party collection links. The token itself is never
// stored; rows track redemption state by the link ID embedded in the token.
type LinkStorage interface {
	// StoreLink inserts a link row and returns it as stored.
	StoreLink(ctx context.Context, link domain.PartyLink) (*domain.PartyLink, error)
	// LinkByID fetches a link by its ID. Returns nil when not found.
	LinkByID(ctx context.Context, id domain.LinkID) (*domain.PartyLink, error)
	// ConsumeLink atomically moves the link from active to used, provided it is
	// still active and unexpired at the given time. It returns the consumed row,
	// or nil when the link was already used, expired, revoked or absent - the
	// caller decides which refusal that maps to. This is the one-time-use gate:
	// two concurrent submissions can never both consume the same link.
	ConsumeLink(ctx context.Context, id domain.LinkID, now time.Time) (*domain.PartyLink, error)
	// RevokeActiveLinks revokes every still-active link for the party, so only
	// the most recently issued link can be redeemed.
	RevokeActiveLinks(ctx context.Context, partyID domain.PartyID) error
}
