package report

import (
	"context"
	"fmt"
	"time"

	"rrer/internal/notify"
	"rrer/internal/party"
	"rrer/pkg/domain"
	"rrer/pkg/serrors"
	"rrer/pkg/storage"

	"github.com/google/uuid"
)

// InviteParty mints a one-time collection link for the party. Any earlier
// still-active link is revoked first, so only the newest token can ever be
// redeemed.
func (s service) InviteParty(ctx context.Context, partyID domain.PartyID) (*Invitation, error) {
	var inv *Invitation
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		p, err := tx.PartyByID(ctx, partyID)
		if err != nil {
			return fmt.Errorf("could not get party: %w", err)
		}
		if p == nil {
			return serrors.With(serrors.ErrNotFound, "party not found")
		}
		switch p.Status {
		case domain.PartyStatusPending, domain.PartyStatusLinkSent, domain.PartyStatusInProgress:
		default:
			return serrors.InvalidTransition(string(p.Status), string(domain.PartyStatusLinkSent))
		}

		rep, err := tx.ReportByID(ctx, p.ReportID)
		if err != nil {
			return fmt.Errorf("could not get report: %w", err)
		}
		if rep == nil {
			return serrors.With(serrors.ErrNotFound, "report not found")
		}
		if rep.Status != domain.ReportStatusCollecting {
			return serrors.With(serrors.ErrInvalidTransition,
				"report is %s; collection links are only issued while collecting", rep.Status)
		}

		if err := tx.RevokeActiveLinks(ctx, p.ID); err != nil {
			return fmt.Errorf("could not revoke earlier links: %w", err)
		}

		linkID := domain.LinkID(uuid.New())
		token, expiresAt, err := s.issuer.Mint(linkID, time.Now().UTC())
		if err != nil {
			return fmt.Errorf("could not mint link token: %w", err)
		}

		if _, err := tx.StoreLink(ctx, domain.PartyLink{
			ID:        linkID,
			PartyID:   p.ID,
			Status:    domain.LinkStatusActive,
			ExpiresAt: expiresAt,
		}); err != nil {
			return fmt.Errorf("could not store link: %w", err)
		}

		// a nil result just means the party already moved past pending
		if _, err := tx.UpdateParty(ctx, p.ID, storage.PartyUpdates{
			Status:     domain.PartyStatusLinkSent,
			IfStatusIn: []domain.PartyStatus{domain.PartyStatusPending},
		}); err != nil {
			return fmt.Errorf("could not update party: %w", err)
		}

		inv = &Invitation{Token: token, ExpiresAt: expiresAt}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not invite party: %w", err)
	}

	return inv, nil
}

// PortalParty loads the party behind a presented link token without consuming
// the link, so the portal can render the form.
func (s service) PortalParty(ctx context.Context, token string) (*domain.Party, error) {
	link, err := s.resolveLink(ctx, s.storage, token)
	if err != nil {
		return nil, err
	}

	p, err := s.storage.PartyByID(ctx, link.PartyID)
	if err != nil {
		return nil, fmt.Errorf("could not get party: %w", err)
	}
	if p == nil {
		return nil, serrors.With(serrors.ErrNotFound, "party not found")
	}

	return p, nil
}

// SavePortalDraft saves partial party data through the portal. Drafts are
// never validated and do not consume the link; the party can save as often as
// they like until they submit.
func (s service) SavePortalDraft(ctx context.Context,
	token string,
	data domain.PartyData) (*domain.Party, error) {
	link, err := s.resolveLink(ctx, s.storage, token)
	if err != nil {
		return nil, err
	}

	updated, err := s.storage.UpdateParty(ctx, link.PartyID, storage.PartyUpdates{
		Status: domain.PartyStatusInProgress,
		Data:   &data,
		IfStatusIn: []domain.PartyStatus{
			domain.PartyStatusPending,
			domain.PartyStatusLinkSent,
			domain.PartyStatusInProgress,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("could not update party: %w", err)
	}
	if updated == nil {
		return nil, serrors.With(serrors.ErrInvalidTransition,
			"party already submitted or was cancelled")
	}

	return updated, nil
}

// SubmitParty validates and records the party's final submission. The link is
// consumed atomically inside the transaction, so two concurrent submissions
// on the same token can never both land; a validation failure rolls the
// consumption back and leaves the link usable. When the last outstanding
// party submits, the report moves to ready-to-file.
func (s service) SubmitParty(ctx context.Context,
	token string,
	data domain.PartyData) (*domain.Party, error) {
	linkID, err := s.issuer.Verify(token)
	if err != nil {
		return nil, err
	}

	var (
		updated     *domain.Party
		becameReady bool
	)
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		now := time.Now().UTC()
		link, err := tx.ConsumeLink(ctx, linkID, now)
		if err != nil {
			return fmt.Errorf("could not consume link: %w", err)
		}
		if link == nil {
			return linkRefusal(ctx, tx, linkID)
		}

		p, err := tx.PartyByID(ctx, link.PartyID)
		if err != nil {
			return fmt.Errorf("could not get party: %w", err)
		}
		if p == nil {
			return serrors.With(serrors.ErrNotFound, "party not found")
		}

		if err := party.ValidateData(p.Role, data); err != nil {
			return err
		}

		updated, err = tx.UpdateParty(ctx, p.ID, storage.PartyUpdates{
			Status: domain.PartyStatusSubmitted,
			Data:   &data,
			IfStatusIn: []domain.PartyStatus{
				domain.PartyStatusPending,
				domain.PartyStatusLinkSent,
				domain.PartyStatusInProgress,
			},
		})
		if err != nil {
			return fmt.Errorf("could not update party: %w", err)
		}
		if updated == nil {
			return serrors.InvalidTransition(string(p.Status), string(domain.PartyStatusSubmitted))
		}

		rep, err := tx.ReportByID(ctx, updated.ReportID)
		if err != nil {
			return fmt.Errorf("could not get report: %w", err)
		}
		if rep == nil {
			return serrors.With(serrors.ErrNotFound, "report not found")
		}
		if rep.Status != domain.ReportStatusCollecting {
			return nil
		}

		parties, err := tx.PartiesByReport(ctx, rep.ID)
		if err != nil {
			return fmt.Errorf("could not get parties: %w", err)
		}
		if !party.Status(rep.Facts, parties).AllComplete {
			return nil
		}

		// a nil result means another submission already moved the report
		ready, err := tx.UpdateReport(ctx, rep.ID, storage.ReportUpdates{
			Status:   domain.ReportStatusReadyToFile,
			IfStatus: domain.ReportStatusCollecting,
		})
		if err != nil {
			return fmt.Errorf("could not update report: %w", err)
		}
		becameReady = ready != nil

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not submit party: %w", err)
	}

	s.metrics.IncrementPartySubmission(updated.Role)
	s.notifier.Publish(ctx, notify.Event{
		Kind:     notify.EventPartySubmitted,
		ReportID: updated.ReportID,
		PartyID:  updated.ID,
		Detail:   fmt.Sprintf("%s submitted", updated.Role),
	})
	if becameReady {
		s.metrics.IncrementTransition(domain.ReportStatusCollecting, domain.ReportStatusReadyToFile)
		s.notifier.Publish(ctx, notify.Event{
			Kind:     notify.EventReportReady,
			ReportID: updated.ReportID,
			Detail:   "all parties collected",
		})
	}

	return updated, nil
}

// resolveLink verifies the token signature, loads the link row and checks it
// is still redeemable, without consuming it.
func (s service) resolveLink(ctx context.Context,
	st storage.AllStorage,
	token string) (*domain.PartyLink, error) {
	linkID, err := s.issuer.Verify(token)
	if err != nil {
		return nil, err
	}

	link, err := st.LinkByID(ctx, linkID)
	if err != nil {
		return nil, fmt.Errorf("could not get link: %w", err)
	}
	if link == nil {
		return nil, serrors.Token(serrors.TokenMalformed)
	}
	if !link.Redeemable(time.Now().UTC()) {
		return nil, refusalFor(*link)
	}

	return link, nil
}

// linkRefusal diagnoses why ConsumeLink returned nothing: the row is loaded
// again and its state mapped to the matching token refusal.
func linkRefusal(ctx context.Context,
	st storage.AllStorage,
	linkID domain.LinkID) error {
	link, err := st.LinkByID(ctx, linkID)
	if err != nil {
		return fmt.Errorf("could not get link: %w", err)
	}
	if link == nil {
		return serrors.Token(serrors.TokenMalformed)
	}

	return refusalFor(*link)
}

// refusalFor maps a non-redeemable link row to its token refusal.
func refusalFor(link domain.PartyLink) error {
	switch link.Status {
	case domain.LinkStatusUsed:
		return serrors.Token(serrors.TokenUsed)
	case domain.LinkStatusRevoked:
		return serrors.Token(serrors.TokenRevoked)
	default:
		// expired status, or an active row whose expiry lapsed before
		// ConsumeLink could take it
		return serrors.Token(serrors.TokenExpired)
	}
}
