package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"rrer/pkg/domain"
	"rrer/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	partiesTable    = "parties"
	partyLinksTable = "party_links"
)

func (p *PgSQL) StoreParties(ctx context.Context, parties ...domain.Party) ([]domain.Party, error) {
	if len(parties) == 0 {
		return nil, nil
	}

	pgParties, err := domainPartiesToPg(parties)
	if err != nil {
		return nil, err
	}

	var result []PgParty
	if err := p.Builder.Insert(partiesTable).
		Rows(pgParties).
		Returning(&PgParty{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store parties into pg: %w", err)
	}

	return pgPartiesToDomain(result)
}

// PartyByID returns a party by its ID, excluding soft-deleted rows.
func (p *PgSQL) PartyByID(ctx context.Context, id domain.PartyID) (*domain.Party, error) {
	var row PgParty
	found, err := p.Builder.From(partiesTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch party by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// PartiesByReport returns every party on the report, cancelled ones included,
// oldest first so the collection view is stable.
func (p *PgSQL) PartiesByReport(ctx context.Context, reportID domain.ReportID) ([]domain.Party, error) {
	var rows []PgParty
	if err := p.Builder.From(partiesTable).
		Where(
			goqu.I("report_id").Eq(uuid.UUID(reportID)),
			goqu.I("deleted_at").IsNull(),
		).
		Order(goqu.I("created_at").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch parties by report id: %w", err)
	}

	return pgPartiesToDomain(rows)
}

// UpdateParty updates a single party identified by its ID and returns the
// updated row. Only provided fields are changed and updated_at is set
// automatically. When updates.IfStatusIn is set and the party's current status
// is not in the list, nothing changes and nil is returned.
func (p *PgSQL) UpdateParty(ctx context.Context,
	id domain.PartyID,
	updates storage.PartyUpdates) (*domain.Party, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Status != "" {
		rec["status"] = string(updates.Status)
	}
	if updates.Data != nil {
		b, err := json.Marshal(updates.Data)
		if err != nil {
			return nil, fmt.Errorf("could not marshal party data: %w", err)
		}

		rec["data"] = b
	}

	w := []goqu.Expression{
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNull(),
	}
	if len(updates.IfStatusIn) > 0 {
		statuses := make([]string, 0, len(updates.IfStatusIn))
		for _, s := range updates.IfStatusIn {
			statuses = append(statuses, string(s))
		}
		w = append(w, goqu.I("status").In(statuses))
	}

	var row PgParty
	found, err := p.Builder.Update(partiesTable).
		Set(rec).Where(w...).
		Returning(&PgParty{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update party in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) StoreLink(ctx context.Context, link domain.PartyLink) (*domain.PartyLink, error) {
	var pgLink PgLink
	pgLink.FromDomain(link)

	var row PgLink
	found, err := p.Builder.Insert(partyLinksTable).
		Rows(pgLink).
		Returning(&PgLink{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not store party link into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("could not store party link into pg: no row returned")
	}

	return row.ToDomain(), nil
}

// LinkByID returns a link row by its ID.
func (p *PgSQL) LinkByID(ctx context.Context, id domain.LinkID) (*domain.PartyLink, error) {
	var row PgLink
	found, err := p.Builder.From(partyLinksTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch party link by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// ConsumeLink moves the link from active to used in a single conditional
// UPDATE. Two concurrent submissions race on the same WHERE clause, so at most
// one of them gets the row back; the loser sees nil and must refuse.
func (p *PgSQL) ConsumeLink(ctx context.Context, id domain.LinkID, now time.Time) (*domain.PartyLink, error) {
	var row PgLink
	found, err := p.Builder.Update(partyLinksTable).
		Set(goqu.Record{
			"status":     string(domain.LinkStatusUsed),
			"used_at":    now,
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("status").Eq(string(domain.LinkStatusActive)),
		goqu.I("expires_at").Gt(now),
	).Returning(&PgLink{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not consume party link in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// RevokeActiveLinks revokes every still-active link for the party.
func (p *PgSQL) RevokeActiveLinks(ctx context.Context, partyID domain.PartyID) error {
	_, err := p.Builder.Update(partyLinksTable).
		Set(goqu.Record{
			"status":     string(domain.LinkStatusRevoked),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("party_id").Eq(uuid.UUID(partyID)),
		goqu.I("status").Eq(string(domain.LinkStatusActive)),
	).Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not revoke party links in pg: %w", err)
	}

	return nil
}
