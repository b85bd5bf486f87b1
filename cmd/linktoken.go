package main

import (
	"context"
	"fmt"
	"time"

	"rrer/internal/config"
	"rrer/internal/party"
	"rrer/pkg/domain"
	"rrer/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// linkTokenCommand constructs the 'linktoken' subcommand that issues a
// collection link for a party out of band: it stores the link row, revokes any
// earlier active links and prints the signed token. Useful for support cases
// where the portal link must be re-delivered manually.
func linkTokenCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "linktoken",
		Short: "Issues a collection link token for a given party ID",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			rawPartyID, _ := cmd.Flags().GetString("party")
			partyID, err := uuid.Parse(rawPartyID)
			if err != nil {
				logger.Fatal(ctx, "could not parse party ID", zap.Error(err))
			}

			issuer, err := party.NewIssuer(party.NewIssuerOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not create link issuer", zap.Error(err))
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			if err := strg.RevokeActiveLinks(ctx, domain.PartyID(partyID)); err != nil {
				logger.Fatal(ctx, "could not revoke earlier links", zap.Error(err))
			}

			linkID := domain.LinkID(uuid.New())
			token, expiresAt, err := issuer.Mint(linkID, time.Now().UTC())
			if err != nil {
				logger.Fatal(ctx, "could not mint link token", zap.Error(err))
			}

			if _, err := strg.StoreLink(ctx, domain.PartyLink{
				ID:        linkID,
				PartyID:   domain.PartyID(partyID),
				Status:    domain.LinkStatusActive,
				ExpiresAt: expiresAt,
			}); err != nil {
				logger.Fatal(ctx, "could not store link", zap.Error(err))
			}

			fmt.Println(token) //nolint: forbidigo
		},
	}

	cmd.Flags().String("party", "", "Party ID the link collects information for")
	_ = cmd.MarkFlagRequired("party")

	return cmd
}
