package party

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"time"

	"rrer/internal/config"
	"rrer/pkg/domain"
	"rrer/pkg/serrors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// IssuerOptions configure party-link token minting.
type IssuerOptions struct {
	// PrivateKey is the PEM-encoded RSA private key tokens are signed with.
	// The verification key is derived from it.
	PrivateKey string
	// TTL is how long a minted link stays redeemable.
	TTL time.Duration
}

// NewIssuerOptions constructs IssuerOptions from the application config.
func NewIssuerOptions(cfg *config.Config) IssuerOptions {
	return IssuerOptions{
		PrivateKey: cfg.Links.PrivateKey,
		TTL:        cfg.Links.TTL,
	}
}

// Issuer mints and verifies the signed tokens behind party collection links.
// The token embeds only the link ID; redemption state lives in storage, so
// possession of a token alone never grants more than one submission.
type Issuer struct {
	private *rsa.PrivateKey
	public  *rsa.PublicKey
	ttl     time.Duration
}

// NewIssuer parses the configured signing key and returns a ready Issuer.
func NewIssuer(opts IssuerOptions) (*Issuer, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(opts.PrivateKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA private key: %w", err)
	}

	return &Issuer{
		private: key,
		public:  &key.PublicKey,
		ttl:     opts.TTL,
	}, nil
}

// Mint signs a token for the given link ID, valid from now until the
// configured TTL elapses.
func (i *Issuer) Mint(linkID domain.LinkID, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(i.ttl)
	claims := jwt.RegisteredClaims{
		Subject:   uuid.UUID(linkID).String(),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(i.private)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("could not sign link token: %w", err)
	}

	return signed, expiresAt, nil
}

// Verify checks the token's signature and expiry and returns the embedded
// link ID. Failures are ErrToken: expired tokens report so specifically,
// everything else (bad signature, wrong algorithm, garbled subject) is
// malformed. Whether the link was already used is storage's call, not ours.
func (i *Issuer) Verify(token string) (domain.LinkID, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}

		return i.public, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.LinkID{}, serrors.Token(serrors.TokenExpired)
		}

		return domain.LinkID{}, serrors.Token(serrors.TokenMalformed)
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return domain.LinkID{}, serrors.Token(serrors.TokenMalformed)
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return domain.LinkID{}, serrors.Token(serrors.TokenMalformed)
	}

	return domain.LinkID(id), nil
}
