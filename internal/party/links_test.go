package party_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"
	"time"

	"rrer/internal/party"
	"rrer/pkg/domain"
	"rrer/pkg/serrors"

	"github.com/stretchr/testify/require"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// helper to generate an RSA key and return it PEM-encoded.
func genPrivatePEM(tb testing.TB) (*rsa.PrivateKey, string) {
	tb.Helper()
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(tb, err, "failed to generate RSA key")
	privPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(priv),
	})

	return priv, string(privPEM)
}

func newIssuerForTest(t *testing.T, ttl time.Duration) *party.Issuer {
	t.Helper()
	_, privPEM := genPrivatePEM(t)
	issuer, err := party.NewIssuer(party.IssuerOptions{PrivateKey: privPEM, TTL: ttl})
	require.NoError(t, err, "NewIssuer failed")

	return issuer
}

func TestNewIssuerRejectsGarbage(t *testing.T) {
	_, err := party.NewIssuer(party.IssuerOptions{PrivateKey: "not a key", TTL: time.Hour})
	require.Error(t, err)
}

func TestMintVerifyRoundTrip(t *testing.T) {
	issuer := newIssuerForTest(t, 72*time.Hour)
	linkID := domain.LinkID(uuid.New())
	now := time.Now()

	token, expiresAt, err := issuer.Mint(linkID, now)
	require.NoError(t, err)
	require.WithinDuration(t, now.Add(72*time.Hour), expiresAt, time.Second)

	got, err := issuer.Verify(token)
	require.NoError(t, err)
	require.Equal(t, linkID, got)
}

func TestVerifyExpiredToken(t *testing.T) {
	issuer := newIssuerForTest(t, time.Hour)

	// minted in the past so the token is already expired
	token, _, err := issuer.Mint(domain.LinkID(uuid.New()), time.Now().Add(-2*time.Hour))
	require.NoError(t, err)

	_, err = issuer.Verify(token)
	require.ErrorIs(t, err, serrors.ErrToken)

	var tf *serrors.TokenFault
	require.ErrorAs(t, err, &tf)
	require.Equal(t, serrors.TokenExpired, tf.Reason)
}

func TestVerifyWrongKey(t *testing.T) {
	issuer := newIssuerForTest(t, time.Hour)
	other := newIssuerForTest(t, time.Hour)

	token, _, err := other.Mint(domain.LinkID(uuid.New()), time.Now())
	require.NoError(t, err)

	_, err = issuer.Verify(token)
	require.ErrorIs(t, err, serrors.ErrToken)

	var tf *serrors.TokenFault
	require.ErrorAs(t, err, &tf)
	require.Equal(t, serrors.TokenMalformed, tf.Reason)
}

func TestVerifyWrongAlgorithm(t *testing.T) {
	issuer := newIssuerForTest(t, time.Hour)

	claims := jwt.RegisteredClaims{
		Subject:   uuid.NewString(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err, "failed to sign HS256 token")

	_, err = issuer.Verify(signed)
	require.ErrorIs(t, err, serrors.ErrToken)
}

func TestVerifyGarbledSubject(t *testing.T) {
	priv, privPEM := genPrivatePEM(t)
	issuer, err := party.NewIssuer(party.IssuerOptions{PrivateKey: privPEM, TTL: time.Hour})
	require.NoError(t, err)

	claims := jwt.RegisteredClaims{
		Subject:   "not-a-uuid",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(priv)
	require.NoError(t, err)

	_, err = issuer.Verify(signed)
	require.ErrorIs(t, err, serrors.ErrToken)

	var tf *serrors.TokenFault
	require.ErrorAs(t, err, &tf)
	require.Equal(t, serrors.TokenMalformed, tf.Reason)
}

func TestVerifyTotalGarbage(t *testing.T) {
	issuer := newIssuerForTest(t, time.Hour)

	_, err := issuer.Verify("xxxx.yyyy.zzzz")
	require.ErrorIs(t, err, serrors.ErrToken)
}
