package jwtx_test

import (
	"crypto/ed25519"
	"crypto/rand"
	"strings"
	"testing"
	"time"

	"github.com/fractalglobal/fgc/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const exampleIssuer = "https://dev.fractalglobal.test"

func newSigner(t *testing.T, kid string) *jwtx.EdDSASigner {
	t.Helper()

	_, key, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	signer, err := jwtx.NewSignerEdDSA(kid, key)
	require.NoError(t, err)
	return signer
}

func TestEdDSASignAndVerify(t *testing.T) {
	t.Parallel()

	signer := newSigner(t, "test-key-eddsa")
	require.Equal(t, "EdDSA", signer.Alg())
	require.Equal(t, "test-key-eddsa", signer.KID())

	claims := jwtx.NewAccessClaims("app-1", "12", []string{"user:12"}, 5*time.Minute, exampleIssuer, time.Now().UTC())

	token, err := signer.Sign(claims)
	require.NoError(t, err)

	keyset := jwtx.NewKeySet()
	require.NoError(t, keyset.AddSigner(signer))

	jwks := keyset.PublicJWKS()
	require.Len(t, jwks.Keys, 1)
	require.Equal(t, "OKP", jwks.Keys[0].Kty)
	require.Equal(t, "Ed25519", jwks.Keys[0].Crv)
	_, ok := jwks.Key("missing")
	require.False(t, ok)

	parsed, err := jwtx.NewVerifierEdDSA(keyset, exampleIssuer, 0).Verify(token)
	require.NoError(t, err)
	require.Equal(t, claims.AppID, parsed.AppID)
	require.Equal(t, claims.Subject, parsed.Subject)
	require.Equal(t, claims.Scopes, parsed.Scopes)
	require.Equal(t, claims.ID, parsed.ID)
}

func TestEdDSAVerifyFailures(t *testing.T) {
	t.Parallel()

	signer := newSigner(t, "k1")
	other := newSigner(t, "k2")

	keyset := jwtx.NewKeySet()
	require.NoError(t, keyset.AddSigner(other))
	require.NoError(t, keyset.AddSigner(signer))

	now := time.Now().UTC()
	valid, err := signer.Sign(jwtx.NewAccessClaims("app", "app", []string{"public"}, time.Minute, exampleIssuer, now))
	require.NoError(t, err)

	t.Run("wrong issuer", func(t *testing.T) {
		_, err := jwtx.NewVerifierEdDSA(keyset, "wrong-issuer", 0).Verify(valid)
		require.ErrorIs(t, err, jwtx.ErrIssuer)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := signer.Sign(jwtx.NewAccessClaims("app", "app", nil, -time.Minute, exampleIssuer, now))
		require.NoError(t, err)

		_, err = jwtx.NewVerifierEdDSA(keyset, exampleIssuer, 0).Verify(token)
		require.ErrorIs(t, err, jwtx.ErrExpired)
	})

	t.Run("unknown key", func(t *testing.T) {
		lone := jwtx.NewKeySet()
		require.NoError(t, lone.AddSigner(other))

		_, err := jwtx.NewVerifierEdDSA(lone, exampleIssuer, 0).Verify(valid)
		require.ErrorIs(t, err, jwtx.ErrNoKey)
	})

	t.Run("tampered signature", func(t *testing.T) {
		parts := strings.Split(valid, ".")
		require.Len(t, parts, 3)
		repl := "A"
		if parts[2][0] == 'A' {
			repl = "B"
		}
		forged := parts[0] + "." + parts[1] + "." + repl + parts[2][1:]

		_, err := jwtx.NewVerifierEdDSA(keyset, exampleIssuer, 0).Verify(forged)
		require.Error(t, err)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := jwtx.NewVerifierEdDSA(keyset, exampleIssuer, 0).Verify("not-a-jwt")
		require.ErrorIs(t, err, jwtx.ErrMalformed)
	})
}

func TestNewSignerEdDSARejectsShortKey(t *testing.T) {
	t.Parallel()

	_, err := jwtx.NewSignerEdDSA("bad", ed25519.PrivateKey([]byte("short")))
	require.Error(t, err)
}
