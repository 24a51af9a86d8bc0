package cryptox

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		size    int
		wantLen int
	}{
		{"128-bit token", TokenSize128, 22},
		{"256-bit token", TokenSize256, 43},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := GenerateToken(tt.size)
			require.NoError(t, err)
			require.Len(t, token, tt.wantLen)

			decoded, err := base64.RawURLEncoding.DecodeString(token)
			require.NoError(t, err)
			require.Len(t, decoded, tt.size)
		})
	}
}

func TestGenerateToken_InvalidSize(t *testing.T) {
	t.Parallel()

	for _, size := range []int{0, -1} {
		_, err := GenerateToken(size)
		require.Error(t, err)
	}
}

func TestGenerateSecret(t *testing.T) {
	t.Parallel()

	secret, err := GenerateSecret()
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(secret)
	require.NoError(t, err)
	require.Len(t, raw, SecretSize)

	other, err := GenerateSecret()
	require.NoError(t, err)
	require.NotEqual(t, secret, other)
}

func TestGenerateHex(t *testing.T) {
	t.Parallel()

	s, err := GenerateHex(16)
	require.NoError(t, err)
	require.Len(t, s, 32)
	require.Regexp(t, `^[0-9a-f]+$`, s)
}

func TestFingerprintToken(t *testing.T) {
	t.Parallel()

	fp := FingerprintToken("my-refresh-token")
	require.Len(t, fp, 43)
	require.Equal(t, fp, FingerprintToken("my-refresh-token"), "fingerprint must be deterministic")
	require.NotEqual(t, fp, FingerprintToken("my-refresh-token2"))
}
