package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPasswordHasher_Hash(t *testing.T) {
	t.Parallel()

	h := PasswordHasher{Pepper: "test-pepper"}

	tests := []struct {
		name     string
		password string
	}{
		{"simple password", "password123"},
		{"complex password", "P@ssw0rd!#$%^&*()"},
		{"long password", strings.Repeat("a", 100)},
		{"empty password", ""},
		{"whitespace password", "   spaces   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := h.Hash(tt.password)
			require.NoError(t, err)
			require.True(t, strings.HasPrefix(hash, "$argon2id$v=19$"), "hash should be in PHC format")

			parts := strings.Split(hash, "$")
			require.Len(t, parts, 6)
			require.Equal(t, "m=19456,t=2,p=1", parts[3])
			require.NotEmpty(t, parts[4], "salt should not be empty")
			require.NotEmpty(t, parts[5], "hash should not be empty")

			require.NoError(t, h.Verify(tt.password, hash))
			require.ErrorIs(t, h.Verify(tt.password+"x", hash), ErrPasswordMismatch)
		})
	}
}

func TestPasswordHasher_UniqueSalts(t *testing.T) {
	t.Parallel()

	h := PasswordHasher{}
	hash1, err := h.Hash("samepassword")
	require.NoError(t, err)
	hash2, err := h.Hash("samepassword")
	require.NoError(t, err)

	require.NotEqual(t, hash1, hash2, "hashes should differ due to unique salts")
}

func TestPasswordHasher_PepperMatters(t *testing.T) {
	t.Parallel()

	hash, err := PasswordHasher{Pepper: "one"}.Hash("secret")
	require.NoError(t, err)

	require.NoError(t, PasswordHasher{Pepper: "one"}.Verify("secret", hash))
	require.ErrorIs(t, PasswordHasher{Pepper: "two"}.Verify("secret", hash), ErrPasswordMismatch)
}

func TestPasswordHasher_VerifyMalformed(t *testing.T) {
	t.Parallel()

	h := PasswordHasher{}
	for _, encoded := range []string{
		"",
		"plaintext",
		"$argon2i$v=19$m=1,t=1,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=18$m=1,t=1,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=19$garbage$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=1,t=1,p=1$!!!$aGFzaA",
	} {
		err := h.Verify("pw", encoded)
		require.Error(t, err, encoded)
		require.NotErrorIs(t, err, ErrPasswordMismatch, encoded)
	}
}
