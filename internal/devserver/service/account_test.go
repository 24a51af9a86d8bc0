package service

import (
	"context"
	"testing"
	"time"

	"github.com/fractalglobal/fgc/internal/devserver/domain"
	"github.com/fractalglobal/fgc/pkg/fractalsdk"
	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s, mailer := newAccountService(t)

	alice := register(t, s, "alice")
	require.Equal(t, int64(100_000), alice.CheckingBalance)
	require.False(t, alice.EmailConfirmed)
	require.NoError(t, fractalsdk.WalletAddress(alice.WalletAddress).Validate())

	sent := mailer.last(t)
	require.Equal(t, "alice@example.com", sent.To)
	require.Equal(t, domain.KeyConfirmEmail, sent.Purpose)

	tests := []struct {
		name     string
		username string
		password string
		email    string
		want     error
	}{
		{"taken username", "alice", "password123", "other@example.com", ErrUsernameTaken},
		{"taken email", "alice2", "password123", "ALICE@example.com", ErrEmailTaken},
		{"short username", "al", "password123", "al@example.com", ErrInvalidUsername},
		{"bad username", "al ice", "password123", "al@example.com", ErrInvalidUsername},
		{"short password", "carol", "short", "carol@example.com", ErrWeakPassword},
		{"bad email", "carol", "password123", "not-an-email", ErrInvalidEmail},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Register(ctx, tt.username, tt.password, tt.email)
			require.ErrorIs(t, err, tt.want)
			require.ErrorIs(t, err, ErrRejected)
		})
	}
}

func TestConfirmEmail(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s, mailer := newAccountService(t)

	alice := register(t, s, "alice")
	key := mailer.last(t).Key

	require.ErrorIs(t, s.ConfirmEmail(ctx, "bogus"), ErrInvalidKey)
	require.NoError(t, s.ConfirmEmail(ctx, key))
	require.ErrorIs(t, s.ConfirmEmail(ctx, key), ErrInvalidKey, "keys are single use")

	got, err := s.GetUser(ctx, alice.ID)
	require.NoError(t, err)
	require.True(t, got.EmailConfirmed)

	require.ErrorIs(t, s.ResendConfirmation(ctx, alice.ID), ErrAlreadyConfirmed)
	require.NoError(t, s.SetEmailConfirmed(ctx, alice.ID, false))
	require.NoError(t, s.ResendConfirmation(ctx, alice.ID))
}

func TestResetPassword(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s, mailer := newAccountService(t)

	alice := register(t, s, "alice")

	require.ErrorIs(t, s.StartResetPassword(ctx, "alice", "bob@example.com"), ErrNotFound)
	require.ErrorIs(t, s.StartResetPassword(ctx, "nobody", "alice@example.com"), ErrNotFound)
	require.NoError(t, s.StartResetPassword(ctx, "alice", "Alice@Example.com"))

	sent := mailer.last(t)
	require.Equal(t, domain.KeyResetPassword, sent.Purpose)

	require.ErrorIs(t, s.ResetPassword(ctx, sent.Key, "short"), ErrWeakPassword)
	require.NoError(t, s.ResetPassword(ctx, sent.Key, "new-password"))

	got, err := s.GetUser(ctx, alice.ID)
	require.NoError(t, err)
	require.NoError(t, testHasher.Verify("new-password", got.PasswordHash))
}

func TestUpdateUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s, mailer := newAccountService(t)

	alice := register(t, s, "alice")
	register(t, s, "bob")
	require.NoError(t, s.SetEmailConfirmed(ctx, alice.ID, true))

	t.Run("names and email", func(t *testing.T) {
		first, last, email := "Alice", "Liddell", "alice@wonderland.example"
		birthday := time.Date(1990, 7, 4, 0, 0, 0, 0, time.UTC)
		require.NoError(t, s.UpdateUser(ctx, alice.ID, false, UserUpdate{
			First: &first, Last: &last, Email: &email, Birthday: &birthday,
		}))

		got, err := s.GetUser(ctx, alice.ID)
		require.NoError(t, err)
		require.Equal(t, "Alice Liddell", got.DisplayName())
		require.Equal(t, email, got.Email)
		require.False(t, got.EmailConfirmed)
		require.Equal(t, email, mailer.last(t).To)
	})

	t.Run("taken username", func(t *testing.T) {
		name := "bob"
		err := s.UpdateUser(ctx, alice.ID, true, UserUpdate{Username: &name})
		require.ErrorIs(t, err, ErrUsernameTaken)
	})

	t.Run("password requires owner and old password", func(t *testing.T) {
		old, wrong, next := "password123", "nope-nope", "better-password"

		err := s.UpdateUser(ctx, alice.ID, false, UserUpdate{OldPassword: &old, NewPassword: &next})
		require.ErrorIs(t, err, ErrPasswordOwner)

		err = s.UpdateUser(ctx, alice.ID, true, UserUpdate{OldPassword: &wrong, NewPassword: &next})
		require.ErrorIs(t, err, ErrWrongPassword)

		require.NoError(t, s.UpdateUser(ctx, alice.ID, true, UserUpdate{OldPassword: &old, NewPassword: &next}))
		got, err := s.GetUser(ctx, alice.ID)
		require.NoError(t, err)
		require.NoError(t, testHasher.Verify(next, got.PasswordHash))
	})

	t.Run("missing user", func(t *testing.T) {
		name := "ghost"
		require.ErrorIs(t, s.UpdateUser(ctx, 999, false, UserUpdate{Username: &name}), ErrNotFound)
	})
}

func TestAuthenticator(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s, _ := newAccountService(t)

	alice := register(t, s, "alice")

	now := time.Now()
	require.ErrorIs(t, s.Authenticate(ctx, alice.ID, 123456, now), ErrNoAuthenticator)

	url, err := s.GenerateAuthenticator(ctx, alice.ID)
	require.NoError(t, err)
	key, err := otp.NewKeyFromURL(url)
	require.NoError(t, err)
	require.Equal(t, "Fractal Test", key.Issuer())

	codeStr, err := totp.GenerateCode(key.Secret(), now)
	require.NoError(t, err)
	var code uint32
	for _, c := range codeStr {
		code = code*10 + uint32(c-'0')
	}

	require.ErrorIs(t, s.Authenticate(ctx, alice.ID, code, now.Add(-time.Hour)), ErrStaleCode)
	require.ErrorIs(t, s.Authenticate(ctx, alice.ID, (code+1)%1_000_000, now), ErrInvalidCode)
	require.NoError(t, s.Authenticate(ctx, alice.ID, code, now))

	got, err := s.GetUser(ctx, alice.ID)
	require.NoError(t, err)
	require.True(t, got.TOTPEnabled)
	require.Equal(t, uint8(1), got.DeviceCount)
}

func TestRandomProfilesAndSubscribe(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s, _ := newAccountService(t)

	alice := register(t, s, "alice")
	register(t, s, "bob")
	register(t, s, "carol")

	users, err := s.RandomProfiles(ctx, alice.ID, 10)
	require.NoError(t, err)
	require.Len(t, users, 2)
	for _, u := range users {
		require.NotEqual(t, alice.ID, u.ID)
	}

	none, err := s.RandomProfiles(ctx, alice.ID, 0)
	require.NoError(t, err)
	require.Empty(t, none)

	require.NoError(t, s.Subscribe(ctx, "news@example.com"))
	require.ErrorIs(t, s.Subscribe(ctx, "news@example.com"), ErrAlreadySubscribed)
	require.ErrorIs(t, s.Subscribe(ctx, "nope"), ErrInvalidEmail)

	require.NoError(t, s.DeleteUser(ctx, alice.ID))
	require.ErrorIs(t, s.DeleteUser(ctx, alice.ID), ErrNotFound)
}
