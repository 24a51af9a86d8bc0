package fractalsdk

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestToken(t *testing.T, expiration time.Time, scopes ...Scope) *AccessToken {
	t.Helper()
	tok, err := NewAccessToken("app-test", scopes, "opaque-token", expiration)
	require.NoError(t, err)
	return tok
}

func TestScopeParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want Scope
	}{
		{"admin", AdminScope},
		{"public", PublicScope},
		{"developer", DeveloperScope},
		{"user:0", UserScope(0)},
		{"user:18446744073709551615", UserScope(18446744073709551615)},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseScope(tt.raw)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.raw, got.String())
		})
	}

	t.Run("invalid", func(t *testing.T) {
		for _, raw := range []string{"", "Admin", "user:", "user:-1", "user:abc", "root"} {
			_, err := ParseScope(raw)
			require.Error(t, err, raw)
		}
	})

	t.Run("zero value does not marshal", func(t *testing.T) {
		_, err := Scope{}.MarshalText()
		require.Error(t, err)
	})
}

func TestAccessTokenFromDTO(t *testing.T) {
	t.Parallel()

	valid := AccessTokenDTO{
		AppID:       "app-1",
		Scopes:      []string{"public", "user:7"},
		AccessToken: "abc",
		TokenType:   "Bearer",
		Expiration:  3600,
	}

	t.Run("valid", func(t *testing.T) {
		tok, err := AccessTokenFromDTO(valid)
		require.NoError(t, err)
		require.Equal(t, "app-1", tok.AppID())
		require.Equal(t, "abc", tok.Token())
		require.Equal(t, []Scope{PublicScope, UserScope(7)}, tok.Scopes())
		require.False(t, tok.HasExpired())
		require.WithinDuration(t, time.Now().Add(time.Hour), tok.Expiration(), 5*time.Second)
	})

	t.Run("empty scopes rejected", func(t *testing.T) {
		dto := valid
		dto.Scopes = nil

		tok, err := AccessTokenFromDTO(dto)
		require.Nil(t, tok)

		var fromErr *FromDTOError
		require.ErrorAs(t, err, &fromErr)
		require.Equal(t, "scopes", fromErr.Field)
	})

	t.Run("non bearer token type rejected", func(t *testing.T) {
		dto := valid
		dto.TokenType = "MAC"

		_, err := AccessTokenFromDTO(dto)
		var fromErr *FromDTOError
		require.ErrorAs(t, err, &fromErr)
		require.Equal(t, "token_type", fromErr.Field)
	})

	t.Run("unknown scope rejected", func(t *testing.T) {
		dto := valid
		dto.Scopes = []string{"superuser"}

		_, err := AccessTokenFromDTO(dto)
		var fromErr *FromDTOError
		require.ErrorAs(t, err, &fromErr)
	})
}

func TestNewAccessTokenRequiresScopes(t *testing.T) {
	t.Parallel()

	_, err := NewAccessToken("app", nil, "tok", time.Now().Add(time.Hour))
	require.ErrorIs(t, err, ErrEmptyScopes)
}

func TestAccessTokenPredicates(t *testing.T) {
	t.Parallel()

	later := time.Now().Add(time.Hour)

	t.Run("user scope", func(t *testing.T) {
		for _, id := range []uint64{0, 1, 42, 1 << 40} {
			tok := newTestToken(t, later, UserScope(id))
			require.True(t, tok.IsUser(id))
			require.False(t, tok.IsUser(id+1))
			require.False(t, tok.IsAdmin())
			require.False(t, tok.IsPublic())

			got, ok := tok.UserID()
			require.True(t, ok)
			require.Equal(t, id, got)
		}
	})

	t.Run("first user scope wins", func(t *testing.T) {
		tok := newTestToken(t, later, PublicScope, UserScope(3), UserScope(9))
		got, ok := tok.UserID()
		require.True(t, ok)
		require.Equal(t, uint64(3), got)
		require.True(t, tok.IsUser(9))
	})

	t.Run("admin and public", func(t *testing.T) {
		tok := newTestToken(t, later, AdminScope, PublicScope)
		require.True(t, tok.IsAdmin())
		require.True(t, tok.IsPublic())
		require.False(t, tok.IsDeveloper())

		_, ok := tok.UserID()
		require.False(t, ok)
	})

	t.Run("scopes are copied", func(t *testing.T) {
		scopes := []Scope{AdminScope}
		tok := newTestToken(t, later, scopes...)
		scopes[0] = PublicScope
		tok.Scopes()[0] = PublicScope
		require.True(t, tok.IsAdmin())
	})

	t.Run("string hides bearer value", func(t *testing.T) {
		tok := newTestToken(t, later, AdminScope)
		require.NotContains(t, tok.String(), "opaque-token")
	})
}

func TestAccessTokenHasExpired(t *testing.T) {
	t.Parallel()

	require.True(t, newTestToken(t, time.Now().Add(-time.Second), PublicScope).HasExpired())
	require.True(t, newTestToken(t, time.Now(), PublicScope).HasExpired())
	require.False(t, newTestToken(t, time.Now().Add(time.Minute), PublicScope).HasExpired())
}

func TestAuthorize(t *testing.T) {
	t.Parallel()

	later := time.Now().Add(time.Hour)
	adminTok := newTestToken(t, later, AdminScope)
	userTok := newTestToken(t, later, UserScope(5))
	publicTok := newTestToken(t, later, PublicScope)
	expired := newTestToken(t, time.Now().Add(-time.Second), AdminScope)

	adminOrUser5 := either(admin, user(5))

	tests := []struct {
		name    string
		tok     *AccessToken
		policy  policy
		wantErr error
	}{
		{"admin satisfies admin or user", adminTok, adminOrUser5, nil},
		{"matching user satisfies admin or user", userTok, adminOrUser5, nil},
		{"other user rejected", newTestToken(t, later, UserScope(6)), adminOrUser5, ErrForbiddenScope},
		{"public rejected for admin", publicTok, admin, ErrForbiddenScope},
		{"user rejected for public", userTok, public, ErrForbiddenScope},
		{"any user", userTok, anyUser, nil},
		{"expired token rejected", expired, admin, ErrTokenExpired},
		{"nil token rejected", nil, admin, ErrForbiddenScope},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := authorize("op", tt.tok, tt.policy)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, tt.wantErr)
			var authErr *AuthorizationError
			require.True(t, errors.As(err, &authErr))
			require.Equal(t, "op", authErr.Operation)
		})
	}
}
