package service

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/fractalglobal/fgc/internal/devserver/store"
	"github.com/fractalglobal/fgc/pkg/cryptox"
	"github.com/fractalglobal/fgc/pkg/fractalsdk"
	"github.com/fractalglobal/fgc/pkg/jwtx"
	"github.com/fractalglobal/fgc/pkg/slogx"
)

// IssuedToken is a freshly signed bearer token.
type IssuedToken struct {
	AppID       string
	Scopes      []string
	AccessToken string
	ExpiresIn   int64 // seconds
}

type TokenService struct {
	Store  store.Store
	Signer jwtx.Signer
	Hasher cryptox.PasswordHasher
	Issuer string

	// AccessTTL is the lifetime of client and user tokens; RememberTTL
	// replaces it for logins with remember_me set.
	AccessTTL   time.Duration
	RememberTTL time.Duration
}

// ClientCredentials authenticates an application by id and secret and
// issues a token carrying the client's scopes.
func (s *TokenService) ClientCredentials(ctx context.Context, appID, secret string) (*IssuedToken, error) {
	l := slogx.FromContext(ctx)

	client, err := s.Store.Clients().GetClientByID(ctx, strings.TrimSpace(appID))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidClient
		}
		return nil, err
	}

	if err := s.Hasher.Verify(secret, client.SecretHash); err != nil {
		l.Info("client credentials rejected", slog.String("app_id", appID))
		return nil, ErrInvalidClient
	}

	return s.issue(client.ID, client.ID, client.Scopes, s.AccessTTL, time.Now())
}

// Login authenticates a user on behalf of appID and issues a user token.
func (s *TokenService) Login(ctx context.Context, appID, email, password string, rememberMe bool) (*IssuedToken, error) {
	l := slogx.FromContext(ctx)

	u, err := s.Store.Users().GetUserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := s.Hasher.Verify(password, u.PasswordHash); err != nil {
		l.Info("login rejected", slog.Uint64("user_id", u.ID))
		return nil, ErrInvalidCredentials
	}
	if !u.Enabled || u.Banned != nil {
		return nil, ErrAccountDisabled
	}

	if err := s.Store.Users().TouchActivity(ctx, u.ID); err != nil {
		return nil, err
	}

	ttl := s.AccessTTL
	if rememberMe && s.RememberTTL > 0 {
		ttl = s.RememberTTL
	}
	scopes := []string{fractalsdk.UserScope(u.ID).String()}
	return s.issue(appID, strconv.FormatUint(u.ID, 10), scopes, ttl, time.Now())
}

func (s *TokenService) issue(appID, subject string, scopes []string, ttl time.Duration, now time.Time) (*IssuedToken, error) {
	if ttl <= 0 {
		ttl = jwtx.DefaultAccessTokenTTL
	}

	claims := jwtx.NewAccessClaims(appID, subject, scopes, ttl, s.Issuer, now)
	signed, err := s.Signer.Sign(claims)
	if err != nil {
		return nil, err
	}

	return &IssuedToken{
		AppID:       appID,
		Scopes:      scopes,
		AccessToken: signed,
		ExpiresIn:   claims.ExpiresIn(now),
	}, nil
}
