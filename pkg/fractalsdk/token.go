package fractalsdk

import (
	"fmt"
	"slices"
	"time"
)

// TokenTypeBearer is the only token type the API issues.
const TokenTypeBearer = "Bearer"

// AccessToken is an authorization grant returned by Token or Login. It is
// immutable; re-authenticating produces a new token.
type AccessToken struct {
	appID      string
	scopes     []Scope
	token      string
	expiration time.Time
}

// NewAccessToken builds a token in memory. Tokens normally come from Token
// or Login; this is for tests and for callers restoring a saved token.
func NewAccessToken(appID string, scopes []Scope, token string, expiration time.Time) (*AccessToken, error) {
	if len(scopes) == 0 {
		return nil, ErrEmptyScopes
	}

	return &AccessToken{
		appID:      appID,
		scopes:     slices.Clone(scopes),
		token:      token,
		expiration: expiration,
	}, nil
}

// AccessTokenFromDTO converts a token response. The expiration in the DTO is
// relative (seconds from now).
func AccessTokenFromDTO(dto AccessTokenDTO) (*AccessToken, error) {
	if dto.TokenType != TokenTypeBearer {
		return nil, &FromDTOError{
			Field:  "token_type",
			Reason: fmt.Sprintf("expected %q, got %q", TokenTypeBearer, dto.TokenType),
		}
	}
	if len(dto.Scopes) == 0 {
		return nil, &FromDTOError{Field: "scopes", Reason: "no scopes"}
	}

	scopes, err := ParseScopes(dto.Scopes)
	if err != nil {
		return nil, &FromDTOError{Field: "scopes", Reason: err.Error()}
	}

	return &AccessToken{
		appID:      dto.AppID,
		scopes:     scopes,
		token:      dto.AccessToken,
		expiration: time.Now().Add(time.Duration(dto.Expiration) * time.Second),
	}, nil
}

func (t *AccessToken) AppID() string         { return t.appID }
func (t *AccessToken) Token() string         { return t.token }
func (t *AccessToken) Expiration() time.Time { return t.expiration }

// Scopes returns a copy of the token's scopes in the order the server sent them.
func (t *AccessToken) Scopes() []Scope { return slices.Clone(t.scopes) }

// HasExpired reports whether the current time is at or past the expiration.
func (t *AccessToken) HasExpired() bool {
	return !time.Now().Before(t.expiration)
}

func (t *AccessToken) IsAdmin() bool     { return slices.Contains(t.scopes, AdminScope) }
func (t *AccessToken) IsPublic() bool    { return slices.Contains(t.scopes, PublicScope) }
func (t *AccessToken) IsDeveloper() bool { return slices.Contains(t.scopes, DeveloperScope) }

// IsUser reports whether the token carries the User scope of exactly id.
func (t *AccessToken) IsUser(id uint64) bool {
	return slices.Contains(t.scopes, UserScope(id))
}

// UserID returns the id of the first User scope on the token.
func (t *AccessToken) UserID() (uint64, bool) {
	for _, s := range t.scopes {
		if id, ok := s.UserID(); ok {
			return id, true
		}
	}
	return 0, false
}

// String describes the token without revealing the bearer value.
func (t *AccessToken) String() string {
	return fmt.Sprintf("AccessToken{app_id=%s scopes=%v expires=%s}",
		t.appID, ScopeStrings(t.scopes), t.expiration.Format(time.RFC3339))
}

func (t *AccessToken) authorization() string {
	return "Bearer " + t.token
}
