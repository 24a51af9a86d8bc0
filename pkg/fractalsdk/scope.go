package fractalsdk

import (
	"fmt"
	"strconv"
	"strings"
)

// ScopeKind identifies which variant a Scope holds.
type ScopeKind uint8

const (
	// ScopeAdmin grants every operation.
	ScopeAdmin ScopeKind = iota + 1
	// ScopeUser is bound to a single authenticated user.
	ScopeUser
	// ScopePublic is granted to application tokens for the public flows
	// (register, login, password reset).
	ScopePublic
	// ScopeDeveloper is granted to third party developer applications.
	ScopeDeveloper
)

// Scope is a capability grant carried by an AccessToken. It is one of
// Admin, Public, Developer or User(id). The zero value is not a valid scope.
//
// Scopes are comparable with ==.
type Scope struct {
	kind   ScopeKind
	userID uint64
}

var (
	AdminScope     = Scope{kind: ScopeAdmin}
	PublicScope    = Scope{kind: ScopePublic}
	DeveloperScope = Scope{kind: ScopeDeveloper}
)

// UserScope returns the scope of the user with the given id.
func UserScope(id uint64) Scope {
	return Scope{kind: ScopeUser, userID: id}
}

// Kind returns the variant of the scope.
func (s Scope) Kind() ScopeKind { return s.kind }

// UserID returns the id carried by a User scope.
func (s Scope) UserID() (uint64, bool) {
	if s.kind != ScopeUser {
		return 0, false
	}
	return s.userID, true
}

// String returns the wire form: "admin", "public", "developer" or "user:<id>".
func (s Scope) String() string {
	switch s.kind {
	case ScopeAdmin:
		return "admin"
	case ScopePublic:
		return "public"
	case ScopeDeveloper:
		return "developer"
	case ScopeUser:
		return "user:" + strconv.FormatUint(s.userID, 10)
	default:
		return "invalid"
	}
}

// ParseScope parses the wire form produced by Scope.String.
func ParseScope(s string) (Scope, error) {
	switch s {
	case "admin":
		return AdminScope, nil
	case "public":
		return PublicScope, nil
	case "developer":
		return DeveloperScope, nil
	}

	raw, ok := strings.CutPrefix(s, "user:")
	if !ok {
		return Scope{}, fmt.Errorf("unknown scope %q", s)
	}

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return Scope{}, fmt.Errorf("invalid user scope %q: %w", s, err)
	}

	return UserScope(id), nil
}

// ParseScopes parses every element of raw, failing on the first invalid one.
func ParseScopes(raw []string) ([]Scope, error) {
	scopes := make([]Scope, 0, len(raw))
	for _, r := range raw {
		s, err := ParseScope(r)
		if err != nil {
			return nil, err
		}
		scopes = append(scopes, s)
	}
	return scopes, nil
}

// ScopeStrings returns the wire form of each scope.
func ScopeStrings(scopes []Scope) []string {
	out := make([]string, len(scopes))
	for i, s := range scopes {
		out[i] = s.String()
	}
	return out
}

func (s Scope) MarshalText() ([]byte, error) {
	if s.kind == 0 {
		return nil, fmt.Errorf("cannot marshal zero scope")
	}
	return []byte(s.String()), nil
}

func (s *Scope) UnmarshalText(text []byte) error {
	parsed, err := ParseScope(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
