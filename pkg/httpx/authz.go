package httpx

import (
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/fractalglobal/fgc/pkg/jwtx"
)

// Policy decides whether verified claims may perform the request.
type Policy func(c jwtx.Claims, r *http.Request) bool

// HasScope allows tokens carrying the exact wire scope.
func HasScope(scope string) Policy {
	return func(c jwtx.Claims, _ *http.Request) bool {
		return c.HasScope(scope)
	}
}

// AnyUser allows any token carrying a "user:<id>" scope.
func AnyUser() Policy {
	return func(c jwtx.Claims, _ *http.Request) bool {
		return slices.ContainsFunc(c.Scopes, func(s string) bool {
			return strings.HasPrefix(s, "user:")
		})
	}
}

// PathUser allows the user whose ID is the named path value.
func PathUser(param string) Policy {
	return func(c jwtx.Claims, r *http.Request) bool {
		id, err := strconv.ParseUint(r.PathValue(param), 10, 64)
		if err != nil {
			return false
		}
		return c.HasScope("user:" + strconv.FormatUint(id, 10))
	}
}

// AnyOf allows the request when any policy does.
func AnyOf(policies ...Policy) Policy {
	return func(c jwtx.Claims, r *http.Request) bool {
		for _, p := range policies {
			if p(c, r) {
				return true
			}
		}
		return false
	}
}

// Require rejects requests whose claims fail the policy. It must run after
// AuthnMiddleware. Insufficient scope is answered with 401 because Fractal
// clients treat 403 as a server fault.
func Require(p Policy) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, ok := ClaimsFromContext(r.Context())
			if !ok || !p(c, r) {
				w.Header().Set("WWW-Authenticate", `Bearer error="insufficient_scope"`)
				WriteMessage(w, http.StatusUnauthorized, "insufficient scope")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAnyScope the caller must have at least one of the provided scopes.
func RequireAnyScope(required ...string) Middleware {
	policies := make([]Policy, len(required))
	for i, s := range required {
		policies[i] = HasScope(s)
	}
	return Require(AnyOf(policies...))
}
