package httpx_test

import (
	"crypto/ed25519"
	"crypto/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fractalglobal/fgc/pkg/httpx"
	"github.com/fractalglobal/fgc/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const testIssuer = "fractal-test"

type tokenMinter struct {
	signer   *jwtx.EdDSASigner
	verifier jwtx.Verifier
}

func newMinter(t *testing.T) *tokenMinter {
	t.Helper()

	_, key, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	signer, err := jwtx.NewSignerEdDSA("k1", key)
	require.NoError(t, err)

	keys := jwtx.NewKeySet()
	require.NoError(t, keys.AddSigner(signer))

	return &tokenMinter{signer: signer, verifier: jwtx.NewVerifierEdDSA(keys, testIssuer, 0)}
}

func (m *tokenMinter) mint(t *testing.T, ttl time.Duration, scopes ...string) string {
	t.Helper()

	tok, err := m.signer.Sign(jwtx.NewAccessClaims("app-1", "app-1", scopes, ttl, testIssuer, time.Now()))
	require.NoError(t, err)
	return tok
}

func TestAuthnAndPolicies(t *testing.T) {
	t.Parallel()

	m := newMinter(t)

	mux := http.NewServeMux()
	mux.Handle("GET /user/{id}", httpx.Chain(okHandler,
		httpx.AuthnMiddleware(m.verifier),
		httpx.Require(httpx.AnyOf(httpx.HasScope("admin"), httpx.PathUser("id"))),
	))
	mux.Handle("GET /friends", httpx.Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if httpx.AppIDFromContext(r.Context()) != "app-1" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}),
		httpx.AuthnMiddleware(m.verifier),
		httpx.Require(httpx.AnyUser()),
	))
	mux.Handle("GET /admin", httpx.Chain(okHandler,
		httpx.AuthnMiddleware(m.verifier),
		httpx.RequireAnyScope("admin"),
	))

	tests := []struct {
		name   string
		path   string
		token  string
		status int
	}{
		{"no token", "/admin", "", http.StatusUnauthorized},
		{"garbage token", "/admin", "garbage", http.StatusUnauthorized},
		{"expired token", "/admin", m.mint(t, -time.Minute, "admin"), http.StatusUnauthorized},
		{"admin scope", "/admin", m.mint(t, time.Minute, "admin"), http.StatusOK},
		{"public scope on admin route", "/admin", m.mint(t, time.Minute, "public"), http.StatusUnauthorized},
		{"own user", "/user/7", m.mint(t, time.Minute, "user:7"), http.StatusOK},
		{"other user", "/user/8", m.mint(t, time.Minute, "user:7"), http.StatusUnauthorized},
		{"admin reads any user", "/user/8", m.mint(t, time.Minute, "admin"), http.StatusOK},
		{"non numeric id", "/user/x", m.mint(t, time.Minute, "user:7"), http.StatusUnauthorized},
		{"any user", "/friends", m.mint(t, time.Minute, "user:3"), http.StatusOK},
		{"developer is not a user", "/friends", m.mint(t, time.Minute, "developer"), http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := serve(mux, req)
			require.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusUnauthorized {
				require.Contains(t, rec.Body.String(), `"message"`)
				require.NotEmpty(t, rec.Header().Get("WWW-Authenticate"))
			}
		})
	}
}

func TestChainOrder(t *testing.T) {
	t.Parallel()

	var order []string
	mark := func(name string) httpx.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	serve(httpx.Chain(okHandler, mark("outer"), mark("inner")), requestFrom("127.0.0.1"))
	require.Equal(t, []string{"outer", "inner"}, order)
}

func TestRecover(t *testing.T) {
	t.Parallel()

	h := httpx.Recover()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := serve(h, requestFrom("127.0.0.1"))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"message":"internal server error"}`, rec.Body.String())
}
