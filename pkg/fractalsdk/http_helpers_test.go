package fractalsdk

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// roundTripFunc adapts a function to http.RoundTripper.
type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

// countingTransport fails the first failures calls, then answers with
// status and body. It records every request it sees.
type countingTransport struct {
	calls    atomic.Int32
	failures int32
	status   int
	body     string
	requests []*http.Request
}

func (c *countingTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	n := c.calls.Add(1)
	c.requests = append(c.requests, r)
	if n <= c.failures {
		return nil, errors.New("connection reset by peer")
	}
	return &http.Response{
		StatusCode: c.status,
		Body:       io.NopCloser(strings.NewReader(c.body)),
		Header:     make(http.Header),
		Request:    r,
	}, nil
}

func TestSendRetriesOnceOnTransportFailure(t *testing.T) {
	t.Parallel()

	t.Run("fail then succeed", func(t *testing.T) {
		rt := &countingTransport{failures: 1, status: http.StatusOK, body: `{"message":"ok"}`}
		client := NewClientWithURL("http://fractal.test", WithTransport(rt))
		tok := newTestToken(t, time.Now().Add(time.Hour), AdminScope)

		err := client.DeleteUser(context.Background(), tok, 4)
		require.NoError(t, err)
		require.Equal(t, int32(2), rt.calls.Load())

		// Both attempts are the same logical request
		require.Equal(t,
			rt.requests[0].Header.Get("X-Request-ID"),
			rt.requests[1].Header.Get("X-Request-ID"))
	})

	t.Run("two failures surface as transport error", func(t *testing.T) {
		rt := &countingTransport{failures: 5, status: http.StatusOK, body: `{}`}
		client := NewClientWithURL("http://fractal.test", WithTransport(rt))
		tok := newTestToken(t, time.Now().Add(time.Hour), AdminScope)

		err := client.DeleteUser(context.Background(), tok, 4)

		var transportErr *TransportError
		require.ErrorAs(t, err, &transportErr)
		require.Equal(t, 2, transportErr.Attempts)
		require.Equal(t, int32(2), rt.calls.Load())
	})

	t.Run("body is resent on retry", func(t *testing.T) {
		var bodies []string
		var calls int
		rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
			calls++
			b, _ := io.ReadAll(r.Body)
			bodies = append(bodies, string(b))
			if calls == 1 {
				return nil, errors.New("broken pipe")
			}
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(strings.NewReader(`{"message":"ok"}`)),
				Header:     make(http.Header),
			}, nil
		})
		client := NewClientWithURL("http://fractal.test", WithTransport(rt))
		tok := newTestToken(t, time.Now().Add(time.Hour), UserScope(1))

		require.NoError(t, client.SetUsername(context.Background(), tok, 1, "neo"))
		require.Len(t, bodies, 2)
		require.Equal(t, bodies[0], bodies[1])
		require.Contains(t, bodies[0], `"new_username":"neo"`)
	})

	t.Run("error statuses are not retried", func(t *testing.T) {
		rt := &countingTransport{status: http.StatusInternalServerError, body: `{"message":"boom"}`}
		client := NewClientWithURL("http://fractal.test", WithTransport(rt))
		tok := newTestToken(t, time.Now().Add(time.Hour), AdminScope)

		err := client.DeleteUser(context.Background(), tok, 4)
		require.ErrorIs(t, err, ErrServerError)
		require.Equal(t, int32(1), rt.calls.Load())
	})
}

func TestSendClassifiesStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status int
		want   *APIError
	}{
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusAccepted, ErrClientError},
		{http.StatusForbidden, ErrServerError},
		{http.StatusInternalServerError, ErrServerError},
		{http.StatusServiceUnavailable, ErrServerError},
		{http.StatusCreated, ErrServerError},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("status %d", tt.status), func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"message":"X marks the spot"}`))
			}))
			defer srv.Close()

			client := NewClientWithURL(srv.URL)
			tok := newTestToken(t, time.Now().Add(time.Hour), AdminScope)

			_, err := client.GetUser(context.Background(), tok, 1)
			require.ErrorIs(t, err, tt.want)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			require.Equal(t, "X marks the spot", apiErr.Message)
			require.Equal(t, tt.status, apiErr.StatusCode)
		})
	}
}

func TestSendDecodeErrors(t *testing.T) {
	t.Parallel()

	t.Run("error body that is not json", func(t *testing.T) {
		rt := &countingTransport{status: http.StatusNotFound, body: "<html>not found</html>"}
		client := NewClientWithURL("http://fractal.test", WithTransport(rt))
		tok := newTestToken(t, time.Now().Add(time.Hour), AdminScope)

		_, err := client.GetUser(context.Background(), tok, 1)

		var decodeErr *DecodeError
		require.ErrorAs(t, err, &decodeErr)
		require.Equal(t, http.StatusNotFound, decodeErr.StatusCode)
	})

	t.Run("empty error body", func(t *testing.T) {
		rt := &countingTransport{status: http.StatusBadRequest, body: ""}
		client := NewClientWithURL("http://fractal.test", WithTransport(rt))
		tok := newTestToken(t, time.Now().Add(time.Hour), AdminScope)

		_, err := client.GetUser(context.Background(), tok, 1)
		var decodeErr *DecodeError
		require.ErrorAs(t, err, &decodeErr)
	})

	t.Run("success body of the wrong shape", func(t *testing.T) {
		rt := &countingTransport{status: http.StatusOK, body: `{"id":"not-a-number"}`}
		client := NewClientWithURL("http://fractal.test", WithTransport(rt))
		tok := newTestToken(t, time.Now().Add(time.Hour), AdminScope)

		_, err := client.GetUser(context.Background(), tok, 1)
		var decodeErr *DecodeError
		require.ErrorAs(t, err, &decodeErr)
		require.Equal(t, http.StatusOK, decodeErr.StatusCode)
	})
}

func TestSendHeaders(t *testing.T) {
	t.Parallel()

	seen := make(chan *http.Request, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen <- r
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewClientWithURL(srv.URL+"/", WithUserAgent("fractal-test"))
	tok := newTestToken(t, time.Now().Add(time.Hour), AdminScope)

	users, err := client.GetAllUsers(context.Background(), tok)
	require.NoError(t, err)
	require.Empty(t, users)

	got := <-seen
	require.Equal(t, http.MethodGet, got.Method)
	require.Equal(t, "/v1/all_users", got.URL.Path)
	require.Equal(t, "application/json; charset=utf-8", got.Header.Get("Accept"))
	require.Equal(t, "Bearer opaque-token", got.Header.Get("Authorization"))
	require.Equal(t, "fractal-test", got.Header.Get("User-Agent"))
	require.NotEmpty(t, got.Header.Get("X-Request-ID"))
}

func TestLocalAuthorizationSendsNothing(t *testing.T) {
	t.Parallel()

	rt := &countingTransport{status: http.StatusOK, body: `{}`}
	client := NewClientWithURL("http://fractal.test", WithTransport(rt))
	ctx := context.Background()
	later := time.Now().Add(time.Hour)

	userTok := newTestToken(t, later, UserScope(1))
	publicTok := newTestToken(t, later, PublicScope)
	expiredAdmin := newTestToken(t, time.Now().Add(-time.Second), AdminScope)

	_, err := client.GetAllUsers(ctx, userTok)
	require.ErrorIs(t, err, ErrForbiddenScope)

	_, err = client.GetUser(ctx, userTok, 2)
	require.ErrorIs(t, err, ErrForbiddenScope)

	_, err = client.GetMe(ctx, publicTok)
	require.ErrorIs(t, err, ErrForbiddenScope)

	err = client.Register(ctx, userTok, "a", "b", "c@d.e")
	require.ErrorIs(t, err, ErrForbiddenScope)

	err = client.SetPassword(ctx, newTestToken(t, later, AdminScope), 1, "old", "new")
	require.ErrorIs(t, err, ErrForbiddenScope)

	err = client.NewTransaction(ctx, publicTok, "fg1aaaaaaaaaaaaaaaaaaaa", 2, Credits(1))
	require.ErrorIs(t, err, ErrForbiddenScope)

	err = client.DeleteUser(ctx, expiredAdmin, 1)
	require.ErrorIs(t, err, ErrTokenExpired)

	// Authenticator calls are limited to the account's own user scope.
	_, err = client.GenerateAuthenticatorCode(ctx, userTok, 2)
	require.ErrorIs(t, err, ErrForbiddenScope)

	err = client.Authenticate(ctx, newTestToken(t, later, AdminScope), 1, 123456)
	require.ErrorIs(t, err, ErrForbiddenScope)

	require.Equal(t, int32(0), rt.calls.Load())
}

func TestRateLimitHonoursContext(t *testing.T) {
	t.Parallel()

	rt := &countingTransport{status: http.StatusOK, body: `{"message":"ok"}`}
	client := NewClientWithURL("http://fractal.test", WithTransport(rt), WithRateLimit(1))
	tok := newTestToken(t, time.Now().Add(time.Hour), AdminScope)

	// The first request takes the only token in the bucket
	require.NoError(t, client.DeleteUser(context.Background(), tok, 1))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := client.DeleteUser(ctx, tok, 2)
	require.Error(t, err)
	require.Equal(t, int32(1), rt.calls.Load())
}
