package slogx_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fractalglobal/fgc/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"chatty":  slog.LevelInfo,
	}
	for in, want := range tests {
		require.Equal(t, want, slogx.ParseLevel(in), in)
	}
}

func TestHTTPMiddleware(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	h := slogx.HTTPMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		slogx.FromContext(r.Context()).Info("inside")
		w.WriteHeader(http.StatusTeapot)
	}))

	t.Run("propagates caller request id", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, "/v1/friends/1", nil)
		req.Header.Set(slogx.RequestIDHeader, "01HZZZZZZZZZZZZZZZZZZZZZZZ")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, "01HZZZZZZZZZZZZZZZZZZZZZZZ", rec.Header().Get(slogx.RequestIDHeader))

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 2)

		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(lines[1]), &entry))
		require.Equal(t, "http_request", entry["msg"])
		require.Equal(t, "01HZZZZZZZZZZZZZZZZZZZZZZZ", entry["req_id"])
		require.Equal(t, float64(http.StatusTeapot), entry["status"])
	})

	t.Run("generates request id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Len(t, rec.Header().Get(slogx.RequestIDHeader), 26)
	})

	t.Run("client errors log at warn", func(t *testing.T) {
		buf.Reset()
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &entry))
		require.Equal(t, "WARN", entry["level"])
	})
}

func TestWith(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx := slogx.WithContext(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))
	require.Equal(t, ctx, slogx.With(ctx))

	slogx.FromContext(slogx.With(ctx, "app_id", "app-1")).Info("tagged")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "app-1", entry["app_id"])
}

type stubRoundTripper func(*http.Request) (*http.Response, error)

func (f stubRoundTripper) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func TestTransport(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	status := http.StatusOK
	var fail error
	tr := slogx.NewTransport(logger, stubRoundTripper(func(r *http.Request) (*http.Response, error) {
		if fail != nil {
			return nil, fail
		}
		return &http.Response{StatusCode: status, Body: http.NoBody, Request: r}, nil
	}))

	req := httptest.NewRequest(http.MethodGet, "https://api.example/v1/user/1", nil)
	req.Header.Set("Authorization", "Bearer very-secret")

	resp, err := tr.RoundTrip(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, buf.String(), "http_client_response")
	require.NotContains(t, buf.String(), "very-secret")

	fail = errors.New("connection reset")
	_, err = tr.RoundTrip(req)
	require.ErrorIs(t, err, fail)
	require.Contains(t, buf.String(), "connection reset")
}
