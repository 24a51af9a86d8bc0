package slogx

import (
	"log/slog"
	"net/http"
	"time"
)

// Transport is an http.RoundTripper that logs every outbound request at
// debug level. Authorization headers are never logged.
type Transport struct {
	Base   http.RoundTripper
	Logger *slog.Logger
}

// NewTransport wraps base (http.DefaultTransport when nil).
func NewTransport(logger *slog.Logger, base http.RoundTripper) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &Transport{Base: base, Logger: logger}
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	log := t.Logger.With(
		"req_id", req.Header.Get(RequestIDHeader),
		"method", req.Method,
		"url", req.URL.Redacted(),
	)

	resp, err := t.Base.RoundTrip(req)
	if err != nil {
		log.DebugContext(req.Context(), "http_client_error",
			"err", err,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return nil, err
	}

	log.DebugContext(req.Context(), "http_client_response",
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return resp, nil
}
