package fractalsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/oklog/ulid/v2"
)

const (
	apiVersion   = "v1/"
	acceptHeader = "application/json; charset=utf-8"

	// maxAttempts is the first send plus one retry on transport failure.
	maxAttempts = 2
)

// request is one logical exchange. The body is held as bytes so that the
// retry can resend it unchanged.
type request struct {
	method      string
	path        string
	header      http.Header
	body        []byte
	contentType string
}

// url builds a complete URL for an endpoint path.
func (c *Client) url(path string) string {
	return c.baseURL + apiVersion + path
}

func (c *Client) newRequest(ctx context.Context, r request, requestID string) (*http.Request, error) {
	var body io.Reader
	if r.body != nil {
		body = bytes.NewReader(r.body)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, c.url(r.path), body)
	if err != nil {
		return nil, err
	}

	for key, values := range r.header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("X-Request-ID", requestID)
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}

	return req, nil
}

// do sends the request, resending it once if the transport fails. HTTP
// error statuses are not transport failures and are never retried.
func (c *Client) do(ctx context.Context, r request) (*http.Response, int, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, 0, fmt.Errorf("fractal: rate limit wait: %w", err)
		}
	}

	// Both attempts share an id so the server can tell a resend apart.
	requestID := ulid.Make().String()

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		req, err := c.newRequest(ctx, r, requestID)
		if err != nil {
			return nil, attempt, fmt.Errorf("failed to create request: %w", err)
		}

		resp, err := c.httpClient.Do(req)
		if err == nil {
			return resp, attempt, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			return nil, attempt, &TransportError{Attempts: attempt, Err: err}
		}
	}

	return nil, maxAttempts, &TransportError{Attempts: maxAttempts, Err: lastErr}
}

// send performs the exchange and classifies the response. On 200 it returns
// the raw body for the endpoint to decode; otherwise an *APIError or a
// *DecodeError if the error body is not a ResponseDTO.
func (c *Client) send(ctx context.Context, r request) ([]byte, error) {
	resp, attempts, err := c.do(ctx, r)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	// Read body once for both error parsing and success decoding
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{
			Attempts: attempts,
			Err:      fmt.Errorf("failed to read response body: %w", err),
		}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, parseErrorResponse(resp.StatusCode, body)
	}

	return body, nil
}

// parseErrorResponse decodes a non-200 body into a classified APIError.
func parseErrorResponse(status int, body []byte) error {
	var dto ResponseDTO
	if err := json.Unmarshal(body, &dto); err != nil {
		return &DecodeError{StatusCode: status, Err: err}
	}
	return NewAPIError(status, dto.Message)
}

// doAuthRequest checks op's policy against the token, sends in as JSON with
// the token's bearer header and decodes the 200 body into out. A nil out
// discards the body; a nil in sends no body.
func (c *Client) doAuthRequest(
	ctx context.Context,
	t *AccessToken,
	op string,
	allowed policy,
	method, path string,
	in, out any,
) error {
	if err := authorize(op, t, allowed); err != nil {
		return err
	}

	r := request{
		method: method,
		path:   path,
		header: http.Header{},
	}
	r.header.Set("Authorization", t.authorization())

	if in != nil {
		body, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		r.body = body
		r.contentType = "application/json"
	}

	body, err := c.send(ctx, r)
	if err != nil {
		return err
	}

	return decodeJSON(body, out)
}

// decodeJSON decodes a successful response body into target.
func decodeJSON(body []byte, target any) error {
	if target == nil {
		return nil
	}
	if err := json.Unmarshal(body, target); err != nil {
		return &DecodeError{StatusCode: http.StatusOK, Err: err}
	}
	return nil
}
