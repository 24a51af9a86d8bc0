package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/fractalglobal/fgc/internal/devserver/service"
	"github.com/fractalglobal/fgc/pkg/fractalsdk"
	"github.com/fractalglobal/fgc/pkg/httpx"
	"github.com/fractalglobal/fgc/pkg/slogx"
)

var (
	errMalformedBody = fractalsdk.NewAPIError(http.StatusBadRequest, "malformed request body")
	errInternal      = fractalsdk.NewAPIError(http.StatusInternalServerError, "internal server error")
)

// writeServiceError maps service errors onto the Fractal status scheme:
// missing resources are 404, bad client credentials 401, business rule
// violations 202 with the violation as message, and everything else 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		fractalsdk.NewAPIError(http.StatusNotFound, "not found").WriteError(w)
	case errors.Is(err, service.ErrInvalidClient):
		w.Header().Set("WWW-Authenticate", `Basic realm="fractal"`)
		fractalsdk.NewAPIError(http.StatusUnauthorized, err.Error()).WriteError(w)
	case errors.Is(err, service.ErrRejected):
		fractalsdk.NewAPIError(http.StatusAccepted, err.Error()).WriteError(w)
	default:
		slogx.FromContext(r.Context()).Error("request failed", slog.Any("error", err))
		errInternal.WriteError(w)
	}
}

func writeOK(w http.ResponseWriter) {
	httpx.WriteJSON(w, http.StatusOK, fractalsdk.ResponseDTO{Message: "ok"})
}

// decodeBody decodes the JSON body into v, answering 400 on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := httpx.DecodeJSON(r, v); err != nil {
		slogx.FromContext(r.Context()).Debug("malformed body", slog.Any("error", err))
		errMalformedBody.WriteError(w)
		return false
	}
	return true
}

// pathID parses the named path value as an id, answering 400 on failure.
func pathID(w http.ResponseWriter, r *http.Request, name string) (uint64, bool) {
	id, err := strconv.ParseUint(r.PathValue(name), 10, 64)
	if err != nil {
		fractalsdk.NewAPIError(http.StatusBadRequest, "invalid "+name).WriteError(w)
		return 0, false
	}
	return id, true
}

// caller returns the user the bearer token belongs to, if any.
func caller(r *http.Request) (uint64, bool) {
	c, ok := httpx.ClaimsFromContext(r.Context())
	if !ok {
		return 0, false
	}
	for _, raw := range c.Scopes {
		if sc, err := fractalsdk.ParseScope(raw); err == nil {
			if id, ok := sc.UserID(); ok {
				return id, true
			}
		}
	}
	return 0, false
}

func isAdmin(r *http.Request) bool {
	c, ok := httpx.ClaimsFromContext(r.Context())
	return ok && c.HasScope(fractalsdk.AdminScope.String())
}

// writeForbidden answers requests whose token is valid for the route but
// not for the resource named in the body.
func writeForbidden(w http.ResponseWriter, msg string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="insufficient_scope"`)
	fractalsdk.NewAPIError(http.StatusUnauthorized, msg).WriteError(w)
}
