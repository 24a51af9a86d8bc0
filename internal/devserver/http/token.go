package http

import (
	"net/http"
	"strings"

	"github.com/fractalglobal/fgc/internal/devserver/service"
	"github.com/fractalglobal/fgc/pkg/fractalsdk"
	"github.com/fractalglobal/fgc/pkg/httpx"
)

// TokenHandler serves POST /v1/token.
type TokenHandler struct {
	TokenService *service.TokenService
}

// ServeHTTP godoc
//
//	@Summary		Client Token
//	@Description	Issues an application token using the client_credentials grant. The client authenticates with HTTP Basic (app id and secret).
//	@Tags			Auth
//	@Accept			application/x-www-form-urlencoded
//	@Produce		json
//	@Param			grant_type	formData	string						true	"Grant type"	Enums(client_credentials)
//	@Success		200			{object}	fractalsdk.AccessTokenDTO	"app token"
//	@Failure		400			{object}	fractalsdk.ResponseDTO		"message"
//	@Failure		401			{object}	fractalsdk.ResponseDTO		"message"
//	@Router			/v1/token [post].
func (h *TokenHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if ct := r.Header.Get("Content-Type"); ct != "" &&
		!strings.HasPrefix(ct, "application/x-www-form-urlencoded") {
		fractalsdk.NewAPIError(http.StatusBadRequest, "unsupported content type").WriteError(w)
		return
	}
	if err := r.ParseForm(); err != nil {
		fractalsdk.NewAPIError(http.StatusBadRequest, "invalid form body").WriteError(w)
		return
	}
	if r.PostForm.Get("grant_type") != "client_credentials" {
		fractalsdk.NewAPIError(http.StatusBadRequest, "unsupported grant type").WriteError(w)
		return
	}

	appID, secret, ok := r.BasicAuth()
	if !ok {
		writeServiceError(w, r, service.ErrInvalidClient)
		return
	}

	tok, err := h.TokenService.ClientCredentials(r.Context(), appID, secret)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, accessTokenDTO(tok))
}

// LoginHandler serves POST /v1/login.
type LoginHandler struct {
	TokenService *service.TokenService
}

// ServeHTTP godoc
//
//	@Summary		Login
//	@Description	Exchanges a user's email and password for a user token, on behalf of the calling application.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		fractalsdk.LoginDTO			true	"credentials"
//	@Success		200		{object}	fractalsdk.AccessTokenDTO	"user token"
//	@Failure		202		{object}	fractalsdk.ResponseDTO		"invalid credentials"
//	@Security		BearerAuth
//	@Router			/v1/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req fractalsdk.LoginDTO
	if !decodeBody(w, r, &req) {
		return
	}

	appID := httpx.AppIDFromContext(r.Context())
	tok, err := h.TokenService.Login(r.Context(), appID, req.UserEmail, req.Password, req.RememberMe)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, accessTokenDTO(tok))
}

func accessTokenDTO(tok *service.IssuedToken) fractalsdk.AccessTokenDTO {
	return fractalsdk.AccessTokenDTO{
		AppID:       tok.AppID,
		Scopes:      tok.Scopes,
		AccessToken: tok.AccessToken,
		TokenType:   "Bearer",
		Expiration:  tok.ExpiresIn,
	}
}
