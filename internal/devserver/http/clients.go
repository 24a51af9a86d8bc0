package http

import (
	"net/http"

	"github.com/fractalglobal/fgc/internal/devserver/service"
	"github.com/fractalglobal/fgc/pkg/fractalsdk"
	"github.com/fractalglobal/fgc/pkg/httpx"
)

// ClientsHandler serves POST /v1/create_client.
type ClientsHandler struct {
	ClientService *service.ClientService
}

// ServeHTTP godoc
//
//	@Summary		Create Client
//	@Description	Registers a new application. The secret is only returned once.
//	@Tags			Clients
//	@Accept			json
//	@Produce		json
//	@Param			body	body		fractalsdk.CreateClientDTO	true	"client"
//	@Success		200		{object}	fractalsdk.ClientInfoDTO	"created client"
//	@Failure		202		{object}	fractalsdk.ResponseDTO		"invalid scopes"
//	@Failure		401		{object}	fractalsdk.ResponseDTO		"admin token required"
//	@Security		BearerAuth
//	@Router			/v1/create_client [post].
func (h *ClientsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req fractalsdk.CreateClientDTO
	if !decodeBody(w, r, &req) {
		return
	}

	created, err := h.ClientService.CreateClient(r.Context(), req.Name, req.Scopes, req.RequestLimit)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, fractalsdk.ClientInfoDTO{
		ID:           created.Client.ID,
		Name:         created.Client.Name,
		Secret:       created.Secret,
		Scopes:       created.Client.Scopes,
		RequestLimit: created.Client.RequestLimit,
	})
}
