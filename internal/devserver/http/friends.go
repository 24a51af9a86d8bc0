package http

import (
	"net/http"

	"github.com/fractalglobal/fgc/internal/devserver/service"
	"github.com/fractalglobal/fgc/pkg/fractalsdk"
	"github.com/fractalglobal/fgc/pkg/httpx"
)

// FriendHandler serves friend requests and friend lists.
type FriendHandler struct {
	FriendService *service.FriendService
}

// Create godoc
//
//	@Summary		Send friend request
//	@Description	The origin must be the user the token belongs to.
//	@Tags			Friends
//	@Accept			json
//	@Produce		json
//	@Param			body	body		fractalsdk.FriendRequestDTO	true	"request"
//	@Success		200		{object}	fractalsdk.ResponseDTO
//	@Failure		202		{object}	fractalsdk.ResponseDTO	"already friends or pending"
//	@Security		BearerAuth
//	@Router			/v1/create_friend_request [post].
func (h *FriendHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req fractalsdk.FriendRequestDTO
	if !decodeBody(w, r, &req) {
		return
	}
	if self, _ := caller(r); self != req.OriginID {
		writeForbidden(w, "origin does not match token")
		return
	}

	_, err := h.FriendService.SendRequest(r.Context(), req.OriginID, req.DestinationID,
		string(req.Relationship), req.Message)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeOK(w)
}

// Answer godoc
//
//	@Summary		Confirm or reject friend request
//	@Description	The destination must be the user the token belongs to.
//	@Tags			Friends
//	@Accept			json
//	@Produce		json
//	@Param			body	body		fractalsdk.ConfirmFriendRequestDTO	true	"request"
//	@Success		200		{object}	fractalsdk.ResponseDTO
//	@Failure		404		{object}	fractalsdk.ResponseDTO
//	@Security		BearerAuth
//	@Router			/v1/confirm_friend_request [post]
//	@Router			/v1/reject_friend_request [post].
func (h *FriendHandler) Answer(accept bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req fractalsdk.ConfirmFriendRequestDTO
		if !decodeBody(w, r, &req) {
			return
		}
		if self, _ := caller(r); self != req.Destination {
			writeForbidden(w, "destination does not match token")
			return
		}

		if err := h.FriendService.Answer(r.Context(), req.ID, req.Origin, req.Destination, accept); err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeOK(w)
	}
}

// Unfriend godoc
//
//	@Summary	Remove friend
//	@Tags		Friends
//	@Produce	json
//	@Param		id	path		int	true	"friend user id"
//	@Success	200	{object}	fractalsdk.ResponseDTO
//	@Failure	404	{object}	fractalsdk.ResponseDTO
//	@Security	BearerAuth
//	@Router		/v1/friend/{id} [delete].
func (h *FriendHandler) Unfriend(w http.ResponseWriter, r *http.Request) {
	friend, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	self, _ := caller(r)
	if err := h.FriendService.Unfriend(r.Context(), self, friend); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeOK(w)
}

// Pending godoc
//
//	@Summary	Pending friend requests
//	@Tags		Friends
//	@Produce	json
//	@Param		id	path	int	true	"user id"
//	@Success	200	{array}	fractalsdk.PendingFriendRequestDTO
//	@Security	BearerAuth
//	@Router		/v1/friend_requests/{id} [get].
func (h *FriendHandler) Pending(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	reqs, err := h.FriendService.Pending(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, pendingDTOs(reqs))
}

// Friends godoc
//
//	@Summary	List friends
//	@Tags		Friends
//	@Produce	json
//	@Param		id	path	int	true	"user id"
//	@Success	200	{array}	fractalsdk.ProfileDTO
//	@Security	BearerAuth
//	@Router		/v1/friends/{id} [get].
func (h *FriendHandler) Friends(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	users, err := h.FriendService.Friends(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, profileDTOs(users))
}
