package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/fractalglobal/fgc/internal/devserver/service"
	"github.com/fractalglobal/fgc/pkg/fractalsdk"
	"github.com/fractalglobal/fgc/pkg/httpx"
)

// UserHandler serves user records, profile updates and the authenticator.
type UserHandler struct {
	AccountService *service.AccountService
}

// GetUser godoc
//
//	@Summary	Get user
//	@Tags		Users
//	@Produce	json
//	@Param		id	path		int	true	"user id"
//	@Success	200	{object}	fractalsdk.UserDTO
//	@Failure	401	{object}	fractalsdk.ResponseDTO	"admin or the user's own token required"
//	@Failure	404	{object}	fractalsdk.ResponseDTO
//	@Security	BearerAuth
//	@Router		/v1/user/{id} [get].
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	u, err := h.AccountService.GetUser(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, userDTO(u))
}

// DeleteUser godoc
//
//	@Summary	Delete user
//	@Tags		Users
//	@Produce	json
//	@Param		id	path		int	true	"user id"
//	@Success	200	{object}	fractalsdk.ResponseDTO
//	@Failure	404	{object}	fractalsdk.ResponseDTO
//	@Security	BearerAuth
//	@Router		/v1/user/{id} [delete].
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.AccountService.DeleteUser(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeOK(w)
}

// AllUsers godoc
//
//	@Summary	List users
//	@Tags		Users
//	@Produce	json
//	@Success	200	{array}	fractalsdk.UserDTO
//	@Security	BearerAuth
//	@Router		/v1/all_users [get].
func (h *UserHandler) AllUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.AccountService.ListUsers(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, userDTOs(users))
}

// RandomSearch godoc
//
//	@Summary	Random user profiles
//	@Tags		Users
//	@Produce	json
//	@Param		count	path	int	true	"number of profiles, at most 50"
//	@Success	200		{array}	fractalsdk.ProfileDTO
//	@Security	BearerAuth
//	@Router		/v1/search_user/random/{count} [get].
func (h *UserHandler) RandomSearch(w http.ResponseWriter, r *http.Request) {
	count, err := strconv.ParseUint(r.PathValue("count"), 10, 32)
	if err != nil {
		fractalsdk.NewAPIError(http.StatusBadRequest, "invalid count").WriteError(w)
		return
	}

	self, _ := caller(r)
	users, err := h.AccountService.RandomProfiles(r.Context(), self, int(count))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, profileDTOs(users))
}

// Authenticator godoc
//
//	@Summary		Generate authenticator
//	@Description	Provisions a TOTP secret; the message is the otpauth URL to load into an authenticator app.
//	@Tags			Users
//	@Produce		json
//	@Param			id	path		int	true	"user id"
//	@Success		200	{object}	fractalsdk.ResponseDTO
//	@Security		BearerAuth
//	@Router			/v1/authenticator/{id} [get].
func (h *UserHandler) Authenticator(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	url, err := h.AccountService.GenerateAuthenticator(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, fractalsdk.ResponseDTO{Message: url})
}

// Authenticate godoc
//
//	@Summary		Check authenticator code
//	@Description	The timestamp must be within five minutes of server time.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int								true	"user id"
//	@Param			body	body		fractalsdk.AuthenticationCodeDTO	true	"code"
//	@Success		200		{object}	fractalsdk.ResponseDTO
//	@Failure		202		{object}	fractalsdk.ResponseDTO	"wrong code"
//	@Security		BearerAuth
//	@Router			/v1/authenticate/{id} [post].
func (h *UserHandler) Authenticate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req fractalsdk.AuthenticationCodeDTO
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.AccountService.Authenticate(r.Context(), id, req.Code, req.Timestamp); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeOK(w)
}

// UpdateUser godoc
//
//	@Summary		Update user
//	@Description	Partial update; null fields are left unchanged. Password changes require the user's own token and the old password.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"user id"
//	@Param			body	body		fractalsdk.UpdateUserDTO	true	"changes"
//	@Success		200		{object}	fractalsdk.ResponseDTO
//	@Failure		202		{object}	fractalsdk.ResponseDTO	"validation failure"
//	@Security		BearerAuth
//	@Router			/v1/update_user/{id} [post].
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req fractalsdk.UpdateUserDTO
	if !decodeBody(w, r, &req) {
		return
	}

	upd := service.UserUpdate{
		Username:    req.NewUsername,
		Email:       req.NewEmail,
		First:       req.NewFirst,
		Last:        req.NewLast,
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
		Phone:       req.NewPhone,
		Image:       req.NewImage,
		Address:     addressFromDTO(req.NewAddress),
	}
	if req.NewBirthday != nil {
		b, err := time.Parse(fractalsdk.BirthdayLayout, *req.NewBirthday)
		if err != nil {
			fractalsdk.NewAPIError(http.StatusBadRequest, "invalid birthday").WriteError(w)
			return
		}
		upd.Birthday = &b
	}

	self, _ := caller(r)
	if err := h.AccountService.UpdateUser(r.Context(), id, self == id, upd); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeOK(w)
}

// SetEmailConfirmed godoc
//
//	@Summary	Mark email confirmed or unconfirmed
//	@Tags		Users
//	@Produce	json
//	@Param		id	path		int	true	"user id"
//	@Success	200	{object}	fractalsdk.ResponseDTO
//	@Failure	404	{object}	fractalsdk.ResponseDTO
//	@Security	BearerAuth
//	@Router		/v1/confirm_user_email/{id} [post]
//	@Router		/v1/unconfirm_user_email/{id} [post].
func (h *UserHandler) SetEmailConfirmed(confirmed bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}
		if err := h.AccountService.SetEmailConfirmed(r.Context(), id, confirmed); err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeOK(w)
	}
}
