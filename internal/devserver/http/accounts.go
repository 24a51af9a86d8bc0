package http

import (
	"net/http"

	"github.com/fractalglobal/fgc/internal/devserver/service"
	"github.com/fractalglobal/fgc/pkg/fractalsdk"
)

// AccountHandler serves the account lifecycle endpoints: registration,
// email confirmation, password reset and newsletter subscription.
type AccountHandler struct {
	AccountService *service.AccountService
}

// Register godoc
//
//	@Summary	Register
//	@Tags		Accounts
//	@Accept		json
//	@Produce	json
//	@Param		body	body		fractalsdk.RegisterDTO	true	"new account"
//	@Success	200		{object}	fractalsdk.ResponseDTO
//	@Failure	202		{object}	fractalsdk.ResponseDTO	"validation failure"
//	@Security	BearerAuth
//	@Router		/v1/register [post].
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req fractalsdk.RegisterDTO
	if !decodeBody(w, r, &req) {
		return
	}
	if _, err := h.AccountService.Register(r.Context(), req.Username, req.Password, req.Email); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeOK(w)
}

// ResendConfirmation godoc
//
//	@Summary	Resend email confirmation
//	@Tags		Accounts
//	@Produce	json
//	@Success	200	{object}	fractalsdk.ResponseDTO
//	@Security	BearerAuth
//	@Router		/v1/resend_email_confirmation [get].
func (h *AccountHandler) ResendConfirmation(w http.ResponseWriter, r *http.Request) {
	id, _ := caller(r)
	if err := h.AccountService.ResendConfirmation(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeOK(w)
}

// ConfirmEmail godoc
//
//	@Summary	Confirm email
//	@Tags		Accounts
//	@Produce	json
//	@Param		key	path		string	true	"key from the confirmation email"
//	@Success	200	{object}	fractalsdk.ResponseDTO
//	@Failure	202	{object}	fractalsdk.ResponseDTO	"invalid or expired key"
//	@Security	BearerAuth
//	@Router		/v1/confirm_email/{key} [post].
func (h *AccountHandler) ConfirmEmail(w http.ResponseWriter, r *http.Request) {
	if err := h.AccountService.ConfirmEmail(r.Context(), r.PathValue("key")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeOK(w)
}

// StartResetPassword godoc
//
//	@Summary	Start password reset
//	@Tags		Accounts
//	@Accept		json
//	@Produce	json
//	@Param		body	body		fractalsdk.ResetPasswordDTO	true	"account to reset"
//	@Success	200		{object}	fractalsdk.ResponseDTO
//	@Failure	404		{object}	fractalsdk.ResponseDTO	"username and email do not match"
//	@Security	BearerAuth
//	@Router		/v1/start_reset_password [post].
func (h *AccountHandler) StartResetPassword(w http.ResponseWriter, r *http.Request) {
	var req fractalsdk.ResetPasswordDTO
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.AccountService.StartResetPassword(r.Context(), req.Username, req.Email); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeOK(w)
}

// ResetPassword godoc
//
//	@Summary	Reset password
//	@Tags		Accounts
//	@Accept		json
//	@Produce	json
//	@Param		key		path		string						true	"reset key"
//	@Param		body	body		fractalsdk.NewPasswordDTO	true	"new password"
//	@Success	200		{object}	fractalsdk.ResponseDTO
//	@Failure	202		{object}	fractalsdk.ResponseDTO	"invalid or expired key"
//	@Security	BearerAuth
//	@Router		/v1/reset_password/{key} [post].
func (h *AccountHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req fractalsdk.NewPasswordDTO
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.AccountService.ResetPassword(r.Context(), r.PathValue("key"), req.NewPassword); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeOK(w)
}

// Subscribe godoc
//
//	@Summary	Subscribe to the mailing list
//	@Tags		Accounts
//	@Accept		json
//	@Produce	json
//	@Param		body	body		fractalsdk.SubscribeDTO	true	"email address"
//	@Success	200		{object}	fractalsdk.ResponseDTO
//	@Security	BearerAuth
//	@Router		/v1/subscribe [post].
func (h *AccountHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req fractalsdk.SubscribeDTO
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.AccountService.Subscribe(r.Context(), req.Email); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeOK(w)
}
