package fractalsdk

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

func idPath(prefix string, id uint64) string {
	return fmt.Sprintf("%s/%d", prefix, id)
}

// GetUser returns a user's full record. Requires an admin token or the
// token of that user.
func (c *Client) GetUser(ctx context.Context, t *AccessToken, id uint64) (User, error) {
	var dto UserDTO
	if err := c.doAuthRequest(ctx, t, "get_user", either(admin, user(id)),
		http.MethodGet, idPath("user", id), nil, &dto); err != nil {
		return User{}, err
	}
	return UserFromDTO(dto)
}

// GetMe returns the record of the user the token belongs to.
func (c *Client) GetMe(ctx context.Context, t *AccessToken) (User, error) {
	if err := authorize("get_me", t, anyUser); err != nil {
		return User{}, err
	}
	id, _ := t.UserID()
	return c.GetUser(ctx, t, id)
}

// GetAllUsers returns every user. Admin only.
func (c *Client) GetAllUsers(ctx context.Context, t *AccessToken) ([]User, error) {
	var dtos []UserDTO
	if err := c.doAuthRequest(ctx, t, "get_all_users", admin,
		http.MethodGet, "all_users", nil, &dtos); err != nil {
		return nil, err
	}
	return convertAll(dtos, UserFromDTO)
}

// DeleteUser removes a user. Admin only.
func (c *Client) DeleteUser(ctx context.Context, t *AccessToken, id uint64) error {
	return c.doAuthRequest(ctx, t, "delete_user", admin,
		http.MethodDelete, idPath("user", id), nil, nil)
}

// SearchUserRandom returns up to count random profiles, for discovering
// people to connect with.
func (c *Client) SearchUserRandom(ctx context.Context, t *AccessToken, count uint) ([]Profile, error) {
	var dtos []ProfileDTO
	if err := c.doAuthRequest(ctx, t, "search_user_random", either(admin, anyUser),
		http.MethodGet, fmt.Sprintf("search_user/random/%d", count), nil, &dtos); err != nil {
		return nil, err
	}

	out := make([]Profile, len(dtos))
	for i, d := range dtos {
		out[i] = ProfileFromDTO(d)
	}
	return out, nil
}

// ============================================================================
// Two-factor authentication
// ============================================================================

// GenerateAuthenticatorCode provisions a TOTP authenticator for the user
// and returns its otpauth:// URL, suitable for rendering as a QR code.
func (c *Client) GenerateAuthenticatorCode(ctx context.Context, t *AccessToken, id uint64) (string, error) {
	var dto ResponseDTO
	if err := c.doAuthRequest(ctx, t, "generate_authenticator_code", user(id),
		http.MethodGet, idPath("authenticator", id), nil, &dto); err != nil {
		return "", err
	}
	return dto.Message, nil
}

// Authenticate verifies a TOTP code from the user's authenticator.
func (c *Client) Authenticate(ctx context.Context, t *AccessToken, id uint64, code uint32) error {
	req := AuthenticationCodeDTO{
		Code:      code,
		Timestamp: time.Now().UTC(),
	}
	return c.doAuthRequest(ctx, t, "authenticate", user(id),
		http.MethodPost, idPath("authenticate", id), req, nil)
}

// ============================================================================
// Profile updates
// ============================================================================

func (c *Client) updateUser(ctx context.Context, t *AccessToken, op string, allowed policy, id uint64, dto UpdateUserDTO) error {
	return c.doAuthRequest(ctx, t, op, allowed, http.MethodPost, idPath("update_user", id), dto, nil)
}

func (c *Client) SetUsername(ctx context.Context, t *AccessToken, id uint64, username string) error {
	return c.updateUser(ctx, t, "set_username", either(admin, user(id)), id,
		UpdateUserDTO{NewUsername: &username})
}

func (c *Client) SetPhone(ctx context.Context, t *AccessToken, id uint64, phone string) error {
	return c.updateUser(ctx, t, "set_phone", either(admin, user(id)), id,
		UpdateUserDTO{NewPhone: &phone})
}

// SetBirthday sets the user's date of birth; only the date part is sent.
func (c *Client) SetBirthday(ctx context.Context, t *AccessToken, id uint64, birthday time.Time) error {
	b := birthday.Format(BirthdayLayout)
	return c.updateUser(ctx, t, "set_birthday", either(admin, user(id)), id,
		UpdateUserDTO{NewBirthday: &b})
}

func (c *Client) SetName(ctx context.Context, t *AccessToken, id uint64, first, last string) error {
	return c.updateUser(ctx, t, "set_name", either(admin, user(id)), id,
		UpdateUserDTO{NewFirst: &first, NewLast: &last})
}

// SetEmail changes the email address; it becomes unconfirmed and a new
// confirmation key is sent.
func (c *Client) SetEmail(ctx context.Context, t *AccessToken, id uint64, email string) error {
	return c.updateUser(ctx, t, "set_email", either(admin, user(id)), id,
		UpdateUserDTO{NewEmail: &email})
}

func (c *Client) SetImage(ctx context.Context, t *AccessToken, id uint64, image string) error {
	return c.updateUser(ctx, t, "set_image", either(admin, user(id)), id,
		UpdateUserDTO{NewImage: &image})
}

func (c *Client) SetAddress(ctx context.Context, t *AccessToken, id uint64, address Address) error {
	return c.updateUser(ctx, t, "set_address", either(admin, user(id)), id,
		UpdateUserDTO{NewAddress: &address})
}

// SetPassword changes the password. Only the user can do this, and the
// current password is required.
func (c *Client) SetPassword(ctx context.Context, t *AccessToken, id uint64, oldPassword, newPassword string) error {
	return c.updateUser(ctx, t, "set_password", user(id), id,
		UpdateUserDTO{OldPassword: &oldPassword, NewPassword: &newPassword})
}

// ============================================================================
// Email confirmation (admin)
// ============================================================================

// ConfirmUserEmail marks a user's email as confirmed without a key.
func (c *Client) ConfirmUserEmail(ctx context.Context, t *AccessToken, id uint64) error {
	return c.doAuthRequest(ctx, t, "confirm_user_email", admin,
		http.MethodPost, idPath("confirm_user_email", id), nil, nil)
}

// UnconfirmUserEmail marks a user's email as unconfirmed.
func (c *Client) UnconfirmUserEmail(ctx context.Context, t *AccessToken, id uint64) error {
	return c.doAuthRequest(ctx, t, "unconfirm_user_email", admin,
		http.MethodPost, idPath("unconfirm_user_email", id), nil, nil)
}
