package fractalsdk

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/url"
)

// Token obtains an application token with the client credentials grant.
// The secret must be the base64 encoding of SecretLen bytes; anything else
// fails with ErrInvalidSecret before a request is made.
func (c *Client) Token(ctx context.Context, appID, secret string) (*AccessToken, error) {
	raw, err := base64.StdEncoding.DecodeString(secret)
	if err != nil || len(raw) != SecretLen {
		return nil, ErrInvalidSecret
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")

	r := request{
		method:      http.MethodPost,
		path:        "token",
		header:      http.Header{},
		body:        []byte(form.Encode()),
		contentType: "application/x-www-form-urlencoded",
	}
	r.header.Set("Authorization", basicAuth(appID, secret))

	body, err := c.send(ctx, r)
	if err != nil {
		return nil, err
	}

	var dto AccessTokenDTO
	if err := decodeJSON(body, &dto); err != nil {
		return nil, err
	}

	return AccessTokenFromDTO(dto)
}

func basicAuth(appID, secret string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(appID+":"+secret))
}

// CreateClient registers a new application and returns its credentials.
// Requires an admin token.
func (c *Client) CreateClient(
	ctx context.Context,
	t *AccessToken,
	name string,
	scopes []Scope,
	requestLimit uint32,
) (ClientInfo, error) {
	req := CreateClientDTO{
		Name:         name,
		Scopes:       ScopeStrings(scopes),
		RequestLimit: requestLimit,
	}

	var dto ClientInfoDTO
	if err := c.doAuthRequest(ctx, t, "create_client", admin,
		http.MethodPost, "create_client", req, &dto); err != nil {
		return ClientInfo{}, err
	}

	return ClientInfoFromDTO(dto)
}

// Register creates a user account. The user receives an email
// confirmation key. Requires a public token.
func (c *Client) Register(ctx context.Context, t *AccessToken, username, password, email string) error {
	req := RegisterDTO{
		Username: username,
		Password: password,
		Email:    email,
	}
	return c.doAuthRequest(ctx, t, "register", public, http.MethodPost, "register", req, nil)
}

// Login exchanges a user's credentials for a token carrying that user's
// scope. userEmail is the account's email address. Requires a public
// token.
func (c *Client) Login(
	ctx context.Context,
	t *AccessToken,
	userEmail, password string,
	rememberMe bool,
) (*AccessToken, error) {
	req := LoginDTO{
		UserEmail:  userEmail,
		Password:   password,
		RememberMe: rememberMe,
	}

	var dto AccessTokenDTO
	if err := c.doAuthRequest(ctx, t, "login", public, http.MethodPost, "login", req, &dto); err != nil {
		return nil, err
	}

	return AccessTokenFromDTO(dto)
}

// ResendEmailConfirmation sends a new confirmation key to the email of the
// user the token belongs to.
func (c *Client) ResendEmailConfirmation(ctx context.Context, t *AccessToken) error {
	return c.doAuthRequest(ctx, t, "resend_email_confirmation", anyUser,
		http.MethodGet, "resend_email_confirmation", nil, nil)
}

// ConfirmEmail confirms an email address with the key sent to it.
func (c *Client) ConfirmEmail(ctx context.Context, t *AccessToken, key string) error {
	return c.doAuthRequest(ctx, t, "confirm_email", public,
		http.MethodPost, "confirm_email/"+url.PathEscape(key), nil, nil)
}

// StartResetPassword sends a password reset key to the user's email. Both
// the username and the email must match the account.
func (c *Client) StartResetPassword(ctx context.Context, t *AccessToken, username, email string) error {
	req := ResetPasswordDTO{
		Username: username,
		Email:    email,
	}
	return c.doAuthRequest(ctx, t, "start_reset_password", public,
		http.MethodPost, "start_reset_password", req, nil)
}

// ResetPassword sets a new password using a key from StartResetPassword.
func (c *Client) ResetPassword(ctx context.Context, t *AccessToken, key, newPassword string) error {
	req := NewPasswordDTO{NewPassword: newPassword}
	return c.doAuthRequest(ctx, t, "reset_password", public,
		http.MethodPost, "reset_password/"+url.PathEscape(key), req, nil)
}

// SubscribeEmail subscribes an address to the newsletter.
func (c *Client) SubscribeEmail(ctx context.Context, t *AccessToken, email string) error {
	req := SubscribeDTO{Email: email}
	return c.doAuthRequest(ctx, t, "subscribe", public, http.MethodPost, "subscribe", req, nil)
}
