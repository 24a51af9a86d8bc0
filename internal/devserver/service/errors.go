package service

import (
	"errors"
	"fmt"
)

// ErrRejected matches every business rule violation. Handlers answer these
// with 202 and the rejection text as the message.
var ErrRejected = errors.New("rejected")

type rejection string

func (r rejection) Error() string { return string(r) }

func (r rejection) Is(target error) bool { return target == ErrRejected }

func rejectf(format string, args ...any) error {
	return rejection(fmt.Sprintf(format, args...))
}

var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidClient = errors.New("invalid client credentials")

	ErrInvalidCredentials = rejection("invalid credentials")
	ErrAccountDisabled    = rejection("account disabled")
	ErrUsernameTaken      = rejection("username already taken")
	ErrEmailTaken         = rejection("email already registered")
	ErrInvalidUsername    = rejection("username must be 3 to 32 letters, digits, '.', '_' or '-'")
	ErrWeakPassword       = rejection("password must be at least 8 characters")
	ErrInvalidEmail       = rejection("invalid email address")
	ErrWrongPassword      = rejection("old password does not match")
	ErrPasswordOwner      = rejection("only the user can change their password")
	ErrInvalidKey         = rejection("invalid or expired key")
	ErrAlreadyConfirmed   = rejection("email already confirmed")
	ErrAlreadySubscribed  = rejection("email already subscribed")
	ErrNoAuthenticator    = rejection("authenticator not generated")
	ErrInvalidCode        = rejection("invalid authentication code")
	ErrStaleCode          = rejection("authentication code timestamp out of range")

	ErrSelfRequest     = rejection("cannot befriend yourself")
	ErrAlreadyFriends  = rejection("already friends")
	ErrRequestPending  = rejection("a friend request is already pending")
	ErrRequestMismatch = rejection("friend request does not match")
	ErrNotFriends      = rejection("not friends")

	ErrInvalidAmount     = rejection("amount must be positive")
	ErrInsufficientFunds = rejection("insufficient funds")
	ErrSelfTransfer      = rejection("cannot send credits to yourself")
	ErrWalletMismatch    = rejection("destination address does not belong to destination user")

	ErrInvalidScope = rejection("invalid client scopes")
)
