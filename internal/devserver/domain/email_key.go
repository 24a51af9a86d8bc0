package domain

import "time"

type KeyPurpose string

const (
	KeyConfirmEmail  KeyPurpose = "confirm_email"
	KeyResetPassword KeyPurpose = "reset_password"
)

// EmailKey is a single-use key mailed to a user. Only the fingerprint of
// the key is stored.
type EmailKey struct {
	Fingerprint string
	UserID      uint64
	Purpose     KeyPurpose
	ExpiresAt   time.Time
	CreatedAt   time.Time
}
