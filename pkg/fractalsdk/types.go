package fractalsdk

import "time"

// BirthdayLayout is the wire format of a birthday.
const BirthdayLayout = time.DateOnly

// ============================================================================
// Envelope Types
// ============================================================================

// ResponseDTO is the body of every error response and of successful
// operations that return no value.
type ResponseDTO struct {
	Message string `json:"message"`
}

// ============================================================================
// Token Types
// ============================================================================

// AccessTokenDTO is returned by the token and login endpoints.
type AccessTokenDTO struct {
	// AppID is the application the token was issued to
	AppID string `json:"app_id"`

	// Scopes are the granted scopes in wire form ("admin", "user:42", ...)
	Scopes []string `json:"scopes"`

	// AccessToken is the bearer value
	AccessToken string `json:"access_token"`

	// TokenType is always "Bearer"
	TokenType string `json:"token_type"`

	// Expiration is the lifetime of the token in seconds
	Expiration int64 `json:"expiration"`
}

// CreateClientDTO registers a new application. Admin only.
type CreateClientDTO struct {
	Name         string   `json:"name"`
	Scopes       []string `json:"scopes"`
	RequestLimit uint32   `json:"request_limit"`
}

// ClientInfoDTO describes an application and its credentials. The secret
// is only returned on creation.
type ClientInfoDTO struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Secret       string   `json:"secret"`
	Scopes       []string `json:"scopes"`
	RequestLimit uint32   `json:"request_limit"`
}

// ============================================================================
// Account Types
// ============================================================================

type RegisterDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

type LoginDTO struct {
	UserEmail  string `json:"user_email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"remember_me"`
}

type ResetPasswordDTO struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type NewPasswordDTO struct {
	NewPassword string `json:"new_password"`
}

// UpdateUserDTO is a partial update. Fields left nil are sent as null and
// are not changed by the server.
type UpdateUserDTO struct {
	NewUsername *string  `json:"new_username"`
	NewEmail    *string  `json:"new_email"`
	NewFirst    *string  `json:"new_first"`
	NewLast     *string  `json:"new_last"`
	OldPassword *string  `json:"old_password"`
	NewPassword *string  `json:"new_password"`
	NewPhone    *string  `json:"new_phone"`
	NewBirthday *string  `json:"new_birthday"`
	NewImage    *string  `json:"new_image"`
	NewAddress  *Address `json:"new_address"`
}

// AuthenticationCodeDTO carries a TOTP code and the client time it was read.
type AuthenticationCodeDTO struct {
	Code      uint32    `json:"code"`
	Timestamp time.Time `json:"timestamp"`
}

type SubscribeDTO struct {
	Email string `json:"email"`
}

// ============================================================================
// User Types
// ============================================================================

// BondDTO is a bond held by a user.
type BondDTO struct {
	Timestamp time.Time `json:"timestamp"`
	Amount    Amount    `json:"amount"`
}

// UserDTO is the full user record, visible to admins and to the user.
type UserDTO struct {
	ID                uint64          `json:"id"`
	Username          string          `json:"username"`
	Email             string          `json:"email"`
	EmailConfirmed    bool            `json:"email_confirmed"`
	First             *string         `json:"first"`
	FirstConfirmed    bool            `json:"first_confirmed"`
	Last              *string         `json:"last"`
	LastConfirmed     bool            `json:"last_confirmed"`
	DeviceCount       uint8           `json:"device_count"`
	WalletAddresses   []WalletAddress `json:"wallet_addresses"`
	CheckingBalance   Amount          `json:"checking_balance"`
	ColdBalance       Amount          `json:"cold_balance"`
	Bonds             []BondDTO       `json:"bonds"`
	Birthday          *string         `json:"birthday"`
	BirthdayConfirmed bool            `json:"birthday_confirmed"`
	Phone             *string         `json:"phone"`
	PhoneConfirmed    bool            `json:"phone_confirmed"`
	Image             *string         `json:"image"`
	Address           *Address        `json:"address"`
	AddressConfirmed  bool            `json:"address_confirmed"`
	SybilScore        int8            `json:"sybil_score"`
	TrustScore        int8            `json:"trust_score"`
	Enabled           bool            `json:"enabled"`
	Registered        time.Time       `json:"registered"`
	LastActivity      time.Time       `json:"last_activity"`
	Banned            *time.Time      `json:"banned"`
}

// ProfileDTO is the public view of a user, as seen by other users.
type ProfileDTO struct {
	ID          uint64 `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Image       string `json:"image"`
	TrustScore  int8   `json:"trust_score"`
}

// ============================================================================
// Friend Types
// ============================================================================

type FriendRequestDTO struct {
	OriginID      uint64       `json:"origin_id"`
	DestinationID uint64       `json:"destination_id"`
	Relationship  Relationship `json:"relationship"`
	Message       *string      `json:"message"`
}

// ConfirmFriendRequestDTO answers a pending request. It is used for both
// confirming and rejecting.
type ConfirmFriendRequestDTO struct {
	ID          uint64 `json:"id"`
	Origin      uint64 `json:"origin"`
	Destination uint64 `json:"destination"`
}

type PendingFriendRequestDTO struct {
	ID            uint64       `json:"id"`
	OriginID      uint64       `json:"origin_id"`
	DestinationID uint64       `json:"destination_id"`
	Relationship  Relationship `json:"relationship"`
	Message       *string      `json:"message"`
	Timestamp     time.Time    `json:"timestamp"`
}

// ============================================================================
// Transaction Types
// ============================================================================

type GenerateTransactionDTO struct {
	OriginID           uint64        `json:"origin_id"`
	DestinationAddress WalletAddress `json:"destination_address"`
	DestinationID      uint64        `json:"destination_id"`
	Amount             Amount        `json:"amount"`
}

type TransactionDTO struct {
	ID              uint64        `json:"id"`
	OriginUser      uint64        `json:"origin_user"`
	DestinationUser uint64        `json:"destination_user"`
	Destination     WalletAddress `json:"destination"`
	Amount          Amount        `json:"amount"`
	Timestamp       time.Time     `json:"timestamp"`
}
