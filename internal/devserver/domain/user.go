package domain

import "time"

type Address struct {
	Address1 string
	Address2 *string
	City     string
	State    string
	Zip      string
	Country  string
}

// User is a Fractal account. Balances are in thousandths of a credit.
type User struct {
	ID             uint64
	Username       string
	Email          string
	EmailConfirmed bool
	PasswordHash   string

	First          *string
	FirstConfirmed bool
	Last           *string
	LastConfirmed  bool

	Phone             *string
	PhoneConfirmed    bool
	Birthday          *time.Time
	BirthdayConfirmed bool
	Image             *string
	Address           *Address
	AddressConfirmed  bool

	// TOTPSecret is set once an authenticator is provisioned; TOTPEnabled
	// once a code from it has been verified.
	TOTPSecret  *string
	TOTPEnabled bool
	DeviceCount uint8

	WalletAddress   string
	CheckingBalance int64
	ColdBalance     int64

	SybilScore   int8
	TrustScore   int8
	Enabled      bool
	Registered   time.Time
	LastActivity time.Time
	Banned       *time.Time
}

// DisplayName is "First Last" when both are known, else the username.
func (u User) DisplayName() string {
	if u.First != nil && u.Last != nil {
		return *u.First + " " + *u.Last
	}
	return u.Username
}
