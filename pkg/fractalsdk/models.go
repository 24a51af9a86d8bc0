package fractalsdk

import (
	"fmt"
	"slices"
	"time"
)

// ClientInfo describes a registered application.
type ClientInfo struct {
	ID           string
	Name         string
	Secret       string
	Scopes       []Scope
	RequestLimit uint32
}

func ClientInfoFromDTO(dto ClientInfoDTO) (ClientInfo, error) {
	scopes, err := ParseScopes(dto.Scopes)
	if err != nil {
		return ClientInfo{}, &FromDTOError{Field: "scopes", Reason: err.Error()}
	}

	return ClientInfo{
		ID:           dto.ID,
		Name:         dto.Name,
		Secret:       dto.Secret,
		Scopes:       scopes,
		RequestLimit: dto.RequestLimit,
	}, nil
}

func (c ClientInfo) DTO() ClientInfoDTO {
	return ClientInfoDTO{
		ID:           c.ID,
		Name:         c.Name,
		Secret:       c.Secret,
		Scopes:       ScopeStrings(c.Scopes),
		RequestLimit: c.RequestLimit,
	}
}

// Profile is the public view of another user.
type Profile struct {
	ID          uint64
	Username    string
	DisplayName string
	Image       string
	TrustScore  int8
}

func ProfileFromDTO(dto ProfileDTO) Profile {
	return Profile(dto)
}

func (p Profile) DTO() ProfileDTO {
	return ProfileDTO(p)
}

// Bond is an amount of credits locked at a point in time.
type Bond struct {
	Timestamp time.Time
	Amount    Amount
}

// User is the full record of a user. Optional attributes are nil when the
// user never set them.
type User struct {
	ID              uint64
	Username        string
	Email           Confirmable[string]
	FirstName       *Confirmable[string]
	LastName        *Confirmable[string]
	DeviceCount     uint8
	WalletAddresses []WalletAddress
	CheckingBalance Amount
	ColdBalance     Amount
	Bonds           []Bond
	Birthday        *Confirmable[time.Time]
	Phone           *Confirmable[string]
	Image           *string
	Address         *Confirmable[Address]
	SybilScore      int8
	TrustScore      int8
	Enabled         bool
	Registered      time.Time
	LastActivity    time.Time
	Banned          *time.Time
}

// UserFromDTO converts a user record, validating the birthday and wallet
// addresses.
func UserFromDTO(dto UserDTO) (User, error) {
	u := User{
		ID:              dto.ID,
		Username:        dto.Username,
		Email:           Confirmable[string]{Value: dto.Email, Confirmed: dto.EmailConfirmed},
		FirstName:       confirmable(dto.First, dto.FirstConfirmed),
		LastName:        confirmable(dto.Last, dto.LastConfirmed),
		DeviceCount:     dto.DeviceCount,
		WalletAddresses: slices.Clone(dto.WalletAddresses),
		CheckingBalance: dto.CheckingBalance,
		ColdBalance:     dto.ColdBalance,
		Phone:           confirmable(dto.Phone, dto.PhoneConfirmed),
		Image:           dto.Image,
		Address:         confirmable(dto.Address, dto.AddressConfirmed),
		SybilScore:      dto.SybilScore,
		TrustScore:      dto.TrustScore,
		Enabled:         dto.Enabled,
		Registered:      dto.Registered,
		LastActivity:    dto.LastActivity,
		Banned:          dto.Banned,
	}

	if dto.Email == "" {
		return User{}, &FromDTOError{Field: "email", Reason: "empty"}
	}

	for _, w := range dto.WalletAddresses {
		if err := w.Validate(); err != nil {
			return User{}, &FromDTOError{Field: "wallet_addresses", Reason: err.Error()}
		}
	}

	if dto.Birthday != nil {
		b, err := time.Parse(BirthdayLayout, *dto.Birthday)
		if err != nil {
			return User{}, &FromDTOError{Field: "birthday", Reason: err.Error()}
		}
		u.Birthday = &Confirmable[time.Time]{Value: b, Confirmed: dto.BirthdayConfirmed}
	}

	if len(dto.Bonds) > 0 {
		u.Bonds = make([]Bond, len(dto.Bonds))
		for i, b := range dto.Bonds {
			u.Bonds[i] = Bond(b)
		}
	}

	return u, nil
}

func (u User) DTO() UserDTO {
	dto := UserDTO{
		ID:              u.ID,
		Username:        u.Username,
		Email:           u.Email.Value,
		EmailConfirmed:  u.Email.Confirmed,
		DeviceCount:     u.DeviceCount,
		WalletAddresses: slices.Clone(u.WalletAddresses),
		CheckingBalance: u.CheckingBalance,
		ColdBalance:     u.ColdBalance,
		Image:           u.Image,
		SybilScore:      u.SybilScore,
		TrustScore:      u.TrustScore,
		Enabled:         u.Enabled,
		Registered:      u.Registered,
		LastActivity:    u.LastActivity,
		Banned:          u.Banned,
	}

	dto.First, dto.FirstConfirmed = unconfirmable(u.FirstName)
	dto.Last, dto.LastConfirmed = unconfirmable(u.LastName)
	dto.Phone, dto.PhoneConfirmed = unconfirmable(u.Phone)
	dto.Address, dto.AddressConfirmed = unconfirmable(u.Address)

	if u.Birthday != nil {
		b := u.Birthday.Value.Format(BirthdayLayout)
		dto.Birthday = &b
		dto.BirthdayConfirmed = u.Birthday.Confirmed
	}

	if len(u.Bonds) > 0 {
		dto.Bonds = make([]BondDTO, len(u.Bonds))
		for i, b := range u.Bonds {
			dto.Bonds[i] = BondDTO(b)
		}
	}

	return dto
}

// DisplayName is the user's full name if set, otherwise the username.
func (u User) DisplayName() string {
	switch {
	case u.FirstName != nil && u.LastName != nil:
		return u.FirstName.Value + " " + u.LastName.Value
	case u.FirstName != nil:
		return u.FirstName.Value
	default:
		return u.Username
	}
}

func confirmable[T any](v *T, confirmed bool) *Confirmable[T] {
	if v == nil {
		return nil
	}
	return &Confirmable[T]{Value: *v, Confirmed: confirmed}
}

func unconfirmable[T any](c *Confirmable[T]) (*T, bool) {
	if c == nil {
		return nil, false
	}
	v := c.Value
	return &v, c.Confirmed
}

// Transaction is a transfer of credits between two users.
type Transaction struct {
	ID              uint64
	OriginUser      uint64
	DestinationUser uint64
	Destination     WalletAddress
	Amount          Amount
	Timestamp       time.Time
}

func TransactionFromDTO(dto TransactionDTO) (Transaction, error) {
	if dto.Amount <= 0 {
		return Transaction{}, &FromDTOError{
			Field:  "amount",
			Reason: fmt.Sprintf("must be positive, got %s", dto.Amount),
		}
	}
	if err := dto.Destination.Validate(); err != nil {
		return Transaction{}, &FromDTOError{Field: "destination", Reason: err.Error()}
	}
	return Transaction(dto), nil
}

func (t Transaction) DTO() TransactionDTO {
	return TransactionDTO(t)
}

// PendingFriendRequest is a connection request awaiting an answer.
type PendingFriendRequest struct {
	ID            uint64
	OriginID      uint64
	DestinationID uint64
	Relationship  Relationship
	Message       *string
	Timestamp     time.Time
}

func PendingFriendRequestFromDTO(dto PendingFriendRequestDTO) (PendingFriendRequest, error) {
	if _, err := ParseRelationship(string(dto.Relationship)); err != nil {
		return PendingFriendRequest{}, &FromDTOError{Field: "relationship", Reason: err.Error()}
	}
	return PendingFriendRequest(dto), nil
}

func (p PendingFriendRequest) DTO() PendingFriendRequestDTO {
	return PendingFriendRequestDTO(p)
}

// convertAll converts a decoded collection, stopping at the first failure.
func convertAll[D, T any](dtos []D, convert func(D) (T, error)) ([]T, error) {
	out := make([]T, 0, len(dtos))
	for _, d := range dtos {
		v, err := convert(d)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
