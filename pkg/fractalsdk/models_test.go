package fractalsdk

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testWallet = WalletAddress("fg1c0ffee0c0ffee0c0ffee0c0ffee0c0")

func TestTransactionRoundTrip(t *testing.T) {
	t.Parallel()

	tx := Transaction{
		ID:              99,
		OriginUser:      1,
		DestinationUser: 2,
		Destination:     testWallet,
		Amount:          Credits(12) + 345,
		Timestamp:       time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC),
	}

	got, err := TransactionFromDTO(tx.DTO())
	require.NoError(t, err)
	require.Equal(t, tx, got)

	t.Run("rejects non positive amount", func(t *testing.T) {
		dto := tx.DTO()
		dto.Amount = 0
		_, err := TransactionFromDTO(dto)
		var fromErr *FromDTOError
		require.ErrorAs(t, err, &fromErr)
		require.Equal(t, "amount", fromErr.Field)
	})

	t.Run("rejects bad wallet", func(t *testing.T) {
		dto := tx.DTO()
		dto.Destination = "short"
		_, err := TransactionFromDTO(dto)
		var fromErr *FromDTOError
		require.ErrorAs(t, err, &fromErr)
		require.Equal(t, "destination", fromErr.Field)
	})
}

func TestUserRoundTrip(t *testing.T) {
	t.Parallel()

	image := "https://img.example/alice.png"
	banned := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)

	u := User{
		ID:              7,
		Username:        "alice",
		Email:           Confirmable[string]{Value: "alice@example.com", Confirmed: true},
		FirstName:       &Confirmable[string]{Value: "Alice"},
		LastName:        &Confirmable[string]{Value: "Liddell", Confirmed: true},
		DeviceCount:     2,
		WalletAddresses: []WalletAddress{testWallet},
		CheckingBalance: Credits(100),
		ColdBalance:     Credits(3),
		Bonds: []Bond{
			{Timestamp: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), Amount: Credits(10)},
		},
		Birthday: &Confirmable[time.Time]{Value: time.Date(1990, 7, 4, 0, 0, 0, 0, time.UTC)},
		Phone:    &Confirmable[string]{Value: "+61400000000"},
		Image:    &image,
		Address: &Confirmable[Address]{Value: Address{
			Address1: "1 Rabbit Hole",
			City:     "Oxford",
			State:    "Oxfordshire",
			Zip:      "OX1",
			Country:  "UK",
		}},
		SybilScore:   -2,
		TrustScore:   5,
		Enabled:      true,
		Registered:   time.Date(2022, 6, 1, 9, 0, 0, 0, time.UTC),
		LastActivity: time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC),
		Banned:       &banned,
	}

	got, err := UserFromDTO(u.DTO())
	require.NoError(t, err)
	require.Equal(t, u, got)
	require.Equal(t, "Alice Liddell", got.DisplayName())

	t.Run("survives json", func(t *testing.T) {
		raw, err := json.Marshal(u.DTO())
		require.NoError(t, err)

		var dto UserDTO
		require.NoError(t, json.Unmarshal(raw, &dto))

		decoded, err := UserFromDTO(dto)
		require.NoError(t, err)
		require.Equal(t, u.Birthday, decoded.Birthday)
		require.True(t, u.Registered.Equal(decoded.Registered))
	})

	t.Run("unset attributes are null", func(t *testing.T) {
		bare := User{ID: 1, Username: "bob", Email: Confirmable[string]{Value: "bob@example.com"}}
		dto := bare.DTO()
		require.Nil(t, dto.First)
		require.Nil(t, dto.Birthday)
		require.Nil(t, dto.Address)
		require.Equal(t, "bob", bare.DisplayName())

		back, err := UserFromDTO(dto)
		require.NoError(t, err)
		require.Equal(t, bare, back)
	})

	t.Run("bad birthday", func(t *testing.T) {
		dto := u.DTO()
		b := "04/07/1990"
		dto.Birthday = &b
		_, err := UserFromDTO(dto)
		var fromErr *FromDTOError
		require.ErrorAs(t, err, &fromErr)
		require.Equal(t, "birthday", fromErr.Field)
	})
}

func TestPendingFriendRequestRoundTrip(t *testing.T) {
	t.Parallel()

	msg := "we met at the conference"
	req := PendingFriendRequest{
		ID:            3,
		OriginID:      1,
		DestinationID: 2,
		Relationship:  RelationshipWork,
		Message:       &msg,
		Timestamp:     time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	got, err := PendingFriendRequestFromDTO(req.DTO())
	require.NoError(t, err)
	require.Equal(t, req, got)

	dto := req.DTO()
	dto.Relationship = "nemesis"
	_, err = PendingFriendRequestFromDTO(dto)
	require.Error(t, err)
}

func TestUpdateUserDTOSendsExplicitNulls(t *testing.T) {
	t.Parallel()

	name := "neo"
	raw, err := json.Marshal(UpdateUserDTO{NewUsername: &name})
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))
	require.Len(t, fields, 10)
	require.Equal(t, "neo", fields["new_username"])
	require.Contains(t, fields, "new_email")
	require.Nil(t, fields["new_email"])
}

func TestAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Amount
		str  string
	}{
		{"0", 0, "0.000"},
		{"1", 1000, "1.000"},
		{"12.5", 12500, "12.500"},
		{"0.001", 1, "0.001"},
		{"-3.25", -3250, "-3.250"},
		{"7.", 7000, "7.000"},
		{"9223372036854774.999", math.MaxInt64 - 808, "9223372036854774.999"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAmount(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.str, got.String())
		})
	}

	for _, bad := range []string{
		"", "abc", "1.2345", "1.x", "-",
		"--5", "+5", "-+5", "1.-5", "1.+5", ".5", "1 .5",
		"9223372036854775", "9223372036854775807", "9300000000000000",
	} {
		_, err := ParseAmount(bad)
		require.Error(t, err, bad)
	}

	t.Run("formats extremes", func(t *testing.T) {
		require.Equal(t, "-9223372036854775.808", Amount(math.MinInt64).String())
		require.Equal(t, "9223372036854775.807", Amount(math.MaxInt64).String())
	})
}

func TestRelationship(t *testing.T) {
	t.Parallel()

	r, err := ParseRelationship(" Family ")
	require.NoError(t, err)
	require.Equal(t, RelationshipFamily, r)

	var decoded FriendRequestDTO
	err = json.Unmarshal([]byte(`{"relationship":"enemy"}`), &decoded)
	require.Error(t, err)
}
