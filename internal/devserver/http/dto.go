package http

import (
	"github.com/fractalglobal/fgc/internal/devserver/domain"
	"github.com/fractalglobal/fgc/pkg/fractalsdk"
)

func addressDTO(a *domain.Address) *fractalsdk.Address {
	if a == nil {
		return nil
	}
	out := &fractalsdk.Address{
		Address1: a.Address1,
		City:     a.City,
		State:    a.State,
		Zip:      a.Zip,
		Country:  a.Country,
	}
	if a.Address2 != nil {
		out.Address2 = *a.Address2
	}
	return out
}

func addressFromDTO(a *fractalsdk.Address) *domain.Address {
	if a == nil {
		return nil
	}
	out := &domain.Address{
		Address1: a.Address1,
		City:     a.City,
		State:    a.State,
		Zip:      a.Zip,
		Country:  a.Country,
	}
	if a.Address2 != "" {
		line := a.Address2
		out.Address2 = &line
	}
	return out
}

func userDTO(u domain.User) fractalsdk.UserDTO {
	dto := fractalsdk.UserDTO{
		ID:                u.ID,
		Username:          u.Username,
		Email:             u.Email,
		EmailConfirmed:    u.EmailConfirmed,
		First:             u.First,
		FirstConfirmed:    u.FirstConfirmed,
		Last:              u.Last,
		LastConfirmed:     u.LastConfirmed,
		DeviceCount:       u.DeviceCount,
		WalletAddresses:   []fractalsdk.WalletAddress{fractalsdk.WalletAddress(u.WalletAddress)},
		CheckingBalance:   fractalsdk.Amount(u.CheckingBalance),
		ColdBalance:       fractalsdk.Amount(u.ColdBalance),
		Bonds:             []fractalsdk.BondDTO{},
		BirthdayConfirmed: u.BirthdayConfirmed,
		Phone:             u.Phone,
		PhoneConfirmed:    u.PhoneConfirmed,
		Image:             u.Image,
		Address:           addressDTO(u.Address),
		AddressConfirmed:  u.AddressConfirmed,
		SybilScore:        u.SybilScore,
		TrustScore:        u.TrustScore,
		Enabled:           u.Enabled,
		Registered:        u.Registered,
		LastActivity:      u.LastActivity,
		Banned:            u.Banned,
	}
	if u.Birthday != nil {
		b := u.Birthday.Format(fractalsdk.BirthdayLayout)
		dto.Birthday = &b
	}
	return dto
}

func userDTOs(users []domain.User) []fractalsdk.UserDTO {
	out := make([]fractalsdk.UserDTO, 0, len(users))
	for _, u := range users {
		out = append(out, userDTO(u))
	}
	return out
}

func profileDTO(u domain.User) fractalsdk.ProfileDTO {
	dto := fractalsdk.ProfileDTO{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.DisplayName(),
		TrustScore:  u.TrustScore,
	}
	if u.Image != nil {
		dto.Image = *u.Image
	}
	return dto
}

func profileDTOs(users []domain.User) []fractalsdk.ProfileDTO {
	out := make([]fractalsdk.ProfileDTO, 0, len(users))
	for _, u := range users {
		out = append(out, profileDTO(u))
	}
	return out
}

func pendingDTOs(reqs []domain.FriendRequest) []fractalsdk.PendingFriendRequestDTO {
	out := make([]fractalsdk.PendingFriendRequestDTO, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, fractalsdk.PendingFriendRequestDTO{
			ID:            r.ID,
			OriginID:      r.OriginID,
			DestinationID: r.DestinationID,
			Relationship:  fractalsdk.Relationship(r.Relationship),
			Message:       r.Message,
			Timestamp:     r.CreatedAt,
		})
	}
	return out
}

func transactionDTO(t domain.Transaction) fractalsdk.TransactionDTO {
	return fractalsdk.TransactionDTO{
		ID:              t.ID,
		OriginUser:      t.OriginUser,
		DestinationUser: t.DestinationUser,
		Destination:     fractalsdk.WalletAddress(t.Destination),
		Amount:          fractalsdk.Amount(t.Amount),
		Timestamp:       t.CreatedAt,
	}
}

func transactionDTOs(txs []domain.Transaction) []fractalsdk.TransactionDTO {
	out := make([]fractalsdk.TransactionDTO, 0, len(txs))
	for _, t := range txs {
		out = append(out, transactionDTO(t))
	}
	return out
}
