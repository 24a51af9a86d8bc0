package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/fractalglobal/fgc/internal/devserver/domain"
	"github.com/fractalglobal/fgc/internal/devserver/store"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewMemoryStore()
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func seedUser(t *testing.T, s *Store, username string, balance int64) domain.User {
	t.Helper()
	now := time.Now().UTC().Truncate(time.Millisecond)
	u := domain.User{
		Username:        username,
		Email:           username + "@example.com",
		PasswordHash:    "hash",
		WalletAddress:   "fg" + username + "00000000000000000000000000",
		CheckingBalance: balance,
		Enabled:         true,
		Registered:      now,
		LastActivity:    now,
	}
	id, err := s.Users().CreateUser(context.Background(), u)
	require.NoError(t, err)
	u.ID = id
	return u
}

func TestClients(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)

	empty, err := s.Clients().IsEmpty(ctx)
	require.NoError(t, err)
	require.True(t, empty)

	c := domain.Client{
		ID:           "01HZZZZZZZZZZZZZZZZZZZZZZZ",
		Name:         "admin",
		SecretHash:   "hash",
		Scopes:       []string{"admin", "public"},
		RequestLimit: 100,
		Protected:    true,
		CreatedAt:    time.Now().UTC().Truncate(time.Millisecond),
	}
	require.NoError(t, s.Clients().CreateClient(ctx, c))
	require.ErrorIs(t, s.Clients().CreateClient(ctx, c), store.ErrAlreadyExists)

	got, err := s.Clients().GetClientByID(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, c, got)

	_, err = s.Clients().GetClientByID(ctx, "missing")
	require.ErrorIs(t, err, store.ErrNotFound)

	all, err := s.Clients().ListClients(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestUsers(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)

	alice := seedUser(t, s, "alice", 1000)
	bob := seedUser(t, s, "bob", 0)

	t.Run("lookups", func(t *testing.T) {
		byEmail, err := s.Users().GetUserByEmail(ctx, "ALICE@example.com")
		require.NoError(t, err)
		require.Equal(t, alice.ID, byEmail.ID)

		byName, err := s.Users().GetUserByUsername(ctx, "bob")
		require.NoError(t, err)
		require.Equal(t, bob.ID, byName.ID)

		_, err = s.Users().GetUserByID(ctx, 999)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("duplicate username", func(t *testing.T) {
		dup := alice
		dup.Email = "other@example.com"
		dup.WalletAddress = "fgother"
		_, err := s.Users().CreateUser(ctx, dup)
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("update round trips optional columns", func(t *testing.T) {
		u, err := s.Users().GetUserByID(ctx, alice.ID)
		require.NoError(t, err)

		first, last := "Alice", "Liddell"
		birthday := time.Date(1990, 7, 4, 0, 0, 0, 0, time.UTC)
		apt := "Apt 2"
		u.First, u.Last = &first, &last
		u.Birthday = &birthday
		u.Address = &domain.Address{Address1: "1 Rabbit Hole", Address2: &apt, City: "Oxford", Country: "UK"}
		u.TrustScore = -3
		u.DeviceCount = 2
		require.NoError(t, s.Users().UpdateUser(ctx, u))

		got, err := s.Users().GetUserByID(ctx, alice.ID)
		require.NoError(t, err)
		require.Equal(t, "Alice Liddell", got.DisplayName())
		require.Equal(t, birthday, *got.Birthday)
		require.Equal(t, u.Address, got.Address)
		require.Equal(t, int8(-3), got.TrustScore)
		require.Equal(t, uint8(2), got.DeviceCount)
	})

	t.Run("balance cannot go negative", func(t *testing.T) {
		require.NoError(t, s.Users().AdjustBalance(ctx, alice.ID, -400))
		require.Error(t, s.Users().AdjustBalance(ctx, bob.ID, -1))

		got, err := s.Users().GetUserByID(ctx, alice.ID)
		require.NoError(t, err)
		require.Equal(t, int64(600), got.CheckingBalance)
	})

	t.Run("random excludes caller", func(t *testing.T) {
		users, err := s.Users().RandomUsers(ctx, alice.ID, 10)
		require.NoError(t, err)
		require.Len(t, users, 1)
		require.Equal(t, bob.ID, users[0].ID)
	})
}

func TestFriends(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)

	alice := seedUser(t, s, "alice", 0)
	bob := seedUser(t, s, "bob", 0)

	msg := "hi"
	reqID, err := s.Friends().CreateRequest(ctx, domain.FriendRequest{
		OriginID:      alice.ID,
		DestinationID: bob.ID,
		Relationship:  "friend",
		Message:       &msg,
	})
	require.NoError(t, err)

	pending, err := s.Friends().PendingBetween(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	require.True(t, pending)

	list, err := s.Friends().ListPending(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, reqID, list[0].ID)
	require.Equal(t, "hi", *list[0].Message)

	err = s.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Friends().DeleteRequest(ctx, reqID); err != nil {
			return err
		}
		return tx.Friends().CreateFriendship(ctx, alice.ID, bob.ID, "friend")
	})
	require.NoError(t, err)

	ok, err := s.Friends().AreFriends(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	require.True(t, ok)

	friends, err := s.Friends().ListFriends(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, friends, 1)
	require.Equal(t, "bob", friends[0].Username)

	require.NoError(t, s.Friends().DeleteFriendship(ctx, bob.ID, alice.ID))
	require.ErrorIs(t, s.Friends().DeleteFriendship(ctx, bob.ID, alice.ID), store.ErrNotFound)
}

func TestWithTxRollsBack(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)

	alice := seedUser(t, s, "alice", 500)

	err := s.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().AdjustBalance(ctx, alice.ID, -500); err != nil {
			return err
		}
		return store.ErrNotFound
	})
	require.ErrorIs(t, err, store.ErrNotFound)

	got, err := s.Users().GetUserByID(ctx, alice.ID)
	require.NoError(t, err)
	require.Equal(t, int64(500), got.CheckingBalance)
}

func TestTransactionsAndKeys(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)

	alice := seedUser(t, s, "alice", 0)

	for i := 1; i <= 3; i++ {
		_, err := s.Transactions().CreateTransaction(ctx, domain.Transaction{
			OriginUser: 1, DestinationUser: 2, Destination: "fgwallet", Amount: int64(i * 1000),
		})
		require.NoError(t, err)
	}
	since, err := s.Transactions().ListSince(ctx, 1)
	require.NoError(t, err)
	require.Len(t, since, 2)
	require.Equal(t, int64(2000), since[0].Amount)

	_, err = s.Transactions().GetTransaction(ctx, 42)
	require.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, s.EmailKeys().CreateKey(ctx, domain.EmailKey{
		Fingerprint: "live", UserID: alice.ID, Purpose: domain.KeyConfirmEmail,
		ExpiresAt: time.Now().Add(time.Hour),
	}))
	require.NoError(t, s.EmailKeys().CreateKey(ctx, domain.EmailKey{
		Fingerprint: "stale", UserID: alice.ID, Purpose: domain.KeyConfirmEmail,
		ExpiresAt: time.Now().Add(-time.Hour),
	}))

	_, err = s.EmailKeys().ConsumeKey(ctx, "live", domain.KeyResetPassword)
	require.ErrorIs(t, err, store.ErrNotFound)

	k, err := s.EmailKeys().ConsumeKey(ctx, "live", domain.KeyConfirmEmail)
	require.NoError(t, err)
	require.Equal(t, alice.ID, k.UserID)

	_, err = s.EmailKeys().ConsumeKey(ctx, "live", domain.KeyConfirmEmail)
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = s.EmailKeys().ConsumeKey(ctx, "stale", domain.KeyConfirmEmail)
	require.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, s.Subscriptions().Subscribe(ctx, "news@example.com"))
	require.ErrorIs(t, s.Subscriptions().Subscribe(ctx, "NEWS@example.com"), store.ErrAlreadyExists)
}
