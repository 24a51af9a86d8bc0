package store

import (
	"context"
	"errors"

	"github.com/fractalglobal/fgc/internal/devserver/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface of the dev server. Sub-repos are
// methods so a Tx-scoped Store hands out repos bound to the transaction.
type Store interface {
	Clients() Clients
	Users() Users
	Friends() Friends
	Transactions() Transactions
	EmailKeys() EmailKeys
	Subscriptions() Subscriptions

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, committing when fn returns nil and
	// rolling back otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Clients interface {
	GetClientByID(ctx context.Context, id string) (domain.Client, error)
	ListClients(ctx context.Context) ([]domain.Client, error)

	// CreateClient inserts a client; the id is a ULID chosen by the caller.
	CreateClient(ctx context.Context, c domain.Client) error

	IsEmpty(ctx context.Context) (bool, error)
}

type Users interface {
	GetUserByID(ctx context.Context, id uint64) (domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// CreateUser inserts u and returns the assigned id. Username, email and
	// wallet collisions return ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) (uint64, error)

	// UpdateUser overwrites every mutable column of u.
	UpdateUser(ctx context.Context, u domain.User) error

	// AdjustBalance adds delta to the checking balance.
	AdjustBalance(ctx context.Context, id uint64, delta int64) error

	// TouchActivity bumps last_activity to now.
	TouchActivity(ctx context.Context, id uint64) error

	DeleteUser(ctx context.Context, id uint64) error
	ListUsers(ctx context.Context) ([]domain.User, error)

	// RandomUsers returns up to limit enabled users other than exclude.
	RandomUsers(ctx context.Context, exclude uint64, limit int) ([]domain.User, error)
}

type Friends interface {
	CreateRequest(ctx context.Context, r domain.FriendRequest) (uint64, error)
	GetRequest(ctx context.Context, id uint64) (domain.FriendRequest, error)
	DeleteRequest(ctx context.Context, id uint64) error

	// PendingBetween reports a request in either direction between a and b.
	PendingBetween(ctx context.Context, a, b uint64) (bool, error)

	// ListPending returns the requests awaiting an answer from userID.
	ListPending(ctx context.Context, userID uint64) ([]domain.FriendRequest, error)

	// CreateFriendship links a and b in both directions.
	CreateFriendship(ctx context.Context, a, b uint64, relationship string) error

	// DeleteFriendship unlinks a and b; ErrNotFound when they were not linked.
	DeleteFriendship(ctx context.Context, a, b uint64) error

	AreFriends(ctx context.Context, a, b uint64) (bool, error)
	ListFriends(ctx context.Context, userID uint64) ([]domain.User, error)
}

type Transactions interface {
	CreateTransaction(ctx context.Context, t domain.Transaction) (uint64, error)
	GetTransaction(ctx context.Context, id uint64) (domain.Transaction, error)

	// ListSince returns transactions with id > sinceID in id order.
	ListSince(ctx context.Context, sinceID uint64) ([]domain.Transaction, error)
}

type EmailKeys interface {
	CreateKey(ctx context.Context, k domain.EmailKey) error

	// ConsumeKey deletes and returns an unexpired key of the given purpose.
	ConsumeKey(ctx context.Context, fingerprint string, purpose domain.KeyPurpose) (domain.EmailKey, error)

	DeleteExpiredKeys(ctx context.Context) error
}

type Subscriptions interface {
	// Subscribe records email; ErrAlreadyExists when already subscribed.
	Subscribe(ctx context.Context, email string) error
}
