package sqlite

import (
	"context"
	"database/sql"

	"github.com/fractalglobal/fgc/internal/devserver/store"
)

type txStore struct {
	tx *sql.Tx
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

func (t *txStore) Close() error                   { return nil }
func (t *txStore) Ping(ctx context.Context) error { return nil }
func (t *txStore) ApplyMigrations() error         { return nil }

// Nested transactions are not supported.
func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return sql.ErrTxDone
}

func (t *txStore) Clients() store.Clients             { return &clientsRepo{db: t.tx} }
func (t *txStore) Users() store.Users                 { return &usersRepo{db: t.tx} }
func (t *txStore) Friends() store.Friends             { return &friendsRepo{db: t.tx} }
func (t *txStore) Transactions() store.Transactions   { return &transactionsRepo{db: t.tx} }
func (t *txStore) EmailKeys() store.EmailKeys         { return &emailKeysRepo{db: t.tx} }
func (t *txStore) Subscriptions() store.Subscriptions { return &subscriptionsRepo{db: t.tx} }
