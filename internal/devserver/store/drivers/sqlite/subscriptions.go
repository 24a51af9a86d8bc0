package sqlite

import (
	"context"
	"time"
)

type subscriptionsRepo struct {
	db dbtx
}

func (r *subscriptionsRepo) Subscribe(ctx context.Context, email string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO subscriptions (email, created_at) VALUES (?, ?)`, email, toMillis(time.Now()))
	return mapConstraint(err)
}
