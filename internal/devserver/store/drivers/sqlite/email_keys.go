package sqlite

import (
	"context"
	"time"

	"github.com/fractalglobal/fgc/internal/devserver/domain"
)

type emailKeysRepo struct {
	db dbtx
}

func (r *emailKeysRepo) CreateKey(ctx context.Context, k domain.EmailKey) error {
	createdAt := k.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO email_keys (fingerprint, user_id, purpose, expires_at, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		k.Fingerprint, k.UserID, string(k.Purpose), toMillis(k.ExpiresAt), toMillis(createdAt),
	)
	return mapConstraint(err)
}

func (r *emailKeysRepo) ConsumeKey(ctx context.Context, fingerprint string, purpose domain.KeyPurpose) (domain.EmailKey, error) {
	var (
		k                    domain.EmailKey
		p                    string
		expiresAt, createdAt int64
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT fingerprint, user_id, purpose, expires_at, created_at
		FROM email_keys
		WHERE fingerprint = ? AND purpose = ? AND expires_at > ?`,
		fingerprint, string(purpose), toMillis(time.Now()),
	).Scan(&k.Fingerprint, &k.UserID, &p, &expiresAt, &createdAt)
	if err != nil {
		return domain.EmailKey{}, mapNotFound(err)
	}

	if err := requireAffected(r.db.ExecContext(ctx,
		`DELETE FROM email_keys WHERE fingerprint = ?`, fingerprint)); err != nil {
		return domain.EmailKey{}, err
	}

	k.Purpose = domain.KeyPurpose(p)
	k.ExpiresAt = fromMillis(expiresAt)
	k.CreatedAt = fromMillis(createdAt)
	return k, nil
}

func (r *emailKeysRepo) DeleteExpiredKeys(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM email_keys WHERE expires_at <= ?`, toMillis(time.Now()))
	return err
}
