package sqlite

import (
	"context"
	"time"

	"github.com/fractalglobal/fgc/internal/devserver/domain"
)

type transactionsRepo struct {
	db dbtx
}

const transactionColumns = `id, origin_user, destination_user, destination, amount, created_at`

func scanTransaction(row interface{ Scan(...any) error }) (domain.Transaction, error) {
	var (
		t         domain.Transaction
		createdAt int64
	)
	if err := row.Scan(&t.ID, &t.OriginUser, &t.DestinationUser, &t.Destination, &t.Amount, &createdAt); err != nil {
		return domain.Transaction{}, err
	}
	t.CreatedAt = fromMillis(createdAt)
	return t, nil
}

func (r *transactionsRepo) CreateTransaction(ctx context.Context, t domain.Transaction) (uint64, error) {
	createdAt := t.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO transactions (origin_user, destination_user, destination, amount, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		t.OriginUser, t.DestinationUser, t.Destination, t.Amount, toMillis(createdAt),
	)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil // #nosec G115
}

func (r *transactionsRepo) GetTransaction(ctx context.Context, id uint64) (domain.Transaction, error) {
	t, err := scanTransaction(r.db.QueryRowContext(ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE id = ?`, id))
	if err != nil {
		return domain.Transaction{}, mapNotFound(err)
	}
	return t, nil
}

func (r *transactionsRepo) ListSince(ctx context.Context, sinceID uint64) ([]domain.Transaction, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE id > ? ORDER BY id`, sinceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
