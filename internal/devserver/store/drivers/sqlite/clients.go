package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/fractalglobal/fgc/internal/devserver/domain"
)

type clientsRepo struct {
	db dbtx
}

const clientColumns = `id, name, secret_hash, scopes, request_limit, protected, created_at`

func scanClient(row interface{ Scan(...any) error }) (domain.Client, error) {
	var (
		c         domain.Client
		scopes    string
		createdAt int64
	)
	if err := row.Scan(&c.ID, &c.Name, &c.SecretHash, &scopes, &c.RequestLimit, &c.Protected, &createdAt); err != nil {
		return domain.Client{}, err
	}
	c.Scopes = strings.Fields(scopes)
	c.CreatedAt = fromMillis(createdAt)
	return c, nil
}

func (r *clientsRepo) GetClientByID(ctx context.Context, id string) (domain.Client, error) {
	c, err := scanClient(r.db.QueryRowContext(ctx,
		`SELECT `+clientColumns+` FROM clients WHERE id = ?`, id))
	if err != nil {
		return domain.Client{}, mapNotFound(err)
	}
	return c, nil
}

func (r *clientsRepo) ListClients(ctx context.Context) ([]domain.Client, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+clientColumns+` FROM clients ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *clientsRepo) CreateClient(ctx context.Context, c domain.Client) error {
	createdAt := c.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO clients (`+clientColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.Name, c.SecretHash, strings.Join(c.Scopes, " "), c.RequestLimit, c.Protected, toMillis(createdAt),
	)
	return mapConstraint(err)
}

func (r *clientsRepo) IsEmpty(ctx context.Context) (bool, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM clients`).Scan(&count); err != nil {
		return false, err
	}
	return count == 0, nil
}
