package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/fractalglobal/fgc/internal/devserver/domain"
	"github.com/fractalglobal/fgc/internal/devserver/store"
)

type friendsRepo struct {
	db dbtx
}

const requestColumns = `id, origin_id, destination_id, relationship, message, created_at`

func scanRequest(row interface{ Scan(...any) error }) (domain.FriendRequest, error) {
	var (
		r         domain.FriendRequest
		message   sql.NullString
		createdAt int64
	)
	if err := row.Scan(&r.ID, &r.OriginID, &r.DestinationID, &r.Relationship, &message, &createdAt); err != nil {
		return domain.FriendRequest{}, err
	}
	r.Message = mapNullStringPtr(message)
	r.CreatedAt = fromMillis(createdAt)
	return r, nil
}

func (f *friendsRepo) CreateRequest(ctx context.Context, r domain.FriendRequest) (uint64, error) {
	createdAt := r.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	res, err := f.db.ExecContext(ctx,
		`INSERT INTO friend_requests (origin_id, destination_id, relationship, message, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		r.OriginID, r.DestinationID, r.Relationship, mapOptionalString(r.Message), toMillis(createdAt),
	)
	if err != nil {
		return 0, mapConstraint(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil // #nosec G115
}

func (f *friendsRepo) GetRequest(ctx context.Context, id uint64) (domain.FriendRequest, error) {
	r, err := scanRequest(f.db.QueryRowContext(ctx,
		`SELECT `+requestColumns+` FROM friend_requests WHERE id = ?`, id))
	if err != nil {
		return domain.FriendRequest{}, mapNotFound(err)
	}
	return r, nil
}

func (f *friendsRepo) DeleteRequest(ctx context.Context, id uint64) error {
	return requireAffected(f.db.ExecContext(ctx, `DELETE FROM friend_requests WHERE id = ?`, id))
}

func (f *friendsRepo) PendingBetween(ctx context.Context, a, b uint64) (bool, error) {
	var exists bool
	err := f.db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM friend_requests
			WHERE (origin_id = ? AND destination_id = ?)
			   OR (origin_id = ? AND destination_id = ?)
		)`, a, b, b, a).Scan(&exists)
	return exists, err
}

func (f *friendsRepo) ListPending(ctx context.Context, userID uint64) ([]domain.FriendRequest, error) {
	rows, err := f.db.QueryContext(ctx,
		`SELECT `+requestColumns+` FROM friend_requests WHERE destination_id = ? ORDER BY id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.FriendRequest
	for rows.Next() {
		r, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (f *friendsRepo) CreateFriendship(ctx context.Context, a, b uint64, relationship string) error {
	now := toMillis(time.Now())
	_, err := f.db.ExecContext(ctx, `
		INSERT INTO friendships (user_id, friend_id, relationship, created_at)
		VALUES (?, ?, ?, ?), (?, ?, ?, ?)`,
		a, b, relationship, now,
		b, a, relationship, now,
	)
	return mapConstraint(err)
}

func (f *friendsRepo) DeleteFriendship(ctx context.Context, a, b uint64) error {
	return requireAffected(f.db.ExecContext(ctx, `
		DELETE FROM friendships
		WHERE (user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)`,
		a, b, b, a))
}

func (f *friendsRepo) AreFriends(ctx context.Context, a, b uint64) (bool, error) {
	var exists bool
	err := f.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM friendships WHERE user_id = ? AND friend_id = ?)`, a, b).Scan(&exists)
	return exists, err
}

func (f *friendsRepo) ListFriends(ctx context.Context, userID uint64) ([]domain.User, error) {
	users := &usersRepo{db: f.db}
	return users.list(ctx, `
		SELECT `+prefixed("u.", userColumns)+`
		FROM friendships fs
		JOIN users u ON u.id = fs.friend_id
		WHERE fs.user_id = ?
		ORDER BY u.id`, userID)
}

var _ store.Friends = (*friendsRepo)(nil)
