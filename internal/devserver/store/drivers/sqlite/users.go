package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/fractalglobal/fgc/internal/devserver/domain"
)

type usersRepo struct {
	db dbtx
}

const userColumns = `id, username, email, email_confirmed, password_hash,
	first_name, first_confirmed, last_name, last_confirmed,
	phone, phone_confirmed, birthday, birthday_confirmed,
	image, address, address_confirmed,
	totp_secret, totp_enabled, device_count,
	wallet_address, checking_balance, cold_balance,
	sybil_score, trust_score, enabled, registered_at, last_activity_at, banned_at`

// prefixed qualifies every column in cols with alias, for joins.
func prefixed(alias, cols string) string {
	parts := strings.Split(cols, ",")
	for i, p := range parts {
		parts[i] = alias + strings.TrimSpace(p)
	}
	return strings.Join(parts, ", ")
}

// addressJSON is the column encoding of domain.Address.
type addressJSON struct {
	Address1 string  `json:"address1"`
	Address2 *string `json:"address2,omitempty"`
	City     string  `json:"city"`
	State    string  `json:"state"`
	Zip      string  `json:"zip"`
	Country  string  `json:"country"`
}

func encodeAddress(a *domain.Address) (sql.NullString, error) {
	if a == nil {
		return sql.NullString{}, nil
	}
	raw, err := json.Marshal(addressJSON(*a))
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: string(raw), Valid: true}, nil
}

func decodeAddress(ns sql.NullString) (*domain.Address, error) {
	if !ns.Valid {
		return nil, nil
	}
	var a addressJSON
	if err := json.Unmarshal([]byte(ns.String), &a); err != nil {
		return nil, fmt.Errorf("decode address: %w", err)
	}
	addr := domain.Address(a)
	return &addr, nil
}

func encodeBirthday(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: t.Format(time.DateOnly), Valid: true}
}

func decodeBirthday(ns sql.NullString) (*time.Time, error) {
	if !ns.Valid {
		return nil, nil
	}
	t, err := time.Parse(time.DateOnly, ns.String)
	if err != nil {
		return nil, fmt.Errorf("decode birthday: %w", err)
	}
	return &t, nil
}

func scanUser(row interface{ Scan(...any) error }) (domain.User, error) {
	var (
		u                      domain.User
		first, last, phone     sql.NullString
		birthday, image, addr  sql.NullString
		totpSecret             sql.NullString
		registered, lastActive int64
		banned                 sql.NullInt64
	)
	err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.EmailConfirmed, &u.PasswordHash,
		&first, &u.FirstConfirmed, &last, &u.LastConfirmed,
		&phone, &u.PhoneConfirmed, &birthday, &u.BirthdayConfirmed,
		&image, &addr, &u.AddressConfirmed,
		&totpSecret, &u.TOTPEnabled, &u.DeviceCount,
		&u.WalletAddress, &u.CheckingBalance, &u.ColdBalance,
		&u.SybilScore, &u.TrustScore, &u.Enabled, &registered, &lastActive, &banned,
	)
	if err != nil {
		return domain.User{}, err
	}

	u.First = mapNullStringPtr(first)
	u.Last = mapNullStringPtr(last)
	u.Phone = mapNullStringPtr(phone)
	u.Image = mapNullStringPtr(image)
	u.TOTPSecret = mapNullStringPtr(totpSecret)
	u.Registered = fromMillis(registered)
	u.LastActivity = fromMillis(lastActive)
	u.Banned = mapNullMillis(banned)

	if u.Birthday, err = decodeBirthday(birthday); err != nil {
		return domain.User{}, err
	}
	if u.Address, err = decodeAddress(addr); err != nil {
		return domain.User{}, err
	}
	return u, nil
}

func (r *usersRepo) getOne(ctx context.Context, where string, arg any) (domain.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE `+where, arg))
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) list(ctx context.Context, query string, args ...any) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *usersRepo) GetUserByID(ctx context.Context, id uint64) (domain.User, error) {
	return r.getOne(ctx, `id = ?`, id)
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.getOne(ctx, `email = ?`, email)
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	return r.getOne(ctx, `username = ?`, username)
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) (uint64, error) {
	addr, err := encodeAddress(u.Address)
	if err != nil {
		return 0, err
	}

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO users (
			username, email, email_confirmed, password_hash,
			first_name, first_confirmed, last_name, last_confirmed,
			phone, phone_confirmed, birthday, birthday_confirmed,
			image, address, address_confirmed,
			totp_secret, totp_enabled, device_count,
			wallet_address, checking_balance, cold_balance,
			sybil_score, trust_score, enabled, registered_at, last_activity_at, banned_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.Username, u.Email, u.EmailConfirmed, u.PasswordHash,
		mapOptionalString(u.First), u.FirstConfirmed, mapOptionalString(u.Last), u.LastConfirmed,
		mapOptionalString(u.Phone), u.PhoneConfirmed, encodeBirthday(u.Birthday), u.BirthdayConfirmed,
		mapOptionalString(u.Image), addr, u.AddressConfirmed,
		mapOptionalString(u.TOTPSecret), u.TOTPEnabled, u.DeviceCount,
		u.WalletAddress, u.CheckingBalance, u.ColdBalance,
		u.SybilScore, u.TrustScore, u.Enabled,
		toMillis(u.Registered), toMillis(u.LastActivity), mapOptionalMillis(u.Banned),
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

func (r *usersRepo) UpdateUser(ctx context.Context, u domain.User) error {
	addr, err := encodeAddress(u.Address)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE users SET
			username = ?, email = ?, email_confirmed = ?, password_hash = ?,
			first_name = ?, first_confirmed = ?, last_name = ?, last_confirmed = ?,
			phone = ?, phone_confirmed = ?, birthday = ?, birthday_confirmed = ?,
			image = ?, address = ?, address_confirmed = ?,
			totp_secret = ?, totp_enabled = ?, device_count = ?,
			sybil_score = ?, trust_score = ?, enabled = ?, banned_at = ?,
			last_activity_at = ?
		WHERE id = ?`,
		u.Username, u.Email, u.EmailConfirmed, u.PasswordHash,
		mapOptionalString(u.First), u.FirstConfirmed, mapOptionalString(u.Last), u.LastConfirmed,
		mapOptionalString(u.Phone), u.PhoneConfirmed, encodeBirthday(u.Birthday), u.BirthdayConfirmed,
		mapOptionalString(u.Image), addr, u.AddressConfirmed,
		mapOptionalString(u.TOTPSecret), u.TOTPEnabled, u.DeviceCount,
		u.SybilScore, u.TrustScore, u.Enabled, mapOptionalMillis(u.Banned),
		toMillis(time.Now()),
		u.ID,
	)
	if err != nil {
		return mapConstraint(err)
	}
	return requireAffected(res, nil)
}

func (r *usersRepo) AdjustBalance(ctx context.Context, id uint64, delta int64) error {
	return requireAffected(r.db.ExecContext(ctx,
		`UPDATE users SET checking_balance = checking_balance + ? WHERE id = ?`, delta, id))
}

func (r *usersRepo) TouchActivity(ctx context.Context, id uint64) error {
	return requireAffected(r.db.ExecContext(ctx,
		`UPDATE users SET last_activity_at = ? WHERE id = ?`, toMillis(time.Now()), id))
}

func (r *usersRepo) DeleteUser(ctx context.Context, id uint64) error {
	return requireAffected(r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id))
}

func (r *usersRepo) ListUsers(ctx context.Context) ([]domain.User, error) {
	return r.list(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
}

func (r *usersRepo) RandomUsers(ctx context.Context, exclude uint64, limit int) ([]domain.User, error) {
	return r.list(ctx,
		`SELECT `+userColumns+` FROM users
		 WHERE id != ? AND enabled = 1 AND banned_at IS NULL
		 ORDER BY RANDOM() LIMIT ?`, exclude, limit)
}
