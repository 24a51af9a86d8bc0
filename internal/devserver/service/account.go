package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"time"

	"github.com/fractalglobal/fgc/internal/devserver/domain"
	"github.com/fractalglobal/fgc/internal/devserver/store"
	"github.com/fractalglobal/fgc/pkg/cryptox"
	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

const (
	MinPasswordLen  = 8
	MaxRandomSearch = 50

	// CodeTimestampWindow bounds how far an authenticator timestamp may be
	// from the server clock.
	CodeTimestampWindow = 5 * time.Minute
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]{3,32}$`)

// UserUpdate is a partial update; nil fields are left unchanged.
type UserUpdate struct {
	Username    *string
	Email       *string
	First       *string
	Last        *string
	OldPassword *string
	NewPassword *string
	Phone       *string
	Birthday    *time.Time
	Image       *string
	Address     *domain.Address
}

type AccountService struct {
	Store  store.Store
	Hasher cryptox.PasswordHasher
	Mailer Mailer

	// Issuer names the service in authenticator apps.
	Issuer string

	// InitialBalance is credited to every new account, in thousandths.
	InitialBalance int64

	// KeyTTL is the lifetime of confirmation and reset keys.
	KeyTTL time.Duration
}

func notFound(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

func validatePassword(password string) error {
	if len(password) < MinPasswordLen {
		return ErrWeakPassword
	}
	return nil
}

func normalizeEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", ErrInvalidEmail
	}
	return email, nil
}

// Register creates an account with a fresh wallet and sends an email
// confirmation key.
func (s *AccountService) Register(ctx context.Context, username, password, email string) (uint64, error) {
	username = strings.TrimSpace(username)
	if !usernamePattern.MatchString(username) {
		return 0, ErrInvalidUsername
	}
	if err := validatePassword(password); err != nil {
		return 0, err
	}
	email, err := normalizeEmail(email)
	if err != nil {
		return 0, err
	}

	hash, err := s.Hasher.Hash(password)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}
	wallet, err := cryptox.GenerateHex(16)
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	u := domain.User{
		Username:        username,
		Email:           email,
		PasswordHash:    hash,
		WalletAddress:   "fg" + wallet,
		CheckingBalance: s.InitialBalance,
		Enabled:         true,
		Registered:      now,
		LastActivity:    now,
	}

	var key string
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Users().GetUserByUsername(ctx, username); err == nil {
			return ErrUsernameTaken
		} else if !errors.Is(err, store.ErrNotFound) {
			return err
		}
		if _, err := tx.Users().GetUserByEmail(ctx, email); err == nil {
			return ErrEmailTaken
		} else if !errors.Is(err, store.ErrNotFound) {
			return err
		}

		id, err := tx.Users().CreateUser(ctx, u)
		if err != nil {
			return err
		}
		u.ID = id

		key, err = s.createKey(ctx, tx, id, domain.KeyConfirmEmail)
		return err
	})
	if err != nil {
		return 0, err
	}

	return u.ID, s.Mailer.SendEmailKey(ctx, u.Email, domain.KeyConfirmEmail, key)
}

func (s *AccountService) createKey(ctx context.Context, st store.Store, userID uint64, purpose domain.KeyPurpose) (string, error) {
	key, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return "", err
	}

	ttl := s.KeyTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	err = st.EmailKeys().CreateKey(ctx, domain.EmailKey{
		Fingerprint: cryptox.FingerprintToken(key),
		UserID:      userID,
		Purpose:     purpose,
		ExpiresAt:   time.Now().Add(ttl),
	})
	if err != nil {
		return "", err
	}
	return key, nil
}

func (s *AccountService) sendKey(ctx context.Context, u domain.User, purpose domain.KeyPurpose) error {
	key, err := s.createKey(ctx, s.Store, u.ID, purpose)
	if err != nil {
		return err
	}
	return s.Mailer.SendEmailKey(ctx, u.Email, purpose, key)
}

func (s *AccountService) ResendConfirmation(ctx context.Context, userID uint64) error {
	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return notFound(err)
	}
	if u.EmailConfirmed {
		return ErrAlreadyConfirmed
	}
	return s.sendKey(ctx, u, domain.KeyConfirmEmail)
}

func (s *AccountService) ConfirmEmail(ctx context.Context, key string) error {
	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		k, err := tx.EmailKeys().ConsumeKey(ctx, cryptox.FingerprintToken(key), domain.KeyConfirmEmail)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInvalidKey
			}
			return err
		}

		u, err := tx.Users().GetUserByID(ctx, k.UserID)
		if err != nil {
			return notFound(err)
		}
		u.EmailConfirmed = true
		return tx.Users().UpdateUser(ctx, u)
	})
}

// StartResetPassword mails a reset key when username and email belong to
// the same account.
func (s *AccountService) StartResetPassword(ctx context.Context, username, email string) error {
	u, err := s.Store.Users().GetUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return notFound(err)
	}
	if !strings.EqualFold(u.Email, strings.TrimSpace(email)) {
		return ErrNotFound
	}
	return s.sendKey(ctx, u, domain.KeyResetPassword)
}

func (s *AccountService) ResetPassword(ctx context.Context, key, newPassword string) error {
	if err := validatePassword(newPassword); err != nil {
		return err
	}
	hash, err := s.Hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		k, err := tx.EmailKeys().ConsumeKey(ctx, cryptox.FingerprintToken(key), domain.KeyResetPassword)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInvalidKey
			}
			return err
		}

		u, err := tx.Users().GetUserByID(ctx, k.UserID)
		if err != nil {
			return notFound(err)
		}
		u.PasswordHash = hash
		return tx.Users().UpdateUser(ctx, u)
	})
}

func (s *AccountService) Subscribe(ctx context.Context, email string) error {
	email, err := normalizeEmail(email)
	if err != nil {
		return err
	}
	if err := s.Store.Subscriptions().Subscribe(ctx, email); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return ErrAlreadySubscribed
		}
		return err
	}
	return nil
}

func (s *AccountService) GetUser(ctx context.Context, id uint64) (domain.User, error) {
	u, err := s.Store.Users().GetUserByID(ctx, id)
	return u, notFound(err)
}

func (s *AccountService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.Store.Users().ListUsers(ctx)
}

func (s *AccountService) DeleteUser(ctx context.Context, id uint64) error {
	return notFound(s.Store.Users().DeleteUser(ctx, id))
}

// RandomProfiles returns up to count users other than exclude, capped at
// MaxRandomSearch.
func (s *AccountService) RandomProfiles(ctx context.Context, exclude uint64, count int) ([]domain.User, error) {
	if count <= 0 {
		return nil, nil
	}
	return s.Store.Users().RandomUsers(ctx, exclude, min(count, MaxRandomSearch))
}

// SetEmailConfirmed is the admin override of the email confirmation flag.
func (s *AccountService) SetEmailConfirmed(ctx context.Context, id uint64, confirmed bool) error {
	u, err := s.Store.Users().GetUserByID(ctx, id)
	if err != nil {
		return notFound(err)
	}
	u.EmailConfirmed = confirmed
	return s.Store.Users().UpdateUser(ctx, u)
}

// UpdateUser applies upd to user id. self reports whether the caller is the
// user, which password changes require. Changed attributes lose their
// confirmation; a new email address is sent a confirmation key.
func (s *AccountService) UpdateUser(ctx context.Context, id uint64, self bool, upd UserUpdate) error {
	var sendConfirm bool

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		u, err := tx.Users().GetUserByID(ctx, id)
		if err != nil {
			return notFound(err)
		}

		if upd.NewPassword != nil {
			if !self {
				return ErrPasswordOwner
			}
			if upd.OldPassword == nil || s.Hasher.Verify(*upd.OldPassword, u.PasswordHash) != nil {
				return ErrWrongPassword
			}
			if err := validatePassword(*upd.NewPassword); err != nil {
				return err
			}
			if u.PasswordHash, err = s.Hasher.Hash(*upd.NewPassword); err != nil {
				return fmt.Errorf("hash password: %w", err)
			}
		}

		if upd.Username != nil && *upd.Username != u.Username {
			name := strings.TrimSpace(*upd.Username)
			if !usernamePattern.MatchString(name) {
				return ErrInvalidUsername
			}
			u.Username = name
		}

		if upd.Email != nil && !strings.EqualFold(*upd.Email, u.Email) {
			email, err := normalizeEmail(*upd.Email)
			if err != nil {
				return err
			}
			u.Email = email
			u.EmailConfirmed = false
			sendConfirm = true
		}

		if upd.First != nil {
			u.First, u.FirstConfirmed = upd.First, false
		}
		if upd.Last != nil {
			u.Last, u.LastConfirmed = upd.Last, false
		}
		if upd.Phone != nil {
			u.Phone, u.PhoneConfirmed = upd.Phone, false
		}
		if upd.Birthday != nil {
			u.Birthday, u.BirthdayConfirmed = upd.Birthday, false
		}
		if upd.Image != nil {
			u.Image = upd.Image
		}
		if upd.Address != nil {
			u.Address, u.AddressConfirmed = upd.Address, false
		}

		if err := tx.Users().UpdateUser(ctx, u); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				if upd.Email != nil && sendConfirm {
					return ErrEmailTaken
				}
				return ErrUsernameTaken
			}
			return err
		}
		return nil
	})
	if err != nil || !sendConfirm {
		return err
	}

	u, err := s.Store.Users().GetUserByID(ctx, id)
	if err != nil {
		return notFound(err)
	}
	return s.sendKey(ctx, u, domain.KeyConfirmEmail)
}

// GenerateAuthenticator provisions a new TOTP secret for the user and
// returns its otpauth URL. Two-factor stays disabled until Authenticate
// verifies a code.
func (s *AccountService) GenerateAuthenticator(ctx context.Context, id uint64) (string, error) {
	u, err := s.Store.Users().GetUserByID(ctx, id)
	if err != nil {
		return "", notFound(err)
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      s.Issuer,
		AccountName: u.Email,
	})
	if err != nil {
		return "", fmt.Errorf("generate totp: %w", err)
	}

	secret := key.Secret()
	u.TOTPSecret = &secret
	u.TOTPEnabled = false
	if err := s.Store.Users().UpdateUser(ctx, u); err != nil {
		return "", err
	}
	return key.URL(), nil
}

// Authenticate verifies a code read from the authenticator at the given
// client time.
func (s *AccountService) Authenticate(ctx context.Context, id uint64, code uint32, at time.Time) error {
	if d := time.Since(at); d > CodeTimestampWindow || d < -CodeTimestampWindow {
		return ErrStaleCode
	}

	u, err := s.Store.Users().GetUserByID(ctx, id)
	if err != nil {
		return notFound(err)
	}
	if u.TOTPSecret == nil {
		return ErrNoAuthenticator
	}

	ok, err := totp.ValidateCustom(fmt.Sprintf("%06d", code), *u.TOTPSecret, at.UTC(), totp.ValidateOpts{
		Period:    30,
		Skew:      1,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	})
	if err != nil || !ok {
		return ErrInvalidCode
	}

	if !u.TOTPEnabled {
		u.TOTPEnabled = true
		u.DeviceCount = max(u.DeviceCount, 1)
	}
	return s.Store.Users().UpdateUser(ctx, u)
}
