package service

import (
	"context"
	"sync"
	"testing"

	"github.com/fractalglobal/fgc/internal/devserver/domain"
	"github.com/fractalglobal/fgc/internal/devserver/store/drivers/sqlite"
	"github.com/fractalglobal/fgc/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

var testHasher = cryptox.PasswordHasher{Pepper: "test-pepper"}

type sentKey struct {
	To      string
	Purpose domain.KeyPurpose
	Key     string
}

// captureMailer records every key instead of delivering it.
type captureMailer struct {
	mu   sync.Mutex
	sent []sentKey
}

func (m *captureMailer) SendEmailKey(_ context.Context, to string, purpose domain.KeyPurpose, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentKey{To: to, Purpose: purpose, Key: key})
	return nil
}

func (m *captureMailer) last(t *testing.T) sentKey {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	require.NotEmpty(t, m.sent, "no key was sent")
	return m.sent[len(m.sent)-1]
}

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	s, err := sqlite.NewMemoryStore()
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func newAccountService(t *testing.T) (*AccountService, *captureMailer) {
	t.Helper()
	mailer := &captureMailer{}
	return &AccountService{
		Store:          newTestStore(t),
		Hasher:         testHasher,
		Mailer:         mailer,
		Issuer:         "Fractal Test",
		InitialBalance: 100_000,
	}, mailer
}

func register(t *testing.T, s *AccountService, username string) domain.User {
	t.Helper()
	ctx := context.Background()
	id, err := s.Register(ctx, username, "password123", username+"@example.com")
	require.NoError(t, err)
	u, err := s.GetUser(ctx, id)
	require.NoError(t, err)
	return u
}
