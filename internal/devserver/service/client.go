package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/fractalglobal/fgc/internal/devserver/domain"
	"github.com/fractalglobal/fgc/internal/devserver/store"
	"github.com/fractalglobal/fgc/pkg/cryptox"
	"github.com/fractalglobal/fgc/pkg/fractalsdk"
	"github.com/fractalglobal/fgc/pkg/idx"
	"github.com/fractalglobal/fgc/pkg/slogx"
)

// CreatedClient is a client together with its plaintext secret, which is
// only ever available at creation time.
type CreatedClient struct {
	Client domain.Client
	Secret string
}

// BootstrapClient pins the credentials of a seeded client. Empty fields are
// generated.
type BootstrapClient struct {
	ID     string
	Secret string
}

type ClientService struct {
	Store  store.Store
	Hasher cryptox.PasswordHasher

	limits sync.Map // app id -> int
}

// CreateClient registers an application. User scopes cannot be granted to
// clients; they only appear in tokens issued by login.
func (s *ClientService) CreateClient(ctx context.Context, name string, scopes []string, requestLimit uint32) (*CreatedClient, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, rejectf("client name is required")
	}

	parsed, err := fractalsdk.ParseScopes(scopes)
	if err != nil || len(parsed) == 0 {
		return nil, ErrInvalidScope
	}
	for _, sc := range parsed {
		if sc.Kind() == fractalsdk.ScopeUser {
			return nil, ErrInvalidScope
		}
	}

	return s.create(ctx, s.Store, domain.Client{
		ID:           idx.New().String(),
		Name:         name,
		Scopes:       fractalsdk.ScopeStrings(parsed),
		RequestLimit: requestLimit,
	}, "")
}

func (s *ClientService) create(ctx context.Context, st store.Store, c domain.Client, secret string) (*CreatedClient, error) {
	if secret == "" {
		var err error
		if secret, err = cryptox.GenerateSecret(); err != nil {
			return nil, err
		}
	}

	hash, err := s.Hasher.Hash(secret)
	if err != nil {
		return nil, fmt.Errorf("hash client secret: %w", err)
	}
	c.SecretHash = hash
	c.CreatedAt = time.Now().UTC()

	if err := st.Clients().CreateClient(ctx, c); err != nil {
		return nil, err
	}
	return &CreatedClient{Client: c, Secret: secret}, nil
}

// EnsureBootstrapClients seeds an admin client and a public client when the
// store has no clients yet. The returned slice is empty when nothing was
// seeded.
func (s *ClientService) EnsureBootstrapClients(ctx context.Context, admin, public BootstrapClient) ([]CreatedClient, error) {
	l := slogx.FromContext(ctx)

	var created []CreatedClient
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		empty, err := tx.Clients().IsEmpty(ctx)
		if err != nil || !empty {
			return err
		}

		seeds := []struct {
			pin    BootstrapClient
			name   string
			scopes []fractalsdk.Scope
		}{
			{admin, "admin", []fractalsdk.Scope{fractalsdk.AdminScope}},
			{public, "public", []fractalsdk.Scope{fractalsdk.PublicScope}},
		}

		for _, seed := range seeds {
			id := seed.pin.ID
			if id == "" {
				id = idx.New().String()
			}
			c, err := s.create(ctx, tx, domain.Client{
				ID:        id,
				Name:      seed.name,
				Scopes:    fractalsdk.ScopeStrings(seed.scopes),
				Protected: true,
			}, seed.pin.Secret)
			if err != nil {
				return fmt.Errorf("seed %s client: %w", seed.name, err)
			}
			created = append(created, *c)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, c := range created {
		l.Info("bootstrap client created",
			slog.String("name", c.Client.Name),
			slog.String("app_id", c.Client.ID),
			slog.String("secret", c.Secret),
		)
	}
	return created, nil
}

// RequestLimit returns the hourly request allowance of appID, zero meaning
// unlimited. Unknown apps are unlimited; authentication rejects them first.
func (s *ClientService) RequestLimit(appID string) int {
	if v, ok := s.limits.Load(appID); ok {
		return v.(int)
	}

	c, err := s.Store.Clients().GetClientByID(context.Background(), appID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			slog.Default().Warn("request limit lookup failed", slog.String("app_id", appID), slog.Any("error", err))
		}
		return 0
	}

	limit := int(c.RequestLimit)
	s.limits.Store(appID, limit)
	return limit
}
