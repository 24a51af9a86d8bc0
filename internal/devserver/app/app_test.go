package app

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fractalglobal/fgc/pkg/fractalsdk"
	"github.com/fractalglobal/fgc/pkg/slogx"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("FRACTAL_ADDR", "127.0.0.1:9999")
	t.Setenv("FRACTAL_INITIAL_BALANCE", "25")
	t.Setenv("FRACTAL_ACCESS_TTL", "15")
	t.Setenv("FRACTAL_REMEMBER_TTL", "not a duration")
	t.Setenv("FRACTAL_ADMIN_APP_ID", "admin-app")

	cfg := LoadConfig()
	require.Equal(t, "127.0.0.1:9999", cfg.Addr)
	require.Equal(t, fractalsdk.Credits(25), cfg.InitialBalance)
	require.Equal(t, 15*time.Minute, cfg.AccessTTL)
	require.Equal(t, 30*24*time.Hour, cfg.RememberTTL)
	require.Equal(t, "admin-app", cfg.AdminClient.ID)
	require.Empty(t, cfg.AdminClient.Secret)
	require.Equal(t, "fractal-devserver", cfg.Issuer)
	require.Equal(t, "fractal.db", cfg.DatabaseFile)
}

func testConfig() Config {
	return Config{
		Addr:                "127.0.0.1:0",
		Issuer:              "fractal-test",
		DatabaseFile:        ":memory:",
		AccessTTL:           time.Hour,
		ShutdownGracePeriod: time.Second,
	}
}

func TestNewSeedsBootstrapClients(t *testing.T) {
	t.Parallel()

	app, err := NewWithLogger(testConfig(), slogx.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	seeded := app.BootstrapClients()
	require.Len(t, seeded, 2)
	require.Equal(t, []string{"admin"}, seeded[0].Client.Scopes)
	require.Equal(t, []string{"public"}, seeded[1].Client.Scopes)
	require.True(t, seeded[0].Client.Protected)

	srv := httptest.NewServer(app.Handler())
	defer srv.Close()

	client := fractalsdk.NewClientWithURL(srv.URL)
	tok, err := client.Token(context.Background(), seeded[0].Client.ID, seeded[0].Secret)
	require.NoError(t, err)
	require.True(t, tok.IsAdmin())
}

func TestPersistentStateSurvivesRestart(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := testConfig()
	cfg.DatabaseFile = filepath.Join(dir, "fractal.db")
	cfg.SigningKeyFile = filepath.Join(dir, "signing.pem")

	first, err := NewWithLogger(cfg, slogx.Discard())
	require.NoError(t, err)
	require.Len(t, first.BootstrapClients(), 2)
	kid := first.keys.Signer.KID()
	require.NoError(t, first.Close())

	second, err := NewWithLogger(cfg, slogx.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { _ = second.Close() })

	require.Empty(t, second.BootstrapClients())
	require.Equal(t, kid, second.keys.Signer.KID())
}

func TestRunStopsOnCancel(t *testing.T) {
	t.Parallel()

	app, err := NewWithLogger(testConfig(), slogx.Discard())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
