package cli

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fractalglobal/fgc/internal/cli/config"
	devapp "github.com/fractalglobal/fgc/internal/devserver/app"
	"github.com/fractalglobal/fgc/internal/devserver/service"
	"github.com/fractalglobal/fgc/pkg/fractalsdk"
	"github.com/fractalglobal/fgc/pkg/slogx"
)

var adminSecret = base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{'k'}, fractalsdk.SecretLen))

type harness struct {
	url        string
	configPath string
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	application, err := devapp.NewWithLogger(devapp.Config{
		Issuer:         "fractal-test",
		DatabaseFile:   ":memory:",
		InitialBalance: fractalsdk.Credits(50),
		AccessTTL:      time.Hour,
		AdminClient:    service.BootstrapClient{ID: "cli-admin", Secret: adminSecret},
	}, slogx.Discard())
	require.NoError(t, err)

	srv := httptest.NewServer(application.Handler())
	t.Cleanup(func() {
		srv.Close()
		_ = application.Close()
	})

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("timeout: 5s\n"), 0o600))
	return &harness{url: srv.URL, configPath: path}
}

// run executes the CLI with admin app credentials in the environment.
func (h *harness) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return h.runAs(t, "cli-admin", adminSecret, args...)
}

func (h *harness) runAs(t *testing.T, appID, secret string, args ...string) (string, error) {
	t.Helper()

	env := map[string]string{
		"FRACTAL_APP_ID": appID,
		"FRACTAL_SECRET": secret,
	}
	cmd := newRootCmd(&app{version: "test", getenv: func(k string) string { return env[k] }})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--config", h.configPath, "--base-url", h.url}, args...))

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestVersion(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	out, err := h.run(t, "version")
	require.NoError(t, err)
	require.Equal(t, "fractal test\n", out)
}

func TestTokenCommand(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	out, err := h.run(t, "token", "--output", "json")
	require.NoError(t, err)

	var dto fractalsdk.AccessTokenDTO
	require.NoError(t, json.Unmarshal([]byte(out), &dto))
	require.Equal(t, "cli-admin", dto.AppID)
	require.Equal(t, []string{"admin"}, dto.Scopes)
	require.NotEmpty(t, dto.AccessToken)

	out, err = h.run(t, "token")
	require.NoError(t, err)
	require.Contains(t, out, "scopes")
	require.Contains(t, out, "admin")
}

func TestUserCommands(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	// registration and login need a public client
	out, err := h.run(t, "create-client", "--name", "mobile", "--scope", "public", "--output", "json")
	require.NoError(t, err)
	var info fractalsdk.ClientInfoDTO
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	require.Equal(t, []string{"public"}, info.Scopes)

	public := func(args ...string) (string, error) {
		return h.runAs(t, info.ID, info.Secret, args...)
	}

	login := []string{"--email", "alice@example.com", "--password", "correct horse"}

	_, err = public(append([]string{"register", "--username", "alice"}, login...)...)
	require.NoError(t, err)
	_, err = public(append([]string{"register", "--username", "bob"},
		"--email", "bob@example.com", "--password", "correct horse")...)
	require.NoError(t, err)

	out, err = public(append([]string{"me"}, login...)...)
	require.NoError(t, err)
	require.Contains(t, out, "alice@example.com")
	require.Contains(t, out, "50.000")

	out, err = h.run(t, "users")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	require.Contains(t, lines[0], "USERNAME")

	out, err = h.run(t, "users", "--output", "json")
	require.NoError(t, err)
	var users []fractalsdk.UserDTO
	require.NoError(t, json.Unmarshal([]byte(out), &users))
	require.Len(t, users, 2)

	var bob fractalsdk.UserDTO
	for _, u := range users {
		if u.Username == "bob" {
			bob = u
		}
	}

	out, err = public(append([]string{"tx", "send",
		"--to", strconv.FormatUint(bob.ID, 10),
		"--wallet", string(bob.WalletAddresses[0]),
		"--amount", "7.25"}, login...)...)
	require.NoError(t, err)
	require.Contains(t, out, "7.250")

	out, err = h.run(t, "tx", "list", "--output", "json")
	require.NoError(t, err)
	var txs []fractalsdk.TransactionDTO
	require.NoError(t, json.Unmarshal([]byte(out), &txs))
	require.Len(t, txs, 1)
	require.Equal(t, fractalsdk.Amount(7250), txs[0].Amount)

	_, err = public(append([]string{"friends", "list"}, login...)...)
	require.NoError(t, err)
}

func TestCommandErrors(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	t.Run("user command without login", func(t *testing.T) {
		_, err := h.run(t, "me")
		require.ErrorIs(t, err, errNoUserCredentials)
	})

	t.Run("bad output", func(t *testing.T) {
		_, err := h.run(t, "users", "--output", "xml")
		require.ErrorIs(t, err, config.ErrConfigFailed)
	})

	t.Run("explicit config must exist", func(t *testing.T) {
		cmd := newRootCmd(&app{version: "test", getenv: func(string) string { return "" }})
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml"), "version"})
		err := cmd.Execute()
		require.ErrorIs(t, err, config.ErrConfigFailed)
	})

	t.Run("invalid id", func(t *testing.T) {
		_, err := h.run(t, "user", "get", "alice")
		require.ErrorContains(t, err, "invalid id")
	})

	t.Run("server rejection surfaces", func(t *testing.T) {
		_, err := h.run(t, "user", "get", "404")
		require.ErrorIs(t, err, fractalsdk.ErrNotFound)
	})
}
