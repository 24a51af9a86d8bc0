// Package cli implements the fractal command line tool on top of the SDK.
package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/fractalglobal/fgc/internal/cli/config"
	"github.com/fractalglobal/fgc/pkg/fractalsdk"
	"github.com/fractalglobal/fgc/pkg/slogx"
)

var (
	errNoAppCredentials  = errors.New("app id and secret are required (config, FRACTAL_APP_ID/FRACTAL_SECRET)")
	errNoUserCredentials = errors.New("--email and --password are required (or FRACTAL_EMAIL/FRACTAL_PASSWORD)")
)

// app is the state shared by every command of one invocation.
type app struct {
	version string
	getenv  func(string) string

	// global flags
	configPath string
	baseURL    string
	dev        bool
	verbose    bool
	timeout    time.Duration
	output     string
	email      string
	password   string

	cfg    *config.Config
	client *fractalsdk.Client
}

// NewRootCmd builds the fractal command tree.
func NewRootCmd(version string) *cobra.Command {
	return newRootCmd(&app{version: version, getenv: os.Getenv})
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fractal",
		Short: "Fractal Global Credits API client",
		Long: `Command line client for the Fractal Global Credits API.

Application credentials come from the config file or FRACTAL_APP_ID and
FRACTAL_SECRET. User commands log in with --email and --password.

Examples:
  fractal token
  fractal --dev me --email alice@example.com
  fractal tx send --to 42 --wallet fg0123... --amount 12.5
  fractal --base-url http://localhost:8080 users --output json
`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	f := cmd.PersistentFlags()
	f.StringVar(&a.configPath, "config", config.DefaultPath(), "Config file")
	f.StringVar(&a.baseURL, "base-url", "", "API base URL (overrides --dev and the config file)")
	f.BoolVar(&a.dev, "dev", false, "Use the development API")
	f.BoolVarP(&a.verbose, "verbose", "v", false, "Log every HTTP request to stderr")
	f.DurationVar(&a.timeout, "timeout", fractalsdk.DefaultTimeout, "Per-request timeout")
	f.StringVarP(&a.output, "output", "o", config.OutputText, "Output format (text, json)")
	f.StringVar(&a.email, "email", "", "User email for user commands")
	f.StringVar(&a.password, "password", "", "User password for user commands")

	cmd.AddCommand(
		a.tokenCmd(),
		a.createClientCmd(),
		a.registerCmd(),
		a.meCmd(),
		a.userCmd(),
		a.usersCmd(),
		a.txCmd(),
		a.friendsCmd(),
		a.versionCmd(),
	)
	return cmd
}

// setup merges file, environment and flags, then builds the SDK client.
func (a *app) setup(cmd *cobra.Command) error {
	flags := cmd.Flags()

	cfg, err := config.Load(a.configPath, flags.Changed("config"))
	if err != nil {
		return err
	}
	cfg.ApplyEnv(a.getenv)

	if flags.Changed("base-url") {
		cfg.BaseURL = a.baseURL
	} else if a.dev {
		cfg.BaseURL = fractalsdk.DevelopmentURL
	}
	if flags.Changed("timeout") || cfg.Timeout == 0 {
		cfg.Timeout = a.timeout
	}
	if flags.Changed("output") || cfg.Output == "" {
		cfg.Output = a.output
	}
	if flags.Changed("email") {
		cfg.Email = a.email
	}
	if flags.Changed("password") {
		cfg.Password = a.password
	}
	if err := cfg.Validate(); err != nil {
		return &config.ConfigError{Path: a.configPath, Err: err}
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = fractalsdk.ProductionURL
	}
	a.cfg = cfg

	opts := []fractalsdk.Option{
		fractalsdk.WithTimeout(cfg.Timeout),
		fractalsdk.WithUserAgent("fractal-cli/" + a.version),
		fractalsdk.WithRateLimit(cfg.RateLimit),
	}
	if a.verbose {
		logger := slogx.New(slogx.Config{
			Service: "fractal-cli",
			Version: a.version,
			Level:   "debug",
			Format:  "text",
			Writer:  cmd.ErrOrStderr(),
		})
		opts = append(opts, fractalsdk.WithTransport(slogx.NewTransport(logger, http.DefaultTransport)))
	}
	a.client = fractalsdk.NewClientWithURL(cfg.BaseURL, opts...)
	return nil
}

func (a *app) appToken(ctx context.Context) (*fractalsdk.AccessToken, error) {
	if a.cfg.AppID == "" || a.cfg.Secret == "" {
		return nil, errNoAppCredentials
	}
	tok, err := a.client.Token(ctx, a.cfg.AppID, a.cfg.Secret)
	if err != nil {
		return nil, fmt.Errorf("app token: %w", err)
	}
	return tok, nil
}

func (a *app) userToken(ctx context.Context) (*fractalsdk.AccessToken, error) {
	if a.cfg.Email == "" || a.cfg.Password == "" {
		return nil, errNoUserCredentials
	}
	appTok, err := a.appToken(ctx)
	if err != nil {
		return nil, err
	}
	tok, err := a.client.Login(ctx, appTok, a.cfg.Email, a.cfg.Password, false)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	return tok, nil
}

// anyToken logs in when user credentials are configured and falls back to
// the application token otherwise.
func (a *app) anyToken(ctx context.Context) (*fractalsdk.AccessToken, error) {
	if a.cfg.Email != "" {
		return a.userToken(ctx)
	}
	return a.appToken(ctx)
}
