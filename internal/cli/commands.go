package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/fractalglobal/fgc/pkg/fractalsdk"
)

func parseID(s string) (uint64, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

func u64(v uint64) string { return strconv.FormatUint(v, 10) }

func (a *app) tokenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "token",
		Short: "Request an application token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tok, err := a.appToken(cmd.Context())
			if err != nil {
				return err
			}
			scopes := fractalsdk.ScopeStrings(tok.Scopes())
			dto := fractalsdk.AccessTokenDTO{
				AppID:       tok.AppID(),
				Scopes:      scopes,
				AccessToken: tok.Token(),
				TokenType:   "Bearer",
				Expiration:  int64(time.Until(tok.Expiration()).Seconds()),
			}
			return a.printer(cmd.OutOrStdout()).fields(dto,
				"app_id", tok.AppID(),
				"scopes", strings.Join(scopes, " "),
				"expires", tok.Expiration().Format(time.RFC3339),
				"token", tok.Token(),
			)
		},
	}
}

func (a *app) createClientCmd() *cobra.Command {
	var (
		name         string
		scopes       []string
		requestLimit uint32
	)

	cmd := &cobra.Command{
		Use:   "create-client",
		Short: "Register a new application (admin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := fractalsdk.ParseScopes(scopes)
			if err != nil {
				return err
			}
			tok, err := a.appToken(cmd.Context())
			if err != nil {
				return err
			}
			info, err := a.client.CreateClient(cmd.Context(), tok, name, parsed, requestLimit)
			if err != nil {
				return err
			}
			return a.printer(cmd.OutOrStdout()).fields(info.DTO(),
				"id", info.ID,
				"name", info.Name,
				"secret", info.Secret,
				"scopes", strings.Join(fractalsdk.ScopeStrings(info.Scopes), " "),
				"request_limit", strconv.FormatUint(uint64(info.RequestLimit), 10),
			)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Application name")
	cmd.Flags().StringSliceVar(&scopes, "scope", []string{"public"}, "Granted scope (repeatable)")
	cmd.Flags().Uint32Var(&requestLimit, "request-limit", 0, "Requests per hour, 0 for unlimited")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func (a *app) registerCmd() *cobra.Command {
	var username string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a user account with --email and --password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.Email == "" || a.cfg.Password == "" {
				return errNoUserCredentials
			}
			tok, err := a.appToken(cmd.Context())
			if err != nil {
				return err
			}
			if err := a.client.Register(cmd.Context(), tok, username, a.cfg.Password, a.cfg.Email); err != nil {
				return err
			}
			msg := fractalsdk.ResponseDTO{Message: "registered " + username}
			return a.printer(cmd.OutOrStdout()).fields(msg, "registered", username)
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Username")
	_ = cmd.MarkFlagRequired("username")
	return cmd
}

func (a *app) meCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the logged in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tok, err := a.userToken(cmd.Context())
			if err != nil {
				return err
			}
			u, err := a.client.GetMe(cmd.Context(), tok)
			if err != nil {
				return err
			}
			return a.printUser(cmd, u)
		},
	}
}

func (a *app) printUser(cmd *cobra.Command, u fractalsdk.User) error {
	wallets := make([]string, len(u.WalletAddresses))
	for i, w := range u.WalletAddresses {
		wallets[i] = string(w)
	}
	return a.printer(cmd.OutOrStdout()).fields(u.DTO(),
		"id", u64(u.ID),
		"username", u.Username,
		"name", u.DisplayName(),
		"email", u.Email.Value,
		"email_confirmed", strconv.FormatBool(u.Email.Confirmed),
		"wallets", strings.Join(wallets, " "),
		"checking_balance", u.CheckingBalance.String(),
		"cold_balance", u.ColdBalance.String(),
		"trust_score", strconv.Itoa(int(u.TrustScore)),
		"registered", u.Registered.Format(time.RFC3339),
	)
}

func (a *app) userCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Inspect users",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "get <id>",
		Short: "Show a user (admin app or the user's own login)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			tok, err := a.anyToken(cmd.Context())
			if err != nil {
				return err
			}
			u, err := a.client.GetUser(cmd.Context(), tok, id)
			if err != nil {
				return err
			}
			return a.printUser(cmd, u)
		},
	})
	return cmd
}

func (a *app) usersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List every user (admin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tok, err := a.appToken(cmd.Context())
			if err != nil {
				return err
			}
			users, err := a.client.GetAllUsers(cmd.Context(), tok)
			if err != nil {
				return err
			}

			dtos := make([]fractalsdk.UserDTO, len(users))
			rows := make([][]string, len(users))
			for i, u := range users {
				dtos[i] = u.DTO()
				rows[i] = []string{u64(u.ID), u.Username, u.Email.Value, u.CheckingBalance.String()}
			}
			return a.printer(cmd.OutOrStdout()).print(dtos,
				[]string{"ID", "USERNAME", "EMAIL", "BALANCE"}, rows)
		},
	}
}

func (a *app) txCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Credit transactions",
	}
	cmd.AddCommand(a.txGetCmd(), a.txSendCmd(), a.txListCmd())
	return cmd
}

func transactionRows(txs []fractalsdk.Transaction) ([]fractalsdk.TransactionDTO, [][]string) {
	dtos := make([]fractalsdk.TransactionDTO, len(txs))
	rows := make([][]string, len(txs))
	for i, t := range txs {
		dtos[i] = t.DTO()
		rows[i] = []string{
			u64(t.ID), u64(t.OriginUser), u64(t.DestinationUser),
			t.Amount.String(), t.Timestamp.Format(time.RFC3339),
		}
	}
	return dtos, rows
}

var transactionHeader = []string{"ID", "FROM", "TO", "AMOUNT", "TIME"}

func (a *app) txGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			tok, err := a.anyToken(cmd.Context())
			if err != nil {
				return err
			}
			t, err := a.client.GetTransaction(cmd.Context(), tok, id)
			if err != nil {
				return err
			}
			dtos, rows := transactionRows([]fractalsdk.Transaction{t})
			return a.printer(cmd.OutOrStdout()).print(dtos[0], transactionHeader, rows)
		},
	}
}

func (a *app) txSendCmd() *cobra.Command {
	var (
		to     uint64
		wallet string
		amount string
	)

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send credits from the logged in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			amt, err := fractalsdk.ParseAmount(amount)
			if err != nil {
				return err
			}
			addr := fractalsdk.WalletAddress(wallet)
			if err := addr.Validate(); err != nil {
				return err
			}
			tok, err := a.userToken(cmd.Context())
			if err != nil {
				return err
			}
			if err := a.client.NewTransaction(cmd.Context(), tok, addr, to, amt); err != nil {
				return err
			}
			msg := fractalsdk.ResponseDTO{Message: "sent " + amt.String()}
			return a.printer(cmd.OutOrStdout()).fields(msg, "sent", amt.String(), "to", u64(to))
		},
	}

	cmd.Flags().Uint64Var(&to, "to", 0, "Destination user id")
	cmd.Flags().StringVar(&wallet, "wallet", "", "Destination wallet address")
	cmd.Flags().StringVar(&amount, "amount", "", "Amount in credits, e.g. 12.5")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("wallet")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func (a *app) txListCmd() *cobra.Command {
	var since uint64

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions after --since (admin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tok, err := a.appToken(cmd.Context())
			if err != nil {
				return err
			}
			txs, err := a.client.GetAllTransactions(cmd.Context(), tok, since)
			if err != nil {
				return err
			}
			dtos, rows := transactionRows(txs)
			return a.printer(cmd.OutOrStdout()).print(dtos, transactionHeader, rows)
		},
	}

	cmd.Flags().Uint64Var(&since, "since", 0, "Only transactions with a greater id")
	return cmd
}

func (a *app) friendsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "friends",
		Short: "Friends of the logged in user",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "requests",
		Short: "List pending friend requests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tok, err := a.userToken(cmd.Context())
			if err != nil {
				return err
			}
			id, _ := tok.UserID()
			reqs, err := a.client.GetFriendRequests(cmd.Context(), tok, id)
			if err != nil {
				return err
			}

			dtos := make([]fractalsdk.PendingFriendRequestDTO, len(reqs))
			rows := make([][]string, len(reqs))
			for i, r := range reqs {
				dtos[i] = r.DTO()
				msg := ""
				if r.Message != nil {
					msg = *r.Message
				}
				rows[i] = []string{u64(r.ID), u64(r.OriginID), string(r.Relationship), msg}
			}
			return a.printer(cmd.OutOrStdout()).print(dtos,
				[]string{"ID", "FROM", "RELATIONSHIP", "MESSAGE"}, rows)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List friends",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tok, err := a.userToken(cmd.Context())
			if err != nil {
				return err
			}
			id, _ := tok.UserID()
			friends, err := a.client.GetFriends(cmd.Context(), tok, id)
			if err != nil {
				return err
			}

			dtos := make([]fractalsdk.ProfileDTO, len(friends))
			rows := make([][]string, len(friends))
			for i, p := range friends {
				dtos[i] = p.DTO()
				rows[i] = []string{u64(p.ID), p.Username, p.DisplayName}
			}
			return a.printer(cmd.OutOrStdout()).print(dtos, []string{"ID", "USERNAME", "NAME"}, rows)
		},
	})
	return cmd
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the CLI version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "fractal", a.version)
			return err
		},
	}
}
