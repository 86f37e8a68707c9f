package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/clientportal/sessionbridge/internal/authstate"
	"github.com/clientportal/sessionbridge/internal/bridge/transfer"
	"github.com/clientportal/sessionbridge/internal/config"
	"github.com/clientportal/sessionbridge/internal/logger"
	"github.com/clientportal/sessionbridge/internal/model"
)

// cli carries what PersistentPreRunE resolved to the subcommands.
type cli struct {
	out     io.Writer
	connect connector
	cfg     *config.BridgeConfig
	log     *zap.Logger
}

func (c *cli) start(ctx context.Context, rawURL string) (*bridge, error) {
	return startBridge(ctx, c.cfg, c.connect, c.log, rawURL)
}

// newRootCmd builds the command tree writing results to out.
func newRootCmd(out io.Writer, connect connector) *cobra.Command {
	c := &cli{out: out, connect: connect}

	root := &cobra.Command{
		Use:   "sessionbridge",
		Short: "Session bridge between the client portal and the console",
		Long: `sessionbridge keeps the auth token of one application (--app), hands the
session over to a sibling application by URL and adopts sessions handed to it.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadBridge(cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			log, err := logger.New(cfg.Logging, "stderr")
			if err != nil {
				return err
			}
			c.cfg, c.log = cfg, log.With(zap.String("app", cfg.App))
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if c.log != nil {
				_ = c.log.Sync()
			}
		},
		SilenceUsage: true,
	}
	root.SetOut(out)
	config.RegisterBridgeFlags(root.PersistentFlags())

	root.AddCommand(
		newSignUpCmd(c),
		newLoginCmd(c),
		newWhoAmICmd(c),
		newOpenCmd(c),
		newHandoffCmd(c),
		newProfileCmd(c),
		newLogoutCmd(c),
		newVersionCmd(c),
	)
	return root
}

func withTimeout(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), commandTimeout)
}

func credentialFlags(cmd *cobra.Command, email, password *string) {
	cmd.Flags().StringVarP(email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(password, "password", "p", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
}

func newSignUpCmd(c *cli) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Register a new account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := withTimeout(cmd)
			defer cancel()
			b, err := c.start(ctx, "")
			if err != nil {
				return err
			}
			defer b.Close()

			if err := b.lifecycle.SignUp(ctx, email, password); err != nil {
				return err
			}
			return printJSON(c.out, viewOf(b.lifecycle.State()))
		},
	}
	credentialFlags(cmd, &email, &password)
	return cmd
}

func newLoginCmd(c *cli) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with email and password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := withTimeout(cmd)
			defer cancel()
			b, err := c.start(ctx, "")
			if err != nil {
				return err
			}
			defer b.Close()

			if err := b.lifecycle.SignIn(ctx, email, password); err != nil {
				return err
			}
			st, err := b.lifecycle.WaitFor(ctx, func(s authstate.State) bool {
				return s.User != nil && strings.EqualFold(s.User.Email, email)
			})
			if err != nil {
				return fmt.Errorf("waiting for profile: %w", err)
			}
			return printJSON(c.out, viewOf(st))
		},
	}
	credentialFlags(cmd, &email, &password)
	return cmd
}

func newWhoAmICmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Print the current auth state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := withTimeout(cmd)
			defer cancel()
			b, err := c.start(ctx, "")
			if err != nil {
				return err
			}
			defer b.Close()
			return printJSON(c.out, viewOf(b.lifecycle.State()))
		},
	}
}

func newOpenCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "open <url>",
		Short: "Open the application at url, adopting a transferred session if present",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := withTimeout(cmd)
			defer cancel()
			b, err := c.start(ctx, args[0])
			if err != nil {
				return err
			}
			defer b.Close()

			v := viewOf(b.lifecycle.State())
			v.URL = b.loc.String()
			return printJSON(c.out, v)
		},
	}
}

func newHandoffCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "handoff <target-origin> [entry-path]",
		Short: "Print the URL that carries the current session into another application",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry := "/landing"
			if len(args) == 2 {
				entry = args[1]
			}
			ctx, cancel := withTimeout(cmd)
			defer cancel()
			b, err := c.start(ctx, "")
			if err != nil {
				return err
			}
			defer b.Close()

			u, err := transfer.NewBuilder(transfer.WithAllowedHosts(c.cfg.AllowedHosts...)).Handoff(b, args[0], entry)
			if err != nil {
				if errors.Is(err, transfer.ErrNoToken) {
					return fmt.Errorf("%w, please log in first", err)
				}
				return err
			}
			_, err = fmt.Fprintln(c.out, u)
			return err
		},
	}
}

func newProfileCmd(c *cli) *cobra.Command {
	var fullName, company, phone string
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Complete the signed-in user's profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var upd model.ProfileUpdate
			if cmd.Flags().Changed("full-name") {
				upd.FullName = &fullName
			}
			if cmd.Flags().Changed("company") {
				upd.CompanyName = &company
			}
			if cmd.Flags().Changed("phone") {
				upd.Phone = &phone
			}
			if upd.Empty() {
				return errors.New("nothing to update: pass --full-name, --company or --phone")
			}

			ctx, cancel := withTimeout(cmd)
			defer cancel()
			b, err := c.start(ctx, "")
			if err != nil {
				return err
			}
			defer b.Close()

			if err := b.lifecycle.CompleteProfile(ctx, upd); err != nil {
				return err
			}
			return printJSON(c.out, viewOf(b.lifecycle.State()))
		},
	}
	cmd.Flags().StringVar(&fullName, "full-name", "", "full name")
	cmd.Flags().StringVar(&company, "company", "", "company name")
	cmd.Flags().StringVar(&phone, "phone", "", "phone number")
	return cmd
}

func newLogoutCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out locally and on the backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := withTimeout(cmd)
			defer cancel()
			b, err := c.start(ctx, "")
			if err != nil {
				return err
			}
			defer b.Close()

			b.lifecycle.SignOut(ctx)
			return printJSON(c.out, viewOf(b.lifecycle.State()))
		},
	}
}

func newVersionCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			_, err := fmt.Fprintf(c.out, "sessionbridge %s (%s)\n", version, buildDate)
			return err
		},
	}
}
