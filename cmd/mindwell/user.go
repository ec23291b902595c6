package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mindwell/mindwell/internal/identity"
)

func newUserCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage the local account",
		Long: `Registers and signs in a local account. This only records who is using
this installation; it does not protect your data.`,
	}
	cmd.AddCommand(
		newUserRegisterCmd(v),
		newUserLoginCmd(v),
		newUserLogoutCmd(v),
		newUserWhoamiCmd(v),
	)
	return cmd
}

func (a *app) identity() *identity.Service {
	return identity.NewService(a.store, a.cfg.Identity.BcryptCost, a.logger)
}

func newUserRegisterCmd(v *viper.Viper) *cobra.Command {
	var name, email, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		Args:  cobra.NoArgs,
		RunE: withApp(v, func(cmd *cobra.Command, a *app, _ []string) error {
			pw, err := passwordOrPrompt(cmd.InOrStdin(), cmd.ErrOrStderr(), password)
			if err != nil {
				return err
			}
			u, ok, err := a.identity().Register(cmd.Context(), name, email, pw)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("an account for %s already exists", strings.TrimSpace(email))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Welcome, %s! Signed in as %s\n", u.Name, u.Email)
			return nil
		}),
	}

	cmd.Flags().StringVar(&name, "name", "", "Your name (required)")
	cmd.Flags().StringVar(&email, "email", "", "Email address (required)")
	cmd.Flags().StringVar(&password, "password", "", "Password (prompted when omitted)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newUserLoginCmd(v *viper.Viper) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to an existing account",
		Args:  cobra.NoArgs,
		RunE: withApp(v, func(cmd *cobra.Command, a *app, _ []string) error {
			pw, err := passwordOrPrompt(cmd.InOrStdin(), cmd.ErrOrStderr(), password)
			if err != nil {
				return err
			}
			u, ok, err := a.identity().Login(cmd.Context(), email, pw)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("email or password not recognised")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s\n", u.Email)
			return nil
		}),
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address (required)")
	cmd.Flags().StringVar(&password, "password", "", "Password (prompted when omitted)")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newUserLogoutCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out",
		Args:  cobra.NoArgs,
		RunE: withApp(v, func(cmd *cobra.Command, a *app, _ []string) error {
			if err := a.identity().Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
			return nil
		}),
	}
}

func newUserWhoamiCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in account",
		Args:  cobra.NoArgs,
		RunE: withApp(v, func(cmd *cobra.Command, a *app, _ []string) error {
			u, ok, err := a.identity().Current(cmd.Context())
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Not signed in")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s <%s>, registered %s\n",
				u.Name, u.Email, u.RegisteredAt.Format("2006-01-02"))
			return nil
		}),
	}
}

func passwordOrPrompt(in io.Reader, out io.Writer, password string) (string, error) {
	if password != "" {
		return password, nil
	}
	fmt.Fprint(out, "Password: ")
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
