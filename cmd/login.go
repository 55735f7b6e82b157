package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newLoginCmd(app *app) *cobra.Command {
	var identifier string
	var password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to the marketplace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := app.auth.SignIn(cmd.Context(), identifier, password)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s\n", result.User.Username)

			if result.ProfileCompletion != nil && !result.ProfileCompletion.Complete() {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Profile %.0f%% complete", result.ProfileCompletion.Percent)
				if len(result.ProfileCompletion.MissingFields) > 0 {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), " (missing: %s)", strings.Join(result.ProfileCompletion.MissingFields, ", "))
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout())
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&identifier, "email", "", "Email or username")
	cmd.Flags().StringVar(&password, "password", "", "Password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newRegisterCmd(app *app) *cobra.Command {
	var email string
	var password string
	var username string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a marketplace account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.auth.SignUp(cmd.Context(), email, password, username); err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Account created. Run `am login` to sign in.")
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&password, "password", "", "Password")
	cmd.Flags().StringVar(&username, "username", "", "Username (default: local part of the email)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and clear the persisted session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.auth.SignOut(cmd.Context()); err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
			return nil
		},
	}
}
