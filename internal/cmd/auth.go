package cmd

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/stellarhub/stellarctl/pkg/stellarhub"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the dashboard session",
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to your account",
	Long: `Sign in to your account's StellarHub backend.

With no flags, an interactive form asks for credentials.

Examples:
  stellarctl auth login
  stellarctl auth login --email ada@acme.io --password secret`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")

		if email == "" || password == "" {
			form := huh.NewForm(huh.NewGroup(
				huh.NewInput().
					Title("Email").
					Placeholder("you@company.com").
					Value(&email),
				huh.NewInput().
					Title("Password").
					EchoMode(huh.EchoModePassword).
					Value(&password),
			))
			if err := form.Run(); err != nil {
				return fmt.Errorf("prompt failed: %w", err)
			}
		}

		// Resolve the tenant first; sign-in is a scoped call.
		if err := app.requireAccount(ctx); err != nil {
			return err
		}

		var resp *stellarhub.AuthResponse
		err := withSpinner("signing in", func() error {
			var err error
			resp, err = app.Hub.SignIn(ctx, email, password)
			return err
		})
		if err != nil {
			return fmt.Errorf("sign-in failed: %w", err)
		}

		if err := app.Sessions.Authenticate(resp.Token); err != nil {
			return err
		}
		app.IDs.User.Set(resp.User)

		account := app.IDs.Account.Get()
		fmt.Printf("Signed in as %s (%s) at %s\n", resp.User.Name, resp.User.Role, account.CompanyName)
		return nil
	},
}

var authSignupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Register a new user and sign in",
	Long: `Register with your account's StellarHub backend and start a session.

With no flags, an interactive form asks for your details.

Examples:
  stellarctl auth signup
  stellarctl auth signup --name "Ada Lovelace" --email ada@acme.io --phone 5551234567`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		phone, _ := cmd.Flags().GetString("phone")

		if name == "" || email == "" || phone == "" {
			form := huh.NewForm(huh.NewGroup(
				huh.NewInput().
					Title("Name").
					Value(&name),
				huh.NewInput().
					Title("Business email").
					Placeholder("you@company.com").
					Value(&email),
				huh.NewInput().
					Title("Phone number").
					Placeholder("10 digits").
					Value(&phone),
			))
			if err := form.Run(); err != nil {
				return fmt.Errorf("prompt failed: %w", err)
			}
		}

		if err := app.requireAccount(ctx); err != nil {
			return err
		}

		var resp *stellarhub.AuthResponse
		err := withSpinner("creating account", func() error {
			var err error
			resp, err = app.Hub.SignUp(ctx, stellarhub.SignUpRequest{
				Name:        name,
				Email:       email,
				PhoneNumber: phone,
			})
			return err
		})
		if err != nil {
			return fmt.Errorf("sign-up failed: %w", err)
		}

		if err := app.Sessions.Authenticate(resp.Token); err != nil {
			return err
		}
		app.IDs.User.Set(resp.User)

		fmt.Printf("Welcome, %s. You are signed in.\n", resp.User.Name)
		return nil
	},
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and clear the local session",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if _, ok := app.Sessions.IsAuthenticated(); !ok {
			fmt.Println("Not signed in.")
			return nil
		}

		// Best effort; the local session clears either way.
		if err := app.requireAccount(ctx); err == nil {
			if err := app.Hub.SignOut(ctx); err != nil {
				app.Logger.WithError(err).Warn("server sign-out failed")
			}
		}

		if err := app.Sessions.SignOut(); err != nil {
			return err
		}
		app.IDs.Reset()

		fmt.Println("Signed out.")
		return nil
	},
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show authentication status",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if _, ok := app.Sessions.IsAuthenticated(); !ok {
			fmt.Println("Not signed in.")
			fmt.Println("Use 'stellarctl auth login' to sign in.")
			return nil
		}

		if err := app.requireAccount(ctx); err != nil {
			return err
		}

		user, err := app.Hub.UserInfo(ctx)
		if err != nil {
			fmt.Println("Session may be expired or invalid.")
			fmt.Println("Use 'stellarctl auth login' to sign in again.")
			return nil
		}
		app.IDs.User.Set(*user)

		account := app.IDs.Account.Get()
		fmt.Println("Signed in")
		fmt.Printf("User:    %s <%s>\n", user.Name, user.Email)
		fmt.Printf("Role:    %s\n", user.Role)
		fmt.Printf("Account: %s (%s)\n", account.CompanyName, account.Domain)
		return nil
	},
}

var authResetPasswordCmd = &cobra.Command{
	Use:   "reset-password",
	Short: "Complete a password reset with an emailed token",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		resetToken, _ := cmd.Flags().GetString("token")
		password, _ := cmd.Flags().GetString("password")

		if resetToken == "" {
			return fmt.Errorf("--token is required")
		}
		if password == "" {
			form := huh.NewForm(huh.NewGroup(
				huh.NewInput().
					Title("New password").
					EchoMode(huh.EchoModePassword).
					Value(&password),
			))
			if err := form.Run(); err != nil {
				return fmt.Errorf("prompt failed: %w", err)
			}
		}

		if err := app.requireAccount(ctx); err != nil {
			return err
		}
		if err := app.Hub.ResetPassword(ctx, resetToken, password); err != nil {
			return fmt.Errorf("password reset failed: %w", err)
		}

		fmt.Println("Password updated. Sign in with the new password.")
		return nil
	},
}

func init() {
	authLoginCmd.Flags().String("email", "", "account email")
	authLoginCmd.Flags().String("password", "", "account password")

	authSignupCmd.Flags().String("name", "", "your full name")
	authSignupCmd.Flags().String("email", "", "business email address")
	authSignupCmd.Flags().String("phone", "", "10-digit phone number")

	authResetPasswordCmd.Flags().String("token", "", "reset token from the email link")
	authResetPasswordCmd.Flags().String("password", "", "new password")

	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authSignupCmd)
	authCmd.AddCommand(authLogoutCmd)
	authCmd.AddCommand(authStatusCmd)
	authCmd.AddCommand(authResetPasswordCmd)
	rootCmd.AddCommand(authCmd)
}
