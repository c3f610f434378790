package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stellarhub/stellarctl/internal/guard"
	"github.com/stellarhub/stellarctl/internal/identity"
	"github.com/stellarhub/stellarctl/pkg/stellarhub"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "User profile and user management",
}

var userInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show your profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if err := app.authorize(ctx, guard.RoleUser); err != nil {
			return err
		}

		user := app.IDs.User.Get()
		fmt.Printf("User:  %s\n", user.ID)
		fmt.Printf("Name:  %s\n", user.Name)
		fmt.Printf("Email: %s\n", user.Email)
		fmt.Printf("Role:  %s\n", user.Role)
		return nil
	},
}

var userUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update your profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")

		if name == "" && email == "" {
			return fmt.Errorf("nothing to update, pass --name or --email")
		}

		if err := app.authorize(ctx, guard.RoleUser); err != nil {
			return err
		}

		updated, err := app.Hub.UpdateProfile(ctx, identity.User{Name: name, Email: email})
		if err != nil {
			return fmt.Errorf("profile update failed: %w", err)
		}
		// Patch the local store the way the profile page did.
		app.IDs.User.Set(*updated)

		fmt.Println("Profile updated.")
		return nil
	},
}

var userResetPasswordCmd = &cobra.Command{
	Use:   "reset-password",
	Short: "Request a password reset email for yourself",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if err := app.authorize(ctx, guard.RoleUser); err != nil {
			return err
		}
		if err := app.Hub.ResetMyPassword(ctx); err != nil {
			return fmt.Errorf("reset request failed: %w", err)
		}

		fmt.Println("Reset email sent.")
		return nil
	},
}

var userListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the account's users (admin)",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if err := app.authorize(ctx, guard.RoleAdmin); err != nil {
			return err
		}

		var users []identity.User
		err := withSpinner("loading users", func() error {
			var err error
			users, err = app.Hub.ListUsers(ctx)
			return err
		})
		if err != nil {
			return err
		}

		for _, u := range users {
			fmt.Printf("%-24s  %-28s  %s\n", u.Name, u.Email, u.Role)
		}
		return nil
	},
}

var userInviteCmd = &cobra.Command{
	Use:   "invite",
	Short: "Invite a user into the account (admin)",
	Long: `Invite a user into the account.

Examples:
  stellarctl user invite --name "Ada L." --email ada@acme.io --role user
  stellarctl user invite --email ops@acme.io --role admin`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		role, _ := cmd.Flags().GetString("role")

		if email == "" {
			return fmt.Errorf("--email is required")
		}
		if guard.Rank(guard.Role(role)) == 0 {
			return fmt.Errorf("--role must be one of: account_owner, admin, user")
		}

		if err := app.authorize(ctx, guard.RoleAdmin); err != nil {
			return err
		}

		req := stellarhub.InviteUserRequest{Name: name, Email: email, Role: role}
		if err := app.Hub.InviteUser(ctx, req); err != nil {
			return fmt.Errorf("invite failed: %w", err)
		}

		fmt.Printf("Invited %s as %s.\n", email, role)
		return nil
	},
}

func init() {
	userUpdateCmd.Flags().String("name", "", "new display name")
	userUpdateCmd.Flags().String("email", "", "new email address")

	userInviteCmd.Flags().String("name", "", "invitee display name")
	userInviteCmd.Flags().String("email", "", "invitee email")
	userInviteCmd.Flags().String("role", "user", "invitee role")

	userCmd.AddCommand(userInfoCmd)
	userCmd.AddCommand(userUpdateCmd)
	userCmd.AddCommand(userResetPasswordCmd)
	userCmd.AddCommand(userListCmd)
	userCmd.AddCommand(userInviteCmd)
	rootCmd.AddCommand(userCmd)
}
