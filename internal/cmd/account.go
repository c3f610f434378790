package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Account information",
}

var accountInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the resolved account",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if err := app.requireAccount(ctx); err != nil {
			return err
		}

		account := app.IDs.Account.Get()
		fmt.Printf("Account: %s\n", account.ID)
		fmt.Printf("Company: %s\n", account.CompanyName)
		fmt.Printf("Domain:  %s\n", account.Domain)
		return nil
	},
}

func init() {
	accountCmd.AddCommand(accountInfoCmd)
	rootCmd.AddCommand(accountCmd)
}
