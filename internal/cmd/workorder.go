package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stellarhub/stellarctl/internal/guard"
	"github.com/stellarhub/stellarctl/pkg/stellarhub"
)

var workorderCmd = &cobra.Command{
	Use:   "workorder",
	Short: "Maintenance work orders",
}

var workorderListCmd = &cobra.Command{
	Use:   "list",
	Short: "List work orders",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if err := app.authorize(ctx, guard.RoleUser); err != nil {
			return err
		}

		var orders []stellarhub.WorkOrder
		err := withSpinner("loading work orders", func() error {
			var err error
			orders, err = app.Hub.ListWorkOrders(ctx)
			return err
		})
		if err != nil {
			return err
		}

		for _, wo := range orders {
			fmt.Printf("%-10s  %-32s  %-10s  %-8s  %s\n",
				wo.ID, wo.Title, wo.Status, wo.Priority, wo.AssignedTo)
		}
		return nil
	},
}

var workorderCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Open a work order",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		title, _ := cmd.Flags().GetString("title")
		description, _ := cmd.Flags().GetString("description")
		priority, _ := cmd.Flags().GetString("priority")
		assignee, _ := cmd.Flags().GetString("assign")

		if title == "" {
			return fmt.Errorf("--title is required")
		}

		if err := app.authorize(ctx, guard.RoleUser); err != nil {
			return err
		}

		req := stellarhub.CreateWorkOrderRequest{
			Title:       title,
			Description: description,
			Priority:    priority,
			AssignedTo:  assignee,
		}
		created, err := app.Hub.CreateWorkOrder(ctx, req)
		if err != nil {
			return fmt.Errorf("work order creation failed: %w", err)
		}

		fmt.Printf("Opened %s: %s\n", created.ID, created.Title)
		return nil
	},
}

var workorderCloseCmd = &cobra.Command{
	Use:   "close <workorder-id>",
	Short: "Close a work order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if err := app.authorize(ctx, guard.RoleUser); err != nil {
			return err
		}
		if err := app.Hub.CloseWorkOrder(ctx, args[0]); err != nil {
			return fmt.Errorf("close failed: %w", err)
		}

		fmt.Printf("Closed %s.\n", args[0])
		return nil
	},
}

var inventoryCmd = &cobra.Command{
	Use:   "inventory",
	Short: "Spare-part inventory",
}

var inventoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stock",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if err := app.authorize(ctx, guard.RoleUser); err != nil {
			return err
		}

		var items []stellarhub.StockItem
		err := withSpinner("loading inventory", func() error {
			var err error
			items, err = app.Hub.ListStock(ctx)
			return err
		})
		if err != nil {
			return err
		}

		for _, item := range items {
			fmt.Printf("%-28s  %5d  %s\n", item.Name, item.Quantity, item.Location)
		}
		return nil
	},
}

var inventoryAdjustCmd = &cobra.Command{
	Use:   "adjust <item-id>",
	Short: "Adjust a stock line (admin)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		delta, _ := cmd.Flags().GetInt("delta")

		if delta == 0 {
			return fmt.Errorf("--delta must be non-zero")
		}

		if err := app.authorize(ctx, guard.RoleAdmin); err != nil {
			return err
		}
		if err := app.Hub.AdjustStock(ctx, args[0], delta); err != nil {
			return fmt.Errorf("stock adjustment failed: %w", err)
		}

		fmt.Printf("Adjusted %s by %+d.\n", args[0], delta)
		return nil
	},
}

func init() {
	workorderCreateCmd.Flags().String("title", "", "work order title")
	workorderCreateCmd.Flags().String("description", "", "work order description")
	workorderCreateCmd.Flags().String("priority", "medium", "priority (low, medium, high)")
	workorderCreateCmd.Flags().String("assign", "", "assignee user id")

	workorderCmd.AddCommand(workorderListCmd)
	workorderCmd.AddCommand(workorderCreateCmd)
	workorderCmd.AddCommand(workorderCloseCmd)
	rootCmd.AddCommand(workorderCmd)

	inventoryAdjustCmd.Flags().Int("delta", 0, "signed quantity change")

	inventoryCmd.AddCommand(inventoryListCmd)
	inventoryCmd.AddCommand(inventoryAdjustCmd)
	rootCmd.AddCommand(inventoryCmd)
}
