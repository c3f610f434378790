package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stellarhub/stellarctl/internal/guard"
	"github.com/stellarhub/stellarctl/pkg/stellarhub"
)

var deviceCmd = &cobra.Command{
	Use:   "device",
	Short: "Device inventory",
}

var deviceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List connected devices",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if err := app.authorize(ctx, guard.RoleUser); err != nil {
			return err
		}

		var devices []stellarhub.Device
		err := withSpinner("loading devices", func() error {
			var err error
			devices, err = app.Hub.ListDevices(ctx)
			return err
		})
		if err != nil {
			return err
		}

		for _, d := range devices {
			fmt.Printf("%-24s  %-16s  fw %-10s  %s\n", d.Name, d.Type, d.FirmwareVersion, d.Status)
		}
		return nil
	},
}

var deviceAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a device (admin)",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		name, _ := cmd.Flags().GetString("name")
		deviceType, _ := cmd.Flags().GetString("type")

		if name == "" {
			return fmt.Errorf("--name is required")
		}

		if err := app.authorize(ctx, guard.RoleAdmin); err != nil {
			return err
		}

		created, err := app.Hub.AddDevice(ctx, stellarhub.Device{Name: name, Type: deviceType})
		if err != nil {
			return fmt.Errorf("device registration failed: %w", err)
		}

		fmt.Printf("Registered %s (%s).\n", created.Name, created.ID)
		return nil
	},
}

var deviceRemoveCmd = &cobra.Command{
	Use:   "remove <device-id>",
	Short: "Deregister a device (admin)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if err := app.authorize(ctx, guard.RoleAdmin); err != nil {
			return err
		}
		if err := app.Hub.RemoveDevice(ctx, args[0]); err != nil {
			return fmt.Errorf("device removal failed: %w", err)
		}

		fmt.Printf("Removed %s.\n", args[0])
		return nil
	},
}

var otaCmd = &cobra.Command{
	Use:   "ota",
	Short: "Firmware update rollout",
}

var otaStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show OTA rollout state per device",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if err := app.authorize(ctx, guard.RoleUser); err != nil {
			return err
		}

		var rollout []stellarhub.FirmwareStatus
		err := withSpinner("loading rollout", func() error {
			var err error
			rollout, err = app.Hub.FirmwareRollout(ctx)
			return err
		})
		if err != nil {
			return err
		}

		for _, fs := range rollout {
			fmt.Printf("%-24s  %s -> %-10s  %-12s  %3d%%\n",
				fs.DeviceID, fs.CurrentVersion, fs.TargetVersion, fs.State, fs.Progress)
		}
		return nil
	},
}

func init() {
	deviceAddCmd.Flags().String("name", "", "device name")
	deviceAddCmd.Flags().String("type", "sensor-node", "device type")

	deviceCmd.AddCommand(deviceListCmd)
	deviceCmd.AddCommand(deviceAddCmd)
	deviceCmd.AddCommand(deviceRemoveCmd)
	rootCmd.AddCommand(deviceCmd)

	otaCmd.AddCommand(otaStatusCmd)
	rootCmd.AddCommand(otaCmd)
}
