package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/stellarhub/stellarctl/internal/guard"
	"github.com/stellarhub/stellarctl/pkg/stellarhub"
)

var telemetryCmd = &cobra.Command{
	Use:   "telemetry",
	Short: "Explore machine telemetry",
}

var telemetryMachinesCmd = &cobra.Command{
	Use:   "machines",
	Short: "List monitored machines",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if err := app.authorize(ctx, guard.RoleUser); err != nil {
			return err
		}

		var machines []stellarhub.Machine
		err := withSpinner("loading machines", func() error {
			var err error
			machines, err = app.Hub.ListMachines(ctx)
			return err
		})
		if err != nil {
			return err
		}

		for _, m := range machines {
			fmt.Printf("%-10s  %-28s  %-10s  %s\n", m.ID, m.Name, m.Status, m.Location)
		}
		return nil
	},
}

var telemetrySensorsCmd = &cobra.Command{
	Use:   "sensors <machine-id>",
	Short: "List a machine's sensors",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if err := app.authorize(ctx, guard.RoleUser); err != nil {
			return err
		}

		sensors, err := app.Hub.ListSensors(ctx, args[0])
		if err != nil {
			return err
		}

		for _, s := range sensors {
			fmt.Printf("%-10s  %-24s  %s\n", s.ID, s.Name, s.Unit)
		}
		return nil
	},
}

var telemetryQueryCmd = &cobra.Command{
	Use:   "query <machine-id> <sensor-id>",
	Short: "Fetch sensor samples for a time range",
	Long: `Fetch one sensor's samples.

Examples:
  stellarctl telemetry query m1 s1 --since 24h
  stellarctl telemetry query m1 s1 --since 7d --view daily`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		since, _ := cmd.Flags().GetDuration("since")
		view, _ := cmd.Flags().GetString("view")

		if err := app.authorize(ctx, guard.RoleUser); err != nil {
			return err
		}

		rng := stellarhub.TimeRange{
			From: time.Now().Add(-since),
			To:   time.Now(),
		}

		var points []stellarhub.DataPoint
		err := withSpinner("querying telemetry", func() error {
			var err error
			points, err = app.Hub.QueryTelemetry(ctx, args[0], args[1], view, rng)
			return err
		})
		if err != nil {
			return err
		}

		for _, p := range points {
			fmt.Printf("%s  %g\n", p.Timestamp.Format(time.RFC3339), p.Value)
		}
		return nil
	},
}

func init() {
	telemetryQueryCmd.Flags().Duration("since", 24*time.Hour, "how far back to query")
	telemetryQueryCmd.Flags().String("view", "raw", "aggregation view (raw, hourly, daily)")

	telemetryCmd.AddCommand(telemetryMachinesCmd)
	telemetryCmd.AddCommand(telemetrySensorsCmd)
	telemetryCmd.AddCommand(telemetryQueryCmd)
	rootCmd.AddCommand(telemetryCmd)
}
