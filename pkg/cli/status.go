package cli

import (
	"encoding/json"
	"fmt"

	"github.com/getmockd/faultinject/pkg/cliconfig"
	"github.com/spf13/cobra"
)

var statusAdminURL string

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current fault plan and activity counters",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		status, err := NewClient(statusAdminURL).Status()
		if err != nil {
			return err
		}

		if jsonOutput {
			data, _ := json.MarshalIndent(status, "", "  ")
			fmt.Println(string(data))
			return nil
		}

		plan := status.Plan
		if plan.Enabled {
			fmt.Printf("injection:       armed, countdown %d\n", plan.Countdown)
		} else {
			fmt.Println("injection:       disarmed")
		}
		if plan.Scope != "" {
			fmt.Printf("scope:           %s\n", plan.Scope)
		}
		fmt.Printf("delay intensity: %d\n", plan.DelayIntensity)
		if status.RunID != "" {
			fmt.Printf("run:             %s (armed %s)\n", status.RunID, status.ArmedAt.Format("15:04:05"))
		}
		fmt.Printf("evaluations:     %d (%d injected, %d forwarded, %d delayed)\n",
			status.Stats.TotalEvaluations,
			status.Stats.InjectedFaults,
			status.Stats.ForwardedFailures,
			status.Stats.DelayedEvaluations)
		return nil
	},
}

func init() {
	statusCmd.Flags().StringVar(&statusAdminURL, "admin-url", cliconfig.GetAdminURL(), "Admin API base URL")
	rootCmd.AddCommand(statusCmd)
}
