package cli

import (
	"encoding/json"
	"fmt"

	"github.com/getmockd/faultinject/pkg/cliconfig"
	"github.com/getmockd/faultinject/pkg/config"
	"github.com/spf13/cobra"
)

var (
	armAdminURL  string
	armCountdown uint64
	armDelay     uint32
	armScope     string
	armFile      string
)

var armCmd = &cobra.Command{
	Use:   "arm",
	Short: "Arm the failure countdown in a running process",
	Long: `Arm the failure countdown: the Nth fallible operation from now fails
with an injected fault annotated with its call site.

A plan can be given inline with flags, or loaded from a YAML/JSON file
with --file. The file form carries the whole configuration and ignores
the inline flags.

Examples:
  # The 3rd wrapped operation from now fails
  faultinject arm --countdown 3

  # Fail immediately, only in components matching ^store
  faultinject arm --countdown 1 --scope '^store'

  # Add scheduling jitter alongside injection
  faultinject arm --countdown 5 --delay-intensity 2

  # Apply a stored plan
  faultinject arm --file plan.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var plan *config.Plan
		if armFile != "" {
			loaded, err := config.LoadFromFile(armFile)
			if err != nil {
				return err
			}
			plan = loaded
		} else {
			plan = &config.Plan{
				Enabled:        true,
				Countdown:      armCountdown,
				DelayIntensity: armDelay,
				Scope:          armScope,
			}
		}

		status, err := NewClient(armAdminURL).Apply(plan)
		if err != nil {
			return err
		}

		if jsonOutput {
			data, _ := json.MarshalIndent(status, "", "  ")
			fmt.Println(string(data))
			return nil
		}
		if status.Plan.Enabled {
			fmt.Printf("armed: countdown %d (run %s)\n", status.Plan.Countdown, status.RunID)
		} else {
			fmt.Println("plan applied: injection disabled")
		}
		return nil
	},
}

func init() {
	armCmd.Flags().StringVar(&armAdminURL, "admin-url", cliconfig.GetAdminURL(), "Admin API base URL")
	armCmd.Flags().Uint64VarP(&armCountdown, "countdown", "n", 1, "Evaluations before the first injected failure")
	armCmd.Flags().Uint32Var(&armDelay, "delay-intensity", 0, "Scheduling-jitter intensity (0 disables)")
	armCmd.Flags().StringVar(&armScope, "scope", "", "Component regexp restricting injection")
	armCmd.Flags().StringVarP(&armFile, "file", "f", "", "Load the plan from a YAML/JSON file")
	rootCmd.AddCommand(armCmd)
}
