package cli

import (
	"encoding/json"
	"fmt"

	"github.com/getmockd/faultinject/pkg/cliconfig"
	"github.com/spf13/cobra"
)

var disableAdminURL string

var disableCmd = &cobra.Command{
	Use:   "disable",
	Short: "Disarm injection and clear jitter and scope",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		status, err := NewClient(disableAdminURL).Disable()
		if err != nil {
			return err
		}

		if jsonOutput {
			data, _ := json.MarshalIndent(status, "", "  ")
			fmt.Println(string(data))
			return nil
		}
		fmt.Println("fault injection disabled")
		return nil
	},
}

func init() {
	disableCmd.Flags().StringVar(&disableAdminURL, "admin-url", cliconfig.GetAdminURL(), "Admin API base URL")
	rootCmd.AddCommand(disableCmd)
}
