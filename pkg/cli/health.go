package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/getmockd/faultinject/pkg/cliconfig"
	"github.com/spf13/cobra"
)

var healthAdminURL string

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check that the fault admin API is reachable",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		type healthResult struct {
			Status   string `json:"status"`
			AdminURL string `json:"adminUrl"`
			Error    string `json:"error,omitempty"`
		}

		err := NewClient(healthAdminURL).Health()
		if err != nil {
			if jsonOutput {
				data, _ := json.MarshalIndent(healthResult{Status: "unhealthy", AdminURL: healthAdminURL, Error: err.Error()}, "", "  ")
				fmt.Println(string(data))
			} else {
				fmt.Fprintf(os.Stderr, "unhealthy: %v\n", err)
			}
			return errors.New("admin API is not healthy")
		}

		if jsonOutput {
			data, _ := json.MarshalIndent(healthResult{Status: "healthy", AdminURL: healthAdminURL}, "", "  ")
			fmt.Println(string(data))
		} else {
			fmt.Println("healthy")
		}
		return nil
	},
}

func init() {
	healthCmd.Flags().StringVar(&healthAdminURL, "admin-url", cliconfig.GetAdminURL(), "Admin API base URL")
	rootCmd.AddCommand(healthCmd)
}
