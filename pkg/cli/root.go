package cli

import (
	"github.com/spf13/cobra"
)

// jsonOutput is the persistent --json flag shared by all commands.
var jsonOutput bool

var rootCmd = &cobra.Command{
	Use:           "faultinject",
	Short:         "Drive deterministic fault injection in a running process",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
}

// Execute runs the root command with the given version string.
func Execute(version string) error {
	rootCmd.Version = version
	return rootCmd.Execute()
}
