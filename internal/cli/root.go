package cli

import (
	"github.com/spf13/cobra"
)

var version = "0.1.0"

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "formwire",
	Short:   "Send JSON and form payloads from the terminal",
	Version: version,
	Long: `Formwire serializes JSON payloads and form definitions into outbound
HTTP requests. It is a thin terminal front-end over the formwire
library: one request per invocation, no retries, no sessions.`,
	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand is provided, print help
		cmd.Help()
	},
}

// Execute runs the root command. It is called once from main.
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.AddCommand(getCmd)
	RootCmd.AddCommand(postCmd)
	RootCmd.AddCommand(putCmd)
	RootCmd.AddCommand(deleteCmd)
	RootCmd.AddCommand(formCmd)
}
