package cli

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "dayplan-mcp",
	Version: Version,
	Short:   "MCP server for the Dayplan productivity backend",
	Long: `dayplan-mcp exposes a Dayplan workspace to MCP clients.
Projects, tasks, notes, journal entries, and habits become tools
an AI agent can call over stdio, HTTP, or WebSocket.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// A .env in the working directory is a convenience for local use;
		// missing files are fine.
		_ = godotenv.Load()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() error {
	return RootCmd.Execute()
}
