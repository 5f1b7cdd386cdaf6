package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/dayplanhq/dayplan-mcp/internal/infrastructure/config"
	inframcp "github.com/dayplanhq/dayplan-mcp/internal/infrastructure/mcp"
	"github.com/spf13/cobra"
)

var (
	mcpTransport string
	mcpAddr      string
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Dayplan MCP server",
	Run: func(cmd *cobra.Command, args []string) {
		if os.Getenv("DAYPLAN_SKIP_MCP_START") == "true" {
			return
		}
		cwd, _ := os.Getwd()
		cfg, err := config.Load(cwd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
			os.Exit(1)
		}
		api, err := cfg.Client()
		if err != nil {
			fmt.Fprintf(os.Stderr, "client error: %v\n", err)
			os.Exit(1)
		}
		server, err := inframcp.NewServer(api)
		if err != nil {
			fmt.Fprintf(os.Stderr, "server error: %v\n", err)
			os.Exit(1)
		}
		switch strings.ToLower(mcpTransport) {
		case "stdio", "":
			err = server.StartStdio()
		case "http":
			err = server.StartHTTP(mcpAddr)
		case "ws", "websocket":
			err = server.StartWebSocket(mcpAddr)
		default:
			err = fmt.Errorf("unsupported transport: %s", mcpTransport)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	mcpCmd.Flags().StringVar(&mcpTransport, "transport", "stdio", "Transport to use (stdio, http, ws)")
	mcpCmd.Flags().StringVar(&mcpAddr, "addr", ":8080", "Address for http/ws transports")
	RootCmd.AddCommand(mcpCmd)
}
