package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dayplanhq/dayplan-mcp/internal/infrastructure/config"
	"github.com/dayplanhq/dayplan-mcp/pkg/dayplan"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the Dayplan configuration and backend connectivity",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Running Dayplan Doctor...")

		hasIssues := false
		check := func(name string, fn func() error) {
			fmt.Printf("Checking %s... ", name)
			if err := fn(); err != nil {
				fmt.Printf("FAIL\n  Error: %v\n", err)
				hasIssues = true
			} else {
				fmt.Printf("PASS\n")
			}
		}

		cwd, _ := os.Getwd()
		var cfg *config.Config
		check("Configuration", func() error {
			var err error
			cfg, err = config.Load(cwd)
			return err
		})

		var api *dayplan.Client
		check("API Key", func() error {
			if cfg == nil {
				return fmt.Errorf("no configuration loaded")
			}
			var err error
			api, err = cfg.Client()
			return err
		})

		check("Backend Connectivity", func() error {
			if api == nil {
				return fmt.Errorf("no client available")
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()
			summary, err := api.GetSummary(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("(%d projects, %d open tasks) ", summary.Projects, summary.OpenTasks)
			return nil
		})

		if hasIssues {
			fmt.Println("\nissues found! Please fix them before continuing.")
			return fmt.Errorf("doctor found issues")
		}
		fmt.Println("\nEverything looks good!")
		return nil
	},
}

func init() {
	RootCmd.AddCommand(doctorCmd)
}
