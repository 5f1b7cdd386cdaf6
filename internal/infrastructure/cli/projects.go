package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/dayplanhq/dayplan-mcp/internal/infrastructure/config"
	"github.com/spf13/cobra"
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Show an overview of all projects in the workspace",
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, _ := os.Getwd()
		cfg, err := config.Load(cwd)
		if err != nil {
			return err
		}
		api, err := cfg.Client()
		if err != nil {
			return err
		}

		projects, err := api.ListProjects(cmd.Context())
		if err != nil {
			return err
		}
		if len(projects) == 0 {
			fmt.Println("No projects found.")
			return nil
		}

		columns := []table.Column{
			{Title: "Project", Width: 30},
			{Title: "Todo", Width: 6},
			{Title: "WIP", Width: 6},
			{Title: "Done", Width: 6},
			{Title: "Archived", Width: 9},
			{Title: "ID", Width: 24},
		}

		rows := []table.Row{}
		for _, p := range projects {
			archived := ""
			if p.Archived {
				archived = "yes"
			}
			rows = append(rows, table.Row{
				p.Name,
				fmt.Sprintf("%d", p.TaskCounts.Todo),
				fmt.Sprintf("%d", p.TaskCounts.InProgress),
				fmt.Sprintf("%d", p.TaskCounts.Done),
				archived,
				p.ID,
			})
		}

		t := table.New(
			table.WithColumns(columns),
			table.WithRows(rows),
			table.WithHeight(len(rows)+1),
		)

		s := table.DefaultStyles()
		s.Header = s.Header.
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Bold(true)
		s.Selected = lipgloss.NewStyle() // Disable selection style for static view
		t.SetStyles(s)

		fmt.Printf("Workspace projects (%d)\n", len(projects))
		fmt.Println(t.View())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(projectsCmd)
}
