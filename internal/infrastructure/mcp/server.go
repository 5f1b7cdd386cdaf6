package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dayplanhq/dayplan-mcp/pkg/dayplan"
	"github.com/felixgeelhaar/mcp-go"
)

// Server bridges MCP clients to the Dayplan backend. Every tool is a thin
// adapter over one pkg/dayplan operation.
type Server struct {
	mcpServer *mcp.Server
	api       *dayplan.Client
}

var (
	Version     = "dev"
	BuildCommit = "unknown"
	BuildDate   = "unknown"
)

// mcpErr returns a user-friendly error for MCP clients. The backend's
// normalized message is included so agents can react to it.
func mcpErr(action string, err error) error {
	return fmt.Errorf("%s: %s", action, err)
}

func NewServer(api *dayplan.Client) (*Server, error) {
	if api == nil {
		return nil, fmt.Errorf("api client is nil")
	}

	info := mcp.ServerInfo{
		Name:    "dayplan",
		Version: Version,
	}

	s := &Server{
		mcpServer: mcp.NewServer(info,
			mcp.WithTitle("Dayplan MCP Server"),
			mcp.WithDescription("Dayplan exposes projects, tasks, notes, journal entries, and habits to MCP clients."),
			mcp.WithWebsiteURL("https://github.com/dayplanhq/dayplan-mcp"),
			mcp.WithBuildInfo(BuildCommit, BuildDate),
			mcp.WithInstructions("Use tools to browse projects and tasks, capture notes and journal entries, and track habits."),
		),
		api: api,
	}

	s.registerTools()
	s.registerSchemaResource()
	return s, nil
}

func (s *Server) registerTools() {
	// Projects
	s.mcpServer.Tool("dayplan_list_projects").
		Description("List all projects with their task counts").
		Handler(s.handleListProjects)

	s.mcpServer.Tool("dayplan_get_project").
		Description("Retrieve a single project by ID").
		Handler(s.handleGetProject)

	s.mcpServer.Tool("dayplan_create_project").
		Description("Create a new project").
		Handler(s.handleCreateProject)

	s.mcpServer.Tool("dayplan_update_project").
		Description("Update a project. Omit a field to leave it unchanged; pass null to clear it.").
		Handler(s.handleUpdateProject)

	s.mcpServer.Tool("dayplan_delete_project").
		Description("Delete a project and all of its tasks").
		Handler(s.handleDeleteProject)

	s.mcpServer.Tool("dayplan_project_stats").
		Description("Get per-project task statistics (counts, overdue, completion rate)").
		Handler(s.handleProjectStats)

	// Tasks
	s.mcpServer.Tool("dayplan_list_tasks").
		Description("List tasks in a project, optionally filtered by status, assignee, or tag").
		Handler(s.handleListTasks)

	s.mcpServer.Tool("dayplan_get_task").
		Description("Retrieve a single task by ID").
		Handler(s.handleGetTask)

	s.mcpServer.Tool("dayplan_create_task").
		Description("Create a task in a project").
		Handler(s.handleCreateTask)

	s.mcpServer.Tool("dayplan_update_task").
		Description("Update a task. Omit a field to leave it unchanged; pass null to clear it (e.g. dueDate).").
		Handler(s.handleUpdateTask)

	s.mcpServer.Tool("dayplan_delete_task").
		Description("Delete a task").
		Handler(s.handleDeleteTask)

	// Notes
	s.mcpServer.Tool("dayplan_list_notes").
		Description("List notes, optionally filtered by project or pinned state").
		Handler(s.handleListNotes)

	s.mcpServer.Tool("dayplan_get_note").
		Description("Retrieve a single note by ID").
		Handler(s.handleGetNote)

	s.mcpServer.Tool("dayplan_create_note").
		Description("Create a note, optionally attached to a project").
		Handler(s.handleCreateNote)

	s.mcpServer.Tool("dayplan_update_note").
		Description("Update a note. Omit a field to leave it unchanged; pass null to detach it (e.g. projectId).").
		Handler(s.handleUpdateNote)

	s.mcpServer.Tool("dayplan_delete_note").
		Description("Delete a note").
		Handler(s.handleDeleteNote)

	// Journal
	s.mcpServer.Tool("dayplan_list_day_entries").
		Description("List journal entries, optionally bounded to a date range (YYYY-MM-DD)").
		Handler(s.handleListDayEntries)

	s.mcpServer.Tool("dayplan_get_day_entry").
		Description("Retrieve the journal entry for a day. Days with no entry report that, not an error.").
		Handler(s.handleGetDayEntry)

	s.mcpServer.Tool("dayplan_create_day_entry").
		Description("Create the journal entry for a day").
		Handler(s.handleCreateDayEntry)

	s.mcpServer.Tool("dayplan_update_day_entry").
		Description("Update a day's journal entry. Omit a field to leave it unchanged; pass null to clear it.").
		Handler(s.handleUpdateDayEntry)

	s.mcpServer.Tool("dayplan_delete_day_entry").
		Description("Delete a day's journal entry").
		Handler(s.handleDeleteDayEntry)

	// Habits
	s.mcpServer.Tool("dayplan_list_habits").
		Description("List habits with current streaks").
		Handler(s.handleListHabits)

	s.mcpServer.Tool("dayplan_get_habit").
		Description("Retrieve a single habit by ID").
		Handler(s.handleGetHabit)

	s.mcpServer.Tool("dayplan_create_habit").
		Description("Create a habit (daily or weekly cadence)").
		Handler(s.handleCreateHabit)

	s.mcpServer.Tool("dayplan_update_habit").
		Description("Update a habit. Omit a field to leave it unchanged; pass null to clear it.").
		Handler(s.handleUpdateHabit)

	s.mcpServer.Tool("dayplan_delete_habit").
		Description("Delete a habit and its entries").
		Handler(s.handleDeleteHabit)

	s.mcpServer.Tool("dayplan_get_habit_entry").
		Description("Get the entry for a habit on a day. Days with no entry report that, not an error.").
		Handler(s.handleGetHabitEntry)

	s.mcpServer.Tool("dayplan_record_habit_entry").
		Description("Record a habit completion for a day").
		Handler(s.handleRecordHabitEntry)

	// Tags
	s.mcpServer.Tool("dayplan_list_tags").
		Description("List all tags").
		Handler(s.handleListTags)

	s.mcpServer.Tool("dayplan_create_tag").
		Description("Create a tag").
		Handler(s.handleCreateTag)

	s.mcpServer.Tool("dayplan_delete_tag").
		Description("Delete a tag and detach it from all tasks").
		Handler(s.handleDeleteTag)

	// Summary
	s.mcpServer.Tool("dayplan_get_summary").
		Description("Get the workspace-wide summary (open tasks, due today, habit and journal streaks)").
		Handler(s.handleGetSummary)
}

// FlexBool accepts both boolean and string ("true"/"false") JSON values.
// MCP clients sometimes send string values for boolean fields.
type FlexBool bool

func (fb *FlexBool) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*fb = FlexBool(b)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*fb = FlexBool(s == "true" || s == "1" || s == "yes")
		return nil
	}
	return fmt.Errorf("expected boolean or string, got %s", string(data))
}

// FlexInt accepts both integer and string JSON values.
type FlexInt int

func (fi *FlexInt) UnmarshalJSON(data []byte) error {
	var i int
	if err := json.Unmarshal(data, &i); err == nil {
		*fi = FlexInt(i)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		var n int
		if _, err := fmt.Sscanf(s, "%d", &n); err == nil {
			*fi = FlexInt(n)
			return nil
		}
	}
	return fmt.Errorf("expected integer or string, got %s", string(data))
}

func (s *Server) Start() error {
	return s.StartStdio()
}

func (s *Server) StartStdio() error {
	return s.ServeStdio(context.Background())
}

func (s *Server) StartHTTP(addr string) error {
	return s.ServeHTTP(context.Background(), addr)
}

func (s *Server) StartWebSocket(addr string) error {
	return s.ServeWebSocket(context.Background(), addr)
}

func (s *Server) ServeStdio(ctx context.Context) error {
	return mcp.ServeStdio(ctx, s.mcpServer)
}

func (s *Server) ServeHTTP(ctx context.Context, addr string) error {
	return mcp.ServeHTTP(ctx, s.mcpServer, addr, mcp.WithDefaultCORS())
}

func (s *Server) ServeWebSocket(ctx context.Context, addr string) error {
	return mcp.ServeWebSocket(ctx, s.mcpServer, addr)
}
