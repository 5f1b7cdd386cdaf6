package dayplan

import "time"

// TaskStatus enumerates the lifecycle states of a task.
type TaskStatus string

const (
	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "in_progress"
	StatusDone       TaskStatus = "done"
)

// HabitCadence enumerates how often a habit is expected.
type HabitCadence string

const (
	CadenceDaily  HabitCadence = "daily"
	CadenceWeekly HabitCadence = "weekly"
)

// TaskCounts aggregates a project's tasks by status.
type TaskCounts struct {
	Todo       int `json:"todo"`
	InProgress int `json:"inProgress"`
	Done       int `json:"done"`
}

// Project is a container for tasks and notes.
type Project struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Color      string     `json:"color,omitempty"`
	Archived   bool       `json:"archived"`
	TaskCounts TaskCounts `json:"taskCounts"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// Task is a unit of work inside a project.
type Task struct {
	ID          string     `json:"id"`
	ProjectID   string     `json:"projectId"`
	Title       string     `json:"title"`
	Notes       string     `json:"notes,omitempty"`
	Status      TaskStatus `json:"status"`
	Assignee    string     `json:"assignee,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
	DueDate     string     `json:"dueDate,omitempty"` // YYYY-MM-DD
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// Note is a free-form text note, optionally attached to a project.
type Note struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"projectId,omitempty"`
	Title     string    `json:"title"`
	Body      string    `json:"body,omitempty"`
	Pinned    bool      `json:"pinned"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DayEntry is the journal record for a single calendar day.
type DayEntry struct {
	Date       string    `json:"date"` // YYYY-MM-DD
	Mood       int       `json:"mood,omitempty"`
	Focus      string    `json:"focus,omitempty"`
	Highlights []string  `json:"highlights,omitempty"`
	Reflection string    `json:"reflection,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Habit is a recurring practice tracked per day.
type Habit struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Cadence       HabitCadence `json:"cadence"`
	TargetPerWeek int          `json:"targetPerWeek,omitempty"`
	Archived      bool         `json:"archived"`
	Streak        int          `json:"streak"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}

// HabitEntry records one day's completion of a habit.
type HabitEntry struct {
	HabitID   string    `json:"habitId"`
	Date      string    `json:"date"` // YYYY-MM-DD
	Completed bool      `json:"completed"`
	Quantity  int       `json:"quantity,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Tag is a label that can be attached to tasks.
type Tag struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// Summary is the workspace-wide aggregate returned by GET /summary.
// Unlike the resource endpoints it is a bare object, not wrapped in an
// envelope field.
type Summary struct {
	Projects       int `json:"projects"`
	OpenTasks      int `json:"openTasks"`
	TasksDueToday  int `json:"tasksDueToday"`
	TasksDoneToday int `json:"tasksDoneToday"`
	ActiveHabits   int `json:"activeHabits"`
	JournalStreak  int `json:"journalStreak"`
}

// ProjectStats is the per-project aggregate returned by
// GET /projects/{id}/stats. Also a bare object.
type ProjectStats struct {
	ProjectID      string     `json:"projectId"`
	TaskCounts     TaskCounts `json:"taskCounts"`
	OverdueTasks   int        `json:"overdueTasks"`
	CompletionRate float64    `json:"completionRate"`
}

// CreateProjectParams is the body for POST /projects. Only fields the caller
// populated are sent.
type CreateProjectParams struct {
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// ProjectPatch is the tri-state body for PATCH /projects/{id}.
type ProjectPatch struct {
	Name     Optional[string] `json:"name,omitzero"`
	Color    Optional[string] `json:"color,omitzero"`
	Archived Optional[bool]   `json:"archived,omitzero"`
}

// CreateTaskParams is the body for POST /projects/{id}/tasks.
type CreateTaskParams struct {
	Title    string     `json:"title"`
	Notes    string     `json:"notes,omitempty"`
	Status   TaskStatus `json:"status,omitempty"`
	Assignee string     `json:"assignee,omitempty"`
	Tags     []string   `json:"tags,omitempty"`
	DueDate  string     `json:"dueDate,omitempty"`
}

// TaskPatch is the tri-state body for PATCH /projects/{p}/tasks/{t}.
type TaskPatch struct {
	Title    Optional[string]     `json:"title,omitzero"`
	Notes    Optional[string]     `json:"notes,omitzero"`
	Status   Optional[TaskStatus] `json:"status,omitzero"`
	Assignee Optional[string]     `json:"assignee,omitzero"`
	Tags     Optional[[]string]   `json:"tags,omitzero"`
	DueDate  Optional[string]     `json:"dueDate,omitzero"`
}

// CreateNoteParams is the body for POST /notes.
type CreateNoteParams struct {
	Title     string `json:"title"`
	Body      string `json:"body,omitempty"`
	ProjectID string `json:"projectId,omitempty"`
	Pinned    bool   `json:"pinned,omitempty"`
}

// NotePatch is the tri-state body for PATCH /notes/{id}.
type NotePatch struct {
	Title     Optional[string] `json:"title,omitzero"`
	Body      Optional[string] `json:"body,omitzero"`
	ProjectID Optional[string] `json:"projectId,omitzero"`
	Pinned    Optional[bool]   `json:"pinned,omitzero"`
}

// CreateDayEntryParams is the body for POST /journal/days.
type CreateDayEntryParams struct {
	Date       string   `json:"date"`
	Mood       int      `json:"mood,omitempty"`
	Focus      string   `json:"focus,omitempty"`
	Highlights []string `json:"highlights,omitempty"`
	Reflection string   `json:"reflection,omitempty"`
}

// DayEntryPatch is the tri-state body for PATCH /journal/days/{date}.
type DayEntryPatch struct {
	Mood       Optional[int]      `json:"mood,omitzero"`
	Focus      Optional[string]   `json:"focus,omitzero"`
	Highlights Optional[[]string] `json:"highlights,omitzero"`
	Reflection Optional[string]   `json:"reflection,omitzero"`
}

// CreateHabitParams is the body for POST /habits.
type CreateHabitParams struct {
	Name          string       `json:"name"`
	Cadence       HabitCadence `json:"cadence,omitempty"`
	TargetPerWeek int          `json:"targetPerWeek,omitempty"`
}

// HabitPatch is the tri-state body for PATCH /habits/{id}.
type HabitPatch struct {
	Name          Optional[string]       `json:"name,omitzero"`
	Cadence       Optional[HabitCadence] `json:"cadence,omitzero"`
	TargetPerWeek Optional[int]          `json:"targetPerWeek,omitzero"`
	Archived      Optional[bool]         `json:"archived,omitzero"`
}

// RecordHabitEntryParams is the body for POST /habits/{id}/entries.
type RecordHabitEntryParams struct {
	Date      string `json:"date"`
	Completed bool   `json:"completed"`
	Quantity  int    `json:"quantity,omitempty"`
}

// CreateTagParams is the body for POST /tags.
type CreateTagParams struct {
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}
