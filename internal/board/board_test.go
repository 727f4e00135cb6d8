package board

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/MissQuinn-dev/todo-frontend/internal/table"
	"github.com/MissQuinn-dev/todo-frontend/internal/todo"
)

func users() []todo.User {
	return []todo.User{
		{ID: 2, Name: "Bob", TotalPoints: 5, Tasks: []todo.Task{{ID: 9, Points: 5}}},
		{ID: 3, Name: "alice", TotalPoints: 0},
	}
}

func TestUserIndex_Resolve(t *testing.T) {
	ix := NewUserIndex(append(users(), todo.User{ID: 0, Name: "Zero"}))

	tests := []struct {
		name string
		ref  todo.UserRef
		want string
		ok   bool
	}{
		{"assigned to known user", todo.AssignedTo(2), "Bob", true},
		{"unknown user", todo.AssignedTo(42), "", false},
		{"unassigned never resolves", todo.Unassigned(), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, ok := ix.Resolve(tt.ref)
			if ok != tt.ok || u.Name != tt.want {
				t.Errorf("Resolve(%v) = (%q, %v), want (%q, %v)", tt.ref, u.Name, ok, tt.want, tt.ok)
			}
		})
	}

	if ix.Len() != 3 || ix.Users()[0].Name != "Bob" {
		t.Errorf("Users() order not kept: %+v", ix.Users())
	}
	if u, ok := ix.Lookup(3); !ok || u.Name != "alice" {
		t.Errorf("Lookup(3) = %+v, %v", u, ok)
	}
}

func TestTaskPresentation(t *testing.T) {
	ix := NewUserIndex(users())

	tests := []struct {
		name     string
		task     todo.Task
		action   TaskAction
		label    string
		assignee string
		assign   bool
	}{
		{"unassigned", todo.Task{ID: 5, Assignee: todo.Unassigned()}, ActionDelete, "Delete", AssignLabel, true},
		{"assigned to known user", todo.Task{ID: 6, Assignee: todo.AssignedTo(2)}, ActionComplete, "Complete", "Bob", false},
		{"assignee not fetched", todo.Task{ID: 7, Assignee: todo.AssignedTo(99)}, ActionDelete, "Delete", AssignLabel, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ActionFor(tt.task, ix); got != tt.action {
				t.Errorf("ActionFor = %v, want %v", got, tt.action)
			}
			if got := ActionFor(tt.task, ix).Label(); got != tt.label {
				t.Errorf("Label() = %q, want %q", got, tt.label)
			}
			if got := AssigneeName(tt.task, ix); got != tt.assignee {
				t.Errorf("AssigneeName = %q, want %q", got, tt.assignee)
			}
			if got := NeedsAssign(tt.task, ix); got != tt.assign {
				t.Errorf("NeedsAssign = %v, want %v", got, tt.assign)
			}
		})
	}
}

func cellValues[T any](cols []table.Column[T], row T) map[string]string {
	out := make(map[string]string, len(cols))
	for _, c := range cols {
		out[c.Key] = c.Value(row)
	}
	return out
}

func TestUserColumns(t *testing.T) {
	cols := UserColumns()

	wantTitles := []string{"User Name", "Total Points", "Task Count", "Actions"}
	for i, c := range cols {
		if c.Title != wantTitles[i] {
			t.Errorf("column %d title = %q, want %q", i, c.Title, wantTitles[i])
		}
	}
	if cols[1].Align != lipgloss.Right {
		t.Error("Total Points should be right aligned")
	}
	if cols[2].Align != lipgloss.Center {
		t.Error("Task Count should be centered")
	}
	if cols[3].Sortable() {
		t.Error("Actions column should not be sortable")
	}

	cells := cellValues(cols, users()[0])
	if cells[ColUserName] != "Bob" || cells[ColTotalPoints] != "5" || cells[ColTaskCount] != "1" || cells[ColActions] != "Delete" {
		t.Errorf("cells = %v", cells)
	}

	if got := cellValues(cols, todo.User{ID: 1, Name: "Alice"})[ColTaskCount]; got != "0" {
		t.Errorf("task count without tasks = %q, want 0", got)
	}
}

func TestTaskColumns(t *testing.T) {
	ix := NewUserIndex(users())
	cols := TaskColumns(ix)

	wantTitles := []string{"Task Name", "Points", "User ID", "User", "Actions"}
	if len(cols) != len(wantTitles) {
		t.Fatalf("len(cols) = %d, want %d", len(cols), len(wantTitles))
	}
	for i, c := range cols {
		if c.Title != wantTitles[i] {
			t.Errorf("column %d title = %q, want %q", i, c.Title, wantTitles[i])
		}
	}

	unassigned := cellValues(cols, todo.Task{ID: 5, Name: "Ship", Points: 2})
	if unassigned[ColUserID] != "0" || unassigned[ColUser] != AssignLabel || unassigned[ColActions] != "Delete" {
		t.Errorf("unassigned cells = %v", unassigned)
	}

	assigned := cellValues(cols, todo.Task{ID: 6, Name: "Docs", Points: 3, Assignee: todo.AssignedTo(2)})
	if assigned[ColUserID] != "2" || assigned[ColUser] != "Bob" || assigned[ColActions] != "Complete" {
		t.Errorf("assigned cells = %v", assigned)
	}
}

func TestUserColumns_SortByNameIgnoresCase(t *testing.T) {
	tbl := table.New(UserColumns(), 10)
	tbl.SetRows(users())
	tbl.CycleSort(ColUserName)

	rows := tbl.VisibleRows()
	if rows[0].Name != "alice" || rows[1].Name != "Bob" {
		t.Errorf("sorted = %s, %s; want alice, Bob", rows[0].Name, rows[1].Name)
	}
}

func TestMessages(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{AssignedMsg("Bob"), "Assigned to Bob"},
		{DeletedTaskMsg("Ship"), `Deleted "Ship"`},
		{DeletedUserMsg("Bob"), `User "Bob" deleted successfully.`},
		{UserCreatedMsg("1"), "User created successfully: 1"},
		{TaskCreatedMsg("12"), "Task created successfully: 12"},
		{ConfirmDeleteTask("Ship"), `Delete task "Ship"?`},
		{ConfirmDeleteUser("Bob"), `Are you sure you want to delete user "Bob"?`},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %q, want %q", tt.got, tt.want)
		}
	}
}
