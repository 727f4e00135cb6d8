package input

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MissQuinn-dev/todo-frontend/internal/form"
	"github.com/MissQuinn-dev/todo-frontend/internal/tui/styles"
)

func typeText(f *Form, s string) {
	f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func TestNewTaskForm_Fields(t *testing.T) {
	f := NewTaskForm()

	tests := []struct {
		key         string
		label       string
		placeholder string
		description string
	}{
		{form.FieldTaskName, "Task Name", "Enter task name", "Please provide the task name."},
		{form.FieldPoints, "Points", "Enter points", "Enter the points for this task."},
	}

	if len(f.Fields()) != len(tests) {
		t.Fatalf("len(Fields()) = %d, want %d", len(f.Fields()), len(tests))
	}
	for i, tt := range tests {
		fld := f.Fields()[i]
		if fld.Key != tt.key || fld.Label != tt.label || fld.Placeholder() != tt.placeholder || fld.Description != tt.description {
			t.Errorf("field %d = {%q %q %q %q}, want %+v", i, fld.Key, fld.Label, fld.Placeholder(), fld.Description, tt)
		}
	}
}

func TestNewUserForm_Fields(t *testing.T) {
	f := NewUserForm()
	fld := f.Fields()[0]
	if fld.Label != "Your Name" || fld.Placeholder() != "New User's Name" || fld.Description != "Input Name of New User" {
		t.Errorf("user field = {%q %q %q}", fld.Label, fld.Placeholder(), fld.Description)
	}
}

func TestForm_TypingGoesToFocusedField(t *testing.T) {
	f := NewTaskForm()

	typeText(f, "ignored")
	if f.Value(form.FieldTaskName) != "" {
		t.Fatal("unfocused form accepted input")
	}

	f.Focus()
	typeText(f, "Write docs")
	f.NextField()
	typeText(f, "3")

	if got := f.Value(form.FieldTaskName); got != "Write docs" {
		t.Errorf("task name = %q, want %q", got, "Write docs")
	}
	if got := f.Value(form.FieldPoints); got != "3" {
		t.Errorf("points = %q, want %q", got, "3")
	}

	f.NextField()
	if !f.OnButton() {
		t.Fatalf("FocusIndex() = %d, want button", f.FocusIndex())
	}
	typeText(f, "x")
	if f.Value(form.FieldPoints) != "3" {
		t.Error("typing on the button changed a field")
	}

	f.NextField()
	if f.FocusIndex() != 0 {
		t.Errorf("NextField() from button = %d, want 0", f.FocusIndex())
	}
	f.PrevField()
	if !f.OnButton() {
		t.Errorf("PrevField() from first field = %d, want button", f.FocusIndex())
	}
}

func TestForm_ValidateTask(t *testing.T) {
	tests := []struct {
		name       string
		taskName   string
		points     string
		ok         bool
		nameErr    string
		pointsErr  string
		wantPoints int
	}{
		{"valid", " Write docs ", "3", true, "", "", 3},
		{"empty name", "  ", "3", false, form.MsgNoTaskName, "", 0},
		{"points not a number", "Ship", "three", false, "", form.MsgPointsNotInt, 0},
		{"points too small", "Ship", "0", false, "", form.MsgPointsTooSmall, 0},
		{"both invalid", "", "", false, form.MsgNoTaskName, form.MsgPointsNotInt, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewTaskForm()
			f.SetValue(form.FieldTaskName, tt.taskName)
			f.SetValue(form.FieldPoints, tt.points)

			task, ok := f.ValidateTask()
			if ok != tt.ok {
				t.Fatalf("ValidateTask() ok = %v, want %v", ok, tt.ok)
			}
			if got := f.Error(form.FieldTaskName); got != tt.nameErr {
				t.Errorf("name error = %q, want %q", got, tt.nameErr)
			}
			if got := f.Error(form.FieldPoints); got != tt.pointsErr {
				t.Errorf("points error = %q, want %q", got, tt.pointsErr)
			}
			if ok && (task.Name != "Write docs" || task.Points != tt.wantPoints) {
				t.Errorf("task = %+v", task)
			}
			if f.HasErrors() == ok {
				t.Errorf("HasErrors() = %v with ok = %v", f.HasErrors(), ok)
			}
		})
	}
}

func TestForm_ValidateUser_ClearsOldErrors(t *testing.T) {
	f := NewUserForm()

	if _, ok := f.ValidateUser(); ok {
		t.Fatal("empty name validated")
	}
	if f.Error(form.FieldUserName) != form.MsgNoName {
		t.Errorf("error = %q, want %q", f.Error(form.FieldUserName), form.MsgNoName)
	}

	f.SetValue(form.FieldUserName, "Alice")
	u, ok := f.ValidateUser()
	if !ok || u.Name != "Alice" {
		t.Errorf("ValidateUser() = %+v, %v", u, ok)
	}
	if f.Error(form.FieldUserName) != "" {
		t.Error("error not cleared after a valid submit")
	}
}

func TestForm_Reset(t *testing.T) {
	f := NewTaskForm()
	f.Focus()
	f.SetValue(form.FieldTaskName, "Ship")
	f.SetValue(form.FieldPoints, "nope")
	f.ValidateTask()
	f.NextField()
	f.SetBusy(true)

	f.Reset()

	if f.Value(form.FieldTaskName) != "" || f.Value(form.FieldPoints) != "" {
		t.Error("Reset() kept values")
	}
	if f.HasErrors() || f.Busy() || f.FocusIndex() != 0 {
		t.Errorf("Reset() left errors=%v busy=%v focus=%d", f.HasErrors(), f.Busy(), f.FocusIndex())
	}
}

func TestForm_BusyIgnoresInput(t *testing.T) {
	f := NewUserForm()
	f.Focus()
	f.SetBusy(true)
	typeText(f, "Bob")
	if f.Value(form.FieldUserName) != "" {
		t.Error("busy form accepted input")
	}
}

func TestForm_View(t *testing.T) {
	s := styles.New(nil)
	f := NewTaskForm()
	f.SetValue(form.FieldPoints, "x")
	f.ValidateTask()

	out := f.View(s, 40)
	for _, want := range []string{"Task Name", "Points", "Please provide the task name.", form.MsgNoTaskName, form.MsgPointsNotInt, "Confirm"} {
		if !strings.Contains(out, want) {
			t.Errorf("View() missing %q:\n%s", want, out)
		}
	}

	f.SetBusy(true)
	if out := f.View(s, 40); !strings.Contains(out, "Confirm…") {
		t.Errorf("busy View() missing progress marker:\n%s", out)
	}
}
