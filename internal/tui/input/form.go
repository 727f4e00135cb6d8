// Package input provides the text-entry widgets of the TUI: the create-user
// and create-task forms. Validation is delegated to internal/form; this
// package only owns focus, values and rendering.
package input

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MissQuinn-dev/todo-frontend/internal/form"
	"github.com/MissQuinn-dev/todo-frontend/internal/tui/styles"
)

const (
	nameCharLimit   = 100
	pointsCharLimit = 9

	confirmLabel = "Confirm"
)

// Field is one labelled text input.
type Field struct {
	Key         string
	Label       string
	Description string

	input textinput.Model
	err   string
}

func newField(key, label, placeholder, description string, limit int) *Field {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = 30

	return &Field{
		Key:         key,
		Label:       label,
		Description: description,
		input:       ti,
	}
}

// Value is the current text of the field.
func (f *Field) Value() string { return f.input.Value() }

// Placeholder is the hint shown while the field is empty.
func (f *Field) Placeholder() string { return f.input.Placeholder }

// Err is the inline validation message, "" when the field is valid.
func (f *Field) Err() string { return f.err }

// Form is a vertical list of fields followed by a Confirm button.
type Form struct {
	Title  string
	fields []*Field
	// focus indexes fields; len(fields) is the button.
	focus  int
	active bool
	busy   bool
}

// NewUserForm builds the create-user form.
func NewUserForm() *Form {
	return &Form{
		Title: "Create User",
		fields: []*Field{
			newField(form.FieldUserName, "Your Name", "New User's Name", "Input Name of New User", nameCharLimit),
		},
	}
}

// NewTaskForm builds the create-task form.
func NewTaskForm() *Form {
	return &Form{
		Title: "Create Task",
		fields: []*Field{
			newField(form.FieldTaskName, "Task Name", "Enter task name", "Please provide the task name.", nameCharLimit),
			newField(form.FieldPoints, "Points", "Enter points", "Enter the points for this task.", pointsCharLimit),
		},
	}
}

// Fields returns the form's fields in display order.
func (f *Form) Fields() []*Field { return f.fields }

// Focus gives the form keyboard focus on its current field.
func (f *Form) Focus() tea.Cmd {
	f.active = true
	return f.focusCurrent()
}

// Blur removes keyboard focus.
func (f *Form) Blur() {
	f.active = false
	for _, fld := range f.fields {
		fld.input.Blur()
	}
}

// Focused reports whether the form has keyboard focus.
func (f *Form) Focused() bool { return f.active }

// FocusIndex is the focused field index; len(Fields()) means the button.
func (f *Form) FocusIndex() int { return f.focus }

// OnButton reports whether the Confirm button is focused.
func (f *Form) OnButton() bool { return f.focus == len(f.fields) }

// NextField moves focus down, wrapping from the button to the first field.
func (f *Form) NextField() tea.Cmd {
	f.focus = (f.focus + 1) % (len(f.fields) + 1)
	return f.focusCurrent()
}

// PrevField moves focus up, wrapping from the first field to the button.
func (f *Form) PrevField() tea.Cmd {
	f.focus = (f.focus + len(f.fields)) % (len(f.fields) + 1)
	return f.focusCurrent()
}

func (f *Form) focusCurrent() tea.Cmd {
	var cmd tea.Cmd
	for i, fld := range f.fields {
		if f.active && i == f.focus {
			cmd = fld.input.Focus()
			continue
		}
		fld.input.Blur()
	}
	return cmd
}

// Update forwards a message to the focused field. Input is ignored while a
// submission is in flight.
func (f *Form) Update(msg tea.Msg) tea.Cmd {
	if !f.active || f.busy || f.OnButton() {
		return nil
	}
	fld := f.fields[f.focus]
	var cmd tea.Cmd
	fld.input, cmd = fld.input.Update(msg)
	return cmd
}

func (f *Form) field(key string) *Field {
	for _, fld := range f.fields {
		if fld.Key == key {
			return fld
		}
	}
	return nil
}

// Value returns the text of the field with the given key.
func (f *Form) Value(key string) string {
	if fld := f.field(key); fld != nil {
		return fld.Value()
	}
	return ""
}

// SetValue replaces the text of the field with the given key.
func (f *Form) SetValue(key, value string) {
	if fld := f.field(key); fld != nil {
		fld.input.SetValue(value)
	}
}

// Error returns the inline message of the field with the given key.
func (f *Form) Error(key string) string {
	if fld := f.field(key); fld != nil {
		return fld.err
	}
	return ""
}

// SetErrors shows errs under their fields and clears the others.
func (f *Form) SetErrors(errs form.Errors) {
	for _, fld := range f.fields {
		fld.err = errs.Message(fld.Key)
	}
}

// HasErrors reports whether any field shows a message.
func (f *Form) HasErrors() bool {
	for _, fld := range f.fields {
		if fld.err != "" {
			return true
		}
	}
	return false
}

// Reset clears values and messages and moves focus to the first field.
func (f *Form) Reset() tea.Cmd {
	for _, fld := range f.fields {
		fld.input.Reset()
		fld.err = ""
	}
	f.focus = 0
	f.busy = false
	return f.focusCurrent()
}

// SetBusy marks a submission as in flight.
func (f *Form) SetBusy(busy bool) { f.busy = busy }

// Busy reports whether a submission is in flight.
func (f *Form) Busy() bool { return f.busy }

// ValidateUser validates the create-user fields and shows any messages.
func (f *Form) ValidateUser() (form.User, bool) {
	u, errs := form.ValidateUser(f.Value(form.FieldUserName))
	f.SetErrors(errs)
	return u, len(errs) == 0
}

// ValidateTask validates the create-task fields and shows any messages.
func (f *Form) ValidateTask() (form.Task, bool) {
	t, errs := form.ValidateTask(f.Value(form.FieldTaskName), f.Value(form.FieldPoints))
	f.SetErrors(errs)
	return t, len(errs) == 0
}

// View renders the form into width columns.
func (f *Form) View(s *styles.Styles, width int) string {
	var b strings.Builder

	for i, fld := range f.fields {
		label := s.FieldLabel
		if f.active && i == f.focus {
			label = s.FieldLabelFocused
		}
		fld.input.Width = max(width-lipgloss.Width(fld.input.Prompt)-1, 1)

		b.WriteString(label.Render(fld.Label))
		b.WriteString("\n")
		b.WriteString(fld.input.View())
		b.WriteString("\n")
		b.WriteString(s.FieldDescription.Render(fld.Description))
		b.WriteString("\n")
		if fld.err != "" {
			b.WriteString(s.FieldError.Render(fld.err))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	button := s.Button
	if f.active && f.OnButton() {
		button = s.ButtonFocused
	}
	text := confirmLabel
	if f.busy {
		text = confirmLabel + "…"
	}
	b.WriteString(button.Render(text))

	return b.String()
}
