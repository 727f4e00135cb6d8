package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MissQuinn-dev/todo-frontend/internal/api"
	"github.com/MissQuinn-dev/todo-frontend/internal/board"
	"github.com/MissQuinn-dev/todo-frontend/internal/config"
	"github.com/MissQuinn-dev/todo-frontend/internal/logging"
	"github.com/MissQuinn-dev/todo-frontend/internal/todo"
	"github.com/MissQuinn-dev/todo-frontend/internal/tui/input"
	"github.com/MissQuinn-dev/todo-frontend/internal/tui/keymap"
	"github.com/MissQuinn-dev/todo-frontend/internal/tui/msg"
	"github.com/MissQuinn-dev/todo-frontend/internal/tui/styles"
	"github.com/MissQuinn-dev/todo-frontend/internal/tui/view"
)

// AppTitle is shown in the header.
const AppTitle = "The ToDo App"

// Options configures a Model. Zero values fall back to the defaults of
// config.Default.
type Options struct {
	Keymap        *keymap.Keymap
	Styles        *styles.Styles
	Theme         string
	PageSize      int
	ToastDuration time.Duration
	MaxToasts     int
	Logger        *logging.Logger
	// Subtitle is shown next to the title, typically the backend URL.
	Subtitle string
}

// OptionsFromConfig builds Options from the TUI section of cfg. Invalid
// custom key bindings are logged and skipped; an unloadable theme falls
// back to the default palette.
func OptionsFromConfig(cfg *config.Config, logger *logging.Logger) Options {
	if logger == nil {
		logger = logging.NopLogger()
	}

	km := keymap.DefaultKeymap()
	for _, err := range km.ApplyBindings(cfg.TUI.KeyBindings) {
		logger.Warn("ignoring key binding", "error", err)
	}

	st, err := styles.Load(cfg.TUI.Theme)
	if err != nil {
		logger.Warn("falling back to default theme", "theme", cfg.TUI.Theme, "error", err)
		st = styles.New(nil)
	}

	return Options{
		Keymap:        km,
		Styles:        st,
		Theme:         cfg.TUI.Theme,
		PageSize:      cfg.TUI.PageSize,
		ToastDuration: cfg.TUI.ToastDuration,
		MaxToasts:     cfg.TUI.MaxToasts,
		Logger:        logger,
		Subtitle:      cfg.API.BaseURL,
	}
}

// confirmState is an open yes/no prompt. action runs only on yes.
type confirmState struct {
	prompt string
	action tea.Cmd
}

// assignState is the open "Select User" menu for one task.
type assignState struct {
	task   todo.Task
	users  []todo.User
	cursor int
}

// Model holds the TUI application state
type Model struct {
	ctx    context.Context
	svc    api.Service
	logger *logging.Logger

	keymap   *keymap.Keymap
	styles   *styles.Styles
	theme    string
	subtitle string

	// UI state
	width    int
	height   int
	ready    bool
	quitting bool
	focus    pane
	showHelp bool

	// filtering is set while the focused table's filter box has the keys.
	filtering bool
	confirm   *confirmState
	assign    *assignState

	userForm *input.Form
	taskForm *input.Form
	users    *tablePane[todo.User]
	tasks    *tablePane[todo.Task]
	// index resolves task assignees. It comes from the users fetched along
	// with the tasks, not from the users table.
	index board.UserIndex

	toasts  *toastQueue
	spinner spinner.Model
}

// NewModel creates a new TUI model. Requests made by the model use ctx, so
// canceling it aborts any in-flight call.
func NewModel(ctx context.Context, svc api.Service, opts Options) Model {
	def := config.Default().TUI
	if opts.Keymap == nil {
		opts.Keymap = keymap.DefaultKeymap()
	}
	if opts.Styles == nil {
		opts.Styles = styles.New(nil)
	}
	if opts.PageSize <= 0 {
		opts.PageSize = def.PageSize
	}
	if opts.ToastDuration <= 0 {
		opts.ToastDuration = def.ToastDuration
	}
	if opts.MaxToasts <= 0 {
		opts.MaxToasts = def.MaxToasts
	}
	if opts.Logger == nil {
		opts.Logger = logging.NopLogger()
	}

	ix := board.NewUserIndex(nil)
	return Model{
		ctx:      ctx,
		svc:      svc,
		logger:   opts.Logger.WithComponent("tui"),
		keymap:   opts.Keymap,
		styles:   opts.Styles,
		theme:    opts.Theme,
		subtitle: opts.Subtitle,
		focus:    paneTasks,
		userForm: input.NewUserForm(),
		taskForm: input.NewTaskForm(),
		users: newTablePane(board.UserColumns(), opts.PageSize, board.ColUserName, paneText{
			title:       "Users",
			placeholder: "Filter users...",
			empty:       board.NoUsers,
			loading:     "Loading users...",
			failed:      board.MsgLoadUsersFailed,
		}),
		tasks: newTablePane(board.TaskColumns(ix), opts.PageSize, board.ColTaskName, paneText{
			title:       "Tasks",
			placeholder: "Filter tasks...",
			empty:       board.NoTasks,
			loading:     "Loading…",
			failed:      board.MsgLoadTasksFailed,
		}),
		index:   ix,
		toasts:  newToastQueue(opts.MaxToasts, opts.ToastDuration),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(opts.Styles.Spinner)),
	}
}

// Init starts the first fetch of both tables.
func (m Model) Init() tea.Cmd {
	return m.refetch(msg.ScopeAll)
}

// mode is the keymap mode for the current state. Overlays take precedence
// over focus.
func (m Model) mode() keymap.Mode {
	switch {
	case m.showHelp:
		return keymap.ModeHelp
	case m.confirm != nil:
		return keymap.ModeConfirm
	case m.assign != nil:
		return keymap.ModeAssign
	case m.filtering:
		return keymap.ModeFilter
	case m.focus.isForm():
		return keymap.ModeForm
	default:
		return keymap.ModeNormal
	}
}

// refetch starts fetches for the collections in scope. Pane state lives
// behind pointers, so this is safe from a value receiver.
func (m Model) refetch(scope msg.Scope) tea.Cmd {
	var cmds []tea.Cmd
	if scope.Has(msg.ScopeUsers) {
		cmds = append(cmds, msg.FetchUsers(m.ctx, m.svc, m.users.begin()))
	}
	if scope.Has(msg.ScopeTasks) {
		cmds = append(cmds, msg.FetchBoard(m.ctx, m.svc, m.tasks.begin()))
	}
	if len(cmds) == 0 {
		return nil
	}
	cmds = append(cmds, m.spinner.Tick)
	return tea.Batch(cmds...)
}

func (m Model) loading() bool {
	return m.users.loading() || m.tasks.loading()
}

// focusedForm returns the form with focus, or nil.
func (m Model) focusedForm() *input.Form {
	switch m.focus {
	case paneUserForm:
		return m.userForm
	case paneTaskForm:
		return m.taskForm
	default:
		return nil
	}
}

// setFocus moves focus to p and returns the cursor blink command of a
// focused form.
func (m *Model) setFocus(p pane) tea.Cmd {
	m.focus = (p%paneCount + paneCount) % paneCount
	m.userForm.Blur()
	m.taskForm.Blur()
	if f := m.focusedForm(); f != nil {
		return f.Focus()
	}
	return nil
}

func (m Model) toast(kind view.ToastKind, text string) tea.Cmd {
	return m.toasts.push(kind, text)
}
