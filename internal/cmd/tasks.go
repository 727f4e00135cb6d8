package cmd

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/MissQuinn-dev/todo-frontend/internal/board"
	"github.com/MissQuinn-dev/todo-frontend/internal/errors"
	"github.com/MissQuinn-dev/todo-frontend/internal/form"
	"github.com/MissQuinn-dev/todo-frontend/internal/todo"
)

// unassignedText replaces the assign control in CLI tables.
const unassignedText = "unassigned"

var tasksCmd = &cobra.Command{
	Use:     "tasks",
	Aliases: []string{"task"},
	Short:   "List, create, assign and delete tasks",
}

var tasksListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List tasks with their assignee",
	Args:    cobra.NoArgs,
	RunE:    runTasksList,
}

var tasksCreateCmd = &cobra.Command{
	Use:   "create <name> <points>",
	Short: "Create an unassigned task",
	Args:  cobra.ExactArgs(2),
	RunE:  runTasksCreate,
}

var tasksAssignCmd = &cobra.Command{
	Use:   "assign <task-id> <user-id>",
	Short: "Assign a task to a user",
	Long: `Assign an unassigned task to a user.

A task whose assignee still exists is not reassigned; complete or delete it
instead. A task whose assignee was deleted can be assigned again.`,
	Args: cobra.ExactArgs(2),
	RunE: runTasksAssign,
}

var tasksDeleteCmd = &cobra.Command{
	Use:     "delete <task-id>",
	Aliases: []string{"complete", "rm"},
	Short:   "Delete or complete a task",
	Long: `Delete a task. Completing an assigned task also deletes it, which is
why "complete" is an alias.

The deletion is confirmed on the terminal unless --yes is given. Without a
terminal and without --yes the command refuses.`,
	Args: cobra.ExactArgs(1),
	RunE: runTasksDelete,
}

var (
	tasksOutput string
	tasksYes    bool
)

func init() {
	rootCmd.AddCommand(tasksCmd)
	tasksCmd.AddCommand(tasksListCmd)
	tasksCmd.AddCommand(tasksCreateCmd)
	tasksCmd.AddCommand(tasksAssignCmd)
	tasksCmd.AddCommand(tasksDeleteCmd)

	addOutputFlag(tasksListCmd, &tasksOutput)
	tasksDeleteCmd.Flags().BoolVarP(&tasksYes, "yes", "y", false, "Delete without asking")
}

func runTasksList(cmd *cobra.Command, args []string) error {
	if err := checkOutput(tasksOutput); err != nil {
		return err
	}

	e, err := setup("cmd")
	if err != nil {
		return err
	}
	defer e.Close()

	b, err := e.svc.FetchBoard(cmd.Context())
	if err != nil {
		e.logger.Failure("fetch board failed", err)
		return failed(board.MsgLoadTasksFailed, err)
	}

	if tasksOutput == outputJSON {
		return writeJSON(cmd.OutOrStdout(), b.Tasks)
	}

	ix := board.NewUserIndex(b.Users)
	return writeTable(cmd.OutOrStdout(), board.TaskColumns(ix), b.Tasks, board.NoTasks,
		func(key string, t todo.Task, text string) string {
			if key == board.ColUser && board.NeedsAssign(t, ix) {
				return unassignedText
			}
			return text
		})
}

func runTasksCreate(cmd *cobra.Command, args []string) error {
	task, errs := form.ValidateTask(args[0], args[1])
	if err := errs.Err(); err != nil {
		return err
	}

	e, err := setup("cmd")
	if err != nil {
		return err
	}
	defer e.Close()

	created, err := e.svc.CreateTask(cmd.Context(), task.Name, task.Points)
	if err != nil {
		e.logger.Failure("create task failed", err)
		return failed(board.MsgCreateTaskFailed, err)
	}

	e.logger.Info("task created", "id", created.ID)
	fmt.Fprintln(cmd.OutOrStdout(), board.TaskCreatedMsg(created.Label()))
	return nil
}

func runTasksAssign(cmd *cobra.Command, args []string) error {
	taskID, err := parseID("task", args[0])
	if err != nil {
		return err
	}
	userID, err := parseID("user", args[1])
	if err != nil {
		return err
	}

	e, err := setup("cmd")
	if err != nil {
		return err
	}
	defer e.Close()

	b, err := e.svc.FetchBoard(cmd.Context())
	if err != nil {
		e.logger.Failure("fetch board failed", err)
		return failed(board.MsgLoadTasksFailed, err)
	}
	task, err := findTask(b.Tasks, taskID)
	if err != nil {
		return err
	}
	ix := board.NewUserIndex(b.Users)
	if !board.NeedsAssign(task, ix) {
		return errors.NewValidationError(
			fmt.Sprintf("task %q is already assigned to %s", task.Name, board.AssigneeName(task, ix))).
			WithField("task_id").WithValue(task.ID)
	}
	user, ok := ix.Lookup(userID)
	if !ok {
		return errors.NewNotFoundError("user", args[1])
	}

	if err := e.svc.AssignTask(cmd.Context(), task.ID, todo.AssignedTo(user.ID)); err != nil {
		e.logger.Failure("assign task failed", err, "task", task.ID, "user", user.ID)
		return failed(board.MsgAssignFailed, err)
	}

	e.logger.Info("task assigned", "task", task.ID, "user", user.ID)
	fmt.Fprintln(cmd.OutOrStdout(), board.AssignedMsg(user.Name))
	return nil
}

func runTasksDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID("task", args[0])
	if err != nil {
		return err
	}

	e, err := setup("cmd")
	if err != nil {
		return err
	}
	defer e.Close()

	tasks, err := e.svc.ListTasks(cmd.Context())
	if err != nil {
		e.logger.Failure("list tasks failed", err)
		return failed(board.MsgLoadTasksFailed, err)
	}
	task, err := findTask(tasks, id)
	if err != nil {
		return err
	}

	if err := confirm(cmd, board.ConfirmDeleteTask(task.Name), tasksYes); err != nil {
		return err
	}

	if err := e.svc.DeleteTask(cmd.Context(), task.ID); err != nil {
		e.logger.Failure("delete task failed", err, "id", task.ID)
		return failed(board.MsgDeleteTaskFailed, err)
	}

	e.logger.Info("task deleted", "id", task.ID)
	fmt.Fprintln(cmd.OutOrStdout(), board.DeletedTaskMsg(task.Name))
	return nil
}

func findTask(tasks []todo.Task, id int) (todo.Task, error) {
	i := slices.IndexFunc(tasks, func(t todo.Task) bool { return t.ID == id })
	if i < 0 {
		return todo.Task{}, errors.NewNotFoundError("task", strconv.Itoa(id))
	}
	return tasks[i], nil
}
