package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/MissQuinn-dev/todo-frontend/internal/board"
	"github.com/MissQuinn-dev/todo-frontend/internal/errors"
	"github.com/MissQuinn-dev/todo-frontend/internal/form"
)

var usersCmd = &cobra.Command{
	Use:     "users",
	Aliases: []string{"user"},
	Short:   "List, create and delete users",
}

var usersListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List users with their task count and total points",
	Args:    cobra.NoArgs,
	RunE:    runUsersList,
}

var usersCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a user",
	Args:  cobra.ExactArgs(1),
	RunE:  runUsersCreate,
}

var usersDeleteCmd = &cobra.Command{
	Use:     "delete <user-id>",
	Aliases: []string{"rm"},
	Short:   "Delete a user",
	Long: `Delete a user. Tasks assigned to the user are left in place.

The deletion is confirmed on the terminal unless --yes is given. Without a
terminal and without --yes the command refuses.`,
	Args: cobra.ExactArgs(1),
	RunE: runUsersDelete,
}

var (
	usersOutput string
	usersYes    bool
)

func init() {
	rootCmd.AddCommand(usersCmd)
	usersCmd.AddCommand(usersListCmd)
	usersCmd.AddCommand(usersCreateCmd)
	usersCmd.AddCommand(usersDeleteCmd)

	addOutputFlag(usersListCmd, &usersOutput)
	usersDeleteCmd.Flags().BoolVarP(&usersYes, "yes", "y", false, "Delete without asking")
}

func runUsersList(cmd *cobra.Command, args []string) error {
	if err := checkOutput(usersOutput); err != nil {
		return err
	}

	e, err := setup("cmd")
	if err != nil {
		return err
	}
	defer e.Close()

	users, err := e.svc.ListUsers(cmd.Context())
	if err != nil {
		e.logger.Failure("list users failed", err)
		return failed(board.MsgLoadUsersFailed, err)
	}

	if usersOutput == outputJSON {
		return writeJSON(cmd.OutOrStdout(), users)
	}
	return writeTable(cmd.OutOrStdout(), board.UserColumns(), users, board.NoUsers, nil)
}

func runUsersCreate(cmd *cobra.Command, args []string) error {
	user, errs := form.ValidateUser(args[0])
	if err := errs.Err(); err != nil {
		return err
	}

	e, err := setup("cmd")
	if err != nil {
		return err
	}
	defer e.Close()

	created, err := e.svc.CreateUser(cmd.Context(), user.Name)
	if err != nil {
		e.logger.Failure("create user failed", err)
		return failed(board.MsgCreateUserFailed, err)
	}

	e.logger.Info("user created", "id", created.ID)
	fmt.Fprintln(cmd.OutOrStdout(), board.UserCreatedMsg(created.Label()))
	return nil
}

func runUsersDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID("user", args[0])
	if err != nil {
		return err
	}

	e, err := setup("cmd")
	if err != nil {
		return err
	}
	defer e.Close()

	users, err := e.svc.ListUsers(cmd.Context())
	if err != nil {
		e.logger.Failure("list users failed", err)
		return failed(board.MsgLoadUsersFailed, err)
	}
	user, ok := board.NewUserIndex(users).Lookup(id)
	if !ok {
		return errors.NewNotFoundError("user", args[0])
	}

	if err := confirm(cmd, board.ConfirmDeleteUser(user.Name), usersYes); err != nil {
		return err
	}

	if err := e.svc.DeleteUser(cmd.Context(), user.ID); err != nil {
		e.logger.Failure("delete user failed", err, "id", user.ID)
		return failed(board.MsgDeleteUserFailed, err)
	}

	e.logger.Info("user deleted", "id", user.ID)
	fmt.Fprintln(cmd.OutOrStdout(), board.DeletedUserMsg(user.Name))
	return nil
}

// parseID parses a positive record ID argument.
func parseID(kind, arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, errors.NewValidationError(kind + " ID must be a positive integer").
			WithField(kind + "_id").WithValue(arg)
	}
	return id, nil
}
