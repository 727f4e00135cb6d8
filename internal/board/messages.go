package board

import "fmt"

// Notification text shared by the terminal UI and the CLI.
const (
	MsgAssignFailed     = "Error assigning user"
	MsgDeleteTaskFailed = "Error deleting task"
	MsgDeleteUserFailed = "Failed to delete user"
	MsgCreateUserFailed = "Failed to create user"
	MsgCreateTaskFailed = "Failed to create task"
	MsgLoadTasksFailed  = "Failed to load tasks or users"
	MsgLoadUsersFailed  = "Failed to load users"
)

// AssignedMsg is shown after a successful assignment.
func AssignedMsg(userName string) string {
	return fmt.Sprintf("Assigned to %s", userName)
}

// DeletedTaskMsg is shown after a task is deleted or completed.
func DeletedTaskMsg(taskName string) string {
	return fmt.Sprintf("Deleted \"%s\"", taskName)
}

// DeletedUserMsg is shown after a user is deleted.
func DeletedUserMsg(userName string) string {
	return fmt.Sprintf("User \"%s\" deleted successfully.", userName)
}

// UserCreatedMsg is shown after a user is created. label is the new ID or
// the raw response.
func UserCreatedMsg(label string) string {
	return "User created successfully: " + label
}

// TaskCreatedMsg is shown after a task is created.
func TaskCreatedMsg(label string) string {
	return "Task created successfully: " + label
}

// ConfirmDeleteTask is the prompt gating a task delete.
func ConfirmDeleteTask(taskName string) string {
	return fmt.Sprintf("Delete task \"%s\"?", taskName)
}

// ConfirmDeleteUser is the prompt gating a user delete.
func ConfirmDeleteUser(userName string) string {
	return fmt.Sprintf("Are you sure you want to delete user \"%s\"?", userName)
}
