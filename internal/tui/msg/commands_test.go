package msg

import (
	"context"
	"testing"
	"time"

	"github.com/MissQuinn-dev/todo-frontend/internal/errors"
	"github.com/MissQuinn-dev/todo-frontend/internal/form"
	"github.com/MissQuinn-dev/todo-frontend/internal/testutil"
	"github.com/MissQuinn-dev/todo-frontend/internal/todo"
)

func TestScope(t *testing.T) {
	tests := []struct {
		scope Scope
		other Scope
		has   bool
		str   string
	}{
		{ScopeAll, ScopeUsers, true, "users+tasks"},
		{ScopeAll, ScopeTasks, true, "users+tasks"},
		{ScopeTasks, ScopeUsers, false, "tasks"},
		{ScopeUsers, ScopeAll, false, "users"},
		{ScopeNone, ScopeNone, false, "none"},
	}
	for _, tt := range tests {
		if got := tt.scope.Has(tt.other); got != tt.has {
			t.Errorf("%v.Has(%v) = %v, want %v", tt.scope, tt.other, got, tt.has)
		}
		if got := tt.scope.String(); got != tt.str {
			t.Errorf("String() = %q, want %q", got, tt.str)
		}
	}
}

func TestFetchCommands(t *testing.T) {
	svc := testutil.NewFakeService().
		WithUsers(todo.User{ID: 2, Name: "Bob"}).
		WithTasks(todo.Task{ID: 5, Name: "Ship", Points: 3, Assignee: todo.AssignedTo(2)})
	ctx := context.Background()

	users, ok := FetchUsers(ctx, svc, 7)().(UsersLoadedMsg)
	if !ok {
		t.Fatal("FetchUsers did not return UsersLoadedMsg")
	}
	if users.Seq != 7 || users.Err != nil || len(users.Users) != 1 || users.Users[0].TotalPoints != 3 {
		t.Errorf("UsersLoadedMsg = %+v", users)
	}

	b, ok := FetchBoard(ctx, svc, 8)().(BoardLoadedMsg)
	if !ok {
		t.Fatal("FetchBoard did not return BoardLoadedMsg")
	}
	if b.Seq != 8 || b.Err != nil || len(b.Board.Tasks) != 1 || len(b.Board.Users) != 1 {
		t.Errorf("BoardLoadedMsg = %+v", b)
	}

	svc.FailOn("ListUsers", errors.ErrRequestFailed)
	if users := FetchUsers(ctx, svc, 9)().(UsersLoadedMsg); users.Err == nil {
		t.Error("FetchUsers swallowed the error")
	}
	if b := FetchBoard(ctx, svc, 10)().(BoardLoadedMsg); b.Err == nil {
		t.Error("FetchBoard succeeded with users failing")
	}
}

func TestMutationCommands(t *testing.T) {
	bob := todo.User{ID: 2, Name: "Bob"}
	unassigned := todo.Task{ID: 5, Name: "Ship", Points: 1}
	assigned := todo.Task{ID: 6, Name: "Docs", Points: 2, Assignee: todo.AssignedTo(2)}

	tests := []struct {
		name   string
		method string
		run    func(*testutil.FakeService) MutationMsg
		op     Op
		text   string
		scope  Scope
	}{
		{
			name:   "create user",
			method: "CreateUser",
			run: func(s *testutil.FakeService) MutationMsg {
				return CreateUser(context.Background(), s, form.User{Name: "Alice"})().(MutationMsg)
			},
			op:    OpCreateUser,
			text:  "User created successfully: 7",
			scope: ScopeAll,
		},
		{
			name:   "create task",
			method: "CreateTask",
			run: func(s *testutil.FakeService) MutationMsg {
				return CreateTask(context.Background(), s, form.Task{Name: "Write docs", Points: 3})().(MutationMsg)
			},
			op:    OpCreateTask,
			text:  "Task created successfully: 7",
			scope: ScopeTasks,
		},
		{
			name:   "assign task",
			method: "AssignTask",
			run: func(s *testutil.FakeService) MutationMsg {
				return AssignTask(context.Background(), s, unassigned, bob)().(MutationMsg)
			},
			op:    OpAssignTask,
			text:  "Assigned to Bob",
			scope: ScopeAll,
		},
		{
			name:   "delete unassigned task",
			method: "DeleteTask",
			run: func(s *testutil.FakeService) MutationMsg {
				return DeleteTask(context.Background(), s, unassigned)().(MutationMsg)
			},
			op:    OpDeleteTask,
			text:  `Deleted "Ship"`,
			scope: ScopeTasks,
		},
		{
			name:   "complete assigned task",
			method: "DeleteTask",
			run: func(s *testutil.FakeService) MutationMsg {
				return DeleteTask(context.Background(), s, assigned)().(MutationMsg)
			},
			op:    OpDeleteTask,
			text:  `Deleted "Docs"`,
			scope: ScopeAll,
		},
		{
			name:   "delete user",
			method: "DeleteUser",
			run: func(s *testutil.FakeService) MutationMsg {
				return DeleteUser(context.Background(), s, bob)().(MutationMsg)
			},
			op:    OpDeleteUser,
			text:  `User "Bob" deleted successfully.`,
			scope: ScopeAll,
		},
	}

	failures := map[Op]string{
		OpCreateUser: "Failed to create user",
		OpCreateTask: "Failed to create task",
		OpAssignTask: "Error assigning user",
		OpDeleteTask: "Error deleting task",
		OpDeleteUser: "Failed to delete user",
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := testutil.NewFakeService().WithUsers(bob).WithTasks(unassigned, assigned)

			got := tt.run(svc)
			if got.Op != tt.op || got.Text != tt.text || got.Refetch != tt.scope || got.Err != nil {
				t.Errorf("success = %+v, want op=%v text=%q scope=%v", got, tt.op, tt.text, tt.scope)
			}

			svc.FailOn(tt.method, errors.ErrRequestFailed)
			got = tt.run(svc)
			if got.Err == nil || got.Text != failures[tt.op] || got.Refetch != ScopeNone {
				t.Errorf("failure = %+v, want text=%q and no refetch", got, failures[tt.op])
			}
		})
	}
}

func TestExpireToast(t *testing.T) {
	cmd := ExpireToast(3, 10*time.Millisecond)
	if cmd == nil {
		t.Fatal("ExpireToast() returned nil command")
	}

	start := time.Now()
	got, ok := cmd().(ToastExpiredMsg)
	if !ok || got.ID != 3 {
		t.Errorf("ExpireToast() message = %+v", got)
	}
	if time.Since(start) < 5*time.Millisecond {
		t.Error("ExpireToast() fired too early")
	}
}
