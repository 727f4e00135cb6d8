// Package testutil provides testing utilities for todo-frontend tests: an
// in-memory api.Service that behaves like the REST backend and records
// every call made against it.
package testutil

import (
	"context"
	"slices"
	"strconv"
	"sync"

	"github.com/MissQuinn-dev/todo-frontend/internal/api"
	"github.com/MissQuinn-dev/todo-frontend/internal/errors"
	"github.com/MissQuinn-dev/todo-frontend/internal/todo"
)

// Call records one invocation of a FakeService method.
type Call struct {
	Method string
	Args   []any
}

// FakeService is an in-memory api.Service. Users carry their nested tasks
// and point totals the way the backend computes them.
type FakeService struct {
	mu     sync.Mutex
	users  []todo.User
	tasks  []todo.Task
	nextID int
	fail   map[string]error
	calls  []Call
}

var _ api.Service = (*FakeService)(nil)

// NewFakeService creates an empty backend. IDs start at 1.
func NewFakeService() *FakeService {
	return &FakeService{nextID: 1, fail: make(map[string]error)}
}

// WithUsers seeds users. Nested tasks and totals are ignored; they are
// derived from the seeded tasks.
func (f *FakeService) WithUsers(users ...todo.User) *FakeService {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range users {
		f.users = append(f.users, todo.User{ID: u.ID, Name: u.Name})
		f.nextID = max(f.nextID, u.ID+1)
	}
	return f
}

// WithTasks seeds tasks.
func (f *FakeService) WithTasks(tasks ...todo.Task) *FakeService {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, t := range tasks {
		f.tasks = append(f.tasks, t)
		f.nextID = max(f.nextID, t.ID+1)
	}
	return f
}

// FailOn makes every later call to method return err. A nil err clears it.
func (f *FakeService) FailOn(method string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err == nil {
		delete(f.fail, method)
		return
	}
	f.fail[method] = err
}

// Calls returns the recorded calls in order.
func (f *FakeService) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.calls)
}

// CallCount returns how many times method was called.
func (f *FakeService) CallCount(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c.Method == method {
			n++
		}
	}
	return n
}

// Mutations returns the calls that change backend state.
func (f *FakeService) Mutations() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []Call
	for _, c := range f.calls {
		switch c.Method {
		case "CreateUser", "DeleteUser", "CreateTask", "AssignTask", "DeleteTask":
			out = append(out, c)
		}
	}
	return out
}

// record must be called with mu held.
func (f *FakeService) record(ctx context.Context, method string, args ...any) error {
	f.calls = append(f.calls, Call{Method: method, Args: args})
	if err := ctx.Err(); err != nil {
		return errors.Wrap(errors.ErrCanceled, err.Error())
	}
	return f.fail[method]
}

func notFound(method, path string) error {
	return errors.NewAPIError(method, path, nil).WithStatus(404)
}

// ListUsers returns the users with their nested tasks and point totals.
func (f *FakeService) ListUsers(ctx context.Context) ([]todo.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record(ctx, "ListUsers"); err != nil {
		return nil, err
	}
	return f.usersLocked(), nil
}

func (f *FakeService) usersLocked() []todo.User {
	out := make([]todo.User, 0, len(f.users))
	for _, u := range f.users {
		u.Tasks = []todo.Task{}
		u.TotalPoints = 0
		for _, t := range f.tasks {
			if id, ok := t.Assignee.ID(); ok && id == u.ID {
				u.Tasks = append(u.Tasks, t)
				u.TotalPoints += t.Points
			}
		}
		out = append(out, u)
	}
	return out
}

// CreateUser adds a user and returns its ID.
func (f *FakeService) CreateUser(ctx context.Context, name string) (api.Created, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record(ctx, "CreateUser", name); err != nil {
		return api.Created{}, err
	}
	id := f.nextID
	f.nextID++
	f.users = append(f.users, todo.User{ID: id, Name: name})
	return api.Created{ID: id, Raw: `{"ID":` + strconv.Itoa(id) + `}`}, nil
}

// DeleteUser removes a user. Tasks keep their dangling assignee.
func (f *FakeService) DeleteUser(ctx context.Context, userID int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record(ctx, "DeleteUser", userID); err != nil {
		return err
	}
	i := slices.IndexFunc(f.users, func(u todo.User) bool { return u.ID == userID })
	if i < 0 {
		return notFound("DELETE", "/api/v1/user/"+strconv.Itoa(userID))
	}
	f.users = slices.Delete(f.users, i, i+1)
	return nil
}

// ListTasks returns every task.
func (f *FakeService) ListTasks(ctx context.Context) ([]todo.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record(ctx, "ListTasks"); err != nil {
		return nil, err
	}
	return append([]todo.Task{}, f.tasks...), nil
}

// CreateTask adds an unassigned task and returns its ID.
func (f *FakeService) CreateTask(ctx context.Context, name string, points int) (api.Created, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record(ctx, "CreateTask", name, points); err != nil {
		return api.Created{}, err
	}
	id := f.nextID
	f.nextID++
	f.tasks = append(f.tasks, todo.Task{ID: id, Name: name, Points: points})
	return api.Created{ID: id, Raw: `{"ID":` + strconv.Itoa(id) + `}`}, nil
}

// AssignTask sets a task's assignee.
func (f *FakeService) AssignTask(ctx context.Context, taskID int, assignee todo.UserRef) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record(ctx, "AssignTask", taskID, assignee.WireValue()); err != nil {
		return err
	}
	i := slices.IndexFunc(f.tasks, func(t todo.Task) bool { return t.ID == taskID })
	if i < 0 {
		return notFound("PUT", "/api/v1/task/"+strconv.Itoa(taskID))
	}
	f.tasks[i].Assignee = assignee
	return nil
}

// DeleteTask removes a task.
func (f *FakeService) DeleteTask(ctx context.Context, taskID int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record(ctx, "DeleteTask", taskID); err != nil {
		return err
	}
	i := slices.IndexFunc(f.tasks, func(t todo.Task) bool { return t.ID == taskID })
	if i < 0 {
		return notFound("DELETE", "/api/v1/task/"+strconv.Itoa(taskID))
	}
	f.tasks = slices.Delete(f.tasks, i, i+1)
	return nil
}

// FetchBoard returns tasks and users. A failure configured for either
// ListTasks or ListUsers fails the whole fetch.
func (f *FakeService) FetchBoard(ctx context.Context) (api.Board, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record(ctx, "FetchBoard"); err != nil {
		return api.Board{}, err
	}
	if err := f.fail["ListTasks"]; err != nil {
		return api.Board{}, err
	}
	if err := f.fail["ListUsers"]; err != nil {
		return api.Board{}, err
	}
	return api.Board{Tasks: append([]todo.Task{}, f.tasks...), Users: f.usersLocked()}, nil
}
