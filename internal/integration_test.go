// Package internal contains integration tests that verify the packages work
// together: the HTTP client against a stateful REST backend, the board
// helpers over what it returns, and the request log it leaves behind.
package internal

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/bytedance/sonic"

	"github.com/MissQuinn-dev/todo-frontend/internal/api"
	"github.com/MissQuinn-dev/todo-frontend/internal/board"
	"github.com/MissQuinn-dev/todo-frontend/internal/errors"
	"github.com/MissQuinn-dev/todo-frontend/internal/logging"
	"github.com/MissQuinn-dev/todo-frontend/internal/testutil"
	"github.com/MissQuinn-dev/todo-frontend/internal/todo"
)

// newRESTBackend serves the backend's REST routes from svc.
func newRESTBackend(svc *testutil.FakeService) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/v1/user", func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.ListUsers(r.Context())
		reply(w, users, err)
	})
	mux.HandleFunc("POST /api/v1/user", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Name string `json:"name"`
		}
		if err := sonic.ConfigStd.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		created, err := svc.CreateUser(r.Context(), body.Name)
		reply(w, map[string]int{"ID": created.ID}, err)
	})
	mux.HandleFunc("DELETE /api/v1/user/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.Atoi(r.PathValue("id"))
		reply(w, nil, svc.DeleteUser(r.Context(), id))
	})

	mux.HandleFunc("GET /api/v1/task", func(w http.ResponseWriter, r *http.Request) {
		tasks, err := svc.ListTasks(r.Context())
		reply(w, tasks, err)
	})
	mux.HandleFunc("POST /api/v1/task", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Name   string `json:"name"`
			Points int    `json:"points"`
		}
		if err := sonic.ConfigStd.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		created, err := svc.CreateTask(r.Context(), body.Name, body.Points)
		reply(w, map[string]int{"ID": created.ID}, err)
	})
	mux.HandleFunc("PUT /api/v1/task/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.Atoi(r.PathValue("id"))
		var body struct {
			Assignee todo.UserRef `json:"user_id"`
		}
		if err := sonic.ConfigStd.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		reply(w, nil, svc.AssignTask(r.Context(), id, body.Assignee))
	})
	mux.HandleFunc("DELETE /api/v1/task/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.Atoi(r.PathValue("id"))
		reply(w, nil, svc.DeleteTask(r.Context(), id))
	})

	return mux
}

func reply(w http.ResponseWriter, v any, err error) {
	switch {
	case errors.Is(err, errors.ErrNotFound):
		http.Error(w, `{"error":"record not found"}`, http.StatusNotFound)
	case err != nil:
		http.Error(w, `{"error":"internal"}`, http.StatusInternalServerError)
	case v == nil:
		w.WriteHeader(http.StatusOK)
	default:
		w.Header().Set("Content-Type", "application/json")
		_ = sonic.ConfigStd.NewEncoder(w).Encode(v)
	}
}

func newIntegrationClient(t *testing.T, svc *testutil.FakeService, logger *logging.Logger) *api.Client {
	t.Helper()
	srv := httptest.NewServer(newRESTBackend(svc))
	t.Cleanup(srv.Close)

	client, err := api.NewClient(srv.URL, api.WithLogger(logger.WithComponent("api")))
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	return client
}

// TestBoardLifecycle walks a task through create, assign, assignee
// deletion and completion over real HTTP.
func TestBoardLifecycle(t *testing.T) {
	ctx := context.Background()
	client := newIntegrationClient(t, testutil.NewFakeService(), logging.NopLogger())

	alice, err := client.CreateUser(ctx, "Alice")
	if err != nil || alice.ID != 1 {
		t.Fatalf("CreateUser() = %+v, %v", alice, err)
	}
	ship, err := client.CreateTask(ctx, "Ship", 3)
	if err != nil || ship.ID != 2 {
		t.Fatalf("CreateTask() = %+v, %v", ship, err)
	}
	if got := board.TaskCreatedMsg(ship.Label()); got != "Task created successfully: 2" {
		t.Errorf("TaskCreatedMsg = %q", got)
	}

	b, err := client.FetchBoard(ctx)
	if err != nil {
		t.Fatalf("FetchBoard() error = %v", err)
	}
	ix := board.NewUserIndex(b.Users)
	if len(b.Tasks) != 1 || !board.NeedsAssign(b.Tasks[0], ix) {
		t.Fatalf("new task should need assignment: %+v", b.Tasks)
	}

	if err := client.AssignTask(ctx, ship.ID, todo.AssignedTo(alice.ID)); err != nil {
		t.Fatalf("AssignTask() error = %v", err)
	}

	b, err = client.FetchBoard(ctx)
	if err != nil {
		t.Fatalf("FetchBoard() error = %v", err)
	}
	ix = board.NewUserIndex(b.Users)
	if got := board.AssigneeName(b.Tasks[0], ix); got != "Alice" {
		t.Errorf("AssigneeName() = %q, want Alice", got)
	}
	if b.Users[0].TotalPoints != 3 || b.Users[0].TaskCount() != 1 {
		t.Errorf("Alice totals = %d points, %d tasks", b.Users[0].TotalPoints, b.Users[0].TaskCount())
	}

	// Deleting the assignee leaves a dangling reference that shows the
	// assign control again.
	if err := client.DeleteUser(ctx, alice.ID); err != nil {
		t.Fatalf("DeleteUser() error = %v", err)
	}
	b, err = client.FetchBoard(ctx)
	if err != nil {
		t.Fatalf("FetchBoard() error = %v", err)
	}
	ix = board.NewUserIndex(b.Users)
	if !b.Tasks[0].Assignee.IsAssigned() || !board.NeedsAssign(b.Tasks[0], ix) {
		t.Errorf("dangling assignee not offered for reassignment: %+v", b.Tasks[0])
	}

	if err := client.DeleteTask(ctx, ship.ID); err != nil {
		t.Fatalf("DeleteTask() error = %v", err)
	}
	err = client.DeleteTask(ctx, ship.ID)
	if !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("second DeleteTask() error = %v, want not found", err)
	}
}

func TestBackendFailureFailsWholeFetch(t *testing.T) {
	svc := testutil.NewFakeService().WithUsers(todo.User{ID: 1, Name: "Alice"})
	svc.FailOn("ListUsers", errors.ErrRequestFailed)
	client := newIntegrationClient(t, svc, logging.NopLogger())

	b, err := client.FetchBoard(context.Background())
	if !errors.Is(err, errors.ErrRequestFailed) {
		t.Fatalf("FetchBoard() error = %v, want request failed", err)
	}
	var apiErr *errors.APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("error = %#v, want HTTP 500", err)
	}
	if len(b.Tasks) != 0 || len(b.Users) != 0 {
		t.Errorf("partial board returned: %+v", b)
	}
}

// TestRequestLog checks that every request leaves a log entry tagged with
// its component and request ID, readable by the log viewer.
func TestRequestLog(t *testing.T) {
	dir := t.TempDir()
	logger, err := logging.NewLogger(dir, logging.LevelDebug, logging.DefaultRotationConfig())
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}
	client := newIntegrationClient(t, testutil.NewFakeService(), logger)

	ctx := context.Background()
	if _, err := client.CreateUser(ctx, "Alice"); err != nil {
		t.Fatal(err)
	}
	if _, err := client.FetchBoard(ctx); err != nil {
		t.Fatal(err)
	}
	if err := client.DeleteTask(ctx, 42); err == nil {
		t.Fatal("DeleteTask(42) error = nil, want not found")
	}
	if err := logger.Close(); err != nil {
		t.Fatal(err)
	}

	entries, err := logging.ReadLogs(filepath.Join(dir, logging.LogFileName))
	if err != nil {
		t.Fatalf("ReadLogs() error = %v", err)
	}

	completed := logging.FilterLogs(entries, logging.LogFilter{Component: "api"})
	ids := make(map[string]bool)
	for _, e := range completed {
		if e.RequestID == "" {
			t.Errorf("entry without request ID: %+v", e)
		}
		ids[e.RequestID] = true
	}
	// CreateUser, the two FetchBoard requests and DeleteTask.
	if len(ids) != 4 {
		t.Errorf("distinct request IDs = %d, want 4", len(ids))
	}

	warnings := logging.FilterLogs(entries, logging.LogFilter{Level: logging.LevelWarn})
	if len(warnings) == 0 {
		t.Error("404 response was not logged as a warning")
	}
}
