// Package api is the typed client for the ToDo REST backend.
//
// Every call takes a context, is attempted exactly once, and reports failures
// as *errors.APIError. List responses are validated before they are returned:
// soft-deleted records are dropped and records without a positive ID fail
// the call with errors.ErrInvalidResponse.
package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/sourcegraph/conc/pool"

	"github.com/MissQuinn-dev/todo-frontend/internal/errors"
	"github.com/MissQuinn-dev/todo-frontend/internal/logging"
	"github.com/MissQuinn-dev/todo-frontend/internal/todo"
)

const (
	usersPath = "/api/v1/user"
	tasksPath = "/api/v1/task"

	defaultTimeout = 10 * time.Second
	maxBodyBytes   = 4 << 20
)

// Service is the set of backend operations the UI and the CLI use.
type Service interface {
	ListUsers(ctx context.Context) ([]todo.User, error)
	CreateUser(ctx context.Context, name string) (Created, error)
	DeleteUser(ctx context.Context, userID int) error

	ListTasks(ctx context.Context) ([]todo.Task, error)
	CreateTask(ctx context.Context, name string, points int) (Created, error)
	AssignTask(ctx context.Context, taskID int, assignee todo.UserRef) error
	DeleteTask(ctx context.Context, taskID int) error

	// FetchBoard loads tasks and users concurrently. Both must succeed.
	FetchBoard(ctx context.Context) (Board, error)
}

// Board is the pair of collections the task table needs.
type Board struct {
	Tasks []todo.Task
	Users []todo.User
}

// Created describes the backend's answer to a create request.
type Created struct {
	// ID is the new record's ID, 0 if the response did not carry one.
	ID int
	// Raw is the response body as returned.
	Raw string
}

// Label is what the success toast shows: the ID, or the raw body when the
// backend did not return one.
func (c Created) Label() string {
	if c.ID > 0 {
		return strconv.Itoa(c.ID)
	}
	return c.Raw
}

// Client implements Service over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logging.Logger
	requestID  func() string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithTimeout bounds each request. 0 disables the timeout.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger sets the logger used for request logging.
func WithLogger(logger *logging.Logger) ClientOption {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger.WithComponent("api")
		}
	}
}

// WithRequestIDs overrides the X-Request-Id generator.
func WithRequestIDs(gen func() string) ClientOption {
	return func(c *Client) {
		if gen != nil {
			c.requestID = gen
		}
	}
}

// NewClient creates a client for the backend at baseURL, for example
// "http://localhost:3000".
func NewClient(baseURL string, opts ...ClientOption) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, errors.NewValidationError("base URL must be an absolute http or https URL").
			WithField("api.base_url").WithValue(baseURL)
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     logging.NopLogger(),
		requestID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the origin requests are sent to.
func (c *Client) BaseURL() string { return c.baseURL }

type createUserRequest struct {
	Name string `json:"name"`
}

type createTaskRequest struct {
	Name   string `json:"name"`
	Points int    `json:"points"`
}

type assignTaskRequest struct {
	Assignee todo.UserRef `json:"user_id"`
}

type createdResponse struct {
	ID int `json:"ID"`
}

// ListUsers returns every live user with their nested tasks.
func (c *Client) ListUsers(ctx context.Context) ([]todo.User, error) {
	var users []todo.User
	if _, err := c.do(ctx, http.MethodGet, usersPath, nil, &users); err != nil {
		return nil, err
	}
	clean, skipped, err := todo.CleanUsers(users)
	if err != nil {
		return nil, c.invalid(http.MethodGet, usersPath, err)
	}
	for _, u := range skipped {
		c.logger.Warn("skipping user without a usable ID", "id", u.ID, "name", u.Name)
	}
	return clean, nil
}

// CreateUser posts {name}.
func (c *Client) CreateUser(ctx context.Context, name string) (Created, error) {
	return c.create(ctx, usersPath, createUserRequest{Name: name})
}

// DeleteUser deletes the user with the given ID.
func (c *Client) DeleteUser(ctx context.Context, userID int) error {
	_, err := c.do(ctx, http.MethodDelete, usersPath+"/"+strconv.Itoa(userID), nil, nil)
	return err
}

// ListTasks returns every live task.
func (c *Client) ListTasks(ctx context.Context) ([]todo.Task, error) {
	var tasks []todo.Task
	if _, err := c.do(ctx, http.MethodGet, tasksPath, nil, &tasks); err != nil {
		return nil, err
	}
	clean, err := todo.CleanTasks(tasks)
	if err != nil {
		return nil, c.invalid(http.MethodGet, tasksPath, err)
	}
	return clean, nil
}

// CreateTask posts {name, points}.
func (c *Client) CreateTask(ctx context.Context, name string, points int) (Created, error) {
	return c.create(ctx, tasksPath, createTaskRequest{Name: name, Points: points})
}

// AssignTask puts {user_id} on the task. An unassigned ref sends 0.
func (c *Client) AssignTask(ctx context.Context, taskID int, assignee todo.UserRef) error {
	_, err := c.do(ctx, http.MethodPut, tasksPath+"/"+strconv.Itoa(taskID), assignTaskRequest{Assignee: assignee}, nil)
	return err
}

// DeleteTask deletes (completes) the task with the given ID.
func (c *Client) DeleteTask(ctx context.Context, taskID int) error {
	_, err := c.do(ctx, http.MethodDelete, tasksPath+"/"+strconv.Itoa(taskID), nil, nil)
	return err
}

// FetchBoard runs ListTasks and ListUsers concurrently. The first failure
// cancels the other request and is returned.
func (c *Client) FetchBoard(ctx context.Context) (Board, error) {
	var board Board

	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		tasks, err := c.ListTasks(ctx)
		board.Tasks = tasks
		return err
	})
	p.Go(func(ctx context.Context) error {
		users, err := c.ListUsers(ctx)
		board.Users = users
		return err
	})

	if err := p.Wait(); err != nil {
		return Board{}, err
	}
	return board, nil
}

func (c *Client) create(ctx context.Context, path string, body any) (Created, error) {
	raw, err := c.do(ctx, http.MethodPost, path, body, nil)
	if err != nil {
		return Created{}, err
	}

	created := Created{Raw: strings.TrimSpace(string(raw))}
	var resp createdResponse
	if err := sonic.ConfigStd.NewDecoder(bytes.NewReader(raw)).Decode(&resp); err == nil {
		created.ID = resp.ID
	} else {
		c.logger.Debug("create response has no ID", "path", path, "error", err.Error())
	}
	return created, nil
}

func (c *Client) invalid(method, path string, cause error) error {
	c.logger.Warn("response failed validation", "method", method, "path", path, "error", cause.Error())
	return errors.NewAPIError(method, path, fmt.Errorf("%w: %w", errors.ErrInvalidResponse, cause)).
		WithMessage("validate response")
}

// do sends one request and returns the response body. A non-nil out is
// filled from the JSON body of a 2xx response.
func (c *Client) do(ctx context.Context, method, path string, body, out any) ([]byte, error) {
	requestID := c.requestID()
	log := c.logger.WithRequest(requestID)

	var reader io.Reader
	if body != nil {
		payload, err := sonic.Marshal(body)
		if err != nil {
			return nil, errors.NewAPIError(method, path, err).WithMessage("encode request")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, errors.NewAPIError(method, path, err).WithMessage("create request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			err = fmt.Errorf("%w: %w", errors.ErrCanceled, err)
		}
		log.Warn("request failed", "method", method, "path", path, "error", err.Error(),
			"duration_ms", time.Since(start).Milliseconds())
		return nil, errors.NewAPIError(method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		log.Warn("reading response failed", "method", method, "path", path, "status", resp.StatusCode, "error", err.Error())
		return nil, errors.NewAPIError(method, path, err).WithStatus(resp.StatusCode).WithMessage("read response")
	}

	log.Debug("request completed",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Warn("backend returned error status", "method", method, "path", path, "status", resp.StatusCode)
		return nil, errors.NewAPIError(method, path, nil).WithStatus(resp.StatusCode).WithBody(string(raw))
	}

	if out != nil {
		if err := sonic.ConfigStd.NewDecoder(bytes.NewReader(raw)).Decode(out); err != nil {
			log.Warn("decoding response failed", "method", method, "path", path, "error", err.Error())
			return nil, errors.NewAPIError(method, path, fmt.Errorf("%w: %w", errors.ErrInvalidResponse, err)).
				WithStatus(resp.StatusCode).WithMessage("decode response")
		}
	}
	return raw, nil
}
