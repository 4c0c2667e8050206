package httpserver

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"chat-task-assistant/internal/agent"
	agentHTTP "chat-task-assistant/internal/agent/delivery/http"
	"chat-task-assistant/internal/model"
	"chat-task-assistant/internal/task"
	taskHTTP "chat-task-assistant/internal/task/delivery/http"
	"chat-task-assistant/pkg/log"
)

type stubAgentUC struct{}

func (stubAgentUC) Process(ctx context.Context, input agent.ProcessInput) (agent.ProcessOutput, error) {
	return agent.ProcessOutput{Message: "Hello!", IsTask: false}, nil
}

type stubTaskUC struct{}

func (stubTaskUC) List(ctx context.Context, input task.ListTasksInput) (task.ListTasksOutput, error) {
	return task.ListTasksOutput{Tasks: []model.Task{}}, nil
}

func (stubTaskUC) Detail(ctx context.Context, id string) (task.DetailTaskOutput, error) {
	return task.DetailTaskOutput{Task: model.Task{ID: id}}, nil
}

func (stubTaskUC) Update(ctx context.Context, input task.UpdateTaskInput) (task.UpdateTaskOutput, error) {
	return task.UpdateTaskOutput{Task: model.Task{ID: input.ID}}, nil
}

func (stubTaskUC) Delete(ctx context.Context, id string) error {
	return nil
}

// newTestServer wires handlers through the same interface-typed Config fields
// main.go uses, so route registration is exercised against the interfaces
// rather than the concrete handler types.
func newTestServer(t *testing.T) *HTTPServer {
	t.Helper()

	srv, err := New(Config{
		Logger:       log.NewNop(),
		Port:         8080,
		Mode:         gin.TestMode,
		Environment:  string(model.EnvironmentDevelopment),
		AgentHandler: agentHTTP.New(log.NewNop(), stubAgentUC{}),
		TaskHandler:  taskHTTP.New(log.NewNop(), stubTaskUC{}),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return srv
}

func TestRoutesRegistered(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		method string
		target string
		body   string
	}{
		{http.MethodGet, "/health", ""},
		{http.MethodGet, "/ready", ""},
		{http.MethodGet, "/live", ""},
		{http.MethodPost, "/api/v1/chat", `{"message": "hi"}`},
		{http.MethodGet, "/api/v1/tasks", ""},
		{http.MethodGet, "/api/v1/tasks/t1", ""},
		{http.MethodDelete, "/api/v1/tasks/t1", ""},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(tt.method, tt.target, bytes.NewBufferString(tt.body))
		req.Header.Set("Content-Type", "application/json")
		srv.gin.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Errorf("%s %s: expected 200, got %d: %s", tt.method, tt.target, w.Code, w.Body.String())
		}
	}
}

func TestNewValidatesConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing logger", func(c *Config) { c.Logger = nil }},
		{"missing mode", func(c *Config) { c.Mode = "" }},
		{"missing port", func(c *Config) { c.Port = 0 }},
		{"missing agent handler", func(c *Config) { c.AgentHandler = nil }},
		{"missing task handler", func(c *Config) { c.TaskHandler = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{
				Logger:       log.NewNop(),
				Port:         8080,
				Mode:         gin.TestMode,
				Environment:  string(model.EnvironmentDevelopment),
				AgentHandler: agentHTTP.New(log.NewNop(), stubAgentUC{}),
				TaskHandler:  taskHTTP.New(log.NewNop(), stubTaskUC{}),
			}
			tt.mutate(&cfg)
			if _, err := New(cfg); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}
