package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"chat-task-assistant/internal/model"
	"chat-task-assistant/internal/task"
	taskHTTP "chat-task-assistant/internal/task/delivery/http"
	"chat-task-assistant/pkg/log"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type mockUseCase struct {
	listInput   task.ListTasksInput
	listOutput  task.ListTasksOutput
	updateInput task.UpdateTaskInput
	detailErr   error
	deletedID   string
}

func (m *mockUseCase) List(ctx context.Context, input task.ListTasksInput) (task.ListTasksOutput, error) {
	m.listInput = input
	return m.listOutput, nil
}

func (m *mockUseCase) Detail(ctx context.Context, id string) (task.DetailTaskOutput, error) {
	if m.detailErr != nil {
		return task.DetailTaskOutput{}, m.detailErr
	}
	return task.DetailTaskOutput{Task: model.Task{ID: id, Title: "Call dentist"}}, nil
}

func (m *mockUseCase) Update(ctx context.Context, input task.UpdateTaskInput) (task.UpdateTaskOutput, error) {
	m.updateInput = input
	return task.UpdateTaskOutput{Task: model.Task{ID: input.ID}}, nil
}

func (m *mockUseCase) Delete(ctx context.Context, id string) error {
	m.deletedID = id
	return nil
}

func newRouter(uc task.UseCase) *gin.Engine {
	r := gin.New()
	h := taskHTTP.New(log.NewNop(), uc)
	taskHTTP.RegisterRoutes(r.Group("/api/v1"), h)
	return r
}

func do(t *testing.T, r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestListParsesFilters(t *testing.T) {
	uc := &mockUseCase{}
	w := do(t, newRouter(uc), http.MethodGet, "/api/v1/tasks?completed=true&date_from=2026-01-01&date_to=2026-01-31", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if uc.listInput.Completed == nil || !*uc.listInput.Completed {
		t.Error("completed filter not forwarded")
	}
	if uc.listInput.DateFrom == nil || uc.listInput.DateFrom.Format("2006-01-02") != "2026-01-01" {
		t.Error("date_from not forwarded")
	}
	if uc.listInput.DateTo == nil || uc.listInput.DateTo.Format("2006-01-02") != "2026-01-31" {
		t.Error("date_to not forwarded")
	}
}

func TestListNoFilters(t *testing.T) {
	uc := &mockUseCase{listOutput: task.ListTasksOutput{
		Tasks: []model.Task{{ID: "t1", Date: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)}},
		Total: 1,
	}}
	w := do(t, newRouter(uc), http.MethodGet, "/api/v1/tasks", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if uc.listInput.Completed != nil || uc.listInput.DateFrom != nil || uc.listInput.DateTo != nil {
		t.Error("absent query params must stay nil")
	}
	if !bytes.Contains(w.Body.Bytes(), []byte(`"2026-02-01"`)) {
		t.Errorf("date not serialized as calendar date: %s", w.Body.String())
	}
	if !bytes.Contains(w.Body.Bytes(), []byte(`"total":1`)) {
		t.Errorf("total missing: %s", w.Body.String())
	}
}

func TestListRejectsBadFilters(t *testing.T) {
	for _, target := range []string{
		"/api/v1/tasks?completed=maybe",
		"/api/v1/tasks?date_from=January",
		"/api/v1/tasks?date_to=2026-13-01",
	} {
		w := do(t, newRouter(&mockUseCase{}), http.MethodGet, target, "")
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", target, w.Code)
		}
	}
}

func TestDetailNotFound(t *testing.T) {
	uc := &mockUseCase{detailErr: task.ErrTaskNotFound}
	w := do(t, newRouter(uc), http.MethodGet, "/api/v1/tasks/missing", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestUpdateForwardsPartialFields(t *testing.T) {
	uc := &mockUseCase{}
	w := do(t, newRouter(uc), http.MethodPut, "/api/v1/tasks/t1", `{"completed": true}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if uc.updateInput.ID != "t1" {
		t.Errorf("path ID not forwarded: %q", uc.updateInput.ID)
	}
	if uc.updateInput.Completed == nil || !*uc.updateInput.Completed {
		t.Error("completed not forwarded")
	}
	if uc.updateInput.Title != nil || uc.updateInput.Date != nil || uc.updateInput.Notes != nil {
		t.Error("omitted fields must stay nil")
	}
}

func TestUpdateRejectsBadBodies(t *testing.T) {
	for name, body := range map[string]string{
		"empty body":  `{}`,
		"blank title": `{"title": "  "}`,
		"bad date":    `{"date": "next tuesday"}`,
		"not json":    `nope`,
	} {
		w := do(t, newRouter(&mockUseCase{}), http.MethodPut, "/api/v1/tasks/t1", body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", name, w.Code)
		}
	}
}

func TestDelete(t *testing.T) {
	uc := &mockUseCase{}
	w := do(t, newRouter(uc), http.MethodDelete, "/api/v1/tasks/t9", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if uc.deletedID != "t9" {
		t.Errorf("delete not forwarded: %q", uc.deletedID)
	}
	var resp struct {
		ErrorCode int `json:"error_code"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.ErrorCode != 0 {
		t.Errorf("expected success envelope, got %s", w.Body.String())
	}
}
