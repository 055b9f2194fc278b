package tools

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
)

type fakeListService struct {
	payload json.RawMessage
	err     error
	calls   int
	lastID  string
}

func (f *fakeListService) ListTasks(ctx context.Context, listID string) (json.RawMessage, error) {
	f.calls++
	f.lastID = listID
	if f.err != nil {
		return nil, f.err
	}
	return f.payload, nil
}

func callRequest(name string, args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if res == nil || len(res.Content) != 1 {
		t.Fatalf("expected a single content entry, got %+v", res)
	}
	text, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", res.Content[0])
	}
	return text.Text
}

func TestListTasksMissingListID(t *testing.T) {
	svc := &fakeListService{}
	handler := &ListTasksHandler{Service: svc}

	res, err := handler.ToolAdapter(context.Background(), callRequest("list_tasks", map[string]any{}))
	if err == nil || res != nil {
		t.Fatalf("expected a rejection, got res=%+v err=%v", res, err)
	}
	if !strings.Contains(err.Error(), "list_id") {
		t.Fatalf("error should name the offending field, got %q", err.Error())
	}
	if svc.calls != 0 {
		t.Fatalf("no remote call may happen on invalid arguments, got %d", svc.calls)
	}
}

func TestListTasksNonStringListID(t *testing.T) {
	svc := &fakeListService{}
	handler := &ListTasksHandler{Service: svc}

	_, err := handler.ToolAdapter(context.Background(), callRequest("list_tasks", map[string]any{"list_id": 42}))
	if err == nil {
		t.Fatalf("expected a rejection for a non-string list_id")
	}
	if svc.calls != 0 {
		t.Fatalf("no remote call may happen on invalid arguments, got %d", svc.calls)
	}
}

func TestListTasksSuccess(t *testing.T) {
	svc := &fakeListService{payload: json.RawMessage(`[{"id":"1","name":"First"}]`)}
	handler := &ListTasksHandler{Service: svc}

	res, err := handler.ToolAdapter(context.Background(), callRequest("list_tasks", map[string]any{"list_id": "abc123"}))
	if err != nil {
		t.Fatalf("ToolAdapter failed: %v", err)
	}
	if res.IsError {
		t.Fatalf("success must not set the error flag")
	}
	if svc.lastID != "abc123" {
		t.Fatalf("unexpected list id forwarded: %q", svc.lastID)
	}
	want := "[\n  {\n    \"id\": \"1\",\n    \"name\": \"First\"\n  }\n]"
	if got := resultText(t, res); got != want {
		t.Fatalf("unexpected pretty output:\n got %q\nwant %q", got, want)
	}
}

func TestListTasksEmptyList(t *testing.T) {
	svc := &fakeListService{payload: json.RawMessage(`[]`)}
	handler := &ListTasksHandler{Service: svc}

	res, err := handler.ToolAdapter(context.Background(), callRequest("list_tasks", map[string]any{"list_id": "abc123"}))
	if err != nil {
		t.Fatalf("ToolAdapter failed: %v", err)
	}
	if got := resultText(t, res); got != "[]" {
		t.Fatalf("unexpected output for an empty list: %q", got)
	}
}

func TestListTasksRemoteFailure(t *testing.T) {
	svc := &fakeListService{err: errors.New("clickup api status 404: List not found")}
	handler := &ListTasksHandler{Service: svc}

	res, err := handler.ToolAdapter(context.Background(), callRequest("list_tasks", map[string]any{"list_id": "missing"}))
	if err != nil {
		t.Fatalf("remote failures must become in-band results, got err=%v", err)
	}
	if !res.IsError {
		t.Fatalf("remote failures must set the error flag")
	}
	if got := resultText(t, res); !strings.Contains(got, "List not found") {
		t.Fatalf("error text should surface the remote message, got %q", got)
	}
}
