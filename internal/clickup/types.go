package clickup

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// TaskParams carries the body of a task-creation request. Optional fields are
// omitted from the wire payload when unset, so ClickUp receives only the keys
// the caller actually supplied.
type TaskParams struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Assignees   []int   `json:"assignees,omitempty"`
}

// APIError describes a non-2xx answer from the ClickUp API. Message carries
// the body's "err" field when present, Code the accompanying "ECODE".
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status}
	if msg := gjson.GetBytes(body, "err"); msg.Type == gjson.String {
		apiErr.Message = msg.Str
	}
	if code := gjson.GetBytes(body, "ECODE"); code.Type == gjson.String {
		apiErr.Code = code.Str
	}
	return apiErr
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("clickup api status %d", e.StatusCode)
	}
	return fmt.Sprintf("clickup api status %d: %s", e.StatusCode, e.Message)
}
