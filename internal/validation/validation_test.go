package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/psilva-leo/ai-todo/internal/apperr"
	"github.com/psilva-leo/ai-todo/internal/models"
)

type createRequest struct {
	Title       string           `json:"title" validate:"required,notblank"`
	Description *string          `json:"description" validate:"omitempty,max=500"`
	Priority    *models.Priority `json:"priority"`
	Status      *models.Status   `json:"status"`
}

func fieldsOf(t *testing.T, err error) apperr.FieldErrors {
	t.Helper()
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *apperr.Error, got %T: %v", err, err)
	}
	if appErr.Kind != apperr.KindInvalidInput {
		t.Fatalf("expected InvalidInput, got kind %d", appErr.Kind)
	}
	return appErr.Fields
}

func TestValidPayload(t *testing.T) {
	var req createRequest
	err := JSON(strings.NewReader(`{"title":"buy milk","priority":"High"}`), &req)
	if err != nil {
		t.Fatalf("JSON failed: %v", err)
	}
	if req.Title != "buy milk" {
		t.Errorf("Title: got %q", req.Title)
	}
	if req.Priority == nil || *req.Priority != models.PriorityHigh {
		t.Errorf("Priority: got %v, want High", req.Priority)
	}
}

func TestStructuralFailures(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty body", body: ""},
		{name: "truncated", body: `{"title":"x"`},
		{name: "not json", body: "title=milk"},
		{name: "wrong type", body: `{"title":42}`},
		{name: "not an object", body: `[1,2,3]`},
		{name: "unknown status variant", body: `{"title":"x","status":"Later"}`},
		{name: "unknown priority variant", body: `{"title":"x","priority":"Urgent"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req createRequest
			err := JSON(strings.NewReader(tt.body), &req)
			fields := fieldsOf(t, err)

			msgs, ok := fields["payload"]
			if !ok {
				t.Fatalf("expected a payload error, got %v", fields)
			}
			if len(msgs) != 1 {
				t.Fatalf("payload messages: got %d, want 1", len(msgs))
			}
			// Positional diagnostics must be stripped.
			if strings.Contains(msgs[0], "offset") || strings.Contains(msgs[0], " at line ") {
				t.Errorf("message leaks position: %q", msgs[0])
			}
		})
	}
}

// A request violating several constraints reports all of them, not just
// the first one encountered.
func TestSemanticFailuresAccumulate(t *testing.T) {
	longDescription := strings.Repeat("x", 600)
	var req createRequest
	err := JSON(strings.NewReader(`{"title":"","description":"`+longDescription+`"}`), &req)
	fields := fieldsOf(t, err)

	if got := fields["title"]; len(got) != 1 || got[0] != "title cannot be empty" {
		t.Errorf("title errors: got %v", got)
	}
	if got := fields["description"]; len(got) != 1 || got[0] != "description must be at most 500 characters" {
		t.Errorf("description errors: got %v", got)
	}
}

func TestWhitespaceTitleRejected(t *testing.T) {
	var req createRequest
	err := JSON(strings.NewReader(`{"title":"   "}`), &req)
	fields := fieldsOf(t, err)

	if got := fields["title"]; len(got) != 1 || got[0] != "title cannot be empty" {
		t.Errorf("title errors: got %v", got)
	}
}

func TestOptionalFieldsMayBeAbsent(t *testing.T) {
	type updateRequest struct {
		Title       *string `json:"title" validate:"omitempty,notblank"`
		Description *string `json:"description" validate:"omitempty,max=500"`
	}

	var req updateRequest
	if err := JSON(strings.NewReader(`{}`), &req); err != nil {
		t.Fatalf("JSON failed: %v", err)
	}
	if req.Title != nil || req.Description != nil {
		t.Errorf("absent fields should stay nil: %+v", req)
	}
}
