package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Todo is one persisted task record. The store owns the authoritative
// copy; everything else works on copies returned by it.
type Todo struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Status      Status    `json:"status"`
	Priority    Priority  `json:"priority"`
	Source      Source    `json:"source"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SuggestedTodo is a task extracted from audio by the AI service. It is
// never persisted directly; confirming it creates a regular Todo.
type SuggestedTodo struct {
	Title       string   `json:"title" validate:"required,notblank"`
	Description *string  `json:"description" validate:"omitempty,max=500"`
	Priority    Priority `json:"priority"`
}

type Status string

const (
	StatusTodo  Status = "Todo"
	StatusDoing Status = "Doing"
	StatusDone  Status = "Done"
)

type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

type Source string

const (
	SourceManual Source = "Manual"
	SourceAudio  Source = "Audio"
	SourceAi     Source = "Ai"
)

// ParseStatus rejects unknown values. Used at the input boundary; the
// storage boundary uses the lenient StatusFromStorage instead.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusTodo, StatusDoing, StatusDone:
		return Status(s), nil
	}
	return "", fmt.Errorf("invalid status: %s", s)
}

func ParsePriority(s string) (Priority, error) {
	switch Priority(s) {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return Priority(s), nil
	}
	return "", fmt.Errorf("invalid priority: %s", s)
}

func ParseSource(s string) (Source, error) {
	switch Source(s) {
	case SourceManual, SourceAudio, SourceAi:
		return Source(s), nil
	}
	return "", fmt.Errorf("invalid source: %s", s)
}

// StatusFromStorage decodes a stored column value, falling back to the
// default variant. ok is false when the value was not a known variant
// so callers can flag the row instead of masking it.
func StatusFromStorage(s string) (Status, bool) {
	if v, err := ParseStatus(s); err == nil {
		return v, true
	}
	return StatusTodo, false
}

func PriorityFromStorage(s string) (Priority, bool) {
	if v, err := ParsePriority(s); err == nil {
		return v, true
	}
	return PriorityMedium, false
}

func SourceFromStorage(s string) (Source, bool) {
	if v, err := ParseSource(s); err == nil {
		return v, true
	}
	return SourceManual, false
}

// UnmarshalJSON is strict: an unknown variant fails the decode, which
// surfaces as a structural validation failure.
func (s *Status) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("status must be a string")
	}
	v, err := ParseStatus(raw)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func (p *Priority) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("priority must be a string")
	}
	v, err := ParsePriority(raw)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

func (s *Source) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("source must be a string")
	}
	v, err := ParseSource(raw)
	if err != nil {
		return err
	}
	*s = v
	return nil
}
