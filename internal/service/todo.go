// Package service applies domain rules on top of a validated command:
// default values, timestamp stamping and partial-merge semantics. Store
// failures are translated into the apperr taxonomy before they leave.
package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/psilva-leo/ai-todo/internal/apperr"
	"github.com/psilva-leo/ai-todo/internal/models"
	"github.com/psilva-leo/ai-todo/internal/store"
)

type Todos struct {
	store store.Store
	now   func() time.Time
}

func New(s store.Store) *Todos {
	return &Todos{store: s, now: func() time.Time { return time.Now().UTC() }}
}

// CreateCommand is a validated create request. Source is set by the
// entry path (Manual for the API, Audio for confirmed suggestions),
// never by the caller.
type CreateCommand struct {
	Title       string
	Description *string
	Priority    *models.Priority
	Source      models.Source
}

// UpdateCommand is a validated partial update. Nil fields keep their
// prior value.
type UpdateCommand struct {
	Title       *string
	Description *string
	Status      *models.Status
	Priority    *models.Priority
}

func (t *Todos) Create(ctx context.Context, cmd CreateCommand) (models.Todo, error) {
	now := t.now()
	todo := models.Todo{
		ID:          uuid.New(),
		Title:       cmd.Title,
		Description: cmd.Description,
		Status:      models.StatusTodo,
		Priority:    models.PriorityMedium,
		Source:      cmd.Source,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if cmd.Priority != nil {
		todo.Priority = *cmd.Priority
	}

	created, err := t.store.Create(ctx, todo)
	if err != nil {
		log.Printf("failed to create todo: %v", err)
		return models.Todo{}, apperr.Internal("failed to create todo")
	}
	return created, nil
}

func (t *Todos) Get(ctx context.Context, id uuid.UUID) (models.Todo, error) {
	todo, err := t.store.Get(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return models.Todo{}, apperr.NotFound()
	}
	if err != nil {
		log.Printf("failed to get todo %s: %v", id, err)
		return models.Todo{}, apperr.Internal("failed to get todo")
	}
	return todo, nil
}

func (t *Todos) List(ctx context.Context) ([]models.Todo, error) {
	todos, err := t.store.List(ctx)
	if err != nil {
		log.Printf("failed to list todos: %v", err)
		return nil, apperr.Internal("failed to list todos")
	}
	return todos, nil
}

// Update merges cmd into the current record inside the store's critical
// section, so concurrent updates to the same id serialize without
// losing writes. Source is never overwritten.
func (t *Todos) Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (models.Todo, error) {
	updated, err := t.store.Update(ctx, id, func(todo *models.Todo) {
		if cmd.Title != nil {
			todo.Title = *cmd.Title
		}
		if cmd.Description != nil {
			todo.Description = cmd.Description
		}
		if cmd.Status != nil {
			todo.Status = *cmd.Status
		}
		if cmd.Priority != nil {
			todo.Priority = *cmd.Priority
		}
		todo.UpdatedAt = t.now()
	})
	if errors.Is(err, store.ErrNotFound) {
		return models.Todo{}, apperr.NotFound()
	}
	if err != nil {
		log.Printf("failed to update todo %s: %v", id, err)
		return models.Todo{}, apperr.Internal("failed to update todo")
	}
	return updated, nil
}

func (t *Todos) Delete(ctx context.Context, id uuid.UUID) error {
	err := t.store.Delete(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return apperr.NotFound()
	}
	if err != nil {
		log.Printf("failed to delete todo %s: %v", id, err)
		return apperr.Internal("failed to delete todo")
	}
	return nil
}

// ConfirmSuggested creates one todo per suggested task with
// source=Audio. The batch is at-least-once with no rollback: when an
// item fails, the todos created before it stay committed, and the
// returned count says how many made it in.
func (t *Todos) ConfirmSuggested(ctx context.Context, tasks []models.SuggestedTodo) (int, error) {
	for i, task := range tasks {
		cmd := CreateCommand{
			Title:       task.Title,
			Description: task.Description,
			Source:      models.SourceAudio,
		}
		if task.Priority != "" {
			priority := task.Priority
			cmd.Priority = &priority
		}

		if _, err := t.Create(ctx, cmd); err != nil {
			return i, apperr.Internalf("confirmed %d of %d tasks before a storage failure", i, len(tasks))
		}
	}
	return len(tasks), nil
}
