package store

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/psilva-leo/ai-todo/internal/models"
)

// Memory is the default Store: a map guarded by a single RWMutex.
// Reads run concurrently; writes to the collection are totally ordered.
type Memory struct {
	mu    sync.RWMutex
	todos map[uuid.UUID]models.Todo
}

func NewMemory() *Memory {
	return &Memory{todos: make(map[uuid.UUID]models.Todo)}
}

func (m *Memory) Create(_ context.Context, todo models.Todo) (models.Todo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.todos[todo.ID]; exists {
		return models.Todo{}, ErrDuplicateID
	}
	m.todos[todo.ID] = todo
	return todo, nil
}

func (m *Memory) Get(_ context.Context, id uuid.UUID) (models.Todo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	todo, ok := m.todos[id]
	if !ok {
		return models.Todo{}, ErrNotFound
	}
	return todo, nil
}

func (m *Memory) List(_ context.Context) ([]models.Todo, error) {
	m.mu.RLock()
	todos := make([]models.Todo, 0, len(m.todos))
	for _, t := range m.todos {
		todos = append(todos, t)
	}
	m.mu.RUnlock()

	sort.Slice(todos, func(i, j int) bool {
		if !todos[i].CreatedAt.Equal(todos[j].CreatedAt) {
			return todos[i].CreatedAt.After(todos[j].CreatedAt)
		}
		// Ties break by id so the order is deterministic.
		return todos[i].ID.String() > todos[j].ID.String()
	})
	return todos, nil
}

// Update holds the write lock across the fetch, the merge and the
// write-back. Releasing it in between would allow a lost update.
func (m *Memory) Update(_ context.Context, id uuid.UUID, mutate func(*models.Todo)) (models.Todo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	todo, ok := m.todos[id]
	if !ok {
		return models.Todo{}, ErrNotFound
	}
	mutate(&todo)
	m.todos[id] = todo
	return todo, nil
}

func (m *Memory) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.todos[id]; !ok {
		return ErrNotFound
	}
	delete(m.todos, id)
	return nil
}
