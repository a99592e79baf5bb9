package store

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/psilva-leo/ai-todo/internal/models"
)

func newTodo(title string, createdAt time.Time) models.Todo {
	return models.Todo{
		ID:        uuid.New(),
		Title:     title,
		Status:    models.StatusTodo,
		Priority:  models.PriorityMedium,
		Source:    models.SourceManual,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func TestCreateAndGet(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	todo := newTodo("buy milk", time.Now().UTC())
	created, err := m.Create(ctx, todo)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID != todo.ID {
		t.Errorf("ID: got %s, want %s", created.ID, todo.ID)
	}

	got, err := m.Get(ctx, todo.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Title != "buy milk" {
		t.Errorf("Title: got %q, want %q", got.Title, "buy milk")
	}
}

func TestCreateDuplicateID(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	todo := newTodo("first", time.Now().UTC())
	if _, err := m.Create(ctx, todo); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, err := m.Create(ctx, todo); !errors.Is(err, ErrDuplicateID) {
		t.Errorf("second Create: got %v, want ErrDuplicateID", err)
	}
}

func TestGetMissing(t *testing.T) {
	m := NewMemory()

	if _, err := m.Get(context.Background(), uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get: got %v, want ErrNotFound", err)
	}
}

func TestListOrdersByCreatedAtDesc(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	base := time.Now().UTC()

	// Insert out of chronological order on purpose.
	second := newTodo("second", base.Add(1*time.Minute))
	first := newTodo("first", base)
	third := newTodo("third", base.Add(2*time.Minute))
	for _, todo := range []models.Todo{second, first, third} {
		if _, err := m.Create(ctx, todo); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	todos, err := m.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	want := []string{"third", "second", "first"}
	if len(todos) != len(want) {
		t.Fatalf("List count: got %d, want %d", len(todos), len(want))
	}
	for i, title := range want {
		if todos[i].Title != title {
			t.Errorf("List[%d]: got %q, want %q", i, todos[i].Title, title)
		}
	}
}

func TestUpdateMissing(t *testing.T) {
	m := NewMemory()

	_, err := m.Update(context.Background(), uuid.New(), func(*models.Todo) {})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Update: got %v, want ErrNotFound", err)
	}
}

func TestDeleteTwice(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	todo := newTodo("gone soon", time.Now().UTC())
	if _, err := m.Create(ctx, todo); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := m.Delete(ctx, todo.ID); err != nil {
		t.Fatalf("first Delete failed: %v", err)
	}
	if err := m.Delete(ctx, todo.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete: got %v, want ErrNotFound", err)
	}
}

// TestConcurrentUpdates runs N counter-increment merges against the
// same record. Every increment must survive; a lost update would leave
// the final count short.
func TestConcurrentUpdates(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	todo := newTodo("0", time.Now().UTC())
	if _, err := m.Create(ctx, todo); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	const n = 100
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_, err := m.Update(ctx, todo.ID, func(cur *models.Todo) {
				count, _ := strconv.Atoi(cur.Title)
				cur.Title = strconv.Itoa(count + 1)
			})
			if err != nil {
				t.Errorf("Update failed: %v", err)
			}
		}()
	}
	wg.Wait()

	got, err := m.Get(ctx, todo.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Title != strconv.Itoa(n) {
		t.Errorf("final count: got %s, want %d", got.Title, n)
	}
}

func TestUpdateReturnsMergedValue(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	todo := newTodo("before", time.Now().UTC())
	if _, err := m.Create(ctx, todo); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	updated, err := m.Update(ctx, todo.ID, func(cur *models.Todo) {
		cur.Title = "after"
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Title != "after" {
		t.Errorf("Title: got %q, want %q", updated.Title, "after")
	}

	got, _ := m.Get(ctx, todo.ID)
	if got.Title != "after" {
		t.Errorf("persisted Title: got %q, want %q", got.Title, "after")
	}
}
