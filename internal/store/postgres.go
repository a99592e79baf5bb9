package store

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/psilva-leo/ai-todo/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS todos (
	id UUID PRIMARY KEY,
	title TEXT NOT NULL,
	description TEXT,
	status TEXT NOT NULL,
	priority TEXT NOT NULL,
	source TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
)`

const todoColumns = "id, title, description, status, priority, source, created_at, updated_at"

// Postgres stores todos in a relational table, one row per record.
// Enums are stored as their canonical text. Atomicity of Update comes
// from a transaction with a row lock instead of a process-local mutex.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

// Migrate creates the todos table. Intended for local dev, gated by
// RUN_MIGRATIONS at bootstrap.
func (p *Postgres) Migrate(ctx context.Context) error {
	if _, err := p.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("migrate todos table: %w", err)
	}
	return nil
}

func (p *Postgres) Create(ctx context.Context, todo models.Todo) (models.Todo, error) {
	row := p.db.QueryRowContext(ctx, `INSERT INTO
		todos(`+todoColumns+`)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+todoColumns,
		todo.ID, todo.Title, todo.Description,
		string(todo.Status), string(todo.Priority), string(todo.Source),
		todo.CreatedAt, todo.UpdatedAt)

	return scanTodo(row)
}

func (p *Postgres) Get(ctx context.Context, id uuid.UUID) (models.Todo, error) {
	row := p.db.QueryRowContext(ctx,
		"SELECT "+todoColumns+" FROM todos WHERE id = $1", id)

	todo, err := scanTodo(row)
	if err == sql.ErrNoRows {
		return models.Todo{}, ErrNotFound
	}
	return todo, err
}

func (p *Postgres) List(ctx context.Context) ([]models.Todo, error) {
	rows, err := p.db.QueryContext(ctx,
		"SELECT "+todoColumns+" FROM todos ORDER BY created_at DESC, id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make([]models.Todo, 0)
	for rows.Next() {
		todo, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, todo)
	}
	return results, rows.Err()
}

// Update locks the row for the duration of the read-modify-write so no
// other write can interleave between the fetch and the persist.
func (p *Postgres) Update(ctx context.Context, id uuid.UUID, mutate func(*models.Todo)) (models.Todo, error) {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Todo{}, err
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx,
		"SELECT "+todoColumns+" FROM todos WHERE id = $1 FOR UPDATE", id)

	todo, err := scanTodo(row)
	if err == sql.ErrNoRows {
		return models.Todo{}, ErrNotFound
	}
	if err != nil {
		return models.Todo{}, err
	}

	mutate(&todo)

	_, err = tx.ExecContext(ctx, `UPDATE todos
		SET title = $1, description = $2, status = $3, priority = $4, updated_at = $5
		WHERE id = $6`,
		todo.Title, todo.Description,
		string(todo.Status), string(todo.Priority), todo.UpdatedAt, id)
	if err != nil {
		return models.Todo{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.Todo{}, err
	}
	return todo, nil
}

func (p *Postgres) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := p.db.ExecContext(ctx, "DELETE FROM todos WHERE id = $1", id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanTodo decodes enum columns leniently: an unrecognized value falls
// back to the default variant but is logged with the row id so
// corruption is flagged rather than silently masked. Input validation
// uses the strict parse; these two decodes are deliberately different.
func scanTodo(row rowScanner) (models.Todo, error) {
	var todo models.Todo
	var description sql.NullString
	var status, priority, source string

	err := row.Scan(&todo.ID, &todo.Title, &description,
		&status, &priority, &source, &todo.CreatedAt, &todo.UpdatedAt)
	if err != nil {
		return models.Todo{}, err
	}

	if description.Valid {
		todo.Description = &description.String
	}

	var ok bool
	if todo.Status, ok = models.StatusFromStorage(status); !ok {
		log.Printf("todo %s: unrecognized stored status %q, using %s", todo.ID, status, todo.Status)
	}
	if todo.Priority, ok = models.PriorityFromStorage(priority); !ok {
		log.Printf("todo %s: unrecognized stored priority %q, using %s", todo.ID, priority, todo.Priority)
	}
	if todo.Source, ok = models.SourceFromStorage(source); !ok {
		log.Printf("todo %s: unrecognized stored source %q, using %s", todo.ID, source, todo.Source)
	}

	return todo, nil
}
