package handlers

import (
	"context"

	"github.com/google/uuid"

	"github.com/psilva-leo/ai-todo/internal/models"
	"github.com/psilva-leo/ai-todo/internal/service"
)

// TaskExtractor turns an audio recording into suggested tasks. The
// gemini client implements it; tests substitute a fake.
type TaskExtractor interface {
	SuggestTasks(ctx context.Context, audio []byte, mimeType string) ([]models.SuggestedTodo, error)
}

type Handler struct {
	todos     *service.Todos
	extractor TaskExtractor
}

// New builds the handler set. extractor may be nil when no API key is
// configured; the audio endpoints then report the missing configuration.
func New(todos *service.Todos, extractor TaskExtractor) *Handler {
	return &Handler{todos: todos, extractor: extractor}
}

func parseId(id string) (uuid.UUID, error) {
	return uuid.Parse(id)
}
