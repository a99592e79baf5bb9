package handlers

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/psilva-leo/ai-todo/internal/apperr"
	"github.com/psilva-leo/ai-todo/internal/models"
	"github.com/psilva-leo/ai-todo/internal/validation"
)

// extractionTimeout bounds the upstream AI call. The store is never
// touched until extraction has completed.
const extractionTimeout = 15 * time.Second

type confirmTasksRequest struct {
	Tasks []models.SuggestedTodo `json:"tasks" validate:"required,dive"`
}

// SuggestTasks accepts a multipart upload with an "audio" field and
// returns the tasks the AI service extracted from it. Nothing is
// persisted until the client confirms.
func (h *Handler) SuggestTasks(c *gin.Context) {
	if h.extractor == nil {
		respondError(c, apperr.Internal("audio suggestions not configured: GOOGLE_API_KEY is unset"))
		return
	}

	fileHeader, err := c.FormFile("audio")
	if err != nil {
		respondError(c, apperr.Internal("no audio data provided"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, apperr.Internalf("open audio upload: %v", err))
		return
	}
	defer file.Close()

	audio, err := io.ReadAll(file)
	if err != nil {
		respondError(c, apperr.Internalf("read audio upload: %v", err))
		return
	}
	if len(audio) == 0 {
		respondError(c, apperr.Internal("no audio data provided"))
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "audio/mpeg"
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), extractionTimeout)
	defer cancel()

	tasks, err := h.extractor.SuggestTasks(ctx, audio, mimeType)
	if err != nil {
		respondError(c, apperr.Internalf("task extraction failed: %v", err))
		return
	}

	c.JSON(http.StatusOK, models.SuggestedTasksResponse{Tasks: tasks})
}

// ConfirmTasks persists previously suggested tasks with source=Audio.
// The batch is at-least-once: a failure partway leaves earlier items
// committed.
func (h *Handler) ConfirmTasks(c *gin.Context) {
	var req confirmTasksRequest
	if err := validation.JSON(c.Request.Body, &req); err != nil {
		respondError(c, err)
		return
	}

	created, err := h.todos.ConfirmSuggested(c.Request.Context(), req.Tasks)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.ConfirmTasksResponse{Created: created})
}
