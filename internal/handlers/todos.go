package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/psilva-leo/ai-todo/internal/apperr"
	"github.com/psilva-leo/ai-todo/internal/models"
	"github.com/psilva-leo/ai-todo/internal/service"
	"github.com/psilva-leo/ai-todo/internal/validation"
)

type createTodoRequest struct {
	Title       string           `json:"title" validate:"required,notblank"`
	Description *string          `json:"description" validate:"omitempty,max=500"`
	Priority    *models.Priority `json:"priority"`
}

type updateTodoRequest struct {
	Title       *string          `json:"title" validate:"omitempty,notblank"`
	Description *string          `json:"description" validate:"omitempty,max=500"`
	Status      *models.Status   `json:"status"`
	Priority    *models.Priority `json:"priority"`
}

func (h *Handler) CreateTodo(c *gin.Context) {
	var req createTodoRequest
	if err := validation.JSON(c.Request.Body, &req); err != nil {
		respondError(c, err)
		return
	}

	todo, err := h.todos.Create(c.Request.Context(), service.CreateCommand{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Source:      models.SourceManual,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, todo)
}

func (h *Handler) ListTodos(c *gin.Context) {
	todos, err := h.todos.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, todos)
}

func (h *Handler) GetTodo(c *gin.Context) {
	id, err := parseId(c.Param("id"))
	if err != nil {
		// A non-uuid path segment cannot name any record.
		respondError(c, apperr.NotFound())
		return
	}

	todo, err := h.todos.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, todo)
}

func (h *Handler) UpdateTodo(c *gin.Context) {
	id, err := parseId(c.Param("id"))
	if err != nil {
		respondError(c, apperr.NotFound())
		return
	}

	var req updateTodoRequest
	if err := validation.JSON(c.Request.Body, &req); err != nil {
		respondError(c, err)
		return
	}

	todo, err := h.todos.Update(c.Request.Context(), id, service.UpdateCommand{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, todo)
}

func (h *Handler) DeleteTodo(c *gin.Context) {
	id, err := parseId(c.Param("id"))
	if err != nil {
		respondError(c, apperr.NotFound())
		return
	}

	if err := h.todos.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
