package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/psilva-leo/ai-todo/internal/apperr"
	"github.com/psilva-leo/ai-todo/internal/models"
)

// respondError maps the error taxonomy to a status and the uniform
// {message, status, errors} payload. Internal diagnostics go to the
// operator log, never to the client.
func respondError(c *gin.Context, err error) {
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		appErr = apperr.Internal(err.Error())
	}

	status := http.StatusInternalServerError
	message := "Something went wrong"
	fields := map[string][]string{}

	switch appErr.Kind {
	case apperr.KindInvalidInput:
		status = http.StatusBadRequest
		message = appErr.Message
		if appErr.Fields != nil {
			fields = appErr.Fields
		}
	case apperr.KindNotFound:
		status = http.StatusNotFound
		message = appErr.Message
	default:
		log.Printf("internal error: %s", appErr.Message)
	}

	c.JSON(status, models.ErrorResponse{
		Message: message,
		Status:  status,
		Errors:  fields,
	})
}
