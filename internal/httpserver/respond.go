package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fsj-lavagens/internal/domain"
	identitysvc "fsj-lavagens/internal/service/identity"
)

// respondError maps the domain error taxonomy onto HTTP status codes. Every
// error is recovered here; nothing is fatal to the process.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrAlreadyExists):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrNoPriceAvailable):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, identitysvc.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, domain.ErrInvalidFormat),
		errors.Is(err, domain.ErrInvalidClass),
		errors.Is(err, domain.ErrInvalidService),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrInvalidRole),
		errors.Is(err, domain.ErrMissingField),
		errors.Is(err, domain.ErrMissingColumns):
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
