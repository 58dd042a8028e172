package http

import (
	"errors"

	"personal-assistant/internal/task"
	pkgErrors "personal-assistant/pkg/errors"
	"personal-assistant/pkg/response"

	"github.com/gin-gonic/gin"
)

var errInvalidQuery = pkgErrors.NewHTTPError(110001, "invalid query parameters")

// renderError maps use-case errors to HTTP responses. Unknown errors become 500.
func (h *handler) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, task.ErrInvalidStatus):
		response.Error(c, pkgErrors.NewHTTPError(110002, "status must be pending or completed"), nil)
	default:
		response.InternalError(c, err)
	}
}
