package http

import (
	"errors"

	"personal-assistant/internal/assistant"
	pkgErrors "personal-assistant/pkg/errors"
	"personal-assistant/pkg/response"

	"github.com/gin-gonic/gin"
)

var errInvalidBody = pkgErrors.NewHTTPError(100001, "message is required")

// renderError maps use-case errors to HTTP responses. Storage faults become
// a generic 500 with no detail.
func (h *handler) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, assistant.ErrEmptyMessage):
		response.Error(c, errInvalidBody, nil)
	default:
		response.InternalError(c, err)
	}
}
