package http

import (
	"errors"

	"personal-assistant/internal/meeting"
	pkgErrors "personal-assistant/pkg/errors"
	"personal-assistant/pkg/response"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuery = pkgErrors.NewHTTPError(120001, "invalid query parameters")
	errInvalidRange = pkgErrors.NewHTTPError(120002, "to must be after from")
)

func (h *handler) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, meeting.ErrInvalidRange):
		response.Error(c, errInvalidRange, nil)
	default:
		response.InternalError(c, err)
	}
}
