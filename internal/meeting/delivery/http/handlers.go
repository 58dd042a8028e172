package http

import (
	"net/http"

	"personal-assistant/pkg/response"
	"personal-assistant/pkg/scope"

	"github.com/gin-gonic/gin"
)

const icsContentType = "text/calendar; charset=utf-8"

// List godoc
// @Summary     List meetings
// @Description Returns meetings ordered by start time. The body is not wrapped in the standard envelope.
// @Tags        Meetings
// @Produce     json
// @Param       from query string false "Only meetings starting at or after this RFC3339 time"
// @Param       to   query string false "Only meetings starting before this RFC3339 time"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/meetings [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, errInvalidQuery, nil)
		return
	}

	output, err := h.uc.List(ctx, scope.GetScopeFromContext(ctx), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.newListResp(output))
}

// ExportICS godoc
// @Summary     Export meetings as iCalendar
// @Description Returns every meeting as a text/calendar feed that calendar clients can subscribe to.
// @Tags        Meetings
// @Produce     plain
// @Success     200 {string} string "iCalendar feed"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/meetings.ics [GET]
func (h *handler) ExportICS(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ExportICS(ctx, scope.GetScopeFromContext(ctx))
	if err != nil {
		h.l.Errorf(ctx, "uc.ExportICS: %v", err)
		h.renderError(c, err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="meetings.ics"`)
	c.Data(http.StatusOK, icsContentType, output.Calendar)
}
