package http

import (
	"net/http"

	"personal-assistant/pkg/response"
	"personal-assistant/pkg/scope"

	"github.com/gin-gonic/gin"
)

// List godoc
// @Summary     List tasks
// @Description Returns all tasks, newest first. The body is not wrapped in the standard envelope.
// @Tags        Tasks
// @Produce     json
// @Param       status query string false "Filter by status (pending/completed)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/tasks [GET]
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
