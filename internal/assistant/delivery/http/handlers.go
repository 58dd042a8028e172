package http

import (
	"net/http"

	"personal-assistant/internal/model"
	"personal-assistant/pkg/response"
	"personal-assistant/pkg/scope"

	"github.com/gin-gonic/gin"
)

// Chat godoc
// @Summary     Chat with the assistant
// @Description Interprets a natural-language message. Task and meeting actions are carried out before replying. The body is not wrapped in the standard envelope.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       request body chatReq true "User message"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, errInvalidBody, nil)
		return
	}

	sc := scope.GetScopeFromContext(ctx)
	sc.Source = model.SourceWeb

	output, err := h.uc.Chat(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Chat: %v", err)
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.newChatResp(output))
}
