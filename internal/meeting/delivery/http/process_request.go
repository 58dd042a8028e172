package http

import (
	"time"

	"github.com/gin-gonic/gin"
)

// processListReq binds the list query parameters and parses the optional bounds.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}

	var err error
	if req.From != "" {
		if req.from, err = time.Parse(time.RFC3339, req.From); err != nil {
			return req, err
		}
	}
	if req.To != "" {
		if req.to, err = time.Parse(time.RFC3339, req.To); err != nil {
			return req, err
		}
	}
	return req, nil
}
