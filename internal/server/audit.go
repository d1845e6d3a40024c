package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) ListAudit(c *gin.Context) {
	var query struct {
		Limit int `form:"limit"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": s.auditSvc.List(c.Request.Context(), query.Limit)})
}
