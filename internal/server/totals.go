package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetTotals recomputes the store-wide aggregate on every call.
func (s *Server) GetTotals(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": s.totalsSvc.Compute(c.Request.Context())})
}
