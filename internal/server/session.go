package server

import (
	"net/http"

	auditdomain "github.com/DevalGit/AccountEntry/internal/audit/domain"
	"github.com/gin-gonic/gin"
)

type invoiceAmountRequest struct {
	Amount string `json:"amount"`
}

func (s *Server) SetInvoiceAmount(c *gin.Context) {
	var req invoiceAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	if err := s.sessionSvc.SetInvoiceAmount(c.Request.Context(), req.Amount); err != nil {
		AbortWithError(c, err)
		return
	}

	s.auditSvc.Record(c.Request.Context(), auditdomain.ActionSessionAmountSet, "session", "", nil)

	breakdown, _ := s.sessionSvc.Breakdown(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"data": breakdown})
}

func (s *Server) ClearSession(c *gin.Context) {
	s.sessionSvc.Clear(c.Request.Context())

	s.auditSvc.Record(c.Request.Context(), auditdomain.ActionSessionClear, "session", "", nil)

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) GetSession(c *gin.Context) {
	selection, ok := s.sessionSvc.Active(c.Request.Context())
	if !ok {
		c.JSON(http.StatusOK, gin.H{"data": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": selection})
}

// GetBreakdown returns the derived figures for the active selection, or
// null when nothing is selected. The UI re-derives its selection display
// from this after every delete.
func (s *Server) GetBreakdown(c *gin.Context) {
	breakdown, ok := s.sessionSvc.Breakdown(c.Request.Context())
	if !ok {
		c.JSON(http.StatusOK, gin.H{"data": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": breakdown})
}

// GetPendingState exposes the search and submit settling state machines.
func (s *Server) GetPendingState(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"search": gin.H{
			"query": s.searchState.Key(),
			"state": s.searchState.State(),
		},
		"submit": gin.H{
			"action": s.submitState.Key(),
			"state":  s.submitState.State(),
		},
	})
}
