package server

import (
	"net/http"
	"strconv"
	"strings"

	accountdomain "github.com/DevalGit/AccountEntry/internal/account/domain"
	auditdomain "github.com/DevalGit/AccountEntry/internal/audit/domain"
	"github.com/DevalGit/AccountEntry/internal/search"
	"github.com/gin-gonic/gin"
)

type accountRequest struct {
	Name          string  `json:"name"`
	PANNo         string  `json:"panNo"`
	GSTNo         string  `json:"gstNo"`
	Address       string  `json:"address"`
	ContactPerson string  `json:"contactPerson"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	Discount      float64 `json:"discount"`
	Amount        float64 `json:"amount"`
}

func (r accountRequest) toDraft() accountdomain.Draft {
	return accountdomain.Draft{
		Name:          strings.TrimSpace(r.Name),
		PANNo:         strings.TrimSpace(r.PANNo),
		GSTNo:         strings.TrimSpace(r.GSTNo),
		Address:       strings.TrimSpace(r.Address),
		ContactPerson: strings.TrimSpace(r.ContactPerson),
		Email:         strings.TrimSpace(r.Email),
		Phone:         strings.TrimSpace(r.Phone),
		Discount:      r.Discount,
		Amount:        r.Amount,
	}
}

func (r accountRequest) validate() *apiError {
	if strings.TrimSpace(r.Name) == "" {
		return newValidationError("name", "required", "name is required")
	}
	if strings.TrimSpace(r.PANNo) == "" {
		return newValidationError("panNo", "required", "panNo is required")
	}
	if strings.TrimSpace(r.GSTNo) == "" {
		return newValidationError("gstNo", "required", "gstNo is required")
	}
	return nil
}

// ListAccounts returns the store, filtered when a q parameter is
// present. Supplying q (even empty) moves the search state machine;
// listing without q leaves it alone.
func (s *Server) ListAccounts(c *gin.Context) {
	accounts := s.accountSvc.List(c.Request.Context())

	if c.Request.URL.Query().Has("q") {
		query := c.Query("q")
		s.searchState.Begin(strings.TrimSpace(query))
		accounts = search.Filter(accounts, query)
	}

	c.JSON(http.StatusOK, gin.H{
		"data":        accounts,
		"searchState": s.searchState.State(),
	})
}

func (s *Server) CreateAccount(c *gin.Context) {
	var req accountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	if err := req.validate(); err != nil {
		AbortWithError(c, err)
		return
	}

	s.submitState.Begin(auditdomain.ActionAccountCreate)
	resp := s.accountSvc.Add(c.Request.Context(), req.toDraft())

	s.auditSvc.Record(c.Request.Context(), auditdomain.ActionAccountCreate, "account", strconv.FormatInt(resp.ID, 10), map[string]any{
		"name":  resp.Name,
		"email": resp.Email,
		"phone": resp.Phone,
	})

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateAccount(c *gin.Context) {
	id, ok := parseAccountID(c)
	if !ok {
		return
	}

	var req accountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	if err := req.validate(); err != nil {
		AbortWithError(c, err)
		return
	}

	s.submitState.Begin(auditdomain.ActionAccountUpdate)
	resp, found := s.accountSvc.Update(c.Request.Context(), id, req.toDraft())
	if !found {
		// Missing ids are a silent no-op by contract; the caller gets the
		// store's answer, not an error.
		c.JSON(http.StatusOK, gin.H{"data": nil})
		return
	}

	s.auditSvc.Record(c.Request.Context(), auditdomain.ActionAccountUpdate, "account", strconv.FormatInt(id, 10), map[string]any{
		"name":  resp.Name,
		"email": resp.Email,
		"phone": resp.Phone,
	})

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

type updateAmountRequest struct {
	Amount string `json:"amount"`
}

func (s *Server) UpdateAccountAmount(c *gin.Context) {
	id, ok := parseAccountID(c)
	if !ok {
		return
	}

	var req updateAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	s.accountSvc.UpdateAmount(c.Request.Context(), id, req.Amount)

	s.auditSvc.Record(c.Request.Context(), auditdomain.ActionAccountAmountUpdate, "account", strconv.FormatInt(id, 10), nil)

	resp, _ := s.accountSvc.Get(c.Request.Context(), id)
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteAccount(c *gin.Context) {
	id, ok := parseAccountID(c)
	if !ok {
		return
	}

	s.submitState.Begin(auditdomain.ActionAccountDelete)
	s.accountSvc.Remove(c.Request.Context(), id)

	s.auditSvc.Record(c.Request.Context(), auditdomain.ActionAccountDelete, "account", strconv.FormatInt(id, 10), nil)

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// SelectAccount makes the account the session's active one. The session
// re-seeds its invoice amount and snapshots from the stored record.
func (s *Server) SelectAccount(c *gin.Context) {
	id, ok := parseAccountID(c)
	if !ok {
		return
	}

	account, found := s.accountSvc.Get(c.Request.Context(), id)
	if !found {
		AbortWithError(c, ErrNotFound)
		return
	}

	s.sessionSvc.Select(c.Request.Context(), account)

	s.auditSvc.Record(c.Request.Context(), auditdomain.ActionAccountSelect, "account", strconv.FormatInt(id, 10), nil)

	selection, _ := s.sessionSvc.Active(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"data": selection})
}

func parseAccountID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Param("id")), 10, 64)
	if err != nil {
		AbortWithError(c, newValidationError("id", "invalid_id", "id must be an integer"))
		return 0, false
	}
	return id, true
}
