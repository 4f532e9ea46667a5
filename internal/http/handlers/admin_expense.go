package handlers

import (
	"net/http"

	"dispatchledger/internal/http/middleware"
	"dispatchledger/internal/services"
	"dispatchledger/internal/utils"

	"github.com/gin-gonic/gin"
)

type AdminExpenseHandler struct {
	Svc services.AdminExpenseService
}

// GET /api/admin-expenses?start=&end=
func (h AdminExpenseHandler) List(c *gin.Context) {
	records, err := h.Svc.List(c.Query("start"), c.Query("end"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// GET /api/admin-expenses/:id
func (h AdminExpenseHandler) Get(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	rec, err := h.Svc.Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// POST /api/admin-expenses
func (h AdminExpenseHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetIdentity(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "not authenticated", nil)
		return
	}
	var req services.AdminExpenseInput
	if !BindJSONOrError(c, &req) {
		return
	}

	rec, err := h.Svc.Create(actor, req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "admin_expense", "create", "agency "+rec.Agency+" amount "+utils.FormatMoney(rec.Amount))
	c.JSON(http.StatusCreated, rec)
}

// PUT /api/admin-expenses/:id
func (h AdminExpenseHandler) Update(c *gin.Context) {
	actor, ok := middleware.GetIdentity(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "not authenticated", nil)
		return
	}
	id, ok := ParamID(c)
	if !ok {
		return
	}
	var req services.AdminExpenseInput
	if !BindJSONOrError(c, &req) {
		return
	}

	rec, err := h.Svc.Update(actor, id, req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "admin_expense", "update", "agency "+rec.Agency+" amount "+utils.FormatMoney(rec.Amount))
	c.JSON(http.StatusOK, rec)
}

// DELETE /api/admin-expenses/:id
func (h AdminExpenseHandler) Delete(c *gin.Context) {
	actor, ok := middleware.GetIdentity(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "not authenticated", nil)
		return
	}
	id, ok := ParamID(c)
	if !ok {
		return
	}
	if err := h.Svc.Delete(actor, id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
