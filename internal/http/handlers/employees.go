package handlers

import (
	"net/http"

	"dispatchledger/internal/http/middleware"
	"dispatchledger/internal/services"
	"dispatchledger/internal/utils"

	"github.com/gin-gonic/gin"
)

type EmployeeHandler struct {
	Svc services.EmployeeService
}

// GET /api/employees
func (h EmployeeHandler) List(c *gin.Context) {
	employees, err := h.Svc.List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, employees)
}

// GET /api/employees/:id
func (h EmployeeHandler) Get(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	e, err := h.Svc.Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

// POST /api/employees
func (h EmployeeHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetIdentity(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "not authenticated", nil)
		return
	}
	var req services.EmployeePersonalInput
	if !BindJSONOrError(c, &req) {
		return
	}

	e, err := h.Svc.Create(actor, req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "employee", "create", e.FullName)
	c.JSON(http.StatusCreated, e)
}

// PUT /api/employees/:id
func (h EmployeeHandler) UpdatePersonal(c *gin.Context) {
	actor, ok := middleware.GetIdentity(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "not authenticated", nil)
		return
	}
	id, ok := ParamID(c)
	if !ok {
		return
	}
	var req services.EmployeePersonalInput
	if !BindJSONOrError(c, &req) {
		return
	}

	e, err := h.Svc.UpdatePersonal(actor, id, req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

// PUT /api/employees/:id/admin updates company, benefits and compensation.
func (h EmployeeHandler) UpdateCompany(c *gin.Context) {
	actor, ok := middleware.GetIdentity(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "not authenticated", nil)
		return
	}
	id, ok := ParamID(c)
	if !ok {
		return
	}
	var req services.EmployeeCompanyInput
	if !BindJSONOrError(c, &req) {
		return
	}

	e, err := h.Svc.UpdateCompany(actor, id, req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "employee", "admin-edit", e.FullName)
	c.JSON(http.StatusOK, e)
}

// DELETE /api/employees/:id
func (h EmployeeHandler) Delete(c *gin.Context) {
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
