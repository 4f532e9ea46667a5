package handlers

import (
	"net/http"

	"dispatchledger/internal/http/middleware"
	"dispatchledger/internal/services"
	"dispatchledger/internal/utils"

	"github.com/gin-gonic/gin"
)

type DispatchHandler struct {
	Svc services.DispatchService
}

// GET /api/dispatch?field=dispatch_date&start=2025-08-01&end=2025-08-15
func (h DispatchHandler) List(c *gin.Context) {
	records, err := h.Svc.List(c.Query("field"), c.Query("start"), c.Query("end"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// GET /api/dispatch/:id
func (h DispatchHandler) Get(c *gin.Context) {
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

// POST /api/dispatch
func (h DispatchHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetIdentity(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "not authenticated", nil)
		return
	}
	var req services.DispatchInput
	if !BindJSONOrError(c, &req) {
		return
	}

	rec, err := h.Svc.Create(actor, req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "dispatch", "create", "slip "+rec.SlipNo)
	c.JSON(http.StatusCreated, rec)
}

// PUT /api/dispatch/:id
func (h DispatchHandler) Update(c *gin.Context) {
	actor, ok := middleware.GetIdentity(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "not authenticated", nil)
		return
	}
	id, ok := ParamID(c)
	if !ok {
		return
	}
	var req services.DispatchInput
	if !BindJSONOrError(c, &req) {
		return
	}

	rec, err := h.Svc.Update(actor, id, req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "dispatch", "update", "slip "+rec.SlipNo)
	c.JSON(http.StatusOK, rec)
}

// DELETE /api/dispatch/:id
func (h DispatchHandler) Delete(c *gin.Context) {
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
