package handlers

import (
	"net/http"

	"dispatchledger/internal/http/middleware"
	"dispatchledger/internal/services"
	"dispatchledger/internal/utils"

	"github.com/gin-gonic/gin"
)

type MaintenanceHandler struct {
	Svc services.MaintenanceService
}

// GET /api/maintenance?start=&end=
func (h MaintenanceHandler) List(c *gin.Context) {
	records, err := h.Svc.List(c.Query("start"), c.Query("end"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// GET /api/maintenance/:id
func (h MaintenanceHandler) Get(c *gin.Context) {
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

// POST /api/maintenance
func (h MaintenanceHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetIdentity(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "not authenticated", nil)
		return
	}
	var req services.MaintenanceInput
	if !BindJSONOrError(c, &req) {
		return
	}

	rec, err := h.Svc.Create(actor, req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "maintenance", "create", "plate "+rec.PlateNo+" total "+utils.FormatMoney(rec.TotalAmt))
	c.JSON(http.StatusCreated, rec)
}

// PUT /api/maintenance/:id
func (h MaintenanceHandler) Update(c *gin.Context) {
	actor, ok := middleware.GetIdentity(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "not authenticated", nil)
		return
	}
	id, ok := ParamID(c)
	if !ok {
		return
	}
	var req services.MaintenanceInput
	if !BindJSONOrError(c, &req) {
		return
	}

	rec, err := h.Svc.Update(actor, id, req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "maintenance", "update", "plate "+rec.PlateNo+" total "+utils.FormatMoney(rec.TotalAmt))
	c.JSON(http.StatusOK, rec)
}

// DELETE /api/maintenance/:id
func (h MaintenanceHandler) Delete(c *gin.Context) {
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
