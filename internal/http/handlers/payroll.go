package handlers

import (
	"net/http"

	"dispatchledger/internal/domain"
	"dispatchledger/internal/http/middleware"
	"dispatchledger/internal/services"
	"dispatchledger/internal/utils"

	"github.com/gin-gonic/gin"
)

type PayrollHandler struct {
	Svc services.PayrollService
}

// GET /api/payroll/summary?start=&end=
func (h PayrollHandler) Summary(c *gin.Context) {
	sum, err := h.Svc.Summary(c.Query("start"), c.Query("end"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, sum)
}

// GET /api/payroll/summary/pdf?start=&end=
func (h PayrollHandler) SummaryPDF(c *gin.Context) {
	start, end := c.Query("start"), c.Query("end")
	sum, err := h.Svc.Summary(start, end)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	data, filename, err := services.BuildSummaryPDF(sum, start, end)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}

// GET /api/pay-strips
func (h PayrollHandler) ListStrips(c *gin.Context) {
	strips, err := h.Svc.ListStrips()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, strips)
}

// GET /api/pay-strips/:id
func (h PayrollHandler) GetStrip(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	p, err := h.Svc.GetStrip(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// POST /api/pay-strips
func (h PayrollHandler) CreateStrip(c *gin.Context) {
	actor, ok := middleware.GetIdentity(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "not authenticated", nil)
		return
	}
	var req domain.PayStrip
	if !BindJSONOrError(c, &req) {
		return
	}

	p, err := h.Svc.CreateStrip(actor, req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "payroll", "create-strip", p.EmployeeName+" "+p.PayDay+" net "+utils.FormatMoney(p.NetPay))
	c.JSON(http.StatusCreated, p)
}

// PUT /api/pay-strips/:id
func (h PayrollHandler) UpdateStrip(c *gin.Context) {
	actor, ok := middleware.GetIdentity(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "not authenticated", nil)
		return
	}
	id, ok := ParamID(c)
	if !ok {
		return
	}
	var req domain.PayStrip
	if !BindJSONOrError(c, &req) {
		return
	}

	p, err := h.Svc.UpdateStrip(actor, id, req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// DELETE /api/pay-strips/:id
func (h PayrollHandler) DeleteStrip(c *gin.Context) {
	actor, ok := middleware.GetIdentity(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "not authenticated", nil)
		return
	}
	id, ok := ParamID(c)
	if !ok {
		return
	}
	if err := h.Svc.DeleteStrip(actor, id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// POST /api/pay-strips/draft
func (h PayrollHandler) BuildDraft(c *gin.Context) {
	actor, ok := middleware.GetIdentity(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "not authenticated", nil)
		return
	}
	var req struct {
		EmployeeID int64  `json:"employee_id"`
		PayDay     string `json:"pay_day"`
		StartDate  string `json:"start_date"`
		EndDate    string `json:"end_date"`
	}
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.EmployeeID <= 0 {
		RespondError(c, http.StatusBadRequest, "employee_id required", nil)
		return
	}

	p, err := h.Svc.BuildDraft(actor, req.EmployeeID, req.PayDay, req.StartDate, req.EndDate)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}
