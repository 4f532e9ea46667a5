package api

import (
	stdhttp "net/http"

	intconfig "dispatchledger/internal/config"
	h "dispatchledger/internal/http/handlers"
	"dispatchledger/internal/http/middleware"
	"dispatchledger/internal/services"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	secret := []byte(env.JWTSecret)

	auth := h.AuthHandler{Auth: services.AuthService{JWTSecret: secret}}
	dispatch := h.DispatchHandler{}
	maintenance := h.MaintenanceHandler{}
	adminExpense := h.AdminExpenseHandler{}
	employees := h.EmployeeHandler{}
	payroll := h.PayrollHandler{}

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		api.POST("/auth/register", auth.Register)
		api.POST("/auth/login", auth.Login)

		// listings stay readable without a token, matching the legacy
		// report screens; every write goes through RequireAuth
		api.GET("/dispatch", dispatch.List)
		api.GET("/dispatch/:id", dispatch.Get)
		api.GET("/maintenance", maintenance.List)
		api.GET("/maintenance/:id", maintenance.Get)
		api.GET("/admin-expenses", adminExpense.List)
		api.GET("/admin-expenses/:id", adminExpense.Get)
		api.GET("/employees", employees.List)
		api.GET("/employees/:id", employees.Get)
		api.GET("/payroll/summary", payroll.Summary)
		api.GET("/payroll/summary/pdf", payroll.SummaryPDF)
		api.GET("/pay-strips", payroll.ListStrips)
		api.GET("/pay-strips/:id", payroll.GetStrip)

		protected := api.Group("")
		protected.Use(middleware.RequireAuth(secret))
		{
			protected.GET("/auth/me", auth.Me)
			protected.DELETE("/users/:id", auth.DeleteUser)

			protected.POST("/dispatch", dispatch.Create)
			protected.PUT("/dispatch/:id", dispatch.Update)
			protected.DELETE("/dispatch/:id", dispatch.Delete)

			protected.POST("/maintenance", maintenance.Create)
			protected.PUT("/maintenance/:id", maintenance.Update)
			protected.DELETE("/maintenance/:id", maintenance.Delete)

			protected.POST("/admin-expenses", adminExpense.Create)
			protected.PUT("/admin-expenses/:id", adminExpense.Update)
			protected.DELETE("/admin-expenses/:id", adminExpense.Delete)

			protected.POST("/employees", employees.Create)
			protected.PUT("/employees/:id", employees.UpdatePersonal)
			protected.PUT("/employees/:id/admin", employees.UpdateCompany)
			protected.DELETE("/employees/:id", employees.Delete)

			protected.POST("/pay-strips", payroll.CreateStrip)
			protected.PUT("/pay-strips/:id", payroll.UpdateStrip)
			protected.DELETE("/pay-strips/:id", payroll.DeleteStrip)
			protected.POST("/pay-strips/draft", payroll.BuildDraft)
		}
	}

	return r
}
