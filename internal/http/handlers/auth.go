package handlers

import (
	"net/http"

	"dispatchledger/internal/domain"
	"dispatchledger/internal/http/middleware"
	"dispatchledger/internal/services"
	"dispatchledger/internal/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	Auth services.AuthService
}

// POST /api/auth/register
func (h AuthHandler) Register(c *gin.Context) {
	var req services.RegisterInput
	if !BindJSONOrError(c, &req) {
		return
	}

	user, token, err := h.Auth.Register(req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "auth", "register", "new user "+user.Email)
	c.JSON(http.StatusCreated, gin.H{"token": token, "user": user})
}

// GET /api/auth/me
func (h AuthHandler) Me(c *gin.Context) {
	actor, ok := middleware.GetIdentity(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "not authenticated", nil)
		return
	}
	u, err := h.Auth.Me(actor)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// DELETE /api/users/:id
func (h AuthHandler) DeleteUser(c *gin.Context) {
	actor, ok := middleware.GetIdentity(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "not authenticated", nil)
		return
	}
	id, ok := ParamID(c)
	if !ok {
		return
	}
	if err := h.Auth.DeleteUser(actor, id); err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "auth", "delete-user", "by "+actor.FirstName)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// POST /api/auth/login
func (h AuthHandler) Login(c *gin.Context) {
	var req services.LoginInput
	if !BindJSONOrError(c, &req) {
		return
	}

	user, token, err := h.Auth.Login(req)
	if err != nil {
		if domain.IsValidation(err) {
			// wrong email and wrong password read the same to the caller
			RespondError(c, http.StatusUnauthorized, "email or password is incorrect", nil)
			return
		}
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}
