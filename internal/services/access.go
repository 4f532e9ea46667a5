package services

import "dispatchledger/internal/domain"

// Roles. The legacy system gated admin screens on user id 1; that is
// replaced by an explicit role carried in the JWT.
const (
	RoleAdmin   = "admin"
	RoleEncoder = "encoder"
)

// Actions understood by Allowed.
const (
	ActionRead      = "read"
	ActionCreate    = "create"
	ActionUpdate    = "update"
	ActionDelete    = "delete"
	ActionAdminEdit = "admin-edit"
)

// encoderActions lists what a regular encoder may do per resource.
// Everything else requires the admin role.
var encoderActions = map[string]map[string]bool{
	"dispatch":      {ActionRead: true, ActionCreate: true, ActionUpdate: true},
	"maintenance":   {ActionRead: true, ActionCreate: true, ActionUpdate: true},
	"admin_expense": {ActionRead: true, ActionCreate: true, ActionUpdate: true},
	"employee":      {ActionRead: true, ActionCreate: true, ActionUpdate: true},
	"pay_strip":     {ActionRead: true},
	"payroll":       {ActionRead: true},
}

// Allowed decides whether actor may perform action on resource. Pure
// and table-driven so the policy is testable on its own.
func Allowed(actor domain.Identity, resource, action string) bool {
	if actor.ID == 0 {
		return false
	}
	if actor.Role == RoleAdmin {
		return true
	}
	return encoderActions[resource][action]
}

// RequireAccess converts a denied check into a typed error for the
// handler layer.
func RequireAccess(actor domain.Identity, resource, action string) error {
	if !Allowed(actor, resource, action) {
		return domain.ForbiddenError{Resource: resource, Action: action}
	}
	return nil
}
