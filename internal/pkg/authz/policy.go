package authz

import (
	"sipspot-be/internal/entity"
	"sipspot-be/internal/pkg/apperr"

	"github.com/google/uuid"
)

// Principal is the authenticated actor making a request, tagged with exactly
// one role.
type Principal struct {
	Id   uuid.UUID
	Role entity.UserRole
}

// Policy gates write access to one resource type. Reads are always permitted
// and never consult a policy. AdminOverride is configured per resource type,
// never assumed globally.
type Policy struct {
	AllowedRoles  []entity.UserRole
	AdminOverride bool
}

func (p Policy) roleAllowed(role entity.UserRole) bool {
	for _, r := range p.AllowedRoles {
		if r == role {
			return true
		}
	}
	return false
}

// CanWrite checks a write against an unowned resource.
func (p Policy) CanWrite(principal Principal) error {
	if p.roleAllowed(principal.Role) {
		return nil
	}
	if p.AdminOverride && principal.Role == entity.UserRoleAdmin {
		return nil
	}
	return apperr.Forbidden()
}

// CanWriteOwned checks a write against a resource with an owner/author.
// The principal must hold an allowed role AND be the owner, unless the
// policy grants admin override.
func (p Policy) CanWriteOwned(principal Principal, ownerId uuid.UUID) error {
	if p.roleAllowed(principal.Role) && principal.Id == ownerId {
		return nil
	}
	if p.AdminOverride && principal.Role == entity.UserRoleAdmin {
		return nil
	}
	return apperr.Forbidden()
}

// Per-resource policies. Admin override is granted for moderation-style
// deletes and withheld for edits of partner business data and forum content.
var (
	EstablishmentWrite = Policy{AllowedRoles: []entity.UserRole{entity.UserRolePartner}}
	EstablishmentDrop  = Policy{AllowedRoles: []entity.UserRole{entity.UserRolePartner}, AdminOverride: true}

	MenuWrite = Policy{AllowedRoles: []entity.UserRole{entity.UserRolePartner}}
	MenuDrop  = Policy{AllowedRoles: []entity.UserRole{entity.UserRolePartner}, AdminOverride: true}

	OrderCreate   = Policy{AllowedRoles: []entity.UserRole{entity.UserRoleCustomer}}
	OrderComplete = Policy{AllowedRoles: []entity.UserRole{entity.UserRolePartner}}

	FeedbackWrite = Policy{AllowedRoles: []entity.UserRole{entity.UserRoleCustomer}}

	PostWrite   = Policy{AllowedRoles: []entity.UserRole{entity.UserRoleCustomer, entity.UserRolePartner}}
	PostDrop    = Policy{AllowedRoles: []entity.UserRole{entity.UserRoleCustomer, entity.UserRolePartner}, AdminOverride: true}
	CommentDrop = Policy{AllowedRoles: []entity.UserRole{entity.UserRoleCustomer, entity.UserRolePartner}, AdminOverride: true}

	PlanManage = Policy{AllowedRoles: []entity.UserRole{entity.UserRoleAdmin}}
	UserManage = Policy{AllowedRoles: []entity.UserRole{entity.UserRoleAdmin}}
)
