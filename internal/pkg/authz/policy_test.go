package authz_test

import (
	"testing"

	"sipspot-be/internal/entity"
	"sipspot-be/internal/pkg/apperr"
	"sipspot-be/internal/pkg/authz"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func principal(role entity.UserRole) authz.Principal {
	return authz.Principal{Id: uuid.New(), Role: role}
}

func TestEstablishmentWrite_PartnerOwnerOnly(t *testing.T) {
	partner := principal(entity.UserRolePartner)

	assert.NoError(t, authz.EstablishmentWrite.CanWriteOwned(partner, partner.Id))
	assert.Error(t, authz.EstablishmentWrite.CanWriteOwned(partner, uuid.New()))
}

func TestEstablishmentWrite_AdminCannotEdit(t *testing.T) {
	admin := principal(entity.UserRoleAdmin)

	err := authz.EstablishmentWrite.CanWriteOwned(admin, uuid.New())
	assert.True(t, apperr.IsForbidden(err))
}

func TestEstablishmentDrop_AdminOverride(t *testing.T) {
	admin := principal(entity.UserRoleAdmin)

	assert.NoError(t, authz.EstablishmentDrop.CanWriteOwned(admin, uuid.New()))
}

func TestMenuDrop_CustomerForbidden(t *testing.T) {
	customer := principal(entity.UserRoleCustomer)

	err := authz.MenuDrop.CanWriteOwned(customer, customer.Id)
	assert.True(t, apperr.IsForbidden(err))
}

func TestOrderCreate_CustomerOnly(t *testing.T) {
	assert.NoError(t, authz.OrderCreate.CanWrite(principal(entity.UserRoleCustomer)))
	assert.Error(t, authz.OrderCreate.CanWrite(principal(entity.UserRolePartner)))
	assert.Error(t, authz.OrderCreate.CanWrite(principal(entity.UserRoleAdmin)))
}

func TestPostWrite_AdminCannotEditOthersContent(t *testing.T) {
	admin := principal(entity.UserRoleAdmin)

	err := authz.PostWrite.CanWriteOwned(admin, uuid.New())
	assert.True(t, apperr.IsForbidden(err))
}

func TestPostDrop_AuthorOrAdmin(t *testing.T) {
	author := principal(entity.UserRoleCustomer)
	other := principal(entity.UserRoleCustomer)
	admin := principal(entity.UserRoleAdmin)

	assert.NoError(t, authz.PostDrop.CanWriteOwned(author, author.Id))
	assert.Error(t, authz.PostDrop.CanWriteOwned(other, author.Id))
	assert.NoError(t, authz.PostDrop.CanWriteOwned(admin, author.Id))
}

func TestPlanManage_AdminOnly(t *testing.T) {
	assert.NoError(t, authz.PlanManage.CanWrite(principal(entity.UserRoleAdmin)))
	assert.Error(t, authz.PlanManage.CanWrite(principal(entity.UserRolePartner)))
}
