package policy

import (
	"github.com/Keshavsaini22/slooze-assignment/entity"
	"github.com/Keshavsaini22/slooze-assignment/pkg/apperr"
)

type Capability string

const (
	CreateOrder         Capability = "order:create"
	PlaceOrder          Capability = "order:place"
	CancelOrder         Capability = "order:cancel"
	UpdateOrderStatus   Capability = "order:update-status"
	UpdatePaymentMethod Capability = "payment:update-method"
	ManageCatalog       Capability = "catalog:manage"
)

var roleCapabilities = map[entity.Role]map[Capability]bool{
	entity.RoleAdmin: {
		CreateOrder: true, PlaceOrder: true, CancelOrder: true,
		UpdateOrderStatus: true, UpdatePaymentMethod: true,
		ManageCatalog: true,
	},
	entity.RoleManager: {
		CreateOrder: true, PlaceOrder: true, CancelOrder: true,
		UpdateOrderStatus: true,
	},
	entity.RoleMember: {
		CreateOrder: true,
	},
}

func (a Actor) Can(c Capability) bool {
	return roleCapabilities[a.Role][c]
}

// Authorize returns Forbidden when the actor's role lacks c.
func Authorize(a Actor, c Capability) error {
	if a.Can(c) {
		return nil
	}
	return apperr.Forbidden("role %s may not perform %s", a.Role, c)
}
