package policy

import "github.com/Keshavsaini22/slooze-assignment/entity"

// OrderFilter narrows order list reads. Empty fields are unconstrained.
type OrderFilter struct {
	OwnerID string
	Country string
}

// OrderListFilter builds the silent filter for order.list. Members only see
// their own orders whatever the country; managers are pinned to their home
// country; admins may pass an explicit country.
func OrderListFilter(a Actor, country string) OrderFilter {
	if a.Role == entity.RoleMember {
		return OrderFilter{OwnerID: a.ID}
	}
	s := ScopeFor(a).Narrow(country)
	if s.IsGlobal() {
		return OrderFilter{}
	}
	return OrderFilter{Country: s.Country()}
}

// CanViewOrder is the single-order counterpart of OrderListFilter.
func CanViewOrder(a Actor, o *entity.Order) bool {
	if a.Role == entity.RoleMember {
		return o.UserID == a.ID
	}
	return ScopeFor(a).Permits(o.RestaurantCountry)
}
