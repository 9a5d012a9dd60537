// Package policy decides what an actor may see and do. Role literals are
// only interpreted here; services ask for a Scope or a Capability.
package policy

import (
	"strings"

	"github.com/Keshavsaini22/slooze-assignment/entity"
	"github.com/Keshavsaini22/slooze-assignment/pkg/apperr"
)

// Actor is the authenticated caller of an operation.
type Actor struct {
	ID      string
	Role    entity.Role
	Country string
}

// NewActor validates that MEMBER and MANAGER carry a home country.
func NewActor(id string, role entity.Role, country string) (Actor, error) {
	country = strings.TrimSpace(country)
	if id == "" {
		return Actor{}, apperr.BadRequest("actor id is required")
	}
	if !role.IsValid() {
		return Actor{}, apperr.BadRequest("unknown role %q", role)
	}
	if role != entity.RoleAdmin && country == "" {
		return Actor{}, apperr.BadRequest("%s requires a home country", role)
	}
	return Actor{ID: id, Role: role, Country: country}, nil
}

// Scope is the set of countries an actor may act upon.
type Scope struct {
	global  bool
	country string
}

func Global() Scope { return Scope{global: true} }
func CountryScope(c string) Scope { return Scope{country: c} }
func (s Scope) IsGlobal() bool { return s.global }
func (s Scope) Country() string { return s.country }

// ScopeFor derives the actor's scope once per call.
func ScopeFor(a Actor) Scope {
	if a.Role == entity.RoleAdmin {
		return Global()
	}
	return CountryScope(a.Country)
}

func (s Scope) Permits(country string) bool {
	return s.global || strings.EqualFold(s.country, country)
}

// Narrow applies an explicit country filter. Only a global scope can be
// narrowed; a country-bound scope ignores the request.
func (s Scope) Narrow(country string) Scope {
	country = strings.TrimSpace(country)
	if s.global && country != "" {
		return CountryScope(country)
	}
	return s
}

// Require returns Forbidden when the scope excludes country.
func (s Scope) Require(country string) error {
	if s.Permits(country) {
		return nil
	}
	return apperr.Forbidden("resources in %s are outside your scope", country)
}
