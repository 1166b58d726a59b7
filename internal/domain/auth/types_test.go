package auth

import "testing"

func TestClaims_HasRole(t *testing.T) {
	c := Claims{Roles: []Role{RoleAdministrator, RoleUser}}

	if !c.HasRole(RoleAdministrator) {
		t.Error("expected Administrator role")
	}
	if !c.HasRole(RoleUser) {
		t.Error("expected User role")
	}
	if (Claims{}).HasRole(RoleUser) {
		t.Error("empty claims should have no roles")
	}
	if c.HasRole(Role("Auditor")) {
		t.Error("unexpected role match")
	}
}
