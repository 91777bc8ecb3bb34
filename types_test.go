package clubadmin

import (
	"encoding/json"
	"testing"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		in   string
		want Role
	}{
		{"administrator", RoleAdministrator},
		{"administrador", RoleAdministrator},
		{"admin", RoleAdministrator},
		{"ADMINISTRADOR", RoleAdministrator},
		{"treasurer", RoleTreasurer},
		{"tesorero", RoleTreasurer},
		{"collector", RoleCollector},
		{"cobrador", RoleCollector},
		{" Cobrador ", RoleCollector},
		{"", RoleUnknown},
		{"superuser", RoleUnknown},
	}

	for _, tc := range tests {
		if got := ParseRole(tc.in); got != tc.want {
			t.Errorf("ParseRole(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestRoleString(t *testing.T) {
	if got := RoleAdministrator.String(); got != "administrator" {
		t.Errorf("String() = %q", got)
	}
	// Unknown roles stringify empty so permission checks fail closed.
	if got := RoleUnknown.String(); got != "" {
		t.Errorf("RoleUnknown.String() = %q, want empty", got)
	}
}

func TestUserUnmarshalParsesRole(t *testing.T) {
	var u User
	if err := json.Unmarshal([]byte(`{"id":"u1","name":"Ana","email":"a@b.c","role":"tesorero"}`), &u); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if u.Role != RoleTreasurer {
		t.Errorf("Role = %v", u.Role)
	}
	if u.RawRole != "tesorero" {
		t.Errorf("RawRole = %q", u.RawRole)
	}
}

func TestMonthName(t *testing.T) {
	tests := []struct {
		month int
		want  string
	}{
		{1, "Enero"},
		{8, "Agosto"},
		{12, "Diciembre"},
		{0, ""},
		{13, ""},
	}
	for _, tc := range tests {
		if got := MonthName(tc.month); got != tc.want {
			t.Errorf("MonthName(%d) = %q, want %q", tc.month, got, tc.want)
		}
	}
}
