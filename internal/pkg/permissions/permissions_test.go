package permissions

import "testing"

func TestParseRole(t *testing.T) {
	tests := []struct {
		in   string
		want Role
	}{
		{in: "admin", want: RoleAdmin},
		{in: "ADMIN", want: RoleAdmin},
		{in: " seller ", want: RoleSeller},
		{in: "demo", want: RoleDemo},
		{in: "user", want: RoleUser},
		{in: "superuser", want: RoleUser},
		{in: "", want: RoleUser},
	}

	for _, tt := range tests {
		if got := ParseRole(tt.in); got != tt.want {
			t.Fatalf("ParseRole(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCan_AdminHoldsModerationPermissions(t *testing.T) {
	for _, perm := range []Permission{PermListingModerate, PermUserManage, PermAuditRead, PermListingUpdateAny} {
		if !Can(RoleAdmin, perm) {
			t.Fatalf("expected admin to hold %q", perm)
		}
		if Can(RoleUser, perm) {
			t.Fatalf("expected user to lack %q", perm)
		}
		if Can(RoleSeller, perm) {
			t.Fatalf("expected seller to lack %q", perm)
		}
	}
}

func TestCan_DemoIsReadMostly(t *testing.T) {
	if Can(RoleDemo, PermListingCreate) {
		t.Fatalf("expected demo to lack listing:create")
	}
	if !Can(RoleDemo, PermContactRequest) {
		t.Fatalf("expected demo to hold contact:request")
	}
}

func TestCan_UnknownRole(t *testing.T) {
	if Can(Role("ghost"), PermContactRequest) {
		t.Fatalf("expected unknown role to hold nothing")
	}
}
