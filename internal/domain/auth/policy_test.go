package auth

import "testing"

func TestDefaultRoute(t *testing.T) {
	tests := []struct {
		role Role
		want string
	}{
		{RoleAdmin, "/admin"},
		{RoleTeacher, "/teacher"},
		{RoleStudent, "/student"},
		{Role("unknown"), "/"},
		{Role(""), "/"},
	}
	for _, tt := range tests {
		if got := DefaultRoute(tt.role); got != tt.want {
			t.Fatalf("DefaultRoute(%q) = %q, want %q", tt.role, got, tt.want)
		}
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		role Role
		want string
	}{
		{RoleAdmin, "Admin"},
		{RoleTeacher, "Teacher"},
		{RoleStudent, "Student"},
		{Role("ROLE_GHOST"), "Unknown"},
	}
	for _, tt := range tests {
		if got := DisplayName(tt.role); got != tt.want {
			t.Fatalf("DisplayName(%q) = %q, want %q", tt.role, got, tt.want)
		}
	}
}
