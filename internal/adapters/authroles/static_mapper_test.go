package authroles

import (
	"testing"

	domainauth "github.com/davomat/attendance-ui-api/internal/domain/auth"
)

func TestStaticRoleMapper(t *testing.T) {
	mapper := StaticRoleMapper{
		AdminGroup:   "davomat-admins",
		TeacherGroup: "davomat-teachers",
		StudentGroup: "davomat-students",
	}

	tests := []struct {
		name     string
		groups   []string
		wantRole domainauth.Role
		wantOK   bool
	}{
		{"admin group", []string{"davomat-admins"}, domainauth.RoleAdmin, true},
		{"teacher group", []string{"other", "davomat-teachers"}, domainauth.RoleTeacher, true},
		{"student group", []string{"davomat-students"}, domainauth.RoleStudent, true},
		{"admin wins over teacher", []string{"davomat-teachers", "davomat-admins"}, domainauth.RoleAdmin, true},
		{"teacher wins over student", []string{"davomat-students", "davomat-teachers"}, domainauth.RoleTeacher, true},
		{"no known group", []string{"unrelated"}, "", false},
		{"empty groups", nil, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role, ok := mapper.Map(tt.groups)
			if ok != tt.wantOK || role != tt.wantRole {
				t.Errorf("Map(%v) = (%q, %v), want (%q, %v)", tt.groups, role, ok, tt.wantRole, tt.wantOK)
			}
		})
	}
}

func TestStaticRoleMapper_UnconfiguredGroupsNeverMatch(t *testing.T) {
	mapper := StaticRoleMapper{AdminGroup: "admins"}

	// An empty configured group must not match empty strings in the input.
	if _, ok := mapper.Map([]string{""}); ok {
		t.Error("empty group name matched an unconfigured mapping")
	}
}
