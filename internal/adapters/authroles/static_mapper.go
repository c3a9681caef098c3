package authroles

import (
	domainauth "github.com/davomat/attendance-ui-api/internal/domain/auth"
)

// StaticRoleMapper maps identity-provider groups to platform roles by simple
// string membership rules. Admin membership wins over teacher, teacher over
// student. Users in none of the configured groups are not mapped and cannot
// sign in.
type StaticRoleMapper struct {
	AdminGroup   string
	TeacherGroup string
	StudentGroup string
}

func (m StaticRoleMapper) Map(groups []string) (domainauth.Role, bool) {
	contains := func(want string) bool {
		if want == "" {
			return false
		}
		for _, g := range groups {
			if g == want {
				return true
			}
		}
		return false
	}

	switch {
	case contains(m.AdminGroup):
		return domainauth.RoleAdmin, true
	case contains(m.TeacherGroup):
		return domainauth.RoleTeacher, true
	case contains(m.StudentGroup):
		return domainauth.RoleStudent, true
	}
	return "", false
}
