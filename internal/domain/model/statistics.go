//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

// StatsPayload is the role-shaped statistics object returned by
// /api/statistics/dashboard. Its keys differ by role (totalUsers for admins,
// myCourses for teachers, ...), so it stays a loose map and the dashboard
// widgets select out of it by expression.
type StatsPayload map[string]any

// StatCard is one rendered dashboard widget: a label plus the value selected
// from the statistics payload.
type StatCard struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value any    `json:"value"`
}

// DashboardView is the assembled dashboard response for a role: the raw
// statistics, the configured widget cards, and the recent-activity payload
// when it loaded. Activity is strictly auxiliary; a nil Activity with a
// populated ActivityError means the side fetch failed and was dropped.
type DashboardView struct {
	Stats         StatsPayload `json:"stats"`
	Cards         []StatCard   `json:"cards"`
	Activity      StatsPayload `json:"activity,omitempty"`
	ActivityError string       `json:"activityError,omitempty"`
}
