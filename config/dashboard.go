package config

import (
	"fmt"
	"strings"
)

// DashboardConfig contains the dashboard widget configuration.
//
// Widgets are declared as "key|Label|expression" entries separated by
// semicolons, where expression is a JMESPath selector into the statistics
// payload. The expression may be omitted, in which case the key doubles as
// the selector:
//
//	DASHBOARD_WIDGETS="totalCourses|Courses;today|Today's attendance|attendance.today"
type DashboardConfig struct {
	Widgets []string `env:"DASHBOARD_WIDGETS" envSeparator:";"`
}

// Widget is one parsed dashboard widget declaration.
type Widget struct {
	Key   string
	Label string
	Expr  string
}

// ParseWidgets parses the raw widget declarations. Empty entries are skipped.
func (d DashboardConfig) ParseWidgets() ([]Widget, error) {
	widgets := make([]Widget, 0, len(d.Widgets))
	for _, raw := range d.Widgets {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		parts := strings.SplitN(raw, "|", 3)
		w := Widget{Key: strings.TrimSpace(parts[0])}
		if w.Key == "" {
			return nil, fmt.Errorf("dashboard widget %q: key is required", raw)
		}
		w.Label = w.Key
		if len(parts) > 1 && strings.TrimSpace(parts[1]) != "" {
			w.Label = strings.TrimSpace(parts[1])
		}
		if len(parts) > 2 {
			w.Expr = strings.TrimSpace(parts[2])
		}
		widgets = append(widgets, w)
	}
	return widgets, nil
}
