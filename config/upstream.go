package config

import (
	"strings"
	"time"
)

// UpstreamConfig contains the attendance backend configuration.
type UpstreamConfig struct {
	// BaseURL is the root of the attendance API, e.g. "http://localhost:8081".
	BaseURL string `env:"ATTENDANCE_API_URL" envDefault:"http://localhost:8081"`

	// Timeout bounds a single proxied request. Zero means no client-side
	// timeout; the request lives as long as the browser's does.
	Timeout time.Duration `env:"ATTENDANCE_API_TIMEOUT" envDefault:"0"`
}

// Sanitize applies guardrails to upstream configuration values.
func (u *UpstreamConfig) Sanitize() {
	u.BaseURL = strings.TrimRight(strings.TrimSpace(u.BaseURL), "/")
	if u.Timeout < 0 {
		u.Timeout = 0
	}
}
