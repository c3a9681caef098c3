//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

// SystemLog is one audit entry from the attendance service's system log.
// Timestamp stays a string: the upstream serializes LocalDateTime without a
// zone designator, which encoding/json cannot parse as time.Time, and the
// front end only displays it.
type SystemLog struct {
	ID         int64  `json:"id"`
	Timestamp  string `json:"timestamp"`
	Level      string `json:"level"`
	Username   string `json:"username"`
	Action     string `json:"action"`
	Message    string `json:"message"`
	IPAddress  string `json:"ipAddress,omitempty"`
	UserAgent  string `json:"userAgent,omitempty"`
	Endpoint   string `json:"endpoint,omitempty"`
	Method     string `json:"method,omitempty"`
	StatusCode int    `json:"statusCode,omitempty"`
	Duration   int64  `json:"duration,omitempty"`
}
