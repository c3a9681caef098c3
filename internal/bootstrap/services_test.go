package bootstrap

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davomat/attendance-ui-api/config"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.AppConfig {
	cfg := &config.AppConfig{
		Auth:     config.AuthConfig{Mode: config.AuthModePassword, SessionTTL: time.Hour},
		Upstream: config.UpstreamConfig{BaseURL: "http://localhost:8081"},
	}
	return cfg
}

func TestNewServices_PasswordMode(t *testing.T) {
	container, err := NewServices(&ServiceDeps{Config: testConfig(), Logger: testLogger()})
	require.NoError(t, err)

	assert.NotNil(t, container.Auth)
	assert.NotNil(t, container.Courses)
	assert.NotNil(t, container.Groups)
	assert.NotNil(t, container.Students)
	assert.NotNil(t, container.SystemLogs)
	assert.NotNil(t, container.Statistics)
	assert.NotNil(t, container.Gateway)
}

// A misconfigured auth mode must fail startup instead of producing a
// container whose nil auth service panics on the first request.
func TestNewServices_MisconfiguredOAuthFailsStartup(t *testing.T) {
	cfg := testConfig()
	cfg.Auth.Mode = config.AuthModeOAuth

	container, err := NewServices(&ServiceDeps{Config: cfg, Logger: testLogger()})
	require.Error(t, err)
	assert.Nil(t, container)
}

func TestNewServices_RejectsBadWidgetConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Dashboard.Widgets = []string{"|label only"}

	_, err := NewServices(&ServiceDeps{Config: cfg, Logger: testLogger()})
	assert.Error(t, err)
}

func TestNewServices_RejectsBadWidgetExpression(t *testing.T) {
	cfg := testConfig()
	cfg.Dashboard.Widgets = []string{"cards|Cards|[invalid"}

	_, err := NewServices(&ServiceDeps{Config: cfg, Logger: testLogger()})
	assert.Error(t, err)
}

func TestNewServices_EmptyUpstreamURLFails(t *testing.T) {
	cfg := testConfig()
	cfg.Upstream.BaseURL = ""

	_, err := NewServices(&ServiceDeps{Config: cfg, Logger: testLogger()})
	assert.Error(t, err)
}
