package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/davomat/attendance-ui-api/config"
	"github.com/davomat/attendance-ui-api/internal/adapters/authroles"
	"github.com/davomat/attendance-ui-api/internal/adapters/devauth"
	"github.com/davomat/attendance-ui-api/internal/adapters/memory"
	"github.com/davomat/attendance-ui-api/internal/adapters/oidc"
	redisadapter "github.com/davomat/attendance-ui-api/internal/adapters/redis"
	"github.com/davomat/attendance-ui-api/internal/gateway"
	"github.com/davomat/attendance-ui-api/internal/ports"
	"github.com/davomat/attendance-ui-api/internal/service"
)

// AuthDeps contains dependencies for the auth service.
type AuthDeps struct {
	Auth        config.AuthConfig
	Gateway     *gateway.Client
	RedisClient redis.UniversalClient
	Prefix      string
	Logger      *slog.Logger
}

// BuildAuthService creates an auth service based on the configured auth mode.
// Password login works in every mode; oauth and mock additionally wire an
// SSO provider. A misconfigured mode is a startup error: every route in this
// service sits behind the session guard, so running without auth would only
// produce a server that rejects or crashes on all traffic.
func BuildAuthService(deps AuthDeps) (*service.AuthService, error) {
	sessions := buildSessionStore(deps)
	roleMapper := authroles.StaticRoleMapper{
		AdminGroup:   deps.Auth.AdminGroup,
		TeacherGroup: deps.Auth.TeacherGroup,
		StudentGroup: deps.Auth.StudentGroup,
	}

	opts := service.AuthServiceOptions{
		Gateway:    deps.Gateway,
		Sessions:   sessions,
		SessionTTL: deps.Auth.SessionTTL,
		Logger:     deps.Logger,
	}

	switch deps.Auth.Mode {
	case config.AuthModeMock:
		prov, err := devauth.NewProvider(devauth.Config{
			UserID:    deps.Auth.DevAuth.UserID,
			Email:     deps.Auth.DevAuth.Email,
			FirstName: deps.Auth.DevAuth.FirstName,
			LastName:  deps.Auth.DevAuth.LastName,
			Groups:    deps.Auth.DevAuth.Groups,
		})
		if err != nil {
			return nil, fmt.Errorf("create dev auth provider: %w", err)
		}
		opts.Provider = prov
		opts.Roles = roleMapper

	case config.AuthModeOAuth:
		oauth := deps.Auth.OAuth
		if oauth.DiscoveryURL == "" || oauth.ClientID == "" || oauth.ClientSecret == "" {
			return nil, fmt.Errorf(
				"oauth auth mode requires OAUTH_DISCOVERY_URL, OAUTH_CLIENT_ID, and OAUTH_CLIENT_SECRET (missing: discovery_url=%t client_id=%t client_secret=%t)",
				oauth.DiscoveryURL == "", oauth.ClientID == "", oauth.ClientSecret == "",
			)
		}
		prov, err := oidc.NewProvider(oidc.ProviderConfig{
			ClientID:     oauth.ClientID,
			ClientSecret: oauth.ClientSecret,
			RedirectURL:  oauth.RedirectURL,
			Scope:        oauth.Scope,
			DiscoveryURL: oauth.DiscoveryURL,
			LogoutURL:    oauth.LogoutURL,
		})
		if err != nil {
			return nil, fmt.Errorf("create OIDC provider: %w", err)
		}
		opts.Provider = prov
		opts.Roles = roleMapper

	case config.AuthModePassword:
		// Credentials are checked by the attendance backend; no SSO provider.
	}

	return service.NewAuthService(opts), nil
}

//nolint:ireturn // the store implementation is selected at runtime.
func buildSessionStore(deps AuthDeps) ports.SessionStore {
	if deps.RedisClient != nil {
		prefix := deps.Prefix
		if prefix == "" {
			prefix = "session:"
		}
		return redisadapter.NewSessionStoreWithPrefix(deps.RedisClient, prefix)
	}
	if deps.Logger != nil {
		deps.Logger.Warn("redis not configured; sessions are in-memory and will not survive restarts")
	}
	return memory.NewSessionStore()
}
