package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	domainauth "github.com/davomat/attendance-ui-api/internal/domain/auth"
	"github.com/davomat/attendance-ui-api/internal/domain/model"
	"github.com/davomat/attendance-ui-api/internal/gateway"
	"github.com/davomat/attendance-ui-api/internal/ports"
)

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Gateway  *gateway.Client
	Sessions ports.SessionStore
	// Provider and Roles are only needed when SSO login is enabled.
	Provider ports.AuthProvider
	Roles    ports.RoleMapper
	// SessionTTL bounds password-login sessions; defaults to 8h.
	SessionTTL time.Duration
	Logger     *slog.Logger
}

// AuthService owns the session lifecycle: password and SSO login, session
// lookup with expiry cleanup, and teardown.
type AuthService struct {
	gateway    *gateway.Client
	sessions   ports.SessionStore
	provider   ports.AuthProvider
	roles      ports.RoleMapper
	sessionTTL time.Duration
	logger     *slog.Logger
}

var (
	errSessionExpired = errors.New("session expired")

	// ErrBadCredentials is returned when the attendance backend rejects
	// the email/password pair.
	ErrBadCredentials = errors.New("invalid email or password")

	// ErrNoRoleMapping is returned when an SSO identity belongs to none of
	// the configured role groups. Such users cannot sign in at all.
	ErrNoRoleMapping = errors.New("no role mapping for identity")
)

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	ttl := opts.SessionTTL
	if ttl <= 0 {
		ttl = 8 * time.Hour
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{
		gateway:    opts.Gateway,
		sessions:   opts.Sessions,
		provider:   opts.Provider,
		roles:      opts.Roles,
		sessionTTL: ttl,
		logger:     logger,
	}
}

// LoginResult contains the session established by a successful login plus
// the user record the backend returned.
type LoginResult struct {
	Session domainauth.Session
	User    model.User
}

// Login authenticates the email/password pair against the attendance backend
// and establishes a session around the returned bearer token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if email == "" || password == "" {
		return nil, ErrBadCredentials
	}

	var resp model.LoginResponse
	err := s.gateway.Post(ctx, "/auth/login", model.LoginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		if gateway.IsAuth(err) || gateway.IsValidation(err) {
			return nil, ErrBadCredentials
		}
		return nil, fmt.Errorf("upstream login: %w", err)
	}
	if resp.Token == "" {
		return nil, fmt.Errorf("upstream login: no token in response")
	}

	role, ok := domainauth.ParseRole(resp.User.Role)
	if !ok {
		return nil, fmt.Errorf("upstream login: unrecognized role %q", resp.User.Role)
	}

	session := domainauth.Session{
		ID:        generateSessionID(),
		UserID:    fmt.Sprintf("%d", resp.User.ID),
		FirstName: resp.User.FirstName,
		LastName:  resp.User.LastName,
		Email:     resp.User.Email,
		Role:      role,
		Token:     resp.Token,
		ExpiresAt: time.Now().Add(s.sessionTTL),
	}
	if saveErr := s.sessions.Save(ctx, session); saveErr != nil {
		return nil, fmt.Errorf("save session: %w", saveErr)
	}

	s.logger.InfoContext(ctx, "login succeeded",
		"user_id", session.UserID,
		"role", string(session.Role),
	)
	return &LoginResult{Session: session, User: resp.User}, nil
}

// BeginLoginResult contains the result of beginning an SSO login flow.
type BeginLoginResult struct {
	AuthURL string
	State   string
	Nonce   string
}

// BeginLogin initiates an SSO flow and returns the provider auth URL with
// state and nonce.
func (s *AuthService) BeginLogin(ctx context.Context, redirectURL string) (*BeginLoginResult, error) {
	if s.provider == nil {
		return nil, errors.New("SSO login is not configured")
	}
	if redirectURL == "" {
		return nil, errors.New("redirect URL is required")
	}

	authURL, state, nonce, err := s.provider.Begin(ctx, ports.BeginInput{RedirectURL: redirectURL})
	if err != nil {
		return nil, fmt.Errorf("begin auth flow: %w", err)
	}

	return &BeginLoginResult{
		AuthURL: authURL,
		State:   state,
		Nonce:   nonce,
	}, nil
}

// CompleteLoginInput groups parameters for completing an SSO login flow.
type CompleteLoginInput struct {
	Code  string
	State string
	Nonce string
}

// CompleteLogin completes an SSO flow by exchanging the code for an identity,
// mapping groups to a role, and persisting a session.
func (s *AuthService) CompleteLogin(ctx context.Context, input CompleteLoginInput) (*domainauth.Session, error) {
	if s.provider == nil || s.roles == nil {
		return nil, errors.New("SSO login is not configured")
	}
	if input.Code == "" {
		return nil, errors.New("authorization code is required")
	}
	if input.State == "" {
		return nil, errors.New("state parameter is required")
	}
	if input.Nonce == "" {
		return nil, errors.New("nonce parameter is required")
	}

	identity, err := s.provider.Exchange(ctx, ports.ExchangeInput{
		Code:  input.Code,
		State: input.State,
		Nonce: input.Nonce,
	})
	if err != nil {
		return nil, fmt.Errorf("exchange authorization code: %w", err)
	}

	role, ok := s.roles.Map(identity.Groups)
	if !ok {
		s.logger.WarnContext(ctx, "SSO identity has no role mapping",
			"user_id", identity.UserID,
			"groups", identity.Groups,
		)
		return nil, ErrNoRoleMapping
	}

	session := domainauth.Session{
		ID:        generateSessionID(),
		UserID:    identity.UserID,
		FirstName: identity.FirstName,
		LastName:  identity.LastName,
		Email:     identity.Email,
		Role:      role,
		Token:     identity.Token,
		ExpiresAt: identity.ExpiresAt,
	}
	if saveErr := s.sessions.Save(ctx, session); saveErr != nil {
		return nil, fmt.Errorf("save session: %w", saveErr)
	}

	return &session, nil
}

// GetSession retrieves a session by ID, cleaning up expired ones.
func (s *AuthService) GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error) {
	if sessionID == "" {
		return nil, errors.New("session ID is required")
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	if session.Expired() {
		if deleteErr := s.sessions.Delete(ctx, sessionID); deleteErr != nil {
			return nil, errors.Join(errSessionExpired, fmt.Errorf("delete session: %w", deleteErr))
		}
		return nil, errSessionExpired
	}

	return &session, nil
}

// Logout removes a session. Logging out an absent session is a no-op.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}

	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	return nil
}

// Invalidate tears a session down after the upstream rejected its token.
// It is safe to call repeatedly with the same ID; it is wired as the
// gateway's auth-failure hook.
func (s *AuthService) Invalidate(ctx context.Context, sess *domainauth.Session) {
	if sess == nil || sess.ID == "" {
		return
	}
	if err := s.sessions.Delete(ctx, sess.ID); err != nil {
		s.logger.ErrorContext(ctx, "failed to invalidate session",
			"session_id", sess.ID,
			"error", err,
		)
		return
	}
	s.logger.InfoContext(ctx, "session invalidated after upstream rejection",
		"session_id", sess.ID,
		"user_id", sess.UserID,
	)
}

// generateSessionID creates a cryptographically secure random session ID.
func generateSessionID() string {
	// Use UUID for session ID - it's URL-safe and has good entropy
	return uuid.New().String()
}
