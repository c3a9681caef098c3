package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/davomat/attendance-ui-api/config"
	domainauth "github.com/davomat/attendance-ui-api/internal/domain/auth"
	"github.com/davomat/attendance-ui-api/internal/gateway"
	"github.com/davomat/attendance-ui-api/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Auth       *service.AuthService
	Courses    *service.CourseService
	Groups     *service.GroupService
	Students   *service.StudentService
	SystemLogs *service.SystemLogService
	Statistics *service.StatisticsService
	Gateway    *gateway.Client
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// NewServices initializes all application services.
//
// The auth service and the gateway reference each other: the gateway's auth
// failure hook tears sessions down through the auth service, and the auth
// service performs password logins through the gateway. The cycle is broken
// by capturing the auth service variable in the hook closure before it is
// assigned.
func NewServices(deps *ServiceDeps) (*ServiceContainer, error) {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cfg := deps.Config

	var httpClient *http.Client
	if cfg.Upstream.Timeout > 0 {
		httpClient = &http.Client{Timeout: cfg.Upstream.Timeout}
	}

	var authSvc *service.AuthService
	gw, err := gateway.NewClient(gateway.Options{
		BaseURL:    cfg.Upstream.BaseURL,
		HTTPClient: httpClient,
		Logger:     logger,
		OnAuthFailure: func(ctx context.Context, sess *domainauth.Session) {
			if authSvc != nil {
				authSvc.Invalidate(ctx, sess)
			}
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create gateway client: %w", err)
	}

	authSvc, err = BuildAuthService(AuthDeps{
		Auth:        cfg.Auth,
		Gateway:     gw,
		RedisClient: deps.RedisClient,
		Prefix:      cfg.Redis.SessionPrefix,
		Logger:      logger,
	})
	if err != nil {
		return nil, fmt.Errorf("create auth service: %w", err)
	}

	widgets, err := cfg.Dashboard.ParseWidgets()
	if err != nil {
		return nil, err
	}
	statWidgets := make([]service.StatWidget, 0, len(widgets))
	for _, w := range widgets {
		statWidgets = append(statWidgets, service.StatWidget{Key: w.Key, Label: w.Label, Expr: w.Expr})
	}
	stats, err := service.NewStatisticsService(service.StatisticsServiceOptions{
		Gateway: gw,
		Widgets: statWidgets,
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("create statistics service: %w", err)
	}

	return &ServiceContainer{
		Auth:       authSvc,
		Courses:    service.NewCourseService(service.CourseServiceOptions{Gateway: gw, Logger: logger}),
		Groups:     service.NewGroupService(service.GroupServiceOptions{Gateway: gw, Logger: logger}),
		Students:   service.NewStudentService(service.StudentServiceOptions{Gateway: gw, Logger: logger}),
		SystemLogs: service.NewSystemLogService(service.SystemLogServiceOptions{Gateway: gw, Logger: logger}),
		Statistics: stats,
		Gateway:    gw,
	}, nil
}
