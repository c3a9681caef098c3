package httpx

import (
	"log/slog"
	"net/http"

	domainauth "github.com/davomat/attendance-ui-api/internal/domain/auth"
	"github.com/davomat/attendance-ui-api/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth       AuthServiceInterface
	Courses    *service.CourseService
	Groups     *service.GroupService
	Students   *service.StudentService
	SystemLogs *service.SystemLogService
	Statistics *service.StatisticsService

	CookieDomain string
	// EnableCSRF turns on double-submit cookie protection for state-changing
	// requests. Off by default so embedded test routers stay simple.
	EnableCSRF bool
	Logger     *slog.Logger // Logger for HTTP errors (optional)
}

// NewRouter creates and configures the HTTP router.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	authHandlers := &AuthHandlers{Svc: services.Auth, CookieDomain: services.CookieDomain, Logger: services.Logger}
	registerAuthRoutes(mux, authHandlers)

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	// Staff screens: course, group, and student administration.
	wrapStaff := RequireRoles(services.Auth, domainauth.RoleAdmin, domainauth.RoleTeacher)
	if services.Courses != nil {
		registerCourseRoutes(mux, routeConfig{services: services, wrap: wrapStaff})
	}
	if services.Groups != nil {
		registerGroupRoutes(mux, routeConfig{services: services, wrap: wrapStaff})
	}
	if services.Students != nil {
		registerStudentRoutes(mux, routeConfig{services: services, wrap: wrapStaff})
	}

	// Audit trail is admin-only.
	if services.SystemLogs != nil {
		registerSystemLogRoutes(mux, routeConfig{
			services: services,
			wrap:     RequireRoles(services.Auth, domainauth.RoleAdmin),
		})
	}

	// Dashboard is available to any signed-in role; the statistics payload
	// is shaped per role by the attendance backend.
	if services.Statistics != nil {
		registerDashboardRoutes(mux, routeConfig{
			services: services,
			wrap:     RequireRoles(services.Auth),
		})
	}

	var handler http.Handler = mux
	if services.EnableCSRF {
		handler = CSRFProtection(CSRFConfig{CookieDomain: services.CookieDomain})(handler)
	}
	return BrowserDetection()(handler)
}

// routeConfig pairs the shared services with the guard for a route group.
type routeConfig struct {
	services RouterServices
	wrap     func(http.Handler) http.Handler
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers) {
	mux.Handle("POST /auth/login", http.HandlerFunc(h.PasswordLogin))
	mux.Handle("POST /auth/logout", http.HandlerFunc(h.Logout))
	mux.Handle("GET /auth/status", http.HandlerFunc(h.Status))
	mux.Handle("GET /auth/sso/login", http.HandlerFunc(h.SSOLogin))
	mux.Handle("GET /auth/sso/callback", http.HandlerFunc(h.SSOCallback))
}

func registerCourseRoutes(mux *http.ServeMux, cfg routeConfig) {
	h := &CourseHandlers{Svc: cfg.services.Courses}
	mux.Handle("GET /api/courses", cfg.wrap(http.HandlerFunc(h.List)))
	mux.Handle("GET /api/courses/{id}", cfg.wrap(http.HandlerFunc(h.Get)))
	mux.Handle("POST /api/courses", cfg.wrap(http.HandlerFunc(h.Create)))
	mux.Handle("PUT /api/courses/{id}", cfg.wrap(http.HandlerFunc(h.Update)))
	mux.Handle("DELETE /api/courses/{id}", cfg.wrap(http.HandlerFunc(h.Delete)))
	if cfg.services.Groups != nil {
		mux.Handle("GET /api/courses/{id}/groups", cfg.wrap(h.Groups(cfg.services.Groups)))
	}
}

func registerGroupRoutes(mux *http.ServeMux, cfg routeConfig) {
	h := &GroupHandlers{Svc: cfg.services.Groups}
	mux.Handle("GET /api/groups/{id}", cfg.wrap(http.HandlerFunc(h.Get)))
	mux.Handle("POST /api/groups", cfg.wrap(http.HandlerFunc(h.Create)))
	mux.Handle("PUT /api/groups/{id}", cfg.wrap(http.HandlerFunc(h.Update)))
	mux.Handle("DELETE /api/groups/{id}", cfg.wrap(http.HandlerFunc(h.Delete)))
	if cfg.services.Students != nil {
		mux.Handle("GET /api/groups/{id}/students", cfg.wrap(h.Students(cfg.services.Students)))
	}
}

func registerStudentRoutes(mux *http.ServeMux, cfg routeConfig) {
	h := &StudentHandlers{Svc: cfg.services.Students}
	mux.Handle("GET /api/students/{id}", cfg.wrap(http.HandlerFunc(h.Get)))
	mux.Handle("POST /api/students", cfg.wrap(http.HandlerFunc(h.Create)))
	mux.Handle("PUT /api/students/{id}", cfg.wrap(http.HandlerFunc(h.Update)))
	mux.Handle("DELETE /api/students/{id}", cfg.wrap(http.HandlerFunc(h.Delete)))

	// Self-service endpoints for the signed-in student.
	wrapStudent := RequireRoles(cfg.services.Auth, domainauth.RoleStudent)
	mux.Handle("GET /api/student/courses", wrapStudent(http.HandlerFunc(h.MyCourses)))
	mux.Handle("GET /api/student/balance", wrapStudent(http.HandlerFunc(h.MyBalance)))
}

func registerSystemLogRoutes(mux *http.ServeMux, cfg routeConfig) {
	h := &SystemLogHandlers{Svc: cfg.services.SystemLogs}
	mux.Handle("GET /api/system-logs", cfg.wrap(http.HandlerFunc(h.List)))
	mux.Handle("DELETE /api/system-logs/{id}", cfg.wrap(http.HandlerFunc(h.Delete)))
	mux.Handle("DELETE /api/system-logs/bulk", cfg.wrap(http.HandlerFunc(h.DeleteBulk)))
	mux.Handle("DELETE /api/system-logs", cfg.wrap(http.HandlerFunc(h.DeleteAll)))
}

func registerDashboardRoutes(mux *http.ServeMux, cfg routeConfig) {
	h := &DashboardHandlers{Svc: cfg.services.Statistics, Auth: cfg.services.Auth}
	mux.Handle("GET /api/dashboard", cfg.wrap(http.HandlerFunc(h.Dashboard)))
	mux.Handle("GET /api/statistics/performance", cfg.wrap(http.HandlerFunc(h.Performance)))
}
