package httpx

import (
	"errors"
	"net/http"

	"github.com/davomat/attendance-ui-api/internal/service"
)

// DashboardHandlers serves the statistics dashboard endpoints.
type DashboardHandlers struct {
	Svc  *service.StatisticsService
	Auth SessionReader
}

// Dashboard returns the assembled dashboard for the caller's role.
// GET /api/dashboard.
//
// The upstream fetches run concurrently and can outlive a logout issued from
// another tab. The session is re-checked after the fetches complete so a
// response assembled for a torn-down session is discarded instead of served.
func (h *DashboardHandlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	session, ok := GetUserSessionFromContext(r.Context())
	if !ok {
		WriteError(w, ErrorParams{Code: http.StatusUnauthorized, ErrCode: "authentication_required", Err: errors.New("authentication required")})
		return
	}

	view, err := h.Svc.Dashboard(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if h.Auth != nil {
		if _, liveErr := h.Auth.GetSession(r.Context(), session.ID); liveErr != nil {
			WriteError(w, ErrorParams{Code: http.StatusUnauthorized, ErrCode: "session_rejected", Err: errors.New("session no longer valid")})
			return
		}
	}

	WriteJSON(w, http.StatusOK, view)
}

// Performance returns the attendance performance statistics.
// GET /api/statistics/performance.
func (h *DashboardHandlers) Performance(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Svc.Performance(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"performance": stats})
}
