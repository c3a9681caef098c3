package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/davomat/attendance-ui-api/internal/domain/auth"
	"github.com/davomat/attendance-ui-api/internal/gateway"
	"github.com/davomat/attendance-ui-api/internal/service"
)

func newDashboardService(t *testing.T) *service.StatisticsService {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/statistics/dashboard", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":200,"message":"Success","data":{"totalCourses":3}}`))
	})
	mux.HandleFunc("/api/statistics/activity", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":200,"message":"Success","data":{"recent":[]}}`))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	gw, err := gateway.NewClient(gateway.Options{BaseURL: server.URL, Logger: discardLogger()})
	require.NoError(t, err)

	svc, err := service.NewStatisticsService(service.StatisticsServiceOptions{
		Gateway: gw,
		Widgets: []service.StatWidget{{Key: "totalCourses", Label: "Courses"}},
		Logger:  discardLogger(),
	})
	require.NoError(t, err)
	return svc
}

// flakySessionReader approves the first lookup and fails the rest, modeling a
// session torn down while the dashboard fetches were in flight.
type flakySessionReader struct {
	sess  *domainauth.Session
	calls atomic.Int32
}

func (f *flakySessionReader) GetSession(context.Context, string) (*domainauth.Session, error) {
	if f.calls.Add(1) == 1 {
		return f.sess, nil
	}
	return nil, errors.New("session not found")
}

func TestDashboard_Renders(t *testing.T) {
	h := &DashboardHandlers{Svc: newDashboardService(t), Auth: newGuardReader()}

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	r = r.WithContext(SetSessionInContext(r.Context(), sessionFixture("admin", domainauth.RoleAdmin)))
	h.Dashboard(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	cards, ok := resp["cards"].([]any)
	require.True(t, ok)
	require.Len(t, cards, 1)
	card := cards[0].(map[string]any)
	assert.Equal(t, "Courses", card["label"])
	assert.Equal(t, float64(3), card["value"])
}

func TestDashboard_DiscardsResponseAfterTeardown(t *testing.T) {
	sess := sessionFixture("s-1", domainauth.RoleAdmin)
	reader := &flakySessionReader{sess: sess}
	h := &DashboardHandlers{Svc: newDashboardService(t), Auth: reader}

	// The guard would have passed with the first lookup; the handler's
	// post-fetch recheck hits the second lookup and must discard the view.
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	r = r.WithContext(SetSessionInContext(r.Context(), sess))
	_, err := reader.GetSession(r.Context(), sess.ID)
	require.NoError(t, err)
	h.Dashboard(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "session_rejected")
}

func TestDashboard_WithoutSessionInContext(t *testing.T) {
	h := &DashboardHandlers{Svc: newDashboardService(t)}
	w := httptest.NewRecorder()
	h.Dashboard(w, httptest.NewRequest(http.MethodGet, "/api/dashboard", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
