package httpx

import (
	"errors"
	"net/http"

	"github.com/davomat/attendance-ui-api/internal/gateway"
	"github.com/davomat/attendance-ui-api/internal/service"
)

// writeServiceError maps service and upstream errors onto JSON error
// responses. Auth rejections surface as 401 so the SPA knows the session was
// torn down and can send the user back to login.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNotConfirmed):
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "confirmation_required", Err: err})
	case gateway.IsAuth(err):
		WriteError(w, ErrorParams{Code: http.StatusUnauthorized, ErrCode: "session_rejected", Err: err})
	case gateway.IsValidation(err):
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "validation_failed", Err: err})
	case gateway.IsUnreachable(err):
		WriteError(w, ErrorParams{Code: http.StatusBadGateway, ErrCode: "backend_unreachable", Err: err})
	default:
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "internal_error", Err: err})
	}
}
