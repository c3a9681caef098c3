package httpx

import (
	"net/http"

	"github.com/davomat/attendance-ui-api/internal/service"
)

// SystemLogHandlers provides HTTP handlers for the audit trail admin screens.
type SystemLogHandlers struct {
	Svc *service.SystemLogService
}

// List handles GET /api/system-logs?page=&size=.
func (h *SystemLogHandlers) List(w http.ResponseWriter, r *http.Request) {
	page, size := parsePaging(r, defaultLogPageSize)
	result, err := h.Svc.List(r.Context(), page, size)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, result)
}

// Delete handles DELETE /api/system-logs/{id}?confirm=true.
func (h *SystemLogHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.Svc.Delete(r.Context(), id, confirmed(r)); err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// bulkDeleteRequest is the body of DELETE /api/system-logs/bulk.
type bulkDeleteRequest struct {
	IDs []int64 `json:"ids"`
}

// DeleteBulk handles DELETE /api/system-logs/bulk?confirm=true with a JSON
// body listing the entry IDs to remove.
func (h *SystemLogHandlers) DeleteBulk(w http.ResponseWriter, r *http.Request) {
	var req bulkDeleteRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if err := h.Svc.DeleteBulk(r.Context(), req.IDs, confirmed(r)); err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"status": "deleted", "count": len(req.IDs)})
}

// DeleteAll handles DELETE /api/system-logs?confirm=true.
func (h *SystemLogHandlers) DeleteAll(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.DeleteAll(r.Context(), confirmed(r)); err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
