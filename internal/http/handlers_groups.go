package httpx

import (
	"net/http"

	"github.com/davomat/attendance-ui-api/internal/domain/model"
	"github.com/davomat/attendance-ui-api/internal/service"
)

// GroupHandlers provides HTTP handlers for group management.
type GroupHandlers struct {
	Svc *service.GroupService
}

// Get handles GET /api/groups/{id}.
func (h *GroupHandlers) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	group, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, group)
}

// Create handles POST /api/groups.
func (h *GroupHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var in model.AddGroup
	if !DecodeJSON(w, r, &in) {
		return
	}
	group, err := h.Svc.Create(r.Context(), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, group)
}

// Update handles PUT /api/groups/{id}.
func (h *GroupHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var in model.Group
	if !DecodeJSON(w, r, &in) {
		return
	}
	in.ID = id
	group, err := h.Svc.Update(r.Context(), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, group)
}

// Delete handles DELETE /api/groups/{id}?confirm=true.
func (h *GroupHandlers) Delete(w http.ResponseWriter, r *http.Request) {
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

// Students handles GET /api/groups/{id}/students?page=&size=.
func (h *GroupHandlers) Students(students *service.StudentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		page, size := parsePaging(r, defaultPageSize)
		result, err := students.ListByGroup(r.Context(), id, page, size)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		WriteJSON(w, http.StatusOK, result)
	}
}
