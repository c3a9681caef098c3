package httpx

import (
	"net/http"

	"github.com/davomat/attendance-ui-api/internal/domain/model"
	"github.com/davomat/attendance-ui-api/internal/service"
)

// CourseHandlers provides HTTP handlers for course management.
type CourseHandlers struct {
	Svc *service.CourseService
}

// List handles GET /api/courses?page=&size=.
func (h *CourseHandlers) List(w http.ResponseWriter, r *http.Request) {
	page, size := parsePaging(r, defaultPageSize)
	result, err := h.Svc.List(r.Context(), page, size)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, result)
}

// Get handles GET /api/courses/{id}.
func (h *CourseHandlers) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	course, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, course)
}

// Create handles POST /api/courses.
func (h *CourseHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var in model.AddCourse
	if !DecodeJSON(w, r, &in) {
		return
	}
	course, err := h.Svc.Create(r.Context(), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, course)
}

// Update handles PUT /api/courses/{id}.
func (h *CourseHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var in model.UpdateCourse
	if !DecodeJSON(w, r, &in) {
		return
	}
	in.ID = id
	course, err := h.Svc.Update(r.Context(), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, course)
}

// Delete handles DELETE /api/courses/{id}?confirm=true.
func (h *CourseHandlers) Delete(w http.ResponseWriter, r *http.Request) {
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

// Groups handles GET /api/courses/{id}/groups?page=&size=.
func (h *CourseHandlers) Groups(groups *service.GroupService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		page, size := parsePaging(r, defaultPageSize)
		result, err := groups.ListByCourse(r.Context(), id, page, size)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		WriteJSON(w, http.StatusOK, result)
	}
}
