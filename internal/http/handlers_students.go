package httpx

import (
	"net/http"

	"github.com/davomat/attendance-ui-api/internal/domain/model"
	"github.com/davomat/attendance-ui-api/internal/service"
)

// StudentHandlers provides HTTP handlers for student management plus the
// student's own self-service endpoints.
type StudentHandlers struct {
	Svc *service.StudentService
}

// Get handles GET /api/students/{id}.
func (h *StudentHandlers) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	student, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, student)
}

// Create handles POST /api/students.
func (h *StudentHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var in model.AddStudent
	if !DecodeJSON(w, r, &in) {
		return
	}
	student, err := h.Svc.Add(r.Context(), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, student)
}

// Update handles PUT /api/students/{id}.
func (h *StudentHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var in model.UpdateStudent
	if !DecodeJSON(w, r, &in) {
		return
	}
	in.ID = id
	student, err := h.Svc.Edit(r.Context(), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, student)
}

// Delete handles DELETE /api/students/{id}?confirm=true.
func (h *StudentHandlers) Delete(w http.ResponseWriter, r *http.Request) {
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

// MyCourses handles GET /api/student/courses: the signed-in student's
// courses with the groups they belong to in each.
func (h *StudentHandlers) MyCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.Svc.Courses(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"courses": courses})
}

// MyBalance handles GET /api/student/balance: the signed-in student's
// paid-through date.
func (h *StudentHandlers) MyBalance(w http.ResponseWriter, r *http.Request) {
	balance, err := h.Svc.Balance(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, balance)
}
