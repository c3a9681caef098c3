package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/davomat/attendance-ui-api/internal/domain/model"
	"github.com/davomat/attendance-ui-api/internal/gateway"
)

// StudentServiceOptions groups dependencies for StudentService.
type StudentServiceOptions struct {
	Gateway *gateway.Client
	Logger  *slog.Logger
}

// StudentService proxies student management and the student self-service
// reads to the attendance backend.
type StudentService struct {
	gateway *gateway.Client
	logger  *slog.Logger
}

// NewStudentService constructs a StudentService.
func NewStudentService(opts StudentServiceOptions) *StudentService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &StudentService{gateway: opts.Gateway, logger: logger}
}

// ListByGroup returns one page of a group's students.
func (s *StudentService) ListByGroup(ctx context.Context, groupID int64, page, size int) (*model.Page[model.Student], error) {
	query := pageQuery(page, size)

	var envelope model.Envelope
	if err := s.gateway.Get(ctx, fmt.Sprintf("/api/student/findByGroupId/%d", groupID), query, &envelope); err != nil {
		return nil, fmt.Errorf("list students for group %d: %w", groupID, err)
	}
	var result model.Page[model.Student]
	if err := envelope.DecodeData(&result); err != nil {
		return nil, fmt.Errorf("decode student page: %w", err)
	}
	return &result, nil
}

// Get returns a single student by ID.
func (s *StudentService) Get(ctx context.Context, id int64) (*model.Student, error) {
	var envelope model.Envelope
	if err := s.gateway.Get(ctx, fmt.Sprintf("/api/student/%d", id), nil, &envelope); err != nil {
		return nil, fmt.Errorf("get student %d: %w", id, err)
	}
	var student model.Student
	if err := envelope.DecodeData(&student); err != nil {
		return nil, fmt.Errorf("decode student: %w", err)
	}
	return &student, nil
}

// Add enrolls a student into a group.
func (s *StudentService) Add(ctx context.Context, in model.AddStudent) (*model.Student, error) {
	var envelope model.Envelope
	if err := s.gateway.Post(ctx, "/api/student/addStudent", in, &envelope); err != nil {
		return nil, fmt.Errorf("add student: %w", err)
	}
	var student model.Student
	if err := envelope.DecodeData(&student); err != nil {
		return nil, fmt.Errorf("decode added student: %w", err)
	}
	s.logger.InfoContext(ctx, "student added", "student_id", student.ID, "group_id", student.GroupID)
	return &student, nil
}

// Edit updates a student record.
func (s *StudentService) Edit(ctx context.Context, in model.UpdateStudent) (*model.Student, error) {
	var envelope model.Envelope
	if err := s.gateway.Put(ctx, "/api/student/editStudent", in, &envelope); err != nil {
		return nil, fmt.Errorf("edit student %d: %w", in.ID, err)
	}
	var student model.Student
	if err := envelope.DecodeData(&student); err != nil {
		return nil, fmt.Errorf("decode edited student: %w", err)
	}
	return &student, nil
}

// Delete removes a student. Requires the explicit confirmation flag.
func (s *StudentService) Delete(ctx context.Context, id int64, confirmed bool) error {
	if !confirmed {
		return ErrNotConfirmed
	}
	if err := s.gateway.Delete(ctx, fmt.Sprintf("/api/student/deleteStudent/%d", id), nil, nil); err != nil {
		return fmt.Errorf("delete student %d: %w", id, err)
	}
	s.logger.InfoContext(ctx, "student deleted", "student_id", id)
	return nil
}

// Courses returns the signed-in student's courses with their groups.
func (s *StudentService) Courses(ctx context.Context) ([]model.StudentCourseGroup, error) {
	var envelope model.Envelope
	if err := s.gateway.Get(ctx, "/api/student/seeCourses", nil, &envelope); err != nil {
		return nil, fmt.Errorf("fetch student courses: %w", err)
	}
	var courses []model.StudentCourseGroup
	if err := envelope.DecodeData(&courses); err != nil {
		return nil, fmt.Errorf("decode student courses: %w", err)
	}
	return courses, nil
}

// Balance returns the signed-in student's payment state.
func (s *StudentService) Balance(ctx context.Context) (*model.Balance, error) {
	var envelope model.Envelope
	if err := s.gateway.Get(ctx, "/api/student/balance", nil, &envelope); err != nil {
		return nil, fmt.Errorf("fetch student balance: %w", err)
	}
	var balance model.Balance
	if err := envelope.DecodeData(&balance); err != nil {
		return nil, fmt.Errorf("decode student balance: %w", err)
	}
	return &balance, nil
}
