package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"

	"github.com/davomat/attendance-ui-api/internal/domain/model"
	"github.com/davomat/attendance-ui-api/internal/gateway"
)

// CourseServiceOptions groups dependencies for CourseService.
type CourseServiceOptions struct {
	Gateway *gateway.Client
	Logger  *slog.Logger
}

// CourseService proxies course management to the attendance backend.
type CourseService struct {
	gateway *gateway.Client
	logger  *slog.Logger
}

// NewCourseService constructs a CourseService.
func NewCourseService(opts CourseServiceOptions) *CourseService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &CourseService{gateway: opts.Gateway, logger: logger}
}

// List returns one page of courses.
func (s *CourseService) List(ctx context.Context, page, size int) (*model.Page[model.Course], error) {
	query := pageQuery(page, size)

	var envelope model.Envelope
	if err := s.gateway.Get(ctx, "/api/course/getAllCourses", query, &envelope); err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	var result model.Page[model.Course]
	if err := envelope.DecodeData(&result); err != nil {
		return nil, fmt.Errorf("decode course page: %w", err)
	}
	return &result, nil
}

// Get returns a single course by ID.
func (s *CourseService) Get(ctx context.Context, id int64) (*model.Course, error) {
	var envelope model.Envelope
	if err := s.gateway.Get(ctx, fmt.Sprintf("/api/course/%d", id), nil, &envelope); err != nil {
		return nil, fmt.Errorf("get course %d: %w", id, err)
	}
	var course model.Course
	if err := envelope.DecodeData(&course); err != nil {
		return nil, fmt.Errorf("decode course: %w", err)
	}
	return &course, nil
}

// Create adds a new course and returns the created record.
func (s *CourseService) Create(ctx context.Context, in model.AddCourse) (*model.Course, error) {
	var envelope model.Envelope
	if err := s.gateway.Post(ctx, "/api/course/create", in, &envelope); err != nil {
		return nil, fmt.Errorf("create course: %w", err)
	}
	var course model.Course
	if err := envelope.DecodeData(&course); err != nil {
		return nil, fmt.Errorf("decode created course: %w", err)
	}
	s.logger.InfoContext(ctx, "course created", "course_id", course.ID, "title", course.Title)
	return &course, nil
}

// Update edits an existing course.
func (s *CourseService) Update(ctx context.Context, in model.UpdateCourse) (*model.Course, error) {
	var envelope model.Envelope
	if err := s.gateway.Put(ctx, "/api/course/update", in, &envelope); err != nil {
		return nil, fmt.Errorf("update course %d: %w", in.ID, err)
	}
	var course model.Course
	if err := envelope.DecodeData(&course); err != nil {
		return nil, fmt.Errorf("decode updated course: %w", err)
	}
	return &course, nil
}

// Delete removes a course. Requires the explicit confirmation flag.
func (s *CourseService) Delete(ctx context.Context, id int64, confirmed bool) error {
	if !confirmed {
		return ErrNotConfirmed
	}
	if err := s.gateway.Delete(ctx, fmt.Sprintf("/api/course/delete/%d", id), nil, nil); err != nil {
		return fmt.Errorf("delete course %d: %w", id, err)
	}
	s.logger.InfoContext(ctx, "course deleted", "course_id", id)
	return nil
}

// pageQuery builds the upstream pagination query, clamping negatives.
func pageQuery(page, size int) url.Values {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = 10
	}
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("size", strconv.Itoa(size))
	return query
}
