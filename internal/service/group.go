package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/davomat/attendance-ui-api/internal/domain/model"
	"github.com/davomat/attendance-ui-api/internal/gateway"
)

// GroupServiceOptions groups dependencies for GroupService.
type GroupServiceOptions struct {
	Gateway *gateway.Client
	Logger  *slog.Logger
}

// GroupService proxies group management to the attendance backend.
type GroupService struct {
	gateway *gateway.Client
	logger  *slog.Logger
}

// NewGroupService constructs a GroupService.
func NewGroupService(opts GroupServiceOptions) *GroupService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &GroupService{gateway: opts.Gateway, logger: logger}
}

// ListByCourse returns one page of a course's groups.
func (s *GroupService) ListByCourse(ctx context.Context, courseID int64, page, size int) (*model.Page[model.Group], error) {
	query := pageQuery(page, size)

	var envelope model.Envelope
	if err := s.gateway.Get(ctx, fmt.Sprintf("/api/group/findByCourseId/%d", courseID), query, &envelope); err != nil {
		return nil, fmt.Errorf("list groups for course %d: %w", courseID, err)
	}
	var result model.Page[model.Group]
	if err := envelope.DecodeData(&result); err != nil {
		return nil, fmt.Errorf("decode group page: %w", err)
	}
	return &result, nil
}

// Get returns a single group by ID.
func (s *GroupService) Get(ctx context.Context, id int64) (*model.Group, error) {
	var envelope model.Envelope
	if err := s.gateway.Get(ctx, fmt.Sprintf("/api/group/%d", id), nil, &envelope); err != nil {
		return nil, fmt.Errorf("get group %d: %w", id, err)
	}
	var group model.Group
	if err := envelope.DecodeData(&group); err != nil {
		return nil, fmt.Errorf("decode group: %w", err)
	}
	return &group, nil
}

// Create adds a new group to a course.
func (s *GroupService) Create(ctx context.Context, in model.AddGroup) (*model.Group, error) {
	var envelope model.Envelope
	if err := s.gateway.Post(ctx, "/api/group/addGroup", in, &envelope); err != nil {
		return nil, fmt.Errorf("create group: %w", err)
	}
	var group model.Group
	if err := envelope.DecodeData(&group); err != nil {
		return nil, fmt.Errorf("decode created group: %w", err)
	}
	s.logger.InfoContext(ctx, "group created", "group_id", group.ID, "course_id", group.CourseID)
	return &group, nil
}

// Update edits an existing group. The upstream takes the whole record.
func (s *GroupService) Update(ctx context.Context, in model.Group) (*model.Group, error) {
	var envelope model.Envelope
	if err := s.gateway.Put(ctx, "/api/group/editGroup", in, &envelope); err != nil {
		return nil, fmt.Errorf("update group %d: %w", in.ID, err)
	}
	var group model.Group
	if err := envelope.DecodeData(&group); err != nil {
		return nil, fmt.Errorf("decode updated group: %w", err)
	}
	return &group, nil
}

// Delete removes a group. Requires the explicit confirmation flag.
func (s *GroupService) Delete(ctx context.Context, id int64, confirmed bool) error {
	if !confirmed {
		return ErrNotConfirmed
	}
	if err := s.gateway.Delete(ctx, fmt.Sprintf("/api/group/deleteGroup/%d", id), nil, nil); err != nil {
		return fmt.Errorf("delete group %d: %w", id, err)
	}
	s.logger.InfoContext(ctx, "group deleted", "group_id", id)
	return nil
}
