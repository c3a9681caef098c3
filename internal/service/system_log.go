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

// maxLogPageSize mirrors the upstream cap on system-log page sizes.
const maxLogPageSize = 100

// SystemLogServiceOptions groups dependencies for SystemLogService.
type SystemLogServiceOptions struct {
	Gateway *gateway.Client
	Logger  *slog.Logger
}

// SystemLogService exposes the admin audit-log surface: paged reads plus
// confirmation-gated deletes.
type SystemLogService struct {
	gateway *gateway.Client
	logger  *slog.Logger
}

// NewSystemLogService constructs a SystemLogService.
func NewSystemLogService(opts SystemLogServiceOptions) *SystemLogService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &SystemLogService{gateway: opts.Gateway, logger: logger}
}

// List returns one page of system logs, newest first.
func (s *SystemLogService) List(ctx context.Context, page, size int) (*model.Page[model.SystemLog], error) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = 50
	}
	if size > maxLogPageSize {
		size = maxLogPageSize
	}

	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("size", strconv.Itoa(size))

	var result model.Page[model.SystemLog]
	if err := s.gateway.Get(ctx, "/api/system-logs", query, &result); err != nil {
		return nil, fmt.Errorf("list system logs: %w", err)
	}
	return &result, nil
}

// Delete removes a single log entry. The confirmed flag must be set or the
// request never leaves this process.
func (s *SystemLogService) Delete(ctx context.Context, id int64, confirmed bool) error {
	if !confirmed {
		return ErrNotConfirmed
	}
	if err := s.gateway.Delete(ctx, fmt.Sprintf("/api/system-logs/%d", id), nil, nil); err != nil {
		return fmt.Errorf("delete system log %d: %w", id, err)
	}
	s.logger.InfoContext(ctx, "system log deleted", "log_id", id)
	return nil
}

// DeleteBulk removes the given log entries.
func (s *SystemLogService) DeleteBulk(ctx context.Context, ids []int64, confirmed bool) error {
	if !confirmed {
		return ErrNotConfirmed
	}
	if len(ids) == 0 {
		return nil
	}
	if err := s.gateway.DeleteWithBody(ctx, "/api/system-logs/bulk", ids, nil); err != nil {
		return fmt.Errorf("bulk delete system logs: %w", err)
	}
	s.logger.InfoContext(ctx, "system logs deleted", "count", len(ids))
	return nil
}

// DeleteAll wipes the entire log table.
func (s *SystemLogService) DeleteAll(ctx context.Context, confirmed bool) error {
	if !confirmed {
		return ErrNotConfirmed
	}
	if err := s.gateway.Delete(ctx, "/api/system-logs/all", nil, nil); err != nil {
		return fmt.Errorf("delete all system logs: %w", err)
	}
	s.logger.WarnContext(ctx, "all system logs deleted")
	return nil
}
