package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	jmespath "github.com/jmespath-community/go-jmespath"
	"golang.org/x/sync/errgroup"

	"github.com/davomat/attendance-ui-api/internal/domain/model"
	"github.com/davomat/attendance-ui-api/internal/gateway"
)

// JMESPathEvaluator abstracts JMESPath operations for testability.
type JMESPathEvaluator interface {
	Validate(expr string) error
	Evaluate(expr string, data any) (any, error)
}

// jmespathLibEvaluator implements JMESPathEvaluator using go-jmespath.
type jmespathLibEvaluator struct{}

func (j jmespathLibEvaluator) Validate(expr string) error {
	if strings.TrimSpace(expr) == "" {
		return nil
	}
	_, err := jmespath.Compile(expr)
	return err
}

func (j jmespathLibEvaluator) Evaluate(expr string, data any) (any, error) {
	return jmespath.Search(expr, data)
}

// StatWidget is one configured dashboard card: a JMESPath expression selecting
// a value out of the role-shaped statistics payload.
type StatWidget struct {
	Key   string
	Label string
	Expr  string
}

// StatisticsServiceOptions groups dependencies for StatisticsService.
type StatisticsServiceOptions struct {
	Gateway   *gateway.Client
	Widgets   []StatWidget
	Evaluator JMESPathEvaluator
	Logger    *slog.Logger
}

// StatisticsService assembles dashboard views from the upstream statistics
// endpoints.
type StatisticsService struct {
	gateway *gateway.Client
	widgets []StatWidget
	jems    JMESPathEvaluator
	logger  *slog.Logger
}

// NewStatisticsService constructs a StatisticsService, validating every
// configured widget expression up front.
func NewStatisticsService(opts StatisticsServiceOptions) (*StatisticsService, error) {
	jems := opts.Evaluator
	if jems == nil {
		jems = jmespathLibEvaluator{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	for _, w := range opts.Widgets {
		if w.Key == "" {
			return nil, errors.New("statistics: widget key is required")
		}
		if err := jems.Validate(w.Expr); err != nil {
			return nil, fmt.Errorf("statistics: widget %q: invalid expression %q: %w", w.Key, w.Expr, err)
		}
	}
	return &StatisticsService{
		gateway: opts.Gateway,
		widgets: opts.Widgets,
		jems:    jems,
		logger:  logger,
	}, nil
}

// Dashboard fetches the statistics and recent-activity payloads concurrently
// and renders the configured widget cards. The activity fetch is auxiliary:
// its failure is reported in the view, never as an error.
func (s *StatisticsService) Dashboard(ctx context.Context) (*model.DashboardView, error) {
	var (
		stats    model.StatsPayload
		activity model.StatsPayload
		actErr   error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var envelope model.Envelope
		if err := s.gateway.Get(gctx, "/api/statistics/dashboard", nil, &envelope); err != nil {
			return fmt.Errorf("fetch dashboard statistics: %w", err)
		}
		if err := envelope.DecodeData(&stats); err != nil {
			return fmt.Errorf("decode dashboard statistics: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var envelope model.Envelope
		if err := s.gateway.Get(gctx, "/api/statistics/activity", nil, &envelope); err != nil {
			actErr = err
			return nil
		}
		if err := envelope.DecodeData(&activity); err != nil {
			actErr = err
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	view := &model.DashboardView{
		Stats:    stats,
		Cards:    s.renderCards(ctx, stats),
		Activity: activity,
	}
	if actErr != nil {
		s.logger.WarnContext(ctx, "recent-activity fetch failed", "error", actErr)
		view.Activity = nil
		view.ActivityError = "recent activity is unavailable"
	}
	return view, nil
}

// Performance fetches the performance statistics payload.
func (s *StatisticsService) Performance(ctx context.Context) (model.StatsPayload, error) {
	var envelope model.Envelope
	if err := s.gateway.Get(ctx, "/api/statistics/performance", nil, &envelope); err != nil {
		return nil, fmt.Errorf("fetch performance statistics: %w", err)
	}
	var payload model.StatsPayload
	if err := envelope.DecodeData(&payload); err != nil {
		return nil, fmt.Errorf("decode performance statistics: %w", err)
	}
	return payload, nil
}

// renderCards evaluates each configured widget against the statistics
// payload. Widgets whose expression selects nothing are skipped: payload
// shapes differ by role and not every widget applies to every user.
func (s *StatisticsService) renderCards(ctx context.Context, stats model.StatsPayload) []model.StatCard {
	if len(stats) == 0 || len(s.widgets) == 0 {
		return nil
	}

	cards := make([]model.StatCard, 0, len(s.widgets))
	for _, w := range s.widgets {
		expr := w.Expr
		if strings.TrimSpace(expr) == "" {
			expr = w.Key
		}
		value, err := s.jems.Evaluate(expr, map[string]any(stats))
		if err != nil {
			s.logger.WarnContext(ctx, "widget evaluation failed",
				"widget", w.Key,
				"error", err,
			)
			continue
		}
		if value == nil {
			continue
		}
		label := w.Label
		if label == "" {
			label = w.Key
		}
		cards = append(cards, model.StatCard{Key: w.Key, Label: label, Value: value})
	}
	if len(cards) == 0 {
		return nil
	}
	return cards
}
