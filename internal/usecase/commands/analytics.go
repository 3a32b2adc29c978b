package commands

import (
	"context"
	"log/slog"
	"strings"

	"oficina-criativa/internal/pkg/errs"
)

var ErrInvalidEvent = errs.New("event_type required")

type TrackEventParams struct {
	EventType string
	Page      string
	SessionID string
	Metadata  map[string]any
}

type AnalyticsRepository interface {
	InsertEvent(ctx context.Context, params TrackEventParams) error
}

type AnalyticsCommands interface {
	Track(ctx context.Context, params TrackEventParams) error
}

type analyticsCommandsImpl struct {
	analyticsRepo AnalyticsRepository
}

func NewAnalyticsCommands(analyticsRepo AnalyticsRepository) AnalyticsCommands {
	return &analyticsCommandsImpl{
		analyticsRepo: analyticsRepo,
	}
}

// Track records a client event. Storage failures are logged and
// swallowed so a flaky database never breaks page loads.
func (a *analyticsCommandsImpl) Track(ctx context.Context, params TrackEventParams) error {
	if strings.TrimSpace(params.EventType) == "" {
		return ErrInvalidEvent
	}

	if err := a.analyticsRepo.InsertEvent(ctx, params); err != nil {
		slog.Warn("failed to record analytics event", "event_type", params.EventType, "error", err.Error())
	}

	return nil
}
