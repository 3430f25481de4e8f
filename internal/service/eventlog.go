package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"thermostat_dashboard/internal/models"
	"thermostat_dashboard/internal/repository"
)

var ErrInvalidTimeRange = errors.New("invalid time range: from must be <= to")

// LogFilter narrows the activity log by time range and type.
type LogFilter struct {
	From time.Time // inclusive; zero means no lower bound
	To   time.Time // inclusive; zero means no upper bound
	Type string    // "", "SCHEDULE_APPLIED", "TARGET_SET", "REFRESH_FAILED", ...
}

// normalized returns f with UTC bounds and an upper-case type.
func (f LogFilter) normalized() (LogFilter, error) {
	if !f.From.IsZero() {
		f.From = f.From.UTC()
	}
	if !f.To.IsZero() {
		f.To = f.To.UTC()
	}
	if !f.From.IsZero() && !f.To.IsZero() && f.From.After(f.To) {
		return LogFilter{}, ErrInvalidTimeRange
	}
	f.Type = strings.ToUpper(strings.TrimSpace(f.Type))
	return f, nil
}

// EventLogService reads the local activity log.
type EventLogService struct {
	events repository.EventRepo
}

func NewEventLogService(events repository.EventRepo) *EventLogService {
	return &EventLogService{events: events}
}

func (s *EventLogService) List(ctx context.Context, f LogFilter) ([]models.ActivityEvent, error) {
	f, err := f.normalized()
	if err != nil {
		return nil, err
	}
	events, err := s.events.List(ctx, f.From, f.To, f.Type)
	if err != nil {
		return nil, err
	}
	if events == nil {
		events = []models.ActivityEvent{}
	}
	return events, nil
}
