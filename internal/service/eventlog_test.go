package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"thermostat_dashboard/internal/models"
)

// listRecorder captures the arguments of EventRepo.List.
type listRecorder struct {
	from, to time.Time
	typ      string
	calls    int

	events []models.ActivityEvent
	err    error
}

func (r *listRecorder) Append(context.Context, models.ActivityEvent) error { return nil }

func (r *listRecorder) List(_ context.Context, from, to time.Time, typ string) ([]models.ActivityEvent, error) {
	r.calls++
	r.from, r.to, r.typ = from, to, typ
	return r.events, r.err
}

func TestEventLogService_List_NormalizesFilter(t *testing.T) {
	t.Parallel()

	plus5 := time.FixedZone("UTC+5", 5*3600)
	minus2 := time.FixedZone("UTC-2", -2*3600)

	tests := []struct {
		name     string
		in       LogFilter
		wantFrom time.Time
		wantTo   time.Time
		wantType string
	}{
		{
			name: "empty filter passes zero bounds",
			in:   LogFilter{},
		},
		{
			name:     "offsets converted to UTC",
			in:       LogFilter{From: time.Date(2025, 10, 1, 10, 0, 0, 0, plus5), To: time.Date(2025, 10, 1, 12, 30, 0, 0, minus2)},
			wantFrom: time.Date(2025, 10, 1, 5, 0, 0, 0, time.UTC),
			wantTo:   time.Date(2025, 10, 1, 14, 30, 0, 0, time.UTC),
		},
		{
			name:     "type trimmed and uppercased",
			in:       LogFilter{Type: "  target_failed "},
			wantType: models.ActivityTargetFailed,
		},
		{
			name:     "equal bounds are a valid range",
			in:       LogFilter{From: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), To: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
			wantFrom: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			wantTo:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			repo := &listRecorder{}
			out, err := NewEventLogService(repo).List(context.Background(), tc.in)
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if out == nil {
				t.Fatalf("List returned nil; want an empty slice")
			}
			if !repo.from.Equal(tc.wantFrom) || !repo.to.Equal(tc.wantTo) || repo.typ != tc.wantType {
				t.Fatalf("repo got from=%v to=%v type=%q", repo.from, repo.to, repo.typ)
			}
			if !repo.from.IsZero() && repo.from.Location() != time.UTC {
				t.Fatalf("from not in UTC: %v", repo.from.Location())
			}
		})
	}
}

func TestEventLogService_List_Errors(t *testing.T) {
	t.Parallel()

	repo := &listRecorder{}
	_, err := NewEventLogService(repo).List(context.Background(), LogFilter{
		From: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 1, 1, 23, 0, 0, 0, time.UTC),
	})
	if !errors.Is(err, ErrInvalidTimeRange) {
		t.Fatalf("inverted range: err = %v", err)
	}
	if repo.calls != 0 {
		t.Fatalf("repo called on an invalid range")
	}

	repo.err = errors.New("db down")
	if _, err := NewEventLogService(repo).List(context.Background(), LogFilter{}); !errors.Is(err, repo.err) {
		t.Fatalf("repo error not propagated: %v", err)
	}
}

func TestEventLogService_ListsWhatDashboardsRecord(t *testing.T) {
	t.Parallel()

	events := &recordingEvents{}
	backend := newFakeBackend()
	backend.schedules = []models.ScheduleRow{{ID: 1, Name: "Wake", StartTime: "07:00", TargetTemp: 71}}
	now := time.Date(2025, 1, 1, 7, 0, 30, 0, time.UTC)
	d := NewDashboard(context.Background(), models.RoleHomeowner, DashboardDeps{
		Backend:    backend,
		Checkpoint: &memCheckpoint{t: now.Add(-time.Minute), ok: true},
		Events:     events,
		Clock:      newFakeClock(now),
	})
	defer d.Close()

	if err := d.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	out, err := NewEventLogService(events).List(context.Background(), LogFilter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(out) != 1 || out[0].Type != models.ActivityScheduleApplied {
		t.Fatalf("events = %+v", out)
	}
	if out[0].Metadata.(map[string]any)["schedule_id"] != 1 {
		t.Fatalf("metadata = %+v", out[0].Metadata)
	}
}
