package service

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"thermostat_dashboard/internal/logger"
	"thermostat_dashboard/internal/models"
	"thermostat_dashboard/internal/repository"
)

var bareTimeRe = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::(\d{2}))?$`)

// layouts interpreted in the reference location; RFC3339 carries its own offset.
var localDateTimeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// ScheduleCandidates expands a schedule start time into the instants at which
// it could have fired around ref. A bare daily time yields ref's date and the
// day before (in ref's location); a full date-time yields itself. Anything
// else yields nothing.
func ScheduleCandidates(startTime string, ref time.Time) []time.Time {
	s := strings.TrimSpace(startTime)
	if s == "" {
		return nil
	}

	if m := bareTimeRe.FindStringSubmatch(s); m != nil {
		h, _ := strconv.Atoi(m[1])
		mi, _ := strconv.Atoi(m[2])
		sec := 0
		if m[3] != "" {
			sec, _ = strconv.Atoi(m[3])
		}
		if h > 23 || mi > 59 || sec > 59 {
			return nil
		}
		y, mo, d := ref.Date()
		loc := ref.Location()
		return []time.Time{
			time.Date(y, mo, d, h, mi, sec, 0, loc),
			time.Date(y, mo, d-1, h, mi, sec, 0, loc),
		}
	}

	if t, ok := parseDateTime(s, ref.Location()); ok {
		return []time.Time{t}
	}
	return nil
}

func parseDateTime(s string, loc *time.Location) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, true
	}
	for _, layout := range localDateTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	// date-only strings are midnight UTC
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// TargetSetter is the "set target temperature" backend call.
type TargetSetter interface {
	SetTargetTemperature(ctx context.Context, target float64) (models.HVACState, error)
}

// FiredSchedule is one schedule application attempted in a pass.
type FiredSchedule struct {
	Row models.ScheduleRow
	At  time.Time
	Err error
}

type EvaluationResult struct {
	Applied     bool
	Fired       []FiredSchedule
	LatestState *models.HVACState
}

// ScheduleEvaluator fires every schedule whose trigger instant fell in
// (lastCheck, now] since the previous pass.
type ScheduleEvaluator struct {
	setter     TargetSetter
	checkpoint repository.CheckpointStore
	events     repository.EventRepo
	clock      Clock
	log        *logger.Logger
	// callTimeout bounds each backend call of a pass.
	callTimeout time.Duration

	mu        sync.Mutex
	loaded    bool
	lastCheck time.Time
}

func NewScheduleEvaluator(setter TargetSetter, checkpoint repository.CheckpointStore, events repository.EventRepo, clock Clock, log *logger.Logger) *ScheduleEvaluator {
	if clock == nil {
		clock = RealClock()
	}
	return &ScheduleEvaluator{
		setter:      setter,
		checkpoint:  checkpoint,
		events:      events,
		clock:       clock,
		log:         log,
		callTimeout: defaultBackendCallTimeout,
	}
}

// Prime loads the persisted checkpoint, or starts it at now so nothing fires
// retroactively. It runs once; later calls are no-ops.
func (e *ScheduleEvaluator) Prime(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.primeLocked(ctx)
}

func (e *ScheduleEvaluator) primeLocked(ctx context.Context) {
	if e.loaded {
		return
	}
	e.loaded = true
	e.lastCheck = e.clock.Now()

	if e.checkpoint == nil {
		return
	}
	t, ok, err := e.checkpoint.Load(ctx)
	if err != nil {
		if e.log != nil {
			e.log.Warnw("schedule_checkpoint_load_failed", "err", err)
		}
		return
	}
	if ok {
		e.lastCheck = t
	}
}

// LastCheck is the in-memory checkpoint.
func (e *ScheduleEvaluator) LastCheck() time.Time {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastCheck
}

type dueCandidate struct {
	at  time.Time
	row models.ScheduleRow
}

// ApplyDue runs one evaluation pass. Passes never overlap; the backend calls
// of a pass are made one at a time in trigger order. Failures are logged and
// skipped, and the checkpoint advances to now whatever happens.
//
// A pass that has started runs to completion: canceling ctx does not abort
// its backend calls or the checkpoint save.
func (e *ScheduleEvaluator) ApplyDue(ctx context.Context, rows []models.ScheduleRow) EvaluationResult {
	ctx = context.WithoutCancel(ctx)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.primeLocked(ctx)

	now := e.clock.Now()
	var res EvaluationResult

	if len(rows) > 0 {
		due := make([]dueCandidate, 0, len(rows))
		for _, row := range rows {
			for _, at := range ScheduleCandidates(row.StartTime, now) {
				if at.After(e.lastCheck) && !at.After(now) {
					due = append(due, dueCandidate{at: at, row: row})
				}
			}
		}
		sort.SliceStable(due, func(i, j int) bool { return due[i].at.Before(due[j].at) })

		for _, c := range due {
			callCtx, cancel := context.WithTimeout(ctx, e.callTimeout)
			st, err := e.setter.SetTargetTemperature(callCtx, c.row.TargetTemp)
			cancel()
			res.Fired = append(res.Fired, FiredSchedule{Row: c.row, At: c.at, Err: err})
			if err != nil {
				if e.log != nil {
					e.log.Errorw("schedule_apply_failed", "schedule", c.row.Name, "id", c.row.ID, "err", err)
				}
				e.record(ctx, models.ActivityScheduleFailed, c, err)
				continue
			}
			latest := st
			res.LatestState = &latest
			e.record(ctx, models.ActivityScheduleApplied, c, nil)
		}
		res.Applied = len(due) > 0
	}

	e.lastCheck = now
	if e.checkpoint != nil {
		saveCtx, cancel := context.WithTimeout(ctx, e.callTimeout)
		err := e.checkpoint.Save(saveCtx, now)
		cancel()
		if err != nil && e.log != nil {
			e.log.Errorw("schedule_checkpoint_save_failed", "err", err)
		}
	}
	return res
}

func (e *ScheduleEvaluator) record(ctx context.Context, typ string, c dueCandidate, callErr error) {
	if e.events == nil {
		return
	}
	meta := map[string]any{
		"schedule_id": c.row.ID,
		"target_temp": c.row.TargetTemp,
		"due_at":      c.at.UTC(),
	}
	desc := fmt.Sprintf("Schedule %q set target to %.0f", c.row.Name, c.row.TargetTemp)
	if callErr != nil {
		meta["error"] = callErr.Error()
		desc = fmt.Sprintf("Schedule %q failed", c.row.Name)
	}
	if err := e.events.Append(ctx, models.ActivityEvent{
		OccurredAt:  e.clock.Now().UTC(),
		Type:        typ,
		Description: desc,
		Metadata:    meta,
	}); err != nil && e.log != nil {
		e.log.Warnw("activity_append_failed", "type", typ, "err", err)
	}
}
