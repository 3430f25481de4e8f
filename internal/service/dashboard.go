package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"thermostat_dashboard/internal/client"
	"thermostat_dashboard/internal/logger"
	"thermostat_dashboard/internal/models"
	"thermostat_dashboard/internal/repository"
)

var (
	ErrNoDashboard     = errors.New("no dashboard is running")
	ErrProfileNotFound = errors.New("profile not found")
)

// DashboardBackend is what one dashboard reads from and writes to the backend.
type DashboardBackend interface {
	TargetSetter
	GetHVACState(ctx context.Context) (models.HVACState, error)
	RecentSensors(ctx context.Context, limit int) ([]models.SensorReading, error)
	RecentWeather(ctx context.Context) ([]models.WeatherReading, error)
	EnergyConsumption(ctx context.Context) (models.EnergyConsumption, error)
	ListSchedules(ctx context.Context) ([]models.ScheduleRow, error)
	ListProfiles(ctx context.Context) ([]models.Profile, error)
}

type DashboardConfig struct {
	RefreshInterval time.Duration
	Debounce        time.Duration
	MinTarget       int
	MaxTarget       int
}

func DefaultDashboardConfig() DashboardConfig {
	return DashboardConfig{
		RefreshInterval: 30 * time.Second,
		Debounce:        3 * time.Second,
		MinTarget:       60,
		MaxTarget:       85,
	}
}

// DashboardDeps are shared by every dashboard the manager starts.
type DashboardDeps struct {
	Backend    DashboardBackend
	Checkpoint repository.CheckpointStore
	Snapshots  repository.DisplayStateRepo
	Events     repository.EventRepo
	Clock      Clock
	Log        *logger.Logger
	Config     DashboardConfig
}

// DashboardView is what the HTTP layer needs from a running dashboard.
type DashboardView interface {
	Role() models.Role
	State() models.DisplayedSystemState
	Adjust(delta int) models.DisplayedSystemState
	ApplyProfile(ctx context.Context, id int) (models.DisplayedSystemState, error)
	Refresh(ctx context.Context) error
	Subscribe() (<-chan models.DisplayedSystemState, func())
}

var _ DashboardView = (*Dashboard)(nil)

// Dashboard keeps the displayed state of one signed-in role fresh.
type Dashboard struct {
	role      models.Role
	deps      DashboardDeps
	evaluator *ScheduleEvaluator
	debouncer *TargetDebouncer

	mu    sync.RWMutex
	state models.DisplayedSystemState
	subs  map[chan models.DisplayedSystemState]struct{}

	cancel    context.CancelFunc
	done      chan struct{}
	closeOnce sync.Once
}

func NewDashboard(ctx context.Context, role models.Role, deps DashboardDeps) *Dashboard {
	if deps.Clock == nil {
		deps.Clock = RealClock()
	}
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	if deps.Config == (DashboardConfig{}) {
		deps.Config = DefaultDashboardConfig()
	}

	d := &Dashboard{
		role:  role,
		deps:  deps,
		state: models.DefaultDisplayedState(deps.Clock.Now()),
		subs:  make(map[chan models.DisplayedSystemState]struct{}),
	}
	d.evaluator = NewScheduleEvaluator(deps.Backend, deps.Checkpoint, deps.Events, deps.Clock, deps.Log)
	d.debouncer = NewTargetDebouncer(ctx, deps.Backend, deps.Clock, deps.Config.Debounce, d.onTargetResult)
	return d
}

func (d *Dashboard) Role() models.Role { return d.role }

// Start restores the last snapshot, primes the schedule checkpoint and runs
// the refresh loop until Close or ctx cancellation.
func (d *Dashboard) Start(ctx context.Context) {
	if d.deps.Snapshots != nil {
		snap, ok, err := d.deps.Snapshots.Load(ctx, d.role)
		if err != nil {
			d.deps.Log.Warnw("display_snapshot_load_failed", "role", d.role, "err", err)
		} else if ok {
			d.mu.Lock()
			d.state = snap
			d.mu.Unlock()
		}
	}
	if d.usesSchedules() {
		d.evaluator.Prime(ctx)
	}

	runCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel
	d.done = make(chan struct{})
	go func() {
		defer close(d.done)
		d.Run(runCtx, d.deps.Config.RefreshInterval)
	}()
}

// Run refreshes once immediately, then every interval until ctx is canceled.
// A failed cycle does not stop later ones. Ticks arriving while a cycle is
// still running are coalesced.
func (d *Dashboard) Run(ctx context.Context, interval time.Duration) {
	tick := make(chan struct{}, 1)
	arm := func() Timer {
		return d.deps.Clock.AfterFunc(interval, func() {
			select {
			case tick <- struct{}{}:
			default:
			}
		})
	}

	_ = d.Refresh(ctx)

	t := arm()
	for {
		select {
		case <-ctx.Done():
			t.Stop()
			return
		case <-tick:
			t = arm()
			_ = d.Refresh(ctx)
		}
	}
}

func (d *Dashboard) usesSchedules() bool {
	return d.role != models.RoleGuest
}

type refreshBatch struct {
	hvac     models.HVACState
	sensors  []models.SensorReading
	weather  []models.WeatherReading
	energy   models.EnergyConsumption
	schedule []models.ScheduleRow
}

// Refresh fetches everything the role's dashboard shows, applies due
// schedules and replaces the displayed state. Any fetch failure leaves the
// displayed state untouched.
func (d *Dashboard) Refresh(ctx context.Context) error {
	var b refreshBatch
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		b.hvac, err = d.deps.Backend.GetHVACState(gctx)
		return err
	})
	g.Go(func() (err error) {
		b.sensors, err = d.deps.Backend.RecentSensors(gctx, 1)
		return err
	})
	g.Go(func() (err error) {
		b.weather, err = d.deps.Backend.RecentWeather(gctx)
		return err
	})
	if d.usesSchedules() {
		g.Go(func() (err error) {
			b.energy, err = d.deps.Backend.EnergyConsumption(gctx)
			return err
		})
		g.Go(func() (err error) {
			b.schedule, err = d.deps.Backend.ListSchedules(gctx)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		if errors.Is(err, client.ErrNoSession) || ctx.Err() != nil {
			return err
		}
		d.deps.Log.Errorw("refresh_failed", "role", d.role, "err", err)
		d.appendEvent(ctx, models.ActivityRefreshFailed, "Dashboard refresh failed", map[string]any{"error": err.Error()})
		return fmt.Errorf("refresh %s dashboard: %w", d.role, err)
	}

	// fetched data is applied even if the caller goes away now
	ctx = context.WithoutCancel(ctx)

	hvac := b.hvac
	if d.usesSchedules() {
		res := d.evaluator.ApplyDue(ctx, b.schedule)
		if res.LatestState != nil {
			hvac = *res.LatestState
		}
	}

	next := BuildDisplayedState(hvac, b.sensors, b.weather, b.energy, d.deps.Clock.Now())
	next.PendingTarget = d.debouncer.Pending()

	d.mu.Lock()
	d.state = next
	d.mu.Unlock()

	d.publish(next)
	d.persist(ctx, next)
	return nil
}

// BuildDisplayedState maps backend readings onto the displayed view, using
// the newest sensor and weather sample and falling back to defaults.
func BuildDisplayedState(hvac models.HVACState, sensors []models.SensorReading, weather []models.WeatherReading, energy models.EnergyConsumption, now time.Time) models.DisplayedSystemState {
	s := models.DefaultDisplayedState(now)
	s.HVACMode = models.DisplayMode(hvac.Mode)
	s.TargetTemp = roundInt(hvac.TargetTemp)
	s.EnergyConsumption = energy.KilowattsUsed

	s.CurrentTemp = roundInt(hvac.CurrentTemp)
	if hvac.CurrentTemp == 0 {
		s.CurrentTemp = models.DefaultCurrentTemp
		if len(sensors) > 0 && sensors[0].IndoorTemp != nil {
			s.CurrentTemp = roundInt(*sensors[0].IndoorTemp)
		}
	}
	if hvac.TargetTemp == 0 {
		s.TargetTemp = models.DefaultTargetTemp
	}

	if len(sensors) > 0 {
		in := sensors[0]
		if in.Humidity != nil {
			s.IndoorHumidity = roundInt(*in.Humidity)
		}
		if in.COPPM != nil {
			s.CarbonMonoxide = roundInt(*in.COPPM)
		}
	}
	if len(weather) > 0 {
		w := weather[0]
		if w.Temp != nil {
			s.OutdoorTemp = roundInt(*w.Temp)
		}
		if w.Humidity != nil {
			s.OutdoorHumidity = roundInt(*w.Humidity)
		}
		if w.PrecipitationMM != nil {
			s.Precipitation = math.Round(*w.PrecipitationMM*10) / 10
		}
	}
	return s
}

func roundInt(v float64) int {
	return int(math.Floor(v + 0.5))
}

// State returns a copy of the displayed state.
func (d *Dashboard) State() models.DisplayedSystemState {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return copyState(d.state)
}

func copyState(s models.DisplayedSystemState) models.DisplayedSystemState {
	if s.PendingTarget != nil {
		v := *s.PendingTarget
		s.PendingTarget = &v
	}
	return s
}

// Adjust moves the target by delta, clamped, and schedules the backend update.
func (d *Dashboard) Adjust(delta int) models.DisplayedSystemState {
	d.mu.Lock()
	target := ClampTarget(d.state.TargetTemp+delta, d.deps.Config.MinTarget, d.deps.Config.MaxTarget)
	return d.requestTargetLocked(target, d.state.CurrentProfileID)
}

// ApplyProfile selects a profile: its target (clamped) becomes the pending
// target and the profile is marked current.
func (d *Dashboard) ApplyProfile(ctx context.Context, id int) (models.DisplayedSystemState, error) {
	profiles, err := d.deps.Backend.ListProfiles(ctx)
	if err != nil {
		return models.DisplayedSystemState{}, err
	}
	for _, p := range profiles {
		if p.ID != id {
			continue
		}
		target := ClampTarget(roundInt(p.TargetTemp), d.deps.Config.MinTarget, d.deps.Config.MaxTarget)
		d.mu.Lock()
		return d.requestTargetLocked(target, strconv.Itoa(p.ID)), nil
	}
	return models.DisplayedSystemState{}, ErrProfileNotFound
}

// requestTargetLocked expects d.mu held and releases it.
func (d *Dashboard) requestTargetLocked(target int, profileID string) models.DisplayedSystemState {
	d.state.TargetTemp = target
	d.state.CurrentProfileID = profileID
	v := target
	d.state.PendingTarget = &v
	snap := copyState(d.state)
	// armed under d.mu so the debouncer always carries the displayed target
	d.debouncer.Request(target)
	d.mu.Unlock()

	d.publish(snap)
	return snap
}

func (d *Dashboard) onTargetResult(target int, st models.HVACState, err error) {
	ctx := context.Background()
	if err != nil {
		d.deps.Log.Errorw("target_update_failed", "target", target, "err", err)
		d.mu.Lock()
		d.state.PendingTarget = d.debouncer.Pending()
		snap := copyState(d.state)
		d.mu.Unlock()
		d.publish(snap)
		d.appendEvent(ctx, models.ActivityTargetFailed, fmt.Sprintf("Setting target to %d failed", target), map[string]any{"target": target, "error": err.Error()})
		return
	}

	d.mu.Lock()
	// zero means the field was absent from the response
	if st.TargetTemp != 0 {
		d.state.TargetTemp = roundInt(st.TargetTemp)
	}
	if st.CurrentTemp != 0 {
		d.state.CurrentTemp = roundInt(st.CurrentTemp)
	}
	if st.Mode != "" {
		d.state.HVACMode = models.DisplayMode(st.Mode)
	}
	d.state.LastUpdated = d.deps.Clock.Now().UTC()
	d.state.PendingTarget = d.debouncer.Pending()
	snap := copyState(d.state)
	d.mu.Unlock()

	d.publish(snap)
	d.persist(ctx, snap)
	d.appendEvent(ctx, models.ActivityTargetSet, fmt.Sprintf("Target set to %d", target), map[string]any{"target": target, "mode": st.Mode})
}

// Subscribe returns a channel receiving every displayed-state change. Slow
// readers only see the latest state. cancel must be called when done.
func (d *Dashboard) Subscribe() (<-chan models.DisplayedSystemState, func()) {
	ch := make(chan models.DisplayedSystemState, 1)
	d.mu.Lock()
	d.subs[ch] = struct{}{}
	d.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			d.mu.Lock()
			if _, ok := d.subs[ch]; ok {
				delete(d.subs, ch)
				close(ch)
			}
			d.mu.Unlock()
		})
	}
}

func (d *Dashboard) publish(s models.DisplayedSystemState) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for ch := range d.subs {
		select {
		case ch <- copyState(s):
		default:
			// drop the stale value and keep the newest
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- copyState(s):
			default:
			}
		}
	}
}

func (d *Dashboard) persist(ctx context.Context, s models.DisplayedSystemState) {
	if d.deps.Snapshots == nil {
		return
	}
	if err := d.deps.Snapshots.Save(ctx, d.role, s); err != nil {
		d.deps.Log.Warnw("display_snapshot_save_failed", "role", d.role, "err", err)
	}
}

func (d *Dashboard) appendEvent(ctx context.Context, typ, desc string, meta map[string]any) {
	if d.deps.Events == nil {
		return
	}
	if meta == nil {
		meta = map[string]any{}
	}
	meta["role"] = string(d.role)
	if err := d.deps.Events.Append(ctx, models.ActivityEvent{
		OccurredAt:  d.deps.Clock.Now().UTC(),
		Type:        typ,
		Description: desc,
		Metadata:    meta,
	}); err != nil {
		d.deps.Log.Warnw("activity_append_failed", "type", typ, "err", err)
	}
}

// Close stops the refresh loop and the debounce timer and closes subscribers.
func (d *Dashboard) Close() {
	d.closeOnce.Do(func() {
		d.debouncer.Stop()
		if d.cancel != nil {
			d.cancel()
			<-d.done
		}
		d.mu.Lock()
		for ch := range d.subs {
			delete(d.subs, ch)
			close(ch)
		}
		d.mu.Unlock()
	})
}
