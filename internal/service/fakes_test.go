package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"thermostat_dashboard/internal/client"
	"thermostat_dashboard/internal/models"
)

// fakeClock only moves on Advance; due timers run synchronously, in order.
type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*fakeTimer
}

type fakeTimer struct {
	c       *fakeClock
	at      time.Time
	f       func()
	stopped bool
	fired   bool
}

func newFakeClock(now time.Time) *fakeClock { return &fakeClock{now: now} }

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{c: c, at: c.now.Add(d), f: f}
	c.timers = append(c.timers, t)
	return t
}

func (t *fakeTimer) Stop() bool {
	t.c.mu.Lock()
	defer t.c.mu.Unlock()
	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	return true
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	var due []*fakeTimer
	for _, t := range c.timers {
		if !t.fired && !t.stopped && !t.at.After(c.now) {
			t.fired = true
			due = append(due, t)
		}
	}
	c.mu.Unlock()

	sort.SliceStable(due, func(i, j int) bool { return due[i].at.Before(due[j].at) })
	for _, t := range due {
		t.f()
	}
}

// armed counts timers that have neither fired nor been stopped.
func (c *fakeClock) armed() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.timers {
		if !t.fired && !t.stopped {
			n++
		}
	}
	return n
}

// fakeBackend implements Backend in memory.
type fakeBackend struct {
	mu sync.Mutex

	hvac      models.HVACState
	hvacErr   error
	sensors   []models.SensorReading
	weather   []models.WeatherReading
	energy    models.EnergyConsumption
	schedules []models.ScheduleRow
	schedErr  error
	profiles  []models.Profile
	noSession bool

	// setHook runs inside SetTargetTemperature before it answers.
	setHook func(target float64) error
	// setCtxHook is like setHook but sees the call's context.
	setCtxHook func(ctx context.Context, target float64) error
	setCalls   []float64
	calls      map[string]int
	ops        []string
	nextID     int
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		hvac:   models.HVACState{Mode: "heat", TargetTemp: 70, CurrentTemp: 69},
		calls:  map[string]int{},
		nextID: 100,
	}
}

func (b *fakeBackend) count(name string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls[name]++
	if b.noSession {
		return client.ErrNoSession
	}
	return nil
}

func (b *fakeBackend) callCount(name string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls[name]
}

func (b *fakeBackend) targets() []float64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]float64(nil), b.setCalls...)
}

func (b *fakeBackend) SetTargetTemperature(ctx context.Context, target float64) (models.HVACState, error) {
	if err := b.count("set"); err != nil {
		return models.HVACState{}, err
	}
	if err := ctx.Err(); err != nil {
		return models.HVACState{}, err
	}
	b.mu.Lock()
	b.setCalls = append(b.setCalls, target)
	hook, ctxHook := b.setHook, b.setCtxHook
	cur := b.hvac.CurrentTemp
	b.mu.Unlock()
	if hook != nil {
		if err := hook(target); err != nil {
			return models.HVACState{}, err
		}
	}
	if ctxHook != nil {
		if err := ctxHook(ctx, target); err != nil {
			return models.HVACState{}, err
		}
	}
	return models.HVACState{Mode: "cool", TargetTemp: target, CurrentTemp: cur}, nil
}

func (b *fakeBackend) GetHVACState(context.Context) (models.HVACState, error) {
	if err := b.count("hvac"); err != nil {
		return models.HVACState{}, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.hvac, b.hvacErr
}

func (b *fakeBackend) RecentSensors(_ context.Context, limit int) ([]models.SensorReading, error) {
	if err := b.count("sensors"); err != nil {
		return nil, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if limit > 0 && len(b.sensors) > limit {
		return b.sensors[:limit], nil
	}
	return b.sensors, nil
}

func (b *fakeBackend) RecentWeather(context.Context) ([]models.WeatherReading, error) {
	if err := b.count("weather"); err != nil {
		return nil, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.weather, nil
}

func (b *fakeBackend) EnergyConsumption(context.Context) (models.EnergyConsumption, error) {
	if err := b.count("energy"); err != nil {
		return models.EnergyConsumption{}, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.energy, nil
}

func (b *fakeBackend) ListSchedules(context.Context) ([]models.ScheduleRow, error) {
	if err := b.count("schedules"); err != nil {
		return nil, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.schedules, b.schedErr
}

func (b *fakeBackend) ListProfiles(context.Context) ([]models.Profile, error) {
	if err := b.count("profiles"); err != nil {
		return nil, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.profiles, nil
}

func (b *fakeBackend) record(op string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.ops = append(b.ops, op)
	b.nextID++
	return b.nextID
}

func (b *fakeBackend) CreateSchedule(_ context.Context, in client.ScheduleInput) (int, error) {
	if err := b.count("create_schedule"); err != nil {
		return 0, err
	}
	return b.record("create_schedule:" + in.Name), nil
}

func (b *fakeBackend) DeleteSchedule(_ context.Context, id int) error {
	if err := b.count("delete_schedule"); err != nil {
		return err
	}
	b.record("delete_schedule")
	return nil
}

func (b *fakeBackend) CreateProfile(_ context.Context, in client.ProfileInput) (int, error) {
	if err := b.count("create_profile"); err != nil {
		return 0, err
	}
	return b.record("create_profile:" + in.Name), nil
}

func (b *fakeBackend) DeleteProfile(_ context.Context, id int) error {
	if err := b.count("delete_profile"); err != nil {
		return err
	}
	b.record("delete_profile")
	return nil
}

func (b *fakeBackend) ListGuests(context.Context) ([]models.Guest, error) {
	return nil, b.count("guests")
}

func (b *fakeBackend) CreateGuest(_ context.Context, in client.GuestInput) (int, error) {
	if err := b.count("create_guest"); err != nil {
		return 0, err
	}
	return b.record("create_guest:" + in.Username), nil
}

func (b *fakeBackend) DeleteGuest(context.Context, int) error { return b.count("delete_guest") }

func (b *fakeBackend) ListTechnicians(context.Context) ([]models.Technician, error) {
	return []models.Technician{{ID: 1, Username: "tech", Role: "technician"}}, b.count("technicians")
}

func (b *fakeBackend) ListTechnicianAccess(context.Context) ([]models.TechnicianAccess, error) {
	return nil, b.count("access")
}

func (b *fakeBackend) GrantTechnicianAccess(_ context.Context, in client.AccessGrant) (int, error) {
	if err := b.count("grant"); err != nil {
		return 0, err
	}
	return b.record("grant:" + in.TechnicianUsername), nil
}

func (b *fakeBackend) RevokeTechnicianAccess(context.Context, int) error { return b.count("revoke") }

func (b *fakeBackend) ListDiagnostics(context.Context) ([]models.DiagnosticLog, error) {
	return nil, b.count("diagnostics")
}

func (b *fakeBackend) CreateDiagnostic(_ context.Context, in client.DiagnosticInput) (int, error) {
	if err := b.count("create_diagnostic"); err != nil {
		return 0, err
	}
	return b.record("diag:" + in.Level), nil
}

// login surface
func (b *fakeBackend) LoginHomeowner(_ context.Context, username, password string) (models.Session, error) {
	return b.login(models.RoleHomeowner, username, password)
}

func (b *fakeBackend) LoginGuest(_ context.Context, username, pin, _ string) (models.Session, error) {
	return b.login(models.RoleGuest, username, pin)
}

func (b *fakeBackend) LoginTechnician(_ context.Context, username, password, _ string) (models.Session, error) {
	return b.login(models.RoleTechnician, username, password)
}

func (b *fakeBackend) SignUpHomeowner(_ context.Context, username, _ string) error {
	b.record("signup:" + username)
	return nil
}

func (b *fakeBackend) login(role models.Role, username, secret string) (models.Session, error) {
	b.count("login")
	if secret == "wrong" {
		return models.Session{}, &client.APIError{Status: 401, Message: "invalid credentials"}
	}
	return models.Session{
		Token:       "backend-" + username,
		UserID:      7,
		Username:    username,
		Role:        role,
		HomeownerID: 7,
		ExpiresAt:   time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
	}, nil
}

var _ Backend = (*fakeBackend)(nil)

// memCheckpoint is an in-memory CheckpointStore.
type memCheckpoint struct {
	mu      sync.Mutex
	t       time.Time
	ok      bool
	saveErr error
	saves   int
}

func (m *memCheckpoint) Load(context.Context) (time.Time, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.t, m.ok, nil
}

// Save fails on a done ctx, like a database write would.
func (m *memCheckpoint) Save(ctx context.Context, t time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves++
	if err := ctx.Err(); err != nil {
		return err
	}
	if m.saveErr != nil {
		return m.saveErr
	}
	m.t, m.ok = t, true
	return nil
}

func (m *memCheckpoint) get() (time.Time, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.t, m.ok
}

// recordingEvents keeps every appended activity event.
type recordingEvents struct {
	mu     sync.Mutex
	events []models.ActivityEvent
}

func (r *recordingEvents) Append(_ context.Context, e models.ActivityEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return nil
}

func (r *recordingEvents) List(context.Context, time.Time, time.Time, string) ([]models.ActivityEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.ActivityEvent(nil), r.events...), nil
}

func (r *recordingEvents) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Type)
	}
	return out
}

// memSnapshots is an in-memory DisplayStateRepo.
type memSnapshots struct {
	mu    sync.Mutex
	state map[models.Role]models.DisplayedSystemState
}

func newMemSnapshots() *memSnapshots {
	return &memSnapshots{state: map[models.Role]models.DisplayedSystemState{}}
}

func (m *memSnapshots) Save(_ context.Context, role models.Role, s models.DisplayedSystemState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state[role] = s
	return nil
}

func (m *memSnapshots) Load(_ context.Context, role models.Role) (models.DisplayedSystemState, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.state[role]
	return s, ok, nil
}

// memSessions is an in-memory SessionStore.
type memSessions struct {
	mu   sync.Mutex
	sess *models.Session
}

func (m *memSessions) Save(_ context.Context, s models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sess = &s
	return nil
}

func (m *memSessions) Load(context.Context) (models.Session, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sess == nil {
		return models.Session{}, false, nil
	}
	return *m.sess, true, nil
}

func (m *memSessions) Token(context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sess == nil {
		return "", nil
	}
	return m.sess.Token, nil
}

func (m *memSessions) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sess = nil
	return nil
}

var errBoom = errors.New("boom")

func floatPtr(v float64) *float64 { return &v }
