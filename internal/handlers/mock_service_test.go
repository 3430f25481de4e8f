package handlers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"thermostat_dashboard/internal/models"
	"thermostat_dashboard/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	loginRes  service.LoginResult
	loginErr  error
	signUpErr error
	logoutErr error
	claims    *service.Claims
	authErr   error

	lastLoginRole models.Role
	lastLoginIn   service.Credentials
	lastSignUp    service.Credentials
	lastToken     string
	logouts       int
}

func (m *mockAuth) Login(_ context.Context, role models.Role, in service.Credentials) (service.LoginResult, error) {
	m.lastLoginRole = role
	m.lastLoginIn = in
	return m.loginRes, m.loginErr
}
func (m *mockAuth) SignUp(_ context.Context, in service.Credentials) error {
	m.lastSignUp = in
	return m.signUpErr
}
func (m *mockAuth) Logout(context.Context) error {
	m.logouts++
	return m.logoutErr
}
func (m *mockAuth) Resume(context.Context) (bool, error) { return false, nil }
func (m *mockAuth) Authenticate(_ context.Context, token string) (*service.Claims, error) {
	m.lastToken = token
	if m.authErr != nil {
		return nil, m.authErr
	}
	return m.claims, nil
}

// authAs returns a mockAuth that accepts any token as role.
func authAs(role models.Role) *mockAuth {
	return &mockAuth{claims: &service.Claims{Username: "user", Role: role}}
}

type mockDashboard struct {
	mu         sync.Mutex
	role       models.Role
	state      models.DisplayedSystemState
	applyErr   error
	refreshErr error
	updates    chan models.DisplayedSystemState

	lastDelta   int
	lastProfile int
	refreshes   int
}

func newMockDashboard(st models.DisplayedSystemState) *mockDashboard {
	return &mockDashboard{role: models.RoleHomeowner, state: st, updates: make(chan models.DisplayedSystemState, 4)}
}

func (m *mockDashboard) Role() models.Role { return m.role }
func (m *mockDashboard) State() models.DisplayedSystemState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}
func (m *mockDashboard) Adjust(delta int) models.DisplayedSystemState {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastDelta = delta
	m.state.TargetTemp += delta
	return m.state
}
func (m *mockDashboard) ApplyProfile(_ context.Context, id int) (models.DisplayedSystemState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastProfile = id
	return m.state, m.applyErr
}
func (m *mockDashboard) Refresh(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refreshes++
	return m.refreshErr
}
func (m *mockDashboard) Subscribe() (<-chan models.DisplayedSystemState, func()) {
	return m.updates, func() {}
}

type mockDashboards struct {
	current service.DashboardView
	err     error
}

func (m *mockDashboards) Current() (service.DashboardView, error) {
	if m.current == nil && m.err == nil {
		return nil, service.ErrNoDashboard
	}
	return m.current, m.err
}
func (m *mockDashboards) Stop() {}

type mockSchedules struct {
	rows      []models.ScheduleRow
	err       error
	createID  int
	lastInput service.ScheduleInput
	lastID    int
}

func (m *mockSchedules) List(context.Context) ([]models.ScheduleRow, error) { return m.rows, m.err }
func (m *mockSchedules) Create(_ context.Context, in service.ScheduleInput) (int, error) {
	m.lastInput = in
	return m.createID, m.err
}
func (m *mockSchedules) Update(_ context.Context, id int, in service.ScheduleInput) (int, error) {
	m.lastID, m.lastInput = id, in
	return m.createID, m.err
}
func (m *mockSchedules) Delete(_ context.Context, id int) error {
	m.lastID = id
	return m.err
}

type mockProfiles struct {
	profiles []models.Profile
	err      error
	createID int
	lastID   int
}

func (m *mockProfiles) List(context.Context) ([]models.Profile, error) { return m.profiles, m.err }
func (m *mockProfiles) Create(context.Context, service.ProfileInput) (int, error) {
	return m.createID, m.err
}
func (m *mockProfiles) Update(_ context.Context, id int, _ service.ProfileInput) (int, error) {
	m.lastID = id
	return m.createID, m.err
}
func (m *mockProfiles) Delete(_ context.Context, id int) error {
	m.lastID = id
	return m.err
}

type mockAccess struct {
	guests    []models.Guest
	err       error
	createID  int
	lastGrant service.AccessGrantInput
}

func (m *mockAccess) ListGuests(context.Context) ([]models.Guest, error) { return m.guests, m.err }
func (m *mockAccess) CreateGuest(context.Context, service.GuestInput) (int, error) {
	return m.createID, m.err
}
func (m *mockAccess) DeleteGuest(context.Context, int) error { return m.err }
func (m *mockAccess) ListTechnicians(context.Context) ([]models.Technician, error) {
	return []models.Technician{}, m.err
}
func (m *mockAccess) ListAccess(context.Context) ([]models.TechnicianAccess, error) {
	return []models.TechnicianAccess{}, m.err
}
func (m *mockAccess) GrantAccess(_ context.Context, in service.AccessGrantInput) (int, error) {
	m.lastGrant = in
	return m.createID, m.err
}
func (m *mockAccess) RevokeAccess(context.Context, int) error { return m.err }

type mockDiagnostics struct {
	err      error
	createID int
	last     service.DiagnosticInput
}

func (m *mockDiagnostics) List(context.Context) ([]models.DiagnosticLog, error) {
	return []models.DiagnosticLog{}, m.err
}
func (m *mockDiagnostics) Create(_ context.Context, in service.DiagnosticInput) (int, error) {
	m.last = in
	return m.createID, m.err
}

type mockEventLog struct {
	resp     []models.ActivityEvent
	err      error
	lastFrom time.Time
	lastTo   time.Time
	lastType string
}

func (m *mockEventLog) List(_ context.Context, f service.LogFilter) ([]models.ActivityEvent, error) {
	m.lastFrom = f.From
	m.lastTo = f.To
	m.lastType = f.Type
	return m.resp, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
