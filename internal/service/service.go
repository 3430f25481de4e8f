package service

import (
	"context"

	"thermostat_dashboard/internal/logger"
	"thermostat_dashboard/internal/models"
	"thermostat_dashboard/internal/repository"
)

// Authorization covers sign-in, sign-out and local token checks.
type Authorization interface {
	Login(ctx context.Context, role models.Role, in Credentials) (LoginResult, error)
	SignUp(ctx context.Context, in Credentials) error
	Logout(ctx context.Context) error
	Resume(ctx context.Context) (bool, error)
	Authenticate(ctx context.Context, token string) (*Claims, error)
}

// Dashboards exposes the running dashboard of the signed-in role.
type Dashboards interface {
	Current() (DashboardView, error)
	Stop()
}

type Schedules interface {
	List(ctx context.Context) ([]models.ScheduleRow, error)
	Create(ctx context.Context, in ScheduleInput) (int, error)
	Update(ctx context.Context, id int, in ScheduleInput) (int, error)
	Delete(ctx context.Context, id int) error
}

type Profiles interface {
	List(ctx context.Context) ([]models.Profile, error)
	Create(ctx context.Context, in ProfileInput) (int, error)
	Update(ctx context.Context, id int, in ProfileInput) (int, error)
	Delete(ctx context.Context, id int) error
}

type Access interface {
	ListGuests(ctx context.Context) ([]models.Guest, error)
	CreateGuest(ctx context.Context, in GuestInput) (int, error)
	DeleteGuest(ctx context.Context, id int) error
	ListTechnicians(ctx context.Context) ([]models.Technician, error)
	ListAccess(ctx context.Context) ([]models.TechnicianAccess, error)
	GrantAccess(ctx context.Context, in AccessGrantInput) (int, error)
	RevokeAccess(ctx context.Context, id int) error
}

type Diagnostics interface {
	List(ctx context.Context) ([]models.DiagnosticLog, error)
	Create(ctx context.Context, in DiagnosticInput) (int, error)
}

// EventLog exposes the local activity log with filtering access.
type EventLog interface {
	List(ctx context.Context, f LogFilter) ([]models.ActivityEvent, error)
}

// Backend is the full backend surface the services need; *client.Client implements it.
type Backend interface {
	AuthBackend
	DashboardBackend
	ScheduleBackend
	ProfileBackend
	AccessBackend
	DiagnosticsBackend
}

// Service aggregates all sub-services.
type Service struct {
	Auth        Authorization
	Dashboards  Dashboards
	Schedules   Schedules
	Profiles    Profiles
	Access      Access
	Diagnostics Diagnostics
	EventLog    EventLog
}

type Config struct {
	Dashboard DashboardConfig
	Auth      AuthConfig
}

// NewService wires repositories and the backend client into concrete
// services. ctx bounds the lifetime of every dashboard.
func NewService(ctx context.Context, repos *repository.Repository, backend Backend, cfg Config, clock Clock, log *logger.Logger) *Service {
	if clock == nil {
		clock = RealClock()
	}
	if log == nil {
		log = logger.Nop()
	}
	manager := NewDashboardManager(ctx, DashboardDeps{
		Backend:    backend,
		Checkpoint: repos.Checkpoint,
		Snapshots:  repos.DisplayState,
		Events:     repos.EventRepo,
		Clock:      clock,
		Log:        log,
		Config:     cfg.Dashboard,
	})
	limits := TargetRange{Min: cfg.Dashboard.MinTarget, Max: cfg.Dashboard.MaxTarget}
	if limits == (TargetRange{}) {
		def := DefaultDashboardConfig()
		limits = TargetRange{Min: def.MinTarget, Max: def.MaxTarget}
	}

	return &Service{
		Auth:        NewAuthService(backend, repos.Session, repos.EventRepo, manager, cfg.Auth, clock, log),
		Dashboards:  manager,
		Schedules:   NewScheduleService(backend, limits),
		Profiles:    NewProfileService(backend, limits),
		Access:      NewAccessService(backend),
		Diagnostics: NewDiagnosticsService(backend),
		EventLog:    NewEventLogService(repos.EventRepo),
	}
}
