package service

import (
	"context"
	"sync"

	"thermostat_dashboard/internal/models"
)

// DashboardManager owns the dashboard of the signed-in session. At most one
// runs at a time.
type DashboardManager struct {
	ctx  context.Context
	deps DashboardDeps

	mu      sync.Mutex
	current *Dashboard
}

// NewDashboardManager ties every dashboard's lifetime to ctx.
func NewDashboardManager(ctx context.Context, deps DashboardDeps) *DashboardManager {
	return &DashboardManager{ctx: ctx, deps: deps}
}

// Start replaces any running dashboard with a fresh one for role.
func (m *DashboardManager) Start(role models.Role) *Dashboard {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current != nil {
		m.current.Close()
	}
	d := NewDashboard(m.ctx, role, m.deps)
	d.Start(m.ctx)
	m.current = d
	if m.deps.Log != nil {
		m.deps.Log.Infow("dashboard_started", "role", role)
	}
	return d
}

// Stop tears the running dashboard down, if any.
func (m *DashboardManager) Stop() {
	m.mu.Lock()
	d := m.current
	m.current = nil
	m.mu.Unlock()

	if d != nil {
		d.Close()
		if m.deps.Log != nil {
			m.deps.Log.Infow("dashboard_stopped", "role", d.Role())
		}
	}
}

// Current returns the running dashboard or ErrNoDashboard.
func (m *DashboardManager) Current() (DashboardView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return nil, ErrNoDashboard
	}
	return m.current, nil
}
