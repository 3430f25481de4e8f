package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"thermostat_dashboard/internal/models"
)

// DisplayStateSQLite keeps the last rendered snapshot per role so a restarted
// agent can serve something before its first refresh completes.
type DisplayStateSQLite struct {
	db *sql.DB
}

func NewDisplayStateSQLite(db *sql.DB) *DisplayStateSQLite {
	return &DisplayStateSQLite{db: db}
}

var _ DisplayStateRepo = (*DisplayStateSQLite)(nil)

const (
	upsertDisplayStateSQL = `
		INSERT INTO display_state (role, payload, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(role) DO UPDATE SET
			payload=excluded.payload,
			updated_at=excluded.updated_at
	`

	selectDisplayStateSQL = `SELECT payload FROM display_state WHERE role=?`
)

// Save upserts the snapshot of role. A zero LastUpdated is stamped with now.
func (r *DisplayStateSQLite) Save(ctx context.Context, role models.Role, s models.DisplayedSystemState) error {
	if s.LastUpdated.IsZero() {
		s.LastUpdated = time.Now().UTC()
	} else {
		s.LastUpdated = s.LastUpdated.UTC()
	}
	// a pending target is local to one dashboard instance
	s.PendingTarget = nil

	payload, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal display state: %w", err)
	}

	_, err = r.db.ExecContext(ctx, upsertDisplayStateSQL, string(role), string(payload), s.LastUpdated)
	return err
}

// Load returns ok=false when role has no snapshot yet.
func (r *DisplayStateSQLite) Load(ctx context.Context, role models.Role) (models.DisplayedSystemState, bool, error) {
	var payload string
	if err := r.db.QueryRowContext(ctx, selectDisplayStateSQL, string(role)).Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.DisplayedSystemState{}, false, nil
		}
		return models.DisplayedSystemState{}, false, err
	}

	var s models.DisplayedSystemState
	if err := json.Unmarshal([]byte(payload), &s); err != nil {
		return models.DisplayedSystemState{}, false, fmt.Errorf("decode display state for %s: %w", role, err)
	}
	s.LastUpdated = s.LastUpdated.UTC()
	return s, true, nil
}
