package repository

import (
	"context"
	"database/sql"
	"time"

	"thermostat_dashboard/internal/models"
)

// KeyValueStore is the durable keyed store shared by the checkpoint and the session.
// There is no transactional guarantee across concurrent writers.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

type CheckpointStore interface {
	Load(ctx context.Context) (time.Time, bool, error)
	Save(ctx context.Context, t time.Time) error
}

type SessionStore interface {
	Save(ctx context.Context, s models.Session) error
	Load(ctx context.Context) (models.Session, bool, error)
	Token(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}

type DisplayStateRepo interface {
	Save(ctx context.Context, role models.Role, s models.DisplayedSystemState) error
	Load(ctx context.Context, role models.Role) (models.DisplayedSystemState, bool, error)
}

type EventRepo interface {
	Append(ctx context.Context, e models.ActivityEvent) error
	List(ctx context.Context, from, to time.Time, typ string) ([]models.ActivityEvent, error)
}

type Repository struct {
	KV           KeyValueStore
	Checkpoint   CheckpointStore
	Session      SessionStore
	DisplayState DisplayStateRepo
	EventRepo    EventRepo
}

func NewRepository(db *sql.DB) *Repository {
	kv := NewKVSQLite(db)
	return &Repository{
		KV:           kv,
		Checkpoint:   NewCheckpointKV(kv),
		Session:      NewSessionKV(kv),
		DisplayState: NewDisplayStateSQLite(db),
		EventRepo:    NewEventSQLite(db),
	}
}
