package repository

import (
	"context"
	"strconv"
	"strings"
	"time"
)

// CheckpointKey is the fixed key of the last schedule evaluation instant.
const CheckpointKey = "lastScheduleCheckMs"

// CheckpointKV stores the evaluation checkpoint as epoch milliseconds.
type CheckpointKV struct {
	kv KeyValueStore
}

func NewCheckpointKV(kv KeyValueStore) *CheckpointKV {
	return &CheckpointKV{kv: kv}
}

var _ CheckpointStore = (*CheckpointKV)(nil)

// Load reports ok=false when nothing usable is stored; a malformed value counts as absent.
func (c *CheckpointKV) Load(ctx context.Context) (time.Time, bool, error) {
	raw, ok, err := c.kv.Get(ctx, CheckpointKey)
	if err != nil || !ok {
		return time.Time{}, false, err
	}
	ms, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return time.Time{}, false, nil
	}
	return time.UnixMilli(ms), true, nil
}

func (c *CheckpointKV) Save(ctx context.Context, t time.Time) error {
	return c.kv.Set(ctx, CheckpointKey, strconv.FormatInt(t.UnixMilli(), 10))
}
