package repository_test

import (
	"context"
	"testing"
	"time"

	"thermostat_dashboard/internal/repository"
)

func TestCheckpointKV_RoundTripsEpochMillis(t *testing.T) {
	kv := newMemKV()
	cp := repository.NewCheckpointKV(kv)

	at := time.Date(2025, 3, 1, 23, 50, 0, 123_000_000, time.UTC)
	if err := cp.Save(context.Background(), at); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if got := kv.data[repository.CheckpointKey]; got != "1740873000123" {
		t.Fatalf("stored %q, want decimal epoch millis", got)
	}

	got, ok, err := cp.Load(context.Background())
	if err != nil || !ok {
		t.Fatalf("Load() = (%v, %v, %v)", got, ok, err)
	}
	if !got.Equal(at) {
		t.Fatalf("Load() = %v, want %v", got, at)
	}
}

func TestCheckpointKV_Load_AbsentOrMalformed(t *testing.T) {
	tests := []struct {
		name string
		raw  *string
	}{
		{name: "absent"},
		{name: "garbage", raw: strPtr("yesterday")},
		{name: "empty", raw: strPtr("")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := newMemKV()
			if tt.raw != nil {
				kv.data[repository.CheckpointKey] = *tt.raw
			}
			_, ok, err := repository.NewCheckpointKV(kv).Load(context.Background())
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if ok {
				t.Fatalf("Load() ok = true, want false")
			}
		})
	}
}

func strPtr(s string) *string { return &s }
