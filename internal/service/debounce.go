package service

import (
	"context"
	"sync"
	"time"

	"thermostat_dashboard/internal/models"
)

// defaultBackendCallTimeout bounds calls that outlive their caller's context.
const defaultBackendCallTimeout = 10 * time.Second

// ClampTarget bounds a requested target temperature to [lo, hi].
func ClampTarget(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// TargetResultFunc receives the outcome of a debounced backend call.
type TargetResultFunc func(target int, st models.HVACState, err error)

// TargetDebouncer coalesces bursts of target changes into one backend call
// carrying the last value, sent once no change arrived for the quiet delay.
type TargetDebouncer struct {
	setter      TargetSetter
	clock       Clock
	delay       time.Duration
	callTimeout time.Duration
	onResult    TargetResultFunc
	baseCtx     context.Context

	mu      sync.Mutex
	timer   Timer
	pending *int
	gen     uint64
	closed  bool
}

// NewTargetDebouncer builds a debouncer. ctx only provides values to the
// backend call; its cancellation never aborts a call in flight.
func NewTargetDebouncer(ctx context.Context, setter TargetSetter, clock Clock, delay time.Duration, onResult TargetResultFunc) *TargetDebouncer {
	if clock == nil {
		clock = RealClock()
	}
	return &TargetDebouncer{
		setter:      setter,
		clock:       clock,
		delay:       delay,
		callTimeout: defaultBackendCallTimeout,
		onResult:    onResult,
		baseCtx:     context.WithoutCancel(ctx),
	}
}

// Request records target as pending and (re)arms the quiet timer.
func (d *TargetDebouncer) Request(target int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	v := target
	d.pending = &v
	d.gen++
	gen := d.gen
	d.timer = d.clock.AfterFunc(d.delay, func() { d.fire(gen) })
}

// Pending returns a copy of the unconfirmed target, nil if none.
func (d *TargetDebouncer) Pending() *int {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.pending == nil {
		return nil
	}
	v := *d.pending
	return &v
}

// Stop cancels an armed timer. A call already in flight completes but its
// result is dropped.
func (d *TargetDebouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

func (d *TargetDebouncer) fire(gen uint64) {
	d.mu.Lock()
	if d.closed || gen != d.gen || d.pending == nil {
		d.mu.Unlock()
		return
	}
	target := *d.pending
	d.timer = nil
	d.mu.Unlock()

	ctx, cancel := context.WithTimeout(d.baseCtx, d.callTimeout)
	st, err := d.setter.SetTargetTemperature(ctx, float64(target))
	cancel()

	d.mu.Lock()
	// a newer request made while the call was in flight stays pending
	if gen == d.gen {
		d.pending = nil
	}
	closed := d.closed
	d.mu.Unlock()

	if !closed && d.onResult != nil {
		d.onResult(target, st, err)
	}
}
