package client

import (
	"context"

	"thermostat_dashboard/internal/models"
)

func (c *Client) GetHVACState(ctx context.Context) (models.HVACState, error) {
	var s models.HVACState
	err := c.get(ctx, "/hvac/state", &s)
	return s, err
}

// SetTargetTemperature asks the backend for a new target and returns the
// resulting authoritative state.
func (c *Client) SetTargetTemperature(ctx context.Context, target float64) (models.HVACState, error) {
	var s models.HVACState
	err := c.post(ctx, "/hvac/state", map[string]float64{"target_temp": target}, &s)
	return s, err
}
