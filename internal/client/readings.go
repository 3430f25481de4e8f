package client

import (
	"context"
	"strconv"

	"thermostat_dashboard/internal/models"
)

// RecentSensors returns the newest readings first. limit <= 0 leaves the
// backend default.
func (c *Client) RecentSensors(ctx context.Context, limit int) ([]models.SensorReading, error) {
	path := "/sensors/recent"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	var out []models.SensorReading
	if err := c.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) RecentWeather(ctx context.Context) ([]models.WeatherReading, error) {
	var out []models.WeatherReading
	if err := c.get(ctx, "/weather/recent", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) EnergyConsumption(ctx context.Context) (models.EnergyConsumption, error) {
	var e models.EnergyConsumption
	err := c.get(ctx, "/sensors/energy-consumption", &e)
	return e, err
}
