package client

import (
	"context"
	"strconv"

	"thermostat_dashboard/internal/models"
)

type ScheduleInput struct {
	Name       string  `json:"name"`
	StartTime  string  `json:"start_time"`
	TargetTemp float64 `json:"target_temp"`
}

type ProfileInput struct {
	Name       string  `json:"name"`
	TargetTemp float64 `json:"target_temp"`
}

func (c *Client) ListSchedules(ctx context.Context) ([]models.ScheduleRow, error) {
	var out []models.ScheduleRow
	if err := c.get(ctx, "/schedules", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateSchedule(ctx context.Context, in ScheduleInput) (int, error) {
	var id createdID
	err := c.post(ctx, "/schedules", in, &id)
	return id.ID, err
}

func (c *Client) DeleteSchedule(ctx context.Context, id int) error {
	return c.del(ctx, "/schedules/"+strconv.Itoa(id))
}

func (c *Client) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	var out []models.Profile
	if err := c.get(ctx, "/profiles", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateProfile(ctx context.Context, in ProfileInput) (int, error) {
	var id createdID
	err := c.post(ctx, "/profiles", in, &id)
	return id.ID, err
}

func (c *Client) DeleteProfile(ctx context.Context, id int) error {
	return c.del(ctx, "/profiles/"+strconv.Itoa(id))
}
