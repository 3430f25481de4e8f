package client

import (
	"context"
	"strconv"

	"thermostat_dashboard/internal/models"
)

type GuestInput struct {
	Username string `json:"username"`
	PIN      string `json:"pin"`
}

type AccessGrant struct {
	TechnicianUsername string `json:"technician_username"`
	StartTime          string `json:"start_time"`
	EndTime            string `json:"end_time"`
}

type DiagnosticInput struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

func (c *Client) ListGuests(ctx context.Context) ([]models.Guest, error) {
	var out []models.Guest
	if err := c.get(ctx, "/guests", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateGuest(ctx context.Context, in GuestInput) (int, error) {
	var id createdID
	err := c.post(ctx, "/guests", in, &id)
	return id.ID, err
}

func (c *Client) DeleteGuest(ctx context.Context, id int) error {
	return c.del(ctx, "/guests/"+strconv.Itoa(id))
}

func (c *Client) ListTechnicians(ctx context.Context) ([]models.Technician, error) {
	var out []models.Technician
	if err := c.get(ctx, "/technicians", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListTechnicianAccess(ctx context.Context) ([]models.TechnicianAccess, error) {
	var out []models.TechnicianAccess
	if err := c.get(ctx, "/technicians/access", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GrantTechnicianAccess(ctx context.Context, in AccessGrant) (int, error) {
	var id createdID
	err := c.post(ctx, "/technicians/access", in, &id)
	return id.ID, err
}

func (c *Client) RevokeTechnicianAccess(ctx context.Context, id int) error {
	return c.del(ctx, "/technicians/access/"+strconv.Itoa(id))
}

func (c *Client) ListDiagnostics(ctx context.Context) ([]models.DiagnosticLog, error) {
	var out []models.DiagnosticLog
	if err := c.get(ctx, "/diagnostics", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateDiagnostic(ctx context.Context, in DiagnosticInput) (int, error) {
	var id createdID
	err := c.post(ctx, "/diagnostics", in, &id)
	return id.ID, err
}
