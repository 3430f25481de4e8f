package client

import (
	"context"
	"net/http"

	"thermostat_dashboard/internal/models"
)

type homeownerLogin struct {
	Username string `json:"Username"`
	Password string `json:"Password"`
}

type guestLogin struct {
	Username  string `json:"Username"`
	PIN       string `json:"PIN"`
	Homeowner string `json:"Homeowner"`
}

type technicianLogin struct {
	Username  string `json:"Username"`
	Password  string `json:"Password"`
	Homeowner string `json:"Homeowner"`
}

func (c *Client) LoginHomeowner(ctx context.Context, username, password string) (models.Session, error) {
	var s models.Session
	err := c.do(ctx, http.MethodPost, "/auth/login_homeowner", homeownerLogin{username, password}, &s, false)
	return s, err
}

func (c *Client) LoginGuest(ctx context.Context, username, pin, homeowner string) (models.Session, error) {
	var s models.Session
	err := c.do(ctx, http.MethodPost, "/auth/login_guest", guestLogin{username, pin, homeowner}, &s, false)
	return s, err
}

func (c *Client) LoginTechnician(ctx context.Context, username, password, homeowner string) (models.Session, error) {
	var s models.Session
	err := c.do(ctx, http.MethodPost, "/auth/login_technician", technicianLogin{username, password, homeowner}, &s, false)
	return s, err
}

// SignUpHomeowner creates a homeowner account; it does not sign in.
func (c *Client) SignUpHomeowner(ctx context.Context, username, password string) error {
	return c.do(ctx, http.MethodPost, "/auth/signup_homeowner", homeownerLogin{username, password}, nil, false)
}
