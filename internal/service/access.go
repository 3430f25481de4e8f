package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"thermostat_dashboard/internal/client"
	"thermostat_dashboard/internal/models"
)

type AccessBackend interface {
	ListGuests(ctx context.Context) ([]models.Guest, error)
	CreateGuest(ctx context.Context, in client.GuestInput) (int, error)
	DeleteGuest(ctx context.Context, id int) error
	ListTechnicians(ctx context.Context) ([]models.Technician, error)
	ListTechnicianAccess(ctx context.Context) ([]models.TechnicianAccess, error)
	GrantTechnicianAccess(ctx context.Context, in client.AccessGrant) (int, error)
	RevokeTechnicianAccess(ctx context.Context, id int) error
}

type GuestInput struct {
	Username string `json:"username" validate:"required,max=64"`
	PIN      string `json:"pin" validate:"required,numeric,min=4,max=8"`
}

type AccessGrantInput struct {
	TechnicianUsername string `json:"technician_username" validate:"required,max=64"`
	StartTime          string `json:"start_time" validate:"required"`
	EndTime            string `json:"end_time" validate:"required"`
}

// AccessService manages guests and time-boxed technician access.
type AccessService struct {
	backend  AccessBackend
	validate *validator.Validate
}

func NewAccessService(backend AccessBackend) *AccessService {
	return &AccessService{backend: backend, validate: newValidator()}
}

func (s *AccessService) ListGuests(ctx context.Context) ([]models.Guest, error) {
	return emptyWithoutSession(s.backend.ListGuests(ctx))
}

func (s *AccessService) CreateGuest(ctx context.Context, in GuestInput) (int, error) {
	in.Username = strings.TrimSpace(in.Username)
	if err := validate(s.validate, in); err != nil {
		return 0, err
	}
	return s.backend.CreateGuest(ctx, client.GuestInput(in))
}

func (s *AccessService) DeleteGuest(ctx context.Context, id int) error {
	return s.backend.DeleteGuest(ctx, id)
}

func (s *AccessService) ListTechnicians(ctx context.Context) ([]models.Technician, error) {
	return emptyWithoutSession(s.backend.ListTechnicians(ctx))
}

func (s *AccessService) ListAccess(ctx context.Context) ([]models.TechnicianAccess, error) {
	return emptyWithoutSession(s.backend.ListTechnicianAccess(ctx))
}

// GrantAccess rejects windows whose end is not after their start when both
// ends are readable date-times; anything else is left to the backend.
func (s *AccessService) GrantAccess(ctx context.Context, in AccessGrantInput) (int, error) {
	in.TechnicianUsername = strings.TrimSpace(in.TechnicianUsername)
	if err := validate(s.validate, in); err != nil {
		return 0, err
	}
	start, okStart := parseDateTime(strings.TrimSpace(in.StartTime), time.Local)
	end, okEnd := parseDateTime(strings.TrimSpace(in.EndTime), time.Local)
	if okStart && okEnd && !end.After(start) {
		return 0, fmt.Errorf("%w: end_time must be after start_time", ErrValidation)
	}
	return s.backend.GrantTechnicianAccess(ctx, client.AccessGrant(in))
}

func (s *AccessService) RevokeAccess(ctx context.Context, id int) error {
	return s.backend.RevokeTechnicianAccess(ctx, id)
}
