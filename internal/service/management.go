package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"thermostat_dashboard/internal/client"
	"thermostat_dashboard/internal/models"
)

type ScheduleBackend interface {
	ListSchedules(ctx context.Context) ([]models.ScheduleRow, error)
	CreateSchedule(ctx context.Context, in client.ScheduleInput) (int, error)
	DeleteSchedule(ctx context.Context, id int) error
}

type ProfileBackend interface {
	ListProfiles(ctx context.Context) ([]models.Profile, error)
	CreateProfile(ctx context.Context, in client.ProfileInput) (int, error)
	DeleteProfile(ctx context.Context, id int) error
}

type ScheduleInput struct {
	Name       string  `json:"name" validate:"required,max=64"`
	StartTime  string  `json:"start_time" validate:"required,start_time"`
	TargetTemp float64 `json:"target_temp"`
}

type ProfileInput struct {
	Name       string  `json:"name" validate:"required,max=64"`
	TargetTemp float64 `json:"target_temp"`
}

// TargetRange bounds every target temperature accepted from users.
type TargetRange struct {
	Min, Max int
}

func (r TargetRange) check(v float64) error {
	if v < float64(r.Min) || v > float64(r.Max) {
		return fmt.Errorf("%w: target_temp must be within [%d, %d]", ErrValidation, r.Min, r.Max)
	}
	return nil
}

type ScheduleService struct {
	backend  ScheduleBackend
	limits   TargetRange
	validate *validator.Validate
}

func NewScheduleService(backend ScheduleBackend, limits TargetRange) *ScheduleService {
	return &ScheduleService{backend: backend, limits: limits, validate: newValidator()}
}

func (s *ScheduleService) List(ctx context.Context) ([]models.ScheduleRow, error) {
	return emptyWithoutSession(s.backend.ListSchedules(ctx))
}

func (s *ScheduleService) Create(ctx context.Context, in ScheduleInput) (int, error) {
	if err := s.check(in); err != nil {
		return 0, err
	}
	return s.backend.CreateSchedule(ctx, client.ScheduleInput(in))
}

func (s *ScheduleService) Delete(ctx context.Context, id int) error {
	return s.backend.DeleteSchedule(ctx, id)
}

// Update replaces schedule id: the backend has no update call, so the old
// row is deleted and a new one created under a new id.
func (s *ScheduleService) Update(ctx context.Context, id int, in ScheduleInput) (int, error) {
	if err := s.check(in); err != nil {
		return 0, err
	}
	if err := s.backend.DeleteSchedule(ctx, id); err != nil {
		return 0, err
	}
	return s.backend.CreateSchedule(ctx, client.ScheduleInput(in))
}

func (s *ScheduleService) check(in ScheduleInput) error {
	if err := validate(s.validate, in); err != nil {
		return err
	}
	return s.limits.check(in.TargetTemp)
}

type ProfileService struct {
	backend  ProfileBackend
	limits   TargetRange
	validate *validator.Validate
}

func NewProfileService(backend ProfileBackend, limits TargetRange) *ProfileService {
	return &ProfileService{backend: backend, limits: limits, validate: newValidator()}
}

func (s *ProfileService) List(ctx context.Context) ([]models.Profile, error) {
	return emptyWithoutSession(s.backend.ListProfiles(ctx))
}

func (s *ProfileService) Create(ctx context.Context, in ProfileInput) (int, error) {
	if err := s.check(in); err != nil {
		return 0, err
	}
	return s.backend.CreateProfile(ctx, client.ProfileInput(in))
}

func (s *ProfileService) Delete(ctx context.Context, id int) error {
	return s.backend.DeleteProfile(ctx, id)
}

// Update is delete-then-create, like ScheduleService.Update.
func (s *ProfileService) Update(ctx context.Context, id int, in ProfileInput) (int, error) {
	if err := s.check(in); err != nil {
		return 0, err
	}
	if err := s.backend.DeleteProfile(ctx, id); err != nil {
		return 0, err
	}
	return s.backend.CreateProfile(ctx, client.ProfileInput(in))
}

func (s *ProfileService) check(in ProfileInput) error {
	if err := validate(s.validate, in); err != nil {
		return err
	}
	return s.limits.check(in.TargetTemp)
}
