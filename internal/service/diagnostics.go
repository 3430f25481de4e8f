package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"

	"thermostat_dashboard/internal/client"
	"thermostat_dashboard/internal/models"
)

type DiagnosticsBackend interface {
	ListDiagnostics(ctx context.Context) ([]models.DiagnosticLog, error)
	CreateDiagnostic(ctx context.Context, in client.DiagnosticInput) (int, error)
}

type DiagnosticInput struct {
	Level   string `json:"level" validate:"required,oneof=INFO WARN ERROR"`
	Message string `json:"message" validate:"required,max=1000"`
}

type DiagnosticsService struct {
	backend  DiagnosticsBackend
	validate *validator.Validate
}

func NewDiagnosticsService(backend DiagnosticsBackend) *DiagnosticsService {
	return &DiagnosticsService{backend: backend, validate: newValidator()}
}

func (s *DiagnosticsService) List(ctx context.Context) ([]models.DiagnosticLog, error) {
	return emptyWithoutSession(s.backend.ListDiagnostics(ctx))
}

// Create uppercases the level before validating it.
func (s *DiagnosticsService) Create(ctx context.Context, in DiagnosticInput) (int, error) {
	in.Level = strings.ToUpper(strings.TrimSpace(in.Level))
	in.Message = strings.TrimSpace(in.Message)
	if err := validate(s.validate, in); err != nil {
		return 0, err
	}
	return s.backend.CreateDiagnostic(ctx, client.DiagnosticInput(in))
}
